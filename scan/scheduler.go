/*
 * scheduler.go, part of gothermo.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package scan evaluates thermochemistry over temperature/pressure grids
//and over batches of structures, parallelizing either across grid points
//or across vibrational modes, whichever fits the problem shape.
package scan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unsafe"

	"github.com/rmera/gothermo"
	"github.com/rmera/gothermo/govern"
	"github.com/rmera/gothermo/symm"
	"golang.org/x/sync/errgroup"
)

//Topology says where the parallelism goes during a scan. It is chosen once
//per scan, before the first evaluation, and never changes mid-run.
type Topology int

const (
	//Outer evaluates grid points concurrently, each point sequential inside.
	Outer Topology = iota
	//Inner evaluates grid points one at a time, parallelizing over the
	//vibrational modes within each.
	Inner
)

func (t Topology) String() string {
	if t == Outer {
		return "outer"
	}
	return "inner"
}

//Tunables are the decision cutoffs for Choose. The zero value means "use
//the defaults".
type Tunables struct {
	//OuterMinPoints is the fewest grid points per worker that still
	//justifies point-level parallelism.
	OuterMinPoints int
	//InnerMinModes is the fewest vibrational modes that make mode-level
	//parallelism worth its synchronization cost.
	InnerMinModes int
}

func (t Tunables) outerMinPoints() int {
	if t.OuterMinPoints > 0 {
		return t.OuterMinPoints
	}
	return 2
}

func (t Tunables) innerMinModes() int {
	if t.InnerMinModes > 0 {
		return t.InnerMinModes
	}
	return 64
}

//Choose picks the topology from the problem shape: points on the grid,
//vibrational modes in the system, and available workers. Many points per
//worker favor Outer; few points but many modes favor Inner. Small problems
//default to Outer, whose sequential inner loop has no overhead to pay.
func Choose(points, modes, workers int, tun Tunables) Topology {
	if workers <= 1 {
		return Outer
	}
	if points >= workers*tun.outerMinPoints() {
		return Outer
	}
	if modes >= tun.innerMinModes() {
		return Inner
	}
	return Outer
}

//Table is the outcome of a scan: one row per grid point, in grid order.
//E is the electronic energy the reports use, already resolved against the
//Eexter override.
type Table struct {
	Sys    *thermo.System
	E      float64 //Hartree
	Points Grid
	Rows   []*thermo.Result
}

//Scheduler runs grids. The zero value works; Log, Gov and Tun are optional
//knobs.
type Scheduler struct {
	Tun     Tunables
	Workers int              //<=0 means govern.ClampThreads' choice
	Log     *slog.Logger     //nil means no logging
	Gov     *govern.Governor //nil means no admission control
}

func (s *Scheduler) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

//admit blocks a row allocation if it would break the memory ceiling. With
//no governor it admits everything.
func (s *Scheduler) admit() error {
	if s.Gov == nil || s.Gov.Mem == nil {
		return nil
	}
	sz := uint64(unsafe.Sizeof(thermo.Result{}))
	if !s.Gov.Mem.CanAllocate(sz) {
		return fmt.Errorf("scan: memory ceiling reached (%s in use, limit %s)",
			govern.FormatMemorySize(s.Gov.Mem.Current()), govern.FormatMemorySize(s.Gov.Mem.Max()))
	}
	s.Gov.Mem.Add(sz)
	return nil
}

func (s *Scheduler) release() {
	if s.Gov == nil || s.Gov.Mem == nil {
		return
	}
	s.Gov.Mem.Remove(uint64(unsafe.Sizeof(thermo.Result{})))
}

//Run evaluates sys on the grid NewGrid(set) builds, choosing the topology
//once from the grid size and the mode count. Rows come back in grid order
//regardless of topology. The context is checked between evaluations, so
//cancellation loses at most the point in flight.
func (s *Scheduler) Run(ctx context.Context, sys *thermo.System, set *thermo.Settings) (*Table, error) {
	//preparation (imaginary conversion, symmetry assignment, normalization)
	//happens here, once, never per grid point
	if err := thermo.Prepare(sys, set, symm.NewDetector()); err != nil {
		return nil, err
	}
	grid := NewGrid(set)
	workers := s.Workers
	if workers <= 0 {
		workers = govern.ClampThreads(set.NThreads, govern.DetectJobResources())
	}
	topo := Choose(len(grid), sys.NFreq(), workers, s.Tun)
	s.logger().Info("scan scheduled", "points", len(grid), "modes", sys.NFreq(),
		"workers", workers, "topology", topo.String())
	table := &Table{Sys: sys, E: set.Energy(sys.E), Points: grid, Rows: make([]*thermo.Result, len(grid))}
	var err error
	if topo == Outer {
		err = s.runOuter(ctx, sys, set, grid, table.Rows, workers)
	} else {
		err = s.runInner(ctx, sys, set, grid, table.Rows, workers)
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}

//runOuter farms grid points out to an errgroup. Each worker writes only
//its own row, so the only synchronization is the group itself.
func (s *Scheduler) runOuter(ctx context.Context, sys *thermo.System, set *thermo.Settings, grid Grid, rows []*thermo.Result, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var admitErr error
	for i, pt := range grid {
		i, pt := i, pt
		if err := gctx.Err(); err != nil {
			break
		}
		//on refusal, stop launching but still wait for the workers already
		//in flight; they write into rows and must not outlive the call
		if admitErr = s.admit(); admitErr != nil {
			break
		}
		g.Go(func() error {
			defer s.release()
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := thermo.Evaluate(sys, set, pt.T, pt.P)
			if err != nil {
				return fmt.Errorf("scan: point T=%.2f P=%.4g: %w", pt.T, pt.P, err)
			}
			rows[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if admitErr != nil {
		return admitErr
	}
	return ctx.Err()
}

//runInner walks the grid sequentially, spending the workers inside each
//point on the vibrational sum.
func (s *Scheduler) runInner(ctx context.Context, sys *thermo.System, set *thermo.Settings, grid Grid, rows []*thermo.Result, workers int) error {
	for i, pt := range grid {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.admit(); err != nil {
			return err
		}
		r, err := thermo.EvaluateParallel(sys, set, pt.T, pt.P, workers)
		if err != nil {
			s.release()
			return fmt.Errorf("scan: point T=%.2f P=%.4g: %w", pt.T, pt.P, err)
		}
		rows[i] = r
		s.release()
	}
	return nil
}
