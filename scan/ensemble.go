/*
 * ensemble.go, part of gothermo.
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

package scan

import (
	"context"
	"fmt"
	"io"

	"github.com/rmera/gothermo"
	"github.com/rmera/gothermo/govern"
	"golang.org/x/sync/errgroup"
)

//Member is one structure of an ensemble run, with the basename its report
//files take.
type Member struct {
	Name string
	Sys  *thermo.System
}

//Ensemble evaluates a batch of structures, typically conformers or the
//species of a reaction, under the same settings. Members are independent,
//so they always parallelize at the member level; each member's own scan
//runs sequentially inside its worker.
type Ensemble struct {
	Sched Scheduler
	Gov   *govern.Governor //nil means build one with the defaults
}

func (e *Ensemble) governor() *govern.Governor {
	if e.Gov == nil {
		e.Gov = govern.NewGovernor(0, e.Sched.Workers, 0)
	}
	return e.Gov
}

//Run evaluates every member on the grid the settings define. A member that
//fails lands in the governor's collector and leaves a nil table at its
//index; the rest of the batch is unaffected. The returned error covers
//only infrastructure failures, not per-member ones.
func (e *Ensemble) Run(ctx context.Context, members []Member, set *thermo.Settings) ([]*Table, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("scan: empty ensemble")
	}
	gov := e.governor()
	sched := e.Sched
	sched.Gov = gov
	workers := govern.ClampThreads(sched.Workers, govern.DetectJobResources())
	tables := make([]*Table, len(members))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range members {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			//each member gets one worker; the batch is the parallel axis
			memberSched := sched
			memberSched.Workers = 1
			table, err := memberSched.Run(ctx, m.Sys, set)
			if err != nil {
				gov.Errs.AddError(fmt.Errorf("scan: member %q: %w", m.Name, err))
				return nil
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

//RunToFiles runs the ensemble and writes each member's tables to
//name.UHG and name.SCq next to wherever name points. The file-handle
//manager caps how many reports are open at once. Members that failed to
//evaluate are skipped; their errors are already in the collector.
func (e *Ensemble) RunToFiles(ctx context.Context, members []Member, set *thermo.Settings) error {
	tables, err := e.Run(ctx, members, set)
	if err != nil {
		return err
	}
	gov := e.governor()
	for i, table := range tables {
		if table == nil {
			continue
		}
		if err := writeMemberFiles(gov, members[i].Name, table); err != nil {
			gov.Errs.AddError(err)
		}
	}
	if gov.Errs.HasErrors() {
		return fmt.Errorf("scan: %d of %d ensemble members failed", len(gov.Errs.Errors()), len(members))
	}
	return nil
}

func writeMemberFiles(gov *govern.Governor, name string, table *Table) error {
	write := func(suffix string, writeTable func(io.Writer, *Table) error) error {
		guard := gov.Files.Acquire()
		defer guard.Release()
		f, err := CreateReport(name + suffix)
		if err != nil {
			return fmt.Errorf("scan: member %q: %w", name, err)
		}
		if err := writeTable(f, table); err != nil {
			f.Close()
			return fmt.Errorf("scan: member %q: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("scan: member %q: %w", name, err)
		}
		return nil
	}
	if err := write(".UHG", WriteUHG); err != nil {
		return err
	}
	return write(".SCq", WriteSCq)
}
