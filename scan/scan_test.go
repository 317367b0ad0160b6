/*
 * scan_test.go, part of gothermo.
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
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gothermo"
	"github.com/rmera/gothermo/govern"
)

func testWater(Te *testing.T) *thermo.System {
	Te.Helper()
	atoms := []*thermo.Atom{
		{Symbol: "O", Z: 0.1173},
		{Symbol: "H", Y: 0.7572, Z: -0.4692},
		{Symbol: "H", Y: -0.7572, Z: -0.4692},
	}
	sys, err := thermo.NewSystem(atoms, []float64{1594.7, 3657.1, 3755.9}, -76.4, 1)
	if err != nil {
		Te.Fatal(err)
	}
	sys.Inert = [3]float64{0.6159, 1.1559, 1.7717}
	sys.PGName = "C2v"
	sys.RotSym = 2
	sys.Normalize()
	return sys
}

func scanSettings() *thermo.Settings {
	set := new(thermo.Settings)
	set.SetDefaults()
	set.Tlow, set.Thigh, set.Tstep = 200, 400, 100
	set.Plow, set.Phigh, set.Pstep = 1, 2, 0.5
	return set
}

func TestGridOrder(Te *testing.T) {
	g := NewGrid(scanSettings())
	if len(g) != 9 { //3 temperatures x 3 pressures
		Te.Fatalf("wrong grid size: %d", len(g))
	}
	//temperature-major, both ascending
	for i := 1; i < len(g); i++ {
		if g[i].T < g[i-1].T {
			Te.Errorf("temperatures out of order at %d: %v", i, g)
		}
		if g[i].T == g[i-1].T && g[i].P <= g[i-1].P {
			Te.Errorf("pressures out of order at %d: %v", i, g)
		}
	}
	if g[0].T != 200 || g[0].P != 1 || g[8].T != 400 || g[8].P != 2 {
		Te.Errorf("wrong grid corners: %v", g)
	}
	//a non-scanning Settings collapses to the single point
	single := new(thermo.Settings)
	single.SetDefaults()
	g = NewGrid(single)
	if len(g) != 1 || g[0].T != thermo.DefT || g[0].P != thermo.DefP {
		Te.Errorf("single point grid wrong: %v", g)
	}
}

func TestChoose(Te *testing.T) {
	var tun Tunables
	if Choose(100, 3, 8, tun) != Outer {
		Te.Error("many points per worker should go Outer")
	}
	if Choose(3, 500, 8, tun) != Inner {
		Te.Error("few points, many modes should go Inner")
	}
	if Choose(3, 10, 8, tun) != Outer {
		Te.Error("small problems default to Outer")
	}
	if Choose(2, 5000, 1, tun) != Outer {
		Te.Error("a single worker has nothing to gain from Inner")
	}
}

//Both topologies must produce the same table, in the same order.
func TestTopologiesAgree(Te *testing.T) {
	sys := testWater(Te)
	//pad the mode list so the inner summation has real work to split
	for i := 0; i < 300; i++ {
		sys.Wavenum = append(sys.Wavenum, 50.0+float64(i)*11.0)
	}
	set := scanSettings()
	grid := NewGrid(set)
	s := new(Scheduler)
	outer := make([]*thermo.Result, len(grid))
	inner := make([]*thermo.Result, len(grid))
	if err := s.runOuter(context.Background(), sys, set, grid, outer, 4); err != nil {
		Te.Fatal(err)
	}
	if err := s.runInner(context.Background(), sys, set, grid, inner, 4); err != nil {
		Te.Fatal(err)
	}
	for i := range grid {
		if outer[i].T != grid[i].T || outer[i].P != grid[i].P {
			Te.Fatalf("row %d out of grid order", i)
		}
		rel := math.Abs(outer[i].Gcorr-inner[i].Gcorr) / math.Abs(outer[i].Gcorr)
		if rel > 1e-9 {
			Te.Errorf("row %d: topologies disagree by %g relative", i, rel)
		}
	}
}

func TestSchedulerRun(Te *testing.T) {
	sys := testWater(Te)
	set := scanSettings()
	s := &Scheduler{Workers: 2}
	table, err := s.Run(context.Background(), sys, set)
	if err != nil {
		Te.Fatal(err)
	}
	if len(table.Rows) != len(table.Points) {
		Te.Fatalf("row/point mismatch: %d vs %d", len(table.Rows), len(table.Points))
	}
	for i, r := range table.Rows {
		if r == nil {
			Te.Fatalf("row %d missing", i)
		}
	}
	//cancellation stops the scan
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx, sys, set); err == nil {
		Te.Error("a cancelled context should abort the scan")
	}
}

//Run prepares an unprepared system itself: imaginary conversion, symmetry
//assignment and normalization, once, before the first grid point.
func TestRunPreparesSystem(Te *testing.T) {
	atoms := []*thermo.Atom{
		{Symbol: "O", Z: 0.1173},
		{Symbol: "H", Y: 0.7572, Z: -0.4692},
		{Symbol: "H", Y: -0.7572, Z: -0.4692},
	}
	sys, err := thermo.NewSystem(atoms, []float64{1594.7, 3657.1, 3755.9}, -76.4, 1)
	if err != nil {
		Te.Fatal(err)
	}
	set := new(thermo.Settings)
	set.SetDefaults()
	s := new(Scheduler)
	table, err := s.Run(context.Background(), sys, set)
	if err != nil {
		Te.Fatal(err)
	}
	if sys.PGName != "C2v" || sys.RotSym != 2 {
		Te.Errorf("symmetry not assigned during the run: %s sigma %d", sys.PGName, sys.RotSym)
	}
	if table.Rows[0] == nil || table.Rows[0].S <= 0 {
		Te.Error("prepared run produced no usable row")
	}
}

//Eexter overrides the loader's electronic energy in the absolute-energy
//columns.
func TestEnergyOverride(Te *testing.T) {
	sys := testWater(Te)
	set := new(thermo.Settings)
	set.SetDefaults()
	set.Eexter = -76.5
	s := new(Scheduler)
	table, err := s.Run(context.Background(), sys, set)
	if err != nil {
		Te.Fatal(err)
	}
	if table.E != -76.5 {
		Te.Errorf("energy override not honored: %f", table.E)
	}
	var uhg bytes.Buffer
	if err := WriteUHG(&uhg, table); err != nil {
		Te.Fatal(err)
	}
	//Ucorr for water is about 0.023 Hartree, so with the override the
	//absolute U column sits near -76.477; without it, near -76.377
	if !strings.Contains(uhg.String(), "-76.47") {
		Te.Error("absolute columns do not reflect the override")
	}
	if strings.Contains(uhg.String(), "-76.37") {
		Te.Error("absolute columns still use the loader's energy")
	}
}

//An exhausted memory ceiling refuses the scan with an error instead of
//swapping, and the refusal arrives only after in-flight workers finish.
func TestMemoryCeilingRefusal(Te *testing.T) {
	sys := testWater(Te)
	set := scanSettings()
	s := &Scheduler{Gov: &govern.Governor{Mem: govern.NewMemoryMonitor(0)}}
	_, err := s.Run(context.Background(), sys, set)
	if err == nil {
		Te.Fatal("a zero memory ceiling should refuse the scan")
	}
	if !strings.Contains(err.Error(), "memory ceiling") {
		Te.Errorf("unexpected refusal error: %v", err)
	}
}

func TestReportFormat(Te *testing.T) {
	sys := testWater(Te)
	set := scanSettings()
	s := new(Scheduler)
	table, err := s.Run(context.Background(), sys, set)
	if err != nil {
		Te.Fatal(err)
	}
	var uhg, scq bytes.Buffer
	if err := WriteUHG(&uhg, table); err != nil {
		Te.Fatal(err)
	}
	if err := WriteSCq(&scq, table); err != nil {
		Te.Fatal(err)
	}
	fmt.Println(uhg.String())
	if !strings.HasPrefix(uhg.String(), "Ucorr, Hcorr and Gcorr are in kcal/mol") {
		Te.Error("wrong UHG header")
	}
	if !strings.HasPrefix(scq.String(), "S, CV and CP are in cal/mol/K") {
		Te.Error("wrong SCq header")
	}
	//header (2 lines + column line) plus one row per grid point
	if n := strings.Count(uhg.String(), "\n"); n != 3+len(table.Rows) {
		Te.Errorf("wrong UHG line count: %d", n)
	}
	if n := strings.Count(scq.String(), "\n"); n != 3+len(table.Rows) {
		Te.Errorf("wrong SCq line count: %d", n)
	}
}

func TestCompressedReport(Te *testing.T) {
	sys := testWater(Te)
	set := new(thermo.Settings)
	set.SetDefaults()
	s := new(Scheduler)
	table, err := s.Run(context.Background(), sys, set)
	if err != nil {
		Te.Fatal(err)
	}
	path := filepath.Join(Te.TempDir(), "water.UHG.zst")
	w, err := CreateReport(path)
	if err != nil {
		Te.Fatal(err)
	}
	if err := WriteUHG(w, table); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		Te.Fatal(err)
	}
	defer zr.Close()
	var out bytes.Buffer
	if _, err := out.ReadFrom(zr.IOReadCloser()); err != nil { //Decoder is not an io.ReadCloser by itself
		Te.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Ucorr, Hcorr and Gcorr") {
		Te.Error("compressed report did not round-trip")
	}
}

func TestEnsemble(Te *testing.T) {
	dir := Te.TempDir()
	members := []Member{
		{Name: filepath.Join(dir, "conf1"), Sys: testWater(Te)},
		{Name: filepath.Join(dir, "conf2"), Sys: testWater(Te)},
	}
	set := new(thermo.Settings)
	set.SetDefaults()
	e := &Ensemble{Sched: Scheduler{Workers: 2}}
	if err := e.RunToFiles(context.Background(), members, set); err != nil {
		Te.Fatal(err)
	}
	for _, m := range members {
		for _, suffix := range []string{".UHG", ".SCq"} {
			if _, err := os.Stat(m.Name + suffix); err != nil {
				Te.Errorf("missing report %s%s: %v", m.Name, suffix, err)
			}
		}
	}
	if e.Gov.Errs.HasErrors() {
		Te.Errorf("unexpected member errors: %v", e.Gov.Errs.Errors())
	}
}
