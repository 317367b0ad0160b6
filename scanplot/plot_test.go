/*
 * plot_test.go, part of gothermo.
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

package scanplot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gothermo"
	"github.com/rmera/gothermo/scan"
)

func TestTProfile(Te *testing.T) {
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
	set := new(thermo.Settings)
	set.SetDefaults()
	set.Tlow, set.Thigh, set.Tstep = 100, 1000, 50
	set.Plow, set.Phigh, set.Pstep = 1, 3, 1
	s := new(scan.Scheduler)
	table, err := s.Run(context.Background(), sys, set)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "waterS")
	if err := TProfile(table, Entropy, "Water entropy", name); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name + ".png"); err != nil || fi.Size() == 0 {
		Te.Errorf("plot file missing or empty: %v", err)
	}
	if err := TProfile(nil, CP, "nothing", name); err == nil {
		Te.Error("a nil table should be refused")
	}
}
