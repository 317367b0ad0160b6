/*
 * symm_test.go, part of gothermo.
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

package symm

import (
	"fmt"
	"math"
	"testing"

	"github.com/rmera/gothermo"
)

func sincos(deg float64) (s, c float64) {
	r := deg * math.Pi / 180
	return math.Sin(r), math.Cos(r)
}

func detectOne(Te *testing.T, atoms []*thermo.Atom, wantPG string, wantSigma int) {
	Te.Helper()
	d := NewDetector()
	pg, sigma, err := d.Detect(atoms)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("detected", pg, "sigma", sigma)
	if pg != wantPG {
		Te.Errorf("wrong point group: got %s, want %s", pg, wantPG)
	}
	if sigma != wantSigma {
		Te.Errorf("wrong symmetry number: got %d, want %d", sigma, wantSigma)
	}
}

func TestDetectSingleAtom(Te *testing.T) {
	detectOne(Te, []*thermo.Atom{{Symbol: "Ar", Mass: 39.95}}, "Kh", 1)
}

func TestDetectLinear(Te *testing.T) {
	h2 := []*thermo.Atom{
		{Symbol: "H", Mass: 1.008, Z: 0.37},
		{Symbol: "H", Mass: 1.008, Z: -0.37},
	}
	detectOne(Te, h2, "D*h", 2)
	hf := []*thermo.Atom{
		{Symbol: "F", Mass: 18.998},
		{Symbol: "H", Mass: 1.008, Z: 0.92},
	}
	detectOne(Te, hf, "C*v", 1)
}

func TestDetectWater(Te *testing.T) {
	h2o := []*thermo.Atom{
		{Symbol: "O", Mass: 15.999, Z: 0.1173},
		{Symbol: "H", Mass: 1.008, Y: 0.7572, Z: -0.4692},
		{Symbol: "H", Mass: 1.008, Y: -0.7572, Z: -0.4692},
	}
	detectOne(Te, h2o, "C2v", 2)
}

func TestDetectMethane(Te *testing.T) {
	const d = 0.6291
	ch4 := []*thermo.Atom{
		{Symbol: "C", Mass: 12.011},
		{Symbol: "H", Mass: 1.008, X: d, Y: d, Z: d},
		{Symbol: "H", Mass: 1.008, X: -d, Y: -d, Z: d},
		{Symbol: "H", Mass: 1.008, X: -d, Y: d, Z: -d},
		{Symbol: "H", Mass: 1.008, X: d, Y: -d, Z: -d},
	}
	detectOne(Te, ch4, "Td", 12)
}

func TestDetectSF6(Te *testing.T) {
	const d = 1.561
	sf6 := []*thermo.Atom{{Symbol: "S", Mass: 32.06}}
	for _, v := range [][3]float64{{d, 0, 0}, {-d, 0, 0}, {0, d, 0}, {0, -d, 0}, {0, 0, d}, {0, 0, -d}} {
		sf6 = append(sf6, &thermo.Atom{Symbol: "F", Mass: 18.998, X: v[0], Y: v[1], Z: v[2]})
	}
	detectOne(Te, sf6, "Oh", 24)
}

func TestDetectBenzene(Te *testing.T) {
	//C6H6 in the xy plane
	atoms := []*thermo.Atom{}
	for i := 0; i < 6; i++ {
		s, c := sincos(float64(i) * 60.0)
		atoms = append(atoms, &thermo.Atom{Symbol: "C", Mass: 12.011, X: 1.397 * c, Y: 1.397 * s})
		atoms = append(atoms, &thermo.Atom{Symbol: "H", Mass: 1.008, X: 2.481 * c, Y: 2.481 * s})
	}
	detectOne(Te, atoms, "D6h", 12)
}

func TestPrincipalMomentsOrdered(Te *testing.T) {
	h2o := []*thermo.Atom{
		{Symbol: "O", Mass: 15.999, Z: 0.1173},
		{Symbol: "H", Mass: 1.008, Y: 0.7572, Z: -0.4692},
		{Symbol: "H", Mass: 1.008, Y: -0.7572, Z: -0.4692},
	}
	d := NewDetector()
	mom, err := d.PrincipalMoments(h2o)
	if err != nil {
		Te.Fatal(err)
	}
	if mom[0] > mom[1] || mom[1] > mom[2] {
		Te.Errorf("moments not ascending: %v", mom)
	}
	if mom[0] < 0.5 || mom[0] > 0.7 {
		Te.Errorf("smallest water moment off: %f", mom[0])
	}
}

func TestAssign(Te *testing.T) {
	h2o := []*thermo.Atom{
		{Symbol: "O", Z: 0.1173},
		{Symbol: "H", Y: 0.7572, Z: -0.4692},
		{Symbol: "H", Y: -0.7572, Z: -0.4692},
	}
	sys, err := thermo.NewSystem(h2o, []float64{1594.7, 3657.1, 3755.9}, -76.4, 1)
	if err != nil {
		Te.Fatal(err)
	}
	d := NewDetector()
	if err := d.Assign(sys, ""); err != nil {
		Te.Fatal(err)
	}
	if sys.PGName != "C2v" || sys.RotSym != 2 {
		Te.Errorf("assignment wrong: %s sigma %d", sys.PGName, sys.RotSym)
	}
	//the user can force a group; the moments still come from the geometry
	sys2 := sys.Copy()
	if err := d.Assign(sys2, "C1"); err != nil {
		Te.Fatal(err)
	}
	if sys2.PGName != "C1" || sys2.RotSym != 1 {
		Te.Errorf("forced assignment ignored: %s sigma %d", sys2.PGName, sys2.RotSym)
	}
}

//The detector is the standard thermo.Assigner, so the whole preparation
//pipeline can run through it.
func TestPrepareWithDetector(Te *testing.T) {
	h2o := []*thermo.Atom{
		{Symbol: "O", Z: 0.1173},
		{Symbol: "H", Y: 0.7572, Z: -0.4692},
		{Symbol: "H", Y: -0.7572, Z: -0.4692},
	}
	sys, err := thermo.NewSystem(h2o, []float64{-40.0, 3657.1, 3755.9}, -76.4, 1)
	if err != nil {
		Te.Fatal(err)
	}
	set := new(thermo.Settings)
	set.SetDefaults()
	set.ImagReal = 60.0
	if err := thermo.Prepare(sys, set, NewDetector()); err != nil {
		Te.Fatal(err)
	}
	if !sys.Prepared() {
		Te.Error("system not prepared")
	}
	if sys.Wavenum[0] != 40.0 {
		Te.Errorf("small imaginary mode not converted: %f", sys.Wavenum[0])
	}
	if sys.PGName != "C2v" || sys.RotSym != 2 {
		Te.Errorf("symmetry not assigned: %s sigma %d", sys.PGName, sys.RotSym)
	}
	if sys.Inert[0] <= 0 {
		Te.Errorf("moments not filled in: %v", sys.Inert)
	}
}

func TestRotSymFromName(Te *testing.T) {
	cases := map[string]int{
		"C1": 1, "Cs": 1, "Ci": 1, "Kh": 1, "C*v": 1, "D*h": 2,
		"C2": 2, "C3v": 3, "C2h": 2, "D3": 6, "D5d": 10, "D2h": 4,
		"S4": 2, "Td": 12, "Oh": 24, "Ih": 60,
	}
	for name, want := range cases {
		got, err := RotSymFromName(name)
		if err != nil {
			Te.Error(err)
			continue
		}
		if got != want {
			Te.Errorf("%s: got %d, want %d", name, got, want)
		}
	}
	if _, err := RotSymFromName("Zz9"); err == nil {
		Te.Error("nonsense group name should be refused")
	}
}
