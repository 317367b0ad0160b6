/*
 * grid.go, part of gothermo.
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
	"github.com/rmera/gothermo"
)

//Point is one temperature/pressure condition of a scan.
type Point struct {
	T float64 //K
	P float64 //atm
}

//Grid is the ordered list of conditions a scan evaluates. The order is
//fixed: temperature ascending, and within each temperature, pressure
//ascending. Output rows always follow it, no matter how the evaluations
//were scheduled.
type Grid []Point

//numSteps counts the points of an inclusive range with the given step.
//A non-positive step, or hi below lo, collapses to the single point lo.
func numSteps(lo, hi, step float64) int {
	if step <= 0 || hi < lo {
		return 1
	}
	return int((hi-lo)/step) + 1
}

//NewGrid builds the scan grid from the settings. A non-scanning Settings
//yields the single point (set.T, set.P). Scanning in only one of the two
//variables holds the other at its single-point value.
func NewGrid(set *thermo.Settings) Grid {
	ts := []float64{set.T}
	if set.Tstep > 0 && set.Thigh >= set.Tlow && set.Tlow > 0 {
		n := numSteps(set.Tlow, set.Thigh, set.Tstep)
		ts = make([]float64, n)
		for i := range ts {
			ts[i] = set.Tlow + float64(i)*set.Tstep
		}
	}
	ps := []float64{set.P}
	if set.Pstep > 0 && set.Phigh >= set.Plow && set.Plow > 0 {
		n := numSteps(set.Plow, set.Phigh, set.Pstep)
		ps = make([]float64, n)
		for i := range ps {
			ps[i] = set.Plow + float64(i)*set.Pstep
		}
	}
	g := make(Grid, 0, len(ts)*len(ps))
	for _, t := range ts {
		for _, p := range ps {
			g = append(g, Point{T: t, P: p})
		}
	}
	return g
}
