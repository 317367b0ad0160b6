/*
 * symm.go, part of gothermo.
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

//Package symm derives the molecular point group and the rotational symmetry
//number from the geometry alone. The classification goes through the inertia
//tensor (single atom / linear / nonlinear top), then searches for proper
//rotations, reflection planes and the inversion center by testing geometric
//invariance of the atom set under candidate operations, and finally maps the
//element set found onto the usual point-group catalog. Everything is
//deterministic: same geometry in, same group out.
package symm

import (
	"math"

	thermo "github.com/rmera/gothermo"
	"gonum.org/v1/gonum/mat"
)

//Detector holds the tolerances of the symmetry search. The zero value is not
//usable; get one from NewDetector.
type Detector struct {
	Tol      float64 //geometric match tolerance, Angstrom
	MaxOrder int     //highest proper-rotation order searched on a single axis
}

//NewDetector returns a Detector with the default tolerances, which suit
//geometries optimized to normal quantum-chemistry convergence.
func NewDetector() *Detector {
	return &Detector{Tol: 0.1, MaxOrder: 12}
}

//site is one atom in center-of-mass frame.
type site struct {
	pos  [3]float64
	symb string
	mass float64
}

//Assign computes the principal moments of inertia of sys and fills
//sys.Inert, sys.PGName and sys.RotSym. If forced is non-empty, detection is
//skipped and the symmetry number is read from the catalog for that group
//instead; the moments are computed either way, as the rotational partition
//function needs them.
func (D *Detector) Assign(sys *thermo.System, forced string) error {
	moments, _, err := D.principal(sys.Atoms())
	if err != nil {
		return errDecorate(err, "Assign")
	}
	sys.Inert = moments
	if forced != "" {
		sigma, err := RotSymFromName(forced)
		if err != nil {
			return errDecorate(err, "Assign")
		}
		sys.PGName = forced
		sys.RotSym = sigma
		return nil
	}
	name, sigma, err := D.Detect(sys.Atoms())
	if err != nil {
		return errDecorate(err, "Assign")
	}
	sys.PGName = name
	sys.RotSym = sigma
	return nil
}

//PrincipalMoments returns the three principal moments of inertia of the
//atom set, in amu*A^2, ascending.
func (D *Detector) PrincipalMoments(atoms []*thermo.Atom) ([3]float64, error) {
	m, _, err := D.principal(atoms)
	if err != nil {
		return m, errDecorate(err, "PrincipalMoments")
	}
	return m, nil
}

//Detect returns the point-group label and the rotational symmetry number of
//the atom set.
func (D *Detector) Detect(atoms []*thermo.Atom) (string, int, error) {
	if len(atoms) == 0 {
		return "", 0, Error{"goThermo/symm: No atoms given", []string{"Detect"}, true}
	}
	if len(atoms) == 1 {
		//a single atom is spherically symmetric, nothing to search
		return "Kh", 1, nil
	}
	moments, axes, err := D.principal(atoms)
	if err != nil {
		return "", 0, errDecorate(err, "Detect")
	}
	sites := centered(atoms)
	if moments[0] < inertTol {
		return D.linearGroup(sites)
	}
	name := D.nonlinearGroup(sites, axes)
	sigma, err := RotSymFromName(name)
	if err != nil {
		return "", 0, errDecorate(err, "Detect")
	}
	return name, sigma, nil
}

//tolerance (amu*A^2) below which a principal moment is taken as zero.
const inertTol = 1e-3

//centered returns the atoms as sites in the center-of-mass frame.
func centered(atoms []*thermo.Atom) []site {
	var cm [3]float64
	var totmass float64
	for _, at := range atoms {
		cm[0] += at.Mass * at.X
		cm[1] += at.Mass * at.Y
		cm[2] += at.Mass * at.Z
		totmass += at.Mass
	}
	for i := range cm {
		cm[i] /= totmass
	}
	s := make([]site, len(atoms))
	for i, at := range atoms {
		s[i] = site{pos: [3]float64{at.X - cm[0], at.Y - cm[1], at.Z - cm[2]}, symb: at.Symbol, mass: at.Mass}
	}
	return s
}

//principal builds the inertia tensor in the center-of-mass frame and
//diagonalizes it. Returns the moments ascending (amu*A^2) and the matching
//principal axes as unit vectors.
func (D *Detector) principal(atoms []*thermo.Atom) ([3]float64, [3][3]float64, error) {
	var moments [3]float64
	var axes [3][3]float64
	if len(atoms) == 0 {
		return moments, axes, Error{"goThermo/symm: No atoms given", []string{"principal"}, true}
	}
	sites := centered(atoms)
	var xx, yy, zz, xy, xz, yz float64
	for _, s := range sites {
		x, y, z := s.pos[0], s.pos[1], s.pos[2]
		xx += s.mass * (y*y + z*z)
		yy += s.mass * (x*x + z*z)
		zz += s.mass * (x*x + y*y)
		xy -= s.mass * x * y
		xz -= s.mass * x * z
		yz -= s.mass * y * z
	}
	tensor := mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})
	var eig mat.EigenSym
	if !eig.Factorize(tensor, true) {
		return moments, axes, Error{"goThermo/symm: Can't diagonalize the inertia tensor", []string{"principal"}, true}
	}
	vals := eig.Values(nil) //ascending already
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	for i := 0; i < 3; i++ {
		if vals[i] < 0 && vals[i] > -inertTol {
			vals[i] = 0 //numerical noise around zero for linear tops
		}
		moments[i] = vals[i]
		axes[i] = normalize([3]float64{vecs.At(0, i), vecs.At(1, i), vecs.At(2, i)})
	}
	return moments, axes, nil
}

//linearGroup distinguishes the two linear groups by centrosymmetry.
func (D *Detector) linearGroup(sites []site) (string, int, error) {
	if D.invariant(sites, inversionMatrix()) {
		return "D*h", 2, nil
	}
	return "C*v", 1, nil
}

//nonlinearGroup runs the element search and the decision tree for a
//nonlinear top.
func (D *Detector) nonlinearGroup(sites []site, principal [3][3]float64) string {
	axes := D.candidateAxes(sites, principal)
	type rated struct {
		axis  [3]float64
		order int
	}
	var found []rated
	nmax := 1
	for _, ax := range axes {
		n := D.axisOrder(sites, ax)
		if n >= 2 {
			found = append(found, rated{ax, n})
			if n > nmax {
				nmax = n
			}
		}
	}
	inv := D.invariant(sites, inversionMatrix())
	if nmax < 2 {
		if inv {
			return "Ci"
		}
		if D.anyPlane(sites, axes) {
			return "Cs"
		}
		return "C1"
	}
	//multiple axes of order>=3 mean a cubic or icosahedral group
	high := 0
	var hiAxes [][3]float64
	for _, f := range found {
		if f.order >= 3 && !sameAxisIn(hiAxes, f.axis) {
			hiAxes = append(hiAxes, f.axis)
			high++
		}
	}
	if high >= 2 {
		switch {
		case nmax >= 5:
			return "Ih"
		case nmax == 4:
			return "Oh"
		default:
			return "Td"
		}
	}
	//single principal axis of order nmax
	var main [3]float64
	for _, f := range found {
		if f.order == nmax {
			main = f.axis
			break
		}
	}
	nC2perp := 0
	var c2seen [][3]float64
	for _, f := range found {
		if math.Abs(dot(f.axis, main)) < 0.05 && !sameAxisIn(c2seen, f.axis) {
			c2seen = append(c2seen, f.axis)
			nC2perp++
		}
	}
	sigmah := D.horizontalPlane(sites, main)
	nvert := D.verticalPlanes(sites, main, axes)
	n := nmax
	if nC2perp >= n {
		if sigmah {
			return "D" + itoa(n) + "h"
		}
		if nvert >= n {
			return "D" + itoa(n) + "d"
		}
		return "D" + itoa(n)
	}
	if sigmah {
		return "C" + itoa(n) + "h"
	}
	if nvert >= n {
		return "C" + itoa(n) + "v"
	}
	return "C" + itoa(n)
}

//candidateAxes collects the directions worth testing for proper rotations:
//the principal axes, the vector to each off-center atom and the midpoint of
//each same-element pair. For the point groups in the catalog this set always
//contains every rotation axis of the molecule.
func (D *Detector) candidateAxes(sites []site, principal [3][3]float64) [][3]float64 {
	var cand [][3]float64
	push := func(v [3]float64) {
		if norm(v) < 0.1 {
			return
		}
		u := normalize(v)
		if !sameAxisIn(cand, u) {
			cand = append(cand, u)
		}
	}
	for _, ax := range principal {
		push(ax)
	}
	for _, s := range sites {
		push(s.pos)
	}
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].symb != sites[j].symb {
				continue
			}
			push([3]float64{
				sites[i].pos[0] + sites[j].pos[0],
				sites[i].pos[1] + sites[j].pos[1],
				sites[i].pos[2] + sites[j].pos[2],
			})
		}
	}
	return cand
}

//axisOrder returns the largest n<=MaxOrder such that a rotation by 2pi/n
//about the axis maps the structure onto itself, or 1 if there is none.
func (D *Detector) axisOrder(sites []site, axis [3]float64) int {
	for n := D.MaxOrder; n >= 2; n-- {
		if D.invariant(sites, rotationMatrix(axis, 2*math.Pi/float64(n))) {
			return n
		}
	}
	return 1
}

//horizontalPlane tests for a mirror plane perpendicular to the main axis.
func (D *Detector) horizontalPlane(sites []site, main [3]float64) bool {
	return D.invariant(sites, reflectionMatrix(main))
}

//verticalPlanes counts distinct mirror planes containing the main axis.
//Candidate normals are the candidate axes themselves plus the difference
//vector of every same-element pair, projected perpendicular to the axis.
func (D *Detector) verticalPlanes(sites []site, main [3]float64, axes [][3]float64) int {
	var normals [][3]float64
	push := func(v [3]float64) {
		//remove the component along the axis: a vertical plane's normal is perpendicular to it
		d := dot(v, main)
		p := [3]float64{v[0] - d*main[0], v[1] - d*main[1], v[2] - d*main[2]}
		if norm(p) < 0.1 {
			return
		}
		u := normalize(p)
		if !sameAxisIn(normals, u) {
			normals = append(normals, u)
		}
	}
	for _, ax := range axes {
		push(ax)
	}
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].symb != sites[j].symb {
				continue
			}
			push([3]float64{
				sites[i].pos[0] - sites[j].pos[0],
				sites[i].pos[1] - sites[j].pos[1],
				sites[i].pos[2] - sites[j].pos[2],
			})
		}
	}
	count := 0
	for _, nr := range normals {
		if D.invariant(sites, reflectionMatrix(nr)) {
			count++
		}
	}
	return count
}

//anyPlane looks for any mirror plane at all, for the Cs assignment.
func (D *Detector) anyPlane(sites []site, axes [][3]float64) bool {
	var normals [][3]float64
	push := func(v [3]float64) {
		if norm(v) < 0.1 {
			return
		}
		u := normalize(v)
		if !sameAxisIn(normals, u) {
			normals = append(normals, u)
		}
	}
	for _, ax := range axes {
		push(ax)
	}
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].symb != sites[j].symb {
				continue
			}
			push([3]float64{
				sites[i].pos[0] - sites[j].pos[0],
				sites[i].pos[1] - sites[j].pos[1],
				sites[i].pos[2] - sites[j].pos[2],
			})
		}
	}
	for _, nr := range normals {
		if D.invariant(sites, reflectionMatrix(nr)) {
			return true
		}
	}
	return false
}

//invariant reports whether applying op maps the atom set onto itself: every
//transformed atom must land, within Tol, on a distinct atom of the same
//element.
func (D *Detector) invariant(sites []site, op [3][3]float64) bool {
	matched := make([]bool, len(sites))
	for _, s := range sites {
		p := apply(op, s.pos)
		ok := false
		for j, t := range sites {
			if matched[j] || t.symb != s.symb {
				continue
			}
			if dist(p, t.pos) < D.Tol {
				matched[j] = true
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
