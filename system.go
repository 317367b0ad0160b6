/*
 * system.go, part of gothermo.
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

package thermo

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of-bounds
 * fields**/

//Atom contains one atom of the system: its element, mass and Cartesian position.
//Positions are in Angstrom, masses in amu.
type Atom struct {
	Symbol string
	Mass   float64
	X      float64
	Y      float64
	Z      float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	Newat.X = A.X
	Newat.Y = A.Y
	Newat.Z = A.Z
	return Newat
}

//ELevel is one electronic level: its energy above the ground level, in eV,
//and its degeneracy.
type ELevel struct {
	Energy float64
	Degen  int
}

//System gathers everything the engine needs to know about one molecule:
//atoms, harmonic wavenumbers, the electronic energy and spin state, plus the
//geometry-derived quantities (principal moments of inertia, point group,
//rotational symmetry number) filled in by the symm package. A System is built
//once by the loader, mutated only by ConvertImaginary and Normalize, and is
//strictly read-only during any (possibly parallel) evaluation.
type System struct {
	atoms    []*Atom
	Wavenum  []float64 //harmonic wavenumbers in cm^-1, negative = imaginary mode
	E        float64   //electronic energy, Hartree
	SpinMult int
	Levels   []ELevel   //electronic levels. Empty means "one ground level, degeneracy = SpinMult"
	Inert    [3]float64 //principal moments of inertia, amu*A^2, ascending
	PGName   string
	RotSym   int
	TotMass  float64 //amu
	prepared bool
}

//NewSystem builds a System from what the loader parsed out of a quantum chemistry
//output: the atoms, the signed wavenumber list, the electronic energy (Hartree)
//and the spin multiplicity. It returns an error on empty atoms, or on a
//polyatomic system with no frequency data, as nothing useful can be computed
//then. Atoms with zero mass get the standard weight for their element.
func NewSystem(atoms []*Atom, wavenum []float64, energy float64, spinmult int) (*System, error) {
	if len(atoms) == 0 {
		return nil, errNoAtoms()
	}
	if len(atoms) > 1 && len(wavenum) == 0 {
		return nil, errNoFreqs()
	}
	S := new(System)
	S.atoms = atoms
	S.Wavenum = wavenum
	S.E = energy
	S.SpinMult = spinmult
	for _, at := range S.atoms {
		if at.Mass == 0 {
			m, err := MassFromSymbol(at.Symbol)
			if err != nil {
				return nil, errDecorate(err, "NewSystem")
			}
			at.Mass = m
		}
	}
	return S, nil
}

//Len returns the number of atoms in the system.
func (S *System) Len() int {
	if S == nil {
		panic(ErrNilSystem)
	}
	return len(S.atoms)
}

//Atom returns the Atom corresponding to the index i.
//Panics if out of range.
func (S *System) Atom(i int) *Atom {
	if i >= S.Len() || i < 0 {
		panic(ErrAtomOutRange)
	}
	return S.atoms[i]
}

//Atoms returns the atom slice itself, not a copy. The caller must not
//modify it after preparation.
func (S *System) Atoms() []*Atom {
	if S == nil {
		panic(ErrNilSystem)
	}
	return S.atoms
}

//Masses returns a slice with the masses of all atoms, and an error if any
//mass is missing.
func (S *System) Masses() ([]float64, error) {
	mass := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		if at.Mass == 0 {
			return nil, CError{"goThermo: Not all masses are assigned", []string{"Masses"}}
		}
		mass[i] = at.Mass
	}
	return mass, nil
}

//NImag returns the number of imaginary (negative) wavenumbers currently in
//the system.
func (S *System) NImag() int {
	n := 0
	for _, w := range S.Wavenum {
		if w < 0 {
			n++
		}
	}
	return n
}

//NFreq returns the number of vibrational modes.
func (S *System) NFreq() int { return len(S.Wavenum) }

//ConvertImaginary turns every imaginary wavenumber with norm smaller than the
//threshold (cm^-1) into the corresponding real one, and returns how many were
//converted. Larger imaginary modes stay as they are (they will simply be
//excluded from the vibrational sums). A threshold <=0 disables the conversion.
//The pass is idempotent: once a mode is positive it is never touched again.
func (S *System) ConvertImaginary(threshold float64) int {
	if S == nil {
		panic(ErrNilSystem)
	}
	if threshold <= 0 {
		return 0
	}
	n := 0
	for i, w := range S.Wavenum {
		if w < 0 && -w < threshold {
			S.Wavenum[i] = -w
			n++
		}
	}
	return n
}

//Normalize performs the second and last mutation of the System before it
//becomes read-only: it sums the total mass, installs the default electronic
//level list (a single ground level with degeneracy = spin multiplicity) if
//the loader didn't provide one, and clamps degeneracies to at least 1.
func (S *System) Normalize() {
	if S == nil {
		panic(ErrNilSystem)
	}
	S.TotMass = 0
	for _, at := range S.atoms {
		S.TotMass += at.Mass
	}
	if len(S.Levels) == 0 {
		g := S.SpinMult
		if g < 1 {
			g = 1
		}
		S.Levels = []ELevel{{Energy: 0, Degen: g}}
	}
	for i := range S.Levels {
		if S.Levels[i].Degen < 1 {
			S.Levels[i].Degen = 1
		}
	}
	S.prepared = true
}

//Prepared tells whether Normalize has run already.
func (S *System) Prepared() bool { return S != nil && S.prepared }

//Assigner fills the symmetry-derived fields of a System (Inert, PGName,
//RotSym), honoring a forced point-group name. The symm package provides the
//standard implementation.
type Assigner interface {
	Assign(sys *System, forced string) error
}

//Prepare runs the whole preparation pipeline once, driven by the settings:
//small imaginary modes become real per set.ImagReal, the symmetry fields are
//assigned (honoring set.PGName when the user forced a group) and the system
//is normalized, after which it is read-only. Already prepared systems pass
//through untouched, so callers can prepare eagerly or let the scan scheduler
//do it.
func Prepare(sys *System, set *Settings, a Assigner) error {
	if sys.Prepared() {
		return nil
	}
	sys.ConvertImaginary(set.ImagReal)
	if a != nil {
		if err := a.Assign(sys, set.PGName); err != nil {
			return errDecorate(err, "Prepare")
		}
	}
	sys.Normalize()
	return nil
}

//Copy returns a deep copy of the System.
func (S *System) Copy() *System {
	if S == nil {
		panic(ErrNilSystem)
	}
	N := new(System)
	N.atoms = make([]*Atom, len(S.atoms))
	for i, at := range S.atoms {
		N.atoms[i] = at.Copy()
	}
	N.Wavenum = append([]float64{}, S.Wavenum...)
	N.E = S.E
	N.SpinMult = S.SpinMult
	N.Levels = append([]ELevel{}, S.Levels...)
	N.Inert = S.Inert
	N.PGName = S.PGName
	N.RotSym = S.RotSym
	N.TotMass = S.TotMass
	N.prepared = S.prepared
	return N
}
