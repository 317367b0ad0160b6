/*
 * partition.go, part of gothermo.
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

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

//Result is the outcome of one partition-function evaluation at a given
//temperature and pressure. Energies are in J/mol, entropies and heat
//capacities in J/(mol*K); the methods below convert to the conventional
//chemistry units at the output boundary. A Result is never mutated after
//creation.
type Result struct {
	T float64 //K
	P float64 //atm

	ZPE   float64 //zero-point vibrational energy
	Ucorr float64 //thermal correction to the internal energy, ZPE included
	Hcorr float64
	Gcorr float64
	S     float64
	CV    float64
	CP    float64

	LnQv   float64 //log of the molecular partition function referenced to v=0
	LnQbot float64 //same, referenced to the bottom of the well

	NImag int //imaginary modes excluded from the sums
}

//Qv returns the partition function referenced to v=0, normalized per mole.
func (r *Result) Qv() float64 { return math.Exp(r.LnQv) / Avogadro }

//Qbot returns the partition function referenced to the bottom of the
//vibrational well, normalized per mole.
func (r *Result) Qbot() float64 { return math.Exp(r.LnQbot) / Avogadro }

//UcorrKcal, HcorrKcal and GcorrKcal return the thermal corrections in kcal/mol.
func (r *Result) UcorrKcal() float64 { return r.Ucorr / (Cal2J * 1000) }

func (r *Result) HcorrKcal() float64 { return r.Hcorr / (Cal2J * 1000) }

func (r *Result) GcorrKcal() float64 { return r.Gcorr / (Cal2J * 1000) }

//AbsU returns the absolute internal energy in Hartree, given the (possibly
//overridden) electronic energy in Hartree. AbsH and AbsG are analogous.
func (r *Result) AbsU(energy float64) float64 { return energy + r.Ucorr/1000/H2KJmol }

func (r *Result) AbsH(energy float64) float64 { return energy + r.Hcorr/1000/H2KJmol }

func (r *Result) AbsG(energy float64) float64 { return energy + r.Gcorr/1000/H2KJmol }

//SCal, CVCal and CPCal return entropy and heat capacities in cal/(mol*K).
func (r *Result) SCal() float64 { return r.S / Cal2J }

func (r *Result) CVCal() float64 { return r.CV / Cal2J }

func (r *Result) CPCal() float64 { return r.CP / Cal2J }

//vibTotals accumulates the vibrational sums. The log of the per-mode
//partition-function product is kept instead of the product itself, which
//underflows for large molecules.
type vibTotals struct {
	zpe, u, s, cv float64
	lnqv, lnqbot  float64
}

//tolerance (amu*A^2) below which a principal moment is considered zero;
//same criterion the classical linearity check uses.
const inertTol = 1e-3

//Evaluate computes the thermodynamic state functions of the prepared system
//sys at temperature T (K) and pressure P (atm), single-threaded.
func Evaluate(sys *System, set *Settings, T, P float64) (*Result, error) {
	return evaluate(sys, set, T, P, 1)
}

//EvaluateParallel is Evaluate with the per-mode vibrational summation split
//across the given number of workers. It produces the same numbers as
//Evaluate up to floating-point reassociation (well within 1e-9 relative),
//and is worth it for single-point evaluations of large molecules.
func EvaluateParallel(sys *System, set *Settings, T, P float64, workers int) (*Result, error) {
	if workers < 1 {
		workers = 1
	}
	return evaluate(sys, set, T, P, workers)
}

func evaluate(sys *System, set *Settings, T, P float64, workers int) (*Result, error) {
	if !sys.Prepared() {
		panic(ErrNotPrepared)
	}
	if T <= 0 {
		return nil, CError{fmt.Sprintf("goThermo: Non-positive temperature %f", T), []string{"Evaluate"}}
	}
	r := &Result{T: T, P: P, NImag: sys.NImag()}

	//Translational. With a concentration override the standard state is
	//the given molarity, otherwise the ideal-gas volume at (T,P).
	m := sys.TotMass * Amu2Kg
	var vol float64
	if c, ok := set.Concentration(); ok {
		vol = 1 / (1000 * Avogadro * c) //m^3 per molecule at c mol/L
	} else {
		vol = Boltzmann * T / (P * Atm2Pa)
	}
	lnqt := 1.5*math.Log(2*math.Pi*m*Boltzmann*T/(Planck*Planck)) + math.Log(vol)
	sTrans := RGas * (lnqt + 2.5)
	uTrans := 1.5 * RGas * T
	cvTrans := 1.5 * RGas

	//Rotational. Branches on single-atom, linear and general nonlinear tops.
	//A near-zero middle moment on a nominally nonlinear system falls back to
	//the linear branch rather than producing a singular logarithm.
	lnqr, uRot, cvRot, sRot := rotational(sys, T)

	//Electronic: Boltzmann sum over the level list. With the default single
	//ground level the internal-energy and heat-capacity terms vanish and
	//only the degeneracy survives, in the entropy.
	lnqe, uElec, cvElec := electronic(sys, T)
	sElec := RGas*lnqe + uElec/T

	//Vibrational, per mode through the active treatment.
	vib := sumVib(sys, set, T, workers)

	r.ZPE = vib.zpe
	r.Ucorr = vib.zpe + uTrans + uRot + uElec + vib.u
	r.Hcorr = r.Ucorr + RGas*T
	r.S = sTrans + sRot + sElec + vib.s
	r.Gcorr = r.Hcorr - T*r.S
	r.CV = cvTrans + cvRot + cvElec + vib.cv
	r.CP = r.CV + RGas
	r.LnQv = lnqt + lnqr + lnqe + vib.lnqv
	r.LnQbot = lnqt + lnqr + lnqe + vib.lnqbot
	return r, nil
}

//rotational returns ln(q_rot) and the rotational U, CV and S.
func rotational(sys *System, T float64) (lnqr, u, cv, s float64) {
	sigma := float64(sys.RotSym)
	if sigma < 1 {
		sigma = 1
	}
	sum := sys.Inert[0] + sys.Inert[1] + sys.Inert[2]
	switch {
	case sys.Len() == 1 || sum < inertTol:
		//single atom: no rotational degrees of freedom at all
		return 0, 0, 0, 0
	case sys.Inert[0] < inertTol:
		//linear: the moments ascend, so a linear top is [0, I, I] and only
		//the smallest one vanishes
		ia := sys.Inert[2] * Amu2Kg * A2M * A2M
		qr := 8 * math.Pi * math.Pi * ia * Boltzmann * T / (sigma * Planck * Planck)
		return math.Log(qr), RGas * T, RGas, RGas * (math.Log(qr) + 1)
	default:
		k := 8 * math.Pi * math.Pi * Boltzmann * T / (Planck * Planck)
		prod := 1.0
		for _, in := range sys.Inert {
			prod *= in * Amu2Kg * A2M * A2M * k
		}
		lnqr = math.Log(math.Sqrt(math.Pi*prod) / sigma)
		return lnqr, 1.5 * RGas * T, 1.5 * RGas, RGas * (lnqr + 1.5)
	}
}

//electronic returns ln(q_elec) plus the electronic U and CV from the mean
//and fluctuation of the level energies.
func electronic(sys *System, T float64) (lnqe, u, cv float64) {
	var q, mean, meansq float64
	for _, lv := range sys.Levels {
		e := lv.Energy * EV2J
		b := float64(lv.Degen) * math.Exp(-e/(Boltzmann*T))
		q += b
		mean += e * b
		meansq += e * e * b
	}
	mean /= q
	meansq /= q
	u = Avogadro * mean
	cv = Avogadro * (meansq - mean*mean) / (Boltzmann * T * T)
	return math.Log(q), u, cv
}

//sumVib adds up the per-mode contributions, excluding imaginary modes.
//The four scale factors are applied independently, each to the quantity it
//belongs to. With more than one worker the mode list is split in contiguous
//chunks and the chunk subtotals are reduced in chunk order, so the result
//does not depend on which goroutine finishes first.
func sumVib(sys *System, set *Settings, T float64, workers int) vibTotals {
	n := len(sys.Wavenum)
	if n == 0 {
		return vibTotals{}
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return sumVibRange(sys, set, T, 0, n)
	}
	parts := make([]vibTotals, workers)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			parts[w] = sumVibRange(sys, set, T, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()
	zpe := make([]float64, len(parts))
	u := make([]float64, len(parts))
	s := make([]float64, len(parts))
	cv := make([]float64, len(parts))
	lnqv := make([]float64, len(parts))
	lnqbot := make([]float64, len(parts))
	for i, p := range parts {
		zpe[i], u[i], s[i], cv[i], lnqv[i], lnqbot[i] = p.zpe, p.u, p.s, p.cv, p.lnqv, p.lnqbot
	}
	return vibTotals{
		zpe:    floats.Sum(zpe),
		u:      floats.Sum(u),
		s:      floats.Sum(s),
		cv:     floats.Sum(cv),
		lnqv:   floats.Sum(lnqv),
		lnqbot: floats.Sum(lnqbot),
	}
}

func sumVibRange(sys *System, set *Settings, T float64, lo, hi int) vibTotals {
	var t vibTotals
	for i := lo; i < hi; i++ {
		wav := sys.Wavenum[i]
		if wav <= 0 {
			continue //true imaginary mode, excluded (and counted elsewhere)
		}
		t.zpe += 0.5 * Planck * wav * set.SclZPE * CLight * Avogadro
		t.u += modeU(set, wav*set.SclHeat, T)
		t.s += modeS(set, wav*set.SclS, T)
		t.cv += modeCV(set, wav*set.SclCV, T)
		qv, qbot := modeQ(set, wav*set.SclHeat, T)
		t.lnqv += math.Log(qv)
		t.lnqbot += math.Log(qbot)
	}
	return t
}
