/*
 * lowvib.go, part of gothermo.
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

import "math"

//The per-mode vibrational contributions under each low-frequency treatment.
//Everything here is a pure function of (wavenumber, temperature, settings):
//the wavenumber arrives already scaled by whichever of the four scale factors
//applies to the quantity being computed, and is always positive, as imaginary
//modes never reach these functions.
//
//References: Truhlar's raising, J. Phys. Chem. B 115 (2011) 14556;
//Grimme's entropy interpolation, Chem. Eur. J. 18 (2012) 9955; Minenkov's
//extension to the internal energy, J. Comput. Chem. 44 (2023) 1807; the
//damping function, Chai and Head-Gordon, Phys. Chem. Chem. Phys. 10
//(2008) 6615.

//hoS returns the harmonic-oscillator entropy of one mode, J/(mol*K).
//wav in cm^-1.
func hoS(wav, T float64) float64 {
	x := Planck * wav * CLight / (Boltzmann * T)
	emx := math.Exp(-x)
	return RGas * (x*emx/(1-emx) - math.Log1p(-emx))
}

//hoU returns the thermal part (above the ZPE) of the harmonic-oscillator
//internal energy of one mode, J/mol.
func hoU(wav, T float64) float64 {
	x := Planck * wav * CLight / (Boltzmann * T)
	emx := math.Exp(-x)
	return RGas * T * x * emx / (1 - emx)
}

//hoCV returns the harmonic-oscillator heat capacity of one mode, J/(mol*K).
func hoCV(wav, T float64) float64 {
	x := Planck * wav * CLight / (Boltzmann * T)
	emx := math.Exp(-x)
	d := 1 - emx
	return RGas * x * x * emx / (d * d)
}

//hoQ returns the partition function of one mode referenced to v=0 and to the
//bottom of the well.
func hoQ(wav, T float64) (qv, qbot float64) {
	x := Planck * wav * CLight / (Boltzmann * T)
	emx := math.Exp(-x)
	qv = 1 / (1 - emx)
	qbot = math.Exp(-x/2) / (1 - emx)
	return qv, qbot
}

//freeRotorS is the entropy of a one-dimensional free rotor whose moment of
//inertia equals that of the vibration, damped against the average molecular
//moment Bav (kg*m^2). This is the low-frequency limit the interpolating
//treatments blend towards.
func freeRotorS(wav, T, bav float64) float64 {
	nu := wav * CLight
	mu := Planck / (8 * math.Pi * math.Pi * nu)
	mup := mu * bav / (mu + bav)
	return RGas * (0.5 + math.Log(math.Sqrt(8*math.Pi*math.Pi*math.Pi*mup*Boltzmann*T)/Planck))
}

//dampW is the Head-Gordon damping weight w(nu)=1/(1+(nu0/nu)^4) shared by
//all the interpolating treatments. w->1 recovers the harmonic oscillator,
//w->0 the free rotor.
func dampW(wav, wav0 float64) float64 {
	r := wav0 / wav
	r2 := r * r
	return 1 / (1 + r2*r2)
}

//modeS returns the entropy contribution of one mode under the active
//treatment, J/(mol*K). wav is the already-scaled, positive wavenumber.
func modeS(set *Settings, wav, T float64) float64 {
	switch set.Treatment {
	case Truhlar:
		return hoS(math.Max(wav, set.RaiseTo), T)
	case Grimme, Minenkov:
		w := dampW(wav, set.Interp)
		return w*hoS(wav, T) + (1-w)*freeRotorS(wav, T, set.Bav.value())
	case HeadGordon:
		if set.HGEntropy {
			w := dampW(wav, set.Interp)
			return w*hoS(wav, T) + (1-w)*freeRotorS(wav, T, set.Bav.value())
		}
		return hoS(wav, T)
	}
	return hoS(wav, T)
}

//modeU returns the thermal internal-energy contribution of one mode, J/mol.
func modeU(set *Settings, wav, T float64) float64 {
	switch set.Treatment {
	case Truhlar:
		return hoU(math.Max(wav, set.RaiseTo), T)
	case Minenkov, HeadGordon:
		w := dampW(wav, set.Interp)
		return w*hoU(wav, T) + (1-w)*0.5*RGas*T
	}
	return hoU(wav, T)
}

//modeCV returns the heat-capacity contribution of one mode, J/(mol*K).
func modeCV(set *Settings, wav, T float64) float64 {
	switch set.Treatment {
	case Truhlar:
		return hoCV(math.Max(wav, set.RaiseTo), T)
	case Minenkov, HeadGordon:
		w := dampW(wav, set.Interp)
		return w*hoCV(wav, T) + (1-w)*0.5*RGas
	}
	return hoCV(wav, T)
}

//modeQ returns the two per-mode partition functions. The interpolating
//treatments leave q harmonic; only Truhlar's raising changes it.
func modeQ(set *Settings, wav, T float64) (qv, qbot float64) {
	if set.Treatment == Truhlar {
		wav = math.Max(wav, set.RaiseTo)
	}
	return hoQ(wav, T)
}
