/*
 * settings.go, part of gothermo.
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
	"strconv"
)

//Treatment selects how low-lying vibrational frequencies enter the
//thermodynamic sums. It is a closed set: every variant shares the same
//per-mode input/output contract, so the dispatch is a plain switch rather
//than an interface hierarchy.
type Treatment int

const (
	Harmonic Treatment = iota //plain quantum harmonic oscillator
	Truhlar                   //frequencies below RaiseTo are raised to RaiseTo for S, U(T)-U(0), CV and q
	Grimme                    //entropy interpolated towards a free rotor below Interp
	Minenkov                  //like Grimme, but interpolating also U and CV
	HeadGordon                //free-rotor interpolation of U/CV with configurable Bav, optionally also S
)

func (t Treatment) String() string {
	switch t {
	case Harmonic:
		return "harmonic"
	case Truhlar:
		return "truhlar"
	case Grimme:
		return "grimme"
	case Minenkov:
		return "minenkov"
	case HeadGordon:
		return "headgordon"
	}
	return "unknown"
}

//TreatmentFromString returns the Treatment named by s, as spelled in
//configuration files and flags.
func TreatmentFromString(s string) (Treatment, error) {
	for _, t := range []Treatment{Harmonic, Truhlar, Grimme, Minenkov, HeadGordon} {
		if s == t.String() {
			return t, nil
		}
	}
	return Harmonic, CError{fmt.Sprintf("goThermo: Unknown low-frequency treatment %q", s), []string{"TreatmentFromString"}}
}

//BavPreset selects the average molecular moment of inertia used as the
//free-rotor reference by the interpolating treatments.
type BavPreset int

const (
	//BavGrimme is the value from Grimme's original paper, and the only preset
	//meaningful outside the Head-Gordon treatment.
	BavGrimme BavPreset = iota
	//BavCompact is the Head-Gordon-only alternative, about two orders of
	//magnitude smaller.
	BavCompact
)

//value returns the preset in kg*m^2.
func (b BavPreset) value() float64 {
	if b == BavCompact {
		return 1.0e-46
	}
	return 1.0e-44
}

//Settings holds every knob of a thermochemistry run. Fill it (or start from
//SetDefaults), call Validate once, and treat it as immutable from the moment
//a computation begins. The zero value is not usable directly.
type Settings struct {
	T     float64 //temperature, K. Ignored when Tstep>0
	P     float64 //pressure, atm. Ignored when Pstep>0
	Tlow  float64
	Thigh float64
	Tstep float64 //0 means no temperature scan
	Plow  float64
	Phigh float64
	Pstep float64 //0 means no pressure scan

	Conc string //molar concentration override, mol/L. "0" or unparsable means "use the pressure"

	SclZPE  float64 //frequency scale factor for the ZPE
	SclHeat float64 //for U(T)-U(0)
	SclS    float64 //for S
	SclCV   float64 //for CV

	Treatment Treatment
	RaiseTo   float64 //Truhlar: frequencies below this (cm^-1) are raised to it
	Interp    float64 //Grimme/Minenkov/Head-Gordon interpolation threshold nu_0, cm^-1
	HGEntropy bool    //extend the Head-Gordon interpolation to the entropy
	Bav       BavPreset

	ImagReal float64 //imaginary modes with norm below this (cm^-1) become real. 0 disables
	PGName   string  //forced point group. Empty means "detect"
	Eexter   float64 //override for the electronic energy, Hartree. 0 means "use the loader's"

	NThreads int //requested thread count. <=0 means "let the scheduler decide"
}

//SetDefaults fills S with the customary defaults: 298.15 K, 1 atm, unit
//scale factors, harmonic treatment, 100 cm^-1 raising/interpolation
//thresholds.
func (S *Settings) SetDefaults() {
	S.T = DefT
	S.P = DefP
	S.Conc = "0"
	S.SclZPE = 1.0
	S.SclHeat = 1.0
	S.SclS = 1.0
	S.SclCV = 1.0
	S.Treatment = Harmonic
	S.RaiseTo = 100.0
	S.Interp = 100.0
	S.Bav = BavGrimme
}

//Validate checks the settings for consistency, resolving what it can and
//returning warnings for the resolutions, an error for the rest. In
//particular, the compact Bav preset only makes physical sense for the
//Head-Gordon treatment; elsewhere it is replaced by the Grimme value and a
//warning is returned instead of an error.
func (S *Settings) Validate() ([]string, error) {
	var warns []string
	if S.Tstep == 0 && S.T <= 0 {
		return warns, CError{fmt.Sprintf("goThermo: Non-positive temperature %f", S.T), []string{"Validate"}}
	}
	if S.Tstep != 0 && (S.Tstep < 0 || S.Thigh < S.Tlow || S.Tlow <= 0) {
		return warns, CError{"goThermo: Malformed temperature scan range", []string{"Validate"}}
	}
	if S.Pstep == 0 && S.P <= 0 {
		return warns, CError{fmt.Sprintf("goThermo: Non-positive pressure %f", S.P), []string{"Validate"}}
	}
	if S.Pstep != 0 && (S.Pstep < 0 || S.Phigh < S.Plow || S.Plow <= 0) {
		return warns, CError{"goThermo: Malformed pressure scan range", []string{"Validate"}}
	}
	for _, v := range []float64{S.SclZPE, S.SclHeat, S.SclS, S.SclCV} {
		if v <= 0 {
			return warns, CError{"goThermo: Frequency scale factors must be positive", []string{"Validate"}}
		}
	}
	if S.Treatment == Truhlar && S.RaiseTo <= 0 {
		return warns, CError{"goThermo: The Truhlar treatment needs a positive raising target", []string{"Validate"}}
	}
	if (S.Treatment == Grimme || S.Treatment == Minenkov || S.Treatment == HeadGordon) && S.Interp <= 0 {
		return warns, CError{"goThermo: The interpolating treatments need a positive threshold", []string{"Validate"}}
	}
	if S.Bav == BavCompact && S.Treatment != HeadGordon {
		warns = append(warns, fmt.Sprintf("The compact Bav preset only applies to the Head-Gordon treatment, not to %s. Using Grimme's value", S.Treatment))
		S.Bav = BavGrimme
	}
	return warns, nil
}

//Concentration returns the molar concentration override (mol/L) and whether
//it is active. An empty, zero or unparsable Conc string deactivates the
//override and the translational partition function falls back to the
//pressure, which is always a defined state.
func (S *Settings) Concentration() (float64, bool) {
	if S.Conc == "" || S.Conc == "0" {
		return 0, false
	}
	c, err := strconv.ParseFloat(S.Conc, 64)
	if err != nil || c <= 0 {
		return 0, false
	}
	return c, true
}

//Scanning tells whether the settings describe a temperature and/or
//pressure scan rather than a single point.
func (S *Settings) Scanning() bool {
	return S.Tstep != 0 || S.Pstep != 0
}

//Energy returns the electronic energy the run should report: the Eexter
//override when one was given, otherwise the value the loader parsed.
func (S *Settings) Energy(loaded float64) float64 {
	if S.Eexter != 0 {
		return S.Eexter
	}
	return loaded
}
