/*
 * settings_test.go, part of gothermo.
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
	"testing"
)

func TestValidateSubstitution(Te *testing.T) {
	set := defaultSettings()
	set.Treatment = Grimme
	set.Bav = BavCompact
	warns, err := set.Validate()
	if err != nil {
		Te.Fatal(err)
	}
	//a conflicting choice gets substituted, with a warning, instead of
	//aborting the run
	if len(warns) == 0 {
		Te.Error("expected a warning for BavCompact outside the Head-Gordon treatment")
	}
	if set.Bav != BavGrimme {
		Te.Error("conflicting Bav preset not substituted")
	}
	fmt.Println("warnings:", warns)
}

func TestValidateRejects(Te *testing.T) {
	set := defaultSettings()
	set.T = -5
	if _, err := set.Validate(); err == nil {
		Te.Error("negative temperature should not validate")
	}
	set = defaultSettings()
	set.SclZPE = -1
	if _, err := set.Validate(); err == nil {
		Te.Error("negative scale factor should not validate")
	}
}

func TestTreatmentNames(Te *testing.T) {
	for _, tr := range []Treatment{Harmonic, Truhlar, Grimme, Minenkov, HeadGordon} {
		back, err := TreatmentFromString(tr.String())
		if err != nil {
			Te.Error(err)
		}
		if back != tr {
			Te.Errorf("%v did not round-trip", tr)
		}
	}
	if _, err := TreatmentFromString("quasi-whatever"); err == nil {
		Te.Error("unknown treatment name should be refused")
	}
}

func TestConcentrationParsing(Te *testing.T) {
	set := defaultSettings()
	if _, ok := set.Concentration(); ok {
		Te.Error("the default \"0\" means no override")
	}
	set.Conc = "0.5"
	c, ok := set.Concentration()
	if !ok || c != 0.5 {
		Te.Errorf("concentration not parsed: %f %v", c, ok)
	}
	set.Conc = "garbage"
	if _, ok := set.Concentration(); ok {
		Te.Error("unparsable concentration should fall back to the pressure")
	}
}

func TestScanning(Te *testing.T) {
	set := defaultSettings()
	if set.Scanning() {
		Te.Error("defaults should not scan")
	}
	set.Tlow, set.Thigh, set.Tstep = 200, 400, 50
	if !set.Scanning() {
		Te.Error("a temperature range should scan")
	}
}
