/*
 * constants.go, part of gothermo.
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

//This provides the physical constants and conversion factors used in the
//statistical-mechanical formulas. All internal arithmetic is done in SI units
//(J, K, kg, m). Conversion to chemistry units (kcal/mol, Hartree, cal/mol/K)
//happens only when results leave the engine, to avoid repeated rounding.

//Physical constants, CODATA 2018. SI units.
const (
	Planck    = 6.62607015e-34   //Planck constant, J*s
	Boltzmann = 1.380649e-23     //Boltzmann constant, J/K
	Avogadro  = 6.02214076e23    //1/mol
	RGas      = 8.314462618      //molar gas constant, J/(mol*K)
	CLight    = 2.99792458e10    //speed of light, cm/s. In cm so that Wavenum*CLight is directly a frequency
	Amu2Kg    = 1.6605390666e-27 //atomic mass unit, kg
	EV2J      = 1.602176634e-19  //electron-volt, J
)

//Conversions
const (
	Atm2Pa  = 101325.0   //standard atmosphere, Pa
	Cal2J   = 4.184      //thermochemical calorie, J
	H2KJmol = 2625.5002  //Hartree to kJ/mol
	H2Kcal  = 627.509474 //Hartree to kcal/mol
	J2Kcal  = 1 / (Cal2J * 1000)
	A2M     = 1e-10 //Angstrom to m
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
)

//Defaults, following common thermochemistry practice.
const (
	DefT = 298.15 //K
	DefP = 1.0    //atm
)
