/*
 * doc.go, part of gothermo.
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
 * Gothermo is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package thermo is the main package of the goThermo library. It turns a parsed molecular
description (atoms, harmonic wavenumbers, electronic energy and spin state) into
thermodynamic state functions by means of the standard statistical-mechanical
partition functions.


	**goThermo Capabilities**

    Computes thermal corrections to U, H and G, the entropy, the heat capacities
	CV and CP and the molecular partition function (referenced both to v=0 and to
	the bottom of the well) at any temperature and pressure.

    Implements several treatments for low-lying vibrational frequencies: the plain
	harmonic oscillator, Truhlar's frequency raising, Grimme's entropy
	interpolation, Minenkov's entropy+energy interpolation and the Head-Gordon
	free-rotor interpolation with a configurable average moment of inertia.

    Detects the molecular point group and the rotational symmetry number from the
	geometry alone (subpackage symm).

    Scans rectangular temperature/pressure grids in parallel, choosing between
	grid-level and mode-level parallelism depending on the shape of the problem
	(subpackage scan), with results always delivered in grid order.

    Bounds memory and file-handle use during batch work, also under cluster
	schedulers such as SLURM and PBS (subpackage govern).

    Plots the computed state functions along a scan (subpackage scanplot).

The library does not read quantum-chemistry output files itself. The caller
(normally a separate program built on a parsing library) is expected to deliver
a populated System value, after which the engine never performs I/O of its own
except through the scan writers.
*/
package thermo
