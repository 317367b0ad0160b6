/*
 * pointgroup.go, part of gothermo.
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
	"strconv"
	"strings"
)

//The catalog of point groups the detector can produce (plus Kh for a single
//atom and the two linear groups). The rotational symmetry number is the
//order of the proper-rotation subgroup of each: 1 for C1/Cs/Ci, n for
//Cn/Cnv/Cnh, 2n for Dn/Dnh/Dnd, and the classic 12/24/60 for the
//tetrahedral, octahedral and icosahedral groups.

//RotSymFromName returns the rotational symmetry number of the named point
//group. The name is case-sensitive in the usual Schoenflies spelling
//("C2v", "D3d", "Td"...), with "C*v" and "D*h" for the linear groups.
//It is used both after detection and when the user forces a point group.
func RotSymFromName(name string) (int, error) {
	switch name {
	case "C1", "Cs", "Ci", "Kh", "C*v":
		return 1, nil
	case "D*h":
		return 2, nil
	case "Td":
		return 12, nil
	case "Oh":
		return 24, nil
	case "Ih":
		return 60, nil
	}
	if len(name) >= 2 {
		family := name[0]
		rest := strings.TrimRight(name[1:], "vhd")
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 1 {
			switch family {
			case 'C':
				return n, nil
			case 'D':
				return 2 * n, nil
			case 'S':
				//S2n contains the Cn subgroup
				if n%2 == 0 {
					return n / 2, nil
				}
			}
		}
	}
	return 0, Error{fmt.Sprintf("goThermo/symm: Unknown point group %q", name), []string{"RotSymFromName"}, true}
}
