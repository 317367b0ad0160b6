/*
 * geometry.go, part of gothermo.
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
	"math"
	"strconv"
)

//Small fixed-size vector helpers. The operation matrices here are tiny and
//applied thousands of times during the element search, so plain arrays beat
//allocating gonum matrices for every candidate.

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm(a [3]float64) float64 {
	return math.Sqrt(dot(a, a))
}

func normalize(a [3]float64) [3]float64 {
	n := norm(a)
	return [3]float64{a[0] / n, a[1] / n, a[2] / n}
}

func dist(a, b [3]float64) float64 {
	d := [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
	return norm(d)
}

//sameAxisIn tells whether u (a unit vector) is already in the list, in
//either direction. An axis and its negative are the same axis.
func sameAxisIn(list [][3]float64, u [3]float64) bool {
	for _, v := range list {
		if math.Abs(dot(u, v)) > 0.999 {
			return true
		}
	}
	return false
}

func apply(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

//rotationMatrix is the Rodrigues rotation by theta about the unit axis u.
func rotationMatrix(u [3]float64, theta float64) [3][3]float64 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	t := 1 - c
	x, y, z := u[0], u[1], u[2]
	return [3][3]float64{
		{c + x*x*t, x*y*t - z*s, x*z*t + y*s},
		{y*x*t + z*s, c + y*y*t, y*z*t - x*s},
		{z*x*t - y*s, z*y*t + x*s, c + z*z*t},
	}
}

//reflectionMatrix is the mirror through the plane with unit normal n:
//I - 2nn^T.
func reflectionMatrix(n [3]float64) [3][3]float64 {
	x, y, z := n[0], n[1], n[2]
	return [3][3]float64{
		{1 - 2*x*x, -2 * x * y, -2 * x * z},
		{-2 * y * x, 1 - 2*y*y, -2 * y * z},
		{-2 * z * x, -2 * z * y, 1 - 2*z*z},
	}
}

func inversionMatrix() [3][3]float64 {
	return [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
