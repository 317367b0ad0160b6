/*
 * errors.go, part of gothermo.
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

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate allows to add information when the error is passed up. Each call also returns the current decoration slice. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

//CError (Concrete Error) is the error type used throughout the root package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that the error implements Error and decorates it
//with the caller's name before returning it. A non-Error error will panic,
//which is fine, as that is a programming error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It does satisfy the error interface,
//but for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Messages for the panics on "fundamental" functions, where being called on bad data
//means the caller's program is wrong and should crash.
const (
	ErrNilAtom      = PanicMsg("goThermo: Attempted to use a nil Atom")
	ErrNilSystem    = PanicMsg("goThermo: Attempted to use a nil System")
	ErrAtomOutRange = PanicMsg("goThermo: Requested Atom out of bounds")
	ErrNotPrepared  = PanicMsg("goThermo: System must be normalized before evaluation")
)

//Input-data problems are regular errors; batch drivers report them per unit
//and keep going.
func errNoAtoms() error {
	return CError{"goThermo: No atoms in system", []string{"NewSystem"}}
}

func errNoFreqs() error {
	return CError{"goThermo: No vibrational frequencies given for a polyatomic system", []string{"NewSystem"}}
}
