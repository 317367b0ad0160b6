/*
 * collect.go, part of gothermo.
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

package govern

import "sync"

//Collector gathers errors and warnings from concurrent workers, so a batch
//run over many structures can keep going when one of them fails and report
//everything at the end. All methods are safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	errors   []error
	warnings []string
}

//NewCollector returns an empty collector.
func NewCollector() *Collector {
	return new(Collector)
}

//AddError records err. Nil errors are ignored.
func (c *Collector) AddError(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.errors = append(c.errors, err)
	c.mu.Unlock()
}

//AddWarning records a warning message.
func (c *Collector) AddWarning(msg string) {
	c.mu.Lock()
	c.warnings = append(c.warnings, msg)
	c.mu.Unlock()
}

//Errors returns a copy of the errors recorded so far.
func (c *Collector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]error, len(c.errors))
	copy(out, c.errors)
	return out
}

//Warnings returns a copy of the warnings recorded so far.
func (c *Collector) Warnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.warnings))
	copy(out, c.warnings)
	return out
}

//HasErrors tells whether anything has gone wrong yet.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors) > 0
}

//Clear drops everything recorded.
func (c *Collector) Clear() {
	c.mu.Lock()
	c.errors = nil
	c.warnings = nil
	c.mu.Unlock()
}
