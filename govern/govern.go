/*
 * govern.go, part of gothermo.
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

//Package govern keeps concurrent batch runs within the resources the
//machine, or the cluster scheduler, actually grants: a memory ceiling with
//admission control, a cap on open report files, and a collector so one
//failed structure does not abort the rest of a batch.
package govern

//Governor bundles the three concerns most batch entry points need. The
//zero value is not usable; build one with NewGovernor.
type Governor struct {
	Mem   *MemoryMonitor
	Files *FileHandleManager
	Errs  *Collector
}

//NewGovernor detects the environment and returns a governor sized for
//threads workers. memMB==0 means auto-detect the memory ceiling,
//maxFiles<=0 means DefaultMaxFiles.
func NewGovernor(memMB uint64, threads, maxFiles int) *Governor {
	jr := DetectJobResources()
	return &Governor{
		Mem:   NewMemoryMonitor(CalculateSafeMemoryLimit(memMB, ClampThreads(threads, jr), jr)),
		Files: NewFileHandleManager(maxFiles),
		Errs:  NewCollector(),
	}
}
