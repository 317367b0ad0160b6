/*
 * filehandles.go, part of gothermo.
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

//DefaultMaxFiles is the default cap on concurrently open report files.
//Batch runs over hundreds of structures would otherwise hit the process
//fd limit on conservative clusters.
const DefaultMaxFiles = 64

//FileHandleManager caps how many report files the engine holds open at
//once. Acquire blocks until a slot is free, so callers must never hold two
//guards in the same goroutine, or a full manager deadlocks.
type FileHandleManager struct {
	slots chan struct{}
}

//NewFileHandleManager returns a manager with max slots. max<=0 falls back
//to DefaultMaxFiles.
func NewFileHandleManager(max int) *FileHandleManager {
	if max <= 0 {
		max = DefaultMaxFiles
	}
	return &FileHandleManager{slots: make(chan struct{}, max)}
}

//Acquire takes a slot, blocking until one is available, and returns the
//guard that gives it back.
func (f *FileHandleManager) Acquire() *Guard {
	f.slots <- struct{}{}
	return &Guard{mgr: f}
}

//InUse returns how many slots are currently taken.
func (f *FileHandleManager) InUse() int { return len(f.slots) }

//Guard is a held file-handle slot. Release is idempotent, so it is safe to
//defer it and also call it early.
type Guard struct {
	mgr  *FileHandleManager
	once sync.Once
}

//Release gives the slot back.
func (g *Guard) Release() {
	g.once.Do(func() { <-g.mgr.slots })
}
