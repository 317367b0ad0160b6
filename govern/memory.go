/*
 * memory.go, part of gothermo.
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

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

//Memory bounds, MB. Whatever the detection or the scheduler says, the
//ceiling never leaves this window.
const (
	MinMemoryMB     uint64 = 512
	MaxMemoryMB     uint64 = 65536
	DefaultMemoryMB uint64 = 4096
)

//MemoryMonitor tracks the bytes the engine has admitted against a ceiling,
//so a large batch can refuse new buffers instead of pushing the machine into
//swap. The counters are lock-free atomics; the monitor is safe for
//concurrent use by any number of workers.
type MemoryMonitor struct {
	current atomic.Uint64
	peak    atomic.Uint64
	max     atomic.Uint64
}

//NewMemoryMonitor returns a monitor with a ceiling of maxMB megabytes.
func NewMemoryMonitor(maxMB uint64) *MemoryMonitor {
	m := new(MemoryMonitor)
	m.max.Store(maxMB * 1024 * 1024)
	return m
}

//CanAllocate is the admission check: would admitting bytes more stay under
//the ceiling? It doesn't reserve anything; call Add once the allocation is
//actually made.
func (m *MemoryMonitor) CanAllocate(bytes uint64) bool {
	return m.current.Load()+bytes < m.max.Load()
}

//Add records bytes as in use and updates the peak.
func (m *MemoryMonitor) Add(bytes uint64) {
	n := m.current.Add(bytes)
	for {
		peak := m.peak.Load()
		if n <= peak || m.peak.CompareAndSwap(peak, n) {
			break
		}
	}
}

//Remove records bytes as released.
func (m *MemoryMonitor) Remove(bytes uint64) {
	m.current.Add(^(bytes - 1))
}

//Current returns the bytes currently recorded as in use.
func (m *MemoryMonitor) Current() uint64 { return m.current.Load() }

//Peak returns the highest value Current has reached.
func (m *MemoryMonitor) Peak() uint64 { return m.peak.Load() }

//Max returns the ceiling in bytes.
func (m *MemoryMonitor) Max() uint64 { return m.max.Load() }

//SetLimit replaces the ceiling with maxMB megabytes.
func (m *MemoryMonitor) SetLimit(maxMB uint64) { m.max.Store(maxMB * 1024 * 1024) }

//SystemMemoryMB returns the physical memory of the machine in MB, or a
//conservative default when it can't be determined.
func SystemMemoryMB() uint64 {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return DefaultMemoryMB
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			break
		}
		return kb / 1024
	}
	return DefaultMemoryMB
}

//OptimalMemoryLimitMB proposes a ceiling from the system memory and the
//thread count. The fraction of the machine taken grows with the thread
//count, and is derated inside cluster-scheduler jobs, where the node is
//likely shared. sysMB==0 means "detect".
func OptimalMemoryLimitMB(threads int, sysMB uint64) uint64 {
	if sysMB == 0 {
		sysMB = SystemMemoryMB()
	}
	var fraction float64
	switch {
	case threads <= 4:
		fraction = 0.3
	case threads <= 8:
		fraction = 0.4
	case threads <= 16:
		fraction = 0.5
	default:
		fraction = 0.6
	}
	if DetectJobResources().Scheduler != "" {
		fraction *= 0.7
	}
	mb := uint64(float64(sysMB) * fraction)
	return clampMB(mb)
}

//CalculateSafeMemoryLimit combines an explicit request (0 means
//"auto-detect"), the thread count and whatever the job scheduler has
//allocated into a ceiling in MB. A scheduler allocation is never exceeded
//beyond 95% (the rest is left to the OS), and the result always lands in
//[MinMemoryMB, MaxMemoryMB].
func CalculateSafeMemoryLimit(requestedMB uint64, threads int, jr JobResources) uint64 {
	mb := requestedMB
	if mb == 0 {
		mb = OptimalMemoryLimitMB(threads, 0)
	}
	if jr.HasMemoryLimit && jr.AllocatedMB > 0 {
		withOverhead := jr.AllocatedMB * 95 / 100
		if mb > withOverhead {
			mb = withOverhead
		}
	}
	return clampMB(mb)
}

func clampMB(mb uint64) uint64 {
	if mb < MinMemoryMB {
		return MinMemoryMB
	}
	if mb > MaxMemoryMB {
		return MaxMemoryMB
	}
	return mb
}

//FormatMemorySize renders a byte count for humans, e.g. "1.50 GB".
func FormatMemorySize(bytes uint64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}
