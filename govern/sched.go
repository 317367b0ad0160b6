/*
 * sched.go, part of gothermo.
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
	"os"
	"runtime"
	"strconv"
)

//JobResources describes what a cluster batch scheduler, if any, has set
//aside for the current job. An empty Scheduler means we are running on a
//plain workstation.
type JobResources struct {
	Scheduler      string //"SLURM", "PBS", "SGE", "LSF" or ""
	HasMemoryLimit bool
	AllocatedMB    uint64
	AllocatedCPUs  int
}

//DetectJobResources sniffs the environment for the usual batch-scheduler
//variables. Only SLURM publishes its memory and CPU allocation in a
//portable way; for the others we just learn that a scheduler is present
//and derate accordingly.
func DetectJobResources() JobResources {
	var jr JobResources
	switch {
	case os.Getenv("SLURM_JOB_ID") != "":
		jr.Scheduler = "SLURM"
		if mb, err := strconv.ParseUint(os.Getenv("SLURM_MEM_PER_NODE"), 10, 64); err == nil && mb > 0 {
			jr.HasMemoryLimit = true
			jr.AllocatedMB = mb
		}
		if n, err := strconv.Atoi(os.Getenv("SLURM_CPUS_PER_TASK")); err == nil && n > 0 {
			jr.AllocatedCPUs = n
		}
	case os.Getenv("PBS_JOBID") != "":
		jr.Scheduler = "PBS"
	case os.Getenv("SGE_JOB_ID") != "":
		jr.Scheduler = "SGE"
	case os.Getenv("LSB_JOBID") != "":
		jr.Scheduler = "LSF"
	}
	return jr
}

//ClampThreads turns a requested worker count into a usable one: at least 1,
//no more than the CPUs the machine (or the scheduler allocation, when
//known) offers. requested<=0 means "use everything available".
func ClampThreads(requested int, jr JobResources) int {
	avail := runtime.NumCPU()
	if jr.AllocatedCPUs > 0 && jr.AllocatedCPUs < avail {
		avail = jr.AllocatedCPUs
	}
	if requested <= 0 || requested > avail {
		return avail
	}
	return requested
}
