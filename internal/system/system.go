// Package system sizes the conversion worker pool from host resources.
package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// perWorkerBytes approximates the peak footprint of one engine session:
// the rasterizer's frame buffers plus the GIF encoder's frame history.
const perWorkerBytes = 512 << 20

// Workers resolves the effective worker count. A positive request is used
// as-is; 0 means auto: one worker per logical CPU, capped so the pool
// fits in currently available memory, never below one.
func Workers(requested int) int {
	if requested > 0 {
		return requested
	}

	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		byMem := int(vm.Available / perWorkerBytes)
		if byMem < 1 {
			byMem = 1
		}
		if byMem < n {
			n = byMem
		}
	}

	if n < 1 {
		n = 1
	}
	return n
}
