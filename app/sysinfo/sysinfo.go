// Package sysinfo collects host metrics for the status endpoint
package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Metrics holds a point-in-time snapshot of host resource usage
type Metrics struct {
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	LoadAvg1          float64 `json:"load_avg_1"`
	DiskFreePercent   int     `json:"disk_free_percent"`
}

// Collect gathers all metrics. Collection failures are reported per metric
// and leave the corresponding field zero, so a partial snapshot is still
// usable by callers.
func Collect(diskPath string) (Metrics, []error) {
	if diskPath == "" {
		diskPath = "/"
	}

	var res Metrics
	var errs []error

	if v, err := mem.VirtualMemory(); err == nil {
		res.MemoryUsedPercent = v.UsedPercent
	} else {
		errs = append(errs, fmt.Errorf("failed to get memory: %w", err))
	}

	if l, err := load.Avg(); err == nil {
		res.LoadAvg1 = l.Load1
	} else {
		errs = append(errs, fmt.Errorf("failed to get load average: %w", err))
	}

	if usage, err := disk.Usage(diskPath); err == nil {
		res.DiskFreePercent = 100 - int(usage.UsedPercent)
	} else {
		errs = append(errs, fmt.Errorf("failed to get disk usage for %s: %w", diskPath, err))
	}

	return res, errs
}
