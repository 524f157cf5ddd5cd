// Package util
// @Title  title
// @Description  desc
// @Author  yr  2025/4/24
// @Update  yr  2025/7/18
package util

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

func GetCPULoad() float64 {
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return 0.0
	}
	return percents[0] / 100 // 转成 0.0 - 1.0 之间
}

// GetProcessRSS 当前进程常驻内存(字节)
func GetProcessRSS() uint64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	mem, err := p.MemoryInfo()
	if err != nil || mem == nil {
		return 0
	}
	return mem.RSS
}

// MemSnapshot 运行时内存统计
type MemSnapshot struct {
	RSS        uint64  // 进程常驻内存
	HeapAlloc  uint64  // 堆上存活对象
	TotalAlloc uint64  // 累计分配字节数
	Mallocs    uint64  // 累计分配次数
	NumGC      uint32  // gc次数
	CPULoad    float64 // 0.0 - 1.0
}

func ReadMemSnapshot() MemSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemSnapshot{
		RSS:        GetProcessRSS(),
		HeapAlloc:  m.HeapAlloc,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
		CPULoad:    GetCPULoad(),
	}
}

// Sub 两次快照之间的增量(RSS/HeapAlloc/CPULoad取后一次的值)
func (s MemSnapshot) Sub(before MemSnapshot) MemSnapshot {
	return MemSnapshot{
		RSS:        s.RSS,
		HeapAlloc:  s.HeapAlloc,
		TotalAlloc: s.TotalAlloc - before.TotalAlloc,
		Mallocs:    s.Mallocs - before.Mallocs,
		NumGC:      s.NumGC - before.NumGC,
		CPULoad:    s.CPULoad,
	}
}
