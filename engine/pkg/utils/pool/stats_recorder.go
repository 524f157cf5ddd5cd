// Package pool
// 模块名: 统计
// 功能描述: 对象池统计,计数使用原子操作,允许监控goroutine读取快照
// 作者:  yr  2025/7/18 0018 0:10
// 最后更新:  yr  2025/7/18 0018 0:10
package pool

import (
	"sync/atomic"

	json "github.com/goccy/go-json"
)

// IStatsRecorder 统计
type IStatsRecorder interface {
	IncCreate()
	IncReuse()
	IncRelease()
	IncOverflow()
	AddDestroy(n int64)
	IncDoubleRelease()
	IncClear()
	Snapshot() Stats
}

type nopStats struct{}

func NewNoStatsRecorder() IStatsRecorder {
	return nopStats{}
}

func (nopStats) IncCreate()        {}
func (nopStats) IncReuse()         {}
func (nopStats) IncRelease()       {}
func (nopStats) IncOverflow()      {}
func (nopStats) AddDestroy(int64)  {}
func (nopStats) IncDoubleRelease() {}
func (nopStats) IncClear()         {}
func (nopStats) Snapshot() Stats {
	return Stats{}
}

// Stats 对象池统计快照
type Stats struct {
	ID       string `json:"id,omitempty"` // 管理器分配的id(未注册时为空)
	Name     string `json:"name"`
	Strategy string `json:"strategy"`

	CountAll      int `json:"countAll"`      // 当前存活对象数(创建-销毁)
	CountActive   int `json:"countActive"`   // 借出中的对象数
	CountInactive int `json:"countInactive"` // 池内缓存的对象数
	MaxSize       int `json:"maxSize"`

	Created       int64 `json:"created"`       // 调用create的次数
	Reused        int64 `json:"reused"`        // 从缓存中取出的次数
	Released      int64 `json:"released"`      // 成功归还次数
	Overflow      int64 `json:"overflow"`      // 缓存已满被销毁的次数
	Destroyed     int64 `json:"destroyed"`     // onDestroy 调用总数(包括Clear)
	DoubleRelease int64 `json:"doubleRelease"` // 检测到的重复释放次数
	Clears        int64 `json:"clears"`
}

func (s *Stats) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(data)
}

// HitRate 复用率
func (s *Stats) HitRate() float64 {
	total := s.Created + s.Reused
	if total == 0 {
		return 0
	}
	return float64(s.Reused) / float64(total)
}

type statsRecorder struct {
	created       atomic.Int64
	reused        atomic.Int64
	released      atomic.Int64
	overflow      atomic.Int64
	destroyed     atomic.Int64
	doubleRelease atomic.Int64
	clears        atomic.Int64
}

func NewStatsRecorder() IStatsRecorder {
	return &statsRecorder{}
}

func (s *statsRecorder) IncCreate()         { s.created.Add(1) }
func (s *statsRecorder) IncReuse()          { s.reused.Add(1) }
func (s *statsRecorder) IncRelease()        { s.released.Add(1) }
func (s *statsRecorder) IncOverflow()       { s.overflow.Add(1) }
func (s *statsRecorder) AddDestroy(n int64) { s.destroyed.Add(n) }
func (s *statsRecorder) IncDoubleRelease()  { s.doubleRelease.Add(1) }
func (s *statsRecorder) IncClear()          { s.clears.Add(1) }

func (s *statsRecorder) Snapshot() Stats {
	return Stats{
		Created:       s.created.Load(),
		Reused:        s.reused.Load(),
		Released:      s.released.Load(),
		Overflow:      s.overflow.Load(),
		Destroyed:     s.destroyed.Load(),
		DoubleRelease: s.doubleRelease.Load(),
		Clears:        s.clears.Load(),
	}
}
