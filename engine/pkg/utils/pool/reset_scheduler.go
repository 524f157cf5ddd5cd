// Package pool
// 模块名: 定时清理
// 功能描述: 按cron表达式定时产生信号,由管理器所在的goroutine执行Reset
// 作者:  yr  2025/7/18 0018 0:10
// 最后更新:  yr  2025/7/18 0018 0:10
package pool

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
	"github.com/njtc406/emberpool/engine/pkg/utils/validate"
	"github.com/robfig/cron/v3"
)

// ResetScheduler 定时清理
//
// 计时在后台goroutine中进行,但Reset只会在调用Pump的goroutine中执行
//
//	s, _ := pool.NewResetScheduler(pool.Default(), "@every 1m")
//	_ = s.Start()
//	for {
//		select {
//		case <-s.C():
//			s.Pump()
//		...
//		}
//	}
type ResetScheduler struct {
	manager  *PoolManager
	spec     string
	schedule cron.Schedule

	c       chan time.Time
	closeCh chan struct{}
	running atomic.Bool
	wg      sync.WaitGroup
	resets  atomic.Int64
}

func NewResetScheduler(m *PoolManager, spec string) (*ResetScheduler, error) {
	schedule, err := validate.CronParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", spec, def.ErrInvalidCronSpec, err)
	}
	return &ResetScheduler{
		manager:  m,
		spec:     spec,
		schedule: schedule,
		c:        make(chan time.Time, 1),
	}, nil
}

func (s *ResetScheduler) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return def.ErrSchedulerRunning
	}
	s.closeCh = make(chan struct{})
	s.wg.Add(1)
	go s.run(s.closeCh)
	log.SysLogger.Debugf("pool reset scheduler[%s] started, spec: %s", s.manager.Name(), s.spec)
	return nil
}

func (s *ResetScheduler) run(closeCh chan struct{}) {
	defer s.wg.Done()
	for {
		now := time.Now()
		next := s.schedule.Next(now)
		if next.IsZero() {
			return
		}
		timer := time.NewTimer(next.Sub(now))
		select {
		case <-closeCh:
			timer.Stop()
			return
		case t := <-timer.C:
			// 上一次的信号还没处理,直接丢弃这一次
			select {
			case s.c <- t:
			default:
			}
		}
	}
}

// C 到点信号
func (s *ResetScheduler) C() <-chan time.Time {
	return s.c
}

// Pump 如果有待处理的信号就执行一次Reset,返回是否执行
func (s *ResetScheduler) Pump() bool {
	select {
	case <-s.c:
		cleared, pruned := s.manager.Reset()
		s.resets.Add(1)
		log.SysLogger.Debugf("pool reset scheduler[%s] fired: cleared=%d pruned=%d", s.manager.Name(), cleared, pruned)
		return true
	default:
		return false
	}
}

// Resets 已经执行的Reset次数
func (s *ResetScheduler) Resets() int64 {
	return s.resets.Load()
}

func (s *ResetScheduler) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.closeCh)
	s.wg.Wait()
}
