// Package asynclib
// Mode ServiceName: 异步执行
// Mode Desc: 使用协程池中的协程执行任务,防止出现瞬间创建大量协程,出现性能问题
package asynclib

import (
	"fmt"
	"sync"

	"github.com/njtc406/emberpool/engine/pkg/utils/log"
	"github.com/panjf2000/ants/v2"
)

// antsPool 协程池
var antsPool *ants.Pool

func InitAntsPool(size int) {
	if antsPool == nil && size > 0 {
		antsPool = NewAntsPool(size, ants.WithPreAlloc(true), ants.WithLogger(antsLogger{}))
	}
}

// NewAntsPool 创建协程池
// size表示池子的大小
func NewAntsPool(size int, options ...ants.Option) *ants.Pool {
	p, err := ants.NewPool(size, options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Go 在全局协程池中执行,未初始化时返回ants.ErrPoolClosed
func Go(f func()) error {
	if antsPool == nil {
		return ants.ErrPoolClosed
	}
	return Submit(antsPool, f)
}

// Submit 提交到指定协程池,任务panic会被转成错误日志
func Submit(p *ants.Pool, f func()) error {
	return p.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				log.SysLogger.Errorf("goroutine exec func failed, err:%v", r)
			}
		}()
		f()
	})
}

// RunAll 在协程池中执行所有任务并等待完成,返回每个任务的错误(提交失败或者panic)
func RunAll(p *ants.Pool, tasks ...func() error) []error {
	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		err := p.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("task %d panic: %v", i, r)
				}
			}()
			errs[i] = task()
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()
	return errs
}

func Release() {
	if antsPool != nil {
		antsPool.Release()
		antsPool = nil
	}
}

type antsLogger struct{}

func (antsLogger) Printf(format string, args ...interface{}) {
	log.SysLogger.Warnf(format, args...)
}
