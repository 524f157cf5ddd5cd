// Package pool
// 模块名: 对象池管理器
// 功能描述: 弱引用记录所有注册的对象池,用于统一清理(比如切换场景之后)
// 作者:  yr  2025/7/18 0018 0:10
// 最后更新:  yr  2025/7/18 0018 0:10
package pool

import (
	"slices"
	"sync/atomic"
	"weak"

	"github.com/google/uuid"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
)

type resolver interface {
	resolve() (IClearable, bool)
}

// weakPool 不持有池本身,池被回收后resolve返回false
type weakPool[P any, PT interface {
	*P
	IClearable
}] struct {
	ptr weak.Pointer[P]
}

func (w weakPool[P, PT]) resolve() (IClearable, bool) {
	p := w.ptr.Value()
	if p == nil {
		return nil, false
	}
	return PT(p), true
}

type managedEntry struct {
	id   string
	name string
	ref  resolver
}

// PoolManager 对象池管理器
//
// 只在一个goroutine中使用,其他goroutine只能调用Published读取最近一次发布的统计
type PoolManager struct {
	name      string
	entries   []*managedEntry
	published atomic.Pointer[[]Stats]
}

func NewPoolManager(name string) *PoolManager {
	return &PoolManager{name: name}
}

var defaultManager = NewPoolManager("default")

// Default 进程内全局管理器
func Default() *PoolManager {
	return defaultManager
}

// ResetAll 清理全局管理器中的所有池
func ResetAll() (cleared, pruned int) {
	return defaultManager.Reset()
}

func (m *PoolManager) Name() string {
	return m.name
}

// Register 注册一个池,返回分配的id
func Register[P any, PT interface {
	*P
	IClearable
}](m *PoolManager, p PT) string {
	e := &managedEntry{
		id:   uuid.NewString(),
		name: p.Name(),
		ref:  weakPool[P, PT]{ptr: weak.Make((*P)(p))},
	}
	m.entries = append(m.entries, e)
	return e.id
}

// Unregister 注销一个池,不存在时返回false
func Unregister[P any, PT interface {
	*P
	IClearable
}](m *PoolManager, p PT) bool {
	var key resolver = weakPool[P, PT]{ptr: weak.Make((*P)(p))}
	for i, e := range m.entries {
		if e.ref == key {
			m.entries = slices.Delete(m.entries, i, i+1)
			return true
		}
	}
	return false
}

// Reset 清理所有存活的池,同时删除已经被回收的记录
//
// 从后往前遍历,删除不影响未遍历的下标
func (m *PoolManager) Reset() (cleared, pruned int) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		p, ok := m.entries[i].ref.resolve()
		if !ok {
			m.entries = slices.Delete(m.entries, i, i+1)
			pruned++
			continue
		}
		p.Clear()
		cleared++
	}
	m.Publish()
	log.SysLogger.Debugf("pool manager[%s] reset: cleared=%d pruned=%d", m.name, cleared, pruned)
	return
}

// Prune 只删除已经被回收的记录
func (m *PoolManager) Prune() int {
	n := len(m.entries)
	m.entries = slices.DeleteFunc(m.entries, func(e *managedEntry) bool {
		_, ok := e.ref.resolve()
		return !ok
	})
	pruned := n - len(m.entries)
	if pruned > 0 {
		log.SysLogger.Infof("pool manager[%s] pruned %d collected pools", m.name, pruned)
	}
	return pruned
}

// Len 记录数量(包括已经被回收但还没清理的)
func (m *PoolManager) Len() int {
	return len(m.entries)
}

// Snapshot 所有存活池的统计
func (m *PoolManager) Snapshot() []Stats {
	list := make([]Stats, 0, len(m.entries))
	for _, e := range m.entries {
		p, ok := e.ref.resolve()
		if !ok {
			continue
		}
		st := p.Stats()
		st.ID = e.id
		list = append(list, st)
	}
	return list
}

// Publish 发布一份统计快照,供其他goroutine读取
func (m *PoolManager) Publish() []Stats {
	list := m.Snapshot()
	m.published.Store(&list)
	return list
}

// Published 最近一次发布的统计,可以在任意goroutine中调用
func (m *PoolManager) Published() []Stats {
	list := m.published.Load()
	if list == nil {
		return nil
	}
	return *list
}
