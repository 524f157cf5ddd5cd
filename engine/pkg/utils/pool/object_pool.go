// Package pool
// @Title  数组对象池
// @Description  一个"刚归还"槽位加一个切片保存空闲对象
// @Author  yr  2025/7/17
// @Update  yr  2025/7/17
package pool

import (
	"slices"

	"github.com/njtc406/emberpool/engine/pkg/def"
)

// ObjectPool 基于切片的对象池
//
// 最近一次归还的对象放在fresh槽位,下一次Get优先取出,其余空闲对象按后进先出保存在切片中
// 非线程安全
type ObjectPool[T any] struct {
	poolBase[T]

	fresh    T
	hasFresh bool
	list     []T
}

func NewObjectPool[T any](create func() T, opts ...Option[T]) (*ObjectPool[T], error) {
	c := newConfig(def.PoolStrategySlice, opts)
	base, err := newPoolBase(create, c)
	if err != nil {
		return nil, err
	}

	capacity := min(max(c.defaultCapacity, 0), c.maxSize)
	p := &ObjectPool[T]{
		poolBase: base,
		list:     make([]T, 0, capacity),
	}
	if c.manager != nil {
		Register(c.manager, p)
	}
	return p, nil
}

// MustNewObjectPool 参数错误直接panic,用于包级变量
func MustNewObjectPool[T any](create func() T, opts ...Option[T]) *ObjectPool[T] {
	p, err := NewObjectPool(create, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *ObjectPool[T]) Get() T {
	var item T
	switch {
	case p.hasFresh:
		var zero T
		item = p.fresh
		p.fresh = zero
		p.hasFresh = false
		p.stats.IncReuse()
	case len(p.list) > 0:
		var zero T
		last := len(p.list) - 1
		item = p.list[last]
		p.list[last] = zero
		p.list = p.list[:last]
		p.stats.IncReuse()
	default:
		item = p.newItem()
	}
	return p.got(item)
}

// GetPooled 取出一个对象,同时返回一个负责归还的守卫
//
//	guard, v := p.GetPooled()
//	defer guard.Release()
func (p *ObjectPool[T]) GetPooled() (PooledObject[T], T) {
	item := p.Get()
	return newPooledObject[T](p, item), item
}

// Release 归还对象
//
// 开启重复检查时,如果对象已经在池中,返回ErrDoubleRelease且不修改任何状态
func (p *ObjectPool[T]) Release(item T) error {
	if p.collectionCheck && p.contains(item) {
		return p.doubleRelease(item)
	}

	p.released(item)
	switch {
	case !p.hasFresh:
		p.fresh = item
		p.hasFresh = true
	case p.CountInactive() < p.maxSize:
		p.list = append(p.list, item)
	default:
		p.overflow(item)
	}
	return nil
}

func (p *ObjectPool[T]) contains(item T) bool {
	if p.hasFresh && p.same(p.fresh, item) {
		return true
	}
	return slices.ContainsFunc(p.list, func(v T) bool {
		return p.same(v, item)
	})
}

// Clear 销毁所有空闲对象,CountAll归零(借出中的对象不再计数)
func (p *ObjectPool[T]) Clear() {
	if p.hasFresh {
		p.destroy(p.fresh)
	}
	for _, item := range p.list {
		p.destroy(item)
	}

	var zero T
	p.fresh = zero
	p.hasFresh = false
	clear(p.list)
	p.list = p.list[:0]
	p.countAll = 0
	p.stats.IncClear()
}

func (p *ObjectPool[T]) Dispose() {
	p.Clear()
}

func (p *ObjectPool[T]) CountInactive() int {
	if p.hasFresh {
		return len(p.list) + 1
	}
	return len(p.list)
}

func (p *ObjectPool[T]) CountActive() int {
	return p.countAll - p.CountInactive()
}

func (p *ObjectPool[T]) Stats() Stats {
	return p.snapshot(p.CountInactive())
}
