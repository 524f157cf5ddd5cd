// Package pool
// @Title  链表对象池
// @Description  空闲对象保存在单链表中,空节点回收到备用链表重复使用
// @Author  yr  2025/7/17
// @Update  yr  2025/7/17
package pool

import "github.com/njtc406/emberpool/engine/pkg/def"

type linkedNode[T any] struct {
	value T
	next  *linkedNode[T]
}

// LinkedPool 基于链表的对象池,对外行为和ObjectPool一致
//
// 不预分配,缓存满了之后归还的对象不会分配节点
// 非线程安全
type LinkedPool[T any] struct {
	poolBase[T]

	head          *linkedNode[T] // 空闲对象
	spare         *linkedNode[T] // 空节点
	countInactive int
}

func NewLinkedPool[T any](create func() T, opts ...Option[T]) (*LinkedPool[T], error) {
	c := newConfig(def.PoolStrategyLinked, opts)
	base, err := newPoolBase(create, c)
	if err != nil {
		return nil, err
	}

	p := &LinkedPool[T]{poolBase: base}
	if c.manager != nil {
		Register(c.manager, p)
	}
	return p, nil
}

func MustNewLinkedPool[T any](create func() T, opts ...Option[T]) *LinkedPool[T] {
	p, err := NewLinkedPool(create, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *LinkedPool[T]) Get() T {
	var item T
	if n := p.head; n != nil {
		var zero T
		item = n.value
		p.head = n.next
		n.value = zero
		n.next = p.spare
		p.spare = n
		p.countInactive--
		p.stats.IncReuse()
	} else {
		item = p.newItem()
	}
	return p.got(item)
}

func (p *LinkedPool[T]) GetPooled() (PooledObject[T], T) {
	item := p.Get()
	return newPooledObject[T](p, item), item
}

func (p *LinkedPool[T]) Release(item T) error {
	if p.collectionCheck && p.contains(item) {
		return p.doubleRelease(item)
	}

	p.released(item)
	if p.countInactive >= p.maxSize {
		p.overflow(item)
		return nil
	}

	n := p.spare
	if n != nil {
		p.spare = n.next
	} else {
		n = &linkedNode[T]{}
	}
	n.value = item
	n.next = p.head
	p.head = n
	p.countInactive++
	return nil
}

func (p *LinkedPool[T]) contains(item T) bool {
	for n := p.head; n != nil; n = n.next {
		if p.same(n.value, item) {
			return true
		}
	}
	return false
}

// Clear 销毁所有空闲对象,两个链表都丢弃
func (p *LinkedPool[T]) Clear() {
	for n := p.head; n != nil; n = n.next {
		p.destroy(n.value)
	}
	p.head = nil
	p.spare = nil
	p.countInactive = 0
	p.countAll = 0
	p.stats.IncClear()
}

func (p *LinkedPool[T]) Dispose() {
	p.Clear()
}

func (p *LinkedPool[T]) CountInactive() int {
	return p.countInactive
}

func (p *LinkedPool[T]) CountActive() int {
	return p.countAll - p.countInactive
}

func (p *LinkedPool[T]) Stats() Stats {
	return p.snapshot(p.countInactive)
}
