// Package pool
// @Title  容器对象池
// @Description  归还时清空容器,取出的容器一定是空的
// @Author  yr  2025/7/17
// @Update  yr  2025/7/17
package pool

import "github.com/njtc406/emberpool/engine/pkg/def"

// NewListPool 切片池,保存*[]E,归还时清空元素并把长度截为0(容量保留)
func NewListPool[E any](opts ...Option[*[]E]) (*ObjectPool[*[]E], error) {
	return NewObjectPool(newList[E], withCollectionOpts(opts, clearList[E])...)
}

func MustNewListPool[E any](opts ...Option[*[]E]) *ObjectPool[*[]E] {
	p, err := NewListPool(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewMapPool map池,map可以直接作为池对象
func NewMapPool[K comparable, V any](opts ...Option[map[K]V]) (*ObjectPool[map[K]V], error) {
	return NewObjectPool(newMap[K, V], withCollectionOpts(opts, clearMap[K, V])...)
}

func MustNewMapPool[K comparable, V any](opts ...Option[map[K]V]) *ObjectPool[map[K]V] {
	p, err := NewMapPool(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewSetPool 集合池
func NewSetPool[K comparable](opts ...Option[map[K]struct{}]) (*ObjectPool[map[K]struct{}], error) {
	return NewMapPool[K, struct{}](opts...)
}

func MustNewSetPool[K comparable](opts ...Option[map[K]struct{}]) *ObjectPool[map[K]struct{}] {
	return MustNewMapPool[K, struct{}](opts...)
}

// NewCollectionPool 任意实现了Clear()的容器
func NewCollectionPool[C any, PC interface {
	*C
	Clear()
}](opts ...Option[PC]) (*ObjectPool[PC], error) {
	create := func() PC {
		return PC(new(C))
	}
	return NewObjectPool(create, withCollectionOpts(opts, func(c PC) {
		c.Clear()
	})...)
}

// withCollectionOpts 清理放在调用方的onRelease之后
func withCollectionOpts[T any](opts []Option[T], clean func(T)) []Option[T] {
	all := make([]Option[T], 0, len(opts)+1)
	all = append(all, opts...)
	return append(all, withChainedRelease(clean))
}

func newList[E any]() *[]E {
	l := make([]E, 0, def.DefaultListCapacity)
	return &l
}

func clearList[E any](l *[]E) {
	clear(*l)
	*l = (*l)[:0]
}

func newMap[K comparable, V any]() map[K]V {
	return make(map[K]V)
}

func clearMap[K comparable, V any](m map[K]V) {
	clear(m)
}

func listShared[E any]() *ObjectPool[*[]E] {
	return sharedPool("list", func(name string) *ObjectPool[*[]E] {
		return MustNewListPool[E](WithName[*[]E](name), WithGlobalManager[*[]E]())
	})
}

func ListGet[E any]() *[]E {
	return listShared[E]().Get()
}

func ListGetPooled[E any]() (PooledObject[*[]E], *[]E) {
	return listShared[E]().GetPooled()
}

func ListRelease[E any](l *[]E) error {
	return listShared[E]().Release(l)
}

func mapShared[K comparable, V any]() *ObjectPool[map[K]V] {
	return sharedPool("map", func(name string) *ObjectPool[map[K]V] {
		return MustNewMapPool[K, V](WithName[map[K]V](name), WithGlobalManager[map[K]V]())
	})
}

func MapGet[K comparable, V any]() map[K]V {
	return mapShared[K, V]().Get()
}

func MapGetPooled[K comparable, V any]() (PooledObject[map[K]V], map[K]V) {
	return mapShared[K, V]().GetPooled()
}

func MapRelease[K comparable, V any](m map[K]V) error {
	return mapShared[K, V]().Release(m)
}

func setShared[K comparable]() *ObjectPool[map[K]struct{}] {
	return sharedPool("set", func(name string) *ObjectPool[map[K]struct{}] {
		return MustNewSetPool[K](WithName[map[K]struct{}](name), WithGlobalManager[map[K]struct{}]())
	})
}

func SetGet[K comparable]() map[K]struct{} {
	return setShared[K]().Get()
}

func SetGetPooled[K comparable]() (PooledObject[map[K]struct{}], map[K]struct{}) {
	return setShared[K]().GetPooled()
}

func SetRelease[K comparable](s map[K]struct{}) error {
	return setShared[K]().Release(s)
}
