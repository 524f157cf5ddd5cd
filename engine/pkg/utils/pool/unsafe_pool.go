package pool

import "github.com/njtc406/emberpool/engine/pkg/def"

// NewUnsafeObjectPool 不做重复释放检查的对象池
//
// 无论传入什么选项都会关闭检查,重复归还同一个对象之后,这个对象可能被同时借给两个调用方
func NewUnsafeObjectPool[T any](create func() T, opts ...Option[T]) (*ObjectPool[T], error) {
	all := make([]Option[T], 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithCollectionCheck[T](false), withStrategy[T](def.PoolStrategyUnsafe))
	return NewObjectPool(create, all...)
}

func MustNewUnsafeObjectPool[T any](create func() T, opts ...Option[T]) *ObjectPool[T] {
	p, err := NewUnsafeObjectPool(create, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func unsafeShared[T any]() *ObjectPool[*T] {
	return sharedPool("unsafe", func(name string) *ObjectPool[*T] {
		return MustNewUnsafeObjectPool(newOf[T], WithName[*T](name), WithGlobalManager[*T]())
	})
}

func UnsafeGenericGet[T any]() *T {
	return unsafeShared[T]().Get()
}

// UnsafeGenericRelease 不检查重复归还,返回值和GenericRelease保持一致
func UnsafeGenericRelease[T any](item *T) error {
	return unsafeShared[T]().Release(item)
}
