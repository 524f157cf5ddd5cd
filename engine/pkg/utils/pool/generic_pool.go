package pool

// NewGenericObjectPool 使用new(T)创建对象的池
func NewGenericObjectPool[T any](opts ...Option[*T]) (*ObjectPool[*T], error) {
	return NewObjectPool(newOf[T], opts...)
}

func MustNewGenericObjectPool[T any](opts ...Option[*T]) *ObjectPool[*T] {
	return MustNewObjectPool(newOf[T], opts...)
}

func newOf[T any]() *T {
	return new(T)
}

func genericShared[T any]() *ObjectPool[*T] {
	return sharedPool("generic", func(name string) *ObjectPool[*T] {
		return MustNewGenericObjectPool[T](WithName[*T](name), WithGlobalManager[*T]())
	})
}

// GenericGet 从T的共享池中取出对象
func GenericGet[T any]() *T {
	return genericShared[T]().Get()
}

func GenericGetPooled[T any]() (PooledObject[*T], *T) {
	return genericShared[T]().GetPooled()
}

func GenericRelease[T any](item *T) error {
	return genericShared[T]().Release(item)
}
