package pool

// noCopy go vet 的 copylocks 检查会标记复制
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type releaser[T any] interface {
	Release(item T) error
}

// PooledObject 借出对象的守卫,作用域结束时归还
//
//	guard, buf := p.GetPooled()
//	defer guard.Release()
//
// 只能归还一次,之后再调用Release什么都不做
type PooledObject[T any] struct {
	noCopy noCopy

	pool  releaser[T]
	value T
}

func newPooledObject[T any](pool releaser[T], value T) PooledObject[T] {
	return PooledObject[T]{pool: pool, value: value}
}

// Value 借出的对象,归还后返回零值
func (o *PooledObject[T]) Value() T {
	return o.value
}

// Released 是否已经归还
func (o *PooledObject[T]) Released() bool {
	return o.pool == nil
}

func (o *PooledObject[T]) Release() error {
	if o.pool == nil {
		return nil
	}
	var zero T
	p, item := o.pool, o.value
	o.pool = nil
	o.value = zero
	return p.Release(item)
}

// Close 实现io.Closer
func (o *PooledObject[T]) Close() error {
	return o.Release()
}
