// Package pool
// @Title  对象池接口
// @Description  两种存储策略的对象池共用的接口
// @Author  yr  2025/7/17
// @Update  yr  2025/7/17
package pool

// IClearable 可以被管理器统一清理的池
type IClearable interface {
	Clear()
	Name() string
	Stats() Stats
}

// IPool 单线程对象池,不加锁,由调用方保证只在一个goroutine中使用
type IPool[T any] interface {
	IClearable

	Get() T
	GetPooled() (PooledObject[T], T)
	Release(item T) error
	Dispose()

	CountAll() int
	CountActive() int
	CountInactive() int
}

var (
	_ IPool[*struct{}] = (*ObjectPool[*struct{}])(nil)
	_ IPool[*struct{}] = (*LinkedPool[*struct{}])(nil)
)
