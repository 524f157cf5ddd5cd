package pool

import (
	"reflect"

	"github.com/njtc406/emberpool/engine/pkg/def"
)

// Conf 配置文件中的对象池参数
type Conf struct {
	Name            string `binding:""`                                    // 池名称,为空时使用类型名
	Strategy        string `binding:"omitempty,oneof=slice linked unsafe"` // 存储策略(默认slice)
	DefaultCapacity int    `binding:"min=0"`                               // 初始容量(默认10)
	MaxSize         int    `binding:"gt=0"`                                // 最多缓存多少个对象(默认10000)
	CollectionCheck bool   `binding:""`                                    // 是否检查重复释放(默认开启)
	Managed         bool   `binding:""`                                    // 是否注册到全局管理器
	Stats           bool   `binding:""`                                    // 是否开启统计
}

type config[T any] struct {
	name            string
	strategy        string
	onGet           func(T)
	onRelease       func(T)
	onDestroy       func(T)
	collectionCheck bool
	defaultCapacity int
	maxSize         int
	manager         *PoolManager
	recorder        IStatsRecorder
}

type Option[T any] func(c *config[T])

func newConfig[T any](strategy string, opts []Option[T]) *config[T] {
	c := &config[T]{
		name:            reflect.TypeFor[T]().String(),
		strategy:        strategy,
		collectionCheck: true,
		defaultCapacity: def.DefaultPoolCapacity,
		maxSize:         def.DefaultPoolMaxSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.recorder == nil {
		c.recorder = NewNoStatsRecorder()
	}
	return c
}

func WithName[T any](name string) Option[T] {
	return func(c *config[T]) {
		c.name = name
	}
}

// WithOnGet 对象每次被取出时调用
func WithOnGet[T any](f func(T)) Option[T] {
	return func(c *config[T]) {
		c.onGet = f
	}
}

// WithOnRelease 对象每次归还时调用(在放回缓存之前)
func WithOnRelease[T any](f func(T)) Option[T] {
	return func(c *config[T]) {
		c.onRelease = f
	}
}

// WithOnDestroy 对象被丢弃时调用(缓存已满或者Clear)
func WithOnDestroy[T any](f func(T)) Option[T] {
	return func(c *config[T]) {
		c.onDestroy = f
	}
}

// WithCollectionCheck 归还时是否检查对象已经在池中,默认开启
func WithCollectionCheck[T any](check bool) Option[T] {
	return func(c *config[T]) {
		c.collectionCheck = check
	}
}

func WithDefaultCapacity[T any](capacity int) Option[T] {
	return func(c *config[T]) {
		c.defaultCapacity = capacity
	}
}

func WithMaxSize[T any](size int) Option[T] {
	return func(c *config[T]) {
		c.maxSize = size
	}
}

// WithManager 创建后注册到指定管理器(弱引用)
func WithManager[T any](m *PoolManager) Option[T] {
	return func(c *config[T]) {
		c.manager = m
	}
}

// WithGlobalManager 创建后注册到全局管理器
func WithGlobalManager[T any]() Option[T] {
	return WithManager[T](Default())
}

// WithStats 开启统计
func WithStats[T any]() Option[T] {
	return func(c *config[T]) {
		c.recorder = NewStatsRecorder()
	}
}

func WithStatsRecorder[T any](r IStatsRecorder) Option[T] {
	return func(c *config[T]) {
		c.recorder = r
	}
}

// WithConf 使用配置文件参数,Strategy字段只在NewPool中生效
func WithConf[T any](conf *Conf) Option[T] {
	return func(c *config[T]) {
		if conf == nil {
			return
		}
		if conf.Name != "" {
			c.name = conf.Name
		}
		c.defaultCapacity = conf.DefaultCapacity
		c.maxSize = conf.MaxSize
		c.collectionCheck = conf.CollectionCheck
		if conf.Managed {
			c.manager = Default()
		}
		if conf.Stats {
			c.recorder = NewStatsRecorder()
		}
	}
}

// withChainedRelease 在调用方的onRelease之后追加清理逻辑
func withChainedRelease[T any](f func(T)) Option[T] {
	return func(c *config[T]) {
		prev := c.onRelease
		if prev == nil {
			c.onRelease = f
			return
		}
		c.onRelease = func(item T) {
			prev(item)
			f(item)
		}
	}
}

func withStrategy[T any](strategy string) Option[T] {
	return func(c *config[T]) {
		c.strategy = strategy
	}
}
