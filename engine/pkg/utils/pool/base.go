package pool

import (
	"fmt"

	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
)

// poolBase 两种存储策略共用的部分
type poolBase[T any] struct {
	name            string
	strategy        string
	create          func() T
	onGet           func(T)
	onRelease       func(T)
	onDestroy       func(T)
	collectionCheck bool
	maxSize         int
	same            func(a, b T) bool
	stats           IStatsRecorder

	countAll int
}

func newPoolBase[T any](create func() T, c *config[T]) (poolBase[T], error) {
	if create == nil {
		return poolBase[T]{}, fmt.Errorf("pool[%s]: %w", c.name, def.ErrMissingFactory)
	}
	if c.maxSize <= 0 {
		return poolBase[T]{}, fmt.Errorf("pool[%s] max size %d: %w", c.name, c.maxSize, def.ErrInvalidCapacity)
	}
	return poolBase[T]{
		name:            c.name,
		strategy:        c.strategy,
		create:          create,
		onGet:           c.onGet,
		onRelease:       c.onRelease,
		onDestroy:       c.onDestroy,
		collectionCheck: c.collectionCheck,
		maxSize:         c.maxSize,
		same:            identityOf[T](),
		stats:           c.recorder,
	}, nil
}

func (b *poolBase[T]) Name() string {
	return b.name
}

func (b *poolBase[T]) CountAll() int {
	return b.countAll
}

func (b *poolBase[T]) MaxSize() int {
	return b.maxSize
}

func (b *poolBase[T]) newItem() T {
	item := b.create()
	b.countAll++
	b.stats.IncCreate()
	return item
}

func (b *poolBase[T]) got(item T) T {
	if b.onGet != nil {
		b.onGet(item)
	}
	return item
}

func (b *poolBase[T]) released(item T) {
	if b.onRelease != nil {
		b.onRelease(item)
	}
	b.stats.IncRelease()
}

// overflow 缓存已满,直接丢弃
func (b *poolBase[T]) overflow(item T) {
	b.countAll--
	b.stats.IncOverflow()
	b.destroy(item)
}

func (b *poolBase[T]) destroy(item T) {
	b.stats.AddDestroy(1)
	if b.onDestroy != nil {
		b.onDestroy(item)
	}
}

func (b *poolBase[T]) doubleRelease(item T) error {
	b.stats.IncDoubleRelease()
	log.SysLogger.Errorf("pool[%s] release %T which is already in the pool", b.name, item)
	return fmt.Errorf("pool[%s]: %w", b.name, def.ErrDoubleRelease)
}

func (b *poolBase[T]) snapshot(inactive int) Stats {
	st := b.stats.Snapshot()
	st.Name = b.name
	st.Strategy = b.strategy
	st.CountAll = b.countAll
	st.CountInactive = inactive
	st.CountActive = b.countAll - inactive
	st.MaxSize = b.maxSize
	return st
}
