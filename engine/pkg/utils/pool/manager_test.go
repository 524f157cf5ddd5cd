package pool

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolManager_Reset(t *testing.T) {
	m := NewPoolManager("test")
	create, _ := newCounter()

	destroyed := 0
	onDestroy := WithOnDestroy(func(*TestData) { destroyed++ })
	p1 := MustNewObjectPool(create, WithManager[*TestData](m), onDestroy)
	p2 := MustNewLinkedPool(create, WithManager[*TestData](m), onDestroy)
	require.Equal(t, 2, m.Len())

	require.NoError(t, p1.Release(p1.Get()))
	require.NoError(t, p2.Release(p2.Get()))

	cleared, pruned := m.Reset()
	assert.Equal(t, 2, cleared)
	assert.Equal(t, 0, pruned)
	assert.Equal(t, 2, destroyed)
	assert.Equal(t, 0, p1.CountInactive())
	assert.Equal(t, 0, p2.CountAll())
}

func TestPoolManager_PruneCollected(t *testing.T) {
	m := NewPoolManager("test")
	create, _ := newCounter()

	keep := MustNewObjectPool(create, WithManager[*TestData](m), WithName[*TestData]("keep"))
	func() {
		p := MustNewLinkedPool(create, WithManager[*TestData](m), WithName[*TestData]("drop"))
		p.Get()
	}()
	require.Equal(t, 2, m.Len())

	require.NoError(t, keep.Release(keep.Get()))
	require.Eventually(t, func() bool {
		runtime.GC()
		_, pruned := m.Reset()
		return pruned == 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 0, keep.CountInactive())

	cleared, pruned := m.Reset()
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 0, pruned)

	stats := m.Snapshot()
	require.Len(t, stats, 1)
	assert.Equal(t, "keep", stats[0].Name)
	runtime.KeepAlive(keep)
}

func TestPoolManager_Prune(t *testing.T) {
	m := NewPoolManager("test")
	create, _ := newCounter()
	keep := MustNewObjectPool(create, WithManager[*TestData](m))
	func() {
		MustNewObjectPool(create, WithManager[*TestData](m))
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return m.Prune() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 0, m.Prune())
	runtime.KeepAlive(keep)
}

func TestPoolManager_Unregister(t *testing.T) {
	m := NewPoolManager("test")
	create, _ := newCounter()

	p1 := MustNewObjectPool(create, WithManager[*TestData](m))
	p2 := MustNewObjectPool(create)
	id := Register(m, p2)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	assert.True(t, Unregister(m, p1))
	assert.False(t, Unregister(m, p1))
	assert.Equal(t, 1, m.Len())

	require.NoError(t, p1.Release(p1.Get()))
	m.Reset()
	assert.Equal(t, 1, p1.CountInactive())

	stats := m.Snapshot()
	require.Len(t, stats, 1)
	assert.Equal(t, id, stats[0].ID)
}

func TestPoolManager_Published(t *testing.T) {
	m := NewPoolManager("test")
	require.Nil(t, m.Published())

	create, _ := newCounter()
	p := MustNewObjectPool(create, WithManager[*TestData](m), WithStats[*TestData](), WithName[*TestData]("pub"))
	p.Get()
	m.Publish()

	var (
		wg  sync.WaitGroup
		got []Stats
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		got = m.Published()
	}()
	wg.Wait()

	require.Len(t, got, 1)
	assert.Equal(t, "pub", got[0].Name)
	assert.Equal(t, 1, got[0].CountActive)
	assert.EqualValues(t, 1, got[0].Created)
	assert.NotEmpty(t, got[0].ID)
}

func TestResetAll(t *testing.T) {
	p := MustNewObjectPool(func() *TestData {
		return &TestData{}
	}, WithGlobalManager[*TestData](), WithName[*TestData]("global"))
	require.NoError(t, p.Release(p.Get()))

	cleared, _ := ResetAll()
	assert.GreaterOrEqual(t, cleared, 1)
	assert.Equal(t, 0, p.CountInactive())
	assert.Same(t, Default(), Default())
	require.True(t, Unregister(Default(), p))
}
