package pool

import (
	"testing"

	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPool_Clean(t *testing.T) {
	seen := -1
	p := MustNewListPool[int](WithOnRelease(func(l *[]int) { seen = len(*l) }))

	l := p.Get()
	require.Empty(t, *l)
	*l = append(*l, 1, 2, 3)
	require.NoError(t, p.Release(l))

	// 调用方的onRelease先执行,看到的还是归还前的内容
	assert.Equal(t, 3, seen)

	got := p.Get()
	require.Same(t, l, got)
	assert.Empty(t, *got)
	assert.GreaterOrEqual(t, cap(*got), 3)
}

func TestListPool_ClearsElements(t *testing.T) {
	p := MustNewListPool[*TestData]()

	l := p.Get()
	*l = append(*l, &TestData{ID: 1}, &TestData{ID: 2})
	require.NoError(t, p.Release(l))

	// 截断之后底层数组不保留引用
	assert.Nil(t, (*l)[:2][0])
	assert.Nil(t, (*l)[:2][1])
}

func TestMapPool_Clean(t *testing.T) {
	p := MustNewMapPool[string, int]()

	m := p.Get()
	m["a"] = 1
	m["b"] = 2
	require.NoError(t, p.Release(m))
	require.ErrorIs(t, p.Release(m), def.ErrDoubleRelease)

	got := p.Get()
	assert.Empty(t, got)
	got["c"] = 3
	m2 := p.Get()
	assert.Empty(t, m2)
	assert.Equal(t, 2, p.CountAll())
}

func TestSetPool_Clean(t *testing.T) {
	p := MustNewSetPool[int]()

	s := p.Get()
	s[1] = struct{}{}
	require.NoError(t, p.Release(s))
	assert.Empty(t, p.Get())
}

type bag struct {
	items []int
}

func (b *bag) Clear() {
	b.items = b.items[:0]
}

func TestCollectionPool_Clean(t *testing.T) {
	p, err := NewCollectionPool[bag](WithMaxSize[*bag](4))
	require.NoError(t, err)

	b := p.Get()
	b.items = append(b.items, 1, 2)
	require.NoError(t, p.Release(b))

	got := p.Get()
	require.Same(t, b, got)
	assert.Empty(t, got.items)

	_, err = NewCollectionPool[bag](WithMaxSize[*bag](0))
	require.ErrorIs(t, err, def.ErrInvalidCapacity)
}

func TestSharedCollections(t *testing.T) {
	l := ListGet[uint16]()
	*l = append(*l, 7)
	require.NoError(t, ListRelease(l))
	require.ErrorIs(t, ListRelease(l), def.ErrDoubleRelease)

	guard, got := ListGetPooled[uint16]()
	require.Same(t, l, got)
	assert.Empty(t, *got)
	require.NoError(t, guard.Release())

	m := MapGet[string, uint16]()
	m["x"] = 1
	require.NoError(t, MapRelease(m))
	mg, m2 := MapGetPooled[string, uint16]()
	assert.Empty(t, m2)
	require.NoError(t, mg.Release())

	s := SetGet[uint16]()
	s[1] = struct{}{}
	require.NoError(t, SetRelease(s))
	sg, s2 := SetGetPooled[uint16]()
	assert.Empty(t, s2)
	require.NoError(t, sg.Release())

	assert.Equal(t, "list:*[]uint16", listShared[uint16]().Name())
	assert.Equal(t, "set:map[uint16]struct {}", setShared[uint16]().Name())
}

type genericItem struct {
	N int
}

func TestSharedGeneric(t *testing.T) {
	a := GenericGet[genericItem]()
	a.N = 5
	require.NoError(t, GenericRelease(a))
	require.ErrorIs(t, GenericRelease(a), def.ErrDoubleRelease)

	guard, b := GenericGetPooled[genericItem]()
	require.Same(t, a, b)
	require.NoError(t, guard.Release())
	assert.Same(t, genericShared[genericItem](), genericShared[genericItem]())

	u := UnsafeGenericGet[genericItem]()
	require.NoError(t, UnsafeGenericRelease(u))
	require.NoError(t, UnsafeGenericRelease(u))
	assert.Same(t, u, UnsafeGenericGet[genericItem]())
	assert.Same(t, u, UnsafeGenericGet[genericItem]())
	assert.NotSame(t, genericShared[genericItem](), unsafeShared[genericItem]())
}

func TestNewGenericObjectPool(t *testing.T) {
	p, err := NewGenericObjectPool[genericItem](WithMaxSize[*genericItem](2))
	require.NoError(t, err)

	v := p.Get()
	require.NotNil(t, v)
	assert.Equal(t, 0, v.N)
	assert.Equal(t, 1, p.CountAll())
}
