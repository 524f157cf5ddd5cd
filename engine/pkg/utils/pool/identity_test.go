package pool

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type blob struct {
	data []byte
}

func TestIdentityOf(t *testing.T) {
	a, b := &TestData{}, &TestData{}
	samePtr := identityOf[*TestData]()
	assert.True(t, samePtr(a, a))
	assert.False(t, samePtr(a, b))

	m1, m2 := map[int]int{}, map[int]int{}
	sameMap := identityOf[map[int]int]()
	assert.True(t, sameMap(m1, m1))
	assert.False(t, sameMap(m1, m2))

	s := make([]int, 4)
	sameSlice := identityOf[[]int]()
	assert.True(t, sameSlice(s, s))
	assert.False(t, sameSlice(s, s[:2]))
	assert.False(t, sameSlice(s, make([]int, 4)))
	assert.False(t, sameSlice(make([]int, 0), make([]int, 0)))
	assert.False(t, sameSlice(nil, nil))

	f := func() {}
	sameFunc := identityOf[func()]()
	assert.True(t, sameFunc(f, f))

	samePoint := identityOf[point]()
	assert.False(t, samePoint(point{1, 2}, point{1, 2}))
	assert.False(t, identityOf[int]()(1, 1))

	sameEmpty := identityOf[*struct{}]()
	e := &struct{}{}
	assert.False(t, sameEmpty(e, e))

	var nilData *TestData
	assert.False(t, samePtr(nilData, nilData))

	sameBlob := identityOf[blob]()
	assert.False(t, sameBlob(blob{}, blob{}))

	c := make(chan int)
	sameChan := identityOf[chan int]()
	assert.True(t, sameChan(c, c))
	assert.False(t, sameChan(c, make(chan int)))
}

func TestIdentityOf_Interface(t *testing.T) {
	r1, r2 := strings.NewReader("a"), strings.NewReader("a")
	same := identityOf[io.Reader]()
	assert.True(t, same(r1, r1))
	assert.False(t, same(r1, r2))
	assert.False(t, same(nil, nil))
	assert.False(t, same(r1, nil))

	m := map[string]int{}
	sameAny := identityOf[any]()
	assert.True(t, sameAny(m, m))
	assert.False(t, sameAny(m, map[string]int{}))
	assert.False(t, sameAny(1, "1"))
	assert.False(t, sameAny(1, 1))
	assert.False(t, sameAny(point{}, point{}))
	p := &TestData{}
	assert.True(t, sameAny(p, p))
}
