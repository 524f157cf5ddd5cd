package monitor

import (
	"strings"
	"testing"

	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolCollector(t *testing.T) {
	stats := []pool.Stats{
		{ID: "a", Name: "bullet", Strategy: "slice", CountAll: 3, CountActive: 1, CountInactive: 2, MaxSize: 8, Created: 3, Reused: 5, DoubleRelease: 1},
		{ID: "b", Name: "packet", Strategy: "linked", CountAll: 1, CountInactive: 1, MaxSize: 4, Created: 1},
	}
	c := NewPoolCollector(func() []pool.Stats { return stats })

	assert.Equal(t, 2*11, testutil.CollectAndCount(c))

	expected := `
# HELP ember_pool_count_inactive Instances retained by the pool.
# TYPE ember_pool_count_inactive gauge
ember_pool_count_inactive{id="a",name="bullet",strategy="slice"} 2
ember_pool_count_inactive{id="b",name="packet",strategy="linked"} 1
# HELP ember_pool_double_release_total Releases rejected as already retained.
# TYPE ember_pool_double_release_total counter
ember_pool_double_release_total{id="a",name="bullet",strategy="slice"} 1
ember_pool_double_release_total{id="b",name="packet",strategy="linked"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"ember_pool_count_inactive", "ember_pool_double_release_total"))
}

func TestPoolCollector_Manager(t *testing.T) {
	m := pool.NewPoolManager("monitor")
	p := pool.MustNewObjectPool(func() *int { return new(int) },
		pool.WithManager[*int](m), pool.WithName[*int]("ints"), pool.WithStats[*int]())
	p.Get()

	c := NewPoolCollector(m.Published)
	assert.Equal(t, 0, testutil.CollectAndCount(c))

	m.Publish()
	assert.Equal(t, 11, testutil.CollectAndCount(c))
	assert.Equal(t, 1, testutil.CollectAndCount(c, "ember_pool_count_active"))
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry(func() []pool.Stats { return nil })
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
