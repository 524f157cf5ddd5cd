package bench

import (
	"bytes"
	"context"
	"testing"

	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/njtc406/emberpool/engine/pkg/utils/asynclib"
	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConf() *Conf {
	return &Conf{
		Strategies: []string{def.PoolStrategySlice, def.PoolStrategyLinked, def.PoolStrategyUnsafe},
		Shards:     2,
		Iterations: 10,
		Burst:      8,
		ObjectSize: 16,
	}
}

func TestRunner_Run(t *testing.T) {
	workers := asynclib.NewAntsPool(2)
	defer workers.Release()
	m := pool.NewPoolManager("bench")

	conf := testConf()
	r := NewRunner(conf, StaticConf(&pool.Conf{DefaultCapacity: 8, MaxSize: 64, CollectionCheck: true}), workers, m)
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.Equal(t, 6, m.Len())

	for i, res := range report.Results {
		assert.Equal(t, conf.Strategies[i], res.Strategy)
		assert.EqualValues(t, 2*10*9*2, res.Ops)
		require.Len(t, res.Pools, 2)

		total := res.Totals()
		assert.EqualValues(t, 2*9, total.Created)
		assert.EqualValues(t, 0, total.Overflow)
		assert.EqualValues(t, 0, total.DoubleRelease)
		assert.Equal(t, 0, total.CountActive)
		for _, st := range res.Pools {
			assert.Equal(t, res.Strategy, st.Strategy)
			assert.Equal(t, st.CountAll, st.CountInactive)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, report.Fprint(&buf))
	assert.Contains(t, buf.String(), "linked")
	assert.Contains(t, buf.String(), "rss:")

	data, err := report.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"strategy": "unsafe"`)

	m.Publish()
	assert.Len(t, m.Published(), 6)
}

func TestRunner_Overflow(t *testing.T) {
	workers := asynclib.NewAntsPool(1)
	defer workers.Release()

	conf := testConf()
	conf.Strategies = []string{def.PoolStrategyLinked}
	r := NewRunner(conf, StaticConf(&pool.Conf{MaxSize: 4, CollectionCheck: true}), workers, nil)
	report, err := r.Run(context.Background())
	require.NoError(t, err)

	total := report.Results[0].Totals()
	assert.Greater(t, total.Overflow, int64(0))
	for _, st := range report.Results[0].Pools {
		assert.LessOrEqual(t, st.CountInactive, 4)
	}
}

func TestRunner_Canceled(t *testing.T) {
	workers := asynclib.NewAntsPool(2)
	defer workers.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(testConf(), StaticConf(&pool.Conf{MaxSize: 64}), workers, nil)
	_, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_InvalidPool(t *testing.T) {
	workers := asynclib.NewAntsPool(1)
	defer workers.Release()

	r := NewRunner(testConf(), StaticConf(&pool.Conf{MaxSize: 0}), workers, nil)
	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, def.ErrInvalidCapacity)
}

func TestRunner_PerPoolConf(t *testing.T) {
	workers := asynclib.NewAntsPool(2)
	defer workers.Release()

	defaults := &pool.Conf{MaxSize: 64, CollectionCheck: true}
	pools := map[string]*pool.Conf{
		PoolName(def.PoolStrategyLinked): {Strategy: def.PoolStrategySlice, MaxSize: 2, CollectionCheck: true},
	}
	lookup := func(name string) *pool.Conf {
		if pc, ok := pools[name]; ok {
			return pc
		}
		return defaults
	}

	conf := testConf()
	conf.Strategies = []string{def.PoolStrategySlice, def.PoolStrategyLinked}
	report, err := NewRunner(conf, lookup, workers, nil).Run(context.Background())
	require.NoError(t, err)

	slice, linked := report.Results[0], report.Results[1]
	assert.EqualValues(t, 0, slice.Totals().Overflow)
	assert.Greater(t, linked.Totals().Overflow, int64(0))
	for _, st := range linked.Pools {
		// 单独配置覆盖了容量,策略仍然是压测的策略
		assert.Equal(t, def.PoolStrategyLinked, st.Strategy)
		assert.Equal(t, 2, st.MaxSize)
		assert.Contains(t, st.Name, "bench-linked-")
	}

	_, err = NewRunner(conf, func(string) *pool.Conf { return nil }, workers, nil).Run(context.Background())
	require.ErrorIs(t, err, def.ErrConfNotFound)
}
