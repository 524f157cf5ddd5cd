package asynclib

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll(t *testing.T) {
	p := NewAntsPool(2)
	defer p.Release()

	var n atomic.Int32
	boom := errors.New("boom")
	errs := RunAll(p,
		func() error { n.Add(1); return nil },
		func() error { n.Add(1); return boom },
		func() error { panic("oops") },
	)

	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.ErrorContains(t, errs[2], "oops")
	assert.EqualValues(t, 2, n.Load())
}

func TestGo(t *testing.T) {
	Release()
	require.Error(t, Go(func() {}))

	InitAntsPool(4)
	defer Release()

	done := make(chan struct{})
	require.NoError(t, Go(func() { close(done) }))
	<-done

	// panic不会影响协程池
	require.NoError(t, Go(func() { panic("ignored") }))
	done = make(chan struct{})
	require.NoError(t, Go(func() { close(done) }))
	<-done
}
