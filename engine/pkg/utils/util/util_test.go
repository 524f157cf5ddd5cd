package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sink [][]byte

func TestReadMemSnapshot(t *testing.T) {
	before := ReadMemSnapshot()
	buf := make([][]byte, 0, 64)
	for i := 0; i < 64; i++ {
		buf = append(buf, make([]byte, 1024))
	}
	after := ReadMemSnapshot()
	sink = buf

	diff := after.Sub(before)
	assert.Greater(t, after.RSS, uint64(0))
	assert.GreaterOrEqual(t, diff.Mallocs, uint64(64))
	assert.GreaterOrEqual(t, diff.TotalAlloc, uint64(64*1024))
	assert.GreaterOrEqual(t, after.CPULoad, 0.0)
}
