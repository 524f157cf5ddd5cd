package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	MaxSize int    `binding:"gt=0"`
	Spec    string `binding:"omitempty,cron"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(&sample{MaxSize: 1, Spec: "@every 5s"}))
	require.NoError(t, Struct(&sample{MaxSize: 1, Spec: "0 */5 * * * *"}))
	require.NoError(t, Struct(&sample{MaxSize: 1}))

	err := Struct(&sample{MaxSize: 0})
	require.Error(t, err)

	err = Struct(&sample{MaxSize: 1, Spec: "not a spec"})
	require.Error(t, err)
}

func TestTransError(t *testing.T) {
	err := Struct(&sample{MaxSize: 0, Spec: "bad"})
	require.Error(t, err)

	enErr := TransError(err, EN)
	assert.Contains(t, enErr.Error(), "sample.MaxSize")
	assert.Contains(t, enErr.Error(), "valid cron spec")

	zhErr := TransError(err, ZH)
	assert.Contains(t, zhErr.Error(), "cron表达式")

	assert.Nil(t, TransError(nil, EN))
}
