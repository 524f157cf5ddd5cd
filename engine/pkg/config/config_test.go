package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, def.DefaultConfName+".yaml"), []byte(content), 0644))
	return dir
}

func TestParse(t *testing.T) {
	dir := writeConf(t, `
NodeConf:
  SystemStatus: debug
SystemLogger:
  Level: debug
PoolConf:
  ResetSpec: "*/30 * * * * *"
  Defaults:
    MaxSize: 128
  Pools:
    bullet:
      Strategy: linked
      MaxSize: 16
    packet:
      CollectionCheck: false
BenchConf:
  Shards: 2
`)
	require.NoError(t, Parse(dir))

	assert.True(t, IsDebug())
	assert.Equal(t, def.DefaultAntsPoolSize, Conf.NodeConf.AntsPoolSize)
	assert.Equal(t, def.DefaultReportInterval, Conf.NodeConf.ReportInterval)
	assert.Equal(t, "debug", Conf.SystemLogger.Level)
	assert.Equal(t, 24*time.Hour, Conf.SystemLogger.RotationTime)
	assert.Nil(t, Conf.HttpConf)

	defaults := Conf.PoolConf.Defaults
	assert.Equal(t, 128, defaults.MaxSize)
	assert.Equal(t, def.DefaultPoolCapacity, defaults.DefaultCapacity)
	assert.True(t, defaults.CollectionCheck)
	assert.Equal(t, def.PoolStrategySlice, defaults.Strategy)

	bullet := Conf.PoolConf.Pool("bullet")
	assert.Equal(t, "bullet", bullet.Name)
	assert.Equal(t, def.PoolStrategyLinked, bullet.Strategy)
	assert.Equal(t, 16, bullet.MaxSize)
	assert.True(t, bullet.CollectionCheck)

	packet := Conf.PoolConf.Pool("packet")
	assert.False(t, packet.CollectionCheck)
	assert.Equal(t, 128, packet.MaxSize)

	other := Conf.PoolConf.Pool("other")
	assert.Equal(t, "other", other.Name)
	assert.Equal(t, 128, other.MaxSize)
	other.MaxSize = 1
	assert.Equal(t, 128, Conf.PoolConf.Defaults.MaxSize)

	assert.Equal(t, 2, Conf.BenchConf.Shards)
	assert.Len(t, Conf.BenchConf.Strategies, 3)
}

func TestParse_Invalid(t *testing.T) {
	prev := Conf

	dir := writeConf(t, `
PoolConf:
  ResetSpec: "not a cron"
`)
	err := Parse(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron")
	assert.Same(t, prev, Conf)

	dir = writeConf(t, `
PoolConf:
  Defaults:
    MaxSize: 0
`)
	require.Error(t, Parse(dir))

	dir = writeConf(t, `
PoolConf:
  Pools:
    bullet:
      Strategy: ring
`)
	require.Error(t, Parse(dir))
}

func TestParse_NotFound(t *testing.T) {
	err := Parse(t.TempDir())
	require.ErrorIs(t, err, def.ErrConfNotFound)
}

func TestParse_Env(t *testing.T) {
	dir := writeConf(t, `
NodeConf:
  SystemStatus: release
`)
	t.Setenv("EMBER_POOL_NODECONF_ANTSPOOLSIZE", "7")
	require.NoError(t, Parse(dir))
	assert.Equal(t, 7, Conf.NodeConf.AntsPoolSize)
	assert.False(t, IsDebug())

	// 环境变量中的配置目录优先
	other := writeConf(t, `
NodeConf:
  SystemStatus: debug
`)
	t.Setenv(def.DefaultConfPathEnv, other)
	require.NoError(t, Parse(dir))
	assert.True(t, IsDebug())
	assert.Equal(t, 7, Conf.NodeConf.AntsPoolSize)
}

func TestSetStatus(t *testing.T) {
	dir := writeConf(t, "NodeConf:\n  SystemStatus: release\n")
	require.NoError(t, Parse(dir))

	SetStatus("DEBUG")
	assert.Equal(t, Debug, GetStatus())
	SetStatus("unknown")
	assert.Equal(t, Debug, GetStatus())
}
