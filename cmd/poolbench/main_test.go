package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/njtc406/emberpool/engine/pkg/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	content := `
NodeConf:
  PVPath: ` + dir + `
  AntsPoolSize: 2
SystemLogger:
  Path: ` + filepath.Join(dir, "logs") + `
  Level: warn
BenchConf:
  Shards: 2
  Iterations: 20
  Burst: 4
  ObjectSize: 8
`
	for _, e := range extra {
		content += e
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pool.yaml"), []byte(content), 0644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config", "--conf", writeConf(t))
	require.NoError(t, err)
	assert.Contains(t, out, `"AntsPoolSize": 2`)
}

func TestRunCmd_JSON(t *testing.T) {
	out, err := execute(t, "run", "--conf", writeConf(t), "--json", "--strategy", "slice,linked")
	require.NoError(t, err)

	var report bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 2)
	assert.Equal(t, "linked", report.Results[1].Strategy)
	assert.EqualValues(t, 2*20*5*2, report.Results[0].Ops)
}

func TestRunCmd_PoolOverride(t *testing.T) {
	dir := writeConf(t, `
PoolConf:
  Pools:
    bench-linked:
      MaxSize: 2
`)
	out, err := execute(t, "run", "--conf", dir, "--json", "--strategy", "slice,linked")
	require.NoError(t, err)

	var report bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 2)
	for _, st := range report.Results[0].Pools {
		assert.Equal(t, 10000, st.MaxSize)
	}
	for _, st := range report.Results[1].Pools {
		assert.Equal(t, 2, st.MaxSize)
		assert.Equal(t, "linked", st.Strategy)
	}
	assert.Greater(t, report.Results[1].Totals().Overflow, int64(0))
}

func TestRunCmd_InvalidFlags(t *testing.T) {
	_, err := execute(t, "run", "--conf", writeConf(t), "--strategy", "ring")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "poolbench v")
}
