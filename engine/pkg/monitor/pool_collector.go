// Package monitor
// @Title  对象池监控
// @Description  把管理器发布的统计导出为prometheus指标
// @Author  yr  2025/7/18
// @Update  yr  2025/7/18
package monitor

import (
	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// StatsSource 统计来源,必须可以在任意goroutine中调用(比如PoolManager.Published)
type StatsSource func() []pool.Stats

var poolLabels = []string{"name", "strategy", "id"}

type metricDesc struct {
	desc      *prometheus.Desc
	valueType prometheus.ValueType
	value     func(s *pool.Stats) float64
}

// PoolCollector prometheus.Collector,每次采集时读取最近一次发布的统计
type PoolCollector struct {
	source  StatsSource
	metrics []metricDesc
}

func newDesc(name, help string) *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName(def.MetricsNamespace, def.MetricsSubsystem, name),
		help, poolLabels, nil,
	)
}

func NewPoolCollector(source StatsSource) *PoolCollector {
	gauge, counter := prometheus.GaugeValue, prometheus.CounterValue
	return &PoolCollector{
		source: source,
		metrics: []metricDesc{
			{newDesc("count_all", "Instances created and not yet destroyed."), gauge, func(s *pool.Stats) float64 { return float64(s.CountAll) }},
			{newDesc("count_active", "Instances checked out of the pool."), gauge, func(s *pool.Stats) float64 { return float64(s.CountActive) }},
			{newDesc("count_inactive", "Instances retained by the pool."), gauge, func(s *pool.Stats) float64 { return float64(s.CountInactive) }},
			{newDesc("max_size", "Maximum number of retained instances."), gauge, func(s *pool.Stats) float64 { return float64(s.MaxSize) }},
			{newDesc("created_total", "Instances built by the factory."), counter, func(s *pool.Stats) float64 { return float64(s.Created) }},
			{newDesc("reused_total", "Gets served from retained instances."), counter, func(s *pool.Stats) float64 { return float64(s.Reused) }},
			{newDesc("released_total", "Successful releases."), counter, func(s *pool.Stats) float64 { return float64(s.Released) }},
			{newDesc("overflow_total", "Releases dropped because the pool was full."), counter, func(s *pool.Stats) float64 { return float64(s.Overflow) }},
			{newDesc("destroyed_total", "Instances passed to the destroy hook."), counter, func(s *pool.Stats) float64 { return float64(s.Destroyed) }},
			{newDesc("double_release_total", "Releases rejected as already retained."), counter, func(s *pool.Stats) float64 { return float64(s.DoubleRelease) }},
			{newDesc("clears_total", "Clear calls."), counter, func(s *pool.Stats) float64 { return float64(s.Clears) }},
		},
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.metrics {
		ch <- m.desc
	}
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	for _, st := range c.source() {
		for _, m := range c.metrics {
			ch <- prometheus.MustNewConstMetric(m.desc, m.valueType, m.value(&st), st.Name, st.Strategy, st.ID)
		}
	}
}

// NewRegistry 独立的registry,包含对象池指标和go运行时指标
func NewRegistry(source StatsSource) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewPoolCollector(source),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
