package config

import (
	"strings"
	"time"

	"github.com/njtc406/emberpool/engine/pkg/bench"
	"github.com/njtc406/emberpool/engine/pkg/sysModule/httpmodule"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
)

const (
	Debug   = `debug`
	Release = `release`
)

type conf struct {
	NodeConf     *NodeConf        `binding:"required"` // 基础配置
	SystemLogger *log.LoggerConf  `binding:"required"` // 系统日志
	PoolConf     *PoolConf        `binding:"required"` // 对象池配置
	HttpConf     *httpmodule.Conf `binding:""`         // 调试http服务(不配置则不启动)
	BenchConf    *bench.Conf      `binding:"required"` // 压测配置
}

type NodeConf struct {
	SystemStatus   string        `binding:"oneof=debug release"` // 系统状态(debug/release)
	PVPath         string        `binding:"required"`            // 缓存目录(默认./run)
	AntsPoolSize   int           `binding:"gt=0"`                // 线程池大小
	ReportInterval time.Duration `binding:""`                    // 统计发布间隔(默认5秒)
}

type PoolConf struct {
	ResetSpec string                `binding:"omitempty,cron"`          // 定时清理所有池的cron表达式(为空不开启)
	Defaults  *pool.Conf            `binding:"required"`                // 默认池配置
	Pools     map[string]*pool.Conf `binding:"omitempty,dive,required"` // 按名称单独配置(未配置的字段使用默认值)
}

// Pool 获取指定名称的池配置,没有单独配置时返回默认配置的副本
func (c *PoolConf) Pool(name string) *pool.Conf {
	if pc, ok := c.Pools[strings.ToLower(name)]; ok {
		return pc
	}
	pc := *c.Defaults
	pc.Name = name
	return &pc
}
