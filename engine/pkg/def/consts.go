// Package def
// @Title  常量定义
// @Description  desc
// @Author  yr  2024/11/6
// @Update  yr  2025/7/18
package def

import "time"

const (
	DefaultPoolCapacity = 10    // 默认预留的缓存容量
	DefaultPoolMaxSize  = 10000 // 默认最大缓存数量
	DefaultListCapacity = 16    // ListPool新建切片的默认容量
)

const (
	PoolStrategySlice  = "slice"  // 数组+单槽实现
	PoolStrategyLinked = "linked" // 链表实现
	PoolStrategyUnsafe = "unsafe" // 关闭重复释放检测的数组实现
)

const (
	DefaultConfPath     = "./configs"
	DefaultConfName     = "pool"
	DefaultEnvPrefix    = "EMBER_POOL"
	DefaultConfPathEnv  = "EMBER_POOL_CONF_PATH"
	DefaultPVPath       = "./cache"
	DefaultLogPath      = "logs"
	DefaultAntsPoolSize = 100
)

const (
	DefaultReportInterval  = 5 * time.Second
	DefaultHttpAddr        = "127.0.0.1:6060"
	DefaultReadHeaderTime  = 5 * time.Second
	DefaultIdleTimeout     = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

const (
	MetricsNamespace = "ember"
	MetricsSubsystem = "pool"
)

const (
	DefaultBenchShards     = 4     // 压测分片数(每个分片一个goroutine,独占自己的池)
	DefaultBenchIterations = 10000 // 每个分片的轮数
	DefaultBenchBurst      = 64    // 每轮连续取出的对象数
	DefaultBenchObjectSize = 256   // 压测对象的缓冲区大小(字节)
)
