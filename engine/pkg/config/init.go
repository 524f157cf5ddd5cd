package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/njtc406/emberpool/engine/pkg/utils/validate"
	"github.com/njtc406/viper"
)

var (
	runtimeViper = viper.New()
	Conf         = new(conf)
)

// poolKeys 池配置的字段,用来给每个单独配置的池补默认值
var poolKeys = []string{"Strategy", "DefaultCapacity", "MaxSize", "CollectionCheck", "Managed", "Stats"}

// 配置初始化逻辑:
// 1. 载入.env(可选)
// 2. 解析pool.yaml,环境变量前缀EMBER_POOL
// 3. 单独配置的池使用默认配置补全
// 4. 校验

func Init(confPath string) {
	fmt.Println("=============开始解析配置===================")
	if err := Parse(confPath); err != nil {
		panic(err)
	}
	// 初始化目录
	initDir()
	fmt.Println("=============配置解析完成===================")
}

// Parse 解析配置,解析成功才会替换Conf
func Parse(confPath string) error {
	// .env 不存在不算错误
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	envConfPath := os.Getenv(def.DefaultConfPathEnv)
	if envConfPath != "" {
		confPath = envConfPath
	}
	if confPath == "" {
		confPath = def.DefaultConfPath
	}

	parser := viper.New()
	parser.SetConfigType("yaml")
	parser.SetConfigName(def.DefaultConfName)
	parser.AddConfigPath(confPath)

	setDefaultValues(parser)

	// 环境变量,例如 EMBER_POOL_POOLCONF_RESETSPEC
	parser.SetEnvPrefix(def.DefaultEnvPrefix)
	parser.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	parser.AutomaticEnv()

	if err := parser.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%s: %w", confPath, def.ErrConfNotFound)
		}
		return fmt.Errorf("read config: %w", err)
	}

	setPoolDefaults(parser)

	c := new(conf)
	if err := parser.Unmarshal(c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	for name, pc := range c.PoolConf.Pools {
		if pc != nil && pc.Name == "" {
			pc.Name = name
		}
	}

	if err := validate.Struct(c); err != nil {
		return validate.TransError(err, validate.ZH)
	}

	Conf = c
	runtimeViper = parser
	return nil
}

// setPoolDefaults 单独配置的池没有配置的字段使用Defaults中的值
func setPoolDefaults(parser *viper.Viper) {
	for name := range parser.GetStringMap("PoolConf.Pools") {
		for _, key := range poolKeys {
			parser.SetDefault(
				strings.Join([]string{"PoolConf.Pools", name, key}, "."),
				parser.Get("PoolConf.Defaults."+key),
			)
		}
	}
}

// initDir 创建必要的目录
func initDir() {
	createDirIfNotExists(Conf.NodeConf.PVPath)
	createDirIfNotExists(Conf.SystemLogger.Path)
}

// createDirIfNotExists 创建目录
func createDirIfNotExists(dir string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}
}

// setDefaultValues 设置默认值
func setDefaultValues(parser *viper.Viper) {
	// 基础配置
	parser.SetDefault("NodeConf.SystemStatus", Release)
	parser.SetDefault("NodeConf.PVPath", def.DefaultPVPath)
	parser.SetDefault("NodeConf.AntsPoolSize", def.DefaultAntsPoolSize)
	parser.SetDefault("NodeConf.ReportInterval", def.DefaultReportInterval)

	// 日志默认配置
	parser.SetDefault("SystemLogger.Path", path.Join(def.DefaultPVPath, def.DefaultLogPath))
	parser.SetDefault("SystemLogger.Name", "system")
	parser.SetDefault("SystemLogger.Level", "error")
	parser.SetDefault("SystemLogger.Caller", true)
	parser.SetDefault("SystemLogger.FullCaller", false)
	parser.SetDefault("SystemLogger.Color", false)
	parser.SetDefault("SystemLogger.MaxAge", time.Hour*24*15)
	parser.SetDefault("SystemLogger.RotationTime", time.Hour*24)

	// 对象池默认配置
	parser.SetDefault("PoolConf.ResetSpec", "")
	parser.SetDefault("PoolConf.Defaults.Strategy", def.PoolStrategySlice)
	parser.SetDefault("PoolConf.Defaults.DefaultCapacity", def.DefaultPoolCapacity)
	parser.SetDefault("PoolConf.Defaults.MaxSize", def.DefaultPoolMaxSize)
	parser.SetDefault("PoolConf.Defaults.CollectionCheck", true)
	parser.SetDefault("PoolConf.Defaults.Managed", true)
	parser.SetDefault("PoolConf.Defaults.Stats", true)

	// 压测默认配置
	parser.SetDefault("BenchConf.Strategies", []string{def.PoolStrategySlice, def.PoolStrategyLinked, def.PoolStrategyUnsafe})
	parser.SetDefault("BenchConf.Shards", def.DefaultBenchShards)
	parser.SetDefault("BenchConf.Iterations", def.DefaultBenchIterations)
	parser.SetDefault("BenchConf.Burst", def.DefaultBenchBurst)
	parser.SetDefault("BenchConf.ObjectSize", def.DefaultBenchObjectSize)
}

// Viper 最近一次解析使用的viper,用于打印最终配置
func Viper() *viper.Viper {
	return runtimeViper
}

// IsDebug 返回是否为调试模式
func IsDebug() bool {
	return Conf.NodeConf != nil && Conf.NodeConf.SystemStatus == Debug
}

// SetStatus 设置系统状态
func SetStatus(status string) {
	stat := strings.ToLower(status)
	if stat != Debug && stat != Release {
		return
	}

	Conf.NodeConf.SystemStatus = stat
}

func GetStatus() string {
	return Conf.NodeConf.SystemStatus
}
