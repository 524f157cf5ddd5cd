package log

import (
	"os"
	"sync"
)

// SysLogger 系统日志,未调用Init之前输出到stderr,只记录warn及以上级别
var SysLogger ILogger = New(WithLevel(WarnLevel), WithOut(os.Stderr))

var initOnce sync.Once

func Init(conf *LoggerConf, isDebug bool) {
	initOnce.Do(func() {
		logger, err := NewDefaultLogger(
			conf.Path,
			conf,
			isDebug, // 是否开启前台打印
		)
		if err != nil {
			panic(err)
		}

		SysLogger = logger

		SysLogger.Info("-------->system log init ok<---------")
	})
}

func Close() {
	SysLogger.Info("-------->system log release<---------")
	Release(SysLogger)
}
