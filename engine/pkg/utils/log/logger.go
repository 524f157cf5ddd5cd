/*
 * Copyright (c) 2024. YR. All rights reserved
 */

// Package log
// 模块名: 日志
// 功能描述: 基于logrus的系统日志,支持文件切割和异步写入
// 作者:  yr  2024/3/2 0002 18:57
// 最后更新:  yr  2025/7/18 0018 0:10
package log

import (
	"io"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/njtc406/logrus"
)

type Level = logrus.Level
type Fields = logrus.Fields

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

var levelMap = map[string]Level{
	"panic": PanicLevel,
	"fatal": FatalLevel,
	"error": ErrorLevel,
	"warn":  WarnLevel,
	"info":  InfoLevel,
	"debug": DebugLevel,
	"trace": TraceLevel,
}

// ILogger 系统日志接口,*logrus.Logger 直接满足
type ILogger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Panicf(format string, args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Panic(args ...interface{})
	WithField(key string, value interface{}) *logrus.Entry
	WithFields(fields logrus.Fields) *logrus.Entry
	WriterLevel(level logrus.Level) *io.PipeWriter
	IsLevelEnabled(level logrus.Level) bool
}

var locker sync.Mutex
var writerLog = map[ILogger]io.WriteCloser{}

func logWriter(logger ILogger, writer io.WriteCloser) {
	locker.Lock()
	defer locker.Unlock()

	if _, ok := writerLog[logger]; ok {
		return
	}

	writerLog[logger] = writer
}

func logRelease(logger ILogger) {
	locker.Lock()
	defer locker.Unlock()
	if writer, ok := writerLog[logger]; ok {
		_ = writer.Close()
		delete(writerLog, logger)
	}
}

type AsyncMode struct {
	Enable bool
	Config *AsyncWriterConfig
}

type LoggerConf struct {
	Path         string        `binding:""`                                              // 日志文件路径
	Name         string        `binding:""`                                              // 日志文件名称
	Level        string        `binding:"oneof=panic fatal error warn info debug trace"` // 日志写入级别 小于设置级别的类型都会被记录
	AsyncMode    *AsyncMode    `binding:""`                                              // 是否异步写入
	Caller       bool          `binding:""`                                              // 是否打印调用者
	FullCaller   bool          `binding:""`                                              // 是否打印完整调用者
	Color        bool          `binding:""`                                              // 是否打印级别色彩
	MaxAge       time.Duration `binding:"min=1m,max=720h"`                               // 日志保留时间 min=1m,max=720h 最小1分钟,最大1个月,默认15天
	RotationTime time.Duration `binding:"min=1m,max=24h"`                                // 日志切割时间 min=1m,max=24h 最小1分钟,最大1天,默认1天
}

// New creates a new Logger object.
func New(opts ...Option) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(newFormatter())
	for _, opt := range opts {
		opt(l)
	}

	return l
}

func fixConf(conf *LoggerConf) *LoggerConf {
	if conf == nil {
		conf = &LoggerConf{
			Level:        "info",
			MaxAge:       time.Hour * 24 * 15, // 默认15天
			RotationTime: time.Hour * 24,
		}
	}

	if conf.Level == "" {
		conf.Level = "info"
	}

	if conf.MaxAge == 0 {
		conf.MaxAge = time.Hour * 24 * 15
	}

	if conf.RotationTime == 0 {
		conf.RotationTime = time.Hour * 24
	}

	return conf
}

// ParseLevel 解析日志级别,无法识别的级别返回error级别
func ParseLevel(level string) Level {
	if lv, ok := levelMap[strings.ToLower(level)]; ok {
		return lv
	}
	return ErrorLevel
}

// NewDefaultLogger 创建一个通用日志对象
// filePath 日志输出目录
// conf.Name 日志文件名(最终文件名会是 filePath/fileName_20060102.log)(为空且开启标准输出的情况下只输出到stdout)
// conf.MaxAge 最大存放时间(过期会自动删除)
// conf.RotationTime 自动切分间隔
// openStdout 是否开启标准输出
func NewDefaultLogger(filePath string, conf *LoggerConf, openStdout bool) (ILogger, error) {
	conf = fixConf(conf)
	var writers []io.Writer

	if len(conf.Name) > 0 {
		if len(filePath) == 0 {
			filePath = "./" // 默认当前目录
		}
		if conf.RotationTime < time.Minute || conf.RotationTime > time.Hour*24 {
			return nil, RotationTimeErr
		}

		w, err := rotateNew(
			path.Join(filePath, conf.Name),
			WithMaxAge(conf.MaxAge),
			WithRotationTime(conf.RotationTime),
			WithPattern(patternFor(conf.RotationTime)),
		)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}

	if openStdout {
		writers = append(writers, os.Stdout)
	} else if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	var writerCloser io.WriteCloser
	var writer io.Writer
	if conf.AsyncMode != nil && conf.AsyncMode.Enable {
		// 开启了异步模式,使用异步writer代替同步writer
		w := NewAsyncWriter(io.MultiWriter(writers...), conf.AsyncMode.Config)
		writer = w
		writerCloser = w
	} else {
		writer = io.MultiWriter(writers...)
	}

	logger := New(
		WithLevel(ParseLevel(conf.Level)),
		WithCaller(conf.Caller),
		WithColor(conf.Color),
		WithOut(writer),
		WithFullCaller(conf.FullCaller),
	)

	if writerCloser != nil {
		logWriter(logger, writerCloser)
	}

	return logger, nil
}

func patternFor(rotation time.Duration) string {
	switch {
	case rotation < time.Hour:
		return "_%Y%m%d%H%M.log"
	case rotation < time.Hour*24:
		return "_%Y%m%d%H.log"
	default:
		return "_%Y%m%d.log"
	}
}

func Release(logger ILogger) {
	if logger == nil {
		return
	}

	logRelease(logger)
}
