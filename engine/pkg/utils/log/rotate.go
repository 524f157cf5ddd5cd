package log

import (
	"errors"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

var RotationTimeErr = errors.New("rotation time must be between 1m and 24h")

type rotateConf struct {
	maxAge       time.Duration
	rotationTime time.Duration
	pattern      string
}

type RotateOption func(c *rotateConf)

func WithMaxAge(d time.Duration) RotateOption {
	return func(c *rotateConf) {
		c.maxAge = d
	}
}

func WithRotationTime(d time.Duration) RotateOption {
	return func(c *rotateConf) {
		c.rotationTime = d
	}
}

// WithPattern 文件名后缀,strftime格式
func WithPattern(pattern string) RotateOption {
	return func(c *rotateConf) {
		c.pattern = pattern
	}
}

// rotateNew 创建按时间切割的日志文件, fileName 会被追加 pattern 作为最终文件名
func rotateNew(fileName string, opts ...RotateOption) (*rotatelogs.RotateLogs, error) {
	c := &rotateConf{
		maxAge:       time.Hour * 24 * 15,
		rotationTime: time.Hour * 24,
		pattern:      "_%Y%m%d.log",
	}
	for _, opt := range opts {
		opt(c)
	}

	return rotatelogs.New(
		fileName+c.pattern,
		rotatelogs.WithLinkName(fileName+".log"),
		rotatelogs.WithMaxAge(c.maxAge),
		rotatelogs.WithRotationTime(c.rotationTime),
	)
}
