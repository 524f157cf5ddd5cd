package log

import (
	"io"

	"github.com/njtc406/logrus"
)

type Option func(l *logrus.Logger)

func WithLevel(level Level) Option {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

func WithOut(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

func WithCaller(enable bool) Option {
	return func(l *logrus.Logger) {
		l.SetReportCaller(enable)
	}
}

func WithColor(enable bool) Option {
	return func(l *logrus.Logger) {
		if f, ok := l.Formatter.(*Formatter); ok {
			f.Colors = enable
		}
	}
}

func WithFullCaller(enable bool) Option {
	return func(l *logrus.Logger) {
		if f, ok := l.Formatter.(*Formatter); ok {
			f.FullCaller = enable
		}
	}
}
