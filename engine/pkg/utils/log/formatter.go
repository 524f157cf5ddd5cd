package log

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/njtc406/logrus"
)

const defaultTimestampFormat = "2006-01-02 15:04:05.000"

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

// Formatter 文本格式: 时间 [级别] 调用者 消息 key=value...
type Formatter struct {
	Mu              *sync.Mutex
	TimestampFormat string
	Colors          bool // 是否打印级别色彩
	FullCaller      bool // 是否打印完整调用路径
	NoCaller        bool

	bufPool *sync.Pool
}

func newFormatter() *Formatter {
	return &Formatter{
		Mu:              new(sync.Mutex),
		TimestampFormat: defaultTimestampFormat,
		bufPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	b := f.bufPool.Get().(*bytes.Buffer)
	b.Reset()
	defer f.bufPool.Put(b)

	b.WriteString(entry.Time.Format(f.TimestampFormat))
	b.WriteByte(' ')
	f.writeLevel(b, entry.Level)

	if !f.NoCaller && entry.HasCaller() {
		file := entry.Caller.File
		if !f.FullCaller {
			file = filepath.Base(file)
		}
		_, _ = fmt.Fprintf(b, " %s:%d", file, entry.Caller.Line)
	}

	b.WriteByte(' ')
	b.WriteString(strings.TrimRight(entry.Message, "\n"))

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			_, _ = fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
		}
	}
	b.WriteByte('\n')

	// buffer会被复用,这里必须拷贝
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out, nil
}

func (f *Formatter) writeLevel(b *bytes.Buffer, level logrus.Level) {
	name := strings.ToUpper(level.String())
	if len(name) > 4 {
		name = name[:4]
	}
	if !f.Colors {
		b.WriteString("[" + name + "]")
		return
	}

	var color int
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		color = colorGray
	case logrus.WarnLevel:
		color = colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		color = colorRed
	default:
		color = colorBlue
	}
	_, _ = fmt.Fprintf(b, "\x1b[%dm[%s]\x1b[0m", color, name)
}
