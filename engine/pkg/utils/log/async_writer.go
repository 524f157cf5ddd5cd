// Package log
// @Title  异步写入
// @Description  日志先进入channel,由独立goroutine批量写出,不同goroutine同时写入时无法保证顺序
// @Author  yr  2025/4/17
// @Update  yr  2025/7/18
package log

import (
	"bytes"
	"io"
	"sync"
	"time"
)

const (
	defaultChanBufferSize = 4096
	defaultFlushSize      = 1024 * 64 // 64KB
	defaultFlushInterval  = 1 * time.Second
)

type AsyncWriterConfig struct {
	ChanBufferSize int           // channel 缓冲大小（单位：条日志）
	FlushSize      int           // 缓冲区大小，超过后立即 flush（单位：字节）
	FlushInterval  time.Duration // 定时 flush 间隔
}

type AsyncWriter struct {
	writer  io.Writer
	wmu     sync.Mutex // 保护writer,关闭后的同步写和最后一次flush可能同时发生
	conf    *AsyncWriterConfig
	logChan chan []byte
	mu      sync.RWMutex // 保护closed,持有读锁期间入队
	closed  bool
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func fixAsyncWriterConf(conf *AsyncWriterConfig) *AsyncWriterConfig {
	if conf == nil {
		conf = &AsyncWriterConfig{}
	}
	if conf.ChanBufferSize <= 0 {
		conf.ChanBufferSize = defaultChanBufferSize
	}
	if conf.FlushSize <= 0 {
		conf.FlushSize = defaultFlushSize
	}
	if conf.FlushInterval <= 0 {
		conf.FlushInterval = defaultFlushInterval
	}
	return conf
}

func NewAsyncWriter(w io.Writer, conf *AsyncWriterConfig) *AsyncWriter {
	conf = fixAsyncWriterConf(conf)
	aw := &AsyncWriter{
		writer:  w,
		conf:    conf,
		logChan: make(chan []byte, conf.ChanBufferSize),
		done:    make(chan struct{}),
	}
	aw.wg.Add(1)
	go aw.loop()
	return aw
}

// Write 拷贝一份数据后入队,上层会复用buffer
func (aw *AsyncWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	data := make([]byte, len(p))
	copy(data, p)

	aw.mu.RLock()
	if aw.closed {
		aw.mu.RUnlock()
		// 已关闭,直接同步写出
		return aw.write(data)
	}
	aw.logChan <- data
	aw.mu.RUnlock()
	return len(p), nil
}

func (aw *AsyncWriter) write(data []byte) (int, error) {
	aw.wmu.Lock()
	defer aw.wmu.Unlock()
	return aw.writer.Write(data)
}

func (aw *AsyncWriter) loop() {
	defer aw.wg.Done()

	buf := new(bytes.Buffer)
	ticker := time.NewTicker(aw.conf.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if buf.Len() > 0 {
			_, _ = aw.write(buf.Bytes())
			buf.Reset()
		}
	}

	for {
		select {
		case <-aw.done:
			// 把队列中剩余的日志全部写出
			for {
				select {
				case msg := <-aw.logChan:
					buf.Write(msg)
				default:
					flush()
					return
				}
			}
		case <-ticker.C:
			flush()
		case msg := <-aw.logChan:
			buf.Write(msg)
			if buf.Len() >= aw.conf.FlushSize {
				flush()
			}
		}
	}
}

func (aw *AsyncWriter) Close() error {
	aw.once.Do(func() {
		// 拿到写锁之后不会再有入队中的Write,loop退出前能读到所有日志
		aw.mu.Lock()
		aw.closed = true
		aw.mu.Unlock()
		close(aw.done)
	})
	aw.wg.Wait()
	return nil
}
