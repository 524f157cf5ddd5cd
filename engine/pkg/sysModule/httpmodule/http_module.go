// Package httpmodule
// 模块名: http服务
// 功能描述: 调试用http服务器(对象池统计,prometheus指标,pprof)
// 作者:  yr  2024/1/4 0004 23:41
// 最后更新:  yr  2025/7/18
package httpmodule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/njtc406/emberpool/engine/pkg/sysModule/httpmodule/auth"
	"github.com/njtc406/emberpool/engine/pkg/sysModule/httpmodule/router_center"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
)

type HttpModule struct {
	logger    log.ILogger
	systemMod string
	wg        *sync.WaitGroup
	running   uint32
	handler   *gin.Engine
	server    *http.Server
	listener  net.Listener
	router    *router_center.GroupHandlerPool
	conf      *Conf
	stopHook  []func()
}

type CAFile struct {
	CertFile string `binding:"required"`
	KeyFile  string `binding:"required"`
}

// Conf 配置信息
type Conf struct {
	Addr              string            `binding:"required"` // 服务监听地址
	ReadHeaderTimeout time.Duration     `binding:""`         // 服务读取头部超时时间
	IdleTimeout       time.Duration     `binding:""`         // 服务空闲超时时间
	Gzip              bool              `binding:""`         // 是否开启gzip压缩
	Auth              bool              `binding:""`         // 是否开启basic auth认证
	Account           map[string]string `binding:""`         // basic auth账号密码
	CAFile            *CAFile           `binding:""`         // 证书文件
}

func (c *Conf) fix() {
	if c.Addr == "" {
		c.Addr = def.DefaultHttpAddr
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = def.DefaultReadHeaderTime
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = def.DefaultIdleTimeout
	}
}

func (hs *HttpModule) OnInit() error {
	// 默认日志输出
	gin.DefaultWriter = io.MultiWriter(hs.logger.WriterLevel(log.InfoLevel))       // 设置默认日志输出为info级别
	gin.DefaultErrorWriter = io.MultiWriter(hs.logger.WriterLevel(log.ErrorLevel)) // 设置默认错误日志输出为error级别
	// 运行模式
	gin.SetMode(hs.systemMod)
	// 默认中间件
	if hs.conf.Gzip {
		hs.handler.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	hs.handler.Use(
		gin.LoggerWithFormatter(hs.logFormatter), // 这个设置的是默认日志的输出格式
		gin.Recovery(),
	)

	var middleware []gin.HandlerFunc
	if hs.conf.Auth {
		// 目前只支持basic auth
		middleware = append(middleware, auth.BasicAuth(hs.conf.Account))
	}
	// 载入路由
	if hs.router != nil {
		hs.router.RouteSet(hs.handler, middleware...)
	}
	hs.handler.ForwardedByClientIP = true

	// 初始化服务
	hs.server = &http.Server{
		Addr:              hs.conf.Addr, // 服务监听端口
		Handler:           hs.handler,
		ReadHeaderTimeout: hs.conf.ReadHeaderTimeout,
		IdleTimeout:       hs.conf.IdleTimeout,
	}
	return nil
}

func (hs *HttpModule) logFormatter(p gin.LogFormatterParams) string {
	return fmt.Sprintf("[%s] %s %s %s %d %s \"%s\" %s\n",
		p.ClientIP,
		p.Method,
		p.Path,
		p.Request.Proto,
		p.StatusCode,
		p.Latency,
		p.Request.UserAgent(),
		p.ErrorMessage,
	)
}

// OnStart 监听端口后在后台提供服务,监听失败直接返回错误
func (hs *HttpModule) OnStart() error {
	if hs.server == nil {
		return errors.New("http module is not initialized")
	}
	if !atomic.CompareAndSwapUint32(&hs.running, 0, 1) {
		return def.ErrServiceIsRunning
	}
	ln, err := net.Listen("tcp", hs.conf.Addr)
	if err != nil {
		atomic.StoreUint32(&hs.running, 0)
		return err
	}
	hs.listener = ln

	hs.wg.Add(1)
	go hs.run(ln)

	return nil
}

func (hs *HttpModule) run(ln net.Listener) {
	defer hs.wg.Done()

	hs.logger.Infof("listen %s", ln.Addr())
	var err error
	if hs.conf.CAFile != nil {
		err = hs.server.ServeTLS(ln, hs.conf.CAFile.CertFile, hs.conf.CAFile.KeyFile)
	} else {
		err = hs.server.Serve(ln)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		hs.logger.Error(err)
	}
}

// Addr 实际监听的地址(配置端口为0时可以用来获取随机端口)
func (hs *HttpModule) Addr() string {
	if hs.listener == nil {
		return hs.conf.Addr
	}
	return hs.listener.Addr().String()
}

// Handler 用于测试
func (hs *HttpModule) Handler() http.Handler {
	return hs.handler
}

func (hs *HttpModule) OnRelease() {
	if !atomic.CompareAndSwapUint32(&hs.running, 1, 0) {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), def.DefaultShutdownTimeout)
	defer cancel()

	for _, hook := range hs.stopHook {
		hook()
	}

	if err := hs.server.Shutdown(ctx); err != nil {
		hs.logger.Warn(err)
	}
	hs.wg.Wait()
}

func (hs *HttpModule) WithStopHook(hook func()) *HttpModule {
	hs.stopHook = append(hs.stopHook, hook)
	return hs
}

func (hs *HttpModule) SetRouter(router *router_center.GroupHandlerPool) *HttpModule {
	hs.router = router
	return hs
}

// NewHttpModule 创建新的HTTP服务器
func NewHttpModule(conf *Conf, logger log.ILogger, systemMod string) *HttpModule {
	if conf == nil {
		conf = &Conf{}
	}
	conf.fix()
	return &HttpModule{
		handler:   gin.New(),
		wg:        new(sync.WaitGroup),
		conf:      conf,
		logger:    logger,
		systemMod: systemMod,
	}
}
