// Package debugservice
// @Title  对象池调试服务
// @Description  通过http查看对象池统计,prometheus指标和pprof,也可以请求一次全局清理
// @Author  yr  2024/8/21 下午5:00
// @Update  yr  2025/7/18
package debugservice

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/njtc406/emberpool/engine/pkg/monitor"
	"github.com/njtc406/emberpool/engine/pkg/sysModule/httpmodule"
	"github.com/njtc406/emberpool/engine/pkg/sysModule/httpmodule/router_center"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type DebugService struct {
	httpModule *httpmodule.HttpModule
	source     monitor.StatsSource
	registry   *prometheus.Registry
	resetCh    chan struct{}
}

// New source必须可以在http的goroutine中调用,一般传PoolManager.Published
func New(conf *httpmodule.Conf, source monitor.StatsSource, systemMod string) *DebugService {
	return &DebugService{
		httpModule: httpmodule.NewHttpModule(conf, log.SysLogger, systemMod),
		source:     source,
		registry:   monitor.NewRegistry(source),
		resetCh:    make(chan struct{}, 1),
	}
}

func (ds *DebugService) OnInit() error {
	ds.httpModule.SetRouter(ds.initRouter())
	return ds.httpModule.OnInit()
}

func (ds *DebugService) initRouter() *router_center.GroupHandlerPool {
	router := router_center.NewGroupHandlerPool()
	router.RegisterGroupHandler(router_center.DefaultGroup, ds.poolHandler)
	router.RegisterGroupHandler(router_center.DefaultGroup, ds.pprofHandler)
	router.RegisterGroupHandler("", ds.metricsHandler)
	return router
}

func (ds *DebugService) poolHandler(r *gin.RouterGroup) {
	r.GET("/pools", ds.listPools)
	r.GET("/pools/:name", ds.getPool)
	r.POST("/pools/reset", ds.requestReset)
}

func (ds *DebugService) pprofHandler(r *gin.RouterGroup) {
	r.GET("/pprof/*pprof", gin.WrapH(http.DefaultServeMux))
}

func (ds *DebugService) metricsHandler(r *gin.RouterGroup) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(ds.registry, promhttp.HandlerOpts{})))
}

func (ds *DebugService) writeJSON(c *gin.Context, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(code, "application/json; charset=utf-8", data)
}

func (ds *DebugService) listPools(c *gin.Context) {
	list := ds.source()
	if list == nil {
		list = []pool.Stats{}
	}
	ds.writeJSON(c, http.StatusOK, list)
}

func (ds *DebugService) getPool(c *gin.Context) {
	name := c.Param("name")
	for _, st := range ds.source() {
		if st.Name == name || st.ID == name {
			ds.writeJSON(c, http.StatusOK, st)
			return
		}
	}
	ds.writeJSON(c, http.StatusNotFound, gin.H{"error": "pool not found", "name": name})
}

// requestReset 管理器只能在自己的goroutine中操作,这里只投递请求
func (ds *DebugService) requestReset(c *gin.Context) {
	select {
	case ds.resetCh <- struct{}{}:
	default:
	}
	ds.writeJSON(c, http.StatusAccepted, gin.H{"status": "queued"})
}

// ResetRequests 通过http请求的清理信号
func (ds *DebugService) ResetRequests() <-chan struct{} {
	return ds.resetCh
}

func (ds *DebugService) Handler() http.Handler {
	return ds.httpModule.Handler()
}

func (ds *DebugService) Addr() string {
	return ds.httpModule.Addr()
}

func (ds *DebugService) OnStart() error {
	return ds.httpModule.OnStart()
}

func (ds *DebugService) OnRelease() {
	ds.httpModule.OnRelease()
}
