// Package router_center
// 模块名: 路由中心
// 功能描述: 按分组收集路由,http服务初始化时统一挂载
// 作者:  yr  2024/1/4 0004 1:57
// 最后更新:  yr  2025/7/18
package router_center

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

type Handler func(engine *gin.RouterGroup)

const (
	DefaultGroup = `/debug`
)

type GroupHandlerPool struct {
	lock sync.RWMutex
	pool map[string][]Handler
}

func NewGroupHandlerPool() *GroupHandlerPool {
	return &GroupHandlerPool{
		pool: make(map[string][]Handler),
	}
}

// RouteSet 设置路由,分组按名称排序挂载
func (ghp *GroupHandlerPool) RouteSet(e *gin.Engine, middleware ...gin.HandlerFunc) {
	ghp.lock.RLock()
	defer ghp.lock.RUnlock()

	groups := make([]string, 0, len(ghp.pool))
	for group := range ghp.pool {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		g := e.Group(group, middleware...)
		for _, hd := range ghp.pool[group] {
			hd(g)
		}
	}
}

// RegisterGroupHandler 注册路由
func (ghp *GroupHandlerPool) RegisterGroupHandler(group string, hd Handler) {
	ghp.lock.Lock()
	defer ghp.lock.Unlock()
	ghp.pool[group] = append(ghp.pool[group], hd)
}

// Groups 已注册的分组数量
func (ghp *GroupHandlerPool) Groups() int {
	ghp.lock.RLock()
	defer ghp.lock.RUnlock()
	return len(ghp.pool)
}
