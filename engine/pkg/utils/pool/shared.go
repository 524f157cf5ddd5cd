package pool

import (
	"reflect"
	"sync"
)

type sharedKey struct {
	kind string
	typ  reflect.Type
}

// 每种类型共享的对象池,创建后注册到全局管理器,进程内一直存在
var (
	sharedMu    sync.Mutex
	sharedPools = map[sharedKey]any{}
)

// sharedPool 取出(或创建)kind+T对应的共享池
//
// 只有查找过程加锁,池本身依旧是单线程的
func sharedPool[T any](kind string, build func(name string) *ObjectPool[T]) *ObjectPool[T] {
	key := sharedKey{kind: kind, typ: reflect.TypeFor[T]()}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if p, ok := sharedPools[key]; ok {
		return p.(*ObjectPool[T])
	}
	p := build(kind + ":" + key.typ.String())
	sharedPools[key] = p
	return p
}
