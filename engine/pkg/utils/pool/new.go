package pool

import (
	"fmt"

	"github.com/njtc406/emberpool/engine/pkg/def"
)

// New 按配置的存储策略创建对象池,conf之后的选项可以覆盖配置
func New[T any](create func() T, conf *Conf, opts ...Option[T]) (IPool[T], error) {
	all := make([]Option[T], 0, len(opts)+1)
	all = append(all, WithConf[T](conf))
	all = append(all, opts...)

	strategy := def.PoolStrategySlice
	if conf != nil && conf.Strategy != "" {
		strategy = conf.Strategy
	}

	var (
		p   IPool[T]
		err error
	)
	switch strategy {
	case def.PoolStrategySlice:
		p, err = asPool[T](NewObjectPool(create, all...))
	case def.PoolStrategyLinked:
		p, err = asPool[T](NewLinkedPool(create, all...))
	case def.PoolStrategyUnsafe:
		p, err = asPool[T](NewUnsafeObjectPool(create, all...))
	default:
		err = fmt.Errorf("%s: %w", strategy, def.ErrInvalidStrategy)
	}
	return p, err
}

// asPool 出错时返回nil接口,而不是包着nil指针的接口
func asPool[T any, P IPool[T]](p P, err error) (IPool[T], error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
