// Package bench
// 模块名: 对象池压测
// 功能描述: 按分片在协程池中执行取出/归还负载,每个分片独占自己的池
// 作者:  yr  2025/7/18 0018 0:10
// 最后更新:  yr  2025/7/18 0018 0:10
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/njtc406/emberpool/engine/pkg/def"
	"github.com/njtc406/emberpool/engine/pkg/utils/asynclib"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
	"github.com/njtc406/emberpool/engine/pkg/utils/util"
	"github.com/panjf2000/ants/v2"
)

// Conf 压测配置
type Conf struct {
	Strategies []string `binding:"required,dive,oneof=slice linked unsafe"` // 需要压测的存储策略
	Shards     int      `binding:"gt=0"`                                    // 分片数
	Iterations int      `binding:"gt=0"`                                    // 每个分片的轮数
	Burst      int      `binding:"gt=0"`                                    // 每轮连续取出的对象数
	ObjectSize int      `binding:"min=0"`                                   // 对象缓冲区大小
}

// Object 压测对象
type Object struct {
	ID      int
	Payload []byte
}

type shard struct {
	index int
	pool  pool.IPool[*Object]
	ops   int64
}

// ConfLookup 按池名称取配置,一般传config.Conf.PoolConf.Pool
type ConfLookup func(name string) *pool.Conf

// StaticConf 所有池使用同一份配置
func StaticConf(conf *pool.Conf) ConfLookup {
	return func(string) *pool.Conf {
		return conf
	}
}

// PoolName 每种策略的压测池在配置中的名称
func PoolName(strategy string) string {
	return "bench-" + strategy
}

// Runner 压测执行器,只能在创建它的goroutine中调用Run
type Runner struct {
	conf    *Conf
	lookup  ConfLookup
	workers *ants.Pool
	manager *pool.PoolManager
}

// NewRunner workers用于执行分片,manager不为空时压测用的池会注册进去(弱引用)
func NewRunner(conf *Conf, lookup ConfLookup, workers *ants.Pool, manager *pool.PoolManager) *Runner {
	return &Runner{
		conf:    conf,
		lookup:  lookup,
		workers: workers,
		manager: manager,
	}
}

// newPool 使用PoolName(strategy)对应的配置,存储策略以压测的策略为准
func (r *Runner) newPool(strategy string, index int) (pool.IPool[*Object], error) {
	name := PoolName(strategy)
	base := r.lookup(name)
	if base == nil {
		return nil, fmt.Errorf("bench pool %s: %w", name, def.ErrConfNotFound)
	}
	conf := *base
	conf.Strategy = strategy
	conf.Name = fmt.Sprintf("%s-%d", name, index)
	conf.Managed = false
	conf.Stats = true

	size := r.conf.ObjectSize
	opts := []pool.Option[*Object]{
		pool.WithOnRelease(func(o *Object) {
			o.ID = 0
			clear(o.Payload)
		}),
	}
	if r.manager != nil {
		opts = append(opts, pool.WithManager[*Object](r.manager))
	}
	return pool.New(func() *Object {
		return &Object{Payload: make([]byte, size)}
	}, &conf, opts...)
}

// Run 依次压测每种策略
//
// 池在调用方goroutine中创建(包括注册到管理器),然后每个池只交给一个分片使用,全部分片结束后才返回
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{Conf: *r.conf, Start: util.ReadMemSnapshot()}
	for _, strategy := range r.conf.Strategies {
		res, err := r.runStrategy(ctx, strategy)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, res)
	}
	report.End = util.ReadMemSnapshot()
	return report, nil
}

func (r *Runner) runStrategy(ctx context.Context, strategy string) (Result, error) {
	shards := make([]*shard, r.conf.Shards)
	for i := range shards {
		p, err := r.newPool(strategy, i)
		if err != nil {
			return Result{}, err
		}
		shards[i] = &shard{index: i, pool: p}
	}

	tasks := make([]func() error, len(shards))
	for i, s := range shards {
		tasks[i] = func() error {
			return r.runShard(ctx, s)
		}
	}

	before := util.ReadMemSnapshot()
	start := time.Now()
	errs := asynclib.RunAll(r.workers, tasks...)
	elapsed := time.Since(start)
	mem := util.ReadMemSnapshot().Sub(before)

	res := Result{
		Strategy: strategy,
		Elapsed:  elapsed,
		Mem:      mem,
	}
	for _, s := range shards {
		res.Ops += s.ops
		res.Pools = append(res.Pools, s.pool.Stats())
	}
	log.SysLogger.Debugf("bench strategy[%s] finished in %s, ops=%d", strategy, elapsed, res.Ops)
	return res, errors.Join(errs...)
}

func (r *Runner) runShard(ctx context.Context, s *shard) error {
	burst := make([]*Object, r.conf.Burst)
	var ops int64
	defer func() {
		s.ops = ops
	}()

	for i := 0; i < r.conf.Iterations; i++ {
		if i&0xff == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		for j := range burst {
			o := s.pool.Get()
			o.ID = i*len(burst) + j
			if len(o.Payload) > 0 {
				o.Payload[0] = byte(j)
			}
			burst[j] = o
		}
		// 一个对象通过守卫归还
		if err := r.scoped(s.pool, i); err != nil {
			return err
		}
		for j, o := range burst {
			if err := s.pool.Release(o); err != nil {
				return fmt.Errorf("shard %d: %w", s.index, err)
			}
			burst[j] = nil
		}
		ops += int64(len(burst)+1) * 2
	}
	return nil
}

func (r *Runner) scoped(p pool.IPool[*Object], i int) error {
	guard, o := p.GetPooled()
	o.ID = i
	return guard.Release()
}
