package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/njtc406/emberpool/engine/pkg/bench"
	"github.com/njtc406/emberpool/engine/pkg/config"
	"github.com/njtc406/emberpool/engine/pkg/sysModule/httpmodule"
	"github.com/njtc406/emberpool/engine/pkg/sysService/debugservice"
	"github.com/njtc406/emberpool/engine/pkg/utils/asynclib"
	"github.com/njtc406/emberpool/engine/pkg/utils/log"
	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
	"github.com/njtc406/emberpool/engine/pkg/utils/title"
	"github.com/njtc406/emberpool/engine/pkg/utils/validate"
	"github.com/njtc406/emberpool/engine/pkg/utils/version"
	"github.com/spf13/cobra"
)

type runFlags struct {
	strategies []string
	shards     int
	iterations int
	burst      int
	size       int
	loops      int
	asJSON     bool
	serve      bool
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pool workload against the configured strategies",
		Long: `Run builds one private pool per shard and strategy, drives get/release bursts on an ants
worker pool and prints allocation counts and pool statistics.

With --serve the debug http server (pool stats, /metrics, pprof) stays up after the runs
until SIGINT/SIGTERM, and the periodic reset keeps running.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVarP(&f.strategies, "strategy", "s", nil, "strategies to run (slice, linked, unsafe)")
	flags.IntVar(&f.shards, "shards", 0, "number of shards, each owns its pools")
	flags.IntVarP(&f.iterations, "iterations", "n", 0, "iterations per shard")
	flags.IntVarP(&f.burst, "burst", "b", 0, "objects taken per iteration")
	flags.IntVar(&f.size, "size", -1, "payload size of a pooled object in bytes")
	flags.IntVar(&f.loops, "loops", 1, "how many times the whole run is repeated")
	flags.BoolVar(&f.asJSON, "json", false, "print the report as json")
	flags.BoolVar(&f.serve, "serve", false, "keep serving the debug endpoints after the runs")
	return cmd
}

// apply 命令行参数覆盖配置文件
func (f *runFlags) apply(conf *bench.Conf) error {
	if len(f.strategies) > 0 {
		conf.Strategies = f.strategies
	}
	if f.shards > 0 {
		conf.Shards = f.shards
	}
	if f.iterations > 0 {
		conf.Iterations = f.iterations
	}
	if f.burst > 0 {
		conf.Burst = f.burst
	}
	if f.size >= 0 {
		conf.ObjectSize = f.size
	}
	if err := validate.Struct(conf); err != nil {
		return validate.TransError(err, validate.EN)
	}
	return nil
}

func run(cmd *cobra.Command, f *runFlags) error {
	if err := config.Parse(confPath); err != nil {
		return err
	}
	conf := config.Conf
	if err := f.apply(conf.BenchConf); err != nil {
		return err
	}

	log.Init(conf.SystemLogger, config.IsDebug())
	defer log.Close()

	start := time.Now()
	out := cmd.OutOrStdout()
	if !f.asJSON {
		title.EchoTitle(out, version.Version)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workers := asynclib.NewAntsPool(conf.NodeConf.AntsPoolSize)
	defer workers.Release()

	o, err := newOwner(pool.Default(), conf.PoolConf.ResetSpec, conf.HttpConf, conf.NodeConf.ReportInterval)
	if err != nil {
		return err
	}
	defer o.close()

	runner := bench.NewRunner(conf.BenchConf, conf.PoolConf.Pool, workers, o.manager)
	for i := 0; i < f.loops; i++ {
		report, err := runner.Run(ctx)
		if err != nil {
			return err
		}
		if err = printReport(cmd, report, f.asJSON); err != nil {
			return err
		}
		o.pump()
	}

	if f.serve {
		o.serve(ctx)
	}

	if !f.asJSON {
		title.GracefulExit(out, time.Since(start), version.Version, o.manager.Len())
	}
	return nil
}

func printReport(cmd *cobra.Command, report *bench.Report, asJSON bool) error {
	if !asJSON {
		return report.Fprint(cmd.OutOrStdout())
	}
	data, err := report.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// owner 管理器所在的goroutine要处理的事情:定时清理,http请求的清理,定时发布统计
type owner struct {
	manager   *pool.PoolManager
	scheduler *pool.ResetScheduler
	debug     *debugservice.DebugService
	interval  time.Duration
}

func newOwner(m *pool.PoolManager, resetSpec string, httpConf *httpmodule.Conf, interval time.Duration) (*owner, error) {
	o := &owner{manager: m, interval: interval}

	if resetSpec != "" {
		s, err := pool.NewResetScheduler(m, resetSpec)
		if err != nil {
			return nil, err
		}
		if err = s.Start(); err != nil {
			return nil, err
		}
		o.scheduler = s
	}

	if httpConf != nil {
		ds := debugservice.New(httpConf, m.Published, config.GetStatus())
		if err := ds.OnInit(); err != nil {
			o.close()
			return nil, err
		}
		if err := ds.OnStart(); err != nil {
			o.close()
			return nil, err
		}
		o.debug = ds
		log.SysLogger.Infof("debug server listening on %s", ds.Addr())
	}

	m.Publish()
	return o, nil
}

// pump 处理已经到达的信号,不阻塞
func (o *owner) pump() {
	if o.scheduler != nil {
		o.scheduler.Pump()
	}
	if o.debug != nil {
		select {
		case <-o.debug.ResetRequests():
			o.manager.Reset()
		default:
		}
	}
	o.manager.Publish()
}

// serve 阻塞直到ctx结束
func (o *owner) serve(ctx context.Context) {
	var (
		resetC   <-chan time.Time
		requestC <-chan struct{}
	)
	if o.scheduler != nil {
		resetC = o.scheduler.C()
	}
	if o.debug != nil {
		requestC = o.debug.ResetRequests()
	}
	interval := o.interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if !errors.Is(ctx.Err(), context.Canceled) {
				log.SysLogger.Warnf("serve stopped: %v", ctx.Err())
			}
			return
		case <-resetC:
			cleared, pruned := o.manager.Reset()
			log.SysLogger.Infof("scheduled reset: cleared=%d pruned=%d", cleared, pruned)
		case <-requestC:
			cleared, pruned := o.manager.Reset()
			log.SysLogger.Infof("requested reset: cleared=%d pruned=%d", cleared, pruned)
		case <-ticker.C:
			o.manager.Prune()
			o.manager.Publish()
		}
	}
}

func (o *owner) close() {
	if o.scheduler != nil {
		o.scheduler.Stop()
	}
	if o.debug != nil {
		o.debug.OnRelease()
	}
}
