package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	json "github.com/goccy/go-json"
	"github.com/njtc406/emberpool/engine/pkg/utils/pool"
	"github.com/njtc406/emberpool/engine/pkg/utils/util"
)

// Result 一种策略的压测结果
type Result struct {
	Strategy string           `json:"strategy"`
	Elapsed  time.Duration    `json:"elapsed"`
	Ops      int64            `json:"ops"`
	Pools    []pool.Stats     `json:"pools"`
	Mem      util.MemSnapshot `json:"mem"`
}

// NsPerOp 平均每次取出/归还的耗时
func (r *Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

// Totals 所有分片的统计合计
func (r *Result) Totals() pool.Stats {
	total := pool.Stats{Name: r.Strategy, Strategy: r.Strategy}
	for _, st := range r.Pools {
		total.CountAll += st.CountAll
		total.CountActive += st.CountActive
		total.CountInactive += st.CountInactive
		total.Created += st.Created
		total.Reused += st.Reused
		total.Released += st.Released
		total.Overflow += st.Overflow
		total.Destroyed += st.Destroyed
		total.DoubleRelease += st.DoubleRelease
		total.Clears += st.Clears
	}
	return total
}

// Report 压测报告
type Report struct {
	Conf    Conf             `json:"conf"`
	Results []Result         `json:"results"`
	Start   util.MemSnapshot `json:"start"`
	End     util.MemSnapshot `json:"end"`
}

func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Fprint 以表格形式输出
func (r *Report) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "strategy\tops\tns/op\tcreated\treused\thit\toverflow\tmallocs\tgc\n")
	for i := range r.Results {
		res := &r.Results[i]
		total := res.Totals()
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%d\t%d\t%.2f%%\t%d\t%d\t%d\n",
			res.Strategy,
			res.Ops,
			res.NsPerOp(),
			total.Created,
			total.Reused,
			total.HitRate()*100,
			total.Overflow,
			res.Mem.Mallocs,
			res.Mem.NumGC,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "rss: %.2fMB, cpu load: %.1f%%\n", float64(r.End.RSS)/1024/1024, r.End.CPULoad*100)
	return err
}
