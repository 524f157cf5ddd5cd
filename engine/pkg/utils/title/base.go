/*
 * Copyright (c) 2023. YR. All rights reserved
 */

// Package title
// 模块名: 启动标题
// 功能描述: 启动时打印标题,退出时打印运行统计
// 作者:  yr  2023/4/26 0026 22:51
// 最后更新:  yr  2025/7/18
package title

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/njtc406/emberpool/engine/pkg/utils/translate"
)

const (
	reset        = "\033[0m"
	cyan         = "\033[36m"
	yellow       = "\033[33m"
	lightMagenta = "\033[38;5;13m"
	lightCyan    = "\033[38;5;12m"
)

func EchoTitle(w io.Writer, version string) {
	fmt.Fprintf(w, titleBase, translate.Translate("Powered by"), translate.Translate("Version"), version)
}

// GracefulExit 打印运行统计,pools为退出时仍然注册的对象池数量
func GracefulExit(w io.Writer, elapsed time.Duration, version string, pools int) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// 获取GC统计
	var gcStats debug.GCStats
	debug.ReadGCStats(&gcStats)
	var lastPause time.Duration
	if len(gcStats.Pause) > 0 {
		lastPause = gcStats.Pause[0]
	}

	fmt.Fprintf(w, " \n%s\n", translate.Translate("Shutting down"))
	fmt.Fprintf(w, "%s══════════════ %s ═════════════════%s\n", cyan, translate.Translate("Runtime Stats"), reset)
	fmt.Fprintf(w, " %s: %.1fs\n", translate.Translate("Uptime"), elapsed.Seconds())
	fmt.Fprintf(w, " %s: %d (%s: %d)\n", translate.Translate("CPU Cores"), runtime.NumCPU(), translate.Translate("Goroutines"), runtime.NumGoroutine())
	fmt.Fprintf(w, " %s: %d\n", translate.Translate("GC Cycles"), m.NumGC)
	fmt.Fprintf(w, " %s: %.2fms\n", translate.Translate("Last GC Pause"), float64(lastPause)/float64(time.Millisecond))
	fmt.Fprintf(w, "%s══════════════ %s ═════════════════%s\n", cyan, translate.Translate("Memory Stats"), reset)
	fmt.Fprintf(w, " %s: %.2fMB\n", translate.Translate("Memory usage"), float64(m.Alloc)/1024/1024)
	fmt.Fprintf(w, " %s: %.2f MB\n", translate.Translate("HeapAlloc"), float64(m.HeapAlloc)/1024/1024)
	fmt.Fprintf(w, "%s══════════════ %s ═════════════════%s\n", cyan, translate.Translate("Pool Stats"), reset)
	fmt.Fprintf(w, " %s: %d\n", translate.Translate("Registered pools"), pools)
	fmt.Fprintf(w, "%s═══════════════════════════════%s\n", cyan, reset)
	fmt.Fprintf(w, " %s%s %sEmber Pool%s v%s%s\n",
		yellow, translate.Translate("Thank you"), lightMagenta, lightCyan, version, reset)
}
