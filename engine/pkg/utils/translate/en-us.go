/*
 * Copyright (c) 2023. YR. All rights reserved
 */

// Package translate
// 模块名: 英文翻译
// 功能描述: 对应字符串转换为英文
// 作者:  yr  2023/4/26 0026 23:00
// 最后更新:  yr  2023/4/26 0026 23:00
package translate

func init() {
	Register(EN_US, enUsMap)
}

var enUsMap = map[string]string{
	"Version":          "Version",
	"Powered by":       "Powered by Ember Pool",
	"Thank you":        "Thank you for using",
	"Shutting down":    "Shutting down",
	"Uptime":           "Uptime",
	"Memory usage":     "Memory usage",
	"Runtime Stats":    "Runtime Stats",
	"Memory Stats":     "Memory Stats",
	"Pool Stats":       "Pool Stats",
	"Registered pools": "Registered pools",
	"CPU Cores":        "CPU Cores",
	"HeapAlloc":        "HeapAlloc",
	"GC Cycles":        "GC Cycles",
	"Last GC Pause":    "Last GC Pause",
	"Goroutines":       "Goroutines",
}
