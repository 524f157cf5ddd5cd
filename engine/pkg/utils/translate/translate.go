/*
 * Copyright (c) 2023. YR. All rights reserved
 */

// Package translate
// 模块名: 界面翻译
// 功能描述: 命令行输出的字符串按语言转换,找不到时原样返回
// 作者:  yr  2023/4/26 0026 23:00
// 最后更新:  yr  2025/7/18
package translate

import (
	"strings"
	"sync"
)

const (
	EN_US = "en-us"
	ZH_CN = "zh-cn"
)

var (
	lock     sync.RWMutex
	language = EN_US
	langMap  = map[string]map[string]string{}
)

// Register 注册一种语言
func Register(lang string, m map[string]string) {
	lock.Lock()
	defer lock.Unlock()
	langMap[lang] = m
}

// SetLanguage 切换语言,不支持的语言返回false
func SetLanguage(lang string) bool {
	lang = strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	lock.Lock()
	defer lock.Unlock()
	if _, ok := langMap[lang]; !ok {
		return false
	}
	language = lang
	return true
}

func Translate(s string) string {
	lock.RLock()
	defer lock.RUnlock()
	if v, ok := langMap[language][s]; ok {
		return v
	}
	return s
}
