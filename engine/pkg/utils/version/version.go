// Package version
// Mode Module: 版本
// Mode Desc: 版本号和构建信息
package version

import (
	"fmt"
	"runtime"
)

// Version 构建时可以通过 -ldflags "-X .../version.Version=x.y.z" 覆盖
var Version = "0.1.0"

// Info 版本号,go版本和平台
func Info() string {
	return fmt.Sprintf("v%s %s %s/%s", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
