package def

import (
	"errors"
)

// 定义系统错误

var (
	ErrMissingFactory   = errors.New("pool factory is nil")                                    // 缺少对象构造函数
	ErrInvalidCapacity  = errors.New("pool max size must be greater than 0")                   // 最大缓存数量非法
	ErrDoubleRelease    = errors.New("object has already been released to the pool")           // 重复释放
	ErrInvalidCronSpec  = errors.New("invalid cron spec")                                      // cron表达式非法
	ErrSchedulerRunning = errors.New("reset scheduler is running")                             // 调度器已经在运行
	ErrServiceIsRunning = errors.New("service is running")                                     // 服务正在运行
	ErrConfNotFound     = errors.New("pool conf not found")                                    // 配置未找到
	ErrInvalidStrategy  = errors.New("unknown pool strategy, want one of slice/linked/unsafe") // 未知的池类型
)
