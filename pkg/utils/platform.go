//go:build !mobile

// Package utils 提供平台相关的辅助函数
package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端也按移动端处理（用于本地调试）
const MobileEmulateEnv = "ROULETTE_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 ROULETTE_MOBILE_EMULATE=1
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
