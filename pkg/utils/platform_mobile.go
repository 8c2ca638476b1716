//go:build mobile

// Package utils 提供平台相关的辅助函数
package utils

// IsMobile 移动端编译时始终返回 true
// 移动端没有窗口和物理键盘，调用方据此跳过全屏切换和 Esc 退出
func IsMobile() bool {
	return true
}
