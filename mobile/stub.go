//go:build !mobile

// Package mobile 是 gomobile 绑定的入口，仅在 -tags mobile 时包含实际代码
package mobile

// Dummy 让包在桌面构建时仍然可以被引用
func Dummy() {}
