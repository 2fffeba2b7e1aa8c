//go:build mobile

package utils

// IsMobile 移动端构建恒为 true，游戏改用触摸位置作为光标
func IsMobile() bool {
	return true
}
