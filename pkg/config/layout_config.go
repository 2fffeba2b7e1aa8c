package config

// 布局配置常量
// 本文件定义了游戏画面的逻辑尺寸以及 HUD 元素位置
// 所有坐标使用屏幕坐标系（左上角为原点），Ebitengine 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度（竖屏，面向手机）
	GameWindowWidth = 480

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 800

	// HUDBarHeight 资源条高度
	HUDBarHeight = 20.0

	// HUDBarBottomOffset 资源条距离屏幕底部的距离
	HUDBarBottomOffset = 60.0

	// HUDBarRadius 资源条圆角半径
	HUDBarRadius = 5.0
)

// Rect 轴对齐矩形（屏幕坐标）
type Rect struct {
	X, Y, W, H float64
}

// WaterBarRect 返回水分条背景矩形
// 左侧条占据 [宽/6, 宽/2)，与右侧日照条等宽
func WaterBarRect(screenW, screenH float64) Rect {
	return Rect{
		X: screenW / 6,
		Y: screenH - HUDBarBottomOffset,
		W: screenW / 3,
		H: HUDBarHeight,
	}
}

// SunBarRect 返回日照条背景矩形
func SunBarRect(screenW, screenH float64) Rect {
	return Rect{
		X: screenW / 2,
		Y: screenH - HUDBarBottomOffset,
		W: screenW / 3,
		H: HUDBarHeight,
	}
}

// FillWidth 将 [0, ceiling] 的数值映射为进度条填充宽度
func (r Rect) FillWidth(value, ceiling float64) float64 {
	if ceiling <= 0 || value <= 0 {
		return 0
	}
	if value >= ceiling {
		return r.W
	}
	return r.W * value / ceiling
}
