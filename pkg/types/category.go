// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Category 定义飘落物体的种类
// 这是一个封闭枚举，碰撞结算必须覆盖全部取值
type Category int

const (
	// CategoryWater 水滴，补充水分
	CategoryWater Category = iota
	// CategorySun 阳光，补充日照
	CategorySun
	// CategoryHazard 污染物，触碰即死亡
	CategoryHazard
)

// String 返回种类的字符串表示
func (c Category) String() string {
	switch c {
	case CategoryWater:
		return "Water"
	case CategorySun:
		return "Sun"
	case CategoryHazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}

// Edge 表示物体从屏幕哪一侧进入
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// EdgeCount 屏幕边的数量，用于均匀随机选择
const EdgeCount = 4

// String 返回边的字符串表示
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}
