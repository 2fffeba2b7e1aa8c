package types

// Vec2 屏幕坐标系下的二维向量（像素）
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Lerp 从 v 向 target 移动剩余距离的 t 比例
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return v.Add(target.Sub(v).Scale(t))
}
