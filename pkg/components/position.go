package components

// PositionComponent 实体中心点在屏幕坐标系中的位置（像素）
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 实体的线速度（像素/秒）
type VelocityComponent struct {
	VX, VY float64
}
