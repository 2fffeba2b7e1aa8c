package components

// PlayerComponent 标记实体为玩家控制的植物
type PlayerComponent struct {
	// TrackingEnabled 是否跟随追踪光标移动
	// 手动拖拽期间为 false，此时位置由外部直接设置
	TrackingEnabled bool
}
