package systems

import (
	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/types"
)

// PlayerControlSystem 让玩家植物平滑地跟随追踪光标
type PlayerControlSystem struct {
	em       *ecs.EntityManager
	playerID ecs.EntityID
}

// NewPlayerControlSystem 创建玩家控制系统
//
// 参数:
//   - em: EntityManager 实例
//   - playerID: 玩家植物实体（需要 PositionComponent 和 PlayerComponent）
func NewPlayerControlSystem(em *ecs.EntityManager, playerID ecs.EntityID) *PlayerControlSystem {
	return &PlayerControlSystem{em: em, playerID: playerID}
}

// PlayerID 返回玩家实体ID
func (s *PlayerControlSystem) PlayerID() ecs.EntityID {
	return s.playerID
}

// Update 把植物向光标移动剩余距离的 smoothing 比例
// smoothing 大于 1 时按 1 处理（直接到达），不大于 0 时不移动
func (s *PlayerControlSystem) Update(cursor types.Vec2, smoothing float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok || !player.TrackingEnabled {
		return
	}
	if smoothing <= 0 {
		return
	}
	if smoothing > 1 {
		smoothing = 1
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return
	}
	next := types.Vec2{X: pos.X, Y: pos.Y}.Lerp(cursor, smoothing)
	pos.X, pos.Y = next.X, next.Y
}

// SetTrackingEnabled 开关光标跟随（手动拖拽时关闭）
func (s *PlayerControlSystem) SetTrackingEnabled(enabled bool) {
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID); ok {
		player.TrackingEnabled = enabled
	}
}

// TrackingEnabled 是否正在跟随光标
func (s *PlayerControlSystem) TrackingEnabled() bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	return ok && player.TrackingEnabled
}

// SetPosition 直接设置植物位置
func (s *PlayerControlSystem) SetPosition(p types.Vec2) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID); ok {
		pos.X, pos.Y = p.X, p.Y
	}
}

// Position 返回植物当前位置
func (s *PlayerControlSystem) Position() types.Vec2 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return types.Vec2{}
	}
	return types.Vec2{X: pos.X, Y: pos.Y}
}
