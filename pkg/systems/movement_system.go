package systems

import (
	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/types"
)

// FallingView 飘落物的只读视图，供渲染使用
type FallingView struct {
	ID       ecs.EntityID
	Category types.Category
	Size     float64
	Position types.Vec2
}

// MovementSystem 管理飘落物的直线运动和离屏回收
type MovementSystem struct {
	entityManager *ecs.EntityManager
	width         float64
	height        float64
	cullMargin    float64
}

// NewMovementSystem 创建移动系统
//
// 参数:
//   - em: EntityManager 实例
//   - width, height: 可见区域尺寸
//   - cullMargin: 实体完全离开可见区域多远后回收（像素）
func NewMovementSystem(em *ecs.EntityManager, width, height, cullMargin float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		width:         width,
		height:        height,
		cullMargin:    cullMargin,
	}
}

// Update 按速度移动所有飘落物，并回收已飞出屏幕的实体
//
// 返回: 本帧回收的实体数量
func (s *MovementSystem) Update(deltaTime float64) int {
	ids := ecs.GetEntitiesWith3[
		*components.FallingComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	culled := 0
	for _, id := range ids {
		falling, ok := ecs.GetComponent[*components.FallingComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if s.isGone(pos, vel, falling.Size/2) {
			s.entityManager.DestroyEntity(id)
			culled++
		}
	}

	if culled > 0 {
		s.entityManager.RemoveMarkedEntities()
	}
	return culled
}

// isGone 实体是否已完全离开可见区域超过回收边距，且仍在远离屏幕
// 刚生成的实体位于屏幕外但朝内运动，不会被回收
func (s *MovementSystem) isGone(pos *components.PositionComponent, vel *components.VelocityComponent, half float64) bool {
	m := s.cullMargin
	switch {
	case pos.X+half < -m && vel.VX <= 0:
		return true
	case pos.X-half > s.width+m && vel.VX >= 0:
		return true
	case pos.Y+half < -m && vel.VY <= 0:
		return true
	case pos.Y-half > s.height+m && vel.VY >= 0:
		return true
	}
	return false
}

// Clear 删除所有飘落物（回合重置）
func (s *MovementSystem) Clear() {
	for _, id := range ecs.GetEntitiesWith1[*components.FallingComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
}

// Count 返回当前飘落物数量
func (s *MovementSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.FallingComponent](s.entityManager))
}

// Entities 返回所有飘落物的只读视图（按ID升序）
func (s *MovementSystem) Entities() []FallingView {
	ids := ecs.GetEntitiesWith2[*components.FallingComponent, *components.PositionComponent](s.entityManager)
	views := make([]FallingView, 0, len(ids))
	for _, id := range ids {
		falling, _ := ecs.GetComponent[*components.FallingComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		views = append(views, FallingView{
			ID:       id,
			Category: falling.Category,
			Size:     falling.Size,
			Position: types.Vec2{X: pos.X, Y: pos.Y},
		})
	}
	return views
}
