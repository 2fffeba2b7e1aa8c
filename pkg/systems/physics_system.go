package systems

import (
	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
)

// PhysicsSystem 检测玩家植物与飘落物的重叠
// 只负责检测，结算交给 CollisionResolver
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询实体组件
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// checkAABBCollision 检查两个实体的AABB（轴对齐边界框）是否发生碰撞
// 碰撞盒中心 = 实体位置 + 偏移量
//
// 返回:
//   - bool: 如果两个碰撞盒重叠返回 true，否则返回 false
func (ps *PhysicsSystem) checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	cx1, cy1 := pos1.X+col1.OffsetX, pos1.Y+col1.OffsetY
	cx2, cy2 := pos2.X+col2.OffsetX, pos2.Y+col2.OffsetY

	left1 := cx1 - col1.Width/2
	right1 := cx1 + col1.Width/2
	top1 := cy1 - col1.Height/2
	bottom1 := cy1 + col1.Height/2

	left2 := cx2 - col2.Width/2
	right2 := cx2 + col2.Width/2
	top2 := cy2 - col2.Height/2
	bottom2 := cy2 + col2.Height/2

	// 任一轴上没有重叠则没有碰撞（允许边界接触）
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// Overlaps 返回与玩家重叠的所有飘落物（按ID升序，保证结算顺序确定）
//
// 参数:
//   - playerID: 玩家植物实体
func (ps *PhysicsSystem) Overlaps(playerID ecs.EntityID) []ecs.EntityID {
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, playerID)
	if !ok {
		return nil
	}
	playerCol, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, playerID)
	if !ok {
		return nil
	}

	candidates := ecs.GetEntitiesWith3[
		*components.FallingComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](ps.em)

	var hits []ecs.EntityID
	for _, id := range candidates {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
		if ps.checkAABBCollision(playerPos, playerCol, pos, col) {
			hits = append(hits, id)
		}
	}
	return hits
}
