package entities

import (
	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/types"
)

// NewPlayerEntity 创建玩家控制的植物实体
// 参数:
//   - manager: EntityManager 实例
//   - pos: 初始位置（通常为屏幕中心）
//   - width, height: 碰撞盒尺寸
//
// 返回: 创建的实体ID
func NewPlayerEntity(manager *ecs.EntityManager, pos types.Vec2, width, height float64) ecs.EntityID {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(manager, id, &components.CollisionComponent{Width: width, Height: height})
	ecs.AddComponent(manager, id, &components.PlayerComponent{TrackingEnabled: true})

	return id
}
