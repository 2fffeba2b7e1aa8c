package entities

import (
	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/types"
)

// FallingSpec 创建飘落物所需的全部参数
// 由生成系统随机产生，工厂只负责组装组件
type FallingSpec struct {
	Category types.Category
	Size     float64
	Edge     types.Edge
	Position types.Vec2
	Velocity types.Vec2 // 像素/秒
}

// NewFallingEntity 创建一个飘落物实体
// 参数:
//   - manager: EntityManager 实例
//   - spec: 种类、尺寸、位置和速度
//
// 返回: 创建的实体ID
func NewFallingEntity(manager *ecs.EntityManager, spec FallingSpec) ecs.EntityID {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.PositionComponent{
		X: spec.Position.X,
		Y: spec.Position.Y,
	})

	ecs.AddComponent(manager, id, &components.VelocityComponent{
		VX: spec.Velocity.X,
		VY: spec.Velocity.Y,
	})

	ecs.AddComponent(manager, id, &components.FallingComponent{
		Category:  spec.Category,
		Size:      spec.Size,
		SpawnEdge: spec.Edge,
	})

	// 碰撞盒为边长等于尺寸的正方形
	ecs.AddComponent(manager, id, &components.CollisionComponent{
		Width:  spec.Size,
		Height: spec.Size,
	})

	return id
}
