package systems

import (
	"testing"

	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/entities"
	"github.com/decker502/neelum/pkg/types"
)

// TestCheckAABBCollision 测试AABB碰撞检测
func TestCheckAABBCollision(t *testing.T) {
	ps := NewPhysicsSystem(ecs.NewEntityManager())

	tests := []struct {
		name string
		pos1 *components.PositionComponent
		col1 *components.CollisionComponent
		pos2 *components.PositionComponent
		col2 *components.CollisionComponent
		want bool
	}{
		{
			name: "完全重叠",
			pos1: &components.PositionComponent{X: 100, Y: 100},
			col1: &components.CollisionComponent{Width: 50, Height: 50},
			pos2: &components.PositionComponent{X: 100, Y: 100},
			col2: &components.CollisionComponent{Width: 50, Height: 50},
			want: true,
		},
		{
			name: "部分重叠",
			pos1: &components.PositionComponent{X: 100, Y: 100},
			col1: &components.CollisionComponent{Width: 50, Height: 50},
			pos2: &components.PositionComponent{X: 120, Y: 80},
			col2: &components.CollisionComponent{Width: 50, Height: 50},
			want: true,
		},
		{
			name: "边界刚好接触",
			pos1: &components.PositionComponent{X: 100, Y: 100},
			col1: &components.CollisionComponent{Width: 50, Height: 50},
			pos2: &components.PositionComponent{X: 150, Y: 100},
			col2: &components.CollisionComponent{Width: 50, Height: 50},
			want: true,
		},
		{
			name: "水平分离",
			pos1: &components.PositionComponent{X: 100, Y: 100},
			col1: &components.CollisionComponent{Width: 50, Height: 50},
			pos2: &components.PositionComponent{X: 151, Y: 100},
			col2: &components.CollisionComponent{Width: 50, Height: 50},
			want: false,
		},
		{
			name: "偏移后分离",
			pos1: &components.PositionComponent{X: 100, Y: 100},
			col1: &components.CollisionComponent{Width: 50, Height: 50, OffsetY: -40},
			pos2: &components.PositionComponent{X: 100, Y: 140},
			col2: &components.CollisionComponent{Width: 20, Height: 20},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ps.checkAABBCollision(tt.pos1, tt.col1, tt.pos2, tt.col2); got != tt.want {
				t.Errorf("checkAABBCollision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhysicsSystem_Overlaps(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em)

	player := entities.NewPlayerEntity(em, types.Vec2{X: 240, Y: 400}, 60, 80)
	far := spawnAt(em, types.CategoryWater, 20, types.Vec2{X: 20, Y: 20})
	touchingA := spawnAt(em, types.CategorySun, 20, types.Vec2{X: 260, Y: 420})
	touchingB := spawnAt(em, types.CategoryHazard, 10, types.Vec2{X: 240, Y: 360})

	hits := ps.Overlaps(player)
	if len(hits) != 2 || hits[0] != touchingA || hits[1] != touchingB {
		t.Errorf("expected [%d %d], got %v", touchingA, touchingB, hits)
	}
	for _, id := range hits {
		if id == far || id == player {
			t.Errorf("unexpected hit %d", id)
		}
	}

	if got := ps.Overlaps(ecs.EntityID(999)); got != nil {
		t.Errorf("unknown player should yield nil, got %v", got)
	}
}
