package entities

import (
	"testing"

	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/types"
)

func TestNewFallingEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewFallingEntity(em, FallingSpec{
		Category: types.CategorySun,
		Size:     24,
		Edge:     types.EdgeLeft,
		Position: types.Vec2{X: -24, Y: 300},
		Velocity: types.Vec2{X: 200, Y: 0},
	})

	falling, ok := ecs.GetComponent[*components.FallingComponent](em, id)
	if !ok {
		t.Fatal("expected FallingComponent")
	}
	if falling.Category != types.CategorySun || falling.Size != 24 || falling.SpawnEdge != types.EdgeLeft {
		t.Errorf("unexpected falling component: %+v", falling)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != -24 || pos.Y != 300 {
		t.Errorf("unexpected position: %+v", pos)
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok || vel.VX != 200 || vel.VY != 0 {
		t.Errorf("unexpected velocity: %+v", vel)
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok || col.Width != 24 || col.Height != 24 {
		t.Errorf("collision box should match size, got %+v", col)
	}
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewPlayerEntity(em, types.Vec2{X: 240, Y: 400}, 60, 80)

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("expected PlayerComponent")
	}
	if !player.TrackingEnabled {
		t.Error("tracking should be enabled by default")
	}

	if ecs.HasComponent[*components.FallingComponent](em, id) {
		t.Error("player must not be a falling entity")
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col == nil || col.Width != 60 || col.Height != 80 {
		t.Errorf("unexpected collision box: %+v", col)
	}
}
