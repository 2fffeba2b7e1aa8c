package systems

import (
	"github.com/decker502/neelum/pkg/config"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/entities"
	"github.com/decker502/neelum/pkg/game"
	"github.com/decker502/neelum/pkg/types"
)

// 测试用的可见区域尺寸
const (
	testWidth  = 480.0
	testHeight = 800.0
)

// newTestProfile 返回测试用的平衡配置
func newTestProfile() *config.BalanceProfile {
	return &config.BalanceProfile{
		Name: "test",
		Water: config.ResourceConfig{
			Start: 100, DisplayCeiling: 100, OverflowCeiling: 100,
			DecayPerSecond: 4.5, GainPerPx: 0.75,
		},
		Sun: config.ResourceConfig{
			Start: 50, DisplayCeiling: 100, OverflowCeiling: 120,
			DecayPerSecond: 4.8, GainPerPx: 0.5, OverflowFatal: true,
		},
		Spawn: config.SpawnConfig{
			IntervalSeconds: 0.75,
			Weights:         config.SpawnWeights{Water: 0.40, Sun: 0.50, Hazard: 0.10},
			SizeMin:         10, SizeMax: 30,
			SpeedMin: 180, SpeedMax: 360,
			CullMargin: 40,
		},
		Player: config.PlayerConfig{Smoothing: 0.1, Width: 60, Height: 80},
	}
}

// newTestRound 创建处于 Playing 阶段的回合
func newTestRound() *game.RoundState {
	rs := game.NewRoundState(newTestProfile(), game.NewScoreKeeper(nil), game.PhaseAwaitingFirstInput)
	rs.StartPlaying()
	return rs
}

// spawnAt 在指定位置创建一个静止的飘落物
func spawnAt(em *ecs.EntityManager, category types.Category, size float64, pos types.Vec2) ecs.EntityID {
	return entities.NewFallingEntity(em, entities.FallingSpec{
		Category: category,
		Size:     size,
		Edge:     types.EdgeTop,
		Position: pos,
	})
}
