package game

import "github.com/decker502/neelum/pkg/config"

// newTestProfile 返回测试用的平衡配置（与 data/balance.yaml 的 default 一致）
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
