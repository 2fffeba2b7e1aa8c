package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/neelum/pkg/config"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/entities"
	"github.com/decker502/neelum/pkg/types"
)

// SpawnSystem 管理飘落物的定时生成
//
// 计时器由单调时钟驱动：每次生成时把 lastSpawnTime 设为当前时间，
// 因此帧率下降只会推迟生成，不会在下一帧补发多个。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	cfg           config.SpawnConfig
	width         float64 // 可见区域宽度
	height        float64 // 可见区域高度
	lastSpawnTime float64 // 上次生成的时间（秒）
	spawnCount    int     // 本回合已生成数量（仅用于日志）
}

// NewSpawnSystem 创建飘落物生成系统
//
// 参数:
//   - em: EntityManager 实例
//   - rng: 随机数源（测试时传入固定种子）
//   - cfg: 生成配置（间隔、权重、尺寸和速度范围）
//   - width, height: 可见区域尺寸
func NewSpawnSystem(em *ecs.EntityManager, rng *rand.Rand, cfg config.SpawnConfig, width, height float64) *SpawnSystem {
	log.Printf("[SpawnSystem] Initialized with interval=%.2fs, weights=%+v, area=%.0fx%.0f",
		cfg.IntervalSeconds, cfg.Weights, width, height)
	return &SpawnSystem{
		entityManager: em,
		rng:           rng,
		cfg:           cfg,
		width:         width,
		height:        height,
	}
}

// MaybeSpawn 到达生成间隔时创建一个飘落物
//
// 参数:
//   - now: 当前时间（秒，单调递增）
//
// 返回:
//   - ecs.EntityID: 新实体ID（未生成时为 0）
//   - bool: 本次是否生成
func (s *SpawnSystem) MaybeSpawn(now float64) (ecs.EntityID, bool) {
	if now-s.lastSpawnTime < s.cfg.IntervalSeconds {
		return 0, false
	}
	s.lastSpawnTime = now

	spec := s.nextSpec()
	id := entities.NewFallingEntity(s.entityManager, spec)
	s.spawnCount++

	log.Printf("[SpawnSystem] Spawned #%d %s size=%.1f from %s at (%.1f, %.1f)",
		s.spawnCount, spec.Category, spec.Size, spec.Edge, spec.Position.X, spec.Position.Y)
	return id, true
}

// Reset 回合重置时调用，避免重开后立即连续生成
func (s *SpawnSystem) Reset(now float64) {
	s.lastSpawnTime = now
	s.spawnCount = 0
}

// LastSpawnTime 返回上次生成的时间
func (s *SpawnSystem) LastSpawnTime() float64 {
	return s.lastSpawnTime
}

// nextSpec 随机产生下一个飘落物的参数
func (s *SpawnSystem) nextSpec() entities.FallingSpec {
	category := s.pickCategory()
	size := s.uniform(s.cfg.SizeMin, s.cfg.SizeMax)
	speed := s.uniform(s.cfg.SpeedMin, s.cfg.SpeedMax)
	edge := types.Edge(s.rng.Intn(types.EdgeCount))

	pos, vel := s.placeOnEdge(edge, size, speed)
	return entities.FallingSpec{
		Category: category,
		Size:     size,
		Edge:     edge,
		Position: pos,
		Velocity: vel,
	}
}

// pickCategory 按累积权重抽取种类
func (s *SpawnSystem) pickCategory() types.Category {
	w := s.cfg.Weights
	r := s.rng.Float64() * w.Total()

	if r < w.Water {
		return types.CategoryWater
	}
	if r < w.Water+w.Sun {
		return types.CategorySun
	}
	return types.CategoryHazard
}

// placeOnEdge 把实体中心放在所选边外侧 size 像素处（整个碰撞盒都在屏幕外），
// 另一坐标沿该边均匀分布，速度垂直指向屏幕内
func (s *SpawnSystem) placeOnEdge(edge types.Edge, size, speed float64) (types.Vec2, types.Vec2) {
	switch edge {
	case types.EdgeTop:
		return types.Vec2{X: s.uniform(0, s.width), Y: -size}, types.Vec2{Y: speed}
	case types.EdgeBottom:
		return types.Vec2{X: s.uniform(0, s.width), Y: s.height + size}, types.Vec2{Y: -speed}
	case types.EdgeLeft:
		return types.Vec2{X: -size, Y: s.uniform(0, s.height)}, types.Vec2{X: speed}
	default:
		return types.Vec2{X: s.width + size, Y: s.uniform(0, s.height)}, types.Vec2{X: -speed}
	}
}

func (s *SpawnSystem) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
