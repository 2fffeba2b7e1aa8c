package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/types"
)

func newTestSpawnSystem(seed int64) (*ecs.EntityManager, *SpawnSystem) {
	em := ecs.NewEntityManager()
	s := NewSpawnSystem(em, rand.New(rand.NewSource(seed)), newTestProfile().Spawn, testWidth, testHeight)
	return em, s
}

// 每个生成间隔内最多生成一个实体
func TestSpawnSystem_AtMostOncePerInterval(t *testing.T) {
	em, s := newTestSpawnSystem(1)

	if _, ok := s.MaybeSpawn(0.5); ok {
		t.Fatal("must not spawn before the first interval elapses")
	}
	if _, ok := s.MaybeSpawn(0.75); !ok {
		t.Fatal("expected a spawn at exactly one interval")
	}
	if _, ok := s.MaybeSpawn(0.75); ok {
		t.Fatal("second call in the same instant must not spawn")
	}
	if _, ok := s.MaybeSpawn(1.2); ok {
		t.Fatal("must not spawn before the next interval")
	}

	// 慢帧只推迟，不补发
	if _, ok := s.MaybeSpawn(5.0); !ok {
		t.Fatal("expected a spawn after a long frame")
	}
	if _, ok := s.MaybeSpawn(5.0); ok {
		t.Fatal("a long frame must not cause a burst")
	}

	if got := em.EntityCount(); got != 2 {
		t.Errorf("expected 2 entities, got %d", got)
	}
}

// 以 60 帧/秒模拟 60 秒，生成数量不超过 elapsed/interval
func TestSpawnSystem_RateOverTime(t *testing.T) {
	_, s := newTestSpawnSystem(2)
	const dt = 1.0 / 60.0

	spawned := 0
	now := 0.0
	for frame := 0; frame < 3600; frame++ {
		now += dt
		if _, ok := s.MaybeSpawn(now); ok {
			spawned++
		}
	}

	limit := int(now / 0.75)
	if spawned > limit {
		t.Errorf("spawned %d entities in %.2fs, limit is %d", spawned, now, limit)
	}
	if spawned < limit-2 {
		t.Errorf("spawned too few entities: %d (limit %d)", spawned, limit)
	}
}

// 初始位置严格位于所选边的屏幕外，速度指向屏幕内
func TestSpawnSystem_StartsOutsideBounds(t *testing.T) {
	em, s := newTestSpawnSystem(3)

	edges := map[types.Edge]int{}
	for i := 1; i <= 400; i++ {
		id, ok := s.MaybeSpawn(float64(i))
		if !ok {
			t.Fatalf("expected spawn at t=%d", i)
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		falling, _ := ecs.GetComponent[*components.FallingComponent](em, id)
		half := falling.Size / 2
		edges[falling.SpawnEdge]++

		if falling.Size < 10 || falling.Size > 30 {
			t.Errorf("size %v out of [10,30]", falling.Size)
		}

		var speed float64
		switch falling.SpawnEdge {
		case types.EdgeTop:
			if pos.Y+half >= 0 || vel.VY <= 0 || vel.VX != 0 {
				t.Errorf("top spawn not outside/inward: pos=%+v vel=%+v", pos, vel)
			}
			speed = vel.VY
		case types.EdgeBottom:
			if pos.Y-half <= testHeight || vel.VY >= 0 || vel.VX != 0 {
				t.Errorf("bottom spawn not outside/inward: pos=%+v vel=%+v", pos, vel)
			}
			speed = -vel.VY
		case types.EdgeLeft:
			if pos.X+half >= 0 || vel.VX <= 0 || vel.VY != 0 {
				t.Errorf("left spawn not outside/inward: pos=%+v vel=%+v", pos, vel)
			}
			speed = vel.VX
		case types.EdgeRight:
			if pos.X-half <= testWidth || vel.VX >= 0 || vel.VY != 0 {
				t.Errorf("right spawn not outside/inward: pos=%+v vel=%+v", pos, vel)
			}
			speed = -vel.VX
		}

		if speed < 180 || speed > 360 {
			t.Errorf("speed %v out of [180,360]", speed)
		}
	}

	for edge := types.EdgeTop; edge <= types.EdgeRight; edge++ {
		if edges[edge] == 0 {
			t.Errorf("edge %s never chosen", edge)
		}
	}
}

func TestSpawnSystem_CategoryWeights(t *testing.T) {
	_, s := newTestSpawnSystem(4)

	counts := map[types.Category]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		counts[s.pickCategory()]++
	}

	expect := map[types.Category]float64{
		types.CategoryWater:  0.40,
		types.CategorySun:    0.50,
		types.CategoryHazard: 0.10,
	}
	for cat, p := range expect {
		got := float64(counts[cat]) / n
		if got < p-0.03 || got > p+0.03 {
			t.Errorf("%s frequency = %.3f, want about %.2f", cat, got, p)
		}
	}
}

func TestSpawnSystem_ZeroWeightNeverDrawn(t *testing.T) {
	cfg := newTestProfile().Spawn
	cfg.Weights.Hazard = 0
	s := NewSpawnSystem(ecs.NewEntityManager(), rand.New(rand.NewSource(5)), cfg, testWidth, testHeight)

	for i := 0; i < 5000; i++ {
		if s.pickCategory() == types.CategoryHazard {
			t.Fatal("hazard drawn with zero weight")
		}
	}
}

// 重置后不会立即连续生成
func TestSpawnSystem_ResetPreventsBurst(t *testing.T) {
	_, s := newTestSpawnSystem(6)

	s.MaybeSpawn(1)
	s.Reset(100)
	if s.LastSpawnTime() != 100 {
		t.Fatalf("expected lastSpawnTime=100, got %v", s.LastSpawnTime())
	}
	if _, ok := s.MaybeSpawn(100.5); ok {
		t.Error("must not spawn within one interval of a reset")
	}
	if _, ok := s.MaybeSpawn(100.75); !ok {
		t.Error("expected a spawn one interval after the reset")
	}
}

// 相同种子产生相同序列
func TestSpawnSystem_Deterministic(t *testing.T) {
	emA, a := newTestSpawnSystem(7)
	emB, b := newTestSpawnSystem(7)

	for i := 1; i <= 20; i++ {
		idA, _ := a.MaybeSpawn(float64(i))
		idB, _ := b.MaybeSpawn(float64(i))
		fa, _ := ecs.GetComponent[*components.FallingComponent](emA, idA)
		fb, _ := ecs.GetComponent[*components.FallingComponent](emB, idB)
		if *fa != *fb {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, fa, fb)
		}
	}
}
