// Package session 实现一局游戏的状态机和每帧模拟循环
//
// Session 是唯一持有回合状态的对象：前端（场景）只调用它的入口方法并读取只读视图，
// 追踪端只通过 tracking.Source 提供光标位置。
package session

import (
	"log"
	"math/rand"

	"github.com/decker502/neelum/pkg/config"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/entities"
	"github.com/decker502/neelum/pkg/game"
	"github.com/decker502/neelum/pkg/systems"
	"github.com/decker502/neelum/pkg/tracking"
	"github.com/decker502/neelum/pkg/types"
)

// Options 创建会话所需的参数
type Options struct {
	Profile *config.BalanceProfile
	Source  tracking.Source
	Score   *game.ScoreKeeper // 为 nil 时使用不持久化的计分器
	Rand    *rand.Rand        // 为 nil 时使用固定种子 1
	Width   float64
	Height  float64

	// SkipStartScreen 为 true 时直接进入等待输入阶段
	SkipStartScreen bool
}

// ResourceView 资源池的只读快照
type ResourceView struct {
	Value        float64
	DisplayValue float64
	Fraction     float64
}

// Session 游戏状态机
type Session struct {
	profile *config.BalanceProfile
	source  tracking.Source
	round   *game.RoundState

	em       *ecs.EntityManager
	spawner  *systems.SpawnSystem
	movement *systems.MovementSystem
	physics  *systems.PhysicsSystem
	resolver *systems.CollisionResolver
	player   *systems.PlayerControlSystem

	center    types.Vec2
	clock     float64 // 单调时钟（秒），重开时不归零
	cursor    types.Vec2
	hasCursor bool
	newBest   bool // 本回合结算时刷新了最高分
}

// New 创建游戏会话
func New(opts Options) *Session {
	score := opts.Score
	if score == nil {
		score = game.NewScoreKeeper(nil)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	initial := game.PhaseStart
	if opts.SkipStartScreen {
		initial = game.PhaseAwaitingFirstInput
	}

	em := ecs.NewEntityManager()
	center := types.Vec2{X: opts.Width / 2, Y: opts.Height / 2}
	playerID := entities.NewPlayerEntity(em, center, opts.Profile.Player.Width, opts.Profile.Player.Height)

	s := &Session{
		profile:  opts.Profile,
		source:   opts.Source,
		round:    game.NewRoundState(opts.Profile, score, initial),
		em:       em,
		spawner:  systems.NewSpawnSystem(em, rng, opts.Profile.Spawn, opts.Width, opts.Height),
		movement: systems.NewMovementSystem(em, opts.Width, opts.Height, opts.Profile.Spawn.CullMargin),
		physics:  systems.NewPhysicsSystem(em),
		resolver: systems.NewCollisionResolver(em),
		player:   systems.NewPlayerControlSystem(em, playerID),
		center:   center,
		cursor:   center,
	}

	log.Printf("[Session] Created with profile %q, initial phase %s", opts.Profile.Name, initial)
	return s
}

// Update 推进一帧
//
// 参数:
//   - dt: 距上一帧的时间（秒）
func (s *Session) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.clock += dt
	s.pollCursor()

	switch s.round.Phase() {
	case game.PhaseAwaitingFirstInput:
		// 追踪端未就绪或还没有样本时停留在此阶段，不生成、不衰减、不计分
		if s.source.IsReady() && s.hasCursor {
			s.startPlaying()
		}
	case game.PhasePlaying:
		s.step(dt)
	}
}

// pollCursor 读取最新样本；没有新样本时沿用旧光标
func (s *Session) pollCursor() {
	if p, ok := s.source.Latest(); ok {
		s.cursor = p
		s.hasCursor = true
	}
}

func (s *Session) startPlaying() {
	if s.round.StartPlaying() {
		s.spawner.Reset(s.clock)
		log.Printf("[Session] Tracking ready, round started at t=%.2f", s.clock)
	}
}

// step 游戏进行中的一帧，顺序固定
func (s *Session) step(dt float64) {
	s.round.Score.Tick(dt)

	if s.hasCursor {
		s.player.Update(s.cursor, s.profile.Player.Smoothing)
	}

	s.spawner.MaybeSpawn(s.clock)
	s.movement.Update(dt)

	collisionEnd := game.EndNone
	for _, id := range s.physics.Overlaps(s.player.PlayerID()) {
		for _, effect := range s.resolver.Resolve(s.round, id) {
			if effect.IsTerminal() && collisionEnd == game.EndNone {
				collisionEnd = effect.Reason
			}
		}
	}

	s.round.Water.Decay(dt)
	s.round.Sun.Decay(dt)

	if reason := s.terminalReason(collisionEnd); reason != game.EndNone {
		s.endRound(reason)
	}
}

// terminalReason 按固定顺序检查结束条件：水分耗尽、日照耗尽、碰撞致死
func (s *Session) terminalReason(collisionEnd game.EndReason) game.EndReason {
	switch {
	case s.round.Water.IsDepleted():
		return game.EndDehydration
	case s.round.Sun.IsDepleted():
		return game.EndVitaminDDeficiency
	default:
		return collisionEnd
	}
}

func (s *Session) endRound(reason game.EndReason) {
	if !s.round.End(reason) {
		return
	}
	improved, err := s.round.Score.Finalize()
	if err != nil {
		log.Printf("[Session] Warning: %v", err)
	}
	s.newBest = improved
}

// BeginFromStart 开始界面点击开始
func (s *Session) BeginFromStart() {
	if s.round.Begin() {
		log.Printf("[Session] Waiting for tracking input")
	}
}

// Restart 游戏结束后重开
//
// 清空所有飘落物，重置资源和分数（保留最高分），重置生成计时器。
// 重开后默认重新等待追踪输入，配置了 restartSkipsWait 时直接进入游戏。
func (s *Session) Restart() {
	if s.round.Phase() != game.PhaseGameOver {
		return
	}

	next := game.PhaseAwaitingFirstInput
	if s.profile.RestartSkipsWait {
		next = game.PhasePlaying
	}

	s.movement.Clear()
	s.round.Reset(next)
	s.newBest = false
	s.spawner.Reset(s.clock)
	s.player.SetPosition(s.center)
	s.player.SetTrackingEnabled(true)

	log.Printf("[Session] Restarted, phase %s", next)
}

// ToggleDisplayFlag 切换追踪画面显示，不影响游戏阶段
func (s *Session) ToggleDisplayFlag() {
	s.round.ShowBackdrop = !s.round.ShowBackdrop
}

// HandleTap 点击/触摸：开始界面开始，结束界面重开，其他阶段切换显示
func (s *Session) HandleTap() {
	switch s.round.Phase() {
	case game.PhaseStart:
		s.BeginFromStart()
	case game.PhaseGameOver:
		s.Restart()
	default:
		s.ToggleDisplayFlag()
	}
}

// SetManualControl 手动拖拽植物
//
// active 为 true 时关闭光标跟随并把植物放到 pos；为 false 时恢复跟随
func (s *Session) SetManualControl(active bool, pos types.Vec2) {
	s.player.SetTrackingEnabled(!active)
	if active {
		s.player.SetPosition(pos)
	}
}

// SaveOnExit 窗口关闭时结算进行中的回合，使最高分得以保存
func (s *Session) SaveOnExit() bool {
	if s.round.Phase() != game.PhasePlaying {
		return true
	}
	if _, err := s.round.Score.Finalize(); err != nil {
		log.Printf("[Session] Warning: %v", err)
		return false
	}
	return true
}

// Phase 当前阶段
func (s *Session) Phase() game.Phase {
	return s.round.Phase()
}

// EndReason 结束原因（未结束时为 EndNone）
func (s *Session) EndReason() game.EndReason {
	return s.round.EndReason()
}

// Water 水分快照
func (s *Session) Water() ResourceView {
	return viewOf(s.round.Water)
}

// Sun 日照快照
func (s *Session) Sun() ResourceView {
	return viewOf(s.round.Sun)
}

func viewOf(p *game.ResourcePool) ResourceView {
	return ResourceView{
		Value:        p.Value(),
		DisplayValue: p.DisplayValue(),
		Fraction:     p.Fraction(),
	}
}

// Score 当前分数（存活秒数）
func (s *Session) Score() float64 {
	return s.round.Score.Score()
}

// HighScore 最高分
func (s *Session) HighScore() float64 {
	return s.round.Score.HighScore()
}

// NewBest 本回合是否严格超过了之前的最高分（持平不算）
func (s *Session) NewBest() bool {
	return s.newBest
}

// PlayerPosition 植物位置
func (s *Session) PlayerPosition() types.Vec2 {
	return s.player.Position()
}

// PlayerSize 植物碰撞盒尺寸
func (s *Session) PlayerSize() (float64, float64) {
	return s.profile.Player.Width, s.profile.Player.Height
}

// TrackingEnabled 植物是否跟随光标
func (s *Session) TrackingEnabled() bool {
	return s.player.TrackingEnabled()
}

// ShowBackdrop 是否显示追踪画面
func (s *Session) ShowBackdrop() bool {
	return s.round.ShowBackdrop
}

// Entities 所有飘落物的只读视图
func (s *Session) Entities() []systems.FallingView {
	return s.movement.Entities()
}

// Cursor 最近一次光标位置；从未收到样本时 ok 为 false
func (s *Session) Cursor() (types.Vec2, bool) {
	return s.cursor, s.hasCursor
}

// Clock 会话单调时钟（秒）
func (s *Session) Clock() float64 {
	return s.clock
}
