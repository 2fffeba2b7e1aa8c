package game

import (
	"log"

	"github.com/decker502/neelum/pkg/config"
)

// Phase 回合所处的阶段
type Phase int

const (
	// PhaseStart 开始界面，等待玩家点击开始
	PhaseStart Phase = iota
	// PhaseAwaitingFirstInput 等待追踪端产生第一个有效样本
	PhaseAwaitingFirstInput
	// PhasePlaying 游戏进行中
	PhasePlaying
	// PhaseGameOver 游戏结束，等待重开
	PhaseGameOver
)

// String 返回阶段的字符串表示
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseAwaitingFirstInput:
		return "AwaitingFirstInput"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// EndReason 回合结束原因
type EndReason int

const (
	// EndNone 回合未结束
	EndNone EndReason = iota
	// EndDehydration 水分耗尽
	EndDehydration
	// EndVitaminDDeficiency 日照耗尽
	EndVitaminDDeficiency
	// EndPollution 触碰污染物
	EndPollution
	// EndSunOverload 日照过量
	EndSunOverload
)

// String 返回结束原因的字符串表示
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "None"
	case EndDehydration:
		return "Dehydration"
	case EndVitaminDDeficiency:
		return "VitaminDDeficiency"
	case EndPollution:
		return "Pollution"
	case EndSunOverload:
		return "SunOverload"
	default:
		return "Unknown"
	}
}

// Message 返回结束界面显示的文案
func (r EndReason) Message() string {
	switch r {
	case EndDehydration:
		return "Neelum dried up :("
	case EndVitaminDDeficiency:
		return "Neelum died of vitamin d deficiency :("
	case EndPollution:
		return "Neelum was poisoned by pollution :("
	case EndSunOverload:
		return "Neelum got too much sun :("
	default:
		return ""
	}
}

// RoundState 一局游戏的全部可变状态
//
// 由唯一的会话控制器持有，不使用全局变量。
// 不变式：endReason != EndNone 当且仅当 phase == PhaseGameOver，
// 因此阶段只能通过下面的转换方法修改。
type RoundState struct {
	Water *ResourcePool
	Sun   *ResourcePool
	Score *ScoreKeeper

	// ShowBackdrop 纯装饰的显示开关（显示/隐藏追踪画面），与游戏逻辑无关
	ShowBackdrop bool

	phase     Phase
	endReason EndReason
}

// NewRoundState 创建回合状态
//
// 参数：
//   - profile: 平衡配置
//   - score: 计分器（持有最高分）
//   - initial: 初始阶段（有开始界面时为 PhaseStart，否则为 PhaseAwaitingFirstInput）
func NewRoundState(profile *config.BalanceProfile, score *ScoreKeeper, initial Phase) *RoundState {
	if initial == PhaseGameOver {
		initial = PhaseAwaitingFirstInput
	}
	return &RoundState{
		Water:        NewResourcePool(ResourceWater, profile.Water),
		Sun:          NewResourcePool(ResourceSun, profile.Sun),
		Score:        score,
		ShowBackdrop: true,
		phase:        initial,
	}
}

// Phase 返回当前阶段
func (rs *RoundState) Phase() Phase {
	return rs.phase
}

// EndReason 返回结束原因（未结束时为 EndNone）
func (rs *RoundState) EndReason() EndReason {
	return rs.endReason
}

// Pool 按种类返回资源池
func (rs *RoundState) Pool(kind ResourceKind) *ResourcePool {
	if kind == ResourceSun {
		return rs.Sun
	}
	return rs.Water
}

// Begin 从开始界面进入等待输入阶段
// 返回是否发生了转换
func (rs *RoundState) Begin() bool {
	if rs.phase != PhaseStart {
		return false
	}
	rs.phase = PhaseAwaitingFirstInput
	return true
}

// StartPlaying 从等待输入阶段进入游戏
// 返回是否发生了转换
func (rs *RoundState) StartPlaying() bool {
	if rs.phase != PhaseAwaitingFirstInput {
		return false
	}
	rs.phase = PhasePlaying
	return true
}

// End 结束回合并记录原因
//
// 只在 PhasePlaying 阶段生效，同一帧内重复调用只有第一次生效，
// 保证 GameOver 只进入一次且原因唯一。
// 返回是否发生了转换。
func (rs *RoundState) End(reason EndReason) bool {
	if rs.phase != PhasePlaying || reason == EndNone {
		return false
	}
	rs.phase = PhaseGameOver
	rs.endReason = reason
	log.Printf("[RoundState] Round over: %s (score=%.2f)", reason, rs.Score.Score())
	return true
}

// Reset 重置回合（资源、分数、结束原因），保留最高分
//
// 参数：
//   - next: 重置后的阶段（PhaseAwaitingFirstInput 或 PhasePlaying）
func (rs *RoundState) Reset(next Phase) {
	if next != PhasePlaying {
		next = PhaseAwaitingFirstInput
	}
	rs.Water.Reset()
	rs.Sun.Reset()
	rs.Score.Reset()
	rs.endReason = EndNone
	rs.phase = next
}
