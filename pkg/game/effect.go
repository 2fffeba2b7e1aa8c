package game

import "fmt"

// EffectKind 碰撞效果的种类
type EffectKind int

const (
	// EffectResourceGain 资源增益
	EffectResourceGain EffectKind = iota
	// EffectTerminal 致死效果，结束回合
	EffectTerminal
)

// Effect 碰撞结算产生的效果
type Effect struct {
	Kind     EffectKind
	Resource ResourceKind // 仅 EffectResourceGain 有效
	Amount   float64      // 仅 EffectResourceGain 有效
	Reason   EndReason    // 仅 EffectTerminal 有效
}

// GainEffect 创建资源增益效果
func GainEffect(resource ResourceKind, amount float64) Effect {
	return Effect{Kind: EffectResourceGain, Resource: resource, Amount: amount}
}

// TerminalEffect 创建致死效果
func TerminalEffect(reason EndReason) Effect {
	return Effect{Kind: EffectTerminal, Reason: reason}
}

// IsTerminal 是否为致死效果
func (e Effect) IsTerminal() bool {
	return e.Kind == EffectTerminal
}

// String 返回效果的可读描述（用于日志）
func (e Effect) String() string {
	if e.IsTerminal() {
		return fmt.Sprintf("Terminal(%s)", e.Reason)
	}
	return fmt.Sprintf("ResourceGain(%s, %.2f)", e.Resource, e.Amount)
}
