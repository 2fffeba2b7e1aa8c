package game

import "github.com/decker502/neelum/pkg/config"

// ResourceKind 生命资源的种类
type ResourceKind int

const (
	// ResourceWater 水分
	ResourceWater ResourceKind = iota
	// ResourceSun 日照
	ResourceSun
)

// String 返回资源种类的字符串表示
func (k ResourceKind) String() string {
	switch k {
	case ResourceWater:
		return "water"
	case ResourceSun:
		return "sun"
	default:
		return "unknown"
	}
}

// ResourcePool 管理单项会衰减、可补充的生命资源
//
// 数值始终满足 0 <= value <= overflowCeiling。
// 显示上限（通常为 100）与溢出硬上限分开：
//   - 显示上限决定进度条满格，以及日照的"过量致死"判定
//   - 溢出硬上限只用于钳制增益
//
// 所有输入都是任意实数，钳制会吸收越界值，因此没有错误返回。
type ResourcePool struct {
	kind            ResourceKind
	value           float64
	start           float64
	displayCeiling  float64
	overflowCeiling float64
	decayRate       float64 // 每单位 dt 的衰减量
	gainPerPx       float64
	overflowFatal   bool
}

// NewResourcePool 根据配置创建资源池，初始值为配置中的 Start
func NewResourcePool(kind ResourceKind, cfg config.ResourceConfig) *ResourcePool {
	return &ResourcePool{
		kind:            kind,
		value:           cfg.Start,
		start:           cfg.Start,
		displayCeiling:  cfg.DisplayCeiling,
		overflowCeiling: cfg.OverflowCeiling,
		decayRate:       cfg.DecayPerSecond,
		gainPerPx:       cfg.GainPerPx,
		overflowFatal:   cfg.OverflowFatal,
	}
}

// Kind 返回资源种类
func (p *ResourcePool) Kind() ResourceKind {
	return p.kind
}

// Value 返回原始数值
func (p *ResourcePool) Value() float64 {
	return p.value
}

// DisplayValue 返回钳制到 [0, 显示上限] 的数值，用于 UI 显示
func (p *ResourcePool) DisplayValue() float64 {
	return clamp(p.value, 0, p.displayCeiling)
}

// DisplayCeiling 返回显示上限
func (p *ResourcePool) DisplayCeiling() float64 {
	return p.displayCeiling
}

// OverflowCeiling 返回溢出硬上限
func (p *ResourcePool) OverflowCeiling() float64 {
	return p.overflowCeiling
}

// Fraction 返回 [0,1] 的进度条填充比例
func (p *ResourcePool) Fraction() float64 {
	return p.DisplayValue() / p.displayCeiling
}

// GainFor 返回尺寸为 size 的飘落物带来的增益
func (p *ResourcePool) GainFor(size float64) float64 {
	return size * p.gainPerPx
}

// depletedEpsilon 低于此值视为耗尽，抵消逐帧浮点扣减累积的误差
const depletedEpsilon = 1e-9

// Decay 按衰减速率扣除 dt 对应的数值，结果不低于 0
// 从 v 开始按速率 r 衰减，恰好在第 ceil(v/r) 次耗尽
func (p *ResourcePool) Decay(dt float64) {
	v := p.value - p.decayRate*dt
	if v < depletedEpsilon {
		v = 0
	}
	p.value = clamp(v, 0, p.overflowCeiling)
}

// Gain 增加 amount 后钳制到 [0, 溢出硬上限]
func (p *ResourcePool) Gain(amount float64) {
	p.value = clamp(p.value+amount, 0, p.overflowCeiling)
}

// Set 直接设置数值（同样会钳制），用于场景初始化和测试
func (p *ResourcePool) Set(value float64) {
	p.value = clamp(value, 0, p.overflowCeiling)
}

// IsDepleted 资源是否耗尽
func (p *ResourcePool) IsDepleted() bool {
	return p.value <= 0
}

// IsOverflowed 资源是否过量
// 只有配置了 OverflowFatal 的资源（日照）才会过量，水分永远返回 false
func (p *ResourcePool) IsOverflowed() bool {
	return p.overflowFatal && p.value > p.displayCeiling
}

// Reset 恢复到回合初始值
func (p *ResourcePool) Reset() {
	p.value = p.start
}

// clamp 将 v 限制在 [lo, hi] 范围内
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
