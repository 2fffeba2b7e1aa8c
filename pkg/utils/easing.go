package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 用于界面提示的淡入和呼吸效果

// Progress 返回 elapsed/duration 并钳制到 [0, 1]
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, elapsed/duration))
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Pulse 周期为 period 秒的 0→1→0 呼吸曲线
func Pulse(elapsed, period float64) float64 {
	if period <= 0 {
		return 1
	}
	phase := math.Mod(elapsed, period) / period
	if phase < 0.5 {
		return EaseInOutCubic(phase * 2)
	}
	return EaseInOutCubic((1 - phase) * 2)
}
