package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
// 用于浮动按钮滑入、回到顶部平滑滚动
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢（用于数字滚动）
// 公式：t == 1 时 f(t) = 1，否则 f(t) = 1 - 2^(-10t)
//
// 注意：t < 1 时结果严格小于 1，最后一帧必须由调用方对齐到终点。
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Clamp 将 v 限制在 [lo, hi] 之间
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Progress 返回 elapsed/total 并限制在 [0, 1]；total <= 0 时视为已完成
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(elapsed/total, 0, 1)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
