package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
		{"超出上界", 1.5, 1.0},
		{"低于下界", -0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 验证"开始快，结束慢"的特性
	t.Run("开始快于线性", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if eased := EaseOutCubic(p); eased <= p {
				t.Errorf("EaseOutCubic(%v) = %v 应该大于线性值 %v（开始快）", p, eased, p)
			}
		}
	})
}

// TestEaseInOutCubic 测试三次方缓入缓出函数
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.0625}, // 4 * 0.25^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 对称性：f(t) + f(1-t) = 1
	for p := 0.0; p <= 1.0; p += 0.05 {
		if sum := EaseInOutCubic(p) + EaseInOutCubic(1-p); math.Abs(sum-1) > 1e-9 {
			t.Errorf("EaseInOutCubic 不对称: f(%v)+f(%v) = %v", p, 1-p, sum)
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t  float64
		expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-5, 5, 0.25, -2.5},
	}

	for _, tt := range tests {
		if result := Lerp(tt.a, tt.b, tt.t); math.Abs(result-tt.expected) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
		}
	}
}

// TestDamp 测试指数平滑逼近
func TestDamp(t *testing.T) {
	t.Run("单调逼近目标", func(t *testing.T) {
		v := 0.0
		prev := v
		for i := 0; i < 30; i++ {
			v = Damp(v, 1, 8, 1.0/60.0)
			if v < prev || v > 1 {
				t.Fatalf("step %d: %v 不应小于 %v 或超过目标", i, v, prev)
			}
			prev = v
		}
	})

	t.Run("最终吸附", func(t *testing.T) {
		v := 0.0
		for i := 0; i < 600; i++ {
			v = Damp(v, 1, 8, 1.0/60.0)
		}
		if v != 1 {
			t.Errorf("Damp 未吸附到目标: %v", v)
		}
	})

	t.Run("无效参数保持不变", func(t *testing.T) {
		if v := Damp(0.3, 1, 0, 1.0/60.0); v != 0.3 {
			t.Errorf("rate=0 时应保持不变, got %v", v)
		}
		if v := Damp(0.3, 1, 8, 0); v != 0.3 {
			t.Errorf("deltaTime=0 时应保持不变, got %v", v)
		}
	})
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-1, 0}, {0.4, 0.4}, {2, 1}} {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.in, got, tt.want)
		}
	}
}
