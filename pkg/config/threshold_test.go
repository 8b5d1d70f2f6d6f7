package config

import "testing"

// TestThreshold_Resolve 测试阈值按视口高度换算
func TestThreshold_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		threshold Threshold
		viewport  float64
		expected  float64
	}{
		{"像素阈值与视口无关", PixelThreshold(300), 640, 300},
		{"一屏高度", ViewportThreshold(1), 640, 640},
		{"半屏高度", ViewportThreshold(0.5), 900, 450},
		{"未设置单位按像素处理", Threshold{Value: 120}, 640, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.threshold.Resolve(tt.viewport); got != tt.expected {
				t.Errorf("%s.Resolve(%v) = %v, 期望 %v", tt.threshold, tt.viewport, got, tt.expected)
			}
		})
	}
}

// TestThreshold_Validate 测试阈值校验
func TestThreshold_Validate(t *testing.T) {
	tests := []struct {
		name      string
		threshold Threshold
		wantErr   bool
	}{
		{"像素", PixelThreshold(300), false},
		{"视口", ViewportThreshold(1), false},
		{"零值", Threshold{}, false},
		{"未知单位", Threshold{Value: 1, Unit: "em"}, true},
		{"负值", PixelThreshold(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.threshold.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestThreshold_String 测试阈值描述
func TestThreshold_String(t *testing.T) {
	if s := PixelThreshold(300).String(); s != "300px" {
		t.Errorf("期望 300px，实际 %s", s)
	}
	if s := ViewportThreshold(1).String(); s != "1vh" {
		t.Errorf("期望 1vh，实际 %s", s)
	}
	if s := (Threshold{Value: 5}).String(); s != "5px" {
		t.Errorf("期望 5px，实际 %s", s)
	}
}
