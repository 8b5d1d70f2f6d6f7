package config

import "fmt"

// ThresholdUnit 滚动阈值的单位
type ThresholdUnit string

const (
	// UnitPixels 固定像素
	UnitPixels ThresholdUnit = "px"
	// UnitViewport 视口高度的倍数
	UnitViewport ThresholdUnit = "vh"
)

// Threshold 滚动可见性阈值
//
// YAML 示例:
//
//	backToTop: { value: 1.0, unit: vh }
//	reserve:   { value: 300, unit: px }
type Threshold struct {
	Value float64       `yaml:"value"`
	Unit  ThresholdUnit `yaml:"unit"`
}

// PixelThreshold 创建以像素为单位的阈值
func PixelThreshold(px float64) Threshold {
	return Threshold{Value: px, Unit: UnitPixels}
}

// ViewportThreshold 创建以视口高度倍数为单位的阈值
func ViewportThreshold(multiple float64) Threshold {
	return Threshold{Value: multiple, Unit: UnitViewport}
}

// Resolve 根据当前视口高度换算成像素阈值。未设置单位时按像素处理。
func (t Threshold) Resolve(viewportHeight float64) float64 {
	if t.Unit == UnitViewport {
		return t.Value * viewportHeight
	}
	return t.Value
}

// Validate 检查阈值单位与取值
func (t Threshold) Validate() error {
	switch t.Unit {
	case UnitPixels, UnitViewport, "":
	default:
		return fmt.Errorf("unknown threshold unit %q (expected px or vh)", t.Unit)
	}
	if t.Value < 0 {
		return fmt.Errorf("threshold value must be >= 0, got %v", t.Value)
	}
	return nil
}

// String 返回形如 "300px" / "1vh" 的描述
func (t Threshold) String() string {
	unit := t.Unit
	if unit == "" {
		unit = UnitPixels
	}
	return fmt.Sprintf("%g%s", t.Value, unit)
}
