// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// ============================================================================
// 滚动输入 - 鼠标滚轮、键盘、触摸拖拽统一换算成页面滚动量
// ============================================================================

// ScrollInput 汇总一帧内的滚动输入
type ScrollInput struct {
	// WheelSpeed 滚轮每格对应的像素
	WheelSpeed float64
	// KeyStep 方向键按住时每帧滚动的像素
	KeyStep float64
	// PageSize PageUp/PageDown/空格 一次滚动的像素
	PageSize float64

	drag DragScroller
}

// NewScrollInput 创建滚动输入读取器
func NewScrollInput(wheelSpeed, keyStep, pageSize float64) *ScrollInput {
	return &ScrollInput{
		WheelSpeed: wheelSpeed,
		KeyStep:    keyStep,
		PageSize:   pageSize,
	}
}

// Read 读取本帧的滚动量（正值向下）
func (si *ScrollInput) Read() float64 {
	_, wheelY := ebiten.Wheel()
	dy := -wheelY * si.WheelSpeed

	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += si.KeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= si.KeyStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		dy += si.PageSize
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		dy -= si.PageSize
	}

	pressed, _, y := GetPointerState()
	dy += si.drag.Feed(pressed, y)

	return dy
}

// DragScroller 把按住拖动的位移换算成滚动量（手指上移页面下滚）
type DragScroller struct {
	dragging bool
	lastY    int
}

// Feed 输入本帧指针状态，返回滚动量
func (d *DragScroller) Feed(pressed bool, y int) float64 {
	if !pressed {
		d.dragging = false
		return 0
	}
	if !d.dragging {
		d.dragging = true
		d.lastY = y
		return 0
	}
	dy := float64(d.lastY - y)
	d.lastY = y
	return dy
}

// IsDragging 是否正在拖拽
func (d *DragScroller) IsDragging() bool {
	return d.dragging
}
