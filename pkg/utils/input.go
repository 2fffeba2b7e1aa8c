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

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
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
// 拖拽状态管理器：区分"点击"和"拖拽植物"
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DefaultTapSlop 按下到释放之间移动不超过该距离（像素）视为点击
const DefaultTapSlop = 8

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// Moved 是否曾经移动超过点击容差
	Moved bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的按下、移动和释放
type DragManager struct {
	info DragInfo
	slop int
}

// NewDragManager 创建拖拽管理器
//
// 参数：
//   - slop: 点击容差（像素），不大于 0 时使用 DefaultTapSlop
func NewDragManager(slop int) *DragManager {
	if slop <= 0 {
		slop = DefaultTapSlop
	}
	return &DragManager{slop: slop}
}

// Update 读取当前指针状态并推进（每帧调用一次）
func (dm *DragManager) Update() {
	pressed, x, y := GetPointerState()
	dm.advance(pressed, x, y)
}

// advance 根据本帧的指针状态推进状态机
func (dm *DragManager) advance(pressed bool, x, y int) {
	switch dm.info.State {
	case DragStateNone:
		if pressed {
			dm.begin(x, y)
		}

	case DragStateStarted, DragStateDragging:
		if !pressed {
			// 释放位置保持为最后一次按住时的位置
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.info.CurrentX, dm.info.CurrentY = x, y
		if abs(x-dm.info.StartX) > dm.slop || abs(y-dm.info.StartY) > dm.slop {
			dm.info.Moved = true
		}

	case DragStateEnded:
		// 结束状态只持续一帧
		dm.Reset()
		if pressed {
			dm.begin(x, y)
		}
	}
}

func (dm *DragManager) begin(x, y int) {
	dm.info = DragInfo{
		State:    DragStateStarted,
		StartX:   x,
		StartY:   y,
		CurrentX: x,
		CurrentY: y,
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{State: DragStateNone}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽（已超过点击容差且仍按住）
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging && dm.info.Moved
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// IsTap 本帧是否完成了一次点击（释放且从未超过点击容差）
// 按下时还无法区分点击和拖拽，因此点击在释放时才触发
func (dm *DragManager) IsTap() bool {
	return dm.info.State == DragStateEnded && !dm.info.Moved
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
