package systems

import "github.com/decker502/nuclear-survival/pkg/game"

// ScriptedInput 是可编程的输入源，用于测试和无界面模拟
// 未设置的动作一律视为未按下
type ScriptedInput struct {
	Pressed  map[game.Action]bool
	PointerX int
	PointerY int
	Quit     bool
}

// NewScriptedInput 创建空输入源
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{Pressed: make(map[game.Action]bool)}
}

// Press 按住动作
func (si *ScriptedInput) Press(actions ...game.Action) *ScriptedInput {
	for _, a := range actions {
		si.Pressed[a] = true
	}
	return si
}

// Release 松开动作
func (si *ScriptedInput) Release(actions ...game.Action) *ScriptedInput {
	for _, a := range actions {
		delete(si.Pressed, a)
	}
	return si
}

// Aim 设置指针位置
func (si *ScriptedInput) Aim(x, y int) *ScriptedInput {
	si.PointerX, si.PointerY = x, y
	return si
}

func (si *ScriptedInput) IsActionPressed(action game.Action) bool {
	return si.Pressed[action]
}

func (si *ScriptedInput) PointerPosition() (int, int) {
	return si.PointerX, si.PointerY
}

func (si *ScriptedInput) QuitRequested() bool {
	return si.Quit
}

// FixedClock 每帧前进固定毫秒数的时钟
// NowMillis 返回最近一次 DeltaMillis 之后的时间
type FixedClock struct {
	StepMillis int64
	now        int64
}

// NewFixedClock 创建固定步长时钟
func NewFixedClock(stepMillis int64) *FixedClock {
	return &FixedClock{StepMillis: stepMillis}
}

// DeltaMillis 前进一步并返回步长
func (c *FixedClock) DeltaMillis() int64 {
	c.now += c.StepMillis
	return c.StepMillis
}

func (c *FixedClock) NowMillis() int64 {
	return c.now
}

// Advance 直接推进时间（不计入帧）
func (c *FixedClock) Advance(ms int64) {
	c.now += ms
}
