package systems

import "github.com/decker502/nuclear-survival/pkg/game"

// FrameInput 一帧的游戏输入快照
//
// 每帧只采样一次，之后各系统只读取快照，保证同一帧内输入一致。
type FrameInput struct {
	Left, Right, Up, Down bool
	Fire                  bool
	PointerX, PointerY    float64
}

// SampleInput 从输入源采样本帧的移动、开火和指针位置
func SampleInput(src game.InputSource) FrameInput {
	if src == nil {
		return FrameInput{}
	}
	px, py := src.PointerPosition()
	return FrameInput{
		Left:     src.IsActionPressed(game.ActionMoveLeft),
		Right:    src.IsActionPressed(game.ActionMoveRight),
		Up:       src.IsActionPressed(game.ActionMoveUp),
		Down:     src.IsActionPressed(game.ActionMoveDown),
		Fire:     src.IsActionPressed(game.ActionFire),
		PointerX: float64(px),
		PointerY: float64(py),
	}
}
