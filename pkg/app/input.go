package app

import (
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings 动作到键盘按键的映射
var keyBindings = map[game.Action][]ebiten.Key{
	game.ActionMoveUp:    {ebiten.KeyW},
	game.ActionMoveDown:  {ebiten.KeyS},
	game.ActionMoveLeft:  {ebiten.KeyA},
	game.ActionMoveRight: {ebiten.KeyD},
	game.ActionStart:     {ebiten.KeySpace},
	game.ActionRestart:   {ebiten.KeyR},
	game.ActionHome:      {ebiten.KeyH},
}

// ebitenInput 通过 ebiten 轮询键盘和鼠标状态
// 开火使用鼠标左键，关闭窗口视为退出
type ebitenInput struct {
	bindings map[game.Action][]ebiten.Key
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{bindings: keyBindings}
}

func (in *ebitenInput) IsActionPressed(action game.Action) bool {
	if action == game.ActionFire {
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	for _, key := range in.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (in *ebitenInput) PointerPosition() (int, int) {
	return ebiten.CursorPosition()
}

// QuitRequested 需要 main 中调用 ebiten.SetWindowClosingHandled(true)
func (in *ebitenInput) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed()
}
