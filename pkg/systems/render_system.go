package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/nuclear-survival/pkg/components"
	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/ecs"
	"github.com/decker502/nuclear-survival/pkg/game"
)

// 调色板
var (
	ColorWhite      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorLightGreen = color.RGBA{R: 60, G: 255, B: 80, A: 255}
	ColorDarkGreen  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	ColorBlue       = color.RGBA{R: 50, G: 100, B: 250, A: 255}
	ColorRed        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// RenderSystem 把三种界面转换为 Renderer 的绘制调用
// 文字坐标是左上角，相对屏幕中心给出
type RenderSystem struct {
	width   float64
	centerX float64
	centerY float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(cfg *config.GameConfig) *RenderSystem {
	return &RenderSystem{
		width:   float64(cfg.Window.Width),
		centerX: cfg.CenterX(),
		centerY: cfg.CenterY(),
	}
}

// DrawPlaying 绘制游戏画面：背景、场地、子弹、僵尸、玩家和 HUD
func (rs *RenderSystem) DrawPlaying(r game.Renderer, sim *Simulation) {
	r.Clear(ColorDarkGreen)

	f := &sim.World.Field
	r.FillRect(f.OffsetX, f.OffsetY, f.Size, f.Size, ColorLightGreen)

	sim.World.Bullets.Each(func(_ ecs.EntityID, b *components.BulletComponent) bool {
		r.FillCircle(b.Position.X, b.Position.Y, b.Collision.Radius, ColorBlue)
		return true
	})
	sim.World.Zombies.Each(func(_ ecs.EntityID, z *components.ZombieComponent) bool {
		r.FillCircle(z.Position.X, z.Position.Y, z.Collision.Radius, ColorRed)
		return true
	})

	r.FillCircle(rs.centerX, rs.centerY, sim.Config.Player.Radius, ColorBlue)

	gs := sim.State
	r.DrawText(fmt.Sprintf("Score: %d", gs.Score), 20, 20, ColorWhite)
	r.DrawText(fmt.Sprintf("High Score: %d", gs.HighScore), rs.width-250, 20, ColorBlue)
	r.DrawText(fmt.Sprintf("Health: %d", gs.Health), 20, 60, ColorRed)
}

// DrawHome 绘制主页
func (rs *RenderSystem) DrawHome(r game.Renderer, highScore int) {
	r.Clear(ColorLightGreen)
	cx, cy := rs.centerX, rs.centerY
	r.DrawText("Nuclear Survival", cx-120, cy-150, ColorBlue)
	r.DrawText("Press SPACE to Start", cx-150, cy-100, ColorBlue)
	r.DrawText(fmt.Sprintf("High Score: %d", highScore), cx-110, cy-50, ColorBlue)
	r.DrawText("Click to shoot and use WASD to move.", cx-275, cy, ColorBlue)
	r.DrawText("Defeat red zombies to survive as long as possible.", cx-375, cy+50, ColorBlue)
}

// DrawGameOver 绘制结算界面
func (rs *RenderSystem) DrawGameOver(r game.Renderer, score, highScore int) {
	r.Clear(ColorLightGreen)
	cx, cy := rs.centerX, rs.centerY
	r.DrawText("Game Over", cx-75, cy-150, ColorBlue)
	r.DrawText(fmt.Sprintf("Total Score: %d", score), cx-115, cy-100, ColorWhite)
	r.DrawText(fmt.Sprintf("High Score: %d", highScore), cx-110, cy-50, ColorBlue)
	r.DrawText("Press R to Restart", cx-135, cy, ColorBlue)
	r.DrawText("Press H to Return to Home", cx-190, cy+50, ColorBlue)
}
