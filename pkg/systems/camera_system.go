package systems

import (
	"github.com/decker502/nuclear-survival/pkg/components"
	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/ecs"
)

// Direction 玩家的移动意图
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// CameraSystem 管理场地平移
//
// 玩家固定在屏幕中心，"移动"实际上是把场地、子弹和僵尸整体反向平移。
// 平移前检查场地偏移，保证玩家圆始终留在场地内。
type CameraSystem struct {
	world        *World
	centerX      float64
	centerY      float64
	playerRadius float64
	speed        float64
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(w *World, cfg *config.GameConfig) *CameraSystem {
	return &CameraSystem{
		world:        w,
		centerX:      cfg.CenterX(),
		centerY:      cfg.CenterY(),
		playerRadius: cfg.Player.Radius,
		speed:        cfg.Player.Speed,
	}
}

// CanShift reports whether the field may move for dir from its current offset.
// The check uses the offset before the shift, so the last step may overshoot
// the bound by less than one step.
func (cs *CameraSystem) CanShift(dir Direction) bool {
	f := &cs.world.Field
	switch dir {
	case DirLeft:
		return f.OffsetX < cs.centerX-cs.playerRadius
	case DirRight:
		return f.OffsetX > cs.centerX-f.Size+cs.playerRadius
	case DirUp:
		return f.OffsetY < cs.centerY-cs.playerRadius
	case DirDown:
		return f.OffsetY > cs.centerY-f.Size+cs.playerRadius
	default:
		return false
	}
}

// Shift 按玩家意图 dir 平移场地 amount 像素，并对所有实体施加相同位移
//
// 返回:
//   - bool: 被边界拒绝时返回 false，此时没有任何东西移动
func (cs *CameraSystem) Shift(dir Direction, amount float64) bool {
	if !cs.CanShift(dir) {
		return false
	}

	var dx, dy float64
	switch dir {
	case DirLeft:
		dx = amount
	case DirRight:
		dx = -amount
	case DirUp:
		dy = amount
	case DirDown:
		dy = -amount
	}

	cs.world.Field.OffsetX += dx
	cs.world.Field.OffsetY += dy
	cs.translate(dx, dy)
	return true
}

func (cs *CameraSystem) translate(dx, dy float64) {
	cs.world.Bullets.Each(func(_ ecs.EntityID, b *components.BulletComponent) bool {
		b.Position.X += dx
		b.Position.Y += dy
		return true
	})
	cs.world.Zombies.Each(func(_ ecs.EntityID, z *components.ZombieComponent) bool {
		z.Position.X += dx
		z.Position.Y += dy
		return true
	})
}

// Update 按左、右、上、下的顺序应用本帧按住的移动键
//
// 返回实际发生的平移次数
func (cs *CameraSystem) Update(in FrameInput) int {
	shifted := 0
	held := [...]struct {
		pressed bool
		dir     Direction
	}{
		{in.Left, DirLeft},
		{in.Right, DirRight},
		{in.Up, DirUp},
		{in.Down, DirDown},
	}
	for _, k := range held {
		if k.pressed && cs.Shift(k.dir, cs.speed) {
			shifted++
		}
	}
	return shifted
}
