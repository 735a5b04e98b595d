package systems

import (
	"github.com/decker502/nuclear-survival/pkg/components"
	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/ecs"
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/utils"
)

// PhysicsSystem 僵尸追击、子弹命中与接触伤害
//
// 处理顺序（每帧）：
//  1. 僵尸按创建顺序的逆序处理
//  2. 每只僵尸先记录到玩家的距离，再朝玩家前进一步
//  3. 按逆序检测所有存活子弹：
//     - 非致命命中：僵尸扣 1 血，子弹删除，继续检测下一颗子弹
//     - 致命命中：僵尸删除，得分 +1，致命子弹保留，停止检测
//  4. 僵尸仍存活且移动前距离小于接触距离时，尝试对玩家造成接触伤害
//
// 删除只做标记，由 World.Compact 在帧末统一清理。
type PhysicsSystem struct {
	world             *World
	state             *game.GameState
	playerX           float64
	playerY           float64
	playerRadius      float64
	zombieSpeed       float64
	contactCooldownMs int64
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(w *World, gs *game.GameState, cfg *config.GameConfig) *PhysicsSystem {
	return &PhysicsSystem{
		world:             w,
		state:             gs,
		playerX:           cfg.CenterX(),
		playerY:           cfg.CenterY(),
		playerRadius:      cfg.Player.Radius,
		zombieSpeed:       cfg.Zombie.Speed,
		contactCooldownMs: cfg.Zombie.ContactCooldownMs,
	}
}

// Update 推进一帧僵尸运动和碰撞
//
// 参数:
//   - nowMs: 本帧时间戳（毫秒），用于接触伤害冷却
//
// 返回:
//   - kills: 本帧击杀的僵尸数量
func (ps *PhysicsSystem) Update(nowMs int64) (kills int) {
	bullets := ps.world.Bullets

	ps.world.Zombies.EachReverse(func(zid ecs.EntityID, z *components.ZombieComponent) bool {
		var distance float64
		z.Position.X, z.Position.Y, distance = utils.StepToward(
			z.Position.X, z.Position.Y, ps.playerX, ps.playerY, ps.zombieSpeed)

		killed := false
		bullets.EachReverse(func(bid ecs.EntityID, b *components.BulletComponent) bool {
			if !utils.CirclesOverlap(b.Position.X, b.Position.Y, b.Collision.Radius,
				z.Position.X, z.Position.Y, z.Collision.Radius) {
				return true
			}

			z.Health.CurrentHealth--
			if z.Health.IsDead() {
				ps.world.Zombies.DestroyEntity(zid)
				ps.state.RecordKill()
				killed = true
				return false
			}
			bullets.DestroyEntity(bid)
			return true
		})

		if killed {
			kills++
			return true
		}

		if distance < ps.playerRadius+z.Collision.Radius {
			ps.state.ApplyContactDamage(nowMs, ps.contactCooldownMs)
		}
		return true
	})

	return kills
}
