package systems

import (
	"github.com/decker502/nuclear-survival/pkg/components"
	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/ecs"
)

// ProjectileSystem 负责子弹的匀速直线运动
//
// 开启 cull 时，离开场地足够远、已不可能再命中僵尸的子弹会被标记删除。
// 僵尸始终位于场地内，因此边距取子弹半径与僵尸半径之和即可保证不影响碰撞结果。
type ProjectileSystem struct {
	world  *World
	speed  float64
	cull   bool
	margin float64
}

// NewProjectileSystem 创建子弹移动系统
func NewProjectileSystem(w *World, cfg *config.GameConfig) *ProjectileSystem {
	return &ProjectileSystem{
		world:  w,
		speed:  cfg.Bullet.Speed,
		cull:   cfg.Bullet.CullOffField,
		margin: cfg.Bullet.Radius + cfg.Zombie.Radius,
	}
}

// Update 移动所有子弹，返回本帧剔除的子弹数量
func (ps *ProjectileSystem) Update() int {
	culled := 0
	ps.world.Bullets.Each(func(id ecs.EntityID, b *components.BulletComponent) bool {
		b.Position.X += b.DirX * ps.speed
		b.Position.Y += b.DirY * ps.speed
		if ps.cull && !ps.world.Field.Contains(b.Position.X, b.Position.Y, ps.margin) {
			ps.world.Bullets.DestroyEntity(id)
			culled++
		}
		return true
	})
	return culled
}
