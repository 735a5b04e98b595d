package entities

import (
	"fmt"

	"github.com/decker502/nuclear-survival/pkg/components"
	"github.com/decker502/nuclear-survival/pkg/ecs"
	"github.com/decker502/nuclear-survival/pkg/utils"
)

// NewBullet 创建子弹实体
// 子弹从玩家位置发射，方向指向发射瞬间的指针位置，之后方向不再改变
//
// 参数:
//   - em: 子弹实体管理器
//   - originX, originY: 玩家的屏幕坐标
//   - pointerX, pointerY: 发射瞬间的指针坐标
//   - radius: 子弹碰撞半径
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewBullet(em *ecs.EntityManager[components.BulletComponent], originX, originY, pointerX, pointerY, radius float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if radius <= 0 {
		return ecs.InvalidEntity, fmt.Errorf("bullet radius must be > 0, got %.1f", radius)
	}

	dirX, dirY := utils.AimDirection(originX, originY, pointerX, pointerY)

	return em.CreateEntity(components.BulletComponent{
		Position:  components.PositionComponent{X: originX, Y: originY},
		Collision: components.CollisionComponent{Radius: radius},
		DirX:      dirX,
		DirY:      dirY,
	}), nil
}
