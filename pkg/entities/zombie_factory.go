package entities

import (
	"fmt"

	"github.com/decker502/nuclear-survival/pkg/components"
	"github.com/decker502/nuclear-survival/pkg/ecs"
)

// NewZombieEntity 创建僵尸实体
//
// 参数:
//   - em: 僵尸实体管理器
//   - x, y: 生成位置（屏幕坐标，通常是场地的一个角）
//   - radius: 僵尸碰撞半径
//   - health: 初始生命值
//
// 返回:
//   - ecs.EntityID: 创建的僵尸实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewZombieEntity(em *ecs.EntityManager[components.ZombieComponent], x, y, radius float64, health int) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if radius <= 0 {
		return ecs.InvalidEntity, fmt.Errorf("zombie radius must be > 0, got %.1f", radius)
	}
	if health <= 0 {
		return ecs.InvalidEntity, fmt.Errorf("zombie health must be > 0, got %d", health)
	}

	return em.CreateEntity(components.ZombieComponent{
		Position:  components.PositionComponent{X: x, Y: y},
		Collision: components.CollisionComponent{Radius: radius},
		Health: components.HealthComponent{
			CurrentHealth: health,
			MaxHealth:     health,
		},
	}), nil
}
