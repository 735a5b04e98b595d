package systems

import (
	"github.com/decker502/nuclear-survival/pkg/components"
	"github.com/decker502/nuclear-survival/pkg/ecs"
)

// World 一局游戏中的全部实体
//
// 子弹和僵尸分别存放在各自的有序实体管理器中，创建顺序即迭代顺序。
// 所有坐标都是屏幕坐标，镜头平移时由 CameraSystem 统一偏移。
type World struct {
	Field   components.FieldComponent
	Bullets *ecs.EntityManager[components.BulletComponent]
	Zombies *ecs.EntityManager[components.ZombieComponent]
}

// NewWorld 创建空世界
func NewWorld(fieldSize float64) *World {
	return &World{
		Field:   components.FieldComponent{Size: fieldSize},
		Bullets: ecs.NewEntityManager[components.BulletComponent](),
		Zombies: ecs.NewEntityManager[components.ZombieComponent](),
	}
}

// Reset 清空所有实体，并把场地偏移设置为 (offsetX, offsetY)
func (w *World) Reset(offsetX, offsetY float64) {
	w.Bullets.Clear()
	w.Zombies.Clear()
	w.Field.OffsetX = offsetX
	w.Field.OffsetY = offsetY
}

// Compact 物理删除本帧标记的实体
func (w *World) Compact() {
	w.Bullets.RemoveMarkedEntities()
	w.Zombies.RemoveMarkedEntities()
}
