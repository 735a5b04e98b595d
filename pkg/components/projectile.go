package components

// BulletComponent 子弹记录
//
// DirX/DirY 是创建时确定的单位方向向量，之后不再改变。
type BulletComponent struct {
	Position  PositionComponent
	Collision CollisionComponent
	DirX      float64
	DirY      float64
}
