package components

// PositionComponent 存储实体的屏幕坐标（像素）
// 实体随镜头平移，因此坐标始终是屏幕坐标系
type PositionComponent struct {
	X float64
	Y float64
}
