package components

// FieldComponent 描述可滚动的正方形场地
//
// OffsetX/OffsetY 是场地左上角相对屏幕原点的偏移量。
// 玩家固定在屏幕中心，移动时平移的是场地。
type FieldComponent struct {
	OffsetX float64
	OffsetY float64
	Size    float64 // 边长（像素）
}

// Corners returns the four field corners in screen coordinates:
// top-left, top-right, bottom-left, bottom-right.
func (f *FieldComponent) Corners() [4]PositionComponent {
	return [4]PositionComponent{
		{X: f.OffsetX, Y: f.OffsetY},
		{X: f.OffsetX + f.Size, Y: f.OffsetY},
		{X: f.OffsetX, Y: f.OffsetY + f.Size},
		{X: f.OffsetX + f.Size, Y: f.OffsetY + f.Size},
	}
}

// Contains reports whether (x, y) lies inside the field grown by margin on every side.
func (f *FieldComponent) Contains(x, y, margin float64) bool {
	return x >= f.OffsetX-margin && x <= f.OffsetX+f.Size+margin &&
		y >= f.OffsetY-margin && y <= f.OffsetY+f.Size+margin
}
