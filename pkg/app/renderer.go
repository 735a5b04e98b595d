package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// fontScale 把 13px 的位图字体放大到约 25px
const fontScale = 2

// ebitenRenderer 把绘制请求转换为 ebiten 的矢量和文字绘制
type ebitenRenderer struct {
	screen *ebiten.Image
	face   text.Face
}

func newEbitenRenderer() *ebitenRenderer {
	return &ebitenRenderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// begin 设置本帧的绘制目标
func (r *ebitenRenderer) begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *ebitenRenderer) Clear(c color.RGBA) {
	r.screen.Fill(c)
}

func (r *ebitenRenderer) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.FillRect(r.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (r *ebitenRenderer) FillCircle(cx, cy, radius float64, c color.RGBA) {
	vector.FillCircle(r.screen, float32(cx), float32(cy), float32(radius), c, true)
}

func (r *ebitenRenderer) DrawText(s string, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(fontScale, fontScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, r.face, op)
}

// Present 由 ebiten 在 Draw 返回后完成
func (r *ebitenRenderer) Present() {}
