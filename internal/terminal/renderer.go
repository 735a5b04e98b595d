// Package terminal runs the game inside a terminal through tcell.
//
// The logical screen (800x600 by default) is mapped onto the terminal
// grid. Each cell shows the background colour sampled at its centre and
// text is written cell by cell starting at the cell of its origin.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the subset of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Renderer implements game.Renderer on a character grid
type Renderer struct {
	canvas        Canvas
	logicalWidth  float64
	logicalHeight float64

	cols, rows int
	bg         []tcell.Color
	text       []rune
	fg         []tcell.Color
}

// NewRenderer creates a renderer for the given logical screen size
func NewRenderer(canvas Canvas, logicalWidth, logicalHeight int) *Renderer {
	return &Renderer{
		canvas:        canvas,
		logicalWidth:  float64(logicalWidth),
		logicalHeight: float64(logicalHeight),
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellSize returns the logical size of one terminal cell
func (r *Renderer) cellSize() (float64, float64) {
	return r.logicalWidth / float64(r.cols), r.logicalHeight / float64(r.rows)
}

// CellAt maps a logical point to the cell containing it
func (r *Renderer) CellAt(x, y float64) (col, row int) {
	cw, ch := r.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// LogicalAt maps a cell to the logical coordinates of its centre
func (r *Renderer) LogicalAt(col, row int) (x, y float64) {
	cw, ch := r.cellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

// Clear starts a new frame and fills every cell with c
func (r *Renderer) Clear(c color.RGBA) {
	cols, rows := r.canvas.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols != r.cols || rows != r.rows {
		r.cols, r.rows = cols, rows
		r.bg = make([]tcell.Color, cols*rows)
		r.text = make([]rune, cols*rows)
		r.fg = make([]tcell.Color, cols*rows)
	}

	tc := toColor(c)
	for i := range r.bg {
		r.bg[i] = tc
		r.text[i] = 0
	}
}

func (r *Renderer) fillWhere(c color.RGBA, x0, y0, x1, y1 float64, inside func(x, y float64) bool) {
	if r.cols == 0 {
		return
	}
	tc := toColor(c)
	c0, r0 := r.CellAt(x0, y0)
	c1, r1 := r.CellAt(x1, y1)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, r.cols-1), min(r1, r.rows-1)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if inside(r.LogicalAt(col, row)) {
				r.bg[row*r.cols+col] = tc
			}
		}
	}
}

func (r *Renderer) FillRect(x, y, w, h float64, c color.RGBA) {
	r.fillWhere(c, x, y, x+w, y+h, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
}

// FillCircle paints every cell whose centre lies inside the circle.
// The cell containing the centre is always painted so small circles stay visible.
func (r *Renderer) FillCircle(cx, cy, radius float64, c color.RGBA) {
	r.fillWhere(c, cx-radius, cy-radius, cx+radius, cy+radius, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= radius*radius
	})

	col, row := r.CellAt(cx, cy)
	if col >= 0 && col < r.cols && row >= 0 && row < r.rows {
		r.bg[row*r.cols+col] = toColor(c)
	}
}

func (r *Renderer) DrawText(s string, x, y float64, c color.RGBA) {
	if r.cols == 0 {
		return
	}
	col, row := r.CellAt(x, y)
	if row < 0 || row >= r.rows {
		return
	}
	tc := toColor(c)
	for _, ch := range s {
		if col >= 0 && col < r.cols {
			r.text[row*r.cols+col] = ch
			r.fg[row*r.cols+col] = tc
		}
		col++
	}
}

// Present copies the frame to the canvas and shows it
func (r *Renderer) Present() {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			i := row*r.cols + col
			style := tcell.StyleDefault.Background(r.bg[i])
			ch := ' '
			if r.text[i] != 0 {
				ch = r.text[i]
				style = style.Foreground(r.fg[i])
			}
			r.canvas.SetContent(col, row, ch, nil, style)
		}
	}
	r.canvas.Show()
}
