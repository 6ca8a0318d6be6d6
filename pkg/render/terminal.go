package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the image to terminal cells and draws them on the screen.
// Each terminal row shows two image rows, so the image height should be
// twice the area height.
func (img *Image) Draw(scr uv.Screen, area uv.Rectangle) {
	// ▀ (upper half block) with fg=top color and bg=bottom color
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < img.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(img.GetPixel(x, topY)),
					Bg: rgbaToColor(img.GetPixel(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalRenderer draws images full-screen on a terminal.
type TerminalRenderer struct {
	term       *uv.Terminal
	cols, rows int
}

// NewTerminalRenderer creates a renderer for a terminal of cols × rows cells.
func NewTerminalRenderer(term *uv.Terminal, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{term: term, cols: cols, rows: rows}
}

// FramebufferSize returns the image size that fills the terminal.
func (tr *TerminalRenderer) FramebufferSize() (width, height int) {
	return tr.cols, tr.rows * 2
}

// Render draws img into the terminal buffer. Call Flush to show it.
func (tr *TerminalRenderer) Render(img *Image) {
	img.Draw(tr.term, uv.Rect(0, 0, tr.cols, tr.rows))
}

// Flush displays the terminal buffer.
func (tr *TerminalRenderer) Flush() error {
	return tr.term.Display()
}
