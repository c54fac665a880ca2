package render

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Screen size in pixels.
const (
	Width  = 320
	Height = 240
)

var _ drivers.Displayer = (*Framebuffer)(nil)

// Framebuffer is a double-buffered RGBA surface. Drawing goes to the back
// buffer; Display copies it to the front buffer returned by Pix.
type Framebuffer struct {
	w, h  int
	back  []byte
	front []byte
}

// NewFramebuffer allocates a w by h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		w:     w,
		h:     h,
		back:  make([]byte, w*h*4),
		front: make([]byte, w*h*4),
	}
}

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.w), int16(f.h)
}

// SetPixel sets one pixel of the back buffer. Out of range pixels are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= f.w || iy >= f.h {
		return
	}
	off := (iy*f.w + ix) * 4
	f.back[off] = c.R
	f.back[off+1] = c.G
	f.back[off+2] = c.B
	f.back[off+3] = c.A
}

// Display presents the back buffer.
func (f *Framebuffer) Display() error {
	copy(f.front, f.back)
	return nil
}

// Pix returns the last presented frame in RGBA order, suitable for
// ebiten.Image.WritePixels.
func (f *Framebuffer) Pix() []byte {
	return f.front
}

// At returns a pixel of the back buffer.
func (f *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return color.RGBA{}
	}
	off := (y*f.w + x) * 4
	return color.RGBA{R: f.back[off], G: f.back[off+1], B: f.back[off+2], A: f.back[off+3]}
}

// Fill paints the whole back buffer.
func (f *Framebuffer) Fill(c color.RGBA) {
	f.FillRect(0, 0, f.w, f.h, c)
}

// FillRect paints a rectangle, clipped to the framebuffer.
func (f *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := clamp(x, 0, f.w), clamp(y, 0, f.h)
	x1, y1 := clamp(x+w, 0, f.w), clamp(y+h, 0, f.h)
	for py := y0; py < y1; py++ {
		row := py * f.w * 4
		for px := x0; px < x1; px++ {
			off := row + px*4
			f.back[off] = c.R
			f.back[off+1] = c.G
			f.back[off+2] = c.B
			f.back[off+3] = c.A
		}
	}
}

// StrokeRect draws a one pixel rectangle outline.
func (f *Framebuffer) StrokeRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	f.FillRect(x, y, w, 1, c)
	f.FillRect(x, y+h-1, w, 1, c)
	f.FillRect(x, y, 1, h, c)
	f.FillRect(x+w-1, y, 1, h, c)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
