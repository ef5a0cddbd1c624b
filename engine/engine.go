package engine

import "image/color"

// Frame is a flat RGBA8 pixel buffer, row-major with a top-left origin.
// Pixels are stored premultiplied so the buffer can be presented as-is.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Wrap adopts caller-owned memory as a frame. The slice must hold at least
// width*height*4 bytes; a short slice yields a frame with no drawable rows.
func Wrap(pix []byte, width, height int) *Frame {
	if width <= 0 || len(pix) < width*height*4 {
		height = 0
		if width > 0 {
			height = len(pix) / (width * 4)
		}
	}
	return &Frame{Pix: pix, Width: width, Height: height}
}

func (f *Frame) offset(x, y int) int {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return -1
	}
	return (y*f.Width + x) * 4
}

// Clear fills the whole frame with c.
func (f *Frame) Clear(c color.RGBA) {
	if len(f.Pix) < 4 {
		return
	}
	f.Pix[0], f.Pix[1], f.Pix[2], f.Pix[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(f.Pix); filled *= 2 {
		copy(f.Pix[filled:], f.Pix[:filled])
	}
}

// At returns the stored pixel, or a zero color outside the frame.
func (f *Frame) At(x, y int) color.RGBA {
	i := f.offset(x, y)
	if i < 0 {
		return color.RGBA{}
	}
	return color.RGBA{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
}

// SetPixel writes c at (x, y); writes outside the frame are dropped.
func (f *Frame) SetPixel(x, y int, c color.RGBA) {
	i := f.offset(x, y)
	if i < 0 {
		return
	}
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = c.A
}

// BlendPixel composites the premultiplied color c over the stored pixel.
func (f *Frame) BlendPixel(x, y int, c color.RGBA) {
	if c.A == 0 {
		return
	}
	i := f.offset(x, y)
	if i < 0 {
		return
	}
	if c.A == 255 {
		f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = c.R, c.G, c.B, c.A
		return
	}
	inv := 255 - uint32(c.A)
	f.Pix[i] = uint8(uint32(c.R) + uint32(f.Pix[i])*inv/255)
	f.Pix[i+1] = uint8(uint32(c.G) + uint32(f.Pix[i+1])*inv/255)
	f.Pix[i+2] = uint8(uint32(c.B) + uint32(f.Pix[i+2])*inv/255)
	f.Pix[i+3] = uint8(uint32(c.A) + uint32(f.Pix[i+3])*inv/255)
}

// VerLine draws the inclusive vertical run y1..y2 at column x.
func (f *Frame) VerLine(x, y1, y2 int, c color.RGBA) {
	if x < 0 || x >= f.Width {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if y1 < 0 {
		y1 = 0
	}
	if y2 >= f.Height {
		y2 = f.Height - 1
	}
	for y := y1; y <= y2; y++ {
		i := (y*f.Width + x) * 4
		f.Pix[i] = c.R
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.B
		f.Pix[i+3] = c.A
	}
}

// Line draws from (x1, y1) to (x2, y2) inclusive using Bresenham's algorithm.
func (f *Frame) Line(x1, y1, x2, y2 int, c color.RGBA) {
	if x1 == x2 {
		f.VerLine(x1, y1, y2, c)
		return
	}

	dx := abs(x2 - x1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	dy := -abs(y2 - y1)
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		f.SetPixel(x, y, c)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Premultiply converts a straight-alpha color for storage in a Frame.
func Premultiply(c color.NRGBA) color.RGBA {
	if c.A == 255 {
		return color.RGBA{c.R, c.G, c.B, 255}
	}
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
