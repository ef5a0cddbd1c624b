package engine

import (
	"image/color"
	"testing"
)

var red = color.RGBA{255, 0, 0, 255}

func countColored(f *Frame, c color.RGBA) int {
	n := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestNewFrameSize(t *testing.T) {
	f := NewFrame(16, 9)
	if len(f.Pix) != 16*9*4 {
		t.Errorf("Expected %d bytes, got %d", 16*9*4, len(f.Pix))
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	f := NewFrame(4, 4)
	f.SetPixel(-1, 0, red)
	f.SetPixel(4, 0, red)
	f.SetPixel(0, 4, red)
	f.SetPixel(2, 1, red)

	if n := countColored(f, red); n != 1 {
		t.Errorf("Expected 1 written pixel, got %d", n)
	}
	if f.At(2, 1) != red {
		t.Errorf("Expected red at (2,1), got %v", f.At(2, 1))
	}
	if got := f.Pix[(1*4+2)*4]; got != 255 {
		t.Errorf("Expected row-major layout, got R=%d", got)
	}
}

func TestClear(t *testing.T) {
	f := NewFrame(7, 5)
	f.Clear(red)
	if n := countColored(f, red); n != 35 {
		t.Errorf("Expected all 35 pixels cleared, got %d", n)
	}
}

func TestVerLineClipsAndOrders(t *testing.T) {
	f := NewFrame(3, 10)
	f.VerLine(1, 12, -4, red)
	if n := countColored(f, red); n != 10 {
		t.Errorf("Expected full column of 10, got %d", n)
	}

	f = NewFrame(3, 10)
	f.VerLine(1, 2, 5, red)
	if n := countColored(f, red); n != 4 {
		t.Errorf("Expected inclusive run of 4, got %d", n)
	}

	f.VerLine(3, 0, 9, color.RGBA{0, 255, 0, 255})
	if n := countColored(f, color.RGBA{0, 255, 0, 255}); n != 0 {
		t.Errorf("Expected off-frame column to be dropped, got %d", n)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{"horizontal", 0, 0, 7, 0, 8},
		{"diagonal", 0, 0, 7, 7, 8},
		{"reverse diagonal", 7, 7, 0, 0, 8},
		{"steep", 1, 0, 2, 7, 8},
		{"vertical", 3, 1, 3, 4, 4},
		{"single point", 2, 2, 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(8, 8)
			f.Line(tt.x1, tt.y1, tt.x2, tt.y2, red)
			if n := countColored(f, red); n != tt.want {
				t.Errorf("Expected %d pixels, got %d", tt.want, n)
			}
			if f.At(tt.x1, tt.y1) != red || f.At(tt.x2, tt.y2) != red {
				t.Error("Expected both endpoints to be drawn")
			}
		})
	}
}

func TestLineLeavingFrame(t *testing.T) {
	f := NewFrame(4, 4)
	f.Line(1, 1, 20, 9, red)
	if f.At(1, 1) != red {
		t.Error("Expected visible start to be drawn")
	}
}

func TestBlendPixel(t *testing.T) {
	f := NewFrame(1, 1)
	f.SetPixel(0, 0, color.RGBA{0, 0, 200, 255})

	f.BlendPixel(0, 0, color.RGBA{})
	if got := f.At(0, 0); got != (color.RGBA{0, 0, 200, 255}) {
		t.Errorf("Expected transparent source to be a no-op, got %v", got)
	}

	half := Premultiply(color.NRGBA{255, 0, 0, 128})
	f.BlendPixel(0, 0, half)
	got := f.At(0, 0)
	if got.A != 255 {
		t.Errorf("Expected opaque result, got alpha %d", got.A)
	}
	if got.R < 120 || got.R > 130 || got.B < 95 || got.B > 105 {
		t.Errorf("Expected roughly even mix, got %v", got)
	}
}

func TestWrapShortBuffer(t *testing.T) {
	f := Wrap(make([]byte, 10*3*4), 10, 5)
	if f.Height != 3 {
		t.Errorf("Expected height clamped to 3, got %d", f.Height)
	}
	f.VerLine(0, 0, 4, red)
	if n := countColored(f, red); n != 3 {
		t.Errorf("Expected 3 pixels, got %d", n)
	}
}
