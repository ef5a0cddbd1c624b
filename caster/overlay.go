package caster

import (
	"image/color"
	"math"

	"gridcaster/engine"
	"gridcaster/model"
	"gridcaster/vec"
)

var (
	overlayPlayer  = color.RGBA{25, 0, 255, 255}
	overlayHeading = color.RGBA{255, 0, 0, 255}
	overlayEnemy   = color.RGBA{0, 255, 0, 255}
)

const overlayMarkerLength = 10

// OverlayAlpha is the opacity of a cell at squared distance d2 inside a
// radius whose square is r2: 1.01 - (d2/r2)^k, clamped to [0, 1].
func OverlayAlpha(d2, r2, k float64) float64 {
	if r2 <= 0 {
		return 0
	}
	a := 1.01 - math.Pow(d2/r2, k)
	return math.Max(0, math.Min(1, a))
}

// drawOverlay renders the map top-down, one pixel per cell, fading out with
// distance from the player. The field of view doubles as the radius.
func (r *Raycaster) drawOverlay(f *engine.Frame, s *model.GameState) {
	r2 := r.fov * r.fov
	p := s.Player.Pos

	w, h := r.grid.Width(), r.grid.Height()
	for y := 0; y < h && y < f.Height; y++ {
		for x := 0; x < w && x < f.Width; x++ {
			if !r.grid.Solid(x, y) {
				continue
			}
			d2 := vec.New(float64(x), float64(y)).Sub(p).LenSq()
			if d2 > r2 {
				continue
			}
			cell, _ := r.grid.Cell(x, y)
			c := cell.Color
			c.A = uint8(OverlayAlpha(d2, r2, r.overlayFalloff) * 255)
			f.SetPixel(x, y, engine.Premultiply(c))
		}
	}

	e := s.Enemy.Pos
	for _, side := range []vec.Side{vec.Left, vec.Right} {
		end := e.Add(s.Player.Dir.Orthogonal(side).Scale(overlayMarkerLength))
		f.Line(int(e.X), int(e.Y), int(end.X), int(end.Y), overlayEnemy)
	}

	px, py := int(p.X), int(p.Y)
	tip := p.Add(s.Player.Dir.Scale(overlayMarkerLength))
	f.Line(px, py, int(tip.X), int(tip.Y), overlayHeading)
	f.SetPixel(px, py, overlayPlayer)
}
