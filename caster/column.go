package caster

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"gridcaster/engine"
	"gridcaster/level"
)

// Column is the vertical screen span of one wall slice. RawStart and RawEnd
// are unclamped and drive texture interpolation; Start and End are clipped
// to the screen and half-open.
type Column struct {
	Height   float64
	Shear    float64
	RawStart float64
	RawEnd   float64
	Start    int
	End      int
}

// Project turns a wall distance into a column: the height is |h/d|*scale
// clamped to the screen height, then the whole span is sheared by pitch*h/2.
func Project(distance, pitch float64, screenHeight int, scale float64) Column {
	h := float64(screenHeight)
	height := math.Abs(h/distance) * scale
	if math.IsNaN(height) {
		height = h
	}
	height = geom.Clamp(height, 0, h)

	shear := pitch * h / 2
	col := Column{
		Height:   height,
		Shear:    shear,
		RawStart: h/2 - height/2 + shear,
		RawEnd:   h/2 + height/2 + shear,
	}
	col.Start = clampInt(int(math.Floor(col.RawStart)), 0, screenHeight)
	col.End = clampInt(int(math.Ceil(col.RawEnd)), 0, screenHeight)
	return col
}

// Fog attenuates by 1/(1 + d²·Density + shear·Shear).
type Fog struct {
	Density float64
	Shear   float64
}

func (f Fog) Factor(distance, shear float64) float64 {
	denom := 1 + distance*distance*f.Density + shear*f.Shear
	if denom <= 1 {
		return 1
	}
	return 1 / denom
}

// Shade darkens a wall color: side 1 faces are halved, then fog applies.
// Alpha passes through.
func Shade(c color.NRGBA, side int, distance, shear float64, fog Fog) color.NRGBA {
	if side == 1 {
		c.R /= 2
		c.G /= 2
		c.B /= 2
	}
	return attenuate(c, fog.Factor(distance, shear))
}

func attenuate(c color.NRGBA, k float64) color.NRGBA {
	if k >= 1 {
		return c
	}
	c.R = uint8(float64(c.R) * k)
	c.G = uint8(float64(c.G) * k)
	c.B = uint8(float64(c.B) * k)
	return c
}

// TexCoordX maps the fractional part of wallX to a texel column.
func TexCoordX(wallX float64, width int) int {
	frac := wallX - math.Floor(wallX)
	return clampInt(int(frac*float64(width)), 0, width-1)
}

// TexCoordY maps screen row y into [0, height) linearly across the unclamped
// column span.
func TexCoordY(y int, col Column, height int) int {
	span := col.RawEnd - col.RawStart
	if span <= 0 {
		return 0
	}
	t := (float64(y) + 0.5 - col.RawStart) / span
	return clampInt(int(t*float64(height)), 0, height-1)
}

func (r *Raycaster) drawWall(f *engine.Frame, x int, hit Hit, distance float64, col Column) {
	if col.End <= col.Start {
		return
	}

	if r.wall == nil || r.wall.Width() == 0 {
		c := Shade(hit.Color, hit.Side, distance, col.Shear, r.fog)
		f.VerLine(x, col.Start, col.End-1, engine.Premultiply(c))
		return
	}

	r.drawTexturedWall(f, x, r.wall, hit, distance, col)
}

func (r *Raycaster) drawTexturedWall(f *engine.Frame, x int, tex *level.Texture, hit Hit, distance float64, col Column) {
	texX := TexCoordX(hit.WallX, tex.Width())
	fog := r.fog.Factor(distance, col.Shear)
	for y := col.Start; y < col.End; y++ {
		texel := tex.At(texX, TexCoordY(y, col, tex.Height()))
		if hit.Side == 1 {
			texel.R /= 2
			texel.G /= 2
			texel.B /= 2
		}
		f.SetPixel(x, y, engine.Premultiply(attenuate(texel, fog)))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
