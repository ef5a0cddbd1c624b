package caster

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/harbdog/raycaster-go"

	"gridcaster/engine"
	"gridcaster/level"
	"gridcaster/vec"
)

const DefaultBillboardHalfWidth = 10.0

// ParseAnchor reads "bottom", "center" or "top".
func ParseAnchor(s string) (raycaster.SpriteAnchor, error) {
	switch strings.ToLower(s) {
	case "bottom", "":
		return raycaster.AnchorBottom, nil
	case "center", "centre":
		return raycaster.AnchorCenter, nil
	case "top":
		return raycaster.AnchorTop, nil
	}
	return raycaster.AnchorBottom, fmt.Errorf("unknown sprite anchor %q", s)
}

// Segment is the billboard's footprint: a line through the enemy,
// perpendicular to the viewer's heading.
type Segment struct {
	A, B vec.Vector2
}

func BillboardSegment(enemy, heading vec.Vector2, halfWidth float64) Segment {
	return Segment{
		A: enemy.Add(heading.Orthogonal(vec.Left).Scale(halfWidth)),
		B: enemy.Add(heading.Orthogonal(vec.Right).Scale(halfWidth)),
	}
}

// Lower is the endpoint that orders first by x, then y.
func (s Segment) Lower() vec.Vector2 {
	if s.B.Less(s.A) {
		return s.B
	}
	return s.A
}

// Contains reports whether p lies inside the segment's bounding box.
func (s Segment) Contains(p vec.Vector2) bool {
	return p.X >= math.Min(s.A.X, s.B.X) && p.X <= math.Max(s.A.X, s.B.X) &&
		p.Y >= math.Min(s.A.Y, s.B.Y) && p.Y <= math.Max(s.A.Y, s.B.Y)
}

// BillboardIntersection tests a grid cell against the billboard footprint.
// On a hit, the texel row is the Manhattan distance from the lower endpoint,
// rounded to the nearest row and clamped to rows-1.
func BillboardIntersection(cell image.Point, enemy, heading vec.Vector2, halfWidth float64, rows int) (int, bool) {
	if rows <= 0 {
		return 0, false
	}
	seg := BillboardSegment(enemy, heading, halfWidth)
	p := vec.New(float64(cell.X), float64(cell.Y))
	if !seg.Contains(p) {
		return 0, false
	}
	lower := seg.Lower()
	d := math.Abs(p.X-lower.X) + math.Abs(p.Y-lower.Y)
	return clampInt(int(math.Round(d)), 0, rows-1), true
}

// billboardHit is the first billboard cell a ray passed through.
type billboardHit struct {
	found    bool
	row      int
	distance float64
}

// anchorSpan places a sprite of relative scale against a wall slice of the
// given unclamped height, centred on centre.
func anchorSpan(anchor raycaster.SpriteAnchor, centre, wallHeight, scale float64) (float64, float64) {
	h := wallHeight * scale
	switch anchor {
	case raycaster.AnchorTop:
		top := centre - wallHeight/2
		return top, top + h
	case raycaster.AnchorCenter:
		return centre - h/2, centre + h/2
	default:
		bottom := centre + wallHeight/2
		return bottom - h, bottom
	}
}

// drawBillboardStrip blends one texel row of tex as a vertical strip at x.
func (r *Raycaster) drawBillboardStrip(f *engine.Frame, x int, tex *level.Texture, bb billboardHit, pitch float64) {
	row := tex.Row(bb.row)
	if len(row) == 0 || bb.distance <= 0 {
		return
	}

	h := float64(f.Height)
	wallHeight := math.Abs(h/bb.distance) * r.scale
	shear := pitch * h / 2
	rawStart, rawEnd := anchorSpan(r.anchor, h/2+shear, wallHeight, r.billboardScale)
	span := rawEnd - rawStart
	if span <= 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return
	}

	start := clampInt(int(math.Floor(rawStart)), 0, f.Height)
	end := clampInt(int(math.Ceil(rawEnd)), 0, f.Height)
	fog := r.fog.Factor(bb.distance, shear)
	for y := start; y < end; y++ {
		t := (float64(y) + 0.5 - rawStart) / span
		texel := row[clampInt(int(t*float64(len(row))), 0, len(row)-1)]
		if texel.A == 0 {
			continue
		}
		f.BlendPixel(x, y, engine.Premultiply(attenuate(texel, fog)))
	}
}
