package caster

import (
	"image"
	"image/color"
	"math"

	"gridcaster/level"
	"gridcaster/vec"
)

// Hit is the result of marching one ray through the grid.
type Hit struct {
	Hit  bool
	Cell image.Point
	// Side is 0 when the ray crossed a vertical grid line last, 1 for a
	// horizontal one.
	Side int
	Step image.Point
	// Distance is along the ray direction; with a unit direction it is the
	// Euclidean length to the wall face.
	Distance float64
	// WallX is the world coordinate along the struck face.
	WallX float64
	Color color.NRGBA
}

// visitFunc sees every cell the ray enters, before the wall test, with the
// ray length at which it was entered. Returning false stops further visits.
type visitFunc func(cell image.Point, distance float64) bool

// CastRay marches from origin along dir until it strikes a wall, leaves the
// grid, or exceeds the render distance.
func (r *Raycaster) CastRay(origin, dir vec.Vector2) Hit {
	return r.march(origin, dir, nil)
}

func (r *Raycaster) march(origin, dir vec.Vector2, visit visitFunc) Hit {
	if dir.X == 0 && dir.Y == 0 {
		return Hit{}
	}

	mapX, mapY := origin.Floor()

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if dir.X != 0 {
		deltaX = math.Abs(1 / dir.X)
	}
	if dir.Y != 0 {
		deltaY = math.Abs(1 / dir.Y)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dir.X < 0 {
		stepX = -1
		sideX = (origin.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - origin.X) * deltaX
	}
	if dir.Y < 0 {
		stepY = -1
		sideY = (origin.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - origin.Y) * deltaY
	}
	if dir.X == 0 {
		sideX = math.Inf(1)
	}
	if dir.Y == 0 {
		sideY = math.Inf(1)
	}

	// a ray crosses at most width+height cell boundaries inside the grid
	limit := r.grid.Width() + r.grid.Height() + 2
	side := 0
	for i := 0; i < limit; i++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = 0
		} else {
			sideY += deltaY
			mapY += stepY
			side = 1
		}

		if !r.grid.InBounds(mapX, mapY) {
			return Hit{}
		}

		var dist float64
		if side == 0 {
			dist = (float64(mapX) - origin.X + float64(1-stepX)/2) / dir.X
		} else {
			dist = (float64(mapY) - origin.Y + float64(1-stepY)/2) / dir.Y
		}
		if r.maxDistance > 0 && dist > r.maxDistance {
			return Hit{}
		}

		cell := image.Pt(mapX, mapY)
		if visit != nil && !visit(cell, dist) {
			visit = nil
		}

		mc, _ := r.grid.Cell(mapX, mapY)
		if mc.Solid != level.Wall {
			continue
		}

		var wallX float64
		if side == 0 {
			wallX = origin.Y + dist*dir.Y
		} else {
			wallX = origin.X + dist*dir.X
		}

		return Hit{
			Hit:      true,
			Cell:     cell,
			Side:     side,
			Step:     image.Pt(stepX, stepY),
			Distance: dist,
			WallX:    wallX,
			Color:    mc.Color,
		}
	}
	return Hit{}
}
