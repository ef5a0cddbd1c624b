package model

import (
	"math"

	"gridcaster/vec"
)

// Collider is the read-only view of the map the integrator needs.
type Collider interface {
	Width() int
	Height() int
	Passable(x, y int) bool
}

// DirectionKind is one of the discrete intents of the input layer.
type DirectionKind int

const (
	MoveUp DirectionKind = iota
	MoveDown
	StrafeLeft
	StrafeRight
	Look
)

// Direction is a movement or look intent; DX and DY are only set for Look.
type Direction struct {
	Kind   DirectionKind
	DX, DY float64
}

var (
	Up    = Direction{Kind: MoveUp}
	Down  = Direction{Kind: MoveDown}
	Left  = Direction{Kind: StrafeLeft}
	Right = Direction{Kind: StrafeRight}
)

// Mouse is a look intent from a pointer delta.
func Mouse(dx, dy float64) Direction {
	return Direction{Kind: Look, DX: dx, DY: dy}
}

// IsValidPosition reports whether pos lies in an empty in-bounds cell.
func IsValidPosition(pos vec.Vector2, c Collider) bool {
	if pos.X < 0 || pos.Y < 0 || math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		return false
	}
	return c.Passable(int(pos.X), int(pos.Y))
}

// Recover nudges pos diagonally one cell at a time until it lands on an
// empty cell. It gives up after crossing the whole map and returns pos
// unchanged with false.
func Recover(pos vec.Vector2, c Collider) (vec.Vector2, bool) {
	limit := c.Width()
	if c.Height() > limit {
		limit = c.Height()
	}
	// negative coordinates need extra steps to reach the map
	if pos.X < 0 || pos.Y < 0 {
		limit += int(math.Ceil(math.Max(-pos.X, -pos.Y)))
	}

	p := pos
	for i := 0; i <= limit; i++ {
		if IsValidPosition(p, c) {
			return p, true
		}
		p.AddScalar(1)
	}
	return pos, false
}

// slide moves pos by vel one axis at a time, committing each axis only when
// the resulting cell is open.
func slide(pos, vel vec.Vector2, c Collider) vec.Vector2 {
	nextX := vec.New(pos.X+vel.X, pos.Y)
	if IsValidPosition(nextX, c) {
		pos = nextX
	}
	nextY := vec.New(pos.X, pos.Y+vel.Y)
	if IsValidPosition(nextY, c) {
		pos = nextY
	}
	return pos
}

// UpdatePositions advances the player and the enemy one tick against the map.
func (s *GameState) UpdatePositions(c Collider) {
	s.updatePlayer(c)
	s.updateEnemy(c)
}

func (s *GameState) updatePlayer(c Collider) {
	if !IsValidPosition(s.Player.Pos, c) {
		s.Player.Pos, _ = Recover(s.Player.Pos, c)
	}
	s.Player.Pos = slide(s.Player.Pos, s.Player.Vel, c)
	s.Player.Vel.ScaleAssign(s.Damping)
}

// ChangeDirection applies one input intent to the player.
func (s *GameState) ChangeDirection(d Direction) {
	p := &s.Player
	switch d.Kind {
	case MoveUp:
		p.Vel.AddAssign(p.Dir.Scale(s.Acceleration))
	case MoveDown:
		p.Vel.SubAssign(p.Dir.Scale(s.Acceleration))
	case StrafeLeft:
		p.Vel.AddAssign(p.Dir.Orthogonal(vec.Left).Scale(s.Acceleration))
	case StrafeRight:
		p.Vel.AddAssign(p.Dir.Orthogonal(vec.Right).Scale(s.Acceleration))
	case Look:
		if d.DX != 0 {
			if dir := p.Dir.Rotate(d.DX * s.RotationSpeed).Normalize(); dir != (vec.Vector2{}) {
				p.Dir = dir
			}
		}
		pitch := p.Pitch - d.DY*s.RotationSpeed
		if pitch > 0 && pitch < 1 {
			p.Pitch = pitch
		}
	}
}
