package model

import (
	"math"

	"gridcaster/vec"
)

type EnemyState int

const (
	Stalking EnemyState = iota
	Chasing
	Hiding
)

func (s EnemyState) String() string {
	switch s {
	case Chasing:
		return "chasing"
	case Hiding:
		return "hiding"
	default:
		return "stalking"
	}
}

// Decider picks the enemy's next state. It must not mutate the state.
type Decider func(s *GameState, c Collider) EnemyState

// DefaultDecider chases when it can see the player nearby, backs off when it
// is seen from afar, and otherwise creeps closer.
func DefaultDecider(s *GameState, c Collider) EnemyState {
	if !s.Enemy.LineOfSight {
		return Stalking
	}
	if s.Enemy.Pos.Sub(s.Player.Pos).Len() <= s.ChaseRadius {
		return Chasing
	}
	return Hiding
}

// LineOfSight walks from one point to another in quarter-cell steps and
// reports whether every sampled cell is open.
func LineOfSight(from, to vec.Vector2, c Collider) bool {
	delta := to.Sub(from)
	dist := delta.Len()
	if dist == 0 {
		return IsValidPosition(from, c)
	}

	steps := int(math.Ceil(dist * 4))
	step := delta.Scale(1 / float64(steps))
	p := from
	for i := 0; i <= steps; i++ {
		if !IsValidPosition(p, c) {
			return false
		}
		p = p.Add(step)
	}
	return true
}

func (s *GameState) updateEnemy(c Collider) {
	e := &s.Enemy
	if !IsValidPosition(e.Pos, c) {
		e.Pos, _ = Recover(e.Pos, c)
	}

	e.LineOfSight = LineOfSight(e.Pos, s.Player.Pos, c)
	decide := s.Decide
	if decide == nil {
		decide = DefaultDecider
	}
	e.State = decide(s, c)

	toward := s.Player.Pos.Sub(e.Pos).Normalize()
	switch e.State {
	case Chasing:
		e.Vel.AddAssign(toward.Scale(s.EnemyThrust))
	case Hiding:
		e.Vel.SubAssign(toward.Scale(s.EnemyThrust))
	case Stalking:
		e.Vel.AddAssign(toward.Scale(s.EnemyThrust / 2))
	}
	if heading := e.Vel.Normalize(); heading != (vec.Vector2{}) {
		e.Dir = heading
	}

	e.Pos = slide(e.Pos, e.Vel, c)
	e.Vel.ScaleAssign(s.Damping)
}
