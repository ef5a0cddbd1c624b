package model

import (
	"github.com/jinzhu/copier"

	"gridcaster/level"
	"gridcaster/vec"
)

const (
	DefaultAcceleration  = 0.1
	DefaultRotationSpeed = 0.001
	DefaultDamping       = 0.8
	DefaultPitch         = 0.5
	DefaultChaseRadius   = 40.0
	DefaultEnemyThrust   = 0.05
)

// Player pose. Pitch is a vertical look shear in the open interval (0, 1).
type Player struct {
	Pos   vec.Vector2
	Dir   vec.Vector2
	Vel   vec.Vector2
	Pitch float64
}

func NewPlayer(x, y float64) Player {
	return Player{
		Pos:   vec.New(x, y),
		Dir:   vec.New(1, 0),
		Pitch: DefaultPitch,
	}
}

type Enemy struct {
	Pos         vec.Vector2
	Vel         vec.Vector2
	Dir         vec.Vector2
	State       EnemyState
	Billboard   *level.Texture
	LineOfSight bool
}

func NewEnemy(x, y float64, billboard *level.Texture) Enemy {
	return Enemy{
		Pos:       vec.New(x, y),
		Dir:       vec.New(1, 0),
		State:     Stalking,
		Billboard: billboard,
	}
}

// GameState is everything the frame loop mutates between frames.
type GameState struct {
	Player    Player
	Enemy     Enemy
	MapToggle bool

	// tunables, set by the input layer every tick
	Acceleration  float64
	RotationSpeed float64
	Damping       float64

	EnemyThrust float64
	ChaseRadius float64
	Decide      Decider
}

func NewGameState(player Player, enemy Enemy) *GameState {
	return &GameState{
		Player:        player,
		Enemy:         enemy,
		Acceleration:  DefaultAcceleration,
		RotationSpeed: DefaultRotationSpeed,
		Damping:       DefaultDamping,
		EnemyThrust:   DefaultEnemyThrust,
		ChaseRadius:   DefaultChaseRadius,
		Decide:        DefaultDecider,
	}
}

// Snapshot returns a shallow copy of the state for one frame. Textures are
// shared; they are never written after loading.
func (s *GameState) Snapshot() GameState {
	var snap GameState
	if err := copier.Copy(&snap, s); err != nil {
		return *s
	}
	return snap
}
