package caster

import (
	"errors"
	"image"
	"image/color"
	"math"
	"runtime"

	"github.com/harbdog/raycaster-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"gridcaster/engine"
	"gridcaster/level"
	"gridcaster/logger"
	"gridcaster/model"
)

const (
	DefaultFOV   = 60.0
	DefaultScale = 15.0
)

var (
	DefaultCeiling = color.RGBA{40, 44, 52, 255}
	DefaultFloor   = color.RGBA{70, 62, 54, 255}

	ErrNoFrame = errors.New("caster: frame is empty")
	ErrNoState = errors.New("caster: no game state")
)

// Raycaster owns the map grid and renders a game state into a frame. Draw
// is not safe for concurrent use; the column workers it starts write
// disjoint columns of the frame.
type Raycaster struct {
	grid *level.Grid
	wall *level.Texture

	fov            float64
	scale          float64
	fog            Fog
	maxDistance    float64
	workers        int
	correct        bool
	backdrop       bool
	ceiling, floor color.RGBA
	overlayFalloff float64

	billboardHalfWidth float64
	billboardScale     float64
	anchor             raycaster.SpriteAnchor

	depth  []float64
	center float64
}

type Option func(*Raycaster)

// WithFOV sets the horizontal field of view in degrees.
func WithFOV(degrees float64) Option {
	return func(r *Raycaster) { r.fov = degrees }
}

// WithScale sets the wall height constant.
func WithScale(k float64) Option {
	return func(r *Raycaster) { r.scale = k }
}

func WithFog(density, shear float64) Option {
	return func(r *Raycaster) { r.fog = Fog{Density: density, Shear: shear} }
}

// WithMaxDistance ends rays beyond d. Zero means unlimited.
func WithMaxDistance(d float64) Option {
	return func(r *Raycaster) { r.maxDistance = d }
}

// WithWorkers bounds the column fan-out. Zero uses one worker per CPU.
func WithWorkers(n int) Option {
	return func(r *Raycaster) { r.workers = n }
}

// WithPerspectiveCorrection multiplies distances by the cosine of the ray
// offset before projection and fog.
func WithPerspectiveCorrection(on bool) Option {
	return func(r *Raycaster) { r.correct = on }
}

// WithWallTexture samples walls from tex instead of flat cell colors.
func WithWallTexture(tex *level.Texture) Option {
	return func(r *Raycaster) { r.wall = tex }
}

// WithBackdrop fills above and below the sheared horizon before walls.
func WithBackdrop(ceiling, floor color.RGBA) Option {
	return func(r *Raycaster) {
		r.backdrop = true
		r.ceiling, r.floor = ceiling, floor
	}
}

func WithBillboard(halfWidth, scale float64, anchor raycaster.SpriteAnchor) Option {
	return func(r *Raycaster) {
		r.billboardHalfWidth = halfWidth
		r.billboardScale = scale
		r.anchor = anchor
	}
}

// WithOverlayFalloff sets the exponent of the overlay's distance fade.
func WithOverlayFalloff(k float64) Option {
	return func(r *Raycaster) { r.overlayFalloff = k }
}

func New(grid *level.Grid, opts ...Option) *Raycaster {
	r := &Raycaster{
		grid:               grid,
		fov:                DefaultFOV,
		scale:              DefaultScale,
		correct:            true,
		overlayFalloff:     0.1,
		billboardHalfWidth: DefaultBillboardHalfWidth,
		billboardScale:     1,
		anchor:             raycaster.AnchorBottom,
		center:             math.Inf(1),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}

	logger.Log.WithFields(logrus.Fields{
		"grid":     []int{grid.Width(), grid.Height()},
		"fov":      r.fov,
		"workers":  r.workers,
		"textured": r.wall != nil,
	}).Debug("raycaster ready")
	return r
}

// Depth is the corrected wall distance of column x from the last Draw, or
// +Inf when the column's ray found no wall.
func (r *Raycaster) Depth(x int) float64 {
	if x < 0 || x >= len(r.depth) {
		return math.Inf(1)
	}
	return r.depth[x]
}

// CenterDistance is the wall distance straight ahead in the last Draw.
func (r *Raycaster) CenterDistance() float64 {
	return r.center
}

// Draw renders one frame of s into f: the top-down overlay when the map
// toggle is set, the perspective view otherwise. The state is snapshotted
// first so the columns all see the same pose.
func (r *Raycaster) Draw(f *engine.Frame, s *model.GameState) error {
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return ErrNoFrame
	}
	if s == nil {
		return ErrNoState
	}
	snap := s.Snapshot()

	if snap.MapToggle {
		r.drawOverlay(f, &snap)
		return nil
	}

	if len(r.depth) != f.Width {
		r.depth = make([]float64, f.Width)
	}

	workers := r.workers
	if workers > f.Width {
		workers = f.Width
	}
	band := (f.Width + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < f.Width; lo += band {
		lo, hi := lo, lo+band
		if hi > f.Width {
			hi = f.Width
		}
		g.Go(func() error {
			for x := lo; x < hi; x++ {
				r.drawColumn(f, &snap, x)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r.center = r.depth[f.Width/2]
	return nil
}

// RayOffset is the angle in radians between the heading and the ray of
// column x on a screen w columns wide.
func (r *Raycaster) RayOffset(x, w int) float64 {
	return (r.fov/float64(w)*float64(x) - r.fov/2) * math.Pi / 180
}

func (r *Raycaster) drawColumn(f *engine.Frame, s *model.GameState, x int) {
	offset := r.RayOffset(x, f.Width)
	dir := s.Player.Dir.Rotate(offset)
	shear := s.Player.Pitch * float64(f.Height) / 2

	correction := 1.0
	if r.correct {
		correction = math.Cos(offset)
	}

	if r.backdrop {
		horizon := clampInt(f.Height/2+int(shear), 0, f.Height)
		if horizon > 0 {
			f.VerLine(x, 0, horizon-1, r.ceiling)
		}
		if horizon < f.Height {
			f.VerLine(x, horizon, f.Height-1, r.floor)
		}
	}

	var bb billboardHit
	var visit visitFunc
	if tex := s.Enemy.Billboard; tex != nil && tex.Height() > 0 {
		visit = func(cell image.Point, distance float64) bool {
			row, ok := BillboardIntersection(cell, s.Enemy.Pos, s.Player.Dir, r.billboardHalfWidth, tex.Height())
			if !ok {
				return true
			}
			bb = billboardHit{found: true, row: row, distance: distance * correction}
			return false
		}
	}

	hit := r.march(s.Player.Pos, dir, visit)
	if hit.Hit {
		// texture coordinates come from the raw ray length, projection and
		// fog from the corrected one
		dist := hit.Distance * correction
		r.depth[x] = dist
		r.drawWall(f, x, hit, dist, Project(dist, s.Player.Pitch, f.Height, r.scale))
	} else {
		r.depth[x] = math.Inf(1)
	}

	if bb.found {
		r.drawBillboardStrip(f, x, s.Enemy.Billboard, bb, s.Player.Pitch)
	}
}
