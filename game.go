package main

import (
	"fmt"
	"image/color"
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"gridcaster/caster"
	"gridcaster/config"
	"gridcaster/engine"
	"gridcaster/level"
	"gridcaster/logger"
	"gridcaster/model"
)

var background = color.RGBA{0, 0, 0, 255}

// main game object
type Game struct {
	paused bool

	settings *config.Settings

	//--framebuffer size in pixels--//
	width  int
	height int

	grid   *level.Grid
	caster *caster.Raycaster
	state  *model.GameState

	// pix backs frame and is uploaded as-is each Draw
	pix   []byte
	frame *engine.Frame

	mouseX, mouseY int

	lastEnemyState model.EnemyState
}

// NewGame loads the map and textures and builds the initial state. Any
// asset that fails to load is fatal to the caller.
func NewGame(s *config.Settings, assets fs.FS) (*Game, error) {
	grid, err := level.Load(assets, s.Assets.Map)
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"map":    s.Assets.Map,
		"width":  grid.Width(),
		"height": grid.Height(),
		"walls":  grid.CountWalls(),
	}).Info("map loaded")

	anchor, err := caster.ParseAnchor(s.Billboard.Anchor)
	if err != nil {
		return nil, err
	}

	opts := []caster.Option{
		caster.WithFOV(s.Render.FOV),
		caster.WithScale(s.Render.Scale),
		caster.WithFog(s.Render.FogDensity, s.Render.FogShear),
		caster.WithMaxDistance(s.Render.MaxDistance),
		caster.WithWorkers(s.Render.Workers),
		caster.WithPerspectiveCorrection(s.Render.PerspectiveCorrect),
		caster.WithOverlayFalloff(s.Render.OverlayFalloff),
		caster.WithBillboard(s.Billboard.HalfWidth, s.Billboard.Scale, anchor),
	}
	if s.Render.Backdrop {
		opts = append(opts, caster.WithBackdrop(caster.DefaultCeiling, caster.DefaultFloor))
	}
	if s.Render.Textured && s.Assets.Wall != "" {
		wall, err := level.LoadTexture(assets, s.Assets.Wall)
		if err != nil {
			return nil, err
		}
		opts = append(opts, caster.WithWallTexture(wall))
	}

	var billboard *level.Texture
	if s.Assets.Billboard != "" {
		billboard, err = level.LoadTexture(assets, s.Assets.Billboard)
		if err != nil {
			return nil, err
		}
	}

	enemyX, enemyY := s.Enemy.X, s.Enemy.Y
	if enemyX < 0 || enemyY < 0 {
		enemyX, enemyY = float64(grid.Width())/2, float64(grid.Height())/2
	}

	playerX, playerY, ok := grid.Spawn(s.Player.X, s.Player.Y)
	if !ok {
		logger.Log.Warn("map has no open cell, keeping the configured spawn")
		playerX, playerY = s.Player.X, s.Player.Y
	} else if playerX != s.Player.X || playerY != s.Player.Y {
		logger.Log.WithFields(logrus.Fields{
			"x": playerX,
			"y": playerY,
		}).Debug("spawn moved to the first open cell")
	}

	state := model.NewGameState(
		model.NewPlayer(playerX, playerY),
		model.NewEnemy(enemyX, enemyY, billboard),
	)
	state.MapToggle = s.Overlay
	state.Acceleration = s.Movement.Acceleration
	state.RotationSpeed = s.Movement.RotationSpeed
	state.Damping = s.Movement.Damping
	state.ChaseRadius = s.Enemy.ChaseRadius
	state.EnemyThrust = s.Enemy.Thrust

	pix := make([]byte, s.Screen.Width*s.Screen.Height*4)
	g := &Game{
		settings:       s,
		width:          s.Screen.Width,
		height:         s.Screen.Height,
		grid:           grid,
		caster:         caster.New(grid, opts...),
		state:          state,
		pix:            pix,
		frame:          engine.Wrap(pix, s.Screen.Width, s.Screen.Height),
		mouseX:         math.MinInt32,
		mouseY:         math.MinInt32,
		lastEnemyState: state.Enemy.State,
	}
	return g, nil
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	g.paused = false

	ebiten.SetWindowTitle("gridcaster")
	ebiten.SetWindowSize(
		int(float64(g.width)*g.settings.Screen.Scale),
		int(float64(g.height)*g.settings.Screen.Scale),
	)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	return ebiten.RunGame(g)
}

// Layout returns the fixed framebuffer size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	if !g.paused {
		g.state.UpdatePositions(g.grid)

		if st := g.state.Enemy.State; st != g.lastEnemyState {
			logger.Log.WithFields(logrus.Fields{
				"from": g.lastEnemyState,
				"to":   st,
				"x":    g.state.Enemy.Pos.X,
				"y":    g.state.Enemy.Pos.Y,
			}).Debug("enemy state changed")
			g.lastEnemyState = st
		}
	}
	return nil
}

// Draw renders the frame into our own buffer and presents it in one upload.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Clear(background)

	if err := g.caster.Draw(g.frame, g.state); err != nil {
		logger.Log.WithError(err).Error("frame skipped")
		return
	}
	screen.WritePixels(g.pix)

	g.drawUI(screen)
}
