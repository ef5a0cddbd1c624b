package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcaster/model"
)

var moveBindings = []struct {
	dir  model.Direction
	keys []ebiten.Key
}{
	{model.Up, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{model.Down, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{model.Left, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{model.Right, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) handleInput() error {
	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.paused = false
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
			g.paused = true
		}
	}

	// if escape, exit game
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.paused {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.state.MapToggle = !g.state.MapToggle
	}

	// shift swaps in the run acceleration for this tick
	g.state.Acceleration = g.settings.Movement.Acceleration
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.state.Acceleration = g.settings.Movement.RunAcceleration
	}

	for _, b := range moveBindings {
		if anyPressed(b.keys) {
			g.state.ChangeDirection(b.dir)
		}
	}

	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)

		// reset initial mouse capture position
		g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
	}

	x, y := ebiten.CursorPosition()
	if g.mouseX == math.MinInt32 && g.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 && y != 0 {
			g.mouseX, g.mouseY = x, y
		}
		return nil
	}

	dx, dy := x-g.mouseX, y-g.mouseY
	g.mouseX, g.mouseY = x, y
	if dx != 0 || dy != 0 {
		g.state.ChangeDirection(model.Mouse(float64(dx), float64(dy)))
	}
	return nil
}
