package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var crosshairColor = color.RGBA{255, 255, 255, 160}

func (g *Game) drawUI(screen *ebiten.Image) {
	// draw FPS/TPS counter debug display
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f/%v", ebiten.ActualFPS(), ebiten.ActualTPS(), ebiten.TPS()))

	p := g.state.Player
	e := g.state.Enemy
	ahead := "-"
	if d := g.caster.CenterDistance(); !math.IsInf(d, 0) {
		ahead = fmt.Sprintf("%0.1f", d)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pos: %0.1f,%0.1f  pitch: %0.2f  ahead: %s", p.Pos.X, p.Pos.Y, p.Pitch, ahead), 10, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("enemy: %s  sees you: %t", e.State, e.LineOfSight), 10, 56)

	ebitenutil.DebugPrintAt(screen, "WASD move, shift run, mouse look, M map, P pause", 10, g.height-36)
	ebitenutil.DebugPrintAt(screen, "ESC to exit", 10, g.height-20)

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.width/2-18, g.height/2-24)
	}

	if !g.state.MapToggle {
		cx, cy := float32(g.width)/2, float32(g.height)/2
		vector.StrokeLine(screen, cx-5, cy, cx+5, cy, 1, crosshairColor, false)
		vector.StrokeLine(screen, cx, cy-5, cx, cy+5, 1, crosshairColor, false)
	}
}
