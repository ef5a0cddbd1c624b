package assets

import (
	"testing"

	"gridcaster/level"
	"gridcaster/model"
	"gridcaster/vec"
)

func TestDefaultMap(t *testing.T) {
	g, err := level.Load(FS, Map)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g.Width() != 160 || g.Height() != 120 {
		t.Fatalf("Expected a 160x120 map, got %dx%d", g.Width(), g.Height())
	}

	for x := 0; x < g.Width(); x++ {
		if !g.Solid(x, 0) || !g.Solid(x, g.Height()-1) {
			t.Fatalf("Expected a closed border at column %d", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if !g.Solid(0, y) || !g.Solid(g.Width()-1, y) {
			t.Fatalf("Expected a closed border at row %d", y)
		}
	}

	// the default spawns: the origin nudges to (1,1), the enemy starts centred
	if pos, ok := model.Recover(vec.New(0, 0), g); !ok || pos != vec.New(1, 1) {
		t.Errorf("Expected origin spawn to recover to (1,1), got %+v (%t)", pos, ok)
	}
	if x, y, ok := g.Spawn(0, 0); !ok || x != 1.5 || y != 1.5 {
		t.Errorf("Expected origin spawn to move to (1.5,1.5), got (%f,%f) %t", x, y, ok)
	}
	if !g.Passable(g.Width()/2, g.Height()/2) {
		t.Error("Expected the map centre to be open")
	}
}

func TestDefaultTextures(t *testing.T) {
	for _, name := range []string{Wall, Billboard} {
		tex, err := level.LoadTexture(FS, name)
		if err != nil {
			t.Fatalf("LoadTexture(%s) failed: %v", name, err)
		}
		if tex.Width() == 0 || tex.Height() == 0 {
			t.Errorf("Expected %s to have pixels", name)
		}
	}

	bb, _ := level.LoadTexture(FS, Billboard)
	if bb.At(0, 0).A != 0 {
		t.Error("Expected the billboard corner to be transparent")
	}
}
