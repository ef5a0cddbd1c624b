package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Screen.Width != 640 || s.Screen.Height != 400 {
		t.Errorf("Expected 640x400, got %dx%d", s.Screen.Width, s.Screen.Height)
	}
	if s.Render.FOV != 60 || s.Render.Scale != 15 {
		t.Errorf("Unexpected render defaults %+v", s.Render)
	}
	if !s.Render.Textured || !s.Render.PerspectiveCorrect {
		t.Error("Expected texturing and perspective correction on by default")
	}
	if s.Movement.Damping != 0.8 || s.Billboard.HalfWidth != 10 || s.Billboard.Anchor != "bottom" {
		t.Errorf("Unexpected defaults: %+v %+v", s.Movement, s.Billboard)
	}
	if s.ConfigFile != "" {
		t.Errorf("Expected no config file, got %q", s.ConfigFile)
	}
}

func TestLoadPriority(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridcaster.yaml")
	yaml := "screen:\n  width: 320\n  height: 200\nrender:\n  fov: 75\nmovement:\n  damping: 0.5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GRIDCASTER_RENDER_FOV", "90")
	t.Setenv("GRIDCASTER_LOG_LEVEL", "debug")

	s, err := Load([]string{"--config", path, "--width", "800", "--no-texture"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Screen.Width != 800 {
		t.Errorf("Expected flag to win for width, got %d", s.Screen.Width)
	}
	if s.Screen.Height != 200 {
		t.Errorf("Expected file height 200, got %d", s.Screen.Height)
	}
	if s.Render.FOV != 90 {
		t.Errorf("Expected env to beat the file for fov, got %v", s.Render.FOV)
	}
	if s.Movement.Damping != 0.5 {
		t.Errorf("Expected file damping 0.5, got %v", s.Movement.Damping)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Expected env log level, got %q", s.Log.Level)
	}
	if s.Render.Textured {
		t.Error("Expected --no-texture to disable texturing")
	}
	if s.ConfigFile != path {
		t.Errorf("Expected config file %q, got %q", path, s.ConfigFile)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("Expected an error for a missing config file")
	}
	if _, err := Load([]string{"--bogus"}); err == nil {
		t.Error("Expected an error for an unknown flag")
	}
	if _, err := Load([]string{"--help"}); !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("Expected pflag.ErrHelp, got %v", err)
	}
	if _, err := Load([]string{"--fov", "180"}); err == nil {
		t.Error("Expected fov 180 to be rejected")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Settings {
		s, err := Load(nil)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
		want   string
	}{
		{"zero width", func(s *Settings) { s.Screen.Width = 0 }, "screen size"},
		{"negative fov", func(s *Settings) { s.Render.FOV = -1 }, "fov"},
		{"damping one", func(s *Settings) { s.Movement.Damping = 1 }, "damping"},
		{"bad anchor", func(s *Settings) { s.Billboard.Anchor = "left" }, "anchor"},
		{"no map", func(s *Settings) { s.Assets.Map = "" }, "map image"},
		{"negative workers", func(s *Settings) { s.Render.Workers = -2 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestUsageListsFlags(t *testing.T) {
	usage := Usage()
	for _, name := range []string{"--config", "--fov", "--overlay"} {
		if !strings.Contains(usage, name) {
			t.Errorf("Expected usage to mention %s", name)
		}
	}
}
