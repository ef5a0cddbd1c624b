package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GRIDCASTER"

type ScreenSettings struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Scale  float64 `mapstructure:"scale"`
}

type RenderSettings struct {
	FOV                float64 `mapstructure:"fov"`
	Scale              float64 `mapstructure:"scale"`
	FogDensity         float64 `mapstructure:"fog_density"`
	FogShear           float64 `mapstructure:"fog_shear"`
	MaxDistance        float64 `mapstructure:"max_distance"`
	Workers            int     `mapstructure:"workers"`
	PerspectiveCorrect bool    `mapstructure:"perspective_correct"`
	Textured           bool    `mapstructure:"textured"`
	Backdrop           bool    `mapstructure:"backdrop"`
	OverlayFalloff     float64 `mapstructure:"overlay_falloff"`
}

type BillboardSettings struct {
	HalfWidth float64 `mapstructure:"half_width"`
	Scale     float64 `mapstructure:"scale"`
	Anchor    string  `mapstructure:"anchor"`
}

type MovementSettings struct {
	Acceleration    float64 `mapstructure:"acceleration"`
	RunAcceleration float64 `mapstructure:"run_acceleration"`
	RotationSpeed   float64 `mapstructure:"rotation_speed"`
	Damping         float64 `mapstructure:"damping"`
}

// PlayerSettings is the spawn point; an invalid spawn is nudged into the map.
type PlayerSettings struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// EnemySettings places the enemy; negative coordinates mean the map centre.
type EnemySettings struct {
	X           float64 `mapstructure:"x"`
	Y           float64 `mapstructure:"y"`
	ChaseRadius float64 `mapstructure:"chase_radius"`
	Thrust      float64 `mapstructure:"thrust"`
}

// AssetSettings names the images to load. With an empty Dir they are read
// from the embedded defaults.
type AssetSettings struct {
	Dir       string `mapstructure:"dir"`
	Map       string `mapstructure:"map"`
	Wall      string `mapstructure:"wall"`
	Billboard string `mapstructure:"billboard"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Settings struct {
	Screen    ScreenSettings    `mapstructure:"screen"`
	Render    RenderSettings    `mapstructure:"render"`
	Billboard BillboardSettings `mapstructure:"billboard"`
	Movement  MovementSettings  `mapstructure:"movement"`
	Player    PlayerSettings    `mapstructure:"player"`
	Enemy     EnemySettings     `mapstructure:"enemy"`
	Assets    AssetSettings     `mapstructure:"assets"`
	Log       LogSettings       `mapstructure:"log"`
	Overlay   bool              `mapstructure:"overlay"`

	// ConfigFile is the file that was read, if any.
	ConfigFile string `mapstructure:"-"`
}

var defaults = map[string]interface{}{
	"screen.width":  640,
	"screen.height": 400,
	"screen.scale":  2.0,

	"render.fov":                 60.0,
	"render.scale":               15.0,
	"render.fog_density":         0.0004,
	"render.fog_shear":           0.002,
	"render.max_distance":        0.0,
	"render.workers":             0,
	"render.perspective_correct": true,
	"render.textured":            true,
	"render.backdrop":            true,
	"render.overlay_falloff":     0.05,

	"billboard.half_width": 10.0,
	"billboard.scale":      1.0,
	"billboard.anchor":     "bottom",

	"movement.acceleration":     0.1,
	"movement.run_acceleration": 0.5,
	"movement.rotation_speed":   0.002,
	"movement.damping":          0.8,

	"player.x": 0.0,
	"player.y": 0.0,

	"enemy.x":            -1.0,
	"enemy.y":            -1.0,
	"enemy.chase_radius": 40.0,
	"enemy.thrust":       0.05,

	"assets.dir":       "",
	"assets.map":       "map.png",
	"assets.wall":      "wall.png",
	"assets.billboard": "billboard.png",

	"log.level":  "info",
	"log.format": "text",

	"overlay": false,
}

// flag name -> config key
var flagKeys = map[string]string{
	"width":      "screen.width",
	"height":     "screen.height",
	"scale":      "screen.scale",
	"fov":        "render.fov",
	"workers":    "render.workers",
	"no-texture": "render.textured",
	"assets":     "assets.dir",
	"map":        "assets.map",
	"log-level":  "log.level",
	"log-format": "log.format",
	"overlay":    "overlay",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gridcaster", pflag.ContinueOnError)
	// callers print Usage themselves
	fs.Usage = func() {}
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.Int("width", defaults["screen.width"].(int), "framebuffer width in pixels")
	fs.Int("height", defaults["screen.height"].(int), "framebuffer height in pixels")
	fs.Float64("scale", defaults["screen.scale"].(float64), "window scale factor")
	fs.Float64("fov", defaults["render.fov"].(float64), "field of view in degrees")
	fs.Int("workers", defaults["render.workers"].(int), "column workers, 0 for one per CPU")
	fs.Bool("no-texture", false, "flat-shade walls")
	fs.String("assets", defaults["assets.dir"].(string), "asset directory, empty for built-in assets")
	fs.String("map", defaults["assets.map"].(string), "map image inside the asset directory")
	fs.String("log-level", defaults["log.level"].(string), "log level")
	fs.String("log-format", defaults["log.format"].(string), "log format: text or json")
	fs.Bool("overlay", defaults["overlay"].(bool), "start in the top-down overlay")
	return fs
}

// Load resolves settings from defaults, an optional config file, the
// environment and finally the command line.
func Load(args []string) (*Settings, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	for name, key := range flagKeys {
		// --no-texture is inverted, handled below
		if name == "no-texture" {
			continue
		}
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	if noTex, _ := fs.GetBool("no-texture"); noTex {
		v.Set("render.textured", false)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfgFile, _ := fs.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	s.ConfigFile = v.ConfigFileUsed()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Usage returns the flag help text.
func Usage() string {
	return newFlagSet().FlagUsages()
}

var anchors = map[string]bool{"bottom": true, "center": true, "top": true}

// Validate reports every setting that would make the renderer misbehave.
func (s *Settings) Validate() error {
	var errs []error
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", s.Screen.Width, s.Screen.Height))
	}
	if s.Screen.Scale <= 0 {
		errs = append(errs, fmt.Errorf("screen scale %v must be positive", s.Screen.Scale))
	}
	if s.Render.FOV <= 0 || s.Render.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov %v must be in (0, 180)", s.Render.FOV))
	}
	if s.Render.Scale <= 0 {
		errs = append(errs, fmt.Errorf("render scale %v must be positive", s.Render.Scale))
	}
	if s.Render.FogDensity < 0 || s.Render.FogShear < 0 {
		errs = append(errs, errors.New("fog coefficients must not be negative"))
	}
	if s.Render.MaxDistance < 0 {
		errs = append(errs, fmt.Errorf("max distance %v must not be negative", s.Render.MaxDistance))
	}
	if s.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", s.Render.Workers))
	}
	if s.Movement.Damping <= 0 || s.Movement.Damping >= 1 {
		errs = append(errs, fmt.Errorf("damping %v must be in (0, 1)", s.Movement.Damping))
	}
	if s.Billboard.HalfWidth <= 0 {
		errs = append(errs, fmt.Errorf("billboard half width %v must be positive", s.Billboard.HalfWidth))
	}
	if !anchors[strings.ToLower(s.Billboard.Anchor)] {
		errs = append(errs, fmt.Errorf("billboard anchor %q must be bottom, center or top", s.Billboard.Anchor))
	}
	if s.Assets.Map == "" {
		errs = append(errs, errors.New("a map image is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
