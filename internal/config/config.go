// Package config gathers the startup configuration: embedded defaults,
// command-line flags and environment overrides.
package config

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"lavalamp/internal/sim"
	"lavalamp/internal/ui"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed defaults.toml
var defaultsTOML string

// SeedEnv overrides the spawn RNG seed when set to an unsigned integer.
const SeedEnv = "LAVALAMP_SEED"

// Defaults mirrors defaults.toml.
type Defaults struct {
	Title    string `toml:"title"`
	Settings struct {
		Speed      float32    `toml:"speed"`
		BallRadius float32    `toml:"ball_radius"`
		Color      [3]float32 `toml:"color"`
		ShowPanel  bool       `toml:"show_panel"`
	} `toml:"settings"`
	Sliders struct {
		Speed      SliderRange `toml:"speed"`
		BallRadius SliderRange `toml:"ball_radius"`
	} `toml:"sliders"`
	Window struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"window"`
}

type SliderRange struct {
	Min  float32 `toml:"min"`
	Max  float32 `toml:"max"`
	Step float32 `toml:"step"`
}

func (r SliderRange) Range() ui.Range {
	return ui.Range{Min: r.Min, Max: r.Max, Step: r.Step}
}

// LoadDefaults decodes the embedded defaults.
func LoadDefaults() (Defaults, error) {
	return decodeDefaults(defaultsTOML)
}

func decodeDefaults(src string) (Defaults, error) {
	var d Defaults
	md, err := toml.Decode(src, &d)
	if err != nil {
		return Defaults{}, fmt.Errorf("decode defaults: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Defaults{}, fmt.Errorf("decode defaults: unknown key %q", undec[0].String())
	}
	for _, r := range []SliderRange{d.Sliders.Speed, d.Sliders.BallRadius} {
		if r.Max < r.Min || r.Step < 0 {
			return Defaults{}, fmt.Errorf("decode defaults: bad slider range %+v", r)
		}
	}
	return d, nil
}

// InitialSettings returns the frame-loop settings at startup.
func (d Defaults) InitialSettings() sim.Settings {
	c := d.Settings.Color
	return sim.Settings{
		Speed:      d.Settings.Speed,
		BallRadius: d.Settings.BallRadius,
		Color:      mgl32.Vec3{c[0], c[1], c[2]},
		ShowPanel:  d.Settings.ShowPanel,
	}
}

// Config represents the command-line parameters for the application.
type Config struct {
	Windowed bool
	Seed     uint64
	Mute     bool
	Volume   float64
	UIScale  int
}

// NewConfig returns a Config populated with sensible defaults. The seed
// comes from the clock.
func NewConfig() *Config {
	return &Config{Seed: uint64(time.Now().UnixNano()), Volume: 0.5}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.BoolVar(&c.Windowed, "windowed", c.Windowed, "open a window instead of going fullscreen")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for ball placement")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound cues")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound cue volume (0..1)")
	fs.IntVar(&c.UIScale, "ui-scale", c.UIScale, "settings panel scale, 0 picks one from the screen height")
}

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv in
// production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	s, ok := lookup(SeedEnv)
	if !ok || s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", SeedEnv, err)
	}
	c.Seed = v
	return nil
}

// Load builds a Config from defaults, the environment and args, in that
// order of increasing precedence.
func Load(args []string) (*Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet("lavalamp", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PanelScale resolves UIScale against the framebuffer height.
func (c *Config) PanelScale(fbH int) int {
	if c.UIScale > 0 {
		return c.UIScale
	}
	if fbH >= 1800 {
		return 2
	}
	return 1
}
