package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLayout = "rect"
	DefaultTheme  = "classic"
	DefaultFPS    = 30
	DefaultWidth  = 36
)

var (
	ErrUnknownPreset   = errors.New("config: unknown layout preset")
	ErrInvalidGeometry = errors.New("config: invalid row geometry")
	ErrUnknownLayout   = errors.New("config: unknown layout")
)

type Config struct {
	Layout    string      `yaml:"layout"`
	Theme     string      `yaml:"theme"`
	FPS       int         `yaml:"fps"`
	Width     int         `yaml:"width"`
	Timezone  string      `yaml:"timezone"`
	Rows      []RowConfig `yaml:"rows"`
	ShowDate  bool        `yaml:"show_date"`
	ShowSteps bool        `yaml:"show_steps"`
	StepsDB   string      `yaml:"steps_db"`
}

// RowConfig places one animated row. Y is the screen line, X the resting
// column, Delay the stagger in frames.
type RowConfig struct {
	Y     int  `yaml:"y"`
	X     int  `yaml:"x"`
	Delay int  `yaml:"delay"`
	Bold  bool `yaml:"bold"`
}

func DefaultConfig() *Config {
	cfg := GetPreset(DefaultLayout)
	cfg.Theme = DefaultTheme
	cfg.FPS = DefaultFPS
	cfg.ShowDate = true
	cfg.ShowSteps = true
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, ok := Presets[c.Layout]; !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownLayout, c.Layout, ListPresets())
	}
	if len(c.Rows) != 3 {
		return fmt.Errorf("%w: need 3 rows, got %d", ErrInvalidGeometry, len(c.Rows))
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidGeometry, c.Width)
	}
	for i, r := range c.Rows {
		if r.X < 0 || r.X >= c.Width {
			return fmt.Errorf("%w: row %d x=%d outside width %d", ErrInvalidGeometry, i, r.X, c.Width)
		}
		if r.Y < 0 {
			return fmt.Errorf("%w: row %d y=%d is above the first line", ErrInvalidGeometry, i, r.Y)
		}
		if r.Delay < 0 {
			return fmt.Errorf("%w: row %d has negative delay", ErrInvalidGeometry, i)
		}
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone; empty means local time.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// FrameInterval is the time between display frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

// Centered reports whether labels are centered rather than left aligned.
func (c *Config) Centered() bool {
	return c.Layout == "round"
}
