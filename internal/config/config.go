package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/brownian/internal/walk"
)

const (
	DefaultParticles = 3
	DefaultSteps     = 500
	DefaultMaxStep   = 1
	DefaultDim       = 3
	DefaultTheme     = "cyberpunk"
	DefaultWidth     = 80
	DefaultHeight    = 24
	DefaultLogLevel  = "info"
)

// Limit bounds one numeric input and the increment used to step it.
type Limit struct {
	Min, Max, Step int
}

func (l Limit) Clamp(v int) int {
	if v < l.Min {
		return l.Min
	}
	if v > l.Max {
		return l.Max
	}
	return v
}

// Input ranges for interactive entry.
var (
	StepsLimit     = Limit{Min: 0, Max: 5000, Step: 100}
	ParticlesLimit = Limit{Min: 0, Max: 10, Step: 1}
	MaxStepLimit   = Limit{Min: 0, Max: 10, Step: 1}
)

type Config struct {
	Particles int    `yaml:"particles" env:"BROWNIAN_PARTICLES"`
	Steps     int    `yaml:"steps" env:"BROWNIAN_STEPS"`
	MaxStep   int    `yaml:"max_step" env:"BROWNIAN_MAX_STEP"`
	Seed      uint64 `yaml:"seed" env:"BROWNIAN_SEED"`
	Dim       int    `yaml:"dim" env:"BROWNIAN_DIM"`
	Theme     string `yaml:"theme" env:"BROWNIAN_THEME"`
	Width     int    `yaml:"width" env:"BROWNIAN_WIDTH"`
	Height    int    `yaml:"height" env:"BROWNIAN_HEIGHT"`
	LogLevel  string `yaml:"log_level" env:"BROWNIAN_LOG_LEVEL"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles: DefaultParticles,
		Steps:     DefaultSteps,
		MaxStep:   DefaultMaxStep,
		Dim:       DefaultDim,
		Theme:     DefaultTheme,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		LogLevel:  DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the yaml file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from BROWNIAN_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Params() walk.Params {
	return walk.Params{
		Particles: c.Particles,
		Steps:     c.Steps,
		MaxStep:   c.MaxStep,
	}
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Dim != 2 && c.Dim != 3 {
		return fmt.Errorf("dim must be 2 or 3, got %d", c.Dim)
	}
	if c.Width < 10 || c.Height < 5 {
		return fmt.Errorf("plot area %dx%d is too small", c.Width, c.Height)
	}
	return nil
}

// ResolveSeed replaces a zero seed with a freshly drawn one.
func (c *Config) ResolveSeed() error {
	if c.Seed != 0 {
		return nil
	}
	seed, err := NewSeed()
	if err != nil {
		return err
	}
	c.Seed = seed
	return nil
}
