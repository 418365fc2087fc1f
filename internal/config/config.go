// Package config loads the gravity CLI configuration: a log level and a
// catalog of bodies.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/gravity/internal/observability/log"
	"github.com/zeusync/gravity/pkg/math3d"
	"github.com/zeusync/gravity/pkg/space"
)

// ErrInvalidConfig marks configuration values that decode but make no sense.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level YAML document.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Bodies   []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes one body of the catalog.
type BodyConfig struct {
	ID       string         `yaml:"id,omitempty"`
	Name     string         `yaml:"name,omitempty"`
	Mass     float64        `yaml:"mass"`
	Location LocationConfig `yaml:"location"`
	// Velocity is any numeric sequence; it is validated by math3d.Parse.
	Velocity any `yaml:"velocity,omitempty"`
}

// LocationConfig is a planar position.
type LocationConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load decodes a YAML configuration from r.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, err
	}
	return &c, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Level returns the configured log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

// Masses builds the configured bodies in declaration order.
func (c *Config) Masses() ([]*space.Mass, error) {
	masses := make([]*space.Mass, 0, len(c.Bodies))
	seen := make(map[string]struct{}, len(c.Bodies))

	for idx, body := range c.Bodies {
		m, err := body.build()
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", idx, body.label(), err)
		}
		if _, dup := seen[m.ID()]; dup {
			return nil, fmt.Errorf("body %d (%s): %w: duplicate id %q", idx, body.label(), ErrInvalidConfig, m.ID())
		}
		seen[m.ID()] = struct{}{}
		masses = append(masses, m)
	}
	return masses, nil
}

func (b BodyConfig) build() (*space.Mass, error) {
	if b.Mass < 0 {
		return nil, fmt.Errorf("%w: negative mass %g", ErrInvalidConfig, b.Mass)
	}

	var velocity math3d.Vector
	if b.Velocity != nil {
		v, err := math3d.Parse(b.Velocity)
		if err != nil {
			return nil, fmt.Errorf("%w: velocity: %w", ErrInvalidConfig, err)
		}
		velocity = v
	}

	return space.NewMass(
		b.Mass,
		space.NewLocation(b.Location.X, b.Location.Y),
		velocity,
		space.WithID(b.ID),
		space.WithName(b.Name),
	), nil
}

func (b BodyConfig) label() string {
	if b.Name != "" {
		return b.Name
	}
	if b.ID != "" {
		return b.ID
	}
	return "unnamed"
}
