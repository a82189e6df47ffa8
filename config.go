package hyper

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the parameters of a run. Scale is in world units per screen
// pixel; Speed is the velocity magnitude per held direction key per tick.
type Config struct {
	Scale      float64
	Speed      float64
	AgentCount int
	Width      int
	Height     int
	TPS        int
	Title      string
}

// DefaultConfig are the default parameters.
var DefaultConfig = Config{
	Scale:      0.02,
	Speed:      10,
	AgentCount: 3,
	Width:      1000,
	Height:     700,
	TPS:        33,
	Title:      "hyper",
}

// LoadConfig parses the TOML config file whose path is provided.
// Values present in the file overwrite the defaults.
func LoadConfig(path string) (*Config, error) {
	conf := DefaultConfig
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &conf, nil
}

// Validate checks the startup preconditions. A violation is fatal at
// startup; nothing here is recoverable at runtime.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	}
	if c.AgentCount < 1 || c.AgentCount > len(DefaultSchemes) {
		return fmt.Errorf("agent count must be between 1 and %d, got %d", len(DefaultSchemes), c.AgentCount)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	return nil
}
