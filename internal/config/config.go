// Package config provides YAML-based configuration for ocelot: logging,
// which board to load, range rules, teams, storage and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

// Config contains all ocelot configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Teams   []TeamConfig  `yaml:"teams"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// LogConfig defines logger parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// BoardConfig selects the active board.
type BoardConfig struct {
	ID  string `yaml:"id"`
	Dir string `yaml:"dir"` // Extra board files; empty means built-in only
}

// RulesConfig defines spatial query rules.
type RulesConfig struct {
	RangeShape string `yaml:"range_shape"` // "hex" or "rectangle"
}

// TeamConfig assigns a fixed movement direction to a team.
type TeamConfig struct {
	Name     string       `yaml:"name"`
	Movement hex.Movement `yaml:"movement"`
}

// StorageConfig defines the SQLite database location.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig defines SSH server parameters for the remote explorer.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Board: BoardConfig{ID: "skirmish"},
		Rules: RulesConfig{RangeShape: grid.ShapeHex.String()},
		Teams: []TeamConfig{
			{Name: "red", Movement: hex.LeftToRight},
			{Name: "blue", Movement: hex.RightToLeft},
		},
		Storage: StorageConfig{Path: "~/.ocelot/ocelot.db"},
		SSH: SSHConfig{
			Address:            "localhost:23235",
			HostKey:            ".ssh/ocelot_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}

// RangeShape parses the configured range shape.
func (c Config) RangeShape() (grid.RangeShape, error) {
	return grid.ParseRangeShape(c.Rules.RangeShape)
}

// Validate checks the configuration for values that cannot be used.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.RangeShape(); err != nil {
		errs = append(errs, fmt.Errorf("rules.range_shape: %w", err))
	}

	seen := make(map[string]bool, len(c.Teams))
	for i, t := range c.Teams {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("teams[%d]: name is required", i))
			continue
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("teams[%d]: duplicate team name %q", i, t.Name))
		}
		seen[t.Name] = true
		if !t.Movement.Valid() {
			errs = append(errs, fmt.Errorf("teams[%d]: %w", i, hex.ErrUnknownMovement))
		}
	}

	if c.SSH.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout_minutes must be >= 0, got %d", c.SSH.IdleTimeoutMinutes))
	}

	return errors.Join(errs...)
}
