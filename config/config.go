// Package config loads and applies declarative wiring: a versioned list of
// signal-to-slot connections by qualified endpoint name. Files are YAML;
// JSON parses too since YAML is a superset.
//
// Loading, validating and applying are separate steps so a caller can
// register endpoints between parse and apply:
//
//	cfg, err := config.Load("wiring.yaml")
//	...construct actions, registering their endpoints...
//	err = cfg.Apply(hub)
package config

import (
	"fmt"
	"os"

	"github.com/c360/signalkit/errors"
	"github.com/c360/signalkit/wire"
	"gopkg.in/yaml.v3"
)

// LinkConfig declares one connection between named endpoints. Names are the
// qualified "<owner>::<endpoint>" form the action layer registers.
type LinkConfig struct {
	Signal    string `yaml:"signal" json:"signal"`
	Slot      string `yaml:"slot" json:"slot"`
	Unchecked bool   `yaml:"unchecked,omitempty" json:"unchecked,omitempty"`
}

// Config is the complete wiring declaration.
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Links   []LinkConfig `yaml:"links" json:"links"`
}

// Load reads and parses a wiring file, then validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Config", "Load", "wiring file read")
	}
	return Parse(data)
}

// Parse decodes a wiring declaration from YAML or JSON bytes, then
// validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Parse", "wiring decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks structural soundness: every link names both endpoints and
// no (signal, slot) pair appears twice. Whether the names resolve is
// Apply's concern.
func (c *Config) Validate() error {
	seen := make(map[LinkConfig]int, len(c.Links))
	for i, link := range c.Links {
		if link.Signal == "" || link.Slot == "" {
			return errors.WrapInvalid(
				fmt.Errorf("link %d: %w", i, errors.ErrInvalidConfig),
				"Config", "Validate", "endpoint name check")
		}
		key := LinkConfig{Signal: link.Signal, Slot: link.Slot}
		if j, dup := seen[key]; dup {
			return errors.WrapInvalid(
				fmt.Errorf("links %d and %d both connect %q to %q: %w",
					j, i, link.Signal, link.Slot, errors.ErrInvalidConfig),
				"Config", "Validate", "duplicate link check")
		}
		seen[key] = i
	}
	return nil
}

// Apply connects every declared link through the hub's directories. The
// first unresolvable name aborts with an error identifying the entry;
// links applied before the failure stay connected, and since Connect is
// idempotent the caller may re-Apply after registering the missing
// endpoint.
func (c *Config) Apply(hub *wire.Hub) error {
	for i, link := range c.Links {
		var opts []wire.ConnectOption
		if link.Unchecked {
			opts = append(opts, wire.Unchecked())
		}
		if !hub.ConnectNamed(link.Signal, link.Slot, opts...) {
			return errors.WrapTransient(
				fmt.Errorf("link %d (%q -> %q): %w",
					i, link.Signal, link.Slot, errors.ErrAbsentEndpoint),
				"Config", "Apply", "named connect")
		}
	}
	return nil
}
