// Package config defines the YAML-driven configuration cmd/neovm loads at
// startup: which storage backend backs the ledger facade, and which
// ancillary services (debugger, websocket server, metrics) are enabled.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StorageType selects the backing store a Chain runs on.
type StorageType string

// The two storage backends pkg/core/storage provides.
const (
	InMemoryDB StorageType = "inmemory"
	BoltDB     StorageType = "bolt"
)

// DBConfiguration picks and parameterizes the ledger facade's storage
// backend.
type DBConfiguration struct {
	Type string `yaml:"Type"`
	Path string `yaml:"Path"`
}

// BasicService is the common shape of an optional network-facing service:
// a bind address and whether it runs at all.
type BasicService struct {
	Enabled bool   `yaml:"Enabled"`
	Address string `yaml:"Address"`
}

// ApplicationConfiguration is everything about how this process runs, as
// opposed to the protocol rules its scripts execute under.
type ApplicationConfiguration struct {
	DBConfiguration DBConfiguration `yaml:"DBConfiguration"`
	LogLevel        string          `yaml:"LogLevel"`
	Prometheus      BasicService    `yaml:"Prometheus"`
	Serve           BasicService    `yaml:"Serve"`
}

// Config is the top-level document cmd/neovm loads via --config.
type Config struct {
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
}

// Version is the build-time version string, set via -ldflags by release
// builds; empty in development builds.
var Version string

// Default returns the configuration cmd/neovm runs with when no --config
// flag is given: an in-memory store, no ancillary services.
func Default() Config {
	return Config{
		ApplicationConfiguration: ApplicationConfiguration{
			DBConfiguration: DBConfiguration{Type: string(InMemoryDB)},
			LogLevel:        "info",
		},
	}
}

// Load reads and parses the YAML document at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
