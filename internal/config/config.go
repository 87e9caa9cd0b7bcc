// Package config resolves the directories and schema the tool works
// with. Values come from the environment with flag overrides applied by
// the command layer; components receive them explicitly instead of
// reading globals.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/CandleCat666/DB-dnd-suporter/api"
)

// Config holds the process configuration.
type Config struct {
	// DataDir holds one JSON file per entity kind.
	DataDir string `env:"RPGDB_DATA_DIR" envDefault:"data"`
	// CharsDir holds one JSON file per saved character.
	CharsDir string `env:"RPGDB_CHARS_DIR" envDefault:"characters"`
	// SchemaFile optionally replaces the built-in entity kinds.
	SchemaFile string `env:"RPGDB_SCHEMA"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `env:"RPGDB_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Kinds returns the entity kinds in effect: the schema file when
// configured, the built-in defaults otherwise.
func (c Config) Kinds() ([]api.Kind, error) {
	if c.SchemaFile == "" {
		return api.DefaultKinds(), nil
	}
	return LoadSchema(c.SchemaFile)
}

// LoadSchema reads a declarative HCL schema file into entity kinds.
func LoadSchema(path string) ([]api.Kind, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("schema file: %w", err)
	}
	var schema api.Schema
	if err := hclsimple.DecodeFile(path, nil, &schema); err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", path, err)
	}
	if len(schema.Kinds) == 0 {
		return nil, fmt.Errorf("schema %s defines no kinds", path)
	}
	return schema.Kinds, nil
}
