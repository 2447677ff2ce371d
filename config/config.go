package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tsoliveira/batchdist/core/allocation"
	"github.com/tsoliveira/batchdist/core/metrics"
)

// Config is the full runtime configuration of one distribution run.
type Config struct {
	Inputs     InputsConfig      `json:"inputs"`
	Output     OutputConfig      `json:"output"`
	Allocation allocation.Config `json:"allocation"`
	Metrics    metrics.Config    `json:"metrics"`
}

// InputsConfig names the input files. Control is optional.
type InputsConfig struct {
	Buyers    string `json:"buyers"`
	Groupings string `json:"groupings"`
	Control   string `json:"control"`
}

// Validate checks the mandatory inputs are configured.
func (c InputsConfig) Validate() error {
	if c.Buyers == "" {
		return fmt.Errorf("inputs.buyers is required")
	}
	if c.Groupings == "" {
		return fmt.Errorf("inputs.groupings is required")
	}
	return nil
}

// OutputConfig names the report destination. An empty path writes the table
// to stdout.
type OutputConfig struct {
	Path string `json:"path"`
}

// Load reads the configuration file, applies environment overrides with the
// BD_ prefix, fills defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("BD_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "bd_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Allocation.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Inputs.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Allocation.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
