// Package config handles binding generation settings, loadable from a
// cbindgen.toml or cbindgen.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Layout selects how a backend renders a multi-item list.
type Layout string

const (
	// LayoutAuto attempts a horizontal rendering and falls back to vertical
	// when the line-length budget would be exceeded.
	LayoutAuto Layout = "auto"
	// LayoutHorizontal forces all items onto one line.
	LayoutHorizontal Layout = "horizontal"
	// LayoutVertical forces one item per line.
	LayoutVertical Layout = "vertical"
)

// ValidLayouts defines the allowed layout modes.
var ValidLayouts = []Layout{LayoutAuto, LayoutHorizontal, LayoutVertical}

// FunctionConfig holds function emission settings.
type FunctionConfig struct {
	// Args controls parameter list layout.
	Args Layout `toml:"args" yaml:"args"`
}

// JavaConfig holds settings specific to the Java JNA backend.
type JavaConfig struct {
	// Package is the Java package declaration; empty omits it.
	Package string `toml:"package" yaml:"package"`

	// InterfaceName names the generated library interface.
	InterfaceName string `toml:"interface_name" yaml:"interface_name"`

	// ExtraDefs is pass-through text inserted at the top of the interface
	// body.
	ExtraDefs string `toml:"extra_defs" yaml:"extra_defs"`
}

// Config is the resolved settings bundle consumed by backends.
type Config struct {
	// Header is emitted verbatim at the top of the output.
	Header string `toml:"header" yaml:"header"`

	// AutogenWarning is an optional do-not-edit comment.
	AutogenWarning string `toml:"autogen_warning" yaml:"autogen_warning"`

	// IncludeVersion adds a generated-with comment carrying Version.
	IncludeVersion bool `toml:"include_version" yaml:"include_version"`

	// LineLength is the budget for horizontal list rendering.
	LineLength int `toml:"line_length" yaml:"line_length"`

	Function FunctionConfig `toml:"function" yaml:"function"`
	Java     JavaConfig     `toml:"java" yaml:"java"`
}

// Default returns a Config with the standard defaults applied.
func Default() *Config {
	return &Config{
		LineLength: 100,
		Function:   FunctionConfig{Args: LayoutAuto},
	}
}

// InterfaceName returns the configured interface name or "Bindings".
func (c *Config) InterfaceName() string {
	if c.Java.InterfaceName != "" {
		return c.Java.InterfaceName
	}
	return "Bindings"
}

// Load reads a config file, chosen by extension (.toml, .yaml or .yml), and
// applies defaults for unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml or .yaml)", filepath.Ext(path))
	}

	if cfg.LineLength <= 0 {
		cfg.LineLength = 100
	}
	if cfg.Function.Args == "" {
		cfg.Function.Args = LayoutAuto
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for unrecognized option values.
func (c *Config) Validate() error {
	if !isValidLayout(c.Function.Args) {
		return fmt.Errorf("invalid function.args layout %q: must be one of %v", c.Function.Args, ValidLayouts)
	}
	return nil
}

func isValidLayout(l Layout) bool {
	for _, v := range ValidLayouts {
		if l == v {
			return true
		}
	}
	return false
}
