package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"ropesim/internal/geom"
	"ropesim/internal/logging"
	"ropesim/internal/rope"
)

// Config holds the parameters of a simulation run.
type Config struct {
	RopeLength int    `yaml:"rope_length" mapstructure:"rope_length"`
	Origin     Origin `yaml:"origin" mapstructure:"origin"`
	Input      string `yaml:"input" mapstructure:"input"`
	Trace      bool   `yaml:"trace" mapstructure:"trace"`
	Metrics    bool   `yaml:"metrics" mapstructure:"metrics"`
	LogLevel   string `yaml:"log_level" mapstructure:"log_level"`
}

type Origin struct {
	X int `yaml:"x" mapstructure:"x"`
	Y int `yaml:"y" mapstructure:"y"`
}

func (o Origin) Point() geom.Point { return geom.Pt(o.X, o.Y) }

// Default returns the classic head/tail setup.
func Default() Config {
	return Config{RopeLength: 2, Input: "-", LogLevel: "info"}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseOverrides turns key=value pairs into a nested map. Dotted keys such
// as origin.x address nested fields.
func ParseOverrides(pairs []string) (map[string]any, error) {
	out := map[string]any{}
	for _, kv := range pairs {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		parts := strings.Split(key, ".")
		m := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}
		m[parts[len(parts)-1]] = val
	}
	return out, nil
}

// Apply decodes overrides into c. Values may be strings; they are converted
// to the field types.
func (c *Config) Apply(overrides map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}
	return nil
}

// Validate checks the parameters before a simulation is built.
func (c Config) Validate() error {
	if err := rope.CheckLength(c.RopeLength); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return &rope.ConfigurationError{Param: "log level", Value: c.LogLevel, Reason: "unknown level", Err: err}
	}
	return nil
}
