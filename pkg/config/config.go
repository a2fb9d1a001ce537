// Package config loads lineal settings from YAML or INI-style (gcfg) files.
// Values missing from a file keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalid       = errors.New("invalid config")
)

// Format identifies a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatINI  Format = "ini"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ini", ".gcfg", ".conf":
		return FormatINI, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Duration is a time.Duration written as a string such as "5s" or "250ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) String() string { return time.Duration(d).String() }

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

type Eval struct {
	Timeout    Duration `yaml:"timeout" gcfg:"timeout"`
	MaxSamples int      `yaml:"max_samples" gcfg:"max-samples"`
	Precision  float64  `yaml:"precision" gcfg:"precision"`
}

type Render struct {
	Extent float64 `yaml:"extent" gcfg:"extent"`
}

type Log struct {
	Level    string `yaml:"level" gcfg:"level"`
	Encoding string `yaml:"encoding" gcfg:"encoding"`
}

// Config is the full set of settings. In INI files each struct is a
// section: [eval], [render], [log].
type Config struct {
	Eval   Eval   `yaml:"eval"`
	Render Render `yaml:"render"`
	Log    Log    `yaml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Eval: Eval{
			Timeout:    Duration(5 * time.Second),
			MaxSamples: 1000,
			Precision:  1.0,
		},
		Render: Render{Extent: 10},
		Log:    Log{Level: "info", Encoding: "console"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes data in the given format over the defaults and validates
// the result.
func Parse(format Format, data []byte) (*Config, error) {
	c := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; defaults stand.
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatINI:
		if err := gcfg.ReadStringInto(c, string(data)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings the engine or renderer cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Eval.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("eval.timeout must be positive, got %s", c.Eval.Timeout))
	}
	if c.Eval.MaxSamples <= 0 {
		errs = append(errs, fmt.Errorf("eval.max_samples must be positive, got %d", c.Eval.MaxSamples))
	}
	if !positiveFinite(c.Eval.Precision) {
		errs = append(errs, fmt.Errorf("eval.precision must be positive, got %g", c.Eval.Precision))
	}
	if !positiveFinite(c.Render.Extent) {
		errs = append(errs, fmt.Errorf("render.extent must be positive, got %g", c.Render.Extent))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		errs = append(errs, fmt.Errorf("log.encoding must be json or console, got %q", c.Log.Encoding))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
