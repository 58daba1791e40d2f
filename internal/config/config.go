// Package config provides hctheme defaults loaded from a TOML file and
// HCTHEME_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/hctheme/internal/colour"
	"github.com/jmylchreest/hctheme/internal/dynamic"
	"github.com/jmylchreest/hctheme/internal/theme"
)

// Environment variables read by WithEnv.
const (
	EnvVariant          = "HCTHEME_VARIANT"
	EnvMode             = "HCTHEME_MODE"
	EnvDark             = "HCTHEME_DARK"
	EnvContrast         = "HCTHEME_CONTRAST"
	EnvFormat           = "HCTHEME_FORMAT"
	EnvExtendedFidelity = "HCTHEME_EXTENDED_FIDELITY"
	EnvPreview          = "HCTHEME_PREVIEW"
)

// ErrContrast is returned when the configured contrast level is outside [-1, 1].
var ErrContrast = errors.New("contrast must be within [-1, 1]")

// Config holds the defaults applied to theme generation before command-line
// flags.
type Config struct {
	Variant          dynamic.Variant `toml:"variant"`
	Mode             theme.Mode      `toml:"mode"`
	Contrast         float64         `toml:"contrast"`
	Format           theme.Format    `toml:"format"`
	ExtendedFidelity bool            `toml:"extended_fidelity"`
	Preview          bool            `toml:"preview"`
}

// Default returns tonal-spot, auto mode, standard contrast and text output.
func Default() Config {
	return Config{
		Variant: dynamic.TonalSpot,
		Mode:    theme.ModeAuto,
		Format:  theme.FormatText,
	}
}

// Validate checks the configured values are usable.
func (c Config) Validate() error {
	if math.IsNaN(c.Contrast) || c.Contrast < -1 || c.Contrast > 1 {
		return fmt.Errorf("%w: got %v", ErrContrast, c.Contrast)
	}
	return nil
}

// ThemeOptions returns theme build options for source using these defaults.
func (c Config) ThemeOptions(source colour.ARGB) theme.Options {
	return theme.Options{
		Source:           source,
		Variant:          c.Variant,
		Mode:             c.Mode,
		ContrastLevel:    c.Contrast,
		ExtendedFidelity: c.ExtendedFidelity,
	}
}

// DefaultPath returns the per-user config file location,
// $XDG_CONFIG_HOME/hctheme/config.toml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "hctheme", "config.toml"), nil
}

// Builder provides a fluent interface for assembling a Config from defaults,
// a file and the environment.
type Builder struct {
	config      Config
	path        string
	optional    bool
	useEnv      bool
	lookupEnvFn func(string) (string, bool)
}

// NewBuilder creates a builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config:      Default(),
		lookupEnvFn: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithFile loads the TOML file at path. A missing file is an error.
func (b *Builder) WithFile(path string) *Builder {
	b.path = path
	b.optional = false
	return b
}

// WithDefaultFile loads the file at DefaultPath when it exists.
func (b *Builder) WithDefaultFile() *Builder {
	path, err := DefaultPath()
	if err != nil {
		return b
	}
	b.path = path
	b.optional = true
	return b
}

// WithEnv overlays HCTHEME_* environment variables on top of the file.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// Build assembles the configuration. Environment variables take precedence
// over the file, which takes precedence over the base configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.path != "" {
		data, err := os.ReadFile(b.path)
		switch {
		case err == nil:
			if err := decode(data, &config); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", b.path, err)
			}
		case b.optional && errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if b.useEnv {
		if err := applyEnv(&config, b.lookupEnvFn); err != nil {
			return Config{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Load reads path, or the default file when path is empty, then overlays the
// environment.
func Load(path string) (Config, error) {
	b := NewBuilder()
	if path != "" {
		b.WithFile(path)
	} else {
		b.WithDefaultFile()
	}
	return b.WithEnv().Build()
}

func decode(data []byte, config *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(config); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.New(strings.TrimSpace(strict.String()))
		}
		return err
	}
	return nil
}

func applyEnv(config *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvVariant); ok {
		variant, err := dynamic.ParseVariant(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVariant, err)
		}
		config.Variant = variant
	}
	if v, ok := get(EnvMode); ok {
		mode, err := theme.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMode, err)
		}
		config.Mode = mode
	}
	// HCTHEME_DARK wins over HCTHEME_MODE.
	if v, ok := get(EnvDark); ok {
		dark, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDark, err)
		}
		config.Mode = theme.ModeLight
		if dark {
			config.Mode = theme.ModeDark
		}
	}
	if v, ok := get(EnvContrast); ok {
		contrast, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvContrast, err)
		}
		config.Contrast = contrast
	}
	if v, ok := get(EnvFormat); ok {
		format, err := theme.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		config.Format = format
	}
	for key, dst := range map[string]*bool{
		EnvExtendedFidelity: &config.ExtendedFidelity,
		EnvPreview:          &config.Preview,
	} {
		if v, ok := get(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = b
		}
	}
	return nil
}
