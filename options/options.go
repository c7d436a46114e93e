// Package options configures a kantera runtime with functional options.
package options

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"

	"github.com/goweiwen/kantera/data"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a runtime is built from.
type Config struct {
	// handler receives every component's logs.
	handler slog.Handler
	// fontPath is the TrueType or OpenType font text_to_image renders with.
	fontPath string
	// assetDir is where relative import_image paths are resolved.
	assetDir string
	// dataProvider supplies the ctx global for each evaluation.
	dataProvider data.Provider
	// inputData is static input merged over the provider's data.
	inputData map[string]any
}

// Option is a function that modifies Config.
type Option func(*Config) error

// WithLogHandler sets the handler every component logs to.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler is nil", ErrInvalidConfig)
		}
		c.handler = handler
		return nil
	}
}

// WithFontPath sets the font file used by text_to_image.
func WithFontPath(path string) Option {
	return func(c *Config) error {
		c.fontPath = path
		return nil
	}
}

// WithAssetDir sets the base directory for import_image.
func WithAssetDir(dir string) Option {
	return func(c *Config) error {
		c.assetDir = dir
		return nil
	}
}

// WithDataProvider sets the provider for the ctx global.
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider == nil {
			return fmt.Errorf("%w: data provider is nil", ErrInvalidConfig)
		}
		c.dataProvider = provider
		return nil
	}
}

// WithInputData adds static input data. Repeated calls merge, later keys win.
func WithInputData(input map[string]any) Option {
	return func(c *Config) error {
		if c.inputData == nil {
			c.inputData = make(map[string]any, len(input))
		}
		maps.Copy(c.inputData, input)
		return nil
	}
}

// Validate checks the configuration once all options are applied.
func (c *Config) Validate() error {
	if c.handler == nil {
		return fmt.Errorf("%w: no log handler", ErrInvalidConfig)
	}
	if c.dataProvider == nil {
		return fmt.Errorf("%w: no data provider", ErrInvalidConfig)
	}
	if c.assetDir != "" {
		info, err := os.Stat(c.assetDir)
		if err != nil {
			return fmt.Errorf("%w: asset dir: %w", ErrInvalidConfig, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: asset dir %s is not a directory", ErrInvalidConfig, c.assetDir)
		}
	}
	return nil
}

// GetHandler returns the configured log handler.
func (c *Config) GetHandler() slog.Handler { return c.handler }

// GetFontPath returns the configured font file.
func (c *Config) GetFontPath() string { return c.fontPath }

// GetAssetDir returns the configured asset directory.
func (c *Config) GetAssetDir() string { return c.assetDir }

// GetDataProvider returns the provider for the ctx global, with any static
// input data layered over it.
func (c *Config) GetDataProvider() data.Provider {
	if len(c.inputData) == 0 {
		return c.dataProvider
	}
	return data.NewCompositeProvider(c.dataProvider, data.NewStaticProvider(c.inputData))
}

// New applies opts over an empty config, then fills defaults and validates.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := WithDefaults()(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
