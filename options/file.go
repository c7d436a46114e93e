package options

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a runtime configuration:
//
//	font_path: fonts/Inter.ttf
//	asset_dir: assets
//	log_level: debug
//	input:
//	  title: Intro
type File struct {
	FontPath string         `yaml:"font_path"`
	AssetDir string         `yaml:"asset_dir"`
	LogLevel string         `yaml:"log_level"`
	Input    map[string]any `yaml:"input"`

	dir string
}

// LoadFile reads and parses a YAML config file. Relative paths in it are
// resolved against the file's directory.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	f, err := ParseFile(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// ParseFile parses YAML config bytes.
func ParseFile(b []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := f.Level(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Level parses LogLevel, defaulting to info.
func (f *File) Level() (slog.Level, error) {
	var level slog.Level
	if f.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

func (f *File) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || f.dir == "" {
		return path
	}
	return filepath.Join(f.dir, path)
}

// Options converts the file to runtime options. The log handler is left to
// the caller, which knows where logs go.
func (f *File) Options() []Option {
	var opts []Option
	if f.FontPath != "" {
		opts = append(opts, WithFontPath(f.resolve(f.FontPath)))
	}
	if f.AssetDir != "" {
		opts = append(opts, WithAssetDir(f.resolve(f.AssetDir)))
	}
	if len(f.Input) > 0 {
		opts = append(opts, WithInputData(f.Input))
	}
	return opts
}
