// Package config loads assertfmt.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"assertfmt/internal/highlight"
	"assertfmt/internal/paths"
	"assertfmt/internal/trace"
)

// FileName is looked up from the working directory towards the root.
const FileName = "assertfmt.toml"

type Config struct {
	Render  RenderConfig  `toml:"render"`
	Resolve ResolveConfig `toml:"resolve"`
	Trace   TraceConfig   `toml:"trace"`

	// Path of the file the values came from; empty for Default.
	Path string `toml:"-"`
}

type RenderConfig struct {
	Width     int    `toml:"width"`
	Scheme    string `toml:"scheme"`
	PathMode  string `toml:"path_mode"`
	Separator string `toml:"separator"`
}

type ResolveConfig struct {
	MaxDepth int `toml:"max_depth"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Render: RenderConfig{
			Scheme:    "auto",
			PathMode:  string(paths.ModeDisambiguated),
			Separator: "=>",
		},
		Resolve: ResolveConfig{MaxDepth: 10},
		Trace: TraceConfig{
			Level:  "off",
			Mode:   "stream",
			Output: "",
			Format: "auto",
		},
	}
}

// Find walks up from startDir to locate assertfmt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path, or searches upward from startDir when path is empty.
// Without a file it returns Default.
func Load(path, startDir string) (Config, error) {
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Config{}, err
		}
		if !ok {
			return Default(), nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile decodes path over Default, so missing keys keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every enumerated value; errors name the offending key.
func (c *Config) Validate() error {
	if c.Render.Width < 0 {
		return fmt.Errorf("[render].width must be >= 0, got %d", c.Render.Width)
	}
	if !strings.EqualFold(c.Render.Scheme, "auto") {
		if _, err := highlight.SchemeByName(c.Render.Scheme); err != nil {
			return fmt.Errorf("[render].scheme: %w", err)
		}
	}
	if _, err := paths.ParseMode(c.Render.PathMode); err != nil {
		return fmt.Errorf("[render].path_mode: %w", err)
	}
	if strings.TrimSpace(c.Render.Separator) == "" {
		return fmt.Errorf("[render].separator must not be empty")
	}
	if c.Resolve.MaxDepth <= 0 {
		return fmt.Errorf("[resolve].max_depth must be > 0, got %d", c.Resolve.MaxDepth)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	return nil
}
