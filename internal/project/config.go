package project

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the decoded jsfront.toml with defaults applied.
type Config struct {
	Check  CheckConfig
	Output OutputConfig
	// Path is the manifest the config was read from; empty for defaults.
	Path string
}

type CheckConfig struct {
	Extensions     []string
	MaxDiagnostics int
	Context        int
	Jobs           int
	Cache          bool
}

type OutputConfig struct {
	Color string
}

type rawConfig struct {
	Check struct {
		Extensions     []string `toml:"extensions"`
		MaxDiagnostics int      `toml:"max_diagnostics"`
		Context        int      `toml:"context"`
		Jobs           int      `toml:"jobs"`
		Cache          bool     `toml:"cache"`
	} `toml:"check"`
	Output struct {
		Color string `toml:"color"`
	} `toml:"output"`
}

const maxContextLines = 10

// Defaults returns the configuration used when no manifest is present.
func Defaults() Config {
	return Config{
		Check: CheckConfig{
			Extensions:     []string{".js", ".mjs", ".cjs"},
			MaxDiagnostics: 100,
			Context:        2,
			Jobs:           0,
			Cache:          true,
		},
		Output: OutputConfig{Color: "auto"},
	}
}

// Load finds jsfront.toml starting at startDir and decodes it.
// A missing manifest is not an error: defaults are returned.
func Load(startDir string) (Config, error) {
	path, err := FindManifest(startDir)
	if errors.Is(err, ErrNoManifest) {
		return Defaults(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// LoadFile decodes the manifest at path. Keys that are absent keep their
// default values.
func LoadFile(path string) (Config, error) {
	var raw rawConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	cfg := Defaults()
	cfg.Path = path
	if meta.IsDefined("check", "extensions") {
		exts := make([]string, 0, len(raw.Check.Extensions))
		for _, ext := range raw.Check.Extensions {
			ext = strings.TrimSpace(ext)
			if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return Config{}, fmt.Errorf("%s: check.extensions: %q must start with '.'", path, ext)
			}
			if !slices.Contains(exts, ext) {
				exts = append(exts, ext)
			}
		}
		if len(exts) == 0 {
			return Config{}, fmt.Errorf("%s: check.extensions must not be empty", path)
		}
		cfg.Check.Extensions = exts
	}
	if meta.IsDefined("check", "max_diagnostics") {
		if raw.Check.MaxDiagnostics < 0 {
			return Config{}, fmt.Errorf("%s: check.max_diagnostics must be >= 0, got %d", path, raw.Check.MaxDiagnostics)
		}
		cfg.Check.MaxDiagnostics = raw.Check.MaxDiagnostics
	}
	if meta.IsDefined("check", "context") {
		if raw.Check.Context < 0 || raw.Check.Context > maxContextLines {
			return Config{}, fmt.Errorf("%s: check.context must be in [0, %d], got %d", path, maxContextLines, raw.Check.Context)
		}
		cfg.Check.Context = raw.Check.Context
	}
	if meta.IsDefined("check", "jobs") {
		if raw.Check.Jobs < 0 {
			return Config{}, fmt.Errorf("%s: check.jobs must be >= 0, got %d", path, raw.Check.Jobs)
		}
		cfg.Check.Jobs = raw.Check.Jobs
	}
	if meta.IsDefined("check", "cache") {
		cfg.Check.Cache = raw.Check.Cache
	}
	if meta.IsDefined("output", "color") {
		switch c := strings.ToLower(strings.TrimSpace(raw.Output.Color)); c {
		case "auto", "on", "off":
			cfg.Output.Color = c
		default:
			return Config{}, fmt.Errorf("%s: output.color must be auto, on or off, got %q", path, raw.Output.Color)
		}
	}
	return cfg, nil
}
