package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/lattice/pkg/errors"
)

// FileName is the optional project configuration file.
const FileName = "lattice.yaml"

// Output formats understood by the render command.
const (
	FormatPNG  = "png"
	FormatANSI = "ansi"
)

// Default render settings.
const (
	DefaultWidth  = 640
	DefaultHeight = 360
	DefaultTheme  = "light"
	// MaxSide bounds each surface dimension so a raster stays within a
	// few hundred megabytes.
	MaxSide = 8192
)

// Config represents the optional lattice.yaml configuration.
type Config struct {
	Render RenderConfig `yaml:"render"`
}

// RenderConfig contains defaults for the render command.
type RenderConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
	Output string `yaml:"output,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	// Name is the base name of default output files.
	Name   string
	Width  int
	Height int
	// Theme is "light", "dark" or a path to a YAML theme file, relative
	// to Root.
	Theme  string
	Output string
	Format string
}

// LoadOptional reads lattice.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &errors.Error{Op: "config.LoadOptional", Kind: errors.KindIO, Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.Error{Op: "config.LoadOptional", Kind: errors.KindConfig, Path: path, Err: err}
	}

	return &cfg, nil
}

// Resolve loads lattice.yaml (if present) and resolves defaults.
//
// The module path is optional: outside a Go module the output name falls
// back to the directory name.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modPath, _ := modulePath(dir)

	r := &Resolved{
		Root:       dir,
		ModulePath: modPath,
		Name:       defaultName(modPath, dir),
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		Theme:      strings.TrimSpace(cfg.Render.Theme),
		Format:     strings.ToLower(strings.TrimSpace(cfg.Render.Format)),
		Output:     strings.TrimSpace(cfg.Render.Output),
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Theme == "" {
		r.Theme = DefaultTheme
	}
	if r.Format == "" {
		r.Format = FormatPNG
	}
	if r.Output == "" {
		r.Output = DefaultOutput(r.Name, r.Format)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the resolved values. Callers that apply flag overrides
// should validate again afterwards.
func (r *Resolved) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return errors.E("config.Validate", errors.KindConfig,
			fmt.Errorf("surface size must be positive, got %dx%d", r.Width, r.Height))
	}
	if r.Width > MaxSide || r.Height > MaxSide {
		return errors.E("config.Validate", errors.KindConfig,
			fmt.Errorf("surface size %dx%d exceeds %dx%d", r.Width, r.Height, MaxSide, MaxSide))
	}
	switch r.Format {
	case FormatPNG, FormatANSI:
	default:
		return errors.E("config.Validate", errors.KindConfig,
			&errors.ParseError{Source: FileName, Field: "format", Got: r.Format})
	}
	return nil
}

// ThemePath returns the theme file path when Theme is not a built-in name.
func (r *Resolved) ThemePath() (string, bool) {
	switch r.Theme {
	case "light", "dark":
		return "", false
	}
	if filepath.IsAbs(r.Theme) {
		return r.Theme, true
	}
	return filepath.Join(r.Root, r.Theme), true
}

// DefaultOutput returns the output file name for name in format. ANSI
// output goes to stdout and has no file name.
func DefaultOutput(name, format string) string {
	if format == FormatANSI {
		return ""
	}
	return name + ".png"
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.E("config.FindProjectRoot", errors.KindConfig,
				fmt.Errorf("not in a Go module (no go.mod found)"))
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", err
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "lattice"
	}
	return base
}
