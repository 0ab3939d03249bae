package cmd

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/lattice/cmd/lattice/internal/config"
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

// Terminal cell size in surface pixels for ANSI previews.
const (
	cellWidth  = 8
	cellHeight = 16
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo tree to PNG or the terminal",
		Long: `Lay out and paint the demo widget tree.

Settings are read from lattice.yaml in the project root when present and
overridden by flags:

  --width N          Surface width in pixels (default: 640)
  --height N         Surface height in pixels (default: 360)
  --theme NAME|FILE  "light", "dark" or a YAML theme file (default: light)
  --out FILE         Output file for png (default: <module name>.png)
  --format FORMAT    png or ansi (default: png)
  --cursor X,Y       Also report the cursor interaction at X,Y
  --dir DIR          Project directory (default: nearest go.mod)

Examples:
  lattice render --theme dark --out preview.png
  lattice render --format ansi --width 320 --height 160`,
		Usage: "lattice render [--width N] [--height N] [--theme NAME|FILE] [--out FILE] [--format png|ansi] [--cursor X,Y] [--dir DIR]",
		Run:   runRender,
	})
}

type renderOptions struct {
	dir    string
	width  *int
	height *int
	theme  string
	out    string
	format string
	cursor mouse.Cursor
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		name, _, _ := strings.Cut(args[i], "=")
		var (
			v   string
			err error
		)
		switch name {
		case "--width", "--height", "--theme", "--out", "--format", "--cursor", "--dir":
			v, i, err = flagValue(args, i, name)
			if err != nil {
				return opts, err
			}
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}

		switch name {
		case "--width", "--height":
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, fmt.Errorf("%s: %w", name, err)
			}
			if name == "--width" {
				opts.width = &n
			} else {
				opts.height = &n
			}
		case "--theme":
			opts.theme = v
		case "--out":
			opts.out = v
		case "--format":
			opts.format = strings.ToLower(v)
		case "--cursor":
			p, err := parsePoint(v)
			if err != nil {
				return opts, fmt.Errorf("--cursor: %w", err)
			}
			opts.cursor = mouse.Available(p)
		case "--dir":
			opts.dir = v
		}
	}
	return opts, nil
}

func parsePoint(s string) (graphics.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graphics.Point{}, fmt.Errorf("expected X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return graphics.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return graphics.Point{}, err
	}
	return graphics.Point{X: x, Y: y}, nil
}

// resolveRender merges lattice.yaml with the flags.
func resolveRender(opts renderOptions) (*config.Resolved, error) {
	dir := opts.dir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			if dir, err = os.Getwd(); err != nil {
				return nil, errors.E("render", errors.KindIO, err)
			}
		} else {
			dir = root
		}
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if opts.width != nil {
		cfg.Width = *opts.width
	}
	if opts.height != nil {
		cfg.Height = *opts.height
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.format != "" && opts.format != cfg.Format {
		cfg.Format = opts.format
		if opts.out == "" {
			cfg.Output = config.DefaultOutput(cfg.Name, cfg.Format)
		}
	}
	if opts.out != "" {
		cfg.Output = opts.out
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTheme(cfg *config.Resolved) (*theme.Theme, error) {
	if path, ok := cfg.ThemePath(); ok {
		return theme.LoadFile(path)
	}
	if cfg.Theme == "dark" {
		return theme.Dark(), nil
	}
	return theme.Light(), nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := resolveRender(opts)
	if err != nil {
		return err
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}
	th = demoTheme(th)

	root := demoTree()
	tree := core.NewTree(root)
	size := graphics.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}

	var node *layout.Node
	switch cfg.Format {
	case config.FormatANSI:
		term := rendering.NewTerminal(size.Width, size.Height, cellWidth, cellHeight)
		if node = core.Frame(root, tree, th, term, size); node == nil {
			return errors.E("render", errors.KindRender, fmt.Errorf("layout did not complete"))
		}
		if cfg.Output == "" {
			fmt.Fprint(stdout, term.String())
		} else if err := os.WriteFile(cfg.Output, []byte(term.String()), 0o644); err != nil {
			return &errors.Error{Op: "render", Kind: errors.KindIO, Path: cfg.Output, Err: err}
		}
	default:
		raster := rendering.NewRaster(cfg.Width, cfg.Height)
		if node = core.Frame(root, tree, th, raster, size); node == nil {
			return errors.E("render", errors.KindRender, fmt.Errorf("layout did not complete"))
		}
		if err := writePNG(cfg.Output, raster); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Rendered %dx%d (%s theme) to %s\n", cfg.Width, cfg.Height, th.Name, cfg.Output)
	}

	if p, ok := opts.cursor.Position(); ok {
		hint := core.Interaction(root, tree, node, opts.cursor, size)
		fmt.Fprintf(stdout, "Cursor at (%g,%g): %s\n", p.X, p.Y, hint)
	}
	return nil
}

func writePNG(path string, raster *rendering.Raster) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &errors.Error{Op: "render.writePNG", Kind: errors.KindIO, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &errors.Error{Op: "render.writePNG", Kind: errors.KindIO, Path: path, Err: cerr}
		}
	}()
	if err := png.Encode(f, raster.Image()); err != nil {
		return &errors.Error{Op: "render.writePNG", Kind: errors.KindIO, Path: path, Err: err}
	}
	return nil
}
