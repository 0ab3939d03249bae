package theme

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/graphics"
)

// File is the YAML form of a theme.
//
//	name: ocean
//	base: dark
//	palette:
//	  background: "#1e1e2e"
//	  text: "#cdd6f4"
//	default_rule: {width: 1, color: "#45475a"}
//	rules:
//	  separator: {width: 2, fill: {mode: percent, percent: 80}}
//
// Palette entries override the base palette. default_rule overrides fields
// of the palette-derived default, and each named rule overrides fields of
// the resulting default. Rule names are free-form; "default" is an
// ordinary name.
type File struct {
	Name        string              `yaml:"name,omitempty"`
	Base        string              `yaml:"base,omitempty"`
	Palette     PaletteFile         `yaml:"palette,omitempty"`
	DefaultRule *RuleFile           `yaml:"default_rule,omitempty"`
	Rules       map[string]RuleFile `yaml:"rules,omitempty"`
}

// PaletteFile holds hex colors for each palette entry.
type PaletteFile struct {
	Background string `yaml:"background,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Primary    string `yaml:"primary,omitempty"`
	Success    string `yaml:"success,omitempty"`
	Danger     string `yaml:"danger,omitempty"`
}

// RuleFile is one named rule appearance. Unset fields inherit the default.
type RuleFile struct {
	Color  string    `yaml:"color,omitempty"`
	Width  *float64  `yaml:"width,omitempty"`
	Radius *float64  `yaml:"radius,omitempty"`
	Fill   *FillFile `yaml:"fill,omitempty"`
}

// FillFile is the YAML form of a FillMode.
type FillFile struct {
	Mode     string  `yaml:"mode"`
	Percent  float64 `yaml:"percent,omitempty"`
	Padding  float64 `yaml:"padding,omitempty"`
	Leading  float64 `yaml:"leading,omitempty"`
	Trailing float64 `yaml:"trailing,omitempty"`
}

// LoadFile reads and parses a YAML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "theme.LoadFile", Kind: errors.KindIO, Path: path, Err: err}
	}
	t, err := parse(data, path)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Path = path
		}
		return nil, err
	}
	return t, nil
}

// Parse decodes a YAML theme.
func Parse(data []byte) (*Theme, error) {
	return parse(data, "")
}

func parse(data []byte, source string) (*Theme, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.E("theme.Parse", errors.KindParsing, err)
	}
	t, err := f.Theme(source)
	if err != nil {
		return nil, errors.E("theme.Parse", errors.KindParsing, err)
	}
	return t, nil
}

// Theme builds a Theme from the file contents.
func (f File) Theme(source string) (*Theme, error) {
	var t *Theme
	switch f.Base {
	case "", "light":
		t = Light()
	case "dark":
		t = Dark()
	default:
		return nil, &errors.ParseError{Source: source, Field: "base", Got: f.Base}
	}
	if f.Name != "" {
		t.Name = f.Name
	}

	colors := []struct {
		field string
		hex   string
		dst   *graphics.Color
	}{
		{"palette.background", f.Palette.Background, &t.Palette.Background},
		{"palette.text", f.Palette.Text, &t.Palette.Text},
		{"palette.primary", f.Palette.Primary, &t.Palette.Primary},
		{"palette.success", f.Palette.Success, &t.Palette.Success},
		{"palette.danger", f.Palette.Danger, &t.Palette.Danger},
	}
	for _, c := range colors {
		if c.hex == "" {
			continue
		}
		v, err := graphics.ParseHex(c.hex)
		if err != nil {
			return nil, &errors.ParseError{Source: source, Field: c.field, Got: c.hex}
		}
		*c.dst = v
	}

	if f.DefaultRule == nil && len(f.Rules) == 0 {
		return t, nil
	}

	// The default is applied first so named entries inherit from it.
	base := defaultRule(t.Palette)
	t.Rules = make(map[RuleStyle]RuleAppearance, len(f.Rules)+1)
	if f.DefaultRule != nil {
		a, err := f.DefaultRule.apply(base, source, "default_rule")
		if err != nil {
			return nil, err
		}
		base = a
		t.Rules[RuleDefault] = a
	}
	for name, rf := range f.Rules {
		if name == "" {
			return nil, &errors.ParseError{Source: source, Field: "rules", Got: name}
		}
		a, err := rf.apply(base, source, "rules."+name)
		if err != nil {
			return nil, err
		}
		t.Rules[RuleStyle(name)] = a
	}
	return t, nil
}

func (rf RuleFile) apply(base RuleAppearance, source, field string) (RuleAppearance, error) {
	a := base
	if rf.Color != "" {
		c, err := graphics.ParseHex(rf.Color)
		if err != nil {
			return a, &errors.ParseError{Source: source, Field: field + ".color", Got: rf.Color}
		}
		a.Color = c
	}
	if rf.Width != nil {
		if !finite(*rf.Width) || *rf.Width < 0 {
			return a, &errors.ParseError{Source: source, Field: field + ".width", Got: *rf.Width}
		}
		a.Width = *rf.Width
	}
	if rf.Radius != nil {
		if !finite(*rf.Radius) {
			return a, &errors.ParseError{Source: source, Field: field + ".radius", Got: *rf.Radius}
		}
		a.Radius = max(*rf.Radius, 0)
	}
	if rf.Fill != nil {
		for _, v := range []struct {
			name string
			v    float64
		}{
			{"percent", rf.Fill.Percent},
			{"padding", rf.Fill.Padding},
			{"leading", rf.Fill.Leading},
			{"trailing", rf.Fill.Trailing},
		} {
			if !finite(v.v) {
				return a, &errors.ParseError{Source: source, Field: field + ".fill." + v.name, Got: v.v}
			}
		}
		m, err := rf.Fill.mode()
		if err != nil {
			return a, &errors.ParseError{Source: source, Field: field + ".fill.mode", Got: rf.Fill.Mode}
		}
		a.FillMode = m
	}
	return a, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (ff FillFile) mode() (FillMode, error) {
	switch ff.Mode {
	case "", "full":
		return Full(), nil
	case "percent":
		return Percent(ff.Percent), nil
	case "padded":
		return Padded(ff.Padding), nil
	case "asymmetric":
		return AsymmetricPadding(ff.Leading, ff.Trailing), nil
	default:
		return FillMode{}, fmt.Errorf("unknown fill mode %q", ff.Mode)
	}
}

// ToFile converts the theme back to its YAML form. Rule entries are
// written in full so the output is self-describing.
func (t *Theme) ToFile() File {
	f := File{
		Name: t.Name,
		Base: t.Brightness.String(),
		Palette: PaletteFile{
			Background: t.Palette.Background.Hex(),
			Text:       t.Palette.Text.Hex(),
			Primary:    t.Palette.Primary.Hex(),
			Success:    t.Palette.Success.Hex(),
			Danger:     t.Palette.Danger.Hex(),
		},
	}
	def := ruleFile(t.DefaultRule())
	f.DefaultRule = &def
	for style, a := range t.Rules {
		if style == RuleDefault {
			continue
		}
		if f.Rules == nil {
			f.Rules = make(map[string]RuleFile, len(t.Rules))
		}
		f.Rules[string(style)] = ruleFile(a)
	}
	return f
}

// RuleStyles returns the named styles of the theme in sorted order,
// excluding the default.
func (t *Theme) RuleStyles() []RuleStyle {
	styles := make([]RuleStyle, 0, len(t.Rules))
	for s := range t.Rules {
		if s != RuleDefault {
			styles = append(styles, s)
		}
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })
	return styles
}

// Marshal encodes the theme as YAML.
func (t *Theme) Marshal() ([]byte, error) {
	return yaml.Marshal(t.ToFile())
}

func ruleFile(a RuleAppearance) RuleFile {
	width, radius := a.Width, a.Radius
	ff := &FillFile{Mode: a.FillMode.Kind().String()}
	switch a.FillMode.Kind() {
	case FillPercent:
		ff.Percent = a.FillMode.Percentage()
	case FillPadded:
		ff.Padding, _ = a.FillMode.Padding()
	case FillAsymmetric:
		ff.Leading, ff.Trailing = a.FillMode.Padding()
	}
	return RuleFile{Color: a.Color.Hex(), Width: &width, Radius: &radius, Fill: ff}
}
