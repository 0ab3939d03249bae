// Package theme resolves widget style keys into concrete appearances.
package theme

import "github.com/go-drift/lattice/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme with dark text.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme with light text.
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// Palette is the base set of colors a theme derives styles from.
type Palette struct {
	Background graphics.Color
	Text       graphics.Color
	Primary    graphics.Color
	Success    graphics.Color
	Danger     graphics.Color
}

// LightPalette returns the default light palette.
func LightPalette() Palette {
	return Palette{
		Background: graphics.ColorWhite,
		Text:       graphics.ColorBlack,
		Primary:    graphics.RGB(0x5E, 0x7C, 0xE2),
		Success:    graphics.RGB(0x12, 0x66, 0x4F),
		Danger:     graphics.RGB(0xC3, 0x42, 0x3F),
	}
}

// DarkPalette returns the default dark palette.
func DarkPalette() Palette {
	return Palette{
		Background: graphics.RGB(0x20, 0x22, 0x25),
		Text:       graphics.RGBA(0xFF, 0xFF, 0xFF, 0.9),
		Primary:    graphics.RGB(0x5E, 0x7C, 0xE2),
		Success:    graphics.RGB(0x12, 0x66, 0x4F),
		Danger:     graphics.RGB(0xC3, 0x42, 0x3F),
	}
}

// Theme holds the palette and per-widget style tables.
//
// A Theme is read-only during layout and paint and may be shared by every
// widget in a tree.
type Theme struct {
	// Name identifies the theme, e.g. "light" or the name from a theme file.
	Name string
	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness
	// Palette is the color palette.
	Palette Palette
	// Rules holds named rule appearances. The entry for RuleDefault, if
	// present, replaces the palette-derived default.
	Rules map[RuleStyle]RuleAppearance
}

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{Name: "light", Brightness: BrightnessLight, Palette: LightPalette()}
}

// Dark returns the default dark theme.
func Dark() *Theme {
	return &Theme{Name: "dark", Brightness: BrightnessDark, Palette: DarkPalette()}
}

// RuleAppearance resolves style to an appearance. Unknown styles resolve
// to the theme default, so every key yields an appearance.
func (t *Theme) RuleAppearance(style RuleStyle) RuleAppearance {
	if t == nil {
		return defaultRule(LightPalette())
	}
	if a, ok := t.Rules[style]; ok {
		return a
	}
	return t.DefaultRule()
}

// DefaultRule returns the appearance used for RuleDefault and unknown keys.
func (t *Theme) DefaultRule() RuleAppearance {
	if a, ok := t.Rules[RuleDefault]; ok {
		return a
	}
	return defaultRule(t.Palette)
}

// WithRule returns a copy of the theme with style set to appearance.
func (t *Theme) WithRule(style RuleStyle, appearance RuleAppearance) *Theme {
	out := *t
	out.Rules = make(map[RuleStyle]RuleAppearance, len(t.Rules)+1)
	for k, v := range t.Rules {
		out.Rules[k] = v
	}
	out.Rules[style] = appearance
	return &out
}
