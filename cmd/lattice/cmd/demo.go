package cmd

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/theme"
	"github.com/go-drift/lattice/pkg/widgets"
)

// Rule styles used by the demo tree.
const (
	styleAccent theme.RuleStyle = "accent"
	styleInset  theme.RuleStyle = "inset"
	styleDanger theme.RuleStyle = "danger"
)

// demoTheme adds the demo rule styles to th unless the theme already
// defines them.
func demoTheme(th *theme.Theme) *theme.Theme {
	p := th.Palette
	styles := map[theme.RuleStyle]theme.RuleAppearance{
		styleAccent: {Color: p.Primary, Width: 4, Radius: 2, FillMode: theme.Percent(60)},
		styleInset:  {Color: p.Background.Mix(p.Text, 0.25), Width: 1, FillMode: theme.Padded(48)},
		styleDanger: {Color: p.Danger, Width: 2, FillMode: theme.AsymmetricPadding(0, 120)},
	}
	for _, style := range []theme.RuleStyle{styleAccent, styleInset, styleDanger} {
		if _, ok := th.Rules[style]; !ok {
			th = th.WithRule(style, styles[style])
		}
	}
	return th
}

// demoTree is a gallery of rules in every fill mode, with a resize handle
// in the bottom row.
func demoTree() core.Element {
	handles := widgets.NewRow(
		widgets.NewSpace(layout.Fill, layout.Fill).Element(),
		widgets.NewMouseArea(widgets.Vertical(12).Style(styleAccent).Element(), mouse.ResizingHorizontally).Element(),
		widgets.NewSpace(layout.FillPortion(2), layout.Fill).Element(),
		widgets.Vertical(12).Style(styleInset).Element(),
		widgets.NewSpace(layout.Fill, layout.Fill).Element(),
	).WithWidth(layout.Fill).WithHeight(layout.Fill).WithSpacing(8)

	return widgets.NewColumn(
		widgets.Horizontal(16).Element(),
		widgets.Horizontal(16).Style(styleAccent).Element(),
		widgets.Horizontal(16).Style(styleInset).Element(),
		widgets.Horizontal(16).Style(styleDanger).Element(),
		handles.Element(),
	).WithWidth(layout.Fill).WithHeight(layout.Fill).WithPadding(24).WithSpacing(8).Element()
}
