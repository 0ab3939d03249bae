package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Print a theme and its resolved rule styles",
		Long: `Print a theme as YAML, in the same format theme files use.

  --theme NAME|FILE  "light", "dark" or a YAML theme file (default: from
                     lattice.yaml, else light)
  --demo             Include the rule styles the render command adds
  --table            Print one resolved rule style per line instead of YAML
  --dir DIR          Project directory (default: nearest go.mod)

Every rule style resolves to an appearance; styles a theme does not name
resolve to its default.`,
		Usage: "lattice theme [--theme NAME|FILE] [--demo] [--table] [--dir DIR]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	var (
		demo, table bool
		rest        []string
	)
	for _, arg := range args {
		switch arg {
		case "--demo":
			demo = true
		case "--table":
			table = true
		default:
			rest = append(rest, arg)
		}
	}
	opts, err := parseRenderArgs(rest)
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
	if demo {
		th = demoTheme(th)
	}

	if table {
		return printRuleTable(th)
	}
	data, err := th.Marshal()
	if err != nil {
		return errors.E("theme", errors.KindParsing, err)
	}
	_, err = stdout.Write(data)
	return err
}

func printRuleTable(th *theme.Theme) error {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STYLE\tCOLOR\tWIDTH\tRADIUS\tFILL")
	styles := append([]theme.RuleStyle{theme.RuleDefault}, th.RuleStyles()...)
	for _, s := range styles {
		a := th.RuleAppearance(s)
		name := string(s)
		if s == theme.RuleDefault {
			name = "default"
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%s\n", name, a.Color.Hex(), a.Width, a.Radius, a.FillMode)
	}
	return w.Flush()
}
