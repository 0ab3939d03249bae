package cmd

import (
	"bytes"
	stderrors "errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/theme"
)

// capture redirects command output for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestExecute_Version(t *testing.T) {
	out := capture(t)
	if err := execute([]string{"--version"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "lattice version "+Version) {
		t.Errorf("unexpected version output %q", out.String())
	}
}

func TestExecute_Help(t *testing.T) {
	out := capture(t)
	if err := execute(nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, name := range []string{"render", "theme"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help should list %q:\n%s", name, out.String())
		}
	}

	out.Reset()
	if err := execute([]string{"render", "--help"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "lattice render [--width N]") {
		t.Errorf("expected render usage, got:\n%s", out.String())
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	capture(t)
	if err := execute([]string{"paint"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestRender_PNG(t *testing.T) {
	out := capture(t)
	dir := projectDir(t)
	path := filepath.Join(dir, "out.png")

	err := execute([]string{
		"render", "--dir", dir, "--out", path,
		"--width", "200", "--height=200",
		"--cursor", "60,140",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("image size = %v", b)
	}
	if r, g, b, _ := img.At(0, 0).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("padding should show the light background, got %v", img.At(0, 0))
	}
	// The default rule is a one pixel line centered in the first 16px slot.
	if r, _, _, _ := img.At(100, 32).RGBA(); r>>8 == 255 {
		t.Errorf("expected the default rule at (100,32), got %v", img.At(100, 32))
	}

	for _, want := range []string{"Rendered 200x200 (light theme) to " + path, "Cursor at (60,140): resizing_horizontally"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRender_ANSI(t *testing.T) {
	out := capture(t)
	dir := projectDir(t)

	if err := execute([]string{"render", "--dir", dir, "--format", "ansi", "--width", "80", "--height", "48", "--theme", "dark"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 rows of 16px cells, got %d", len(lines))
	}
}

func TestRender_ConfigFile(t *testing.T) {
	capture(t)
	dir := projectDir(t)
	path := filepath.Join(dir, "from-config.png")
	cfg := "render:\n  width: 64\n  height: 32\n  theme: dark\n  output: " + path + "\n"
	if err := os.WriteFile(filepath.Join(dir, "lattice.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute([]string{"render", "--dir", dir}); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected output from lattice.yaml: %v", err)
	}
	defer f.Close()
	cfgImg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfgImg.Width != 64 || cfgImg.Height != 32 {
		t.Errorf("image size = %dx%d", cfgImg.Width, cfgImg.Height)
	}
}

func TestRender_ThemeFile(t *testing.T) {
	out := capture(t)
	dir := projectDir(t)
	if err := os.WriteFile(filepath.Join(dir, "ocean.yaml"), []byte("name: ocean\nbase: dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute([]string{"render", "--dir", dir, "--theme", "ocean.yaml", "--out", filepath.Join(dir, "o.png")}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "(ocean theme)") {
		t.Errorf("expected the theme file to be used:\n%s", out.String())
	}

	err := execute([]string{"render", "--dir", dir, "--theme", "missing.yaml"})
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindIO {
		t.Errorf("expected io error for a missing theme, got %v", err)
	}
}

func TestRender_BadArgs(t *testing.T) {
	capture(t)
	dir := projectDir(t)
	tests := [][]string{
		{"--width", "wide"},
		{"--bogus"},
		{"--out"},
		{"--format", "gif"},
		{"--cursor", "12"},
		{"--height", "0"},
		{"--width=", "300"},
		{"--out="},
		{"--width", "100000", "--height", "100000"},
	}
	for _, args := range tests {
		args = append([]string{"render", "--dir", dir}, args...)
		if err := execute(args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestTheme_YAML(t *testing.T) {
	out := capture(t)
	dir := projectDir(t)

	if err := execute([]string{"theme", "--dir", dir, "--theme", "dark", "--demo"}); err != nil {
		t.Fatalf("theme: %v", err)
	}
	th, err := theme.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("output should parse as a theme file: %v\n%s", err, out.String())
	}
	if th.Palette.Background != theme.DarkPalette().Background {
		t.Errorf("background = %s", th.Palette.Background.Hex())
	}
	want := demoTheme(theme.Dark()).RuleAppearance(styleAccent)
	if got := th.RuleAppearance(styleAccent); got != want {
		t.Errorf("accent = %+v, want %+v", got, want)
	}
}

func TestTheme_Table(t *testing.T) {
	out := capture(t)
	dir := projectDir(t)

	if err := execute([]string{"theme", "--dir", dir, "--demo", "--table"}); err != nil {
		t.Fatalf("theme: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, default and 3 demo styles, got:\n%s", out.String())
	}
	for i, prefix := range []string{"STYLE", "default", "accent", "danger", "inset"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
	if !strings.Contains(lines[2], "percent(60)") || !strings.Contains(lines[3], "asymmetric(0, 120)") {
		t.Errorf("fill modes missing:\n%s", out.String())
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantIdx int
		wantErr bool
	}{
		{[]string{"--width", "30"}, "30", 1, false},
		{[]string{"--width=30"}, "30", 0, false},
		{[]string{"--width=", "30"}, "", 0, true},
		{[]string{"--width"}, "", 0, true},
	}
	for _, tt := range tests {
		got, idx, err := flagValue(tt.args, 0, "--width")
		if (err != nil) != tt.wantErr {
			t.Errorf("flagValue(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (got != tt.want || idx != tt.wantIdx) {
			t.Errorf("flagValue(%q) = (%q, %d), want (%q, %d)", tt.args, got, idx, tt.want, tt.wantIdx)
		}
	}
}

type recordingHandler struct {
	errs []*errors.Error
}

func (h *recordingHandler) HandleError(err *errors.Error)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func TestReport(t *testing.T) {
	capture(t)
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	if code := report(execute([]string{"--version"})); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(h.errs) != 0 {
		t.Fatalf("success should not report, got %v", h.errs)
	}

	if code := report(execute([]string{"paint"})); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	dir := projectDir(t)
	report(execute([]string{"render", "--dir", dir, "--theme", "missing.yaml"}))

	if len(h.errs) != 2 {
		t.Fatalf("expected 2 reported errors, got %d", len(h.errs))
	}
	if e := h.errs[0]; e.Kind != errors.KindUsage || !strings.Contains(e.Error(), "unknown command: paint") {
		t.Errorf("unknown command reported as %v", e)
	}
	if e := h.errs[1]; e.Kind != errors.KindIO || e.Op != "theme.LoadFile" {
		t.Errorf("missing theme reported as %v", e)
	}
	for _, e := range h.errs {
		if e.Timestamp.IsZero() {
			t.Errorf("%v was reported without a timestamp", e)
		}
	}
}

func TestReport_LogHandler(t *testing.T) {
	capture(t)
	var buf bytes.Buffer
	errors.SetHandler(&errors.LogHandler{Writer: &buf})
	t.Cleanup(func() { errors.SetHandler(nil) })

	report(execute([]string{"render", "--bogus"}))
	if want := `[lattice error] lattice: unknown flag "--bogus"`; !strings.Contains(buf.String(), want) {
		t.Errorf("log output %q missing %q", buf.String(), want)
	}
}
