package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/testing/internal/testbed"
	"github.com/go-drift/lattice/pkg/widgets"
)

func TestCaptureSnapshot_Structure(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	tester.PumpWidget(widgets.NewColumn(
		testbed.Box(200, 40, graphics.ColorRed).Element(),
		widgets.Horizontal(20).Element(),
	))

	snap := tester.CaptureSnapshot()
	root := snap.Layout
	if root == nil {
		t.Fatal("expected layout root")
	}
	if root.ID != "Column#0" {
		t.Errorf("expected root ID Column#0, got %q", root.ID)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	if root.Children[1].Type != "Rule" {
		t.Errorf("expected second child to be a Rule, got %q", root.Children[1].Type)
	}
	if len(snap.Quads) != 2 {
		t.Fatalf("expected 2 quads, got %d", len(snap.Quads))
	}
	if snap.Quads[0].Background != "#ff0000" {
		t.Errorf("expected red first quad, got %s", snap.Quads[0].Background)
	}
	if snap.Background == "" {
		t.Error("expected background to be captured")
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Box(50, 50, graphics.ColorRed))

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(testbed.Box(50, 50, graphics.ColorRed))
	a := tester.CaptureSnapshot()

	tester.PumpWidget(testbed.Box(100, 50, graphics.ColorGreen))
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(updateEnv, "")
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.NewRow(
		testbed.Box(80, 40, graphics.ColorBlue).Element(),
		widgets.Vertical(9).Element(),
	))

	snap := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "row.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(updateEnv, "")
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Box(50, 50, 0))
	snap := tester.CaptureSnapshot()

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, filepath.Join(t.TempDir(), "missing.json"))

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(updateEnv, "")
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(testbed.Box(50, 50, graphics.ColorRed))
	first := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.PumpWidget(testbed.Box(99, 99, graphics.ColorBlue))
	second := tester.CaptureSnapshot()

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Box(60, 30, graphics.ColorGreen))
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "update.snapshot.json")

	t.Setenv(updateEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
