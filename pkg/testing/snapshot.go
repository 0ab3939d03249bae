package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/rendering"
)

// updateEnv names the environment variable that rewrites golden files.
const updateEnv = "LATTICE_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the layout tree and the fill operations of a frame.
type Snapshot struct {
	Size       [2]float64  `json:"size"`
	Background string      `json:"background,omitempty"`
	Layout     *LayoutNode `json:"layout"`
	Quads      []QuadOp    `json:"quads,omitempty"`
}

// LayoutNode represents a node in the serialized layout tree.
type LayoutNode struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Bounds   [4]float64    `json:"bounds"`
	Children []*LayoutNode `json:"children,omitempty"`
}

// QuadOp is a serialized FillQuad call.
type QuadOp struct {
	Bounds       [4]float64 `json:"bounds"`
	Background   string     `json:"background"`
	BorderRadius float64    `json:"radius,omitempty"`
	BorderWidth  float64    `json:"borderWidth,omitempty"`
	BorderColor  string     `json:"borderColor,omitempty"`
}

// CaptureSnapshot captures the last frame. The layout is nil if nothing
// was pumped.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Size: [2]float64{round2(t.size.Width), round2(t.size.Height)}}
	if c, ok := t.recorder.Cleared(); ok {
		snap.Background = c.Hex()
	}
	if t.node != nil {
		snap.Layout = captureLayoutNode(t.root, layout.NewLayout(t.node), &typeCounter{})
	}
	for _, op := range t.recorder.Ops() {
		snap.Quads = append(snap.Quads, captureQuad(op))
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// LATTICE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a diff from other to this snapshot. Returns empty string if
// equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

// typeCounter assigns stable IDs like "Rule#0", "Rule#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureLayoutNode(e core.Element, l layout.Layout, counter *typeCounter) *LayoutNode {
	typeName := widgetTypeName(e.Widget())
	node := &LayoutNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Bounds: rect4(l.Bounds()),
	}
	children := l.Children()
	for i, child := range e.Children() {
		if i >= len(children) {
			break
		}
		node.Children = append(node.Children, captureLayoutNode(child, children[i], counter))
	}
	return node
}

func captureQuad(op rendering.FillOp) QuadOp {
	q := QuadOp{
		Bounds:       rect4(op.Quad.Bounds),
		Background:   op.Background.Hex(),
		BorderRadius: round2(op.Quad.BorderRadius),
		BorderWidth:  round2(op.Quad.BorderWidth),
	}
	if op.Quad.BorderWidth > 0 {
		q.BorderColor = op.Quad.BorderColor.Hex()
	}
	return q
}

func widgetTypeName(w core.Widget) string {
	if w == nil {
		return "Empty"
	}
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func rect4(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.X), round2(r.Y), round2(r.Width), round2(r.Height)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
