package testing

import (
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/mouse"
	"github.com/go-drift/lattice/pkg/rendering"
	"github.com/go-drift/lattice/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// WidgetTester provides isolated widget testing without real rendering.
// It drives the same layout and paint passes as the CLI but paints into a
// recorder instead of an image.
type WidgetTester struct {
	root     core.Element
	tree     *core.Tree
	node     *layout.Node
	size     graphics.Size
	theme    *theme.Theme
	recorder *rendering.Recorder
	reported []error
}

// NewWidgetTester creates a tester with the default surface and the light
// theme.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		theme:    theme.Light(),
		recorder: &rendering.Recorder{},
	}
}

// NewWidgetTesterWithT creates a tester that fails t on any error or panic
// reported while it pumps frames, and restores the global error handler on
// cleanup. This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	errors.SetHandler(&failHandler{t: t, tester: tester})
	t.Cleanup(func() { errors.SetHandler(nil) })
	return tester
}

// SetSize sets the logical surface size. Takes effect on the next pump.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// Size returns the logical surface size.
func (t *WidgetTester) Size() graphics.Size {
	return t.size
}

// SetTheme replaces the theme. Takes effect on the next pump.
func (t *WidgetTester) SetTheme(th *theme.Theme) {
	t.theme = th
}

// PumpWidget mounts w and runs one frame. If the previous root has the
// same type its state tree is reconciled instead of rebuilt.
func (t *WidgetTester) PumpWidget(w core.Widget) {
	root := core.NewElement(w)
	if t.tree == nil {
		t.tree = core.NewTree(root)
	} else {
		t.tree.Diff(root)
	}
	t.root = root
	t.Pump()
}

// Pump runs a layout and paint pass for the mounted widget.
func (t *WidgetTester) Pump() {
	t.recorder.Reset()
	t.node = core.Frame(t.root, t.tree, t.theme, t.recorder, t.size)
}

// Root returns the mounted element.
func (t *WidgetTester) Root() core.Element {
	return t.root
}

// Tree returns the state tree of the mounted element.
func (t *WidgetTester) Tree() *core.Tree {
	return t.tree
}

// Node returns the root layout node of the last frame, or nil.
func (t *WidgetTester) Node() *layout.Node {
	return t.node
}

// Quads returns the fill operations of the last frame in paint order.
func (t *WidgetTester) Quads() []rendering.FillOp {
	return t.recorder.Ops()
}

// Background returns the color the surface was cleared to.
func (t *WidgetTester) Background() graphics.Color {
	c, _ := t.recorder.Cleared()
	return c
}

// MouseInteraction asks the mounted widget for its affordance with the
// cursor at p.
func (t *WidgetTester) MouseInteraction(p graphics.Point) mouse.Interaction {
	return core.Interaction(t.root, t.tree, t.node, mouse.Available(p), t.size)
}

// Find evaluates a finder against the last frame.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.node == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		matches: finder.Evaluate(t.root, layout.NewLayout(t.node)),
		finder:  finder,
	}
}

// Reported returns the errors and panics reported while pumping.
func (t *WidgetTester) Reported() []error {
	return t.reported
}

type failHandler struct {
	t      *testing.T
	tester *WidgetTester
}

func (h *failHandler) HandleError(err *errors.Error) {
	h.tester.reported = append(h.tester.reported, err)
	h.t.Errorf("reported error: %v", err)
}

func (h *failHandler) HandlePanic(err *errors.PanicError) {
	h.tester.reported = append(h.tester.reported, err)
	h.t.Errorf("recovered panic: %v", err)
}
