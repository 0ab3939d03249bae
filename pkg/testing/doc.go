// Package testing provides a widget testing framework for lattice.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := latticetest.NewWidgetTesterWithT(t)
//	    tester.SetSize(graphics.Size{Width: 200, Height: 20})
//	    tester.PumpWidget(widgets.Horizontal(20))
//
//	    quads := tester.Quads()
//	    if len(quads) != 1 {
//	        t.Fatalf("expected one quad, got %d", len(quads))
//	    }
//	}
//
// # Finders
//
// Locate widgets in the last frame together with their absolute bounds:
//
//	rule := tester.Find(latticetest.ByType[widgets.Rule]()).Bounds()
//
// # Snapshot Testing
//
// Capture and compare layout and paint snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.json")
//
// Update snapshots with:
//
//	LATTICE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import latticetest "github.com/go-drift/lattice/pkg/testing"
package testing
