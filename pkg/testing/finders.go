package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/graphics"
	"github.com/go-drift/lattice/pkg/layout"
)

// Match is an element found in the last frame together with its placed
// layout.
type Match struct {
	Element core.Element
	Layout  layout.Layout
}

// Bounds returns the absolute bounds of the match.
func (m Match) Bounds() graphics.Rect {
	return m.Layout.Bounds()
}

// Finder locates elements in a laid-out tree.
type Finder interface {
	// Evaluate returns all matches under root (depth-first pre-order).
	Evaluate(root core.Element, l layout.Layout) []Match
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []Match
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() Match {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.description()))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) Match {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.description()))
	}
	return r.matches[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []Match {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// Widget returns the widget of the first match. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Element.Widget()
}

// Bounds returns the absolute bounds of the first match. Panics if no
// matches.
func (r FinderResult) Bounds() graphics.Rect {
	return r.First().Bounds()
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// typeFinder matches elements whose widget is of the specified type.
type typeFinder struct {
	widgetType reflect.Type
	typeName   string
}

func (f *typeFinder) Evaluate(root core.Element, l layout.Layout) []Match {
	return collectMatches(root, l, func(e core.Element) bool {
		return reflect.TypeOf(e.Widget()) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches elements whose widget is type T.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &typeFinder{widgetType: t, typeName: t.String()}
}

// predicateFinder matches elements satisfying a predicate.
type predicateFinder struct {
	fn   func(core.Element) bool
	desc string
}

func (f *predicateFinder) Evaluate(root core.Element, l layout.Layout) []Match {
	return collectMatches(root, l, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(core.Element) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds matches of 'matching' strictly below matches of
// 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.Element, l layout.Layout) []Match {
	var results []Match
	for _, ancestor := range f.of.Evaluate(root, l) {
		children := ancestor.Layout.Children()
		for i, child := range ancestor.Element.Children() {
			if i >= len(children) {
				break
			}
			results = append(results, f.matching.Evaluate(child, children[i])...)
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements satisfying 'matching'
// that are descendants of elements matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal, collecting
// elements that satisfy the predicate.
func collectMatches(root core.Element, l layout.Layout, predicate func(core.Element) bool) []Match {
	var results []Match
	walkTree(root, l, func(e core.Element, l layout.Layout) {
		if predicate(e) {
			results = append(results, Match{Element: e, Layout: l})
		}
	})
	return results
}

// walkTree visits every element paired with its layout. Elements whose
// node has fewer children than the element are visited up to the shorter
// of the two.
func walkTree(root core.Element, l layout.Layout, visitor func(core.Element, layout.Layout)) {
	if l.Node() == nil {
		return
	}
	visitor(root, l)
	children := l.Children()
	for i, child := range root.Children() {
		if i >= len(children) {
			return
		}
		walkTree(child, children[i], visitor)
	}
}
