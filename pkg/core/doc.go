// Package core defines the contract every widget satisfies and the frame
// pipeline that drives it.
//
// # Core Types
//
// Widget is an immutable description of a visual element: it reports how
// it wants to occupy each axis, lays itself out inside the limits its
// parent passes down, and paints itself into a renderer once its bounds
// are known.
//
// Element wraps any Widget so containers can hold heterogeneous children
// and treat them identically for layout and paint.
//
// Tree carries the private, per-widget state that survives between frames.
// Widgets that need state implement Stateful; containers implement
// Container so the tree can mirror their children.
//
// # Frames
//
// A frame is a single top-down layout pass followed by a paint pass:
//
//	tree := core.NewTree(root)
//	node := core.Frame(root, tree, theme.Light(), renderer, graphics.Size{Width: 800, Height: 600})
//
// Layout and paint are synchronous and never fail. The theme is read-only
// for the whole frame; only the renderer is written to.
//
// # Pointer Input
//
// Widgets that want to influence the cursor implement Interactive. Event
// routing from the host window into widgets is left to the host.
package core
