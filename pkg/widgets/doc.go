// Package widgets provides the concrete widgets that make up a tree.
//
// # Widget Construction
//
// Widgets are small immutable values built with a constructor and refined
// with chained methods:
//
//	widgets.Horizontal(16).Style("separator")
//	widgets.NewColumn(a, b).WithPadding(8).WithSpacing(4)
//
// Chained methods return copies; they never mutate the receiver. Call
// Element to wrap a widget so it can be placed inside a container.
//
// # Layout Widgets
//
// Row and Column stack heterogeneous children along one axis. Children
// with a fixed or shrinking main-axis length are laid out first; the space
// left over is shared by children that fill, in proportion to their fill
// portion:
//
//	widgets.NewRow(
//	    widgets.HorizontalSpace(layout.Fill).Element(),
//	    widgets.Vertical(8).Element(),
//	    widgets.HorizontalSpace(layout.FillPortion(2)).Element(),
//	)
//
// Space is an invisible spacer with its own width and height lengths.
//
// # Rules
//
// Rule draws a horizontal or vertical divider whose color, thickness,
// radius and fill mode come from the theme entry for its style.
//
// # Pointer Affordances
//
// MouseArea wraps content and reports a cursor interaction while the
// cursor is over it. Containers forward the question to the child under
// the cursor.
package widgets
