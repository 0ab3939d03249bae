package core

import "reflect"

// Tree mirrors an element tree and owns each widget's private state.
type Tree struct {
	// Tag is the dynamic type of the widget the node was built for.
	Tag reflect.Type
	// State is the widget's private state, nil for stateless widgets.
	State any
	// Children mirror the widget's children in order.
	Children []*Tree
}

// NewTree builds a state tree for e and its descendants.
func NewTree(e Element) *Tree {
	t := &Tree{Tag: tagOf(e)}
	if s, ok := e.Widget().(Stateful); ok {
		t.State = s.State()
	}
	for _, child := range e.Children() {
		t.Children = append(t.Children, NewTree(child))
	}
	return t
}

// Diff reconciles the tree with a new element. State survives when the
// widget type is unchanged; otherwise the node is rebuilt. Children are
// matched by position.
func (t *Tree) Diff(e Element) {
	if t.Tag != tagOf(e) {
		*t = *NewTree(e)
		return
	}
	children := e.Children()
	if len(t.Children) > len(children) {
		t.Children = t.Children[:len(children)]
	}
	for i, child := range children {
		if i < len(t.Children) {
			t.Children[i].Diff(child)
			continue
		}
		t.Children = append(t.Children, NewTree(child))
	}
}

// Child returns the i-th child, or an empty tree if the tree does not
// mirror that child. Widgets can always pass the result to a child's Draw.
func (t *Tree) Child(i int) *Tree {
	if t == nil || i < 0 || i >= len(t.Children) {
		return &Tree{}
	}
	return t.Children[i]
}

func tagOf(e Element) reflect.Type {
	if e.Widget() == nil {
		return nil
	}
	return reflect.TypeOf(e.Widget())
}
