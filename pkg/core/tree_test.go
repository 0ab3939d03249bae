package core

import (
	"testing"

	"github.com/go-drift/lattice/pkg/graphics"
)

func leaf() Element {
	return NewElement(testLeaf{size: graphics.Size{Width: 1, Height: 1}})
}

func TestNewTree(t *testing.T) {
	tree := NewTree(NewElement(testStack{children: []Element{leaf(), leaf()}}))

	if _, ok := tree.State.(*stackState); !ok {
		t.Errorf("expected stack state, got %T", tree.State)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.Children))
	}
	if tree.Children[0].State != nil {
		t.Error("stateless leaf should have nil state")
	}
}

func TestTree_DiffKeepsState(t *testing.T) {
	tree := NewTree(NewElement(testStack{children: []Element{leaf()}}))
	state := tree.State.(*stackState)
	state.draws = 7

	tree.Diff(NewElement(testStack{children: []Element{leaf(), leaf(), leaf()}}))

	if tree.State != state {
		t.Error("expected state to survive a diff with the same type")
	}
	if len(tree.Children) != 3 {
		t.Errorf("expected children to grow to 3, got %d", len(tree.Children))
	}

	tree.Diff(NewElement(testStack{}))
	if len(tree.Children) != 0 {
		t.Errorf("expected children to shrink to 0, got %d", len(tree.Children))
	}
}

func TestTree_DiffRebuildsOnTypeChange(t *testing.T) {
	tree := NewTree(NewElement(testStack{children: []Element{leaf()}}))

	tree.Diff(leaf())

	if tree.State != nil {
		t.Errorf("expected state to be dropped, got %v", tree.State)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
}

func TestTree_DiffNestedState(t *testing.T) {
	inner := func() Element { return NewElement(testStack{}) }
	tree := NewTree(NewElement(testStack{children: []Element{leaf(), inner()}}))
	nested := tree.Children[1].State

	tree.Diff(NewElement(testStack{children: []Element{leaf(), inner()}}))
	if tree.Children[1].State != nested {
		t.Error("expected nested state to survive")
	}

	tree.Diff(NewElement(testStack{children: []Element{inner(), leaf()}}))
	if tree.Children[1].State != nil {
		t.Error("expected swapped child to be rebuilt")
	}
}

func TestTree_Child(t *testing.T) {
	tree := NewTree(leaf())

	if tree.Child(0) == nil || tree.Child(-1) == nil {
		t.Fatal("Child should never return nil")
	}
	var missing *Tree
	if missing.Child(3) == nil {
		t.Error("Child on a nil tree should return an empty tree")
	}
}
