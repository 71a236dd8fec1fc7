package internal

import "strings"

// A PTree is the result of parsing one form. The zero PTree is the empty
// result produced for an empty token stream.
type PTree struct {
	root *Cell
}

// NewPTree wraps a parsed cell chain.
func NewPTree(root *Cell) *PTree {
	return &PTree{root: root}
}

// Root returns the tree's root cell, or nil for an empty parse.
func (t *PTree) Root() *Cell {
	return t.root
}

// Empty reports whether the parse produced nothing.
func (t *PTree) Empty() bool {
	return t == nil || t.root == nil
}

// Unparse reconstructs the canonical parenthesized notation of the tree,
// recursing into nested lists, e.g. ( + 1 ( * 2 3 ) ). A single atom
// unparses to its text, and an empty parse to the empty string.
func (t *PTree) Unparse() string {
	if t.Empty() {
		return ""
	}
	var b strings.Builder
	unparseCell(&b, t.root)
	return b.String()
}

// String returns the tree in dotted pair notation.
func (t *PTree) String() string {
	if t.Empty() {
		return ""
	}
	return t.root.String()
}
