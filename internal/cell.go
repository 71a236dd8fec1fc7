package internal

import (
	"strings"

	"github.com/zephyrtronium/contains"
)

// A Ref is the content of a slot in the cons graph. It is exactly one of
// *Atom, *Cell, or Nil. The interface is sealed; no other type implements it.
type Ref interface {
	ref()
}

type nilRef struct{}

func (nilRef) ref() {}

// String returns "NIL".
func (nilRef) String() string {
	return "NIL"
}

// Nil is the empty-list terminator. It is the only value of its type, so
// comparing a Ref against Nil is always an identity test.
var Nil Ref = nilRef{}

// RefKind classifies a Ref.
type RefKind int

// Ref classifications.
const (
	NilRef RefKind = iota
	AtomRef
	CellRef
)

// Classify returns the variant of r. A Go nil Ref is a programming error and
// panics.
func Classify(r Ref) RefKind {
	switch r.(type) {
	case nilRef:
		return NilRef
	case *Atom:
		return AtomRef
	case *Cell:
		return CellRef
	}
	panic("lisp: invalid Ref")
}

// A Cell is a first/rest pair. When the rest slot is present, the cell is a
// list node and rest is either the next Cell, Nil, or (for an explicit dotted
// pair) an Atom. A storage-only cell has no rest and holds a single value.
type Cell struct {
	first Ref
	rest  Ref
}

func (*Cell) ref() {}

// NewCell creates a list node holding first and terminated by Nil.
func NewCell(first Ref) *Cell {
	if first == nil {
		first = Nil
	}
	return &Cell{first: first, rest: Nil}
}

// NewStorageCell creates a storage-only cell holding v.
func NewStorageCell(v Ref) *Cell {
	if v == nil {
		v = Nil
	}
	return &Cell{first: v}
}

// First returns the cell's value slot.
func (c *Cell) First() Ref {
	return c.first
}

// Rest returns the cell's rest slot, or nil if the cell is storage-only.
func (c *Cell) Rest() Ref {
	return c.rest
}

// SetFirst replaces the cell's value slot. Go nil is stored as Nil.
func (c *Cell) SetFirst(r Ref) {
	if r == nil {
		r = Nil
	}
	c.first = r
}

// SetRest replaces the cell's rest slot, making it a list node if it was
// storage-only. Go nil is stored as Nil.
func (c *Cell) SetRest(r Ref) {
	if r == nil {
		r = Nil
	}
	c.rest = r
}

// IsNil is true when the cell's first slot is Nil. Such a cell is both the
// false atom and the empty list.
func (c *Cell) IsNil() bool {
	return c.first == Nil
}

// IsStorage is true when the cell has no rest slot.
func (c *Cell) IsStorage() bool {
	return c.rest == nil
}

// Next returns the following list node, or nil at the end of the chain or
// when the rest slot holds a dotted atom.
func (c *Cell) Next() *Cell {
	n, _ := c.rest.(*Cell)
	return n
}

// String returns the cell in dotted pair notation, e.g. (A . (B . NIL)).
func (c *Cell) String() string {
	var b strings.Builder
	writeDotted(&b, c, &contains.Set{})
	return b.String()
}

// writeDotted writes c in dotted notation. spine holds the cells already
// visited along the current rest chain; a repeat means the chain was appended
// onto itself, and it is written as "...".
func writeDotted(b *strings.Builder, c *Cell, spine *contains.Set) {
	if !spine.Add(c.UniqueID()) {
		b.WriteString("...")
		return
	}
	if c.IsStorage() {
		writeRefDotted(b, c.first, &contains.Set{})
		return
	}
	if c.IsNil() && c.rest == Nil {
		b.WriteString("NIL")
		return
	}
	b.WriteByte('(')
	writeRefDotted(b, c.first, &contains.Set{})
	b.WriteString(" . ")
	writeRefDotted(b, c.rest, spine)
	b.WriteByte(')')
}

func writeRefDotted(b *strings.Builder, r Ref, spine *contains.Set) {
	switch r := r.(type) {
	case *Cell:
		writeDotted(b, r, spine)
	case *Atom:
		b.WriteString(r.String())
	default:
		b.WriteString("NIL")
	}
}
