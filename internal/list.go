package internal

import (
	"strings"

	"github.com/zephyrtronium/contains"
)

// An SExpression is the result of evaluating a form: either an *Atom or a
// *List. The interface is sealed.
type SExpression interface {
	sexpr()
	String() string
}

// A List is a handle on a chain of list cells. It keeps a pointer to the
// chain's last cell so that Add is constant time.
//
// An empty list is a single cell whose first slot is Nil. Since a NIL element
// is stored as the NIL atom rather than as Nil, (NIL) and () are distinct.
type List struct {
	root *Cell
	tail *Cell
}

// NewList creates an empty list.
func NewList() *List {
	c := NewCell(Nil)
	return &List{root: c, tail: c}
}

// EmptyList creates an empty list. It is equivalent to NewList and reads
// better where the result is a value rather than something to fill.
func EmptyList() *List {
	return NewList()
}

// ListOf creates a list containing the given elements in order.
func ListOf(elems ...SExpression) *List {
	l := NewList()
	for _, e := range elems {
		l.AddExpr(e)
	}
	return l
}

// ListFrom creates a List handle on an existing chain rooted at c. The chain
// is shared, not copied. A storage-only cell becomes a one-element list of
// its value.
func ListFrom(c *Cell) *List {
	if c.IsStorage() {
		l := NewList()
		l.Add(c.first)
		return l
	}
	l := &List{root: c, tail: c}
	spine := contains.Set{}
	spine.Add(c.UniqueID())
	for n := c.Next(); n != nil; n = n.Next() {
		if !spine.Add(n.UniqueID()) {
			break
		}
		l.tail = n
	}
	return l
}

func (*List) sexpr()    {}
func (*List) bindable() {}

// Root returns the first cell of the chain.
func (l *List) Root() *Cell {
	return l.root
}

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool {
	return l.root.IsNil()
}

// Add appends r as a new element. Go nil and Nil are stored as the NIL atom.
// If the last cell holds a dotted atom in its rest slot, that atom is
// replaced.
func (l *List) Add(r Ref) {
	if r == nil || r == Nil {
		r = NIL
	}
	if l.IsEmpty() {
		l.root.first = r
		if l.root.rest == nil {
			l.root.rest = Nil
		}
		l.tail = l.root
		return
	}
	c := NewCell(r)
	l.tail.rest = c
	l.tail = c
}

// AddAtom appends an atom element.
func (l *List) AddAtom(a *Atom) {
	l.Add(a)
}

// AddList appends sub as a single element, i.e. as a nested list. The
// sublist's cells are shared.
func (l *List) AddList(sub *List) {
	l.Add(sub.root)
}

// AddExpr appends an evaluation result, as an atom or as a nested list.
func (l *List) AddExpr(e SExpression) {
	switch e := e.(type) {
	case *Atom:
		l.AddAtom(e)
	case *List:
		l.AddList(e)
	}
}

// Append splices other's elements onto the end of l. This moves ownership
// rather than copying: l's last cell is linked to other's first, and l's tail
// becomes other's tail, so later calls to l.Add also extend other. Appending
// a list onto itself creates a cycle, which the traversal methods detect.
func (l *List) Append(other *List) {
	if other.IsEmpty() {
		return
	}
	if l.IsEmpty() {
		l.root = other.root
		l.tail = other.tail
		return
	}
	l.tail.rest = other.root
	l.tail = other.tail
}

// SetDottedRest stores an atom in the rest slot of the list's last cell,
// forming an explicit dotted pair. Nil restores a proper terminator.
func (l *List) SetDottedRest(r Ref) {
	if c, ok := r.(*Cell); ok {
		l.tail.rest = c
		l.tail = ListFrom(c).tail
		return
	}
	l.tail.SetRest(r)
}

// DottedRest returns the atom in the final rest slot of a dotted list, or
// nil if the list is proper.
func (l *List) DottedRest() *Atom {
	a, _ := l.tail.rest.(*Atom)
	return a
}

// walk calls f on each cell of the list's spine, stopping early if f returns
// false or if the spine loops back on itself.
func (l *List) walk(f func(c *Cell) bool) {
	if l.IsEmpty() {
		return
	}
	spine := contains.Set{}
	for c := l.root; c != nil; c = c.Next() {
		if !spine.Add(c.UniqueID()) || !f(c) {
			return
		}
	}
}

// Length returns the number of top-level elements.
func (l *List) Length() int {
	n := 0
	l.walk(func(*Cell) bool {
		n++
		return true
	})
	return n
}

// Size returns the number of atoms reachable from the list, counting through
// nested sublists. Sublists contribute their atoms, not themselves.
func (l *List) Size() int {
	n := 0
	l.walk(func(c *Cell) bool {
		n += refSize(c.first)
		if a, ok := c.rest.(*Atom); ok {
			n += refSize(a)
		}
		return true
	})
	return n
}

func refSize(r Ref) int {
	switch r := r.(type) {
	case *Atom:
		return 1
	case *Cell:
		return ListFrom(r).Size()
	}
	return 0
}

// Car returns the list's first element. The car of the empty list is the
// empty list.
func (l *List) Car() SExpression {
	return refExpr(l.root.first)
}

// Cdr returns everything after the first element: the rest of the chain as a
// list, a dotted atom, or the empty list.
func (l *List) Cdr() SExpression {
	if l.root.rest == nil {
		return EmptyList()
	}
	return refExpr(l.root.rest)
}

// refExpr classifies a slot as an evaluation result.
func refExpr(r Ref) SExpression {
	switch r := r.(type) {
	case *Atom:
		return r
	case *Cell:
		return ListFrom(r)
	}
	return EmptyList()
}

// Refs returns the top-level element slots in order. A dotted atom in the
// final rest slot is not included.
func (l *List) Refs() []Ref {
	var refs []Ref
	l.walk(func(c *Cell) bool {
		refs = append(refs, c.first)
		return true
	})
	return refs
}

// Elements returns the top-level elements as evaluation results.
func (l *List) Elements() []SExpression {
	var elems []SExpression
	l.walk(func(c *Cell) bool {
		elems = append(elems, refExpr(c.first))
		return true
	})
	return elems
}

// Copy returns a new list with fresh top-level cells holding the same
// elements. Nested sublists are shared.
func (l *List) Copy() *List {
	r := NewList()
	l.walk(func(c *Cell) bool {
		r.Add(c.first)
		return true
	})
	if a, ok := l.tail.rest.(*Atom); ok {
		r.tail.rest = a
	}
	return r
}

// String returns the list in dotted pair notation. The empty list is NIL.
func (l *List) String() string {
	return l.root.String()
}

// Unparse returns the list in canonical parenthesized notation, e.g.
// ( + 1 2 ).
func (l *List) Unparse() string {
	var b strings.Builder
	unparseCell(&b, l.root)
	return b.String()
}

func unparseCell(b *strings.Builder, c *Cell) {
	if c.IsStorage() {
		unparseRef(b, c.first)
		return
	}
	if c.IsNil() && c.rest == Nil {
		b.WriteString("( )")
		return
	}
	b.WriteByte('(')
	spine := contains.Set{}
	for cur := c; cur != nil; {
		if !spine.Add(cur.UniqueID()) {
			b.WriteString(" ...")
			break
		}
		b.WriteByte(' ')
		unparseRef(b, cur.first)
		next, ok := cur.rest.(*Cell)
		if !ok {
			if a, ok := cur.rest.(*Atom); ok {
				b.WriteString(" . ")
				b.WriteString(a.String())
			}
			break
		}
		cur = next
	}
	b.WriteString(" )")
}

func unparseRef(b *strings.Builder, r Ref) {
	switch r := r.(type) {
	case *Atom:
		b.WriteString(r.String())
	case *Cell:
		unparseCell(b, r)
	default:
		b.WriteString("NIL")
	}
}

// Format returns the canonical text of an evaluation result: the atom's text
// or the list's unparsed form.
func Format(e SExpression) string {
	switch e := e.(type) {
	case *Atom:
		return e.String()
	case *List:
		return e.Unparse()
	}
	return "<nil>"
}
