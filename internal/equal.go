package internal

import "github.com/zephyrtronium/contains"

// isNilExpr reports whether e is the NIL atom or the empty list, which are
// interchangeable wherever LISP expects a false value.
func isNilExpr(e SExpression) bool {
	switch e := e.(type) {
	case *Atom:
		return e.IsNil()
	case *List:
		return e.IsEmpty()
	}
	return false
}

// Eql is strict equality: atoms must have the same variant and payload, and
// lists are only Eql when both are empty. NIL and the empty list are Eql.
func Eql(a, b SExpression) bool {
	if isNilExpr(a) && isNilExpr(b) {
		return true
	}
	switch a := a.(type) {
	case *Atom:
		b, ok := b.(*Atom)
		return ok && a.ValueEqual(b)
	case *List:
		b, ok := b.(*List)
		return ok && a.IsEmpty() && b.IsEmpty()
	}
	return false
}

// Equal is deep structural equality: atoms compare as in Eql, and lists are
// Equal when they have the same length and Equal elements in order.
func Equal(a, b SExpression) bool {
	if isNilExpr(a) && isNilExpr(b) {
		return true
	}
	switch a := a.(type) {
	case *Atom:
		b, ok := b.(*Atom)
		return ok && a.ValueEqual(b)
	case *List:
		b, ok := b.(*List)
		return ok && a.IsEmpty() == b.IsEmpty() && equalChains(a.root, b.root)
	}
	return false
}

// equalChains compares two list spines element by element. A spine that loops
// back on itself ends the comparison at the repeated cell; the lists are
// Equal only if both loop at the same position.
func equalChains(x, y *Cell) bool {
	var xs, ys contains.Set
	for {
		xn, yn := xs.Add(x.UniqueID()), ys.Add(y.UniqueID())
		if !xn || !yn {
			return xn == yn
		}
		if !Equal(refExpr(x.first), refExpr(y.first)) {
			return false
		}
		xc, xok := x.rest.(*Cell)
		yc, yok := y.rest.(*Cell)
		switch {
		case xok && yok:
			x, y = xc, yc
		case xok || yok:
			return false
		default:
			return Equal(refExpr(restOrNil(x)), refExpr(restOrNil(y)))
		}
	}
}

func restOrNil(c *Cell) Ref {
	if c.rest == nil {
		return Nil
	}
	return c.rest
}
