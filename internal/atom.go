package internal

import (
	"fmt"
	"strconv"
)

// AtomKind is the variant of an Atom.
type AtomKind int

// Atom variants.
const (
	StringAtom AtomKind = iota
	IntegerAtom
	BooleanAtom
	SymbolAtom
	NilAtom
)

var atomKindNames = [...]string{"String", "Integer", "Boolean", "Symbol", "NIL"}

// String returns the name of the atom kind.
func (k AtomKind) String() string {
	if k < StringAtom || k > NilAtom {
		return fmt.Sprintf("AtomKind(%d)", int(k))
	}
	return atomKindNames[k]
}

// An Atom is an immutable, indivisible value: a string literal, an integer, a
// boolean, a symbol, or NIL.
type Atom struct {
	kind AtomKind
	text string
	num  int64
}

// Singleton atoms. These are the canonical instances; NewBoolean always
// returns T or F.
var (
	NIL = &Atom{kind: NilAtom, text: "NIL"}
	T   = &Atom{kind: BooleanAtom, text: "T", num: 1}
	F   = &Atom{kind: BooleanAtom, text: "F"}
)

// NewInteger creates an integer atom.
func NewInteger(n int64) *Atom {
	return &Atom{kind: IntegerAtom, num: n, text: strconv.FormatInt(n, 10)}
}

// NewString creates a string literal atom.
func NewString(s string) *Atom {
	return &Atom{kind: StringAtom, text: s}
}

// NewSymbol creates a symbol atom.
func NewSymbol(name string) *Atom {
	return &Atom{kind: SymbolAtom, text: name}
}

// NewBoolean returns T or F.
func NewBoolean(b bool) *Atom {
	if b {
		return T
	}
	return F
}

func (*Atom) ref()      {}
func (*Atom) sexpr()    {}
func (*Atom) bindable() {}

// Kind returns the atom's variant.
func (a *Atom) Kind() AtomKind {
	return a.kind
}

// Text returns the atom's source text: the decimal form of an integer, T or F
// for booleans, NIL, or the string or symbol name itself.
func (a *Atom) Text() string {
	return a.text
}

// String returns the atom's textual form.
func (a *Atom) String() string {
	return a.text
}

// IsLiteral is true for every variant except Symbol.
func (a *Atom) IsLiteral() bool {
	return a.kind != SymbolAtom
}

// IsSymbol is true for symbols and for NIL, which acts as the false symbol.
func (a *Atom) IsSymbol() bool {
	return a.kind == SymbolAtom || a.kind == NilAtom
}

// IsNumber is true for integer atoms.
func (a *Atom) IsNumber() bool {
	return a.kind == IntegerAtom
}

// IsNil is true for the NIL atom.
func (a *Atom) IsNil() bool {
	return a.kind == NilAtom
}

// AsInt converts the atom to an integer. Booleans convert to -1 for T and 0
// for F. Strings, symbols, and NIL fail.
func (a *Atom) AsInt() (int64, error) {
	switch a.kind {
	case IntegerAtom:
		return a.num, nil
	case BooleanAtom:
		if a.num != 0 {
			return -1, nil
		}
		return 0, nil
	}
	return 0, a.conversionError("Integer")
}

// AsBool converts the atom to a boolean. Integers are true when nonzero,
// strings when nonempty, and NIL is false. Symbols fail.
func (a *Atom) AsBool() (bool, error) {
	switch a.kind {
	case IntegerAtom:
		return a.num != 0, nil
	case BooleanAtom:
		return a.num != 0, nil
	case StringAtom:
		return a.text != "", nil
	case NilAtom:
		return false, nil
	}
	return false, a.conversionError("Boolean")
}

// AsString converts the atom to a string. Symbols are not literals, so they
// fail.
func (a *Atom) AsString() (string, error) {
	if a.kind == SymbolAtom {
		return "", a.conversionError("String")
	}
	return a.text, nil
}

func (a *Atom) conversionError(to string) error {
	return newError(ErrTypeConversion, "cannot convert %v %s to %s", a.kind, a.text, to)
}

// ValueEqual reports whether two atoms have the same variant and payload.
// There is no coercion between variants, so 0 and F are not equal.
func (a *Atom) ValueEqual(b *Atom) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case IntegerAtom, BooleanAtom:
		return a.num == b.num
	}
	return a.text == b.text
}
