package internal

import (
	"errors"
	"testing"
)

// TestAtomConversions tests the conversion table between atom variants.
func TestAtomConversions(t *testing.T) {
	type want struct {
		v  interface{}
		ok bool
	}
	cases := map[string]struct {
		a             *Atom
		toInt, toBool want
		toStr         want
	}{
		"Integer":      {NewInteger(12), want{int64(12), true}, want{true, true}, want{"12", true}},
		"IntegerZero":  {NewInteger(0), want{int64(0), true}, want{false, true}, want{"0", true}},
		"IntegerNeg":   {NewInteger(-3), want{int64(-3), true}, want{true, true}, want{"-3", true}},
		"BooleanT":     {T, want{int64(-1), true}, want{true, true}, want{"T", true}},
		"BooleanF":     {F, want{int64(0), true}, want{false, true}, want{"F", true}},
		"String":       {NewString("abc"), want{nil, false}, want{true, true}, want{"abc", true}},
		"StringEmpty":  {NewString(""), want{nil, false}, want{false, true}, want{"", true}},
		"StringDigits": {NewString("12"), want{nil, false}, want{true, true}, want{"12", true}},
		"Symbol":       {NewSymbol("+"), want{nil, false}, want{nil, false}, want{nil, false}},
		"Nil":          {NIL, want{nil, false}, want{false, true}, want{"NIL", true}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			check := func(conv string, v interface{}, err error, w want) {
				t.Helper()
				if !w.ok {
					if !errors.Is(err, ErrTypeConversion) {
						t.Errorf("%s: want type conversion error, got %v, %v", conv, v, err)
					}
					return
				}
				if err != nil {
					t.Errorf("%s: %v", conv, err)
					return
				}
				if v != w.v {
					t.Errorf("%s: want %v, got %v", conv, w.v, v)
				}
			}
			n, err := c.a.AsInt()
			check("AsInt", n, err, c.toInt)
			b, err := c.a.AsBool()
			check("AsBool", b, err, c.toBool)
			s, err := c.a.AsString()
			check("AsString", s, err, c.toStr)
		})
	}
}

// TestAtomPredicates tests variant predicates.
func TestAtomPredicates(t *testing.T) {
	cases := map[string]struct {
		a               *Atom
		literal, symbol bool
		number, nilAtom bool
		kind            AtomKind
	}{
		"Integer": {NewInteger(1), true, false, true, false, IntegerAtom},
		"String":  {NewString("a"), true, false, false, false, StringAtom},
		"Boolean": {T, true, false, false, false, BooleanAtom},
		"Symbol":  {NewSymbol("*"), false, true, false, false, SymbolAtom},
		"Nil":     {NIL, true, true, false, true, NilAtom},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if c.a.IsLiteral() != c.literal {
				t.Errorf("IsLiteral: want %t", c.literal)
			}
			if c.a.IsSymbol() != c.symbol {
				t.Errorf("IsSymbol: want %t", c.symbol)
			}
			if c.a.IsNumber() != c.number {
				t.Errorf("IsNumber: want %t", c.number)
			}
			if c.a.IsNil() != c.nilAtom {
				t.Errorf("IsNil: want %t", c.nilAtom)
			}
			if c.a.Kind() != c.kind {
				t.Errorf("Kind: want %v, got %v", c.kind, c.a.Kind())
			}
		})
	}
}

// TestAtomValueEqual tests that value equality never coerces between
// variants.
func TestAtomValueEqual(t *testing.T) {
	cases := map[string]struct {
		a, b *Atom
		want bool
	}{
		"SameInt":        {NewInteger(4), NewInteger(4), true},
		"DiffInt":        {NewInteger(4), NewInteger(5), false},
		"SameString":     {NewString("x"), NewString("x"), true},
		"DiffString":     {NewString("x"), NewString("X"), false},
		"ZeroF":          {NewInteger(0), F, false},
		"MinusOneT":      {NewInteger(-1), T, false},
		"StringInt":      {NewString("1"), NewInteger(1), false},
		"NilF":           {NIL, F, false},
		"NilString":      {NIL, NewString("NIL"), false},
		"Booleans":       {NewBoolean(true), T, true},
		"SymbolString":   {NewSymbol("+"), NewString("+"), false},
		"SymbolSymbol":   {NewSymbol("+"), NewSymbol("+"), true},
		"TStringT":       {T, NewString("T"), false},
		"NilNil":         {NIL, NIL, true},
		"DifferentBools": {T, F, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.a.ValueEqual(c.b); got != c.want {
				t.Errorf("%v == %v: want %t, got %t", c.a, c.b, c.want, got)
			}
			if got := c.b.ValueEqual(c.a); got != c.want {
				t.Errorf("%v == %v: want %t, got %t", c.b, c.a, c.want, got)
			}
		})
	}
}

// TestNilDuality tests that NIL and F agree in boolean context without being
// the same value.
func TestNilDuality(t *testing.T) {
	nb, err := NIL.AsBool()
	if err != nil {
		t.Fatal(err)
	}
	fb, err := F.AsBool()
	if err != nil {
		t.Fatal(err)
	}
	if nb != fb {
		t.Errorf("NIL is %t but F is %t", nb, fb)
	}
	if Eql(NIL, F) {
		t.Error("NIL is EQL to F")
	}
	if !Eql(NIL, EmptyList()) {
		t.Error("NIL is not EQL to the empty list")
	}
	if ok, err := Truthy(EmptyList()); ok || err != nil {
		t.Errorf("empty list is truthy: %t, %v", ok, err)
	}
	if ok, err := Truthy(NIL); ok || err != nil {
		t.Errorf("NIL is truthy: %t, %v", ok, err)
	}
	if ok, err := Truthy(ListOf(NIL)); !ok || err != nil {
		t.Errorf("(NIL) is not truthy: %t, %v", ok, err)
	}
}
