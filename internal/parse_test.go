package internal

import (
	"errors"
	"testing"
)

func parseString(t *testing.T, s string) *PTree {
	t.Helper()
	tree, err := Parse(lexString(t, s))
	if err != nil {
		t.Fatalf("could not parse %q: %v", s, err)
	}
	return tree
}

// TestParseUnparse tests the canonical notation of parse trees.
func TestParseUnparse(t *testing.T) {
	cases := map[string]struct {
		text, want string
	}{
		"Call":       {"(+ 1 2)", "( + 1 2 )"},
		"Nested":     {"(a (b c) d)", "( a ( b c ) d )"},
		"Deep":       {"(((a)))", "( ( ( a ) ) )"},
		"Empty":      {"()", "( )"},
		"EmptyInner": {"(a ())", "( a ( ) )"},
		"Nil":        {"(NIL)", "( NIL )"},
		"Pair":       {"(a . b)", "( a . b )"},
		"PairNil":    {"(a . NIL)", "( a )"},
		"PairList":   {"(a . (b c))", "( a b c )"},
		"PairLong":   {"(a b . c)", "( a b . c )"},
		"PairEmpty":  {"(a . ())", "( a )"},
		"PairNested": {"(a . (b . ()))", "( a b )"},
		"Atom":       {"x", "x"},
		"Number":     {"-5", "-5"},
		"Quote":      {"'a", "( QUOTE a )"},
		"QuoteList":  {"'(1 2)", "( QUOTE ( 1 2 ) )"},
		"Spacing":    {"( a\n\t(b ) )", "( a ( b ) )"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := parseString(t, c.text).Unparse(); got != c.want {
				t.Errorf("%q: want %q, got %q", c.text, c.want, got)
			}
		})
	}
}

// TestParseDotted tests the dotted pair notation of parse trees.
func TestParseDotted(t *testing.T) {
	cases := map[string]struct {
		text, want string
	}{
		"Two":    {"(A B)", "(A . (B . NIL))"},
		"One":    {"(A)", "(A . NIL)"},
		"Empty":  {"()", "NIL"},
		"Nested": {"((A) B)", "((A . NIL) . (B . NIL))"},
		"Pair":   {"(A . B)", "(A . B)"},
		"Atom":   {"A", "A"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := parseString(t, c.text).String(); got != c.want {
				t.Errorf("%q: want %q, got %q", c.text, c.want, got)
			}
		})
	}
}

// TestParseRoundTrip tests that unparsed output parses to an equal tree.
func TestParseRoundTrip(t *testing.T) {
	srcs := []string{
		"(+ 1 2)",
		"(defun average (x y) (QUOTIENT (PLUS x y) 2))",
		"(a (b (c (d))) () e)",
		"(a b . c)",
		"'(x 'y)",
		"(IF (> 1 2) (QUOTE BAZ) (QUOTE FOO))",
		"atom",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			first := parseString(t, src)
			again := parseString(t, first.Unparse())
			if first.Unparse() != again.Unparse() {
				t.Errorf("%q: unparsed %q, reparsed %q", src, first.Unparse(), again.Unparse())
			}
			if first.String() != again.String() {
				t.Errorf("%q: dotted %q, reparsed %q", src, first.String(), again.String())
			}
		})
	}
}

// TestParseShape tests the cell structure of parse results.
func TestParseShape(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		tree, err := Parse(nil)
		if err != nil {
			t.Fatal(err)
		}
		if !tree.Empty() || tree.Root() != nil {
			t.Errorf("empty input gave %v", tree)
		}
	})
	t.Run("Storage", func(t *testing.T) {
		root := parseString(t, "42").Root()
		if !root.IsStorage() {
			t.Fatal("single token is not a storage cell")
		}
		if a, ok := root.First().(*Atom); !ok || !a.IsNumber() || a.Text() != "42" {
			t.Errorf("wrong atom %v", root.First())
		}
	})
	t.Run("Sublist", func(t *testing.T) {
		root := parseString(t, "((a) b)").Root()
		if root.IsStorage() {
			t.Fatal("list parsed as storage")
		}
		sub, ok := root.First().(*Cell)
		if !ok {
			t.Fatalf("first slot is %T, not a sublist", root.First())
		}
		if sub.Rest() != Nil {
			t.Errorf("sublist rest should be Nil, got %v", sub.Rest())
		}
		if Classify(root.Rest()) != CellRef {
			t.Errorf("rest of outer list should be a cell, got %v", root.Rest())
		}
	})
	t.Run("Terminator", func(t *testing.T) {
		root := parseString(t, "(a)").Root()
		if root.Rest() != Nil {
			t.Errorf("list should end with Nil, got %v", root.Rest())
		}
	})
}

// TestParseClassify tests that tokens become the right kinds of atoms.
func TestParseClassify(t *testing.T) {
	cases := map[string]struct {
		text string
		kind AtomKind
	}{
		"Integer":       {"(5)", IntegerAtom},
		"Negative":      {"(-5)", IntegerAtom},
		"String":        {"(abc)", StringAtom},
		"Nil":           {"(NIL)", NilAtom},
		"NilLower":      {"(nil)", NilAtom},
		"Plus":          {"(+)", SymbolAtom},
		"Times":         {"(*)", SymbolAtom},
		"Minus":         {"(-)", StringAtom},
		"T":             {"(T)", StringAtom},
		"QuotedPlus":    {"(QUOTE (+))", StringAtom},
		"QuotedPlusArg": {"'(+)", StringAtom},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			root := parseString(t, c.text).Root()
			// Descend to the innermost first atom.
			var a *Atom
			for r := root.First(); a == nil; {
				switch v := r.(type) {
				case *Atom:
					if v.Text() == "QUOTE" {
						r = root.Next().First()
						continue
					}
					a = v
				case *Cell:
					root = v
					r = v.First()
				default:
					t.Fatalf("%q: no atom found", c.text)
				}
			}
			if a.Kind() != c.kind {
				t.Errorf("%q: want %v, got %v %q", c.text, c.kind, a.Kind(), a.Text())
			}
		})
	}
}

// TestParseErrors tests that malformed token streams fail with parse errors.
func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"Unclosed":      "(a (b)",
		"UnclosedDeep":  "(((",
		"DotFirst":      "(. a)",
		"DotMissing":    "(a . )",
		"DotTwice":      "(a . . b)",
		"DotExtra":      "(a . b c)",
		"DotOnly":       ".",
		"Trailing":      "(a) b",
		"TrailingList":  "(a) (b)",
		"BigInteger":    "(99999999999999999999)",
		"OpenOnly":      "(",
		"DotAfterPair":  "(a . b . c)",
		"ListAfterPair": "(a . b (c))",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			var l Lexer
			if err := l.Append(src); err != nil {
				t.Fatalf("%q: lexer error %v", src, err)
			}
			if tree, err := Parse(l.Tokens()); !errors.Is(err, ErrParse) {
				t.Errorf("%q: want parse error, got %v, %v", src, tree, err)
			}
		})
	}
}

// TestParseAll tests splitting a stream into top-level forms.
func TestParseAll(t *testing.T) {
	forms, err := ParseAll(lexString(t, "(a b) c (d (e)) 'f"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"( a b )", "c", "( d ( e ) )", "( QUOTE f )"}
	if len(forms) != len(want) {
		t.Fatalf("want %d forms, got %d", len(want), len(forms))
	}
	for i, f := range forms {
		if f.Unparse() != want[i] {
			t.Errorf("form %d: want %q, got %q", i, want[i], f.Unparse())
		}
	}
}
