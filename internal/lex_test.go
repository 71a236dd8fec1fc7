package internal

import (
	"errors"
	"testing"
)

// kinds extracts the kind and text of each token, dropping positions.
func kinds(toks []Token) []Token {
	r := make([]Token, len(toks))
	for i, t := range toks {
		r[i] = Token{Kind: t.Kind, Text: t.Text}
	}
	return r
}

func sameTokens(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			return false
		}
	}
	return true
}

func lexString(t *testing.T, s string) []Token {
	t.Helper()
	var l Lexer
	if err := l.Append(s); err != nil {
		t.Fatalf("could not lex %q: %v", s, err)
	}
	return l.Tokens()
}

var (
	tOpen  = Token{Kind: OpenToken, Text: "("}
	tClose = Token{Kind: CloseToken, Text: ")"}
	tDot   = Token{Kind: DotToken, Text: "."}
	tQuote = Token{Kind: IdentToken, Text: "QUOTE"}
)

func tIdent(s string) Token { return Token{Kind: IdentToken, Text: s} }
func tNum(s string) Token   { return Token{Kind: NumberToken, Text: s} }

// TestLexSingles tests that individual tokens have the correct kinds and
// values.
func TestLexSingles(t *testing.T) {
	cases := map[string]struct {
		text string
		kind TokenKind
		val  string
	}{
		"Open":        {"(", OpenToken, "("},
		"Close":       {")", CloseToken, ")"},
		"Dot":         {".", DotToken, "."},
		"Number":      {"123", NumberToken, "123"},
		"NumberNeg":   {"-45", NumberToken, "-45"},
		"NumberPos":   {"+7", NumberToken, "+7"},
		"Ident":       {"abc", IdentToken, "abc"},
		"IdentAlnum":  {"a1b2", IdentToken, "a1b2"},
		"IdentPlus":   {"+", IdentToken, "+"},
		"IdentMinus":  {"-", IdentToken, "-"},
		"IdentDotted": {"a.b", IdentToken, "a.b"},
		"IdentDigits": {"12ab", IdentToken, "12ab"},
		"IdentUTF8":   {"λx", IdentToken, "λx"},
		"IdentDots":   {"...", IdentToken, "..."},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var l Lexer
			l.depth = 1 // allow a lone close paren
			if err := l.Append(c.text); err != nil {
				t.Fatalf("%q: %v", c.text, err)
			}
			toks := l.Tokens()
			if len(toks) != 1 {
				t.Fatalf("%q: wrong number of tokens: want 1, got %v", c.text, toks)
			}
			if toks[0].Kind != c.kind || toks[0].Text != c.val {
				t.Errorf("%q: want %v %q, got %v %q", c.text, c.kind, c.val, toks[0].Kind, toks[0].Text)
			}
		})
	}
}

// TestLexSequences tests lexing of complete inputs.
func TestLexSequences(t *testing.T) {
	cases := map[string]struct {
		text string
		want []Token
	}{
		"Call":        {"(+ 1 2)", []Token{tOpen, tIdent("+"), tNum("1"), tNum("2"), tClose}},
		"Nested":      {"(a (b) c)", []Token{tOpen, tIdent("a"), tOpen, tIdent("b"), tClose, tIdent("c"), tClose}},
		"Tight":       {"((a)(b))", []Token{tOpen, tOpen, tIdent("a"), tClose, tOpen, tIdent("b"), tClose, tClose}},
		"Pair":        {"(a . b)", []Token{tOpen, tIdent("a"), tDot, tIdent("b"), tClose}},
		"Whitespace":  {"  (\ta\r\n b )  ", []Token{tOpen, tIdent("a"), tIdent("b"), tClose}},
		"Comment":     {"(a ; ignore (this)\n b)", []Token{tOpen, tIdent("a"), tIdent("b"), tClose}},
		"CommentOnly": {"; nothing here", nil},
		"Many":        {"1 (a) b", []Token{tNum("1"), tOpen, tIdent("a"), tClose, tIdent("b")}},
		"QuoteAtom":   {"'a", []Token{tOpen, tQuote, tIdent("a"), tClose}},
		"QuoteNum":    {"'12", []Token{tOpen, tQuote, tNum("12"), tClose}},
		"QuoteList":   {"'(a b)", []Token{tOpen, tQuote, tOpen, tIdent("a"), tIdent("b"), tClose, tClose}},
		"QuoteEmpty":  {"'()", []Token{tOpen, tQuote, tOpen, tClose, tClose}},
		"QuoteQuote":  {"''a", []Token{tOpen, tQuote, tOpen, tQuote, tIdent("a"), tClose, tClose}},
		"QuoteInList": {"(car '(1 2))", []Token{tOpen, tIdent("car"), tOpen, tQuote, tOpen, tNum("1"), tNum("2"), tClose, tClose, tClose}},
		"QuoteNested": {"'(a '(b))", []Token{
			tOpen, tQuote, tOpen, tIdent("a"),
			tOpen, tQuote, tOpen, tIdent("b"), tClose, tClose,
			tClose, tClose,
		}},
		"QuoteTwice": {"('a 'b)", []Token{tOpen, tOpen, tQuote, tIdent("a"), tClose, tOpen, tQuote, tIdent("b"), tClose, tClose}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks := lexString(t, c.text)
			if !sameTokens(toks, c.want) {
				t.Errorf("%q: want %v, got %v", c.text, c.want, kinds(toks))
			}
		})
	}
}

// TestLexComplete tests that IsComplete tracks balanced input.
func TestLexComplete(t *testing.T) {
	cases := map[string]struct {
		text string
		want bool
	}{
		"Empty":      {"", false},
		"Comment":    {"; x", false},
		"Atom":       {"a", true},
		"Balanced":   {"(a (b))", true},
		"Open":       {"(a (b)", false},
		"OpenQuote":  {"'", false},
		"QuoteList":  {"'(a", false},
		"QuoteAtom":  {"'a", true},
		"TwoForms":   {"(a) (b)", true},
		"SecondOpen": {"(a) (b", false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var l Lexer
			if err := l.Append(c.text); err != nil {
				t.Fatal(err)
			}
			if got := l.IsComplete(); got != c.want {
				t.Errorf("%q: want %t, got %t", c.text, c.want, got)
			}
		})
	}
}

// TestLexIncremental tests that input split across chunks lexes the same as
// input given at once.
func TestLexIncremental(t *testing.T) {
	cases := map[string][]string{
		"CloseLater": {"(+ 1 2", ")"},
		"Lines":      {"(defun f (x)", "  (+ x", "     1))"},
		"Quote":      {"'", "a"},
		"QuoteList":  {"'(a", "b)"},
		"Comment":    {"(a ; comment", "b)"},
	}
	for name, chunks := range cases {
		t.Run(name, func(t *testing.T) {
			var l Lexer
			joined := ""
			for i, chunk := range chunks {
				if l.IsComplete() {
					t.Errorf("complete before chunk %d", i)
				}
				if err := l.Append(chunk); err != nil {
					t.Fatalf("chunk %d: %v", i, err)
				}
				joined += chunk + "\n"
			}
			if !l.IsComplete() {
				t.Error("incomplete after all chunks")
			}
			want := lexString(t, joined)
			if !sameTokens(l.Tokens(), want) {
				t.Errorf("want %v, got %v", kinds(want), kinds(l.Tokens()))
			}
		})
	}
}

// TestLexErrors tests that bad input fails with a parse error and discards
// all lexer state.
func TestLexErrors(t *testing.T) {
	cases := map[string][]string{
		"ExtraClose":     {"())"},
		"LoneClose":      {")"},
		"LaterClose":     {"(a", "))"},
		"QuoteClose":     {"(')"},
		"QuoteCloseLate": {"(a '", ")"},
	}
	for name, chunks := range cases {
		t.Run(name, func(t *testing.T) {
			var l Lexer
			var err error
			for _, chunk := range chunks {
				if err = l.Append(chunk); err != nil {
					break
				}
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("want parse error, got %v", err)
			}
			if len(l.Tokens()) != 0 || l.Depth() != 0 || l.IsComplete() {
				t.Errorf("lexer not reset: %v, depth %d", kinds(l.Tokens()), l.Depth())
			}
			if err := l.Append("(a)"); err != nil || !l.IsComplete() {
				t.Errorf("lexer unusable after reset: %v", err)
			}
		})
	}
}

// TestLexPositions tests that tokens record their source positions.
func TestLexPositions(t *testing.T) {
	var l Lexer
	if err := l.Append("(ab\n  12)"); err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: OpenToken, Text: "(", Line: 1, Col: 1},
		{Kind: IdentToken, Text: "ab", Line: 1, Col: 2},
		{Kind: NumberToken, Text: "12", Line: 2, Col: 3},
		{Kind: CloseToken, Text: ")", Line: 2, Col: 5},
	}
	toks := l.Tokens()
	if len(toks) != len(want) {
		t.Fatalf("want %v, got %v", want, toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d: want %+v, got %+v", i, want[i], toks[i])
		}
	}
}

// TestLexReset tests that Reset discards partial input.
func TestLexReset(t *testing.T) {
	var l Lexer
	if err := l.Append("(a '(b"); err != nil {
		t.Fatal(err)
	}
	l.Reset()
	if len(l.Tokens()) != 0 || l.Depth() != 0 {
		t.Errorf("state remains after reset: %v", kinds(l.Tokens()))
	}
	if err := l.Append("c"); err != nil || !l.IsComplete() {
		t.Errorf("lexer unusable after reset: %v", err)
	}
}
