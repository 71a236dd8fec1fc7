package internal

import (
	"fmt"
	"unicode"
)

// A Token is a single lexical element.
type Token struct {
	Kind TokenKind
	Text string

	Line, Col int
}

// String returns the token's text.
func (t Token) String() string {
	return t.Text
}

// TokenKind is the lexical class of a token.
type TokenKind int

// Token kinds.
const (
	BadToken    TokenKind = iota
	OpenToken             // (
	CloseToken            // )
	DotToken              // . between the halves of an explicit pair
	NumberToken           // integer with optional sign
	IdentToken            // any other run of non-delimiters
)

var tokenKindNames = [...]string{"BadToken", "OpenToken", "CloseToken", "DotToken", "NumberToken", "IdentToken"}

// String returns the name of a token kind.
func (k TokenKind) String() string {
	if k < BadToken || k > IdentToken {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenKindNames[k]
}

// quoteMark records an open ' expansion. depth is the paren depth just after
// the expansion's own open paren; the expansion closes when the quoted form
// brings the depth back there.
type quoteMark struct {
	depth      int
	expectAtom bool
}

// A Lexer converts source text into tokens. Text may arrive in any number of
// chunks; the lexer keeps its state between calls to Append so that a form can
// span several lines. The zero Lexer is ready to use.
type Lexer struct {
	tokens    []Token
	depth     int
	inComment bool
	quotes    []quoteMark

	word              []rune
	wordLine, wordCol int

	line, col int
}

// Append lexes another chunk of text. The end of a chunk ends any pending
// token and comment, as if it were followed by a newline. If the text closes
// more parentheses than are open, the lexer is reset and the error has kind
// ErrParse.
func (l *Lexer) Append(text string) error {
	if l.line == 0 {
		l.line, l.col = 1, 1
	}
	for _, r := range text {
		if err := l.scan(r); err != nil {
			l.Reset()
			return err
		}
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.flush()
	if l.inComment {
		l.inComment = false
	}
	if len(text) == 0 || text[len(text)-1] != '\n' {
		l.line++
		l.col = 1
	}
	return nil
}

// IsComplete reports whether the accumulated tokens form balanced top-level
// forms: at least one token has been seen, every paren is closed, and no
// quote is waiting for its operand.
func (l *Lexer) IsComplete() bool {
	return len(l.tokens) > 0 && l.depth == 0 && len(l.quotes) == 0
}

// Tokens returns a copy of the accumulated tokens.
func (l *Lexer) Tokens() []Token {
	r := make([]Token, len(l.tokens))
	copy(r, l.tokens)
	return r
}

// Depth returns the current paren nesting depth.
func (l *Lexer) Depth() int {
	return l.depth
}

// Reset discards all accumulated state.
func (l *Lexer) Reset() {
	*l = Lexer{}
}

// scan consumes a single rune.
func (l *Lexer) scan(r rune) error {
	if l.inComment {
		if r == '\n' {
			l.inComment = false
		}
		return nil
	}
	switch {
	case r == ';':
		l.flush()
		l.inComment = true
	case unicode.IsSpace(r):
		l.flush()
	case r == '(':
		l.flush()
		l.open()
	case r == ')':
		l.flush()
		return l.close()
	case r == '\'':
		l.flush()
		l.open()
		l.emit(IdentToken, "QUOTE", l.line, l.col)
		l.quotes = append(l.quotes, quoteMark{depth: l.depth, expectAtom: true})
	default:
		if len(l.word) == 0 {
			l.wordLine, l.wordCol = l.line, l.col
		}
		l.word = append(l.word, r)
	}
	return nil
}

func (l *Lexer) emit(kind TokenKind, text string, line, col int) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Line: line, Col: col})
}

// open emits an open paren. If a quote is waiting for its operand, this list
// is the operand.
func (l *Lexer) open() {
	if n := len(l.quotes); n > 0 && l.quotes[n-1].expectAtom {
		l.quotes[n-1].expectAtom = false
	}
	l.emit(OpenToken, "(", l.line, l.col)
	l.depth++
}

// close emits a close paren and closes any quotes whose operand it ends.
func (l *Lexer) close() error {
	if n := len(l.quotes); n > 0 && l.quotes[n-1].expectAtom {
		return ParseError("quote without operand at line %d, column %d", l.line, l.col)
	}
	l.depth--
	if l.depth < 0 {
		return ParseError("Mismatched parentheses")
	}
	l.emit(CloseToken, ")", l.line, l.col)
	l.closeQuotes()
	return nil
}

// closeQuotes emits the close parens of completed quote expansions.
func (l *Lexer) closeQuotes() {
	for n := len(l.quotes); n > 0; n = len(l.quotes) {
		q := l.quotes[n-1]
		if q.expectAtom || l.depth != q.depth {
			return
		}
		l.emit(CloseToken, ")", l.line, l.col)
		l.depth--
		l.quotes = l.quotes[:n-1]
	}
}

// flush emits the pending word, if any. Words are extended greedily, so a
// word is only ever emitted whole.
func (l *Lexer) flush() {
	if len(l.word) == 0 {
		return
	}
	text := string(l.word)
	l.word = l.word[:0]
	switch {
	case text == ".":
		l.emit(DotToken, text, l.wordLine, l.wordCol)
		return
	case isInteger(text):
		l.emit(NumberToken, text, l.wordLine, l.wordCol)
	default:
		l.emit(IdentToken, text, l.wordLine, l.wordCol)
	}
	if n := len(l.quotes); n > 0 && l.quotes[n-1].expectAtom {
		l.emit(CloseToken, ")", l.wordLine, l.wordCol+len(text))
		l.depth--
		l.quotes = l.quotes[:n-1]
		l.closeQuotes()
	}
}

// isInteger reports whether s is a decimal integer with an optional sign.
func isInteger(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
