package internal

/*
This file converts lexer tokens into cell trees. Parsing is iterative: each
open paren pushes the tree being built and starts a new one, and each close
paren pops back to the parent, splicing the finished tree in as a sublist.
*/

import (
	"errors"
	"strconv"
	"strings"
)

// Parse converts a token stream holding exactly one form into a parse tree.
// An empty stream produces an empty tree. A single atom token produces a
// storage-only cell wrapping the atom rather than a list.
func Parse(tokens []Token) (*PTree, error) {
	forms, err := ParseAll(tokens)
	if err != nil {
		return nil, err
	}
	switch len(forms) {
	case 0:
		return &PTree{}, nil
	case 1:
		return forms[0], nil
	}
	t := tokens[formLen(tokens)]
	return nil, tokenError("unexpected "+strconv.Quote(t.Text)+" after form", t)
}

// ParseAll converts a token stream into one parse tree per top-level form.
func ParseAll(tokens []Token) ([]*PTree, error) {
	var forms []*PTree
	for len(tokens) > 0 {
		n := formLen(tokens)
		t, err := parseForm(tokens[:n])
		if err != nil {
			return nil, err
		}
		forms = append(forms, t)
		tokens = tokens[n:]
	}
	return forms, nil
}

// formLen returns the number of tokens in the first top-level form. If the
// form is unbalanced, it is the whole stream.
func formLen(tokens []Token) int {
	if tokens[0].Kind != OpenToken {
		return 1
	}
	depth := 0
	for i, t := range tokens {
		switch t.Kind {
		case OpenToken:
			depth++
		case CloseToken:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(tokens)
}

// parseFrame is a partially built list and its dotted-pair state.
type parseFrame struct {
	tree *List
	// dotted is set after a dot; the next element becomes the tail's rest.
	dotted bool
	// closed is set once the dotted rest has been filled in; only a close
	// paren may follow.
	closed bool
}

func parseForm(tokens []Token) (*PTree, error) {
	if len(tokens) == 1 {
		t := tokens[0]
		switch t.Kind {
		case OpenToken, CloseToken:
			return nil, ParseError("Mismatched parentheses")
		case DotToken:
			return nil, tokenError("unexpected dot", t)
		}
		a, err := classify(t, false)
		if err != nil {
			return nil, err
		}
		return NewPTree(NewStorageCell(a)), nil
	}
	if tokens[0].Kind != OpenToken {
		return nil, ParseError("Mismatched parentheses")
	}

	var (
		stack []*parseFrame
		cur   *parseFrame
		depth int
		// quotes holds the depth at which each open QUOTE form began, so
		// that atoms inside quoted data are not promoted to operators.
		quotes []int
		// prev is the previous token, for recognizing ( QUOTE.
		prev Token
	)
	for i, t := range tokens {
		switch t.Kind {
		case BadToken:
			return nil, tokenError("bad token "+strconv.Quote(t.Text), t)
		case OpenToken:
			depth++
			if cur != nil {
				if cur.closed {
					return nil, tokenError("expected ) after dotted pair", t)
				}
				stack = append(stack, cur)
			}
			cur = &parseFrame{tree: NewList()}
		case CloseToken:
			depth--
			if cur == nil || depth < 0 {
				return nil, ParseError("Mismatched parentheses")
			}
			if cur.dotted && !cur.closed {
				return nil, tokenError("missing element after dot", t)
			}
			if n := len(quotes); n > 0 && quotes[n-1] == depth+1 {
				quotes = quotes[:n-1]
			}
			if len(stack) == 0 {
				if i != len(tokens)-1 {
					return nil, ParseError("Mismatched parentheses")
				}
				return NewPTree(cur.tree.Root()), nil
			}
			child := cur
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur.dotted {
				if child.tree.IsEmpty() {
					cur.tree.SetDottedRest(Nil)
				} else {
					cur.tree.SetDottedRest(child.tree.Root())
				}
				cur.closed = true
			} else {
				cur.tree.AddList(child.tree)
			}
		case DotToken:
			if cur.tree.IsEmpty() || cur.dotted {
				return nil, tokenError("unexpected dot", t)
			}
			cur.dotted = true
		default:
			if cur.closed {
				return nil, tokenError("expected ) after dotted pair", t)
			}
			if prev.Kind == OpenToken && cur.tree.IsEmpty() && strings.EqualFold(t.Text, "QUOTE") {
				quotes = append(quotes, depth)
			}
			a, err := classify(t, len(quotes) > 0)
			if err != nil {
				return nil, err
			}
			if cur.dotted {
				if a.IsNil() {
					cur.tree.SetDottedRest(Nil)
				} else {
					cur.tree.SetDottedRest(a)
				}
				cur.closed = true
			} else {
				cur.tree.AddAtom(a)
			}
		}
		prev = t
	}
	return nil, ParseError("Mismatched parentheses")
}

// classify converts a token into an atom: an integer literal, the NIL atom,
// an operator symbol, or otherwise a string literal. Only + and * are
// recognized as operator symbols; other operator names are literals that
// still name their functions when evaluated. Inside quoted data, operators
// are not promoted to symbols.
func classify(t Token, quoted bool) (*Atom, error) {
	switch t.Kind {
	case NumberToken:
		n, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, wrapError(ErrParse, err, "invalid integer %q at line %d, column %d", t.Text, t.Line, t.Col)
		}
		return NewInteger(n), nil
	case IdentToken:
		if strings.EqualFold(t.Text, "NIL") {
			return NIL, nil
		}
		if !quoted && (t.Text == "+" || t.Text == "*") {
			return NewSymbol(t.Text), nil
		}
		return NewString(t.Text), nil
	}
	return nil, tokenError("unexpected "+strconv.Quote(t.Text), t)
}

func tokenError(msg string, t Token) error {
	return &Error{Kind: ErrParse, Msg: msg + " at line " + strconv.Itoa(t.Line) + ", column " + strconv.Itoa(t.Col)}
}
