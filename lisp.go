package lisp

import (
	"github.com/zephyrtronium/lisp/internal"
)

// A VM is an interpreter session.
type VM = internal.VM

// An Option configures a new VM.
type Option = internal.Option

// A Ref is the content of a cons cell slot: an *Atom, a *Cell, or Nil.
type Ref = internal.Ref

// An Atom is an immutable integer, string, boolean, symbol, or NIL value.
type Atom = internal.Atom

// A Cell is a cons cell.
type Cell = internal.Cell

// A List is a handle on a chain of cons cells.
type List = internal.List

// An SExpression is an evaluation result, either an *Atom or a *List.
type SExpression = internal.SExpression

// A PTree is the result of parsing one form.
type PTree = internal.PTree

// A Lexer converts source text into tokens, possibly across many chunks.
type Lexer = internal.Lexer

// A Token is a single lexical element.
type Token = internal.Token

// An Environment holds the core, user, and dynamic binding frames.
type Environment = internal.Environment

// A Binding associates names with a function or value.
type Binding = internal.Binding

// A Function is anything the evaluator can call.
type Function = internal.Function

// A Call is the context of a single function invocation.
type Call = internal.Call

// An Fn is a statically compiled primitive.
type Fn = internal.Fn

// Flags select how the evaluator invokes a function.
type Flags = internal.Flags

// Diagnostics receives interpreter warnings.
type Diagnostics = internal.Diagnostics

// LogDiagnostics writes warnings to a logger.
type LogDiagnostics = internal.LogDiagnostics

// A WarningList collects warnings in order.
type WarningList = internal.WarningList

// An Error is an interpreter error of a particular kind.
type Error = internal.Error

// Function flags.
const (
	Special   = internal.Special
	Reentrant = internal.Reentrant
	Defining  = internal.Defining
)

// Error kinds, for use with errors.Is.
var (
	ErrParse              = internal.ErrParse
	ErrTypeConversion     = internal.ErrTypeConversion
	ErrEvaluation         = internal.ErrEvaluation
	ErrWrongArgumentCount = internal.ErrWrongArgumentCount
	ErrUndefinedSymbol    = internal.ErrUndefinedSymbol
	ErrStackOverflow      = internal.ErrStackOverflow
)

// Canonical atoms and the list terminator.
var (
	NIL = internal.NIL
	T   = internal.T
	F   = internal.F
	Nil = internal.Nil
)

// NewVM prepares a new interpreter session with the core library and all
// imported extensions installed.
func NewVM(opts ...Option) *VM {
	return internal.NewVM(opts...)
}

// WithDiagnostics sends a VM's warnings to d.
func WithDiagnostics(d Diagnostics) Option {
	return internal.WithDiagnostics(d)
}

// WithMaxDepth limits evaluation nesting to n levels.
func WithMaxDepth(n int) Option {
	return internal.WithMaxDepth(n)
}

// Parse converts a token stream holding one form into a parse tree.
func Parse(tokens []Token) (*PTree, error) {
	return internal.Parse(tokens)
}

// Format returns the canonical parenthesized notation of an evaluation
// result, e.g. ( 2 3 ).
func Format(e SExpression) string {
	return internal.Format(e)
}

// Equal reports whether two evaluation results are structurally equal.
func Equal(a, b SExpression) bool {
	return internal.Equal(a, b)
}

// Eql reports whether two evaluation results are the same atom value, or are
// both empty.
func Eql(a, b SExpression) bool {
	return internal.Eql(a, b)
}

// NewInteger returns an integer atom.
func NewInteger(n int64) *Atom {
	return internal.NewInteger(n)
}

// NewString returns a string literal atom.
func NewString(s string) *Atom {
	return internal.NewString(s)
}

// ListOf returns a list of the given elements.
func ListOf(elems ...SExpression) *List {
	return internal.ListOf(elems...)
}
