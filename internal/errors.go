package internal

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the interpreter wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	// ErrParse indicates mismatched parentheses or a malformed token stream.
	ErrParse = errors.New("parse error")
	// ErrTypeConversion indicates an illegal Atom coercion.
	ErrTypeConversion = errors.New("type conversion error")
	// ErrEvaluation indicates a general runtime rule violation.
	ErrEvaluation = errors.New("evaluation error")
	// ErrWrongArgumentCount indicates an arity mismatch.
	ErrWrongArgumentCount = errors.New("wrong argument count")
	// ErrUndefinedSymbol indicates a name bound to neither a function nor a
	// symbol.
	ErrUndefinedSymbol = errors.New("undefined symbol")
	// ErrStackOverflow indicates that evaluation exceeded the evaluator's
	// recursion limit.
	ErrStackOverflow = errors.New("stack overflow")
)

// An Error is an interpreter error of a particular kind.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error
	// Msg is the human-readable description.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

// Error returns the error message, prefixed with its kind.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

// Unwrap returns the error's kind so that errors.Is matches it. The cause is
// reachable through Cause.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Cause returns the underlying error that produced e, or nil.
func (e *Error) Cause() error {
	return e.Err
}

// Is reports whether target is e's kind or matches its cause. An arity
// mismatch is a particular kind of evaluation error, so ErrWrongArgumentCount
// errors also match ErrEvaluation.
func (e *Error) Is(target error) bool {
	switch {
	case target == e.Kind:
		return true
	case target == ErrEvaluation && e.Kind == ErrWrongArgumentCount:
		return true
	}
	return e.Err != nil && errors.Is(e.Err, target)
}

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// ParseError creates an error of kind ErrParse.
func ParseError(format string, args ...interface{}) error {
	return newError(ErrParse, format, args...)
}

// EvaluationError creates an error of kind ErrEvaluation.
func EvaluationError(format string, args ...interface{}) error {
	return newError(ErrEvaluation, format, args...)
}

// ArgumentCountError creates an error of kind ErrWrongArgumentCount.
func ArgumentCountError(format string, args ...interface{}) error {
	return newError(ErrWrongArgumentCount, format, args...)
}

// Must panics if err is not nil; otherwise, it returns v.
func Must(v SExpression, err error) SExpression {
	if err != nil {
		panic(err)
	}
	return v
}
