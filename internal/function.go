package internal

import (
	"reflect"
	"runtime"
	"strings"
)

// Flags select how the evaluator invokes a function.
type Flags uint8

// Function flags. A function may combine them; IF is Special|Reentrant and
// DEFUN is Special|Defining.
const (
	// Special functions receive their arguments unevaluated.
	Special Flags = 1 << iota
	// Reentrant functions receive the evaluator so that they can evaluate
	// sub-forms on their own schedule.
	Reentrant
	// Defining functions receive the environment so that they can create
	// bindings.
	Defining
)

// String returns the set flags separated by |.
func (f Flags) String() string {
	var s []string
	if f&Special != 0 {
		s = append(s, "Special")
	}
	if f&Reentrant != 0 {
		s = append(s, "Reentrant")
	}
	if f&Defining != 0 {
		s = append(s, "Defining")
	}
	if len(s) == 0 {
		return "0"
	}
	return strings.Join(s, "|")
}

// A Bindable is something a name can be bound to: a Function or an
// SExpression value. The interface is sealed.
type Bindable interface {
	bindable()
}

// A Function is anything the evaluator can call.
type Function interface {
	Bindable
	// Name is the function's primary name.
	Name() string
	// Synonyms are additional names for the function.
	Synonyms() []string
	// Flags selects how arguments are passed.
	Flags() Flags
	// Apply invokes the function.
	Apply(c *Call) (SExpression, error)
}

// A Call is the context of a single function invocation.
type Call struct {
	// Name is the name by which the function was called.
	Name string
	// Args is the argument list: evaluated results, or the raw forms for a
	// Special function.
	Args *List
	// Eval is the evaluator, set only for Reentrant functions.
	Eval *Evaluator
	// Env is the environment, set only for Defining functions.
	Env *Environment
}

// An Fn is a statically compiled primitive.
type Fn func(c *Call) (SExpression, error)

// A Primitive is a Function implemented in Go.
type Primitive struct {
	name     string
	synonyms []string
	flags    Flags
	fn       Fn
	goName   string
}

// NewPrimitive creates a primitive function.
func NewPrimitive(name string, fn Fn, flags Flags, synonyms ...string) *Primitive {
	return &Primitive{
		name:     name,
		synonyms: synonyms,
		flags:    flags,
		fn:       fn,
		goName:   runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name(),
	}
}

func (*Primitive) bindable() {}

// Name returns the primitive's name.
func (p *Primitive) Name() string {
	return p.name
}

// Synonyms returns the primitive's alternative names.
func (p *Primitive) Synonyms() []string {
	return p.synonyms
}

// Flags returns the primitive's invocation flags.
func (p *Primitive) Flags() Flags {
	return p.flags
}

// Apply calls the wrapped Fn.
func (p *Primitive) Apply(c *Call) (SExpression, error) {
	return p.fn(c)
}

// String returns the primitive's name and the Go function implementing it.
func (p *Primitive) String() string {
	return p.name + " (" + p.goName + ")"
}

// Binding associates a name and its synonyms with a value.
type Binding struct {
	Name     string
	Synonyms []string
	Value    Bindable
}

// FunctionBinding creates a binding for f under its name and synonyms.
func FunctionBinding(f Function) Binding {
	return Binding{Name: f.Name(), Synonyms: f.Synonyms(), Value: f}
}

// SymbolBinding creates a binding of a name to a value.
func SymbolBinding(name string, v SExpression) Binding {
	return Binding{Name: name, Value: v.(Bindable)}
}

// Function returns the bound function, if the binding is a function binding.
func (b Binding) Function() (Function, bool) {
	f, ok := b.Value.(Function)
	return f, ok
}

// Symbol returns the bound value, if the binding is a symbol binding.
func (b Binding) Symbol() (SExpression, bool) {
	v, ok := b.Value.(SExpression)
	return v, ok
}

// Arity checks that the call has between min and max arguments, inclusive.
// A negative max means no upper bound.
func (c *Call) Arity(min, max int) error {
	n := c.Args.Length()
	if n < min || (max >= 0 && n > max) {
		switch {
		case min == max:
			return ArgumentCountError("%s requires %d argument(s), got %d", c.Name, min, n)
		case max < 0:
			return ArgumentCountError("%s requires at least %d argument(s), got %d", c.Name, min, n)
		}
		return ArgumentCountError("%s requires %d to %d arguments, got %d", c.Name, min, max, n)
	}
	return nil
}

// ArgAt returns the nth argument as an SExpression.
func (c *Call) ArgAt(n int) SExpression {
	elems := c.Args.Elements()
	if n < 0 || n >= len(elems) {
		return EmptyList()
	}
	return elems[n]
}

// RefAt returns the nth argument slot. This is how Special functions reach
// their raw forms.
func (c *Call) RefAt(n int) Ref {
	refs := c.Args.Refs()
	if n < 0 || n >= len(refs) {
		return Nil
	}
	return refs[n]
}

// AtomArgAt returns the nth argument as an atom. If it is a list, the error
// has kind ErrEvaluation.
func (c *Call) AtomArgAt(n int) (*Atom, error) {
	switch v := c.ArgAt(n).(type) {
	case *Atom:
		return v, nil
	case *List:
		if v.IsEmpty() {
			return NIL, nil
		}
	}
	return nil, EvaluationError("argument %d to %s must be an atom", n+1, c.Name)
}

// IntArgAt returns the nth argument as an integer. Lists fail with
// ErrEvaluation and non-numeric atoms with ErrTypeConversion.
func (c *Call) IntArgAt(n int) (int64, error) {
	a, ok := c.ArgAt(n).(*Atom)
	if !ok {
		return 0, EvaluationError("argument %d to %s must be a number, not a list", n+1, c.Name)
	}
	return a.AsInt()
}

// ListArgAt returns the nth argument as a list. NIL counts as the empty list;
// any other atom fails with ErrEvaluation.
func (c *Call) ListArgAt(n int) (*List, error) {
	switch v := c.ArgAt(n).(type) {
	case *List:
		return v, nil
	case *Atom:
		if v.IsNil() {
			return EmptyList(), nil
		}
	}
	return nil, EvaluationError("argument %d to %s must be a list", n+1, c.Name)
}
