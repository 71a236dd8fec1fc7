package internal

// DefaultMaxDepth is the default limit on nested evaluations.
const DefaultMaxDepth = 10000

// An Evaluator is a recursive tree-walking interpreter over cell forms. It
// shares its Environment with every function it invokes.
//
// Evaluation rules for a form:
//
//	1. The nil cell evaluates to the empty list.
//	2. If the form's first slot holds a cell, that cell is evaluated as a
//	   complete form and its result is the result; the rest is ignored.
//	3. An integer atom evaluates to itself.
//	4. Any other atom names a function, which is called with the rest of the
//	   form as its arguments. If there is no such function, the atom is
//	   resolved as a symbol.
type Evaluator struct {
	env      *Environment
	depth    int
	maxDepth int
}

// NewEvaluator creates an evaluator over env. Evaluation nested more deeply
// than maxDepth fails with ErrStackOverflow; if maxDepth is not positive,
// DefaultMaxDepth is used.
func NewEvaluator(env *Environment, maxDepth int) *Evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Evaluator{env: env, maxDepth: maxDepth}
}

// Env returns the evaluator's environment.
func (e *Evaluator) Env() *Environment {
	return e.env
}

// Depth returns the current evaluation nesting depth.
func (e *Evaluator) Depth() int {
	return e.depth
}

// Eval evaluates a form.
func (e *Evaluator) Eval(form *Cell) (SExpression, error) {
	if form == nil || form.IsNil() {
		return EmptyList(), nil
	}
	if e.depth >= e.maxDepth {
		return nil, newError(ErrStackOverflow, "evaluation nested more than %d levels deep", e.maxDepth)
	}
	e.depth++
	defer func() { e.depth-- }()

	switch first := form.first.(type) {
	case *Cell:
		return e.Eval(first)
	case *Atom:
		if first.IsNumber() {
			return first, nil
		}
		if fn, ok := e.env.Function(first.Text()); ok {
			return e.invoke(fn, first.Text(), form)
		}
		return e.resolve(first)
	}
	return EmptyList(), nil
}

// EvalRef evaluates a single slot: a cell is evaluated as a form, and an atom
// is resolved as a value without calling any function it might name. This is
// how arguments and function bodies are evaluated.
func (e *Evaluator) EvalRef(r Ref) (SExpression, error) {
	switch r := r.(type) {
	case *Cell:
		return e.Eval(r)
	case *Atom:
		if r.IsNumber() {
			return r, nil
		}
		return e.resolve(r)
	}
	return EmptyList(), nil
}

// resolve finds the value of an atom used as a symbol. Literals that are not
// bound evaluate to themselves.
func (e *Evaluator) resolve(a *Atom) (SExpression, error) {
	if v, ok := e.env.Symbol(a.Text()); ok {
		return v, nil
	}
	if a.IsLiteral() && !a.IsSymbol() {
		return a, nil
	}
	return nil, newError(ErrUndefinedSymbol, "%s is not bound", a.Text())
}

// invoke calls fn with the arguments in the rest of form. The call runs in
// its own dynamic scope, which is closed on every return path.
func (e *Evaluator) invoke(fn Function, name string, form *Cell) (result SExpression, err error) {
	args, err := e.arguments(fn.Flags(), form)
	if err != nil {
		return nil, err
	}
	c := &Call{Name: name, Args: args}
	if fn.Flags()&Reentrant != 0 {
		c.Eval = e
	}
	if fn.Flags()&Defining != 0 {
		c.Env = e.env
	}
	e.env.StartScope()
	defer func() {
		if cerr := e.env.EndScope(); cerr != nil && err == nil {
			result, err = nil, cerr
		}
	}()
	return fn.Apply(c)
}

// arguments builds the argument list for a call. Special functions receive
// the raw forms; others receive each form's result in order.
func (e *Evaluator) arguments(flags Flags, form *Cell) (*List, error) {
	raw, err := restList(form)
	if err != nil {
		return nil, err
	}
	if flags&Special != 0 {
		return raw, nil
	}
	args := NewList()
	for _, r := range raw.Refs() {
		v, err := e.EvalRef(r)
		if err != nil {
			return nil, err
		}
		args.AddExpr(v)
	}
	return args, nil
}

// restList returns the forms following the operator of form. The argument
// list must be proper.
func restList(form *Cell) (*List, error) {
	switch r := form.rest.(type) {
	case *Cell:
		l := ListFrom(r)
		if a := l.DottedRest(); a != nil {
			return nil, EvaluationError("dotted argument list ending in %s", a)
		}
		return l, nil
	case *Atom:
		return nil, EvaluationError("dotted argument list ending in %s", r)
	}
	return EmptyList(), nil
}

// Truthy reports whether a value counts as true: a non-empty list, or an atom
// whose boolean conversion is true. Symbols cannot be converted, so they fail
// with ErrTypeConversion.
func Truthy(v SExpression) (bool, error) {
	switch v := v.(type) {
	case *List:
		return !v.IsEmpty(), nil
	case *Atom:
		return v.AsBool()
	}
	return false, nil
}
