package internal

import "unicode"

// Quote is the QUOTE special form. It returns its argument unevaluated; given
// several, it returns the first.
func Quote(c *Call) (SExpression, error) {
	return c.Args.Car(), nil
}

// If is the IF special form.
//
//	(IF test then [else])
//
// Exactly one of then and else is evaluated. A missing else evaluates to the
// empty list.
func If(c *Call) (SExpression, error) {
	if err := c.Arity(2, 3); err != nil {
		return nil, err
	}
	test, err := c.Eval.EvalRef(c.RefAt(0))
	if err != nil {
		return nil, err
	}
	ok, err := Truthy(test)
	if err != nil {
		return nil, err
	}
	if ok {
		return c.Eval.EvalRef(c.RefAt(1))
	}
	return c.Eval.EvalRef(c.RefAt(2))
}

// Cond is the COND special form. Each argument is a clause (test expr...);
// the first clause whose test is true has its expressions evaluated, and the
// last result is returned. A clause without expressions returns its test
// value. If no clause matches, the result is the empty list.
func Cond(c *Call) (SExpression, error) {
	for i, r := range c.Args.Refs() {
		clause, ok := r.(*Cell)
		if !ok || clause.IsNil() {
			return nil, EvaluationError("COND clause %d must be a non-empty list", i+1)
		}
		forms := ListFrom(clause).Refs()
		test, err := c.Eval.EvalRef(forms[0])
		if err != nil {
			return nil, err
		}
		if ok, err := Truthy(test); err != nil {
			return nil, err
		} else if !ok {
			continue
		}
		if len(forms) == 1 {
			return test, nil
		}
		return evalSequence(c.Eval, forms[1:])
	}
	return EmptyList(), nil
}

// And is the AND special form. It evaluates its arguments in order and stops
// at the first false one, returning it. With no arguments, it returns T.
func And(c *Call) (SExpression, error) {
	var v SExpression = T
	for _, r := range c.Args.Refs() {
		var err error
		v, err = c.Eval.EvalRef(r)
		if err != nil {
			return nil, err
		}
		if ok, err := Truthy(v); err != nil {
			return nil, err
		} else if !ok {
			return v, nil
		}
	}
	return v, nil
}

// Or is the OR special form. It evaluates its arguments in order and returns
// the first true one. If there is none, it returns F.
func Or(c *Call) (SExpression, error) {
	for _, r := range c.Args.Refs() {
		v, err := c.Eval.EvalRef(r)
		if err != nil {
			return nil, err
		}
		if ok, err := Truthy(v); err != nil {
			return nil, err
		} else if ok {
			return v, nil
		}
	}
	return F, nil
}

// Progn is the PROGN special form. It evaluates its arguments in order and
// returns the last result, or the empty list if there are none.
func Progn(c *Call) (SExpression, error) {
	return evalSequence(c.Eval, c.Args.Refs())
}

func evalSequence(e *Evaluator, forms []Ref) (SExpression, error) {
	var v SExpression = EmptyList()
	for _, r := range forms {
		var err error
		v, err = e.EvalRef(r)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Defun is the DEFUN special form.
//
//	(DEFUN name (formal...) body...)
//
// It defines a user function and returns its name. The name and formals must
// be legal identifiers, the formals must be distinct, and the name must not
// belong to a core binding.
func Defun(c *Call) (SExpression, error) {
	if err := c.Arity(3, -1); err != nil {
		return nil, err
	}
	name, ok := c.RefAt(0).(*Atom)
	if !ok || !IsIdentifier(name) {
		return nil, EvaluationError("DEFUN name must be an identifier")
	}
	var formals []string
	switch r := c.RefAt(1).(type) {
	case *Cell:
		fl := ListFrom(r)
		if a := fl.DottedRest(); a != nil {
			return nil, EvaluationError("formals of %s end in dotted %s", name.Text(), a)
		}
		seen := make(map[string]bool)
		for i, f := range fl.Refs() {
			a, ok := f.(*Atom)
			if !ok || !IsIdentifier(a) {
				return nil, EvaluationError("formal %d of %s must be an identifier", i+1, name.Text())
			}
			k := c.Env.key(a.Text())
			if seen[k] {
				return nil, EvaluationError("formal %s of %s is repeated", a.Text(), name.Text())
			}
			seen[k] = true
			formals = append(formals, a.Text())
		}
	case *Atom:
		if !r.IsNil() {
			return nil, EvaluationError("formals of %s must be a list", name.Text())
		}
	}
	body := c.Args.Refs()[2:]
	f := &UserFunction{name: name.Text(), formals: formals, body: body}
	if err := c.Env.AddUserBinding(FunctionBinding(f)); err != nil {
		return nil, err
	}
	return name, nil
}

// Setq is the SETQ special form.
//
//	(SETQ name expr)
//
// It evaluates expr, binds name to the result in the user frame, and returns
// the result.
func Setq(c *Call) (SExpression, error) {
	if err := c.Arity(2, 2); err != nil {
		return nil, err
	}
	name, ok := c.RefAt(0).(*Atom)
	if !ok || !IsIdentifier(name) {
		return nil, EvaluationError("SETQ name must be an identifier")
	}
	v, err := c.Eval.EvalRef(c.RefAt(1))
	if err != nil {
		return nil, err
	}
	if err := c.Env.AddUserBinding(SymbolBinding(name.Text(), v)); err != nil {
		return nil, err
	}
	return v, nil
}

// IsIdentifier reports whether an atom is a legal name for DEFUN, SETQ, and
// formal parameters: a string literal beginning with a letter and containing
// only letters, digits, and the characters - _ ? ! *.
func IsIdentifier(a *Atom) bool {
	if a.Kind() != StringAtom || a.Text() == "" {
		return false
	}
	for i, r := range a.Text() {
		switch {
		case unicode.IsLetter(r):
		case i == 0:
			return false
		case unicode.IsDigit(r), r == '-', r == '_', r == '?', r == '!', r == '*':
		default:
			return false
		}
	}
	return true
}

// A UserFunction is a function defined with DEFUN.
type UserFunction struct {
	name    string
	formals []string
	body    []Ref
}

func (*UserFunction) bindable() {}

// Name returns the function's name.
func (f *UserFunction) Name() string {
	return f.name
}

// Synonyms returns nil; user functions have a single name.
func (f *UserFunction) Synonyms() []string {
	return nil
}

// Formals returns the function's parameter names.
func (f *UserFunction) Formals() []string {
	return f.formals
}

// Flags returns Reentrant|Defining. Arguments are evaluated before the call.
func (f *UserFunction) Flags() Flags {
	return Reentrant | Defining
}

// Apply binds each formal to its argument in the call's scope, then evaluates
// the body forms and returns the last result.
func (f *UserFunction) Apply(c *Call) (SExpression, error) {
	args := c.Args.Elements()
	if len(args) != len(f.formals) {
		return nil, ArgumentCountError("%s requires %d argument(s), got %d", f.name, len(f.formals), len(args))
	}
	for i, v := range args {
		if err := c.Env.AddBinding(f.formals[i], v.(Bindable)); err != nil {
			return nil, err
		}
	}
	return evalSequence(c.Eval, f.body)
}

// String returns the function's definition, e.g. AVERAGE (X Y).
func (f *UserFunction) String() string {
	s := f.name + " ("
	for i, p := range f.formals {
		if i > 0 {
			s += " "
		}
		s += p
	}
	return s + ")"
}
