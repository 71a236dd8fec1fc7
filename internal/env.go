package internal

import (
	"golang.org/x/text/cases"
)

// Frame indices.
const (
	// CoreFrame holds built-in functions and symbols. It is written only
	// during bootstrap.
	CoreFrame = 0
	// UserFrame holds global user definitions from DEFUN and SETQ.
	UserFrame = 1
)

// A frame maps folded names to bindings. Synonyms share their binding.
type frame map[string]*Binding

// An Environment is a stack of binding frames: core, user, then one dynamic
// scope per active function invocation. Names are case-insensitive.
//
// An Environment is not safe for concurrent use.
type Environment struct {
	frames []frame
	fold   cases.Caser
	diag   Diagnostics
}

// NewEnvironment creates an environment with empty core and user frames.
// Warnings are sent to d; if d is nil, they are dropped.
func NewEnvironment(d Diagnostics) *Environment {
	if d == nil {
		d = discard{}
	}
	return &Environment{
		frames: []frame{{}, {}},
		fold:   cases.Fold(),
		diag:   d,
	}
}

// key folds a name for lookup.
func (env *Environment) key(name string) string {
	return env.fold.String(name)
}

// names returns the folded primary name and synonyms of a binding.
func (env *Environment) names(b *Binding) []string {
	r := make([]string, 0, 1+len(b.Synonyms))
	r = append(r, env.key(b.Name))
	for _, s := range b.Synonyms {
		r = append(r, env.key(s))
	}
	return r
}

// Register adds a binding to the core frame. This is meant for bootstrap
// only. Overwriting an existing core name is allowed but produces a warning.
func (env *Environment) Register(b Binding) {
	core := env.frames[CoreFrame]
	p := &b
	for _, k := range env.names(p) {
		if old, ok := core[k]; ok {
			env.diag.Warnf("core binding %s overwritten by %s", old.Name, b.Name)
		}
		core[k] = p
	}
}

// AddUserBinding adds or replaces a binding in the user frame. It fails with
// ErrEvaluation if any of the binding's names is a core name.
func (env *Environment) AddUserBinding(b Binding) error {
	p := &b
	keys := env.names(p)
	for _, k := range keys {
		if _, ok := env.frames[CoreFrame][k]; ok {
			return EvaluationError("cannot rebind core name %s", b.Name)
		}
	}
	for _, k := range keys {
		env.frames[UserFrame][k] = p
	}
	return nil
}

// StartScope pushes a new dynamic scope.
func (env *Environment) StartScope() {
	env.frames = append(env.frames, frame{})
}

// EndScope pops the innermost dynamic scope. It fails with ErrEvaluation if
// no dynamic scope is open.
func (env *Environment) EndScope() error {
	if len(env.frames) <= UserFrame+1 {
		return EvaluationError("Scope index underflow")
	}
	env.frames[len(env.frames)-1] = nil
	env.frames = env.frames[:len(env.frames)-1]
	return nil
}

// ScopeDepth returns the number of open dynamic scopes.
func (env *Environment) ScopeDepth() int {
	return len(env.frames) - UserFrame - 1
}

// AddBinding binds name to v in the innermost dynamic scope. It fails with
// ErrEvaluation if no dynamic scope is open or if name is a core or user
// name, which can never be shadowed.
func (env *Environment) AddBinding(name string, v Bindable) error {
	if env.ScopeDepth() == 0 {
		return EvaluationError("cannot bind %s outside of a scope", name)
	}
	k := env.key(name)
	if _, ok := env.frames[CoreFrame][k]; ok {
		return EvaluationError("cannot shadow core name %s", name)
	}
	if _, ok := env.frames[UserFrame][k]; ok {
		return EvaluationError("cannot shadow user name %s", name)
	}
	env.frames[len(env.frames)-1][k] = &Binding{Name: name, Value: v}
	return nil
}

// GetBinding finds the binding for name, searching from the innermost scope
// outward to the core frame.
func (env *Environment) GetBinding(name string) (Binding, bool) {
	k := env.key(name)
	for i := len(env.frames) - 1; i >= 0; i-- {
		if b, ok := env.frames[i][k]; ok {
			return *b, true
		}
	}
	return Binding{}, false
}

// Function finds the function bound to name.
func (env *Environment) Function(name string) (Function, bool) {
	b, ok := env.GetBinding(name)
	if !ok {
		return nil, false
	}
	return b.Function()
}

// Symbol finds the value bound to name.
func (env *Environment) Symbol(name string) (SExpression, bool) {
	b, ok := env.GetBinding(name)
	if !ok {
		return nil, false
	}
	return b.Symbol()
}

// IsCore reports whether name is bound in the core frame.
func (env *Environment) IsCore(name string) bool {
	_, ok := env.frames[CoreFrame][env.key(name)]
	return ok
}

// Names returns the primary names bound in a frame, without synonyms. It
// returns nil if the frame does not exist.
func (env *Environment) Names(frameIndex int) []string {
	if frameIndex < 0 || frameIndex >= len(env.frames) {
		return nil
	}
	var r []string
	for k, b := range env.frames[frameIndex] {
		if env.key(b.Name) == k {
			r = append(r, b.Name)
		}
	}
	return r
}

// ResetUser discards all user bindings and dynamic scopes, leaving the core
// frame intact.
func (env *Environment) ResetUser() {
	env.frames = []frame{env.frames[CoreFrame], {}}
}
