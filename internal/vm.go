package internal

import (
	"io"
	"io/ioutil"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Version is the interpreter version, reported by LISP-VERSION.
const Version = "1"

// VM is an interpreter session: one environment, the evaluator over it, and a
// lexer holding any partially entered input. A VM is not safe for concurrent
// use.
type VM struct {
	// Env holds every binding in the session.
	Env *Environment
	// Eval is the evaluator over Env.
	Eval *Evaluator

	// lexer accumulates input passed to Append.
	lexer Lexer
	// diag receives warnings.
	diag Diagnostics
}

// An Option configures a new VM.
type Option func(*vmConfig)

type vmConfig struct {
	diag     Diagnostics
	maxDepth int
}

// WithDiagnostics sends the VM's warnings to d.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *vmConfig) {
		c.diag = d
	}
}

// WithMaxDepth limits evaluation nesting to n levels. A non-positive n
// selects DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *vmConfig) {
		c.maxDepth = n
	}
}

// NewVM prepares a new interpreter session with the core library and all
// registered extensions installed. Unless WithDiagnostics is given, warnings
// are collected in a WarningList available from Diagnostics.
func NewVM(opts ...Option) *VM {
	haveVM = true

	cfg := vmConfig{diag: &WarningList{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	env := NewEnvironment(cfg.diag)
	vm := VM{
		Env:  env,
		Eval: NewEvaluator(env, cfg.maxDepth),
		diag: cfg.diag,
	}
	vm.initCore()
	for _, ext := range coreExt {
		ext(&vm)
	}
	return &vm
}

// Diagnostics returns the sink receiving the VM's warnings.
func (vm *VM) Diagnostics() Diagnostics {
	return vm.diag
}

// Define registers a primitive in the core frame. It is meant for use during
// VM initialization, including by extensions.
func (vm *VM) Define(name string, fn Fn, flags Flags, synonyms ...string) {
	vm.Env.Register(FunctionBinding(NewPrimitive(name, fn, flags, synonyms...)))
}

// DefineSymbol binds a name to a constant value in the core frame.
func (vm *VM) DefineSymbol(name string, v SExpression) {
	vm.Env.Register(SymbolBinding(name, v))
}

// initCore installs the core primitives and constants.
func (vm *VM) initCore() {
	vm.Define("QUOTE", Quote, Special)
	vm.Define("IF", If, Special|Reentrant)
	vm.Define("COND", Cond, Special|Reentrant)
	vm.Define("AND", And, Special|Reentrant)
	vm.Define("OR", Or, Special|Reentrant)
	vm.Define("PROGN", Progn, Special|Reentrant)
	vm.Define("DEFUN", Defun, Special|Defining)
	vm.Define("SETQ", Setq, Special|Reentrant|Defining)

	vm.Define("CAR", ListCar, 0)
	vm.Define("CDR", ListCdr, 0)
	vm.Define("CONS", ListCons, 0)
	vm.Define("LIST", ListList, 0)
	vm.Define("ATOM", ListAtom, 0)
	vm.Define("NULL", ListNull, 0)
	vm.Define("LENGTH", ListLength, 0)

	vm.Define("PLUS", NumberPlus, 0, "+")
	vm.Define("MINUS", NumberMinus, 0, "-")
	vm.Define("TIMES", NumberTimes, 0, "*")
	vm.Define("QUOTIENT", NumberQuotient, 0, "/")
	vm.Define("REMAINDER", NumberRemainder, 0, "%")
	vm.Define("NUMBERP", NumberP, 0)

	vm.Define("LESSP", CompareLess, 0, "<")
	vm.Define("GREATERP", CompareGreater, 0, ">")
	vm.Define("EQL", CompareEql, 0)
	vm.Define("EQUAL", CompareEqual, 0)

	vm.DefineSymbol("T", T)
	vm.DefineSymbol("F", F)
	vm.DefineSymbol("NIL", NIL)
}

// DoString lexes, parses, and evaluates every form in text, returning the
// result of the last. Any partial input from Append is discarded first.
func (vm *VM) DoString(text string) (SExpression, error) {
	vm.lexer.Reset()
	if err := vm.lexer.Append(text); err != nil {
		return nil, err
	}
	return vm.EvalPending()
}

// DoReader evaluates the entire contents of r as with DoString. The source
// is decoded as UTF-8 unless it begins with a UTF-16 byte order mark.
func (vm *VM) DoReader(r io.Reader) (SExpression, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := ioutil.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, err
	}
	return vm.DoString(string(b))
}

// Append adds a chunk of input, typically one line, to the pending input. It
// reports whether the pending input now forms complete forms which
// EvalPending can evaluate. If the chunk has unbalanced close parens, all
// pending input is discarded and the error has kind ErrParse.
func (vm *VM) Append(text string) (complete bool, err error) {
	if err := vm.lexer.Append(text); err != nil {
		return false, err
	}
	return vm.lexer.IsComplete(), nil
}

// Pending reports whether there is input which has been appended but not yet
// evaluated.
func (vm *VM) Pending() bool {
	return len(vm.lexer.tokens) > 0 || vm.lexer.Depth() != 0
}

// EvalPending parses and evaluates the pending input, then discards it, even
// if an error occurs. With no pending input, the result is the empty list.
func (vm *VM) EvalPending() (SExpression, error) {
	tokens := vm.lexer.Tokens()
	vm.lexer.Reset()
	forms, err := ParseAll(tokens)
	if err != nil {
		return nil, err
	}
	var result SExpression = EmptyList()
	for _, form := range forms {
		if form.Empty() {
			continue
		}
		result, err = vm.Eval.Eval(form.Root())
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Reset discards pending input.
func (vm *VM) Reset() {
	vm.lexer.Reset()
}

// Register registers a core extension. Each function is called in the order
// it is registered, after the core library is installed. Register should be
// called from within init funcs. Panics if NewVM has been called.
func Register(f func(*VM)) {
	if haveVM {
		panic("lisp/internal: Register must be called before any VM is created")
	}
	coreExt = append(coreExt, f)
}

// coreExt is a list of core extensions that have been registered.
var coreExt = make([]func(*VM), 0, 4)

// haveVM becomes true once NewVM has been called.
var haveVM = false
