/*
Package lisp implements a small, dynamically scoped LISP interpreter.

The interpreter works in three stages. A Lexer turns source text into tokens;
it accepts input in chunks, so a form may span several lines of a REPL. The
parser turns tokens into trees of cons cells. The evaluator walks those trees
against an Environment of layered binding frames and produces an SExpression,
which is either an Atom or a List.

To embed the interpreter, create a VM with NewVM and pass source to its
DoString method:

	vm := lisp.NewVM()
	r, err := vm.DoString("(+ 2 3 4 5)")
	// r is the integer atom 14

Data

Every slot of a cons cell holds a Ref: an Atom, another Cell, or Nil, the
list terminator. Atoms are integers, string literals, the booleans T and F,
operator symbols, and NIL. NIL doubles as the empty list in boolean contexts,
but a list containing NIL is not empty.

Integers evaluate to themselves. Any other word at the head of a form names a
function, and a word in argument position is looked up as a variable; a
string literal with no binding evaluates to itself. Names are not case
sensitive.

Scope

The environment has a core frame for built-in names, a user frame for
definitions made with DEFUN and SETQ, and one dynamic frame per active
function call. A function's parameters are visible to every function it
calls until it returns. Core names can never be rebound, and neither core nor
user names can be shadowed by parameters.

	(DEFUN AVERAGE (X Y) (QUOTIENT (PLUS X Y) 2))
	(AVERAGE 7 5) ; 6

Special forms receive their arguments unevaluated. The core special forms are
QUOTE, IF, COND, AND, OR, PROGN, DEFUN, and SETQ. The single quote is
shorthand for QUOTE: 'X reads as (QUOTE X).

Extensions

Packages under coreext add primitives by calling internal.Register from an
init function. Import coreext for all of them.
*/
package lisp
