// Package text provides string case primitives.
package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zephyrtronium/lisp/internal"
)

func init() {
	internal.Register(initText)
}

func initText(vm *internal.VM) {
	vm.Define("UPCASE", Upcase, 0)
	vm.Define("DOWNCASE", Downcase, 0)
}

// Upcase is a text primitive.
//
// UPCASE returns its argument's string form in upper case.
func Upcase(c *internal.Call) (internal.SExpression, error) {
	return convert(c, cases.Upper(language.Und))
}

// Downcase is a text primitive.
//
// DOWNCASE returns its argument's string form in lower case.
func Downcase(c *internal.Call) (internal.SExpression, error) {
	return convert(c, cases.Lower(language.Und))
}

func convert(c *internal.Call, caser cases.Caser) (internal.SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	a, err := c.AtomArgAt(0)
	if err != nil {
		return nil, err
	}
	s, err := a.AsString()
	if err != nil {
		return nil, err
	}
	return internal.NewString(caser.String(s)), nil
}
