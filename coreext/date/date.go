// Package date provides the DATE and TIME primitives.
package date

import (
	"time"

	"github.com/zephyrtronium/lisp/internal"

	"gitlab.com/variadico/lctime"
)

// DefaultFormat is the strftime layout DATE uses when given no format.
const DefaultFormat = "%Y-%m-%d %H:%M:%S"

// now is the clock for DATE and TIME.
var now = time.Now

func init() {
	internal.Register(initDate)
}

func initDate(vm *internal.VM) {
	vm.Define("DATE", Date, 0)
	vm.Define("TIME", Time, 0)
}

// Date is a date primitive.
//
// DATE returns the current local time as a string. An optional argument gives
// a strftime-style format; see https://godoc.org/github.com/variadico/lctime
// for the full list of directives.
func Date(c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(0, 1); err != nil {
		return nil, err
	}
	format := DefaultFormat
	if c.Args.Length() > 0 {
		a, err := c.AtomArgAt(0)
		if err != nil {
			return nil, err
		}
		if format, err = a.AsString(); err != nil {
			return nil, err
		}
	}
	return internal.NewString(lctime.Strftime(format, now())), nil
}

// Time is a date primitive.
//
// TIME returns the current Unix time in seconds.
func Time(c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(0, 0); err != nil {
		return nil, err
	}
	return internal.NewInteger(now().Unix()), nil
}
