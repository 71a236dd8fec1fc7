// Package gensym provides the GENSYM primitive.
package gensym

import (
	"strings"

	"github.com/google/uuid"

	"github.com/zephyrtronium/lisp/internal"
)

func init() {
	internal.Register(func(vm *internal.VM) {
		vm.Define("GENSYM", Gensym, 0)
	})
}

// Gensym is a gensym primitive.
//
// GENSYM returns a new symbol that is distinct from every other symbol. The
// symbol's name is G, or the optional string argument, followed by the hex
// digits of a random UUID.
func Gensym(c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(0, 1); err != nil {
		return nil, err
	}
	prefix := "G"
	if c.Args.Length() > 0 {
		a, err := c.AtomArgAt(0)
		if err != nil {
			return nil, err
		}
		if prefix, err = a.AsString(); err != nil {
			return nil, err
		}
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, internal.EvaluationError("GENSYM: %v", err)
	}
	return internal.NewSymbol(prefix + strings.ReplaceAll(id.String(), "-", "")), nil
}
