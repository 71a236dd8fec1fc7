// Package system provides primitives describing the interpreter and the host.
package system

import (
	"runtime"

	"github.com/zephyrtronium/lisp/internal"
)

func init() {
	internal.Register(initSystem)
}

func initSystem(vm *internal.VM) {
	initPV()
	vm.Define("LISP-VERSION", LispVersion, 0)
	vm.Define("PLATFORM", Platform, 0)
	vm.Define("PLATFORM-VERSION", PlatformVersion, 0)
}

// LispVersion is a system primitive.
//
// LISP-VERSION returns the interpreter version as a string.
func LispVersion(c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(0, 0); err != nil {
		return nil, err
	}
	return internal.NewString(internal.Version), nil
}

// Platform is a system primitive.
//
// PLATFORM returns the name of the host operating system, e.g. linux.
func Platform(c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(0, 0); err != nil {
		return nil, err
	}
	return internal.NewString(runtime.GOOS), nil
}

// PlatformVersion is a system primitive.
//
// PLATFORM-VERSION returns the version and release of the host kernel, or the
// empty string where that is unknown.
func PlatformVersion(c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(0, 0); err != nil {
		return nil, err
	}
	return internal.NewString(platformVersion), nil
}
