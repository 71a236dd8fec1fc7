// Package file provides the LOAD and PROBE-FILE primitives.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zephyrtronium/lisp/internal"
)

func init() {
	internal.Register(initFile)
}

func initFile(vm *internal.VM) {
	vm.Define("LOAD", func(c *internal.Call) (internal.SExpression, error) {
		return load(vm, c)
	}, 0)
	vm.Define("PROBE-FILE", ProbeFile, 0)
}

// pathArg returns the nth argument as an OS path. Paths are slash-separated
// in LISP.
func pathArg(c *internal.Call, n int) (string, error) {
	a, err := c.AtomArgAt(n)
	if err != nil {
		return "", err
	}
	s, err := a.AsString()
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(s), nil
}

// load is a file primitive.
//
// LOAD evaluates every form in the named file in the current session and
// returns the result of the last one. Definitions made by the file remain.
func load(vm *internal.VM, c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	path, err := pathArg(c, 0)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, internal.EvaluationError("LOAD: %v", err)
	}
	defer f.Close()
	r, err := vm.DoReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.ToSlash(path), err)
	}
	return r, nil
}

// ProbeFile is a file primitive.
//
// PROBE-FILE returns T if the named file exists and F otherwise.
func ProbeFile(c *internal.Call) (internal.SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	path, err := pathArg(c, 0)
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(path)
	return internal.NewBoolean(err == nil), nil
}
