// Package testutils provides utilities for testing LISP code in Go.
package testutils

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/lisp"
)

// testVM is the VM used for all tests.
var testVM *lisp.VM

var testVMInit sync.Once

// TestingVM returns a VM for testing LISP. The VM is shared by all tests that
// use this package.
func TestingVM() *lisp.VM {
	testVMInit.Do(ResetTestingVM)
	return testVM
}

// ResetTestingVM reinitializes the VM returned by TestingVM. It is not safe to
// call this in parallel tests.
func ResetTestingVM() {
	testVM = lisp.NewVM()
}

// A SourceTestCase is a test case containing LISP source code and a predicate
// to check the result.
type SourceTestCase struct {
	// Source is the LISP source code to execute.
	Source string
	// Pass is a predicate taking the result of executing Source. If Pass
	// returns false, then the test fails.
	Pass func(result lisp.SExpression, err error) bool
}

// TestFunc returns a test function for the test case. This uses TestingVM to
// evaluate the code. The name is used only in failure messages.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		vm := TestingVM()
		before := vm.Env.ScopeDepth()
		r, err := vm.DoString(c.Source)
		if !c.Pass(r, err) {
			if err != nil {
				t.Errorf("%s: %q produced wrong result; an error occurred: %v", name, c.Source, err)
			} else {
				t.Errorf("%s: %q produced wrong result; got %s\n%s", name, c.Source, lisp.Format(r), spew.Sdump(r))
			}
		}
		if after := vm.Env.ScopeDepth(); after != before {
			t.Errorf("%s: %q left %d dynamic scopes open", name, c.Source, after-before)
		}
	}
}

// PassEqual returns a Pass function for a SourceTestCase that predicates on
// deep structural equality with want. If an error occurred, the predicate
// returns false.
func PassEqual(want lisp.SExpression) func(lisp.SExpression, error) bool {
	return func(result lisp.SExpression, err error) bool {
		if err != nil {
			return false
		}
		return lisp.Equal(want, result)
	}
}

// PassEql returns a Pass function for a SourceTestCase that predicates on
// strict atom equality with want, so that the variant must match as well as
// the value.
func PassEql(want *lisp.Atom) func(lisp.SExpression, error) bool {
	return func(result lisp.SExpression, err error) bool {
		if err != nil {
			return false
		}
		return lisp.Eql(want, result)
	}
}

// PassFormat returns a Pass function for a SourceTestCase that predicates on
// the canonical notation of the result, e.g. "( 2 3 )".
func PassFormat(want string) func(lisp.SExpression, error) bool {
	return func(result lisp.SExpression, err error) bool {
		if err != nil {
			return false
		}
		return lisp.Format(result) == want
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff evaluation failed with an error of the given kind. A nil kind accepts
// any error.
func PassFailure(kind error) func(lisp.SExpression, error) bool {
	return func(result lisp.SExpression, err error) bool {
		if err == nil {
			return false
		}
		return kind == nil || errors.Is(err, kind)
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns true
// iff evaluation succeeded.
func PassSuccess() func(lisp.SExpression, error) bool {
	return func(result lisp.SExpression, err error) bool {
		return err == nil
	}
}

// CheckFunctions is a testing helper to check that a VM's core frame binds
// every function in names. Unlike the core frame itself, names need not be
// exhaustive; extensions only check their own.
func CheckFunctions(t *testing.T, vm *lisp.VM, names []string) {
	t.Helper()
	for _, name := range names {
		t.Run("Have_"+name, func(t *testing.T) {
			if !vm.Env.IsCore(name) {
				t.Fatal("no core binding for", name)
			}
			if _, ok := vm.Env.Function(name); !ok {
				t.Fatal(name, "is not a function")
			}
		})
	}
}

// CheckFrame is a testing helper to check whether a frame binds exactly the
// primary names we expect.
func CheckFrame(t *testing.T, vm *lisp.VM, frame int, names []string) {
	t.Helper()
	have := vm.Env.Names(frame)
	sort.Strings(have)
	checked := make(map[string]bool, len(names))
	for _, name := range names {
		checked[name] = true
		t.Run("Have_"+name, func(t *testing.T) {
			i := sort.SearchStrings(have, name)
			if i == len(have) || have[i] != name {
				t.Fatal("no binding", name)
			}
		})
	}
	for _, name := range have {
		t.Run("Want_"+name, func(t *testing.T) {
			if !checked[name] {
				t.Fatal("unexpected binding", name)
			}
		})
	}
}
