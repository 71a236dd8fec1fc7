// Command lispfn lists the primitive functions defined in the interpreter and
// any extension packages named on the command line, i.e. every package-level
// function assignable to internal.Fn.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore string
	var internal string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&internal, "internal", "github.com/zephyrtronium/lisp/internal", "import path for the interpreter's internal package")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{internal}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}
	fn := getFn(pkgs[0])
	var results []string
	for _, pkg := range pkgs {
		for _, name := range find(pkg.Types.Scope(), fn, mre, ire) {
			results = append(results, pkg.Name+"."+name)
		}
	}
	sort.Strings(results)
	for _, name := range results {
		fmt.Println(name)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func getFn(pkg *packages.Package) types.Type {
	r := pkg.Types.Scope().Lookup("Fn")
	if r == nil {
		fail(pkg.Name, "has no definition of Fn")
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		fail(pkg.Name, "has incorrect definition of Fn:", r)
	}
	return t.Type().Underlying()
}

func find(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		obj := scope.Lookup(name)
		if _, ok := obj.(*types.Func); !ok || !obj.Exported() {
			continue
		}
		if types.AssignableTo(obj.Type(), fn) {
			r = append(r, name)
		}
	}
	return r
}
