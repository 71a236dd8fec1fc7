// Package coreext imports every core extension for its side effects.
package coreext

import (
	// importing for side effects
	_ "github.com/zephyrtronium/lisp/coreext/date"
	_ "github.com/zephyrtronium/lisp/coreext/file"
	_ "github.com/zephyrtronium/lisp/coreext/gensym"
	_ "github.com/zephyrtronium/lisp/coreext/system"
	_ "github.com/zephyrtronium/lisp/coreext/text"
)
