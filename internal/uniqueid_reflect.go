// +build nounsafe

package internal

import "reflect"

// The default implementation of UniqueID uses unsafe.Pointer. If you can't use
// packages importing unsafe, you can build with -tags=nounsafe to select this
// implementation instead at a small cost to every list traversal.

// UniqueID returns the cell's address.
func (c *Cell) UniqueID() uintptr {
	return reflect.ValueOf(c).Pointer()
}
