// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package system

// platformVersion is the result of PLATFORM-VERSION. There is no portable way
// to find it here.
var platformVersion string

func initPV() {}
