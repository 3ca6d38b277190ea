//go:build !debug
// +build !debug

package debug

const Enabled = false

// Printf is a no op unless you compile with the `debug` tag
func Printf(f string, args ...interface{}) {}

// Dump is a no op unless you compile with the `debug` tag
func Dump(v ...interface{}) {}
