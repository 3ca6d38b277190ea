package cliutil

import "os"

// IsTty reports whether f is attached to a terminal. Used to decide
// if reading from stdin makes sense when no file arguments are given.
func IsTty(f *os.File) bool {
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
