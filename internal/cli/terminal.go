package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// lookupEnv is a variable to allow mocking in tests
var lookupEnv = os.LookupEnv

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether colored output should be written to f.
func ColorEnabled(f *os.File) bool {
	if _, set := lookupEnv("NO_COLOR"); set {
		return false
	}
	return IsTerminal(f)
}
