// Package cli holds the helpers shared by the bootware commands.
//
// # Core Components
//
// CommandFlags consolidates the role selection flags used by both the roles
// and e2e commands (--arch, --skip, --tags) so they are named and described
// the same way everywhere.
//
// TestsFailedError signals a run whose failures were already reported on the
// terminal. The root command maps it to exit code 1 without printing it again.
//
// Progress shows a spinner for blocking steps when stderr is a terminal.
//
// # Terminal Detection
//
// Colors and spinners are only used when the output stream is a terminal and
// NO_COLOR is not set.
package cli
