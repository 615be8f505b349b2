package cli

import (
	"errors"
	"fmt"
)

// TestsFailedError indicates that a run finished and reported failures.
// Its details are already on the terminal.
type TestsFailedError struct {
	// Failed is the number of failed roles
	Failed int
}

func (e *TestsFailedError) Error() string {
	return fmt.Sprintf("%d roles failed", e.Failed)
}

// IsReported reports whether err was already presented to the user.
func IsReported(err error) bool {
	var failed *TestsFailedError
	return errors.As(err, &failed)
}
