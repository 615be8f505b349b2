package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Progress runs fn while showing a spinner with suffix on w. When enabled is
// false fn runs without any output.
func Progress(w io.Writer, enabled bool, suffix string, fn func() error) error {
	if !enabled {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	s.Start()

	err := fn()
	if err != nil {
		s.FinalMSG = text.FgRed.Sprint("Failed: "+suffix) + "\n"
	}
	s.Stop()
	return err
}
