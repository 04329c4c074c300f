package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

// startSpinner shows a progress spinner unless verbose output is active,
// where it would interleave with log lines. The returned cleanup stops the
// spinner and prints its final message, if one was set by then.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Continue without color if the terminal rejects it.
	_ = s.Color("cyan")

	if !verbose {
		s.Start()
	}

	cleanup := func() {
		finalMsg := s.FinalMSG
		// Clear FinalMSG so Stop doesn't print it without the trailing
		// newline handling below.
		s.FinalMSG = ""
		if !verbose {
			s.Stop()
		}
		if finalMsg != "" {
			if !strings.HasSuffix(finalMsg, "\n") {
				finalMsg += "\n"
			}
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
