package main

import (
	"context"
	"os"

	"github.com/desertthunder/spotlist/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{
		Logger:    logger,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	// Failures are reported once here; the process still exits normally.
	if err := runner.Command().Run(context.Background(), os.Args); err != nil {
		runner.ReportError(err)
	}
}
