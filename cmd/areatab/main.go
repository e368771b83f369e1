// Package main is the entry point of the areatab CLI.
package main

import (
	"context"
	"os"

	"github.com/areatab/areatab/cmd/areatab/app"
	"github.com/areatab/areatab/pkg/constants"
)

// Build metadata populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.Context()
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		// The signal context may already be canceled, so shutdown runs
		// under a fresh deadline of its own.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
		defer shutdownCancel()

		if shutdownErr := application.Shutdown(shutdownCtx); shutdownErr != nil {
			application.Logger().Error().Err(shutdownErr).Msg("Shutdown failed after command error")
		}
		app.ExitOnError(err)
	}
}
