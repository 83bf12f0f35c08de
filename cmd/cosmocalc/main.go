package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/agbru/cosmocalc/internal/app"
	apperrors "github.com/agbru/cosmocalc/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		// Flag-parsing errors are already printed by the flag package;
		// validation errors carry their own message.
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(os.Stderr, "cosmocalc: %v\n", err)
		}
		// Anything New rejects is a configuration problem.
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
