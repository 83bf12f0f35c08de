package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the cosmocalc release version. Overridden at build time with
// -ldflags "-X github.com/agbru/cosmocalc/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "cosmocalc %s (%s)\n", Version, runtime.Version())
}
