// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Example: [DisplayProgress].
//
//   - Print* functions write informational banners to an [io.Writer].
//     Examples: [PrintExecutionConfig], [PrintExecutionMode].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Example: [WriteResultToFile].

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the execution banner.
	Verbose bool
}

// WriteResultToFile writes a computed comoving distance to a file, with a
// commented header describing the run. A nil error is returned when no
// output file is configured.
func WriteResultToFile(value, z1, z2 float64, scheme string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Comoving Distance Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Scheme: %s\n", scheme)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# z1: %g\n", z1)
	fmt.Fprintf(file, "# z2: %g\n", z2)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "D_C(%g, %g) = %.9f Mpc/h\n", z1, z2, value)

	return nil
}

// FormatQuietResult formats a result for quiet mode output: a single line
// holding only the value, suitable for scripting.
func FormatQuietResult(value float64) string {
	return fmt.Sprintf("%.9f", value)
}
