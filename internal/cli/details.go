package cli

import (
	"fmt"
	"io"

	"github.com/agbru/cosmocalc/internal/format"
	"github.com/agbru/cosmocalc/internal/metrics"
	"github.com/agbru/cosmocalc/internal/sysmon"
)

// DisplayResourceReport shows process memory and system usage after a
// calculation. The snapshot should be a Delta of before/after readings so
// the GC figures cover only the calculation.
func DisplayResourceReport(snap metrics.MemorySnapshot, sys sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nResource Report:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Heap from OS:    %s\n", format.FormatBytes(snap.HeapSys))
	fmt.Fprintf(out, "  Heap objects:    %d\n", snap.HeapObjects)
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	if snap.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
	fmt.Fprintf(out, "  System:          %s\n", sys.Describe())
}
