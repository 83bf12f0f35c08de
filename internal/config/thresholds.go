package config

import "runtime"

// Panel-count resolution chain (highest priority first):
//   1. CLI flag (--panels)
//   2. Environment variable (COSMOCALC_PANELS)
//   3. Adaptive hardware estimation (this file)

// maxAdaptivePanels caps the adaptive estimate: beyond this, panel
// scheduling overhead outweighs the gain for a cheap smooth integrand.
const maxAdaptivePanels = 16

// ApplyAdaptivePanels fills in the concurrent panel count based on hardware
// characteristics when the configuration leaves it at zero, preserving any
// user-specified value.
func ApplyAdaptivePanels(cfg AppConfig) AppConfig {
	if cfg.Panels == 0 {
		cfg.Panels = EstimateOptimalPanelCount()
	}
	return cfg
}

// EstimateOptimalPanelCount provides a heuristic estimate of the optimal
// concurrent panel count without running benchmarks.
func EstimateOptimalPanelCount() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 1 // No parallelism
	case numCPU <= 4:
		return numCPU
	case numCPU <= maxAdaptivePanels:
		return numCPU
	default:
		return maxAdaptivePanels
	}
}
