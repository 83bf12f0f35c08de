package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/cosmocalc/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// 200ms keeps the terminal responsive without flooding it with updates.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples DisplayProgress from a specific spinner implementation,
// which makes the progress rendering testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate so suffix updates land on frames.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState aggregates the progress of concurrent quadrature schemes.
// It tracks each scheme's fraction individually and exposes their average,
// which drives the single consolidated progress bar.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates a ProgressState tracking numCalculators schemes.
func NewProgressState(numCalculators int) *ProgressState {
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records a new progress value for one scheme. Out-of-range indices
// are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress across all tracked schemes,
// in [0, 1].
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numCalculators == 0 {
		return 0.0
	}
	return total / float64(ps.numCalculators)
}

// progressBar renders a textual progress bar of the given width for a
// normalized progress value.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress consumes progress updates from the running schemes and
// renders a spinner with a consolidated progress bar until the channel
// closes. It signals wg when rendering is finished.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	if numCalculators == 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numCalculators)
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" Integrating [%s] %5.1f%%", progressBar(0, ProgressBarWidth), 0.0))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		state.Update(update.CalculatorIndex, update.Value)
		avg := state.CalculateAverage()
		sp.UpdateSuffix(fmt.Sprintf(" Integrating [%s] %5.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
	}

	sp.UpdateSuffix(fmt.Sprintf(" Integrating [%s] %5.1f%%", progressBar(1, ProgressBarWidth), 100.0))
}
