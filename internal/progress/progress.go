// Package progress defines the progress-reporting primitives shared by the
// quadrature kernels (producers) and the CLI (consumer). Kernels report a
// normalized completion fraction; observers decide how to surface it.
package progress

import (
	"sync"

	"github.com/agbru/cosmocalc/internal/logging"
)

// ProgressUpdate carries a single progress report from one calculator.
type ProgressUpdate struct {
	// CalculatorIndex identifies which concurrent calculator the update
	// belongs to.
	CalculatorIndex int
	// Value is the normalized completion fraction in [0, 1].
	Value float64
}

// ProgressCallback receives a normalized completion fraction in [0, 1].
// Kernels call it from the goroutine performing the integration; callbacks
// must therefore be cheap and non-blocking.
type ProgressCallback func(value float64)

// ProgressObserver is notified of progress updates published by a subject.
type ProgressObserver interface {
	// Notify delivers one progress update.
	Notify(update ProgressUpdate)
}

// ProgressSubject fans progress updates out to a set of registered observers.
// It is safe for concurrent use.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates an empty progress subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Registration order determines notification order.
func (s *ProgressSubject) Register(obs ProgressObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// NotifyAll delivers the update to every registered observer.
func (s *ProgressSubject) NotifyAll(update ProgressUpdate) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obs := range s.observers {
		obs.Notify(update)
	}
}

// Callback returns a ProgressCallback bound to the given calculator index,
// publishing through the subject.
func (s *ProgressSubject) Callback(index int) ProgressCallback {
	return func(value float64) {
		s.NotifyAll(ProgressUpdate{CalculatorIndex: index, Value: value})
	}
}

// ChannelObserver forwards updates to a channel, dropping them when the
// channel is full so a slow consumer never blocks a calculation.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer forwarding to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Notify forwards the update, or drops it if the channel is full.
func (o *ChannelObserver) Notify(update ProgressUpdate) {
	select {
	case o.ch <- update:
	default:
	}
}

// LoggingObserver logs progress updates at debug level, rate-limited to
// whole-percent changes per calculator.
type LoggingObserver struct {
	logger logging.Logger

	mu   sync.Mutex
	last map[int]int
}

// NewLoggingObserver creates an observer logging through the given logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger, last: make(map[int]int)}
}

// Notify logs the update when it crosses a whole-percent boundary.
func (o *LoggingObserver) Notify(update ProgressUpdate) {
	percent := int(update.Value * 100)

	o.mu.Lock()
	prev, seen := o.last[update.CalculatorIndex]
	if seen && prev == percent {
		o.mu.Unlock()
		return
	}
	o.last[update.CalculatorIndex] = percent
	o.mu.Unlock()

	o.logger.Debug("progress",
		logging.Int("calculator", update.CalculatorIndex),
		logging.Int("percent", percent))
}

// NoOpObserver discards all updates.
type NoOpObserver struct{}

// NewNoOpObserver creates an observer that discards updates.
func NewNoOpObserver() *NoOpObserver { return &NoOpObserver{} }

// Notify discards the update.
func (*NoOpObserver) Notify(ProgressUpdate) {}
