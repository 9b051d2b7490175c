package wecs

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Runner drives a SystemStages pipeline against a World on a fixed tick
// rate. It owns the goroutine that ticks the stages and takes care of
// one-time system initialization before the first tick.
//
// For hosts that already have a tick loop of their own, Step executes a
// single tick synchronously instead.
type Runner struct {
	stages *SystemStages
	world  *World

	// Execution state
	running atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Tick tracking
	tickRate   time.Duration
	tickNumber atomic.Uint64

	initOnce sync.Once
	onError  func(error) bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTickRate sets the interval between ticks. Non-positive durations are
// ignored and the default of 50ms (20 TPS) is kept.
func WithTickRate(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.tickRate = d
		}
	}
}

// WithErrorHandler sets the callback invoked when a tick returns an error.
// Returning false stops the runner. The default handler logs the error and
// keeps ticking.
func WithErrorHandler(fn func(error) bool) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.onError = fn
		}
	}
}

// NewRunner creates a runner for the given stages and world.
func NewRunner(stages *SystemStages, w *World, opts ...RunnerOption) *Runner {
	r := &Runner{
		stages:   stages,
		world:    w,
		tickRate: 50 * time.Millisecond, // 20 TPS
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		onError: func(err error) bool {
			slog.Error("wecs: tick failed", "error", err)
			return true
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins the tick loop in its own goroutine.
func (r *Runner) Start() {
	if r.running.Swap(true) {
		return // Already running
	}
	go r.tickLoop()
}

// Stop shuts down the tick loop and waits for the in-flight tick to finish.
// A stopped runner cannot be restarted.
func (r *Runner) Stop() {
	if !r.running.Swap(false) {
		return // Not running
	}
	close(r.stopCh)
	<-r.doneCh
}

// Step executes a single tick synchronously: systems are initialized on the
// first call, then every stage runs once in order. It returns the first
// error a system produced, leaving the rest of the tick unexecuted.
func (r *Runner) Step() error {
	r.initOnce.Do(func() {
		r.stages.InitializeSystems(r.world)
	})
	r.tickNumber.Add(1)
	return r.stages.Run(r.world)
}

// TickNumber returns the number of ticks executed so far.
func (r *Runner) TickNumber() uint64 {
	return r.tickNumber.Load()
}

// tickLoop is the main runner loop.
func (r *Runner) tickLoop() {
	defer close(r.doneCh)

	r.initOnce.Do(func() {
		r.stages.InitializeSystems(r.world)
	})

	ticker := time.NewTicker(r.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return

		case <-ticker.C:
			r.tickNumber.Add(1)
			if err := r.stages.Run(r.world); err != nil {
				if !r.onError(err) {
					r.running.Store(false)
					return
				}
			}
		}
	}
}
