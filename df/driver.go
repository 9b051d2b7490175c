// Package df drives a wecs pipeline from a Dragonfly world's transaction
// queue, so systems can touch blocks and entities through a live *world.Tx.
package df

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/wecs"
)

// Driver ticks a SystemStages pipeline inside transactions on a single
// Dragonfly world. Every tick runs in its own transaction, with the
// transaction handle exposed to systems as a *world.Tx resource for the
// duration of the tick.
type Driver struct {
	target *world.World
	stages *wecs.SystemStages
	ecs    *wecs.World

	// Execution state
	running atomic.Bool
	halted  atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Tick tracking
	tickRate   time.Duration
	tickNumber atomic.Uint64

	initOnce sync.Once
	onError  func(error) bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithTickRate sets the interval between ticks. Non-positive durations are
// ignored and the default of 50ms (20 TPS) is kept.
func WithTickRate(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.tickRate = d
		}
	}
}

// WithErrorHandler sets the callback invoked when a tick returns an error.
// Returning false halts the driver. The default handler logs the error and
// keeps ticking.
func WithErrorHandler(fn func(error) bool) Option {
	return func(dr *Driver) {
		if fn != nil {
			dr.onError = fn
		}
	}
}

// NewDriver creates a driver that ticks stages against ecs inside
// transactions on target.
func NewDriver(target *world.World, stages *wecs.SystemStages, ecs *wecs.World, opts ...Option) *Driver {
	d := &Driver{
		target:   target,
		stages:   stages,
		ecs:      ecs,
		tickRate: 50 * time.Millisecond, // 20 TPS
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		onError: func(err error) bool {
			slog.Error("wecs: dragonfly tick failed", "error", err)
			return true
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins the tick loop in its own goroutine.
func (d *Driver) Start() {
	if d.running.Swap(true) {
		return // Already running
	}
	go d.tickLoop()
}

// Stop shuts down the tick loop and waits for it to finish. A stopped
// driver cannot be restarted.
func (d *Driver) Stop() {
	if !d.running.Swap(false) {
		return // Not running
	}
	close(d.stopCh)
	<-d.doneCh
}

// TickNumber returns the number of ticks executed so far.
func (d *Driver) TickNumber() uint64 {
	return d.tickNumber.Load()
}

// tickLoop is the main driver loop.
func (d *Driver) tickLoop() {
	defer close(d.doneCh)

	// Initialization gets its own transaction so systems can create
	// resources with a valid Tx in hand.
	d.initOnce.Do(func() {
		d.target.Exec(func(tx *world.Tx) {
			wecs.InsertResource(d.ecs, tx)
			d.stages.InitializeSystems(d.ecs)
			wecs.RemoveResource[world.Tx](d.ecs)
		})
	})

	ticker := time.NewTicker(d.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopCh:
			return

		case <-ticker.C:
			if d.halted.Load() {
				d.running.Store(false)
				return
			}
			d.target.Exec(d.runTick)
		}
	}
}

// runTick executes one pipeline tick inside a world transaction. The error
// handler runs here rather than in tickLoop because transactions may be
// executed asynchronously relative to the loop.
func (d *Driver) runTick(tx *world.Tx) {
	d.tickNumber.Add(1)

	wecs.InsertResource(d.ecs, tx)
	defer wecs.RemoveResource[world.Tx](d.ecs)

	if err := d.stages.Run(d.ecs); err != nil {
		if !d.onError(err) {
			d.halted.Store(true)
		}
	}
}

// Tx returns the transaction of the tick currently executing, or nil
// outside a tick. Systems running under a Driver can also receive it
// through an injected field:
//
//	type BlockSystem struct {
//	    Tx *world.Tx `wecs:"res"`
//	}
func Tx(w *wecs.World) *world.Tx {
	return wecs.Resource[world.Tx](w)
}
