package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/muurk/kwfinder/internal/keyword"
	"github.com/muurk/kwfinder/internal/logging"
)

// Controller drives a State synchronously against a Provider.
// It is used by the non-interactive CLI and by tests; the TUI holds its own
// State and runs lookups as Bubble Tea commands.
//
// Controller is safe for concurrent use. The lock is held only while a
// transition is applied, never across a lookup, so Restart or Cancel may be
// called while Submit is waiting and the late result will be discarded.
type Controller struct {
	provider keyword.Provider

	// OnTransition, if set, is called after every stage change
	OnTransition func(from, to Stage)

	mu            sync.Mutex
	state         State
	cancelPending context.CancelFunc
}

// NewController creates a controller in the initial state
func NewController(provider keyword.Provider) *Controller {
	return &Controller{
		provider: provider,
		state:    New(),
	}
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// apply stores next and reports the stage change. Caller must hold c.mu.
func (c *Controller) apply(next State) {
	prev := c.state
	c.state = next

	if prev.Stage != next.Stage {
		logging.LogTransition(prev.Stage.String(), next.Stage.String(), next.Generation)
		if c.OnTransition != nil {
			c.OnTransition(prev.Stage, next.Stage)
		}
	}
}

// SetSeed updates and validates one seed slot
func (c *Controller) SetSeed(slot keyword.Slot, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.SetSeed(slot, text)
	if err != nil {
		return err
	}
	c.apply(next)
	return nil
}

// SetSeeds updates and validates both seed slots
func (c *Controller) SetSeeds(seeds keyword.Seeds) error {
	if err := c.SetSeed(keyword.SlotFirst, seeds.First); err != nil {
		return err
	}
	return c.SetSeed(keyword.SlotSecond, seeds.Second)
}

// Submit validates the seeds, performs the lookup and resolves it.
// It returns ErrSeedsInvalid (stage unchanged, no lookup issued) when a seed
// fails validation. A lookup failure is not returned as an error: the state
// moves to the error stage and State().LookupErr holds the cause.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	next, req, err := c.state.Submit()
	c.apply(next)
	c.mu.Unlock()

	if err != nil {
		return err
	}

	c.lookup(ctx, req)
	return nil
}

// Retry repeats the lookup after a failure
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	next, req, err := c.state.Retry()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.apply(next)
	c.mu.Unlock()

	c.lookup(ctx, req)
	return nil
}

func (c *Controller) lookup(ctx context.Context, req Request) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if c.state.IsCurrent(req) {
		c.cancelPending = cancel
	}
	c.mu.Unlock()

	start := time.Now()
	logging.LogLookupStart(req.ID, c.provider.Name(), req.Seeds.List())

	result := keyword.Lookup(ctx, c.provider, req.Seeds)
	logging.LogLookup(req.ID, c.provider.Name(), len(result.Suggestions), time.Since(start), result.Err)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsCurrent(req) {
		logging.LogStaleResult(req.ID, req.Generation, c.state.Generation)
		return
	}
	c.cancelPending = nil
	c.apply(c.state.Resolve(req, result))
}

// Confirm accepts the reviewed suggestions
func (c *Controller) Confirm() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.Confirm()
	if err != nil {
		return err
	}
	c.apply(next)
	return nil
}

// Edit returns to seed entry keeping the current seeds
func (c *Controller) Edit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.Edit()
	if err != nil {
		return err
	}
	c.apply(next)
	return nil
}

// Cancel abandons a pending lookup
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.Cancel()
	if err != nil {
		return err
	}
	c.abandonPending()
	c.apply(next)
	return nil
}

// Restart clears all captured data, abandoning any pending lookup
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.abandonPending()
	c.apply(c.state.Restart())
}

// abandonPending cancels the in-flight lookup context. Caller must hold c.mu.
func (c *Controller) abandonPending() {
	if c.cancelPending != nil {
		c.cancelPending()
		c.cancelPending = nil
	}
}
