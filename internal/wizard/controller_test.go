package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/muurk/kwfinder/internal/keyword"
)

// blockingProvider waits for release (or ctx) before answering
type blockingProvider struct {
	started chan keyword.Seeds
	release chan struct{}
	mock    *keyword.MockProvider
}

func newBlockingProvider() *blockingProvider {
	return &blockingProvider{
		started: make(chan keyword.Seeds, 4),
		release: make(chan struct{}),
		mock:    &keyword.MockProvider{Templates: keyword.DefaultTemplates()},
	}
}

func (p *blockingProvider) Name() string { return "blocking" }

func (p *blockingProvider) Suggest(ctx context.Context, seeds keyword.Seeds) ([]keyword.Suggestion, error) {
	p.started <- seeds
	select {
	case <-p.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return p.mock.Suggest(context.Background(), seeds)
}

// flakyProvider fails until failures reaches zero
type flakyProvider struct {
	mu       sync.Mutex
	failures int
	mock     *keyword.MockProvider
}

func (p *flakyProvider) Name() string { return "flaky" }

func (p *flakyProvider) Suggest(ctx context.Context, seeds keyword.Seeds) ([]keyword.Suggestion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failures > 0 {
		p.failures--
		return nil, errors.New("service unavailable")
	}
	return p.mock.Suggest(ctx, seeds)
}

func TestController_SubmitToConfirm(t *testing.T) {
	c := NewController(&keyword.MockProvider{Templates: keyword.DefaultTemplates()})

	var stages []Stage
	c.OnTransition = func(from, to Stage) {
		stages = append(stages, to)
	}

	if err := c.SetSeeds(keyword.Seeds{First: "plumbing", Second: "Chicago"}); err != nil {
		t.Fatalf("SetSeeds() error = %v", err)
	}
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := c.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	want := []Stage{StageFetching, StageReview, StageConfirmed}
	if len(stages) != len(want) {
		t.Fatalf("transitions = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, stages[i], want[i])
		}
	}

	state := c.State()
	if len(state.Suggestions) != 8 || len(state.Selected()) != 3 {
		t.Errorf("confirmed state has %d suggestions, %d selected", len(state.Suggestions), len(state.Selected()))
	}
}

func TestController_SubmitInvalid(t *testing.T) {
	provider := newBlockingProvider()
	c := NewController(provider)

	if err := c.SetSeeds(keyword.Seeds{First: "café", Second: "tea"}); err != nil {
		t.Fatalf("SetSeeds() error = %v", err)
	}

	err := c.Submit(context.Background())
	if !errors.Is(err, ErrSeedsInvalid) {
		t.Fatalf("Submit() error = %v, want ErrSeedsInvalid", err)
	}

	select {
	case <-provider.started:
		t.Error("provider was called for invalid seeds")
	default:
	}

	state := c.State()
	if state.Stage != StageInput || state.Errors.First != keyword.MsgSpecialCharacters {
		t.Errorf("state = %v / %+v", state.Stage, state.Errors)
	}
}

func TestController_FailureThenRetry(t *testing.T) {
	c := NewController(&flakyProvider{
		failures: 1,
		mock:     &keyword.MockProvider{Templates: keyword.DefaultTemplates()},
	})

	if err := c.SetSeeds(keyword.Seeds{First: "plumbing", Second: "Chicago"}); err != nil {
		t.Fatalf("SetSeeds() error = %v", err)
	}
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	state := c.State()
	if state.Stage != StageError {
		t.Fatalf("stage after failure = %v, want error", state.Stage)
	}
	if !keyword.IsRetryable(state.LookupErr) {
		t.Errorf("provider failure should be retryable: %v", state.LookupErr)
	}

	if err := c.Confirm(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Confirm() from error = %v, want ErrInvalidTransition", err)
	}

	if err := c.Retry(context.Background()); err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if got := c.State().Stage; got != StageReview {
		t.Errorf("stage after retry = %v, want review", got)
	}
}

func TestController_RestartDiscardsPendingResult(t *testing.T) {
	provider := newBlockingProvider()
	c := NewController(provider)

	if err := c.SetSeeds(keyword.Seeds{First: "plumbing", Second: "Chicago"}); err != nil {
		t.Fatalf("SetSeeds() error = %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()

	select {
	case <-provider.started:
	case <-time.After(time.Second):
		t.Fatal("lookup never started")
	}

	if err := c.Submit(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Submit() while fetching = %v, want ErrInvalidTransition", err)
	}

	c.Restart()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Submit() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Restart() did not cancel the pending lookup")
	}

	state := c.State()
	if state.Stage != StageInput || state.Seeds != (keyword.Seeds{}) || len(state.Suggestions) != 0 {
		t.Errorf("state after restart = %+v", state)
	}
}

func TestController_CancelThenResubmit(t *testing.T) {
	provider := newBlockingProvider()
	c := NewController(provider)

	if err := c.SetSeeds(keyword.Seeds{First: "plumbing", Second: "Chicago"}); err != nil {
		t.Fatalf("SetSeeds() error = %v", err)
	}

	first := make(chan error, 1)
	go func() {
		first <- c.Submit(context.Background())
	}()
	<-provider.started

	if err := c.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if err := <-first; err != nil {
		t.Errorf("first Submit() error = %v", err)
	}
	if got := c.State().Stage; got != StageInput {
		t.Fatalf("stage after cancel = %v, want input", got)
	}

	if err := c.SetSeed(keyword.SlotFirst, "roofing"); err != nil {
		t.Fatalf("SetSeed() error = %v", err)
	}

	second := make(chan error, 1)
	go func() {
		second <- c.Submit(context.Background())
	}()
	if seeds := <-provider.started; seeds.First != "roofing" {
		t.Errorf("second lookup seeds = %+v", seeds)
	}
	close(provider.release)

	if err := <-second; err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}

	state := c.State()
	if state.Stage != StageReview {
		t.Fatalf("stage = %v, want review", state.Stage)
	}
	if state.Suggestions[0].Text != "roofing services" {
		t.Errorf("first suggestion = %q, want %q", state.Suggestions[0].Text, "roofing services")
	}
}

func TestController_SetSeedOutsideInput(t *testing.T) {
	c := NewController(&keyword.MockProvider{Templates: keyword.DefaultTemplates()})
	if err := c.SetSeeds(keyword.Seeds{First: "plumbing", Second: "Chicago"}); err != nil {
		t.Fatalf("SetSeeds() error = %v", err)
	}
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if err := c.SetSeed(keyword.SlotFirst, "roofing"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SetSeed() in review = %v, want ErrInvalidTransition", err)
	}

	if err := c.Edit(); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if err := c.SetSeed(keyword.SlotFirst, "roofing"); err != nil {
		t.Errorf("SetSeed() after edit = %v", err)
	}
}
