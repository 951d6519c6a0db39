package wizard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/muurk/kwfinder/internal/keyword"
)

// Stage is the wizard's current position in its flow
type Stage int

const (
	StageInput     Stage = iota + 1 // Seed keyword entry
	StageFetching                   // Lookup in flight
	StageReview                     // Suggestions shown, awaiting confirm/edit
	StageConfirmed                  // Selection confirmed
	StageError                      // Lookup failed, awaiting retry/edit
)

// String returns the stage name used in logs and JSON output
func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageFetching:
		return "fetching"
	case StageReview:
		return "review"
	case StageConfirmed:
		return "confirmed"
	case StageError:
		return "error"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Step returns the 1-based position in the four-step progress indicator.
// The error stage is shown on the Processing step.
func (s Stage) Step() int {
	if s == StageError {
		return int(StageFetching)
	}
	return int(s)
}

// ErrInvalidTransition is matched by every *TransitionError
var ErrInvalidTransition = errors.New("invalid wizard transition")

// ErrSeedsInvalid is returned by Submit when a seed fails validation
var ErrSeedsInvalid = errors.New("seed keywords are invalid")

// TransitionError reports an action that is not allowed in the current stage
type TransitionError struct {
	From   Stage
	Action string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s stage", e.Action, e.From)
}

// Is makes errors.Is(err, ErrInvalidTransition) true
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// FieldErrors holds the validation message for each seed slot ("" means valid)
type FieldErrors struct {
	First  string
	Second string
}

// Get returns the message for a slot
func (f FieldErrors) Get(slot keyword.Slot) string {
	if slot == keyword.SlotSecond {
		return f.Second
	}
	return f.First
}

// With returns a copy with the slot message replaced
func (f FieldErrors) With(slot keyword.Slot, msg string) FieldErrors {
	if slot == keyword.SlotSecond {
		f.Second = msg
	} else {
		f.First = msg
	}
	return f
}

// Any reports whether any slot has an error
func (f FieldErrors) Any() bool {
	return f.First != "" || f.Second != ""
}

// Request identifies one lookup issued by Submit or Retry
type Request struct {
	ID         string
	Generation uint64
	Seeds      keyword.Seeds
}

// State is the complete wizard state.
// Transitions are methods returning the next State; the receiver is never modified.
type State struct {
	Stage       Stage
	Seeds       keyword.Seeds
	Errors      FieldErrors
	Suggestions []keyword.Suggestion
	Loading     bool

	// LookupErr is the failure shown on the error stage
	LookupErr error

	// Generation increases whenever a lookup is issued or abandoned.
	// A result is only accepted when its request carries the current generation.
	Generation uint64
}

// New returns the initial wizard state
func New() State {
	return State{Stage: StageInput}
}

// SetSeed stores the text of a slot and validates it
func (s State) SetSeed(slot keyword.Slot, text string) (State, error) {
	if s.Stage != StageInput {
		return s, &TransitionError{From: s.Stage, Action: "edit seed"}
	}
	s.Seeds = s.Seeds.With(slot, text)
	return s.Validate(slot), nil
}

// Validate runs the seed rules for one slot and records the message
func (s State) Validate(slot keyword.Slot) State {
	msg := keyword.ValidationMessage(keyword.ValidateSeed(s.Seeds.Get(slot)))
	s.Errors = s.Errors.With(slot, msg)
	return s
}

// ValidateAll validates both slots
func (s State) ValidateAll() State {
	for _, slot := range keyword.Slots {
		s = s.Validate(slot)
	}
	return s
}

// CanSubmit reports whether a submit would be accepted right now without
// changing any error message. Used to disable the submit action.
func (s State) CanSubmit() bool {
	if s.Stage != StageInput || s.Loading {
		return false
	}
	return len(keyword.ValidateSeeds(s.Seeds)) == 0
}

// Submit validates both seeds and, if they pass, moves to Fetching.
// The returned Request must accompany the lookup result given to Resolve.
// On validation failure the stage is unchanged, errors are set, and no
// lookup may be issued.
func (s State) Submit() (State, Request, error) {
	if s.Stage != StageInput {
		return s, Request{}, &TransitionError{From: s.Stage, Action: "submit"}
	}

	s = s.ValidateAll()
	if s.Errors.Any() {
		return s, Request{}, ErrSeedsInvalid
	}

	return s.startFetch()
}

// Retry issues a new lookup for the same seeds after a failure
func (s State) Retry() (State, Request, error) {
	if s.Stage != StageError {
		return s, Request{}, &TransitionError{From: s.Stage, Action: "retry"}
	}
	return s.startFetch()
}

func (s State) startFetch() (State, Request, error) {
	s.Generation++
	s.Stage = StageFetching
	s.Loading = true
	s.LookupErr = nil
	s.Suggestions = nil

	req := Request{
		ID:         uuid.NewString(),
		Generation: s.Generation,
		Seeds:      s.Seeds,
	}
	return s, req, nil
}

// IsCurrent reports whether a result for req would be accepted
func (s State) IsCurrent(req Request) bool {
	return s.Stage == StageFetching && req.Generation == s.Generation
}

// Resolve applies a lookup result.
// Results for abandoned or superseded requests are ignored and the state is
// returned unchanged. A successful, well-formed result moves to Review; any
// failure moves to the error stage with LookupErr set.
func (s State) Resolve(req Request, result keyword.Result) State {
	if !s.IsCurrent(req) {
		return s
	}

	s.Loading = false

	err := result.Err
	if err == nil {
		if checkErr := keyword.CheckResult(result.Suggestions); checkErr != nil {
			err = checkErr
		}
	}

	if err != nil {
		s.Stage = StageError
		s.LookupErr = keyword.ClassifyLookupError(err, "")
		s.Suggestions = nil
		return s
	}

	s.Stage = StageReview
	s.Suggestions = append([]keyword.Suggestion(nil), result.Suggestions...)
	return s
}

// Confirm accepts the reviewed suggestions
func (s State) Confirm() (State, error) {
	if s.Stage != StageReview {
		return s, &TransitionError{From: s.Stage, Action: "confirm"}
	}
	s.Stage = StageConfirmed
	return s, nil
}

// Edit returns to seed entry keeping the current seeds
func (s State) Edit() (State, error) {
	if s.Stage != StageReview && s.Stage != StageError {
		return s, &TransitionError{From: s.Stage, Action: "edit"}
	}
	s.Stage = StageInput
	s.Suggestions = nil
	s.LookupErr = nil
	return s, nil
}

// Cancel abandons a pending lookup and returns to seed entry
func (s State) Cancel() (State, error) {
	if s.Stage != StageFetching {
		return s, &TransitionError{From: s.Stage, Action: "cancel"}
	}
	s.Generation++
	s.Stage = StageInput
	s.Loading = false
	return s, nil
}

// Restart clears all captured data. Allowed from any stage; a pending
// lookup is abandoned.
func (s State) Restart() State {
	next := New()
	next.Generation = s.Generation + 1
	return next
}

// Selected returns the Primary and Secondary suggestions
func (s State) Selected() []keyword.Suggestion {
	return keyword.FilterSelected(s.Suggestions)
}
