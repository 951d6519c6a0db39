package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/muurk/kwfinder/internal/keyword"
)

func mockResult(seeds keyword.Seeds) keyword.Result {
	p := &keyword.MockProvider{Templates: keyword.DefaultTemplates()}
	return keyword.Lookup(context.Background(), p, seeds)
}

func withSeeds(t *testing.T, first, second string) State {
	t.Helper()
	s := New()
	var err error
	if s, err = s.SetSeed(keyword.SlotFirst, first); err != nil {
		t.Fatalf("SetSeed(first) error = %v", err)
	}
	if s, err = s.SetSeed(keyword.SlotSecond, second); err != nil {
		t.Fatalf("SetSeed(second) error = %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := New()
	if s.Stage != StageInput {
		t.Errorf("New().Stage = %v, want %v", s.Stage, StageInput)
	}
	if s.Seeds != (keyword.Seeds{}) || s.Errors != (FieldErrors{}) || len(s.Suggestions) != 0 || s.Loading {
		t.Errorf("New() = %+v, want zero data", s)
	}
}

func TestSetSeed_ValidatesSlot(t *testing.T) {
	s := withSeeds(t, "a b c d", "x")

	if s.Errors.First != keyword.MsgTooManyWords {
		t.Errorf("Errors.First = %q, want %q", s.Errors.First, keyword.MsgTooManyWords)
	}
	if s.Errors.Second != "" {
		t.Errorf("Errors.Second = %q, want empty", s.Errors.Second)
	}

	s, _ = s.SetSeed(keyword.SlotFirst, "a b c")
	if s.Errors.First != "" {
		t.Errorf("Errors.First after fix = %q, want empty", s.Errors.First)
	}
}

func TestSubmit_ValidSeeds(t *testing.T) {
	s := withSeeds(t, "plumbing", "Chicago")

	next, req, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if next.Stage != StageFetching || !next.Loading {
		t.Errorf("Submit() stage = %v loading = %v, want fetching/true", next.Stage, next.Loading)
	}
	if req.Generation != next.Generation || req.ID == "" {
		t.Errorf("Submit() request = %+v, generation %d", req, next.Generation)
	}
	if req.Seeds != s.Seeds {
		t.Errorf("Submit() request seeds = %+v, want %+v", req.Seeds, s.Seeds)
	}
	if s.Stage != StageInput {
		t.Error("Submit() must not modify the receiver")
	}

	result := mockResult(req.Seeds)
	next = next.Resolve(req, result)
	if next.Stage != StageReview || next.Loading {
		t.Errorf("Resolve() stage = %v loading = %v, want review/false", next.Stage, next.Loading)
	}
	if len(next.Suggestions) != len(result.Suggestions) {
		t.Errorf("Resolve() stored %d suggestions, want %d", len(next.Suggestions), len(result.Suggestions))
	}
}

func TestSubmit_InvalidSeeds(t *testing.T) {
	tests := []struct {
		name       string
		first      string
		second     string
		wantFirst  string
		wantSecond string
	}{
		{"Too many words", "a b c d", "x", keyword.MsgTooManyWords, ""},
		{"Special characters", "café", "tea", keyword.MsgSpecialCharacters, ""},
		{"Second empty", "plumbing", "  ", "", keyword.MsgRequired},
		{"Both empty", "", "", keyword.MsgRequired, keyword.MsgRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Seeds = keyword.Seeds{First: tt.first, Second: tt.second}

			next, req, err := s.Submit()
			if !errors.Is(err, ErrSeedsInvalid) {
				t.Fatalf("Submit() error = %v, want ErrSeedsInvalid", err)
			}
			if next.Stage != StageInput || next.Loading {
				t.Errorf("Submit() stage = %v, want input", next.Stage)
			}
			if req != (Request{}) {
				t.Errorf("Submit() issued request %+v", req)
			}
			if next.Generation != s.Generation {
				t.Error("rejected Submit() must not bump the generation")
			}
			if next.Errors.First != tt.wantFirst || next.Errors.Second != tt.wantSecond {
				t.Errorf("Submit() errors = %+v, want {%q %q}", next.Errors, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

func TestSubmit_WhileFetching(t *testing.T) {
	s, _, err := withSeeds(t, "plumbing", "Chicago").Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	next, _, err := s.Submit()
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Submit() error = %v, want ErrInvalidTransition", err)
	}
	if next.Generation != s.Generation {
		t.Error("second Submit() must not issue another lookup")
	}
}

func TestConfirm(t *testing.T) {
	s, req, _ := withSeeds(t, "plumbing", "Chicago").Submit()
	s = s.Resolve(req, mockResult(req.Seeds))

	confirmed, err := s.Confirm()
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if confirmed.Stage != StageConfirmed {
		t.Errorf("Confirm() stage = %v, want confirmed", confirmed.Stage)
	}
	if len(confirmed.Suggestions) != len(s.Suggestions) {
		t.Fatal("Confirm() must not alter suggestions")
	}
	for i := range s.Suggestions {
		if confirmed.Suggestions[i] != s.Suggestions[i] {
			t.Errorf("suggestion %d changed: %+v -> %+v", i, s.Suggestions[i], confirmed.Suggestions[i])
		}
	}
}

func TestInvalidTransitions(t *testing.T) {
	input := New()

	if _, err := input.Confirm(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Confirm() from input error = %v", err)
	}
	if _, err := input.Edit(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Edit() from input error = %v", err)
	}
	if _, _, err := input.Retry(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Retry() from input error = %v", err)
	}
	if _, err := input.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Cancel() from input error = %v", err)
	}

	var tErr *TransitionError
	_, err := input.Confirm()
	if !errors.As(err, &tErr) || tErr.From != StageInput || tErr.Action != "confirm" {
		t.Errorf("Confirm() error = %#v", err)
	}
}

func TestEdit_PreservesSeeds(t *testing.T) {
	s, req, _ := withSeeds(t, "plumbing", "Chicago").Submit()
	s = s.Resolve(req, mockResult(req.Seeds))

	edited, err := s.Edit()
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if edited.Stage != StageInput {
		t.Errorf("Edit() stage = %v, want input", edited.Stage)
	}
	if edited.Seeds != (keyword.Seeds{First: "plumbing", Second: "Chicago"}) {
		t.Errorf("Edit() seeds = %+v", edited.Seeds)
	}
	if _, err := edited.SetSeed(keyword.SlotFirst, "roofing"); err != nil {
		t.Errorf("SetSeed() after Edit() error = %v", err)
	}
}

func TestRestart_ClearsEverything(t *testing.T) {
	s, req, _ := withSeeds(t, "plumbing", "Chicago").Submit()
	s = s.Resolve(req, mockResult(req.Seeds))
	s, _ = s.Confirm()

	restarted := s.Restart()
	if restarted.Stage != StageInput {
		t.Errorf("Restart() stage = %v, want input", restarted.Stage)
	}
	if restarted.Seeds != (keyword.Seeds{}) {
		t.Errorf("Restart() seeds = %+v, want empty", restarted.Seeds)
	}
	if restarted.Errors != (FieldErrors{}) {
		t.Errorf("Restart() errors = %+v, want empty", restarted.Errors)
	}
	if len(restarted.Suggestions) != 0 {
		t.Errorf("Restart() kept %d suggestions", len(restarted.Suggestions))
	}
	if restarted.Generation <= s.Generation {
		t.Error("Restart() must bump the generation")
	}
}

func TestResolve_StaleAfterRestart(t *testing.T) {
	s, req, _ := withSeeds(t, "plumbing", "Chicago").Submit()

	restarted := s.Restart()
	resolved := restarted.Resolve(req, mockResult(req.Seeds))

	if resolved.Stage != StageInput || len(resolved.Suggestions) != 0 {
		t.Errorf("stale Resolve() after Restart changed state: %+v", resolved)
	}
}

func TestResolve_StaleAfterCancelAndResubmit(t *testing.T) {
	s, oldReq, _ := withSeeds(t, "plumbing", "Chicago").Submit()

	s, err := s.Cancel()
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if s.Stage != StageInput || s.Loading {
		t.Errorf("Cancel() stage = %v loading = %v", s.Stage, s.Loading)
	}

	s, _ = s.SetSeed(keyword.SlotFirst, "roofing")
	s, newReq, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// The old result arrives late and must be ignored
	s = s.Resolve(oldReq, mockResult(oldReq.Seeds))
	if s.Stage != StageFetching {
		t.Fatalf("old result resolved the new request: stage %v", s.Stage)
	}

	s = s.Resolve(newReq, mockResult(newReq.Seeds))
	if s.Stage != StageReview || s.Suggestions[0].Text != "roofing services" {
		t.Errorf("Resolve() = stage %v, first %q", s.Stage, s.Suggestions[0].Text)
	}
}

func TestResolve_FailureAndRetry(t *testing.T) {
	s, req, _ := withSeeds(t, "plumbing", "Chicago").Submit()

	s = s.Resolve(req, keyword.Result{Err: errors.New("backend down")})
	if s.Stage != StageError || s.Loading {
		t.Fatalf("Resolve(err) stage = %v loading = %v, want error/false", s.Stage, s.Loading)
	}
	if !keyword.IsLookupError(s.LookupErr) {
		t.Errorf("LookupErr = %T, want *keyword.LookupError", s.LookupErr)
	}

	s, retryReq, err := s.Retry()
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if s.Stage != StageFetching || s.LookupErr != nil {
		t.Errorf("Retry() stage = %v err = %v", s.Stage, s.LookupErr)
	}
	if retryReq.Generation == req.Generation || retryReq.ID == req.ID {
		t.Error("Retry() must issue a new request")
	}

	s = s.Resolve(retryReq, mockResult(retryReq.Seeds))
	if s.Stage != StageReview {
		t.Errorf("Resolve() after retry stage = %v, want review", s.Stage)
	}
}

func TestResolve_EmptyResultIsError(t *testing.T) {
	s, req, _ := withSeeds(t, "plumbing", "Chicago").Submit()

	s = s.Resolve(req, keyword.Result{})
	if s.Stage != StageError {
		t.Errorf("Resolve(empty) stage = %v, want error", s.Stage)
	}

	s, err := s.Edit()
	if err != nil || s.Stage != StageInput {
		t.Errorf("Edit() from error = %v, %v", s.Stage, err)
	}
}

func TestSelected_PlumbingScenario(t *testing.T) {
	s, req, _ := withSeeds(t, "plumbing", "Chicago").Submit()
	s = s.Resolve(req, mockResult(req.Seeds))

	if len(s.Suggestions) != 8 {
		t.Fatalf("got %d suggestions, want 8", len(s.Suggestions))
	}
	if s.Suggestions[0].Role != keyword.RolePrimary || s.Suggestions[0].Text != "plumbing services" {
		t.Errorf("record 0 = %+v", s.Suggestions[0])
	}
	for i := 1; i <= 2; i++ {
		if s.Suggestions[i].Role != keyword.RoleSecondary {
			t.Errorf("record %d role = %v, want Secondary", i, s.Suggestions[i].Role)
		}
	}

	s, _ = s.Confirm()
	selected := s.Selected()
	if len(selected) != 3 {
		t.Fatalf("Selected() = %d entries, want 3", len(selected))
	}
	for _, sug := range selected {
		if sug.Role == keyword.RoleNone {
			t.Errorf("confirmed entry %q has no role", sug.Text)
		}
	}
}

func TestCanSubmit(t *testing.T) {
	if New().CanSubmit() {
		t.Error("empty seeds should not be submittable")
	}
	if !withSeeds(t, "plumbing", "Chicago").CanSubmit() {
		t.Error("valid seeds should be submittable")
	}
	s, _, _ := withSeeds(t, "plumbing", "Chicago").Submit()
	if s.CanSubmit() {
		t.Error("cannot submit while fetching")
	}
}

func TestStageStep(t *testing.T) {
	tests := []struct {
		stage Stage
		step  int
	}{
		{StageInput, 1},
		{StageFetching, 2},
		{StageReview, 3},
		{StageConfirmed, 4},
		{StageError, 2},
	}
	for _, tt := range tests {
		if got := tt.stage.Step(); got != tt.step {
			t.Errorf("%v.Step() = %d, want %d", tt.stage, got, tt.step)
		}
	}
}
