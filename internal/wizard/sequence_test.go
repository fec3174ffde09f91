package wizard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/growvy/onboard/internal/wizard"
)

// ── Sequence construction ──────────────────────────────────────────────────

func TestNewSequence_Empty(t *testing.T) {
	if _, err := wizard.NewSequence(nil); err == nil {
		t.Error("NewSequence(nil) expected error, got nil")
	}
}

func TestNewSequence_Duplicate(t *testing.T) {
	_, err := wizard.NewSequence([]wizard.StepID{wizard.StepResume, wizard.StepResume})
	if err == nil {
		t.Error("NewSequence with duplicate step expected error, got nil")
	}
}

// ── End behavior ───────────────────────────────────────────────────────────

func TestPreviousOf_FirstStepIsEmpty(t *testing.T) {
	seq := wizard.DefaultSequence()
	first := seq.Steps()[0]
	if got := seq.PreviousOf(first); got != "" {
		t.Errorf("PreviousOf(first) = %q, want \"\"", got)
	}
}

func TestNextOf_LastStepIsEmpty(t *testing.T) {
	seq := wizard.DefaultSequence()
	steps := seq.Steps()
	last := steps[len(steps)-1]
	if got := seq.NextOf(last); got != "" {
		t.Errorf("NextOf(last) = %q, want \"\"", got)
	}
}

func TestNextOf_UnknownStepIsEmpty(t *testing.T) {
	seq := wizard.DefaultSequence()
	if got := seq.NextOf("no-such-step"); got != "" {
		t.Errorf("NextOf(unknown) = %q, want \"\"", got)
	}
}

// For every interior step of a flat sequence, previous(next(step)) == step.
func TestSequence_PreviousOfNextRoundTrips(t *testing.T) {
	seq := wizard.DefaultSequence()
	steps := seq.Steps()
	for _, step := range steps[:len(steps)-1] {
		next := seq.NextOf(step)
		if next == "" {
			t.Fatalf("NextOf(%q) = \"\" for non-last step", step)
		}
		if back := seq.PreviousOf(next); back != step {
			t.Errorf("PreviousOf(NextOf(%q)) = %q, want %q", step, back, step)
		}
	}
}

// ── Cursor movement ────────────────────────────────────────────────────────

func TestBack_UnconditionalAndClamped(t *testing.T) {
	seq := wizard.DefaultSequence()
	first := seq.Current()

	if got := seq.Back(); got != first {
		t.Errorf("Back at first step moved to %q, want clamp at %q", got, first)
	}

	if _, err := seq.Advance(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got := seq.Back(); got != first {
		t.Errorf("Back = %q, want %q", got, first)
	}
}

func TestAdvance_WalksWholeSequenceAndClamps(t *testing.T) {
	seq := wizard.DefaultSequence()
	steps := seq.Steps()
	ctx := context.Background()

	for i := 1; i < len(steps); i++ {
		got, err := seq.Advance(ctx)
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if got != steps[i] {
			t.Fatalf("advance %d = %q, want %q", i, got, steps[i])
		}
	}

	// Advancing past the end stays on the last step.
	got, err := seq.Advance(ctx)
	if err != nil {
		t.Fatalf("advance past end: %v", err)
	}
	if got != steps[len(steps)-1] {
		t.Errorf("advance past end = %q, want clamp at last", got)
	}
}

func TestGoto_UnknownStep(t *testing.T) {
	seq := wizard.DefaultSequence()
	if err := seq.Goto("nope"); err == nil {
		t.Error("Goto(unknown) expected error, got nil")
	}
	if err := seq.Goto(wizard.StepLocation); err != nil {
		t.Fatalf("Goto: %v", err)
	}
	if seq.Current() != wizard.StepLocation {
		t.Errorf("Current = %q after Goto(location)", seq.Current())
	}
}

// ── Advance hooks ──────────────────────────────────────────────────────────

func TestAdvance_HookFailureBlocksNavigation(t *testing.T) {
	seq := wizard.DefaultSequence()
	if err := seq.Goto(wizard.StepGenerate); err != nil {
		t.Fatalf("goto: %v", err)
	}

	hookErr := errors.New("backend rejected the profile")
	seq.RegisterAdvanceHook(wizard.StepGenerate, func(ctx context.Context) error {
		return hookErr
	})

	got, err := seq.Advance(context.Background())
	if !errors.Is(err, hookErr) {
		t.Fatalf("Advance err = %v, want the hook error", err)
	}
	if got != wizard.StepGenerate {
		t.Errorf("cursor moved to %q despite hook failure", got)
	}
	if seq.Current() != wizard.StepGenerate {
		t.Errorf("Current = %q, want unchanged %q", seq.Current(), wizard.StepGenerate)
	}
}

func TestAdvance_HookSuccessNavigates(t *testing.T) {
	seq := wizard.DefaultSequence()
	if err := seq.Goto(wizard.StepGenerate); err != nil {
		t.Fatalf("goto: %v", err)
	}

	calls := 0
	seq.RegisterAdvanceHook(wizard.StepGenerate, func(ctx context.Context) error {
		calls++
		return nil
	})

	got, err := seq.Advance(context.Background())
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got != wizard.StepPricing {
		t.Errorf("Advance = %q, want %q", got, wizard.StepPricing)
	}
	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
}

func TestAdvance_HookOnlyGatesItsOwnStep(t *testing.T) {
	seq := wizard.DefaultSequence()
	seq.RegisterAdvanceHook(wizard.StepGenerate, func(ctx context.Context) error {
		return errors.New("must not run")
	})

	// Current step is resume; its advance must not invoke the generate hook.
	if _, err := seq.Advance(context.Background()); err != nil {
		t.Fatalf("advance off ordinary step: %v", err)
	}
}

func TestRegisterAdvanceHook_NilRemoves(t *testing.T) {
	seq := wizard.DefaultSequence()
	if err := seq.Goto(wizard.StepGenerate); err != nil {
		t.Fatalf("goto: %v", err)
	}
	seq.RegisterAdvanceHook(wizard.StepGenerate, func(ctx context.Context) error {
		return errors.New("blocked")
	})
	seq.RegisterAdvanceHook(wizard.StepGenerate, nil)

	if _, err := seq.Advance(context.Background()); err != nil {
		t.Errorf("advance after hook removal: %v", err)
	}
}
