package wizard

import (
	"context"
	"fmt"
	"sync"
)

// StepID identifies one screen of the onboarding flow.
type StepID string

const (
	StepResume      StepID = "resume"
	StepRemoteType  StepID = "remote-type"
	StepJobTitle    StepID = "job-title"
	StepSkills      StepID = "skills"
	StepSalary      StepID = "salary"
	StepLocation    StepID = "location"
	StepWorkType    StepID = "work-type"
	StepCareerLevel StepID = "career-level"
	StepBenefits    StepID = "benefits"
	StepGenerate    StepID = "generate"
	StepPricing     StepID = "pricing"
)

// DefaultOrder is the canonical flow: benefits come before the profile
// generation step, which comes before pricing.
var DefaultOrder = []StepID{
	StepResume,
	StepRemoteType,
	StepJobTitle,
	StepSkills,
	StepSalary,
	StepLocation,
	StepWorkType,
	StepCareerLevel,
	StepBenefits,
	StepGenerate,
	StepPricing,
}

// AdvanceHook is an asynchronous gate a step registers on the sequence.
// Advancing past that step first awaits the hook; a hook error blocks
// navigation and is returned to the caller.
type AdvanceHook func(ctx context.Context) error

// Sequence is a flat ordered step list with a cursor. Back navigation is
// unconditional; forward navigation runs the current step's advance hook
// when one is registered. The hook handoff is an explicit interface, not
// an ambient global slot, so it can be exercised in isolation.
type Sequence struct {
	mu    sync.Mutex
	steps []StepID
	index map[StepID]int
	cur   int
	hooks map[StepID]AdvanceHook
}

func NewSequence(steps []StepID) (*Sequence, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("step sequence must not be empty")
	}
	index := make(map[StepID]int, len(steps))
	for i, id := range steps {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("duplicate step %q in sequence", id)
		}
		index[id] = i
	}
	return &Sequence{
		steps: append([]StepID(nil), steps...),
		index: index,
		hooks: make(map[StepID]AdvanceHook),
	}, nil
}

func DefaultSequence() *Sequence {
	seq, err := NewSequence(DefaultOrder)
	if err != nil {
		panic(err) // DefaultOrder is static and valid
	}
	return seq
}

// Current returns the step the cursor is on.
func (s *Sequence) Current() StepID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps[s.cur]
}

// PreviousOf returns the step before the given one, or "" when it is the
// first step or unknown.
func (s *Sequence) PreviousOf(step StepID) StepID {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[step]
	if !ok || i == 0 {
		return ""
	}
	return s.steps[i-1]
}

// NextOf returns the step after the given one, or "" when it is the last
// step or unknown.
func (s *Sequence) NextOf(step StepID) StepID {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[step]
	if !ok || i == len(s.steps)-1 {
		return ""
	}
	return s.steps[i+1]
}

// Previous is PreviousOf the current step.
func (s *Sequence) Previous() StepID {
	return s.PreviousOf(s.Current())
}

// Next is NextOf the current step.
func (s *Sequence) Next() StepID {
	return s.NextOf(s.Current())
}

// RegisterAdvanceHook installs fn as the gate for leaving step forward.
// Registering nil removes a previous hook.
func (s *Sequence) RegisterAdvanceHook(step StepID, fn AdvanceHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn == nil {
		delete(s.hooks, step)
		return
	}
	s.hooks[step] = fn
}

// Back moves the cursor one step back unconditionally, clamping at the
// first step, and returns the step now current.
func (s *Sequence) Back() StepID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur > 0 {
		s.cur--
	}
	return s.steps[s.cur]
}

// Advance moves the cursor one step forward. If the current step has a
// registered hook it runs first; on hook failure the cursor does not move
// and the error is surfaced to the caller. At the last step Advance is a
// no-op returning the current step.
func (s *Sequence) Advance(ctx context.Context) (StepID, error) {
	s.mu.Lock()
	cur := s.steps[s.cur]
	hook := s.hooks[cur]
	s.mu.Unlock()

	if hook != nil {
		if err := hook(ctx); err != nil {
			return cur, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur < len(s.steps)-1 {
		s.cur++
	}
	return s.steps[s.cur], nil
}

// Goto jumps the cursor to an arbitrary step ("skip for now" links).
func (s *Sequence) Goto(step StepID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[step]
	if !ok {
		return fmt.Errorf("unknown step %q", step)
	}
	s.cur = i
	return nil
}

// Steps returns the configured order.
func (s *Sequence) Steps() []StepID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StepID(nil), s.steps...)
}
