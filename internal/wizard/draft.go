// Package wizard holds the in-progress profile draft and the ordered step
// sequence of the onboarding flow. It performs no I/O; front-ends mutate
// the draft through Merge and the submission pipeline reads it once at the
// end of the flow.
package wizard

import (
	"errors"
	"sync"

	"github.com/growvy/onboard/pkg/types"
)

const (
	MaxSkills   = 3
	MaxBenefits = 3
)

var (
	ErrTooManySkills   = errors.New("at most 3 skills can be selected")
	ErrTooManyBenefits = errors.New("at most 3 benefits can be selected")
)

// Patch is a partial draft update. Nil fields are left untouched; set
// fields overwrite the previous value wholesale. SalaryExpectation and
// Location are replaced as whole objects, never deep-merged; callers
// always pass the complete nested value.
type Patch struct {
	JobTitle          *string
	SalaryExpectation *types.SalaryExpectation
	Skills            *[]string
	RemoteType        *string
	Location          *types.Location
	Benefits          *[]string
	CareerLevel       *string
	WorkType          *string
}

// Store is the single process-wide draft container, shared by reference
// across every step screen for the lifetime of the wizard. It has no
// persistence of its own.
type Store struct {
	mu    sync.Mutex
	draft types.Draft
}

func NewStore() *Store {
	return &Store{}
}

// Read returns a copy of the current draft. Slices are copied so callers
// cannot mutate the store behind its back.
func (s *Store) Read() types.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft
	d.Skills = append([]string(nil), s.draft.Skills...)
	d.Benefits = append([]string(nil), s.draft.Benefits...)
	if s.draft.SalaryExpectation != nil {
		se := *s.draft.SalaryExpectation
		d.SalaryExpectation = &se
	}
	return d
}

// Merge applies a shallow field-level overwrite: later writes to the same
// field win. The only validation at merge time is the skill/benefit
// cardinality cap; an over-cap patch is rejected whole and the draft is
// left unchanged.
func (s *Store) Merge(p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Skills != nil && len(*p.Skills) > MaxSkills {
		return ErrTooManySkills
	}
	if p.Benefits != nil && len(*p.Benefits) > MaxBenefits {
		return ErrTooManyBenefits
	}

	if p.JobTitle != nil {
		s.draft.JobTitle = *p.JobTitle
	}
	if p.SalaryExpectation != nil {
		se := *p.SalaryExpectation
		s.draft.SalaryExpectation = &se
	}
	if p.Skills != nil {
		s.draft.Skills = append([]string(nil), *p.Skills...)
	}
	if p.RemoteType != nil {
		s.draft.RemoteType = *p.RemoteType
	}
	if p.Location != nil {
		s.draft.Location = *p.Location
	}
	if p.Benefits != nil {
		s.draft.Benefits = append([]string(nil), *p.Benefits...)
	}
	if p.CareerLevel != nil {
		s.draft.CareerLevel = *p.CareerLevel
	}
	if p.WorkType != nil {
		s.draft.WorkType = *p.WorkType
	}
	return nil
}

// Reset discards the draft, returning the store to its mount state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = types.Draft{}
}

// String pointer helper for building patches.
func Str(s string) *string { return &s }

// Strs slice pointer helper for building patches.
func Strs(ss ...string) *[]string { return &ss }
