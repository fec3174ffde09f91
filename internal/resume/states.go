// Package resume validates and uploads resume files and caches the
// server's analysis for later wizard steps to pre-fill from.
//
// Upload control state graph:
//
//	Idle ──► FileSelected ──► Validating ──► Uploading ──► Succeeded ──► Idle
//	              ▲                │              │
//	              ├── Rejected ◄───┘              │
//	              └── Failed ◄────────────────────┘
//
// Rejected and Failed return to FileSelected so the user can pick or
// resubmit a file; Succeeded returns to Idle once navigation has moved on.
package resume

import "fmt"

type State string

const (
	StateIdle         State = "IDLE"
	StateFileSelected State = "FILE_SELECTED"
	StateValidating   State = "VALIDATING"
	StateRejected     State = "REJECTED"
	StateUploading    State = "UPLOADING"
	StateSucceeded    State = "SUCCEEDED"
	StateFailed       State = "FAILED"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[State][]State{
	StateIdle:         {StateFileSelected},
	StateFileSelected: {StateValidating},
	StateValidating:   {StateRejected, StateUploading},
	StateRejected:     {StateFileSelected},
	StateUploading:    {StateSucceeded, StateFailed},
	StateSucceeded:    {StateIdle},
	StateFailed:       {StateFileSelected},
}

// ParseState converts a raw string to a State, returning an error for
// unknown values.
func ParseState(s string) (State, error) {
	st := State(s)
	switch st {
	case StateIdle, StateFileSelected, StateValidating, StateRejected,
		StateUploading, StateSucceeded, StateFailed:
		return st, nil
	}
	return "", fmt.Errorf("unknown upload state %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by
// the state machine.
func IsTransitionAllowed(from, to State) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
