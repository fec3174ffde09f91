package resume_test

import (
	"testing"

	"github.com/growvy/onboard/internal/resume"
)

func TestUploadTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    resume.State
		to      resume.State
		allowed bool
	}{
		{"idle picks a file", resume.StateIdle, resume.StateFileSelected, true},
		{"selection starts validation", resume.StateFileSelected, resume.StateValidating, true},
		{"validation can reject", resume.StateValidating, resume.StateRejected, true},
		{"validation can pass to upload", resume.StateValidating, resume.StateUploading, true},
		{"rejection allows a new file", resume.StateRejected, resume.StateFileSelected, true},
		{"upload can succeed", resume.StateUploading, resume.StateSucceeded, true},
		{"upload can fail", resume.StateUploading, resume.StateFailed, true},
		{"failure allows resubmission", resume.StateFailed, resume.StateFileSelected, true},
		{"success returns to idle", resume.StateSucceeded, resume.StateIdle, true},

		{"cannot upload without validating", resume.StateFileSelected, resume.StateUploading, false},
		{"cannot skip straight to success", resume.StateIdle, resume.StateSucceeded, false},
		{"rejection does not upload", resume.StateRejected, resume.StateUploading, false},
		{"success does not rewind to uploading", resume.StateSucceeded, resume.StateUploading, false},
		{"failure does not retry in place", resume.StateFailed, resume.StateUploading, false},
		{"validating cannot finish directly", resume.StateValidating, resume.StateSucceeded, false},
		{"no self loop", resume.StateUploading, resume.StateUploading, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resume.IsTransitionAllowed(tt.from, tt.to); got != tt.allowed {
				t.Errorf("IsTransitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestParseState(t *testing.T) {
	valid := []string{"IDLE", "FILE_SELECTED", "VALIDATING", "REJECTED", "UPLOADING", "SUCCEEDED", "FAILED"}
	for _, s := range valid {
		if _, err := resume.ParseState(s); err != nil {
			t.Errorf("ParseState(%q) returned error: %v", s, err)
		}
	}
	for _, s := range []string{"", "idle", "DONE", "Uploading"} {
		if _, err := resume.ParseState(s); err == nil {
			t.Errorf("ParseState(%q) should have failed", s)
		}
	}
}

func TestUnknownStateHasNoTransitions(t *testing.T) {
	if resume.IsTransitionAllowed(resume.State("BOGUS"), resume.StateIdle) {
		t.Error("unknown state must not allow any transition")
	}
}
