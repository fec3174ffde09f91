package term_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/growvy/onboard/internal/onboarding"
	"github.com/growvy/onboard/internal/term"
)

func newPrompter(input string) (*term.Prompter, *strings.Builder) {
	var out strings.Builder
	return term.NewPrompter(strings.NewReader(input), &out), &out
}

func TestInputDefault(t *testing.T) {
	p, out := newPrompter("\n")
	got, err := p.Input("Job title", "Backend Engineer")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("empty line should return empty string, got %q", got)
	}
	if !strings.Contains(out.String(), "[Backend Engineer]") {
		t.Errorf("prompt should show the default, got %q", out.String())
	}
}

func TestSelectByNumber(t *testing.T) {
	p, _ := newPrompter("9\n2\n")
	got, err := p.Select("Work type", []string{"Full-time", "Part-time", "Freelance"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Part-time" {
		t.Errorf("got %q, want Part-time after rejecting out-of-range pick", got)
	}
}

func TestMultiSelectRespectsCap(t *testing.T) {
	p, out := newPrompter("1,2,3,4\n1, 3\n")
	got, err := p.MultiSelect("Skills", []string{"A", "B", "C", "D"}, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("got %v, want [A C]", got)
	}
	if !strings.Contains(out.String(), "up to 3") {
		t.Errorf("cap rejection should name the limit, got %q", out.String())
	}
}

func TestMultiSelectEmptyKeepsCurrent(t *testing.T) {
	p, _ := newPrompter("\n")
	got, err := p.MultiSelect("Benefits", []string{"A", "B"}, 3, []string{"B"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "B" {
		t.Errorf("got %v, want the current selection kept", got)
	}
}

func TestBackAndQuitWords(t *testing.T) {
	p, _ := newPrompter("back\n")
	if _, err := p.Input("Anything", ""); !errors.Is(err, onboarding.ErrBack) {
		t.Errorf("got %v, want ErrBack", err)
	}

	p, _ = newPrompter("quit\n")
	if _, err := p.Input("Anything", ""); !errors.Is(err, onboarding.ErrQuit) {
		t.Errorf("got %v, want ErrQuit", err)
	}

	p, _ = newPrompter("")
	if _, err := p.Input("Anything", ""); !errors.Is(err, onboarding.ErrQuit) {
		t.Errorf("EOF should quit, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
	}
	for _, tt := range tests {
		p, _ := newPrompter(tt.input)
		got, err := p.Confirm("Sure?", tt.def)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q, def=%v) = %v, want %v", strings.TrimSpace(tt.input), tt.def, got, tt.want)
		}
	}
}
