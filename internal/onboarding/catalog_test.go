package onboarding_test

import (
	"testing"

	"github.com/growvy/onboard/internal/onboarding"
	"github.com/growvy/onboard/internal/wizard"
)

func TestLoadCatalogMatchesCanonicalOrder(t *testing.T) {
	catalog, err := onboarding.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	order := catalog.Order()
	if len(order) != len(wizard.DefaultOrder) {
		t.Fatalf("catalog has %d steps, sequencer expects %d", len(order), len(wizard.DefaultOrder))
	}
	for i, want := range wizard.DefaultOrder {
		if order[i] != want {
			t.Errorf("step %d = %q, want %q", i, order[i], want)
		}
	}
}

func TestLoadCatalogStepShapes(t *testing.T) {
	catalog, err := onboarding.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}

	skills, ok := catalog.Step(wizard.StepSkills)
	if !ok {
		t.Fatal("skills step missing")
	}
	if skills.Kind != onboarding.KindMulti || skills.Max != 3 {
		t.Errorf("skills step = kind %q max %d, want multi with max 3", skills.Kind, skills.Max)
	}
	if len(skills.Options) == 0 {
		t.Error("skills step has no options")
	}

	benefits, _ := catalog.Step(wizard.StepBenefits)
	if benefits.Max != 3 {
		t.Errorf("benefits max = %d, want 3", benefits.Max)
	}

	career, _ := catalog.Step(wizard.StepCareerLevel)
	if len(career.Options) != 3 {
		t.Errorf("career level has %d options, want 3", len(career.Options))
	}
}
