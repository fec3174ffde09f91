// Package onboarding runs the multi-step onboarding flow: it renders each
// step through a Prompter, accumulates answers in the wizard draft, and
// submits the profile on the generation step.
package onboarding

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/growvy/onboard/internal/wizard"
)

//go:embed steps.yaml
var stepsYAML []byte

// StepKind selects how a step is prompted.
type StepKind string

const (
	KindResume   StepKind = "resume"
	KindInput    StepKind = "input"
	KindSelect   StepKind = "select"
	KindMulti    StepKind = "multi"
	KindSalary   StepKind = "salary"
	KindLocation StepKind = "location"
	KindGenerate StepKind = "generate"
)

// StepDef describes one step of the flow as declared in steps.yaml.
type StepDef struct {
	ID      wizard.StepID `yaml:"id"`
	Title   string        `yaml:"title"`
	Kind    StepKind      `yaml:"kind"`
	Options []string      `yaml:"options"`
	Max     int           `yaml:"max"`
}

type catalogFile struct {
	Steps []StepDef `yaml:"steps"`
}

// Catalog is the loaded step catalog, keyed by step ID.
type Catalog struct {
	order []wizard.StepID
	byID  map[wizard.StepID]StepDef
}

// LoadCatalog parses the embedded step catalog. The declared order must
// match the sequencer's canonical order, so the sequencer is built from it.
func LoadCatalog() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(stepsYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing step catalog: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("step catalog is empty")
	}

	c := &Catalog{byID: make(map[wizard.StepID]StepDef, len(file.Steps))}
	for _, def := range file.Steps {
		if def.ID == "" {
			return nil, fmt.Errorf("step catalog entry missing id")
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate step %q in catalog", def.ID)
		}
		c.order = append(c.order, def.ID)
		c.byID[def.ID] = def
	}
	return c, nil
}

// Order returns the declared step order.
func (c *Catalog) Order() []wizard.StepID {
	out := make([]wizard.StepID, len(c.order))
	copy(out, c.order)
	return out
}

// Step returns the definition for id.
func (c *Catalog) Step(id wizard.StepID) (StepDef, bool) {
	def, ok := c.byID[id]
	return def, ok
}
