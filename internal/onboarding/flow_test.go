package onboarding_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/growvy/onboard/internal/client"
	"github.com/growvy/onboard/internal/config"
	"github.com/growvy/onboard/internal/onboarding"
	"github.com/growvy/onboard/internal/resume"
	"github.com/growvy/onboard/internal/session"
	"github.com/growvy/onboard/internal/wizard"
)

// scriptPrompter replays queued answers and records notices.
type scriptPrompter struct {
	t        *testing.T
	inputs   []string
	selects  []string
	multis   [][]string
	confirms []bool
	notices  []string
}

func (p *scriptPrompter) Input(title, def string) (string, error) {
	if len(p.inputs) == 0 {
		p.t.Fatalf("unexpected Input(%q)", title)
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	return v, nil
}

func (p *scriptPrompter) Select(title string, options []string) (string, error) {
	if len(p.selects) == 0 {
		p.t.Fatalf("unexpected Select(%q)", title)
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *scriptPrompter) MultiSelect(title string, options []string, max int, current []string) ([]string, error) {
	if len(p.multis) == 0 {
		p.t.Fatalf("unexpected MultiSelect(%q)", title)
	}
	v := p.multis[0]
	p.multis = p.multis[1:]
	return v, nil
}

func (p *scriptPrompter) Confirm(title string, def bool) (bool, error) {
	if len(p.confirms) == 0 {
		p.t.Fatalf("unexpected Confirm(%q)", title)
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *scriptPrompter) Notify(msg string) {
	p.notices = append(p.notices, msg)
}

func newFlowFixture(t *testing.T, handler http.Handler, p *scriptPrompter) (*onboarding.Flow, *session.Store) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIBaseURL:     srv.URL,
		RequestTimeout: 2 * time.Second,
		StatePath:      filepath.Join(t.TempDir(), "state.json"),
		MaxResumeSize:  5 << 20,
	}
	store := session.NewStore(cfg.StatePath)
	sess := session.New(store)
	if err := sess.SetToken("test-token"); err != nil {
		t.Fatal(err)
	}
	draft := wizard.NewStore()
	c := client.New(cfg, sess)
	up := resume.NewUploader(c, store, draft, cfg.MaxResumeSize)

	catalog, err := onboarding.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	flow, err := onboarding.NewFlow(catalog, draft, c, store, up, p)
	if err != nil {
		t.Fatal(err)
	}
	flow.SetSuccessDelay(0)
	return flow, store
}

func TestFlowEndToEnd(t *testing.T) {
	var submitted atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("POST /profiles", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		submitted.Store(string(body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "p-1", "job_title": "Backend Engineer"}`))
	})

	p := &scriptPrompter{
		t: t,
		// resume path (skip), job title, salary amount, location place
		inputs: []string{"", "Backend Engineer", "25", "Remote"},
		// remote type, salary period, work type, career level, plan
		selects: []string{"Any Remote Job", "Hourly", "Full-time", "Mid Level", "14-Day Full Access"},
		// skills, benefits
		multis: [][]string{{"Developer", "Design"}, {"Health Insurance"}},
		// anywhere in country, anywhere in world
		confirms: []bool{false, true},
	}

	flow, store := newFlowFixture(t, mux, p)
	if err := flow.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	raw, _ := submitted.Load().(string)
	if raw == "" {
		t.Fatal("no profile was submitted")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("submitted payload is not JSON: %v", err)
	}
	if payload["job_title"] != "Backend Engineer" {
		t.Errorf("job_title = %v", payload["job_title"])
	}
	salary, _ := payload["salary_expectation"].(map[string]any)
	if salary["amount"] != float64(25) || salary["type"] != "hourly" {
		t.Errorf("salary_expectation = %v", payload["salary_expectation"])
	}
	skills, _ := payload["skills"].([]any)
	if len(skills) != 2 {
		t.Errorf("skills = %v, want 2 entries", payload["skills"])
	}
	if payload["location"] != "Remote" {
		t.Errorf("location = %v, want flattened place string", payload["location"])
	}
	benefits, _ := payload["benefits"].([]any)
	if len(benefits) != 1 || benefits[0] != "Health Insurance" {
		t.Errorf("benefits = %v", payload["benefits"])
	}

	if flow.Profile() == nil || flow.Profile().ID != "p-1" {
		t.Errorf("canonical profile not kept: %+v", flow.Profile())
	}
	if got := store.Get(session.KeySelectedPlan); got != "14-Day Full Access" {
		t.Errorf("selected_plan = %q", got)
	}
}

func TestFlowValidationFailureStaysOnStep(t *testing.T) {
	var calls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /profiles", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [{"loc": ["body", "job_title"], "msg": "field required"}]}`))
	})

	p := &scriptPrompter{
		t:       t,
		inputs:  []string{"", "", "50000", "Lisbon"},
		selects: []string{"Any Remote Job", "Annual", "Full-time", "Entry Level"},
		multis:  [][]string{{"Developer"}, {"Paid Time Off"}},
		// location flags, then "try again?" answered no
		confirms: []bool{false, false, false},
	}

	flow, _ := newFlowFixture(t, mux, p)
	if err := flow.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if n := calls.Load(); n != 1 {
		t.Errorf("submission attempted %d times, want 1", n)
	}
	var sawField bool
	for _, notice := range p.notices {
		if strings.Contains(notice, "job_title") && strings.Contains(notice, "field required") {
			sawField = true
		}
	}
	if !sawField {
		t.Errorf("field error never surfaced, notices: %q", p.notices)
	}
	if flow.Profile() != nil {
		t.Error("no profile should be kept after a rejected submission")
	}
}

func TestSubmitInFlightGuard(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /profiles", func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"id": "p-1"}`))
	})

	p := &scriptPrompter{t: t}
	flow, _ := newFlowFixture(t, mux, p)

	first := make(chan error, 1)
	go func() { first <- flow.Submit(context.Background()) }()

	// Wait until the first submission is holding the guard.
	deadline := time.After(2 * time.Second)
	for flow.Submitting() == false {
		select {
		case <-deadline:
			t.Fatal("first submission never started")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	if err := flow.Submit(context.Background()); err != onboarding.ErrSubmitInFlight {
		t.Errorf("second submit = %v, want ErrSubmitInFlight", err)
	}

	close(release)
	if err := <-first; err != nil {
		t.Errorf("first submit failed: %v", err)
	}
}
