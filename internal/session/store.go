// Package session owns the durable client-side state: the bearer
// credential, the cached resume analysis, and the selected pricing plan.
// The on-disk format is a single string-keyed JSON document, the desktop
// analog of the browser's localStorage.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Well-known store keys.
const (
	KeyToken          = "token"
	KeyResumeAnalysis = "resume_analysis"
	KeySelectedPlan   = "selected_plan"
)

// Store is a durable string-keyed JSON file with last-writer-wins
// semantics. Reads of a missing file behave as an empty document; every
// write persists immediately.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) document() string {
	data, err := os.ReadFile(s.path)
	if err != nil || !gjson.ValidBytes(data) {
		return "{}"
	}
	return string(data)
}

func (s *Store) persist(doc string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(doc), 0o600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// Get returns the string value stored under key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gjson.Get(s.document(), key).String()
}

// GetRaw returns the raw JSON stored under key ("" when absent). Used for
// structured values such as the cached resume analysis.
func (s *Store) GetRaw(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gjson.Get(s.document(), key).Raw
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := sjson.Set(s.document(), key, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return s.persist(doc)
}

// SetRaw stores an already-serialized JSON value under key, overwriting any
// previous value wholesale.
func (s *Store) SetRaw(key, rawJSON string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := sjson.SetRaw(s.document(), key, rawJSON)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return s.persist(doc)
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := sjson.Delete(s.document(), key)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return s.persist(doc)
}
