package session

import (
	"log/slog"
	"sync"
)

// Session tracks the bearer credential. It is the single writer of the
// token key in the durable store; every other package only reads the token
// through it. There is no client-side expiry check; expiry is discovered
// reactively when a call fails with 401/403, at which point the client
// invokes Expire.
type Session struct {
	store *Store

	mu        sync.Mutex
	onExpired []func()
}

func New(store *Store) *Session {
	return &Session{store: store}
}

// Token returns the stored credential, "" when logged out.
func (s *Session) Token() string {
	return s.store.Get(KeyToken)
}

// Authenticated reports whether a non-empty credential exists in durable
// storage. It does not validate the credential against the server.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores a fresh credential. The credential survives process
// restarts; there is no clear-on-exit behavior.
func (s *Session) SetToken(token string) error {
	return s.store.Set(KeyToken, token)
}

// Clear removes the credential (logout).
func (s *Session) Clear() error {
	return s.store.Delete(KeyToken)
}

// DropResumeAnalysis removes the cached resume analysis. Login drops it so
// a previous account's analysis never pre-fills the new account's wizard.
func (s *Session) DropResumeAnalysis() error {
	return s.store.Delete(KeyResumeAnalysis)
}

// OnExpired registers a callback run whenever the credential is cleared
// because the server rejected it. Front-ends use this to route back to the
// login screen.
func (s *Session) OnExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = append(s.onExpired, fn)
}

// Expire clears the credential in reaction to a 401/403 and notifies
// listeners. Safe to call when already logged out.
func (s *Session) Expire() {
	if err := s.Clear(); err != nil {
		slog.Warn("failed to clear expired credential", "error", err)
	}
	s.mu.Lock()
	listeners := append([]func(){}, s.onExpired...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
