// Package session holds the bearer token used against the trading backend.
// The token lives in memory and in a persisted copy on disk; both are kept
// in sync through SetToken and Clear. The session object is injected into
// the api client rather than accessed as ambient global state.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// EnvToken is the environment variable that overrides the persisted token.
const EnvToken = "ARGO_TERMINAL_TOKEN"

// Session is the authenticated state of the client.
type Session struct {
	mu    sync.RWMutex
	path  string
	token string
}

// Load creates a Session backed by the token file at path. A .env file in
// the working directory is loaded first; the EnvToken variable wins over
// the persisted copy. A missing token file means an unauthenticated
// session, not an error.
func Load(path string) (*Session, error) {
	// Missing .env is fine; it is an optional convenience.
	_ = godotenv.Load()

	s := &Session{path: path}

	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		s.token = token

		return s, nil
	}

	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}

		return nil, errors.Wrapf(errors.ErrCodeSessionLoadFailed, err, "failed to read token file %s", path)
	}

	s.token = strings.TrimSpace(string(data))

	return s, nil
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken updates the in-memory token and the persisted copy.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = strings.TrimSpace(token)

	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionPersistFailed, "failed to create token directory", err)
	}

	if err := os.WriteFile(s.path, []byte(s.token+"\n"), 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionPersistFailed, "failed to persist token", err)
	}

	return nil
}

// Clear removes the token from memory and deletes the persisted copy.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	if s.path == "" {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionPersistFailed, "failed to remove token file", err)
	}

	return nil
}

// DefaultTokenPath returns the conventional token location under the user
// home directory, or empty when the home directory cannot be determined.
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".argo-terminal", "token")
}
