package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Credentials ride in the body of every call the gateway makes.
type Credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// Session is the explicit authentication state of the client: credentials
// plus the identity the backend confirmed at login. It is passed to the
// gateway rather than held in a global, and persists to a small JSON file
// so a restarted client stays signed in.
type Session struct {
	Credentials
	User Participant `json:"user"`

	path string
}

// LoadSession reads the session file at path, returning an empty session
// when the file does not exist yet. An empty path keeps the session
// in-memory only.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Authenticated() bool {
	return s.UserID != "" && s.Password != ""
}

func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear wipes the credentials and identity and removes the session file;
// called on logout.
func (s *Session) Clear() error {
	s.Credentials = Credentials{}
	s.User = Participant{}

	if s.path == "" {
		return nil
	}
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
