package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists the session bearer token. It is set at login/register
// and cleared at logout; an empty token means no session.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// memoryTokenStore keeps the token for the lifetime of the process.
type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns a TokenStore that holds the token in memory.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *memoryTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memoryTokenStore) Clear() error {
	return s.SetToken("")
}

// fileTokenStore persists the token as JSON on disk so a session survives
// process restarts.
type fileTokenStore struct {
	mu   sync.Mutex
	path string
}

type tokenFile struct {
	Token string `json:"token"`
}

// NewFileTokenStore returns a TokenStore backed by the file at path. The
// parent directory is created on first write.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return ""
	}
	return tf.Token
}

func (s *fileTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(tokenFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *fileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
