// Package client is the Go client for the Brewhouse API, used by the
// storefront and admin dashboard applications. It owns the access/refresh
// token lifecycle and the shopping cart, both persisted to a local store
// so they survive restarts.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys shared with the storefront and admin applications.
const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
	keyCart         = "cart"
)

// Store is a file-backed key/value store. All session and cart reads and
// writes go through it, so it is the single lock point for shared state.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// OpenStore loads the store file at path. A missing or corrupt file yields
// an empty store rather than an error.
func OpenStore(path string) *Store {
	s := &Store{
		path: path,
		data: map[string]json.RawMessage{},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = map[string]json.RawMessage{}
	}
	return s
}

// Get decodes the value stored under key into v. Returns false when the key
// is absent or the stored value does not decode.
func (s *Store) Get(key string, v interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Set stores v under key and persists the whole store to disk.
func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = raw
	return s.flush()
}

// Delete removes the given keys and persists.
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.data, key)
	}
	return s.flush()
}

func (s *Store) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}
