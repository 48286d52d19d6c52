package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"eatgo/internal/domain"
)

const itemsFile = "items.json"

// item is one stored value, either in the clear or sealed.
type item struct {
	Value  string          `json:"value,omitempty"`
	Sealed json.RawMessage `json:"sealed,omitempty"`
}

// ItemFileStore persists string items to disk.
type ItemFileStore struct {
	dir        string
	passphrase string
	params     scryptParams
	mu         sync.Mutex
}

// Option configures an ItemFileStore.
type Option func(*ItemFileStore)

// WithPassphrase seals values with a key derived from passphrase.
func WithPassphrase(passphrase string) Option {
	return func(s *ItemFileStore) { s.passphrase = passphrase }
}

// withScryptParams lowers the KDF cost; used by tests.
func withScryptParams(n, r, p int) Option {
	return func(s *ItemFileStore) { s.params = scryptParams{N: n, R: r, P: p} }
}

// NewItemFileStore returns an ItemFileStore rooted at dir.
func NewItemFileStore(dir string, opts ...Option) *ItemFileStore {
	s := &ItemFileStore{dir: dir, params: defaultScryptParams()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveItem stores value under key, replacing any previous value.
func (s *ItemFileStore) SaveItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, itemsFile)
	items := map[string]item{}
	if err := readJSON(path, &items); err != nil {
		return err
	}

	it := item{Value: value}
	if s.passphrase != "" {
		b, err := seal(s.passphrase, key, []byte(value), s.params)
		if err != nil {
			return err
		}
		it = item{Sealed: b}
	}
	items[key] = it
	return writeJSON(path, items, 0o600)
}

// LoadItem returns the value under key and whether it was present.
func (s *ItemFileStore) LoadItem(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, itemsFile)
	items := map[string]item{}
	if err := readJSON(path, &items); err != nil {
		return "", false, err
	}
	it, ok := items[key]
	if !ok {
		return "", false, nil
	}
	if len(it.Sealed) == 0 {
		return it.Value, true, nil
	}
	if s.passphrase == "" {
		return "", false, ErrSealed
	}
	pt, err := open(s.passphrase, key, it.Sealed)
	if err != nil {
		return "", false, err
	}
	return string(pt), true, nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (s *ItemFileStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, itemsFile)
	items := map[string]item{}
	if err := readJSON(path, &items); err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return writeJSON(path, items, 0o600)
}

// Compile-time assertion that ItemFileStore implements domain.TokenStore.
var _ domain.TokenStore = (*ItemFileStore)(nil)
