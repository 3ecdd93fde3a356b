// Package storage provides the persistent key-value stores backing the
// entity cache and session state. Stores contain failures instead of
// surfacing them: when the backing medium is unusable the dashboard keeps
// working, it just stops remembering things between runs.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// FileStore is a JSON-file-backed ports.KeyValueStore, the closest server
// analog of browser local storage. All values live in memory; every write
// persists the full map atomically (temp file + rename).
type FileStore struct {
	mu   sync.Mutex
	path string // empty means memory-only, nothing is persisted
	data map[string]json.RawMessage
	log  zerolog.Logger
	hook ports.FailureHook
}

// FileStoreOption customises a FileStore at construction time.
type FileStoreOption func(*FileStore)

// WithFailureHook registers a callback invoked whenever an operation
// degrades. Used by tests to assert on the silent-degradation paths.
func WithFailureHook(hook ports.FailureHook) FileStoreOption {
	return func(s *FileStore) { s.hook = hook }
}

// NewFileStore opens (or creates) the store persisted at path. An empty
// path yields a volatile in-memory store, handy for tests. An unreadable
// or corrupt file degrades to an empty store rather than failing.
func NewFileStore(path string, log zerolog.Logger, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
		log:  log,
	}
	for _, opt := range opts {
		opt(s)
	}

	if path == "" {
		return s
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.fail("open", path, err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.fail("open", path, err)
		s.data = make(map[string]json.RawMessage)
	}
	return s
}

// Get unmarshals the value under key into out. A missing key, an undecodable
// value, or any prior persistence failure all read as "not found".
func (s *FileStore) Get(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.fail("get", key, err)
		return false
	}
	return true
}

// Set stores value under key. Serialization or write failures are reported
// to the failure hook and otherwise ignored.
func (s *FileStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.fail("set", key, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	s.persist(key)
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.persist(key)
}

// Clear drops every key in the store.
func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	s.persist("")
}

// Keys returns all stored keys beginning with prefix, sorted.
func (s *FileStore) Keys(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// persist writes the whole map to disk. Callers must hold s.mu.
func (s *FileStore) persist(key string) {
	if s.path == "" {
		return
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		s.fail("persist", key, err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		s.fail("persist", key, err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.fail("persist", key, err)
	}
}

func (s *FileStore) fail(op, key string, err error) {
	s.log.Warn().Err(err).Str("op", op).Str("key", key).Msg("storage degraded")
	if s.hook != nil {
		s.hook(op, key, err)
	}
}

// DefaultPath returns a per-user location for the store file, falling back
// to the system temp directory when the home directory is unknown.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "lendsqr-admin", "store.json")
}
