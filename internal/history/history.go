package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MaxEntries caps how many scopes the state file retains. When a new
// scope pushes the count past the cap, the oldest entries are dropped.
const MaxEntries = 20

// Scopes maps a scope string to the last time it was used in a commit.
type Scopes map[string]time.Time

// Store persists scope usage across invocations in a JSON state file.
type Store struct {
	path string
	now  func() time.Time
}

// New creates a Store backed by the given file path.
func New(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// Load reads the scope history. A missing or unreadable state file is
// treated as empty history, never as an error: history is a convenience
// and must not block a commit.
func (s *Store) Load() Scopes {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Scopes{}
	}

	var scopes Scopes
	if err := json.Unmarshal(data, &scopes); err != nil {
		return Scopes{}
	}
	return scopes
}

// Record marks scope as used now and persists the pruned history.
// Blank scopes are ignored.
func (s *Store) Record(scope string) error {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return nil
	}

	scopes := s.Load()
	scopes[scope] = s.now()

	for len(scopes) > MaxEntries {
		oldest := ""
		for name, used := range scopes {
			if oldest == "" || used.Before(scopes[oldest]) {
				oldest = name
			}
		}
		delete(scopes, oldest)
	}

	data, err := json.MarshalIndent(scopes, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Recent returns up to n scopes, most recently used first.
func (s *Store) Recent(n int) []string {
	scopes := s.Load()

	names := make([]string, 0, len(scopes))
	for name := range scopes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scopes[names[i]].Equal(scopes[names[j]]) {
			return names[i] < names[j]
		}
		return scopes[names[i]].After(scopes[names[j]])
	})

	if n > 0 && len(names) > n {
		names = names[:n]
	}
	return names
}
