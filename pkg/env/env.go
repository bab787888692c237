// Package env provides read-only access to the process environment.
//
// CI classifiers work against an immutable Snapshot taken once at startup so
// that environment mutation mid-run cannot change answers between accesses.
package env

import (
	"os"
	"strings"
)

// Snapshot is an immutable copy of the process environment.
type Snapshot struct {
	vars map[string]string
}

// Capture takes a snapshot of the current process environment.
func Capture() *Snapshot {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return &Snapshot{vars: vars}
}

// FromMap builds a snapshot from an explicit variable map. Intended for
// tests and for callers that assemble a synthetic environment.
func FromMap(vars map[string]string) *Snapshot {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return &Snapshot{vars: copied}
}

// Get returns the value of the named variable, or "" if unset.
func (s *Snapshot) Get(name string) string {
	return s.vars[name]
}

// Lookup returns the value of the named variable and whether it was set.
func (s *Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// GetBool interprets the named variable as a CI-style boolean.
// Providers report booleans as "true" or "1".
func (s *Snapshot) GetBool(name string) bool {
	switch strings.ToLower(s.vars[name]) {
	case "true", "1":
		return true
	default:
		return false
	}
}

// HasPrefix reports whether any variable name starts with the given prefix.
func (s *Snapshot) HasPrefix(prefix string) bool {
	for k := range s.vars {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}
