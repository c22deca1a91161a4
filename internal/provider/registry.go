package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is a thread-safe registry of news sources keyed by name.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRegistry creates a new empty source registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds a source to the registry. Duplicate registrations overwrite
// the previous entry.
func (r *Registry) Register(s Source) error {
	name := s.Info().Name
	if name == "" {
		return fmt.Errorf("source name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[name] = s
	return nil
}

// Get returns a source by name, or an error if not found. Names are matched
// case-insensitively, like Ordered.
func (r *Registry) Get(name string) (Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sources[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &ErrSourceNotFound{Name: name}
	}
	return s, nil
}

// List returns info about all registered sources, sorted by name.
func (r *Registry) List() []SourceInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]SourceInfo, 0, len(r.sources))
	for _, s := range r.sources {
		infos = append(infos, s.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Ordered resolves names into sources, preserving the given priority order.
// Names are matched case-insensitively; duplicates are dropped.
func (r *Registry) Ordered(names []string) ([]Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(names))
	out := make([]Source, 0, len(names))
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" || seen[key] {
			continue
		}
		s, ok := r.sources[key]
		if !ok {
			return nil, &ErrSourceNotFound{Name: n}
		}
		seen[key] = true
		out = append(out, s)
	}
	return out, nil
}
