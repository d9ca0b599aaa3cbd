package factory

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

// Constructor returns a new backend.
type Constructor func() Backend

// Registry maps backend names and aliases to constructors.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Constructor
	primary []string
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Constructor)}
}

// Register adds the backend built by c under the name it reports and the
// given aliases. Names are case-insensitive.
func (r *Registry) Register(c Constructor, aliases ...string) error {
	name := c().Name()
	keys := append([]string{name}, aliases...)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range keys {
		if _, dup := r.byName[strings.ToLower(k)]; dup {
			return ErrDuplicateBackend.With(slog.String("backend", k))
		}
	}

	for _, k := range keys {
		r.byName[strings.ToLower(k)] = c
	}

	r.primary = append(r.primary, name)
	slices.Sort(r.primary)

	return nil
}

// Names returns the primary names of the registered backends, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.primary)
}

// Lookup returns a new instance of the backend called name. When there is
// none it returns [ErrUnknownBackend] with close names as suggestions.
func (r *Registry) Lookup(name string) (Backend, error) {
	r.mu.RLock()
	c, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrUnknownBackend.With(
			slog.String("backend", name),
			slog.Any("suggestions", r.Suggest(name)),
		)
	}

	return c(), nil
}

// Suggest returns the registered names and aliases that fuzzily match
// name, best match first.
func (r *Registry) Suggest(name string) []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.byName))
	for k := range r.byName {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.Sort(keys)

	pattern := strings.ToLower(strings.TrimSpace(name))
	out := []string{}

	for _, m := range fuzzy.Find(pattern, keys) {
		out = append(out, m.Str)
	}

	// Also suggest names hidden in a longer input, such as "c-sharp".
	for _, k := range keys {
		if len(fuzzy.Find(k, []string{pattern})) > 0 && !slices.Contains(out, k) {
			out = append(out, k)
		}
	}

	return out
}
