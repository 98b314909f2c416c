package search

import (
	"fmt"
	"sort"
)

// Engine is one search backend with its own pagination and result dialect.
type Engine interface {
	Name() string
	// PageURL builds the request URL for a 1-indexed result page.
	PageURL(query string, page, resultsPerPage int) (string, error)
	// ExtractURLs pulls candidate result links out of a raw response body.
	ExtractURLs(body string) []string
}

// Registry keeps a mapping from engine names to their implementations.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry builds a registry holding the given engines.
func NewRegistry(engines ...Engine) *Registry {
	r := &Registry{engines: map[string]Engine{}}
	for _, e := range engines {
		r.Register(e)
	}
	return r
}

// Register adds or replaces an engine implementation.
func (r *Registry) Register(engine Engine) {
	if r.engines == nil {
		r.engines = map[string]Engine{}
	}
	r.engines[engine.Name()] = engine
}

// Resolve returns an engine by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Engine, error) {
	if engine, ok := r.engines[name]; ok {
		return engine, nil
	}
	return nil, fmt.Errorf("search engine %s is not registered", name)
}

// Select resolves names in order, failing on the first unknown one.
func (r *Registry) Select(names []string) ([]Engine, error) {
	selected := make([]Engine, 0, len(names))
	for _, name := range names {
		engine, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, engine)
	}
	return selected, nil
}

// Names lists registered engines alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
