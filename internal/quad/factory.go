package quad

import (
	"fmt"
	"sort"
	"strings"
)

// Registry keys for the built-in schemes, as accepted by the --algo flag.
const (
	SchemeSimpson = "simpson"
	SchemeKronrod = "kronrod"
	SchemeRomberg = "romberg"
)

// Factory resolves quadrature schemes by registry key.
type Factory interface {
	// Get returns the integrator registered under the given key.
	Get(name string) (Integrator, error)
	// GetAll returns all registered integrators in List() order.
	GetAll() []Integrator
	// List returns the sorted registry keys.
	List() []string
}

// defaultFactory is the map-backed Factory with the built-in schemes.
type defaultFactory struct {
	schemes map[string]Integrator
}

// NewDefaultFactory creates a Factory pre-registered with the built-in
// schemes: simpson, kronrod, and romberg.
func NewDefaultFactory() Factory {
	return &defaultFactory{
		schemes: map[string]Integrator{
			SchemeSimpson: &AdaptiveSimpson{},
			SchemeKronrod: &GaussKronrod{},
			SchemeRomberg: &Romberg{},
		},
	}
}

// Get returns the integrator registered under the given key.
func (f *defaultFactory) Get(name string) (Integrator, error) {
	integ, ok := f.schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown quadrature scheme %q (available: %s)",
			name, strings.Join(f.List(), ", "))
	}
	return integ, nil
}

// GetAll returns all registered integrators in List() order.
func (f *defaultFactory) GetAll() []Integrator {
	all := make([]Integrator, 0, len(f.schemes))
	for _, name := range f.List() {
		all = append(all, f.schemes[name])
	}
	return all
}

// List returns the sorted registry keys.
func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.schemes))
	for name := range f.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
