package animal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownType is returned when a factory key has no registered species.
var ErrUnknownType = errors.New("unknown animal type")

// Factory creates animals from a species registry. The event engine's birth
// event depends on it to synthesize offspring of the parent's species.
type Factory struct {
	registry map[string]*Species
}

// NewFactory returns a factory preloaded with the built-in species catalog.
func NewFactory() *Factory {
	reg := make(map[string]*Species, len(catalog))
	for key, spec := range catalog {
		reg[key] = spec
	}
	return &Factory{registry: reg}
}

// Register adds or replaces a species under the given type key.
func (f *Factory) Register(typeKey string, spec *Species) {
	f.registry[strings.ToLower(typeKey)] = spec
}

// Create builds an animal of the registered type. The key is matched
// case-insensitively.
func (f *Factory) Create(typeKey, name string, age int) (*Animal, error) {
	spec, ok := f.registry[strings.ToLower(typeKey)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownType, typeKey, strings.Join(f.AvailableSpecies(), ", "))
	}
	return New(spec, name, age), nil
}

// AvailableSpecies lists the registered type keys in sorted order.
func (f *Factory) AvailableSpecies() []string {
	keys := make([]string, 0, len(f.registry))
	for key := range f.registry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
