package rule

import (
	"sort"
	"sync"

	"github.com/arthur-debert/srclint/pkg/errors"
)

// Factory builds a fresh, default-configured instance of one rule. Ruleset
// loaders create per-run instances through factories so two rule sets never
// share mutable configuration.
type Factory func() Rule

var defaultRegistry = struct {
	mu        sync.RWMutex
	factories map[string]Factory
}{factories: make(map[string]Factory)}

// Register adds a rule factory under its unique name. Rules typically
// register themselves from init().
func Register(name string, factory Factory) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "rule name cannot be empty")
	}

	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()

	if _, exists := defaultRegistry.factories[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "rule %q is already registered", name)
	}
	defaultRegistry.factories[name] = factory
	return nil
}

// MustRegister registers a factory and panics on failure. Registration
// errors from init() are programming errors.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// Create builds a fresh instance of the named rule.
func Create(name string) (Rule, error) {
	defaultRegistry.mu.RLock()
	factory, exists := defaultRegistry.factories[name]
	defaultRegistry.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrRuleNotFound, "no rule registered under %q", name)
	}
	return factory(), nil
}

// Names returns all registered rule names in sorted order.
func Names() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	names := make([]string, 0, len(defaultRegistry.factories))
	for name := range defaultRegistry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registered checks whether a rule name is known.
func Registered(name string) bool {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	_, exists := defaultRegistry.factories[name]
	return exists
}
