package construct

import (
	"cmp"
	"slices"
	"sync"

	"github.com/yaklabco/mdscan/pkg/token"
	"github.com/yaklabco/mdscan/pkg/tokenizer"
)

// Construct describes one registered recognizer: where it may start and
// how to build its entry state.
type Construct struct {
	// Name identifies the construct, e.g. "definition-title".
	Name string

	// Openers are the characters the construct can start at.
	Openers []rune

	// Start builds a fresh entry state for one attempt.
	Start func() tokenizer.StateFn
}

// Registry is a dispatch table from opening characters to the constructs
// that may start there. Callers look up candidates for the unit at hand
// and attempt them in registration order.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]Construct
	byOpener map[rune][]Construct
	names    []string
}

// NewRegistry creates an empty construct registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]Construct),
		byOpener: make(map[rune][]Construct),
	}
}

// Register adds a construct to the registry.
func (r *Registry) Register(c Construct) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[c.Name] = c
	r.names = append(r.names, c.Name)
	for _, opener := range c.Openers {
		r.byOpener[opener] = append(r.byOpener[opener], c)
	}
}

// Get retrieves a construct by name.
func (r *Registry) Get(name string) (Construct, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// Lookup returns the constructs that may start at the given unit, in
// registration order. The end-of-input sentinel opens nothing.
func (r *Registry) Lookup(u token.Unit) []Construct {
	if u.Kind != token.UnitChar {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byOpener[u.Char])
}

// Names returns the registered construct names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Clone(r.names)
	slices.SortFunc(names, cmp.Compare)
	return names
}

//nolint:gochecknoglobals // Package-level registry mirrors the construct set
var defaultRegistry = NewRegistry()

// Default returns the registry holding the built-in constructs.
func Default() *Registry {
	return defaultRegistry
}

// titleOpeners are the three characters that can start any title.
//
//nolint:gochecknoglobals
var titleOpeners = []rune{'"', '\'', '('}

//nolint:gochecknoinits // Built-in constructs register themselves
func init() {
	defaultRegistry.Register(Construct{
		Name:    "definition-title",
		Openers: titleOpeners,
		Start: func() tokenizer.StateFn {
			return Title(TitleOptions{
				Title:  token.TokDefinitionTitle,
				Marker: token.TokDefinitionTitleMarker,
				String: token.TokDefinitionTitleString,
			})
		},
	})
	defaultRegistry.Register(Construct{
		Name:    "resource-title",
		Openers: titleOpeners,
		Start: func() tokenizer.StateFn {
			return Title(TitleOptions{
				Title:  token.TokResourceTitle,
				Marker: token.TokResourceTitleMarker,
				String: token.TokResourceTitleString,
			})
		},
	})
}
