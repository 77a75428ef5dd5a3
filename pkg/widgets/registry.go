// Package widgets selects the UI control kind for each schema field. Widgets
// themselves are thin, swappable bindings living with their renderer; this
// package only decides which kind handles a field.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetInput    = "input"
	WidgetTextarea = "textarea"
	WidgetToggle   = "toggle"
	WidgetNumber   = "number"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field schema.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit schema hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit Widget hint on the
// field is honoured before matcher evaluation.
func (r *Registry) Resolve(field schema.Field) (string, bool) {
	if explicit := strings.TrimSpace(field.Widget); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}

	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, func(field schema.Field) bool {
		return field.Type == schema.FieldTypeBoolean
	})

	r.Register(WidgetTextarea, 80, func(field schema.Field) bool {
		return field.Type == schema.FieldTypeText
	})

	r.Register(WidgetNumber, 70, func(field schema.Field) bool {
		return field.Type == schema.FieldTypeInteger
	})

	r.Register(WidgetInput, 10, func(schema.Field) bool {
		return true
	})
}
