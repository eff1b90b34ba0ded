// Package registry holds the factory registry: model-type names mapped to
// model factories, and (event type, model-type name) pairs mapped to event
// factories. A Registry is built once by the composition root and passed to
// whoever needs it; there is no package-level instance.
//
// Registration is expected to finish before creation traffic starts. The
// internal lock makes the read path safe for concurrent CreateModel and
// CreateEvent calls.
package registry

import (
	"context"
	"sync"

	"macrolib/internal/domain"
)

// Factory constructs a plain attribute bag from caller input. It may block on
// its own work; ctx is passed through from the creation call. The bag it
// returns must not carry pre-existing id or name fields, the enrichment
// pipeline owns those.
type Factory interface {
	New(ctx context.Context, args map[string]any) (map[string]any, error)
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc func(ctx context.Context, args map[string]any) (map[string]any, error)

func (f FactoryFunc) New(ctx context.Context, args map[string]any) (map[string]any, error) {
	return f(ctx, args)
}

// ModelRegistration pairs a canonical model-type name with its factory.
type ModelRegistration struct {
	Name    string
	Factory Factory
}

// Registry owns the factory mappings. Zero value is not usable; construct
// with New or NewWithConfig.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Factory
	order  []string
	events map[domain.EventType]map[string]Factory

	genID domain.IDGenerator
	clock domain.Clock
}

// New returns a Registry with package defaults (UUID ids, RFC3339 clock).
func New() *Registry {
	return NewWithConfig(Config{})
}

// NewWithConfig returns a Registry with cfg applied over package defaults.
func NewWithConfig(cfg Config) *Registry {
	cfg = cfg.withDefaults()
	return &Registry{
		models: make(map[string]Factory),
		events: make(map[domain.EventType]map[string]Factory),
		genID:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}
}

// RegisterModel associates a model-type name with its factory. The first
// registration for a name wins: registering the same name again is a silent
// no-op, not an error. A nil factory is ignored. An invalid name fails with
// the invalid-argument condition.
func (r *Registry) RegisterModel(modelType string, f Factory) error {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.models[name]; exists {
		return nil
	}
	r.models[name] = f
	r.order = append(r.order, name)
	return nil
}

// RegisterEvent associates an (event type, model-type name) pair with its
// event factory. Unlike model registration, a later registration for the same
// pair overrides the earlier one.
func (r *Registry) RegisterEvent(t domain.EventType, modelType string, f Factory) error {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byName := r.events[t]
	if byName == nil {
		byName = make(map[string]Factory)
		r.events[t] = byName
	}
	byName[name] = f
	return nil
}

// ListModels returns a snapshot of the registered model factories in
// registration order. Mutating the snapshot does not affect the registry.
func (r *Registry) ListModels() []ModelRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ModelRegistration, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, ModelRegistration{Name: name, Factory: r.models[name]})
	}
	return out
}

// CreateModel looks up the factory for the model type, invokes it, runs the
// model enrichment pipeline, and returns the sealed Model. Lookup is
// case-insensitive. Fails with the unregistered-model condition when no
// factory is registered under the name.
func (r *Registry) CreateModel(ctx context.Context, modelType string, args map[string]any) (domain.Model, error) {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return domain.Model{}, err
	}
	r.mu.RLock()
	f, ok := r.models[name]
	r.mu.RUnlock()
	if !ok {
		return domain.Model{}, domain.ErrUnregisteredModel(name)
	}
	attrs, err := f.New(ctx, args)
	if err != nil {
		return domain.Model{}, err
	}
	m := domain.NewModel(r.genID, r.clock, name, attrs)
	modelsCreated.WithLabelValues(name).Inc()
	return m, nil
}

// CreateEvent looks up the factory for the (event type, model type) pair,
// invokes it, runs the event enrichment pipeline, and returns the sealed
// Event. Fails with the unregistered-model-event condition when the exact
// pair has no factory.
func (r *Registry) CreateEvent(ctx context.Context, t domain.EventType, modelType string, args map[string]any) (domain.Event, error) {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return domain.Event{}, err
	}
	r.mu.RLock()
	f, ok := r.events[t][name]
	r.mu.RUnlock()
	if !ok {
		return domain.Event{}, domain.ErrUnregisteredModelEvent(t, name)
	}
	attrs, err := f.New(ctx, args)
	if err != nil {
		return domain.Event{}, err
	}
	e := domain.NewEvent(r.genID, r.clock, t, name, attrs)
	eventsCreated.WithLabelValues(e.EventName()).Inc()
	return e, nil
}
