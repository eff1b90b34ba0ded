package usecase

import (
	"context"

	"macrolib/internal/domain"
	"macrolib/internal/registry"
)

// EditModel patches stored models of one type and publishes UPDATE events.
type EditModel struct {
	reg       *registry.Registry
	cfg       Config
	modelName string
	eventName string
}

// NewEditModel validates cfg, computes the UPDATE event name, and subscribes
// the handlers to it.
func NewEditModel(reg *registry.Registry, cfg Config) (*EditModel, error) {
	cfg = cfg.withDefaults()
	name, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	eventName := domain.EventName(domain.EventUpdate, name)
	cfg.subscribe(eventName)
	return &EditModel{reg: reg, cfg: cfg, modelName: name, eventName: eventName}, nil
}

// EventName returns the UPDATE event name this workflow publishes under.
func (u *EditModel) EventName() string { return u.eventName }

// Run loads the model, merges the attribute changes into a new sealed value
// with the same identity and an updateTime stamp, creates the UPDATE event,
// persists, then notifies. Identity is preserved: editing never mints a new
// id.
func (u *EditModel) Run(ctx context.Context, id string, changes map[string]any) (domain.Model, error) {
	m, err := u.cfg.Repository.Find(ctx, id)
	if err != nil {
		return domain.Model{}, err
	}
	updated := m.Apply(u.cfg.Clock, changes)
	e, err := u.reg.CreateEvent(ctx, domain.EventUpdate, u.modelName, eventInput(updated))
	if err != nil {
		return domain.Model{}, err
	}
	if err := u.cfg.Repository.Save(ctx, updated.ID(), updated); err != nil {
		return domain.Model{}, err
	}
	if err := u.cfg.Observer.Notify(ctx, u.eventName, e); err != nil {
		return domain.Model{}, err
	}
	return updated, nil
}
