package usecase

import (
	"context"

	"macrolib/internal/domain"
	"macrolib/internal/registry"
)

// AddModel creates models of one type and publishes their CREATE events.
type AddModel struct {
	reg       *registry.Registry
	cfg       Config
	modelName string
	eventName string
}

// NewAddModel validates cfg, computes the CREATE event name for the model
// type, and subscribes cfg.Handlers plus the default log handler to it.
func NewAddModel(reg *registry.Registry, cfg Config) (*AddModel, error) {
	cfg = cfg.withDefaults()
	name, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	eventName := domain.EventName(domain.EventCreate, name)
	cfg.subscribe(eventName)
	return &AddModel{reg: reg, cfg: cfg, modelName: name, eventName: eventName}, nil
}

// EventName returns the CREATE event name this workflow publishes under.
func (u *AddModel) EventName() string { return u.eventName }

// Run creates the model, creates its CREATE event from the model's
// attributes, persists the model, then notifies listeners. The first failing
// step aborts the rest and the error is returned as-is.
func (u *AddModel) Run(ctx context.Context, args map[string]any) (domain.Model, error) {
	m, err := u.reg.CreateModel(ctx, u.modelName, args)
	if err != nil {
		return domain.Model{}, err
	}
	e, err := u.reg.CreateEvent(ctx, domain.EventCreate, u.modelName, eventInput(m))
	if err != nil {
		return domain.Model{}, err
	}
	if err := u.cfg.Repository.Save(ctx, m.ID(), m); err != nil {
		return domain.Model{}, err
	}
	if err := u.cfg.Observer.Notify(ctx, u.eventName, e); err != nil {
		return domain.Model{}, err
	}
	return m, nil
}
