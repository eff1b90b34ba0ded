package usecase

import (
	"context"

	"macrolib/internal/domain"
	"macrolib/internal/registry"
)

// RemoveModel deletes stored models of one type and publishes DELETE events.
type RemoveModel struct {
	reg       *registry.Registry
	cfg       Config
	modelName string
	eventName string
}

// NewRemoveModel validates cfg, computes the DELETE event name, and
// subscribes the handlers to it.
func NewRemoveModel(reg *registry.Registry, cfg Config) (*RemoveModel, error) {
	cfg = cfg.withDefaults()
	name, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	eventName := domain.EventName(domain.EventDelete, name)
	cfg.subscribe(eventName)
	return &RemoveModel{reg: reg, cfg: cfg, modelName: name, eventName: eventName}, nil
}

// EventName returns the DELETE event name this workflow publishes under.
func (u *RemoveModel) EventName() string { return u.eventName }

// Run loads the model, creates its DELETE event, removes it from the
// repository, then notifies. The removed model is returned to the caller.
func (u *RemoveModel) Run(ctx context.Context, id string) (domain.Model, error) {
	m, err := u.cfg.Repository.Find(ctx, id)
	if err != nil {
		return domain.Model{}, err
	}
	e, err := u.reg.CreateEvent(ctx, domain.EventDelete, u.modelName, eventInput(m))
	if err != nil {
		return domain.Model{}, err
	}
	if err := u.cfg.Repository.Delete(ctx, id); err != nil {
		return domain.Model{}, err
	}
	if err := u.cfg.Observer.Notify(ctx, u.eventName, e); err != nil {
		return domain.Model{}, err
	}
	return m, nil
}
