package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"macrolib/internal/domain"
	"macrolib/internal/observer"
	"macrolib/internal/registry"
)

// Service routes API calls to the per-model-type workflows. The composition
// root builds one Service, calls Expose for every model type it registered,
// and hands the Service to the HTTP layer.
type Service struct {
	reg    *registry.Registry
	repo   Repository
	obs    Observer
	logger zerolog.Logger

	add    map[string]*AddModel
	edit   map[string]*EditModel
	remove map[string]*RemoveModel
}

// NewService creates a Service with no exposed model types.
func NewService(reg *registry.Registry, repo Repository, obs Observer, logger zerolog.Logger) *Service {
	return &Service{
		reg:    reg,
		repo:   repo,
		obs:    obs,
		logger: logger,
		add:    make(map[string]*AddModel),
		edit:   make(map[string]*EditModel),
		remove: make(map[string]*RemoveModel),
	}
}

// Expose builds the add/edit/remove workflows for a model type and subscribes
// the given handlers to each workflow's event name. Call after the type's
// factories are registered.
func (s *Service) Expose(modelType string, handlers ...observer.Handler) error {
	cfg := Config{
		ModelType:  modelType,
		Repository: s.repo,
		Observer:   s.obs,
		Handlers:   handlers,
		Logger:     s.logger,
	}
	add, err := NewAddModel(s.reg, cfg)
	if err != nil {
		return err
	}
	edit, err := NewEditModel(s.reg, cfg)
	if err != nil {
		return err
	}
	remove, err := NewRemoveModel(s.reg, cfg)
	if err != nil {
		return err
	}
	s.add[add.modelName] = add
	s.edit[edit.modelName] = edit
	s.remove[remove.modelName] = remove
	return nil
}

// RegisteredModels returns the canonical names of the registered model types
// in registration order.
func (s *Service) RegisteredModels() []string {
	regs := s.reg.ListModels()
	out := make([]string, 0, len(regs))
	for _, r := range regs {
		out = append(out, r.Name)
	}
	return out
}

// Instances lists the stored models of one type.
func (s *Service) Instances(ctx context.Context, modelType string) ([]domain.Model, error) {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, name)
}

// AddModel runs the add workflow for the model type.
func (s *Service) AddModel(ctx context.Context, modelType string, args map[string]any) (domain.Model, error) {
	u, err := s.addWorkflow(modelType)
	if err != nil {
		return domain.Model{}, err
	}
	return u.Run(ctx, args)
}

// EditModel runs the edit workflow for the model type.
func (s *Service) EditModel(ctx context.Context, modelType, id string, changes map[string]any) (domain.Model, error) {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return domain.Model{}, err
	}
	u, ok := s.edit[name]
	if !ok {
		return domain.Model{}, domain.ErrUnregisteredModel(name)
	}
	return u.Run(ctx, id, changes)
}

// RemoveModel runs the remove workflow for the model type.
func (s *Service) RemoveModel(ctx context.Context, modelType, id string) (domain.Model, error) {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return domain.Model{}, err
	}
	u, ok := s.remove[name]
	if !ok {
		return domain.Model{}, domain.ErrUnregisteredModel(name)
	}
	return u.Run(ctx, id)
}

func (s *Service) addWorkflow(modelType string) (*AddModel, error) {
	name, err := domain.CanonicalName(modelType)
	if err != nil {
		return nil, err
	}
	u, ok := s.add[name]
	if !ok {
		return nil, domain.ErrUnregisteredModel(name)
	}
	return u, nil
}
