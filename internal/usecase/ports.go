package usecase

import (
	"context"

	"macrolib/internal/domain"
	"macrolib/internal/observer"
)

// Repository persists sealed models by id. Save must be idempotent-safe for
// identical (id, model) pairs; Find and Delete fail with the model-not-found
// condition for unknown ids.
type Repository interface {
	Save(ctx context.Context, id string, m domain.Model) error
	Find(ctx context.Context, id string) (domain.Model, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, modelName string) ([]domain.Model, error)
}

// Observer accepts handler subscriptions at wiring time and fans events out
// to them on Notify.
type Observer interface {
	On(eventName string, h observer.Handler)
	Notify(ctx context.Context, eventName string, e domain.Event) error
}
