package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"macrolib/internal/domain"
	"macrolib/internal/observer"
)

// Config carries the collaborators of one lifecycle workflow for one model
// type. Repository and Observer are required; Handlers are the caller's
// listeners for the workflow's event name, subscribed once at construction.
type Config struct {
	ModelType  string
	Repository Repository
	Observer   Observer
	Handlers   []observer.Handler
	Logger     zerolog.Logger
	// Clock stamps updateTime when a model is edited. Default: UTC RFC3339Nano.
	Clock domain.Clock
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = domain.RFC3339Clock
	}
	return c
}

func (c Config) validate() (string, error) {
	name, err := domain.CanonicalName(c.ModelType)
	if err != nil {
		return "", err
	}
	if c.Repository == nil {
		return "", domain.ErrInvalidArgument("repository is required")
	}
	if c.Observer == nil {
		return "", domain.ErrInvalidArgument("observer is required")
	}
	return name, nil
}

// subscribe registers the caller's handlers plus the default log handler
// under eventName. Runs once, at workflow construction.
func (c Config) subscribe(eventName string) {
	handlers := append(append([]observer.Handler(nil), c.Handlers...), logHandler(c.Logger))
	for _, h := range handlers {
		c.Observer.On(eventName, h)
	}
}

// logHandler is the default listener every workflow appends: it records the
// dispatched event through the structured logger.
func logHandler(logger zerolog.Logger) observer.Handler {
	return func(ctx context.Context, e domain.Event) error {
		logger.Info().
			Str("event", e.EventName()).
			Str("event_id", e.ID()).
			Str("model", e.ModelName()).
			Msg("event dispatched")
		return nil
	}
}

// eventInput shapes a model into the attribute bag handed to event factories:
// the model's attributes plus its identity under reserved keys.
func eventInput(m domain.Model) map[string]any {
	in := m.Attrs()
	in["modelId"] = m.ID()
	in["modelName"] = m.ModelName()
	return in
}
