package main

import (
	"context"

	"macrolib/internal/domain"
	"macrolib/internal/registry"
)

// echoFactory copies the caller's input into a fresh bag. It is the default
// factory for model types exposed via config; applications embedding the
// registry register their own factories instead.
func echoFactory() registry.Factory {
	return registry.FactoryFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		out := make(map[string]any, len(args))
		for k, v := range args {
			out[k] = v
		}
		return out, nil
	})
}

// registerModelType wires the echo factory for the model type and for its
// CREATE/UPDATE/DELETE events.
func registerModelType(reg *registry.Registry, modelType string) error {
	if err := reg.RegisterModel(modelType, echoFactory()); err != nil {
		return err
	}
	for _, t := range []domain.EventType{domain.EventCreate, domain.EventUpdate, domain.EventDelete} {
		if err := reg.RegisterEvent(t, modelType, echoFactory()); err != nil {
			return err
		}
	}
	return nil
}
