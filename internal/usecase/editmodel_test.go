package usecase

import (
	"context"
	"testing"

	"macrolib/internal/domain"
	"macrolib/internal/observer"
	"macrolib/internal/registry"
	"macrolib/internal/store"
)

// fullRegistry registers "Order" with echoing factories for the model and all
// three event types.
func fullRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.NewWithConfig(registry.Config{Clock: func() string { return "t0" }})
	if err := reg.RegisterModel("Order", echo()); err != nil {
		t.Fatalf("register model: %v", err)
	}
	for _, et := range []domain.EventType{domain.EventCreate, domain.EventUpdate, domain.EventDelete} {
		if err := reg.RegisterEvent(et, "Order", echo()); err != nil {
			t.Fatalf("register event %v: %v", et, err)
		}
	}
	return reg
}

func seedOrder(t *testing.T, reg *registry.Registry, repo Repository) domain.Model {
	t.Helper()
	add, err := NewAddModel(reg, Config{ModelType: "Order", Repository: repo, Observer: observer.New()})
	if err != nil {
		t.Fatalf("new add: %v", err)
	}
	m, err := add.Run(context.Background(), map[string]any{"total": 100})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return m
}

func TestEditModel(t *testing.T) {
	reg := fullRegistry(t)
	repo := store.NewMemory()
	m := seedOrder(t, reg, repo)

	obs := observer.New()
	var events []domain.Event
	u, err := NewEditModel(reg, Config{
		ModelType:  "Order",
		Repository: repo,
		Observer:   obs,
		Clock:      func() string { return "t1" },
		Handlers: []observer.Handler{func(ctx context.Context, e domain.Event) error {
			events = append(events, e)
			return nil
		}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if u.EventName() != "UPDATEORDER" {
		t.Fatalf("eventName=%q", u.EventName())
	}

	updated, err := u.Run(context.Background(), m.ID(), map[string]any{"total": 50})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if updated.ID() != m.ID() {
		t.Fatalf("edit minted new id: %q vs %q", updated.ID(), m.ID())
	}
	if v, _ := updated.Attr("total"); v != 50 {
		t.Fatalf("total=%v", v)
	}
	if v, ok := updated.Attr("updateTime"); !ok || v != "t1" {
		t.Fatalf("updateTime=%v ok=%v", v, ok)
	}
	if len(events) != 1 || events[0].EventName() != "UPDATEORDER" {
		t.Fatalf("events=%v", events)
	}
	// the stored copy is the updated one
	stored, err := repo.Find(context.Background(), m.ID())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if v, _ := stored.Attr("total"); v != 50 {
		t.Fatalf("stored total=%v", v)
	}
}

func TestEditModelMissingID(t *testing.T) {
	reg := fullRegistry(t)
	u, err := NewEditModel(reg, Config{ModelType: "Order", Repository: store.NewMemory(), Observer: observer.New()})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = u.Run(context.Background(), "ghost", nil)
	if !domain.IsModelNotFound(err) {
		t.Fatalf("expected model not found, got %v", err)
	}
}
