package usecase

import (
	"context"
	"errors"
	"testing"

	"macrolib/internal/domain"
	"macrolib/internal/observer"
	"macrolib/internal/registry"
	"macrolib/internal/store"
)

func echo() registry.Factory {
	return registry.FactoryFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		out := make(map[string]any, len(args))
		for k, v := range args {
			out[k] = v
		}
		return out, nil
	})
}

// orderRegistry registers an "Order" model factory returning {total: 100} and
// an echoing CREATE event factory.
func orderRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.NewWithConfig(registry.Config{Clock: func() string { return "t0" }})
	err := reg.RegisterModel("Order", registry.FactoryFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"total": 100}, nil
	}))
	if err != nil {
		t.Fatalf("register model: %v", err)
	}
	if err := reg.RegisterEvent(domain.EventCreate, "Order", echo()); err != nil {
		t.Fatalf("register event: %v", err)
	}
	return reg
}

// recordingRepo wraps a repository and counts Save calls.
type recordingRepo struct {
	Repository
	saves   int
	savedID string
}

func (r *recordingRepo) Save(ctx context.Context, id string, m domain.Model) error {
	r.saves++
	r.savedID = id
	return r.Repository.Save(ctx, id, m)
}

func TestAddModelEndToEnd(t *testing.T) {
	reg := orderRegistry(t)
	repo := &recordingRepo{Repository: store.NewMemory()}
	obs := observer.New()

	var notified []domain.Event
	u, err := NewAddModel(reg, Config{
		ModelType:  "Order",
		Repository: repo,
		Observer:   obs,
		Handlers: []observer.Handler{func(ctx context.Context, e domain.Event) error {
			notified = append(notified, e)
			return nil
		}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if u.EventName() != "CREATEORDER" {
		t.Fatalf("eventName=%q", u.EventName())
	}
	// caller handler + default log handler, subscribed at construction
	if n := obs.Subscribers("CREATEORDER"); n != 2 {
		t.Fatalf("subscribers=%d", n)
	}

	m, err := u.Run(context.Background(), map[string]any{"total": 100})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if m.ModelName() != "ORDER" {
		t.Fatalf("modelName=%q", m.ModelName())
	}
	if m.ID() == "" {
		t.Fatalf("empty id")
	}
	if v, ok := m.Attr("createTime"); !ok || v != "t0" {
		t.Fatalf("createTime=%v ok=%v", v, ok)
	}
	if repo.saves != 1 || repo.savedID != m.ID() {
		t.Fatalf("saves=%d savedID=%q", repo.saves, repo.savedID)
	}
	if len(notified) != 1 {
		t.Fatalf("notified=%d", len(notified))
	}
	if notified[0].EventName() != "CREATEORDER" {
		t.Fatalf("event name=%q", notified[0].EventName())
	}
	if v, _ := notified[0].Attr("modelId"); v != m.ID() {
		t.Fatalf("event modelId=%v", v)
	}
	// persisted model is findable
	if _, err := repo.Find(context.Background(), m.ID()); err != nil {
		t.Fatalf("find persisted: %v", err)
	}
}

func TestAddModelRequiresCollaborators(t *testing.T) {
	reg := orderRegistry(t)
	_, err := NewAddModel(reg, Config{ModelType: "Order", Observer: observer.New()})
	if err == nil || !domain.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = NewAddModel(reg, Config{ModelType: " ", Repository: store.NewMemory(), Observer: observer.New()})
	if err == nil || !domain.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestAddModelMissingEventFactorySkipsPersistence(t *testing.T) {
	reg := registry.New()
	if err := reg.RegisterModel("Order", echo()); err != nil {
		t.Fatalf("register: %v", err)
	}
	// no CREATE event factory registered
	repo := &recordingRepo{Repository: store.NewMemory()}
	u, err := NewAddModel(reg, Config{ModelType: "Order", Repository: repo, Observer: observer.New()})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	m, err := u.Run(context.Background(), nil)
	if !domain.IsUnregisteredModelEvent(err) {
		t.Fatalf("expected unregistered model event, got %v", err)
	}
	if !m.IsZero() {
		t.Fatalf("model returned on failure path")
	}
	if repo.saves != 0 {
		t.Fatalf("persisted despite failure: saves=%d", repo.saves)
	}
}

// failingRepo rejects every Save.
type failingRepo struct {
	Repository
	err error
}

func (r failingRepo) Save(ctx context.Context, id string, m domain.Model) error { return r.err }

func TestAddModelSaveFailureSkipsNotify(t *testing.T) {
	reg := orderRegistry(t)
	boom := errors.New("disk full")
	obs := observer.New()
	notified := 0
	u, err := NewAddModel(reg, Config{
		ModelType:  "Order",
		Repository: failingRepo{Repository: store.NewMemory(), err: boom},
		Observer:   obs,
		Handlers: []observer.Handler{func(ctx context.Context, e domain.Event) error {
			notified++
			return nil
		}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	m, err := u.Run(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
	if !m.IsZero() {
		t.Fatalf("model returned on failure path")
	}
	if notified != 0 {
		t.Fatalf("notified despite save failure")
	}
}

func TestAddModelNotifyFailurePropagates(t *testing.T) {
	reg := orderRegistry(t)
	boom := errors.New("listener down")
	obs := observer.New()
	u, err := NewAddModel(reg, Config{
		ModelType:  "Order",
		Repository: store.NewMemory(),
		Observer:   obs,
		Handlers: []observer.Handler{func(ctx context.Context, e domain.Event) error {
			return boom
		}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = u.Run(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected notify error, got %v", err)
	}
}
