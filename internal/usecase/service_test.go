package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"macrolib/internal/domain"
	"macrolib/internal/observer"
	"macrolib/internal/store"
)

func TestServiceRouting(t *testing.T) {
	reg := fullRegistry(t)
	svc := NewService(reg, store.NewMemory(), observer.New(), zerolog.Nop())
	if err := svc.Expose("Order"); err != nil {
		t.Fatalf("expose: %v", err)
	}

	names := svc.RegisteredModels()
	if len(names) != 1 || names[0] != "ORDER" {
		t.Fatalf("registered=%v", names)
	}

	ctx := context.Background()
	m, err := svc.AddModel(ctx, "order", map[string]any{"total": 100})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	edited, err := svc.EditModel(ctx, "ORDER", m.ID(), map[string]any{"total": 1})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if v, _ := edited.Attr("total"); v != 1 {
		t.Fatalf("total=%v", v)
	}
	list, err := svc.Instances(ctx, "order")
	if err != nil {
		t.Fatalf("instances: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("instances=%d", len(list))
	}
	if _, err := svc.RemoveModel(ctx, "Order", m.ID()); err != nil {
		t.Fatalf("remove: %v", err)
	}
}

func TestServiceUnknownType(t *testing.T) {
	reg := fullRegistry(t)
	svc := NewService(reg, store.NewMemory(), observer.New(), zerolog.Nop())
	ctx := context.Background()
	if _, err := svc.AddModel(ctx, "ghost", nil); !domain.IsUnregisteredModel(err) {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.EditModel(ctx, "ghost", "id", nil); !domain.IsUnregisteredModel(err) {
		t.Fatalf("edit: %v", err)
	}
	if _, err := svc.RemoveModel(ctx, "ghost", "id"); !domain.IsUnregisteredModel(err) {
		t.Fatalf("remove: %v", err)
	}
	if _, err := svc.AddModel(ctx, "  ", nil); !domain.IsInvalidArgument(err) {
		t.Fatalf("blank: %v", err)
	}
}
