package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerquest/internal/domain"
)

func TestMemoryFlowStoreRoundTrip(t *testing.T) {
	store := NewMemoryFlowStore(time.Minute)
	ctx := context.Background()

	flow := domain.FlowContext{
		ID:        "f1",
		User:      domain.FlowUserData{Name: "Asha", Age: "16", Aim: "doctor"},
		CreatedAt: time.Now().UTC(),
	}
	if err := store.Save(ctx, flow); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, "f1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.User.Name != "Asha" || got.User.Aim != "doctor" {
		t.Fatalf("unexpected flow data: %+v", got.User)
	}
}

func TestMemoryFlowStoreMissing(t *testing.T) {
	store := NewMemoryFlowStore(time.Minute)
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected ErrFlowNotFound, got %v", err)
	}
}

func TestMemoryFlowStoreRejectsEmptyID(t *testing.T) {
	store := NewMemoryFlowStore(time.Minute)
	if err := store.Save(context.Background(), domain.FlowContext{}); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected ErrFlowNotFound for empty id, got %v", err)
	}
}

func TestMemoryFlowStoreDeleteClearsState(t *testing.T) {
	store := NewMemoryFlowStore(time.Minute)
	ctx := context.Background()
	_ = store.Save(ctx, domain.FlowContext{ID: "f1"})
	if err := store.Delete(ctx, "f1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "f1"); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected cleared flow, got %v", err)
	}
	// borrar de nuevo no falla
	if err := store.Delete(ctx, "f1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestMemoryFlowStoreExpires(t *testing.T) {
	store := NewMemoryFlowStore(time.Nanosecond)
	ctx := context.Background()
	_ = store.Save(ctx, domain.FlowContext{ID: "f1"})
	time.Sleep(5 * time.Millisecond)
	if _, err := store.Get(ctx, "f1"); !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("expected expired flow, got %v", err)
	}
}
