package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"photogifthub/internal/domain"
)

func TestMemoryLoadMissingKey(t *testing.T) {
	store := NewMemory()
	var cart domain.Cart
	err := store.Load(context.Background(), CartKey("nobody"), &cart)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCartRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	added := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cart := domain.Cart{
		UserID: "u1",
		Items: []domain.LineItem{
			{ID: "a", ProductID: "p1", Name: "Classic Wooden Frame", Category: "frames", Price: 899, Quantity: 1, AddedAt: added},
			{ID: "b", ProductID: "p1", Name: "Classic Wooden Frame", Category: "frames", Price: 1199, Quantity: 2, Customization: map[string]string{"material": "Teak"}, AddedAt: added},
			{ID: "c", ProductID: "p3", Name: "Custom Photo Mug", Category: "mugs", Price: 349, Quantity: 3, AddedAt: added},
			{ID: "d", ProductID: "p4", Name: "LED Photo Frame", Category: "led", Price: 1999, Quantity: 1, Customization: map[string]string{"size": "12x16", "color": "Warm Light"}, AddedAt: added},
			{ID: "e", ProductID: "p2", Name: "Premium Acrylic Frame", Category: "frames", Price: 1299, Quantity: 1, AddedAt: added},
		},
	}

	if err := store.Save(ctx, CartKey("u1"), cart); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var got domain.Cart
	if err := store.Load(ctx, CartKey("u1"), &got); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.UserID != cart.UserID || len(got.Items) != len(cart.Items) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	for i, it := range got.Items {
		want := cart.Items[i]
		if it.ID != want.ID || it.Price != want.Price || it.Quantity != want.Quantity || it.Category != want.Category {
			t.Fatalf("item %d mismatch: got %+v want %+v", i, it, want)
		}
		if len(it.Customization) != len(want.Customization) {
			t.Fatalf("item %d customization mismatch: %+v", i, it.Customization)
		}
		for k, v := range want.Customization {
			if it.Customization[k] != v {
				t.Fatalf("item %d customization %s: got %q want %q", i, k, it.Customization[k], v)
			}
		}
	}
}

func TestMemoryDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Save(ctx, "k", map[string]string{"a": "b"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var dest map[string]string
	if err := store.Load(ctx, "k", &dest); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
