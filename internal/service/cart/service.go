// Package cart owns the per-user cart: all mutation funnels through this
// service, and every mutation persists the full cart before returning so a
// reload never loses state.
package cart

import (
	"context"
	"errors"
	"fmt"

	"photogifthub/internal/domain"
	"photogifthub/internal/kv"
)

type Service struct {
	store kv.Store
}

func New(store kv.Store) *Service {
	return &Service{store: store}
}

// Get loads the user's cart. A user with no saved cart gets an empty one, not
// an error.
func (s *Service) Get(ctx context.Context, userID string) (domain.Cart, error) {
	var cart domain.Cart
	err := s.store.Load(ctx, kv.CartKey(userID), &cart)
	if errors.Is(err, kv.ErrNotFound) {
		return domain.Cart{UserID: userID}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	cart.UserID = userID
	return cart, nil
}

// Add appends a fresh line item. It never find-and-increments an existing
// entry: customization makes items generally non-fungible.
func (s *Service) Add(ctx context.Context, userID string, product domain.Product, customization map[string]string, quantity int) (domain.LineItem, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return domain.LineItem{}, err
	}
	item := domain.NewLineItem(product, customization, quantity)
	cart.Items = append(cart.Items, item)
	if err := s.save(ctx, cart); err != nil {
		return domain.LineItem{}, err
	}
	return item, nil
}

// UpdateQuantity sets the quantity, removing the item when quantity drops to
// zero or below. An unknown item id is a silent no-op: the UI may race a
// stale id against a concurrent removal and must not see an error.
func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, userID, itemID)
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return s.save(ctx, cart)
}

// Remove drops the item if present; absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	kept := cart.Items[:0]
	removed := false
	for _, it := range cart.Items {
		if it.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return nil
	}
	cart.Items = kept
	return s.save(ctx, cart)
}

// Clear empties the cart; used after order confirmation.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, kv.CartKey(userID)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, cart domain.Cart) error {
	if err := s.store.Save(ctx, kv.CartKey(cart.UserID), cart); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
