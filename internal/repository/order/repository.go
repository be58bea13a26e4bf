package order

import (
	"context"

	"photogifthub/internal/domain"
)

type Repository interface {
	// Create persists the order and its order-placed outbox event in one
	// transaction: an order is never visible without its event, and vice
	// versa.
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
