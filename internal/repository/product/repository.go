package product

import (
	"context"

	"photogifthub/internal/domain"
)

type Repository interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
