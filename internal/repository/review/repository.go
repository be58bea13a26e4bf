package review

import (
	"context"

	"photogifthub/internal/domain"
)

type CreateInput struct {
	ProductID string
	Reviewer  string
	Rating    int
	Comment   string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Stats(ctx context.Context) (*domain.ReviewStats, error)
}
