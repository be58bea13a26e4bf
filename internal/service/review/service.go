package review

import (
	"context"
	"errors"
	"strings"

	"photogifthub/internal/domain"
	reviewrepo "photogifthub/internal/repository/review"
)

type Service struct {
	repo reviewrepo.Repository
}

func New(repo reviewrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	ProductID string `json:"productId"`
	Reviewer  string `json:"reviewer"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Review, error) {
	if strings.TrimSpace(in.Reviewer) == "" {
		return nil, errors.New("reviewer required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	return s.repo.Create(ctx, reviewrepo.CreateInput{
		ProductID: in.ProductID,
		Reviewer:  strings.TrimSpace(in.Reviewer),
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *Service) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	return s.repo.Stats(ctx)
}
