package product

import (
	"context"
	"errors"
	"log"

	"photogifthub/internal/domain"
	productrepo "photogifthub/internal/repository/product"
)

type Service struct {
	repo   productrepo.Repository
	logger *log.Logger
}

func New(repo productrepo.Repository, logger *log.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the catalog, optionally filtered by category. A repository
// failure degrades to the sample catalog instead of blocking the storefront;
// the stale flag tells callers the data may be out of date.
func (s *Service) List(ctx context.Context, category string) (products []domain.Product, stale bool, err error) {
	products, err = s.repo.List(ctx, category)
	if err != nil {
		s.logger.Printf("catalog unavailable, serving sample products: %v", err)
		return filterByCategory(SampleCatalog(), category), true, nil
	}
	return products, false, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		// Sample ids stay resolvable while the db catalog is empty or down.
		for _, sample := range SampleCatalog() {
			if sample.ID == id {
				return &sample, nil
			}
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("catalog lookup failed for %s: %v", id, err)
		}
		return nil, err
	}
	return p, nil
}

func filterByCategory(products []domain.Product, category string) []domain.Product {
	if category == "" {
		return products
	}
	var out []domain.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
