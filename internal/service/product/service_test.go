package product

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"photogifthub/internal/domain"
	productrepo "photogifthub/internal/repository/product"
)

type stubRepo struct {
	products []domain.Product
	listErr  error
	getErr   error
}

func (s *stubRepo) List(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ productrepo.Repository = (*stubRepo)(nil)

func newService(repo productrepo.Repository) *Service {
	return New(repo, log.New(io.Discard, "", 0))
}

func TestListFromRepo(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{{ID: "p1", Name: "Frame", Category: "frames"}}}
	svc := newService(repo)

	products, stale, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if stale {
		t.Fatalf("healthy repo must not be stale")
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestListFallsBackToSamples(t *testing.T) {
	repo := &stubRepo{listErr: errors.New("db down")}
	svc := newService(repo)

	products, stale, err := svc.List(context.Background(), "frames")
	if err != nil {
		t.Fatalf("List must degrade, not fail: %v", err)
	}
	if !stale {
		t.Fatalf("fallback response must be flagged stale")
	}
	if len(products) == 0 {
		t.Fatalf("expected sample frames in fallback")
	}
	for _, p := range products {
		if p.Category != "frames" {
			t.Fatalf("category filter must apply to fallback: %+v", p)
		}
	}
}

func TestGetResolvesSampleID(t *testing.T) {
	svc := newService(&stubRepo{})
	p, err := svc.Get(context.Background(), "sample-custom-photo-mug")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.BasePrice != 349 || p.Category != "mugs" {
		t.Fatalf("unexpected sample product: %+v", p)
	}
}

func TestGetUnknownID(t *testing.T) {
	svc := newService(&stubRepo{})
	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
