// Package profile stores the user profile and important-date reminders.
// Plain last-write-wins key-value records; no invariants beyond that.
package profile

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

func (s *Service) Get(ctx context.Context, userID string) (domain.Profile, error) {
	var p domain.Profile
	err := s.store.Load(ctx, kv.ProfileKey(userID), &p)
	if errors.Is(err, kv.ErrNotFound) {
		return domain.Profile{UserID: userID}, nil
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	p.UserID = userID
	return p, nil
}

func (s *Service) Save(ctx context.Context, p domain.Profile) error {
	if err := s.store.Save(ctx, kv.ProfileKey(p.UserID), p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *Service) Dates(ctx context.Context, userID string) ([]domain.ImportantDate, error) {
	var dates []domain.ImportantDate
	err := s.store.Load(ctx, kv.DatesKey(userID), &dates)
	if errors.Is(err, kv.ErrNotFound) {
		return []domain.ImportantDate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load dates: %w", err)
	}
	return dates, nil
}

func (s *Service) SaveDates(ctx context.Context, userID string, dates []domain.ImportantDate) error {
	if err := s.store.Save(ctx, kv.DatesKey(userID), dates); err != nil {
		return fmt.Errorf("save dates: %w", err)
	}
	return nil
}
