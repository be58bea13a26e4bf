// Package wallet manages per-user stored value, reward points and the
// transaction log. Reads and writes happen within a single request; there is
// no cross-tab or cross-request locking requirement.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"photogifthub/internal/domain"
	"photogifthub/internal/kv"
)

// DefaultTier is assigned to wallets created on first read.
const DefaultTier = "Silver"

type Service struct {
	store kv.Store
}

func New(store kv.Store) *Service {
	return &Service{store: store}
}

// Get loads the wallet, returning a zero-balance Silver wallet for users who
// have never held one.
func (s *Service) Get(ctx context.Context, userID string) (domain.Wallet, error) {
	var w domain.Wallet
	err := s.store.Load(ctx, kv.WalletKey(userID), &w)
	if errors.Is(err, kv.ErrNotFound) {
		return domain.Wallet{UserID: userID, Tier: DefaultTier}, nil
	}
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("load wallet: %w", err)
	}
	w.UserID = userID
	if w.Tier == "" {
		w.Tier = DefaultTier
	}
	return w, nil
}

// Debit reduces the balance by amount and records the payment against the
// order. The balance can never go negative.
func (s *Service) Debit(ctx context.Context, userID string, amount int64, orderID string) error {
	if amount <= 0 {
		return nil
	}
	w, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if w.Balance < amount {
		return domain.ErrInsufficientBalance
	}
	w.Balance -= amount
	w.TotalSpent += amount
	if err := s.store.Save(ctx, kv.WalletKey(userID), w); err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return s.appendTransaction(ctx, userID, domain.Transaction{
		ID:          "txn_" + uuid.NewString(),
		Type:        domain.TxnDebit,
		Amount:      amount,
		Description: fmt.Sprintf("Payment for order %s", orderID),
		OrderID:     orderID,
		CreatedAt:   time.Now().UTC(),
	})
}

// Credit adds to the balance with a ledger entry.
func (s *Service) Credit(ctx context.Context, userID string, amount int64, description string) error {
	if amount <= 0 {
		return nil
	}
	w, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	w.Balance += amount
	if err := s.store.Save(ctx, kv.WalletKey(userID), w); err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return s.appendTransaction(ctx, userID, domain.Transaction{
		ID:          "txn_" + uuid.NewString(),
		Type:        domain.TxnCredit,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
}

// AddPoints credits reward points without touching the balance.
func (s *Service) AddPoints(ctx context.Context, userID string, points int64) error {
	if points <= 0 {
		return nil
	}
	w, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	w.RewardPoints += points
	if err := s.store.Save(ctx, kv.WalletKey(userID), w); err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return nil
}

// RecordCompensation logs a debit that must be reconciled manually: the order
// was persisted but the wallet write failed afterwards. The entry keeps the
// amount from being silently lost.
func (s *Service) RecordCompensation(ctx context.Context, userID string, amount int64, orderID string) error {
	return s.appendTransaction(ctx, userID, domain.Transaction{
		ID:          "txn_" + uuid.NewString(),
		Type:        domain.TxnCompensation,
		Amount:      amount,
		Description: fmt.Sprintf("Unreconciled wallet debit for order %s", orderID),
		OrderID:     orderID,
		CreatedAt:   time.Now().UTC(),
	})
}

// Transactions returns the ledger, newest first.
func (s *Service) Transactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.store.Load(ctx, kv.TransactionsKey(userID), &txns)
	if errors.Is(err, kv.ErrNotFound) {
		return []domain.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return txns, nil
}

func (s *Service) appendTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	txns, err := s.Transactions(ctx, userID)
	if err != nil {
		return err
	}
	txns = append([]domain.Transaction{txn}, txns...)
	if err := s.store.Save(ctx, kv.TransactionsKey(userID), txns); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}
