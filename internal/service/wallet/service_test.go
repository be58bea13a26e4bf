package wallet

import (
	"context"
	"errors"
	"testing"

	"photogifthub/internal/domain"
	"photogifthub/internal/kv"
)

func TestGetDefaultsToSilver(t *testing.T) {
	svc := New(kv.NewMemory())
	w, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if w.Balance != 0 || w.Tier != DefaultTier {
		t.Fatalf("expected fresh Silver wallet, got %+v", w)
	}
}

func TestDebitAndLedger(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	if err := svc.Credit(ctx, "u1", 500, "Signup bonus"); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if err := svc.Debit(ctx, "u1", 300, "ord-1"); err != nil {
		t.Fatalf("Debit: %v", err)
	}

	w, _ := svc.Get(ctx, "u1")
	if w.Balance != 200 || w.TotalSpent != 300 {
		t.Fatalf("unexpected wallet after debit: %+v", w)
	}

	txns, err := svc.Transactions(ctx, "u1")
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(txns))
	}
	// Newest first.
	if txns[0].Type != domain.TxnDebit || txns[0].OrderID != "ord-1" || txns[0].Amount != 300 {
		t.Fatalf("unexpected head entry: %+v", txns[0])
	}
}

func TestDebitInsufficientBalance(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	err := svc.Debit(ctx, "u1", 100, "ord-1")
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	w, _ := svc.Get(ctx, "u1")
	if w.Balance != 0 || w.TotalSpent != 0 {
		t.Fatalf("failed debit must not mutate wallet: %+v", w)
	}
}

func TestDebitZeroIsNoOp(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	if err := svc.Debit(ctx, "u1", 0, "ord-1"); err != nil {
		t.Fatalf("zero debit must be a no-op: %v", err)
	}
	txns, _ := svc.Transactions(ctx, "u1")
	if len(txns) != 0 {
		t.Fatalf("zero debit must not append a ledger entry: %+v", txns)
	}
}

func TestAddPoints(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	if err := svc.AddPoints(ctx, "u1", 24); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	w, _ := svc.Get(ctx, "u1")
	if w.RewardPoints != 24 || w.Balance != 0 {
		t.Fatalf("points must not touch balance: %+v", w)
	}
}

func TestRecordCompensation(t *testing.T) {
	svc := New(kv.NewMemory())
	ctx := context.Background()

	if err := svc.RecordCompensation(ctx, "u1", 300, "ord-9"); err != nil {
		t.Fatalf("RecordCompensation: %v", err)
	}
	txns, _ := svc.Transactions(ctx, "u1")
	if len(txns) != 1 || txns[0].Type != domain.TxnCompensation || txns[0].OrderID != "ord-9" {
		t.Fatalf("expected compensation entry, got %+v", txns)
	}
}
