package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the key has never been saved. Callers
// substitute their documented default (empty cart, zero wallet) instead of
// treating it as a failure.
var ErrNotFound = errors.New("kv: key not found")

// Store is the durable key-value layer behind carts, wallets, transaction
// logs and profiles. Values round-trip through JSON losslessly.
type Store interface {
	Save(ctx context.Context, key string, value interface{}) error
	Load(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

// Well-known key builders. Every per-user record lives under its own key.
func CartKey(userID string) string         { return "cart:" + userID }
func WalletKey(userID string) string       { return "wallet:" + userID }
func TransactionsKey(userID string) string { return "transactions:" + userID }
func ProfileKey(userID string) string      { return "profile:" + userID }
func DatesKey(userID string) string        { return "dates:" + userID }
