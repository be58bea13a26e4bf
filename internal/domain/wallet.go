package domain

import "time"

// Wallet is per-user stored value plus reward points. Single writer at a time;
// debits happen within one request.
type Wallet struct {
	UserID       string `json:"userId"`
	Balance      int64  `json:"balance"`
	RewardPoints int64  `json:"rewardPoints"`
	Tier         string `json:"tier"`
	TotalSpent   int64  `json:"totalSpent"`
}

// Transaction types recorded in the wallet log.
const (
	TxnDebit        = "debit"
	TxnCredit       = "credit"
	TxnCompensation = "compensation"
)

// Transaction is one wallet ledger entry, newest first in the stored log.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	OrderID     string    `json:"orderId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
