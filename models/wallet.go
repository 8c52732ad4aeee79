package models

import "time"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

// WalletTransaction is one wallet ledger entry. Entries are append-only
// and never mutated after creation.
type WalletTransaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      int               `json:"amount"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
	Category    string            `json:"category"`
}

// RechargeRequest is the payload for a wallet top-up.
type RechargeRequest struct {
	Amount int    `json:"amount"`
	Method string `json:"method"`
}

// WithdrawRequest is the payload for a wallet withdrawal.
type WithdrawRequest struct {
	Amount int `json:"amount"`
}
