package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of a transaction log entry.
type TransactionType string

const (
	TransactionTransferOut TransactionType = "transfer_out"
	TransactionTransferIn  TransactionType = "transfer_in"
	TransactionDeposit     TransactionType = "deposit"

	// Reserved for future transaction kinds; no current operation writes them.
	TransactionCharge     TransactionType = "charge"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// TransactionEntry is one immutable row in a user's balance chain. Entries are
// append-only; a user's current balance is the NewBalance of their latest
// entry ordered by (Timestamp, ID).
type TransactionEntry struct {
	ID             int64
	UserID         int64
	Type           TransactionType
	Amount         decimal.Decimal
	OpeningBalance decimal.Decimal
	NewBalance     decimal.Decimal
	Timestamp      time.Time
}

// NewDepositEntry builds the seed entry written when a user is provisioned.
// The chain starts at zero, so opening balance is always zero here.
func NewDepositEntry(userID int64, amount decimal.Decimal, at time.Time) *TransactionEntry {
	return &TransactionEntry{
		UserID:         userID,
		Type:           TransactionDeposit,
		Amount:         amount,
		OpeningBalance: decimal.Zero,
		NewBalance:     amount,
		Timestamp:      at,
	}
}

// NewTransferOutEntry builds the debit leg of a transfer.
func NewTransferOutEntry(userID int64, amount, openingBalance decimal.Decimal, at time.Time) *TransactionEntry {
	return &TransactionEntry{
		UserID:         userID,
		Type:           TransactionTransferOut,
		Amount:         amount,
		OpeningBalance: openingBalance,
		NewBalance:     openingBalance.Sub(amount),
		Timestamp:      at,
	}
}

// NewTransferInEntry builds the credit leg of a transfer.
func NewTransferInEntry(userID int64, amount, openingBalance decimal.Decimal, at time.Time) *TransactionEntry {
	return &TransactionEntry{
		UserID:         userID,
		Type:           TransactionTransferIn,
		Amount:         amount,
		OpeningBalance: openingBalance,
		NewBalance:     openingBalance.Add(amount),
		Timestamp:      at,
	}
}
