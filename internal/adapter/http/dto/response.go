package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// CreateUserResponse represents a created user in API responses.
type CreateUserResponse struct {
	UserID int64 `json:"userId"`
}

// UserCreated converts a domain user to a creation response.
func UserCreated(u *domain.User) *CreateUserResponse {
	return &CreateUserResponse{UserID: u.ID}
}

// BalanceResponse represents a user's current balance. The balance is a
// string with exactly two fractional digits.
type BalanceResponse struct {
	UserID  int64  `json:"userId"`
	Balance string `json:"balance"`
}

// BalanceOf builds a balance response.
func BalanceOf(userID int64, balance decimal.Decimal) *BalanceResponse {
	return &BalanceResponse{
		UserID:  userID,
		Balance: balance.StringFixed(2),
	}
}

// TransferResponse represents a transfer receipt in API responses.
type TransferResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ReceiptFromDomain converts a domain receipt to a response.
func ReceiptFromDomain(r *domain.TransferReceipt) *TransferResponse {
	return &TransferResponse{
		Status:    string(r.Status),
		Timestamp: r.Timestamp,
	}
}

// EntryResponse represents a transaction log entry in API responses.
type EntryResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Type           string    `json:"type"`
	Amount         string    `json:"amount"`
	OpeningBalance string    `json:"openingBalance"`
	NewBalance     string    `json:"newBalance"`
	Timestamp      time.Time `json:"timestamp"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.TransactionEntry) *EntryResponse {
	return &EntryResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		Type:           string(e.Type),
		Amount:         e.Amount.StringFixed(2),
		OpeningBalance: e.OpeningBalance.StringFixed(2),
		NewBalance:     e.NewBalance.StringFixed(2),
		Timestamp:      e.Timestamp,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.TransactionEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
