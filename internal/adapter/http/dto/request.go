package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/usecase"
)

// CreateUserRequest represents a request to create a user. The init balance
// defaults to 0.00 when omitted.
type CreateUserRequest struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	InitBalance *decimal.Decimal `json:"init_balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.ProvisionInput {
	initBalance := decimal.Zero
	if r.InitBalance != nil {
		initBalance = *r.InitBalance
	}

	return usecase.ProvisionInput{
		Name:           r.Name,
		Email:          r.Email,
		InitialBalance: initBalance,
	}
}

// TransferRequest represents a request to transfer money to another user.
// The sender comes from the URL path.
type TransferRequest struct {
	ToUserID int64           `json:"toUserId"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput(senderID int64) usecase.TransferInput {
	return usecase.TransferInput{
		SenderID:    senderID,
		RecipientID: r.ToUserID,
		Amount:      r.Amount,
	}
}
