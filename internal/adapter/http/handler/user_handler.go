package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// ProvisionService defines the user provisioning behavior needed by
// UserHandler.
type ProvisionService interface {
	Provision(ctx context.Context, input usecase.ProvisionInput) (*domain.User, error)
}

// BalanceService defines the balance reporting behavior needed by UserHandler.
type BalanceService interface {
	BalanceOf(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// TransferService defines the transfer behavior needed by UserHandler.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error)
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	provisionUC ProvisionService
	balanceUC   BalanceService
	transferUC  TransferService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(provisionUC ProvisionService, balanceUC BalanceService, transferUC TransferService) *UserHandler {
	return &UserHandler{
		provisionUC: provisionUC,
		balanceUC:   balanceUC,
		transferUC:  transferUC,
	}
}

// Create registers a new user together with their opening balance.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.provisionUC.Provision(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserCreated(user))
}

// GetBalance reports a user's current balance.
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID", err.Error())
		return
	}

	balance, err := h.balanceUC.BalanceOf(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceOf(userID, balance))
}

// Transfer moves money from the user in the URL to the user in the body.
// Storage failures come back as a failed receipt with 200, not as an error.
func (h *UserHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	senderID, err := parseUserIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID", err.Error())
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.transferUC.Transfer(r.Context(), req.ToUseCaseInput(senderID))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptFromDomain(receipt))
}
