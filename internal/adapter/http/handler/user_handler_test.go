package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

type provisionServiceStub struct {
	provisionFn func(ctx context.Context, input usecase.ProvisionInput) (*domain.User, error)
}

func (s *provisionServiceStub) Provision(ctx context.Context, input usecase.ProvisionInput) (*domain.User, error) {
	return s.provisionFn(ctx, input)
}

type balanceServiceStub struct {
	balanceFn func(ctx context.Context, userID int64) (decimal.Decimal, error)
}

func (s *balanceServiceStub) BalanceOf(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return s.balanceFn(ctx, userID)
}

type transferServiceStub struct {
	transferFn func(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error)
}

func (s *transferServiceStub) Transfer(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error) {
	return s.transferFn(ctx, input)
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestUserHandler_Create_Success(t *testing.T) {
	var captured usecase.ProvisionInput
	handler := NewUserHandler(&provisionServiceStub{
		provisionFn: func(ctx context.Context, input usecase.ProvisionInput) (*domain.User, error) {
			captured = input
			return &domain.User{ID: 7, Name: input.Name, Email: input.Email}, nil
		},
	}, nil, nil)

	body := `{"name":"John Doe","email":"john@example.com","init_balance":"150.50"}`
	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Name != "John Doe" || captured.Email != "john@example.com" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if !captured.InitialBalance.Equal(decimal.RequireFromString("150.50")) {
		t.Fatalf("expected initial balance 150.50, got %s", captured.InitialBalance)
	}

	var resp dto.CreateUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.UserID != 7 {
		t.Fatalf("expected userId 7, got %d", resp.UserID)
	}
}

func TestUserHandler_Create_DefaultsInitBalanceToZero(t *testing.T) {
	var captured usecase.ProvisionInput
	handler := NewUserHandler(&provisionServiceStub{
		provisionFn: func(ctx context.Context, input usecase.ProvisionInput) (*domain.User, error) {
			captured = input
			return &domain.User{ID: 1}, nil
		},
	}, nil, nil)

	body := `{"name":"Jane","email":"jane@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !captured.InitialBalance.IsZero() {
		t.Fatalf("expected zero initial balance, got %s", captured.InitialBalance)
	}
}

func TestUserHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewUserHandler(&provisionServiceStub{
		provisionFn: func(ctx context.Context, input usecase.ProvisionInput) (*domain.User, error) {
			t.Fatal("Provision should not be called for invalid payload")
			return nil, nil
		},
	}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	handler := NewUserHandler(&provisionServiceStub{
		provisionFn: func(ctx context.Context, input usecase.ProvisionInput) (*domain.User, error) {
			return nil, domain.ErrUserAlreadyExists
		},
	}, nil, nil)

	body := `{"name":"John","email":"john@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "User already exists" {
		t.Fatalf("expected stable message, got %+v", resp)
	}
}

func TestUserHandler_GetBalance(t *testing.T) {
	handler := NewUserHandler(nil, &balanceServiceStub{
		balanceFn: func(ctx context.Context, userID int64) (decimal.Decimal, error) {
			if userID != 42 {
				t.Fatalf("expected userID 42, got %d", userID)
			}
			return decimal.RequireFromString("200.5"), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/42/balance", nil)
	req = setChiURLParam(req, "userId", "42")
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.UserID != 42 || resp.Balance != "200.50" {
		t.Fatalf("expected userId=42 balance=200.50, got %+v", resp)
	}
}

func TestUserHandler_GetBalance_NotFound(t *testing.T) {
	handler := NewUserHandler(nil, &balanceServiceStub{
		balanceFn: func(ctx context.Context, userID int64) (decimal.Decimal, error) {
			return decimal.Zero, domain.ErrUserNotFound
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/99/balance", nil)
	req = setChiURLParam(req, "userId", "99")
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserHandler_GetBalance_BadID(t *testing.T) {
	handler := NewUserHandler(nil, &balanceServiceStub{
		balanceFn: func(ctx context.Context, userID int64) (decimal.Decimal, error) {
			t.Fatal("BalanceOf should not be called for a malformed ID")
			return decimal.Zero, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/abc/balance", nil)
	req = setChiURLParam(req, "userId", "abc")
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Transfer_Success(t *testing.T) {
	now := time.Now().UTC()
	var captured usecase.TransferInput
	handler := NewUserHandler(nil, nil, &transferServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error) {
			captured = input
			return &domain.TransferReceipt{Status: domain.TransferDone, Timestamp: now}, nil
		},
	})

	body := `{"toUserId":2,"amount":"30.00"}`
	req := httptest.NewRequest(http.MethodPost, "/user/1/transfer", bytes.NewBufferString(body))
	req = setChiURLParam(req, "userId", "1")
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.SenderID != 1 || captured.RecipientID != 2 {
		t.Fatalf("expected transfer 1 -> 2, got %+v", captured)
	}
	if !captured.Amount.Equal(decimal.RequireFromString("30.00")) {
		t.Fatalf("expected amount 30.00, got %s", captured.Amount)
	}

	var resp dto.TransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.TransferDone) {
		t.Fatalf("expected status done, got %+v", resp)
	}
}

func TestUserHandler_Transfer_FailedReceiptIsStill200(t *testing.T) {
	handler := NewUserHandler(nil, nil, &transferServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error) {
			return &domain.TransferReceipt{Status: domain.TransferFailed, Timestamp: time.Now().UTC()}, nil
		},
	})

	body := `{"toUserId":2,"amount":"30.00"}`
	req := httptest.NewRequest(http.MethodPost, "/user/1/transfer", bytes.NewBufferString(body))
	req = setChiURLParam(req, "userId", "1")
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for failed receipt, got %d", rec.Code)
	}

	var resp dto.TransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.TransferFailed) {
		t.Fatalf("expected status failed, got %+v", resp)
	}
}

func TestUserHandler_Transfer_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusForbidden},
		{"unknown recipient", domain.ErrUserNotFound, http.StatusForbidden},
		{"same user", domain.ErrSameUser, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(nil, nil, &transferServiceStub{
				transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error) {
					return nil, tt.err
				},
			})

			body := `{"toUserId":2,"amount":"30.00"}`
			req := httptest.NewRequest(http.MethodPost, "/user/1/transfer", bytes.NewBufferString(body))
			req = setChiURLParam(req, "userId", "1")
			rec := httptest.NewRecorder()

			handler.Transfer(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
