package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
)

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/user/1/transactions?limit=50", nil)
	if got := parseIntQuery(req, "limit", 10); got != 50 {
		t.Fatalf("expected limit=50, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/user/1/transactions?limit=invalid", nil)
	if got := parseIntQuery(req, "limit", 10); got != 10 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req.URL = &url.URL{RawQuery: ""}
	if got := parseIntQuery(req, "limit", 25); got != 25 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusForbidden},
		{"user exists", domain.ErrUserAlreadyExists, http.StatusForbidden},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusForbidden},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"same user", domain.ErrSameUser, http.StatusBadRequest},
		{"invalid name", domain.ErrInvalidName, http.StatusBadRequest},
		{"too many decimal places", domain.ErrTooManyDecimalPlaces, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := errorMessage(domain.ErrUserNotFound); got != "User not found" {
		t.Fatalf("expected stable not-found message, got %q", got)
	}
	if got := errorMessage(domain.ErrInsufficientFunds); got != "Insufficient funds" {
		t.Fatalf("expected stable funds message, got %q", got)
	}
	if got := errorMessage(errors.New("pq: connection reset")); got != "Internal server error" {
		t.Fatalf("expected internals to be masked, got %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteDomainError_MasksInternals(t *testing.T) {
	rr := httptest.NewRecorder()

	writeDomainError(rr, errors.New("pq: deadlock detected"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != "Internal server error" || resp.Message != "" {
		t.Fatalf("expected masked error, got %+v", resp)
	}
}
