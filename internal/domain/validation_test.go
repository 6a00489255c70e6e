package domain_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gowallet/internal/domain"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr error
	}{
		{"valid name", "John Doe", nil},
		{"empty name", "", domain.ErrInvalidName},
		{"whitespace only", "   ", domain.ErrInvalidName},
		{"too long", strings.Repeat("a", 51), domain.ErrInvalidName},
		{"exactly max length", strings.Repeat("a", 50), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateName(tt.input)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "john@example.com", false},
		{"valid with plus", "john+wallet@example.com", false},
		{"missing at", "john.example.com", true},
		{"missing domain", "john@", true},
		{"missing tld", "john@example", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateEmail(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidEmail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		expectErr error
	}{
		{"valid amount", "50.00", nil},
		{"valid single decimal", "50.5", nil},
		{"valid integer", "50", nil},
		{"zero", "0", domain.ErrInvalidAmount},
		{"negative", "-1.00", domain.ErrInvalidAmount},
		{"three decimal places", "1.001", domain.ErrTooManyDecimalPlaces},
		{"trailing zeros ok", "1.500", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			err = domain.ValidateAmount(amount)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInitialBalance(t *testing.T) {
	tests := []struct {
		name      string
		balance   string
		expectErr error
	}{
		{"zero is allowed", "0.00", nil},
		{"positive", "200.00", nil},
		{"negative", "-0.01", domain.ErrInvalidInitialBalance},
		{"too many decimals", "0.001", domain.ErrTooManyDecimalPlaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, err := decimal.NewFromString(tt.balance)
			require.NoError(t, err)

			err = domain.ValidateInitialBalance(balance)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
