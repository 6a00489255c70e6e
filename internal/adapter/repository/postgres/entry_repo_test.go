package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

func TestEntryRepositoryAppendBatch(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	entries := []*domain.TransactionEntry{
		{
			UserID:         1,
			Type:           domain.TransactionTransferOut,
			Amount:         decimal.RequireFromString("100.50"),
			OpeningBalance: decimal.RequireFromString("500.00"),
			NewBalance:     decimal.RequireFromString("399.50"),
			Timestamp:      now,
		},
		{
			UserID:         2,
			Type:           domain.TransactionTransferIn,
			Amount:         decimal.RequireFromString("100.50"),
			OpeningBalance: decimal.RequireFromString("0"),
			NewBalance:     decimal.RequireFromString("100.50"),
			Timestamp:      now,
		},
	}

	mockPool.ExpectBegin()
	for i, entry := range entries {
		mockPool.ExpectQuery(`INSERT INTO transaction_log`).
			WithArgs(
				entry.UserID,
				string(entry.Type),
				decimalToNumeric(entry.Amount),
				decimalToNumeric(entry.OpeningBalance),
				decimalToNumeric(entry.NewBalance),
				timeToPgTimestamptz(entry.Timestamp),
			).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
	}

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &EntryRepository{}
	if err := repo.AppendBatch(context.Background(), tx, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Fatalf("expected store-assigned ids 1 and 2, got %d and %d", entries[0].ID, entries[1].ID)
	}

	assertExpectations(t, mockPool)
}

func TestEntryRepositoryLatestByUserTxNoRows(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(`SELECT (.+) FROM transaction_log`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &EntryRepository{}
	_, err = repo.LatestByUserTx(context.Background(), tx, 42)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestNumericConversionRoundTrip(t *testing.T) {
	tests := []string{"0", "0.01", "100.50", "-42.75", "1000000.00"}

	for _, s := range tests {
		d := decimal.RequireFromString(s)
		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Fatalf("round trip changed %s into %s", d, got)
		}
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	var n pgtype.Numeric

	if got := numericToDecimal(n); !got.IsZero() {
		t.Fatalf("expected zero for invalid numeric, got %s", got)
	}
}
