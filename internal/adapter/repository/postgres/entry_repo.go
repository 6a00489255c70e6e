package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

const entryColumns = `id, user_id, trans_type, amount, opening_balance, new_balance, "timestamp"`

// EntryRepository implements usecase.EntryRepository over the append-only
// transaction_log table. Entries are never updated or deleted.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

// AppendBatch persists the entries inside tx. The enclosing transaction makes
// the batch atomic: either every row commits or none does.
func (r *EntryRepository) AppendBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.TransactionEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transaction_log (user_id, trans_type, amount, opening_balance, new_balance, "timestamp")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for _, entry := range entries {
		err := pgxTx.QueryRow(ctx, query,
			entry.UserID,
			string(entry.Type),
			decimalToNumeric(entry.Amount),
			decimalToNumeric(entry.OpeningBalance),
			decimalToNumeric(entry.NewBalance),
			timeToPgTimestamptz(entry.Timestamp),
		).Scan(&entry.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

// LatestByUser returns the head of the user's balance chain.
func (r *EntryRepository) LatestByUser(ctx context.Context, userID int64) (*domain.TransactionEntry, error) {
	return r.latest(ctx, r.pool, userID)
}

// LatestByUserTx is LatestByUser inside a transaction, reading under the row
// locks the transfer engine has already taken on the user rows.
func (r *EntryRepository) LatestByUserTx(ctx context.Context, tx usecase.Transaction, userID int64) (*domain.TransactionEntry, error) {
	return r.latest(ctx, tx.(*Tx).PgxTx(), userID)
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *EntryRepository) latest(ctx context.Context, q queryer, userID int64) (*domain.TransactionEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM transaction_log
		WHERE user_id = $1
		ORDER BY "timestamp" DESC, id DESC
		LIMIT 1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListByUser returns a user's entries, newest first.
func (r *EntryRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.TransactionEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM transaction_log
		WHERE user_id = $1
		ORDER BY "timestamp" DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.TransactionEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.TransactionEntry, error) {
	var (
		entry     domain.TransactionEntry
		transType string
		amount    pgtype.Numeric
		opening   pgtype.Numeric
		newBal    pgtype.Numeric
		ts        pgtype.Timestamptz
	)

	err := row.Scan(&entry.ID, &entry.UserID, &transType, &amount, &opening, &newBal, &ts)
	if err != nil {
		return nil, err
	}

	entry.Type = domain.TransactionType(transType)
	entry.Amount = numericToDecimal(amount)
	entry.OpeningBalance = numericToDecimal(opening)
	entry.NewBalance = numericToDecimal(newBal)
	entry.Timestamp = ts.Time

	return &entry, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
