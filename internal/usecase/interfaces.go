package usecase

import (
	"context"
	"time"

	"github.com/iho/gowallet/internal/domain"
)

// UserRepository defines data access for users.
type UserRepository interface {
	// Create persists a new user inside tx and fills in the store-assigned ID.
	// Returns domain.ErrUserAlreadyExists on an email uniqueness violation.
	Create(ctx context.Context, tx Transaction, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByIDsForUpdate locks the user rows in ascending ID order and returns
	// them. Missing IDs are simply absent from the result.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []int64) ([]*domain.User, error)
}

// EntryRepository defines data access for transaction log entries.
type EntryRepository interface {
	// AppendBatch persists all entries inside tx; the enclosing transaction
	// makes the batch atomic. Entry IDs are filled in by the store.
	AppendBatch(ctx context.Context, tx Transaction, entries []*domain.TransactionEntry) error
	// LatestByUser returns the entry with the greatest (timestamp, id) for the
	// user, or domain.ErrUserNotFound when the chain is empty.
	LatestByUser(ctx context.Context, userID int64) (*domain.TransactionEntry, error)
	// LatestByUserTx is LatestByUser inside a transaction; used by the
	// transfer engine after it has locked the user rows.
	LatestByUserTx(ctx context.Context, tx Transaction, userID int64) (*domain.TransactionEntry, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.TransactionEntry, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs for receipts and correlation.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage for the HTTP boundary.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
