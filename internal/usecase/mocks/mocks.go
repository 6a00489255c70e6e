package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	emails map[string]bool
	nextID int64

	CreateFunc            func(ctx context.Context, tx usecase.Transaction, user *domain.User) error
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.User, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[int64]*domain.User),
		emails: make(map[string]bool),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, tx usecase.Transaction, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emails[user.Email] {
		return domain.ErrUserAlreadyExists
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = user
	m.emails[user.Email] = true
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.User, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []*domain.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

// MockEntryRepository is a mock implementation of EntryRepository. It keeps
// per-user chains ordered by insertion, which matches commit order in tests.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[int64][]*domain.TransactionEntry
	nextID  int64

	AppendBatchFunc    func(ctx context.Context, tx usecase.Transaction, entries []*domain.TransactionEntry) error
	LatestByUserFunc   func(ctx context.Context, userID int64) (*domain.TransactionEntry, error)
	LatestByUserTxFunc func(ctx context.Context, tx usecase.Transaction, userID int64) (*domain.TransactionEntry, error)
	ListByUserFunc     func(ctx context.Context, userID int64, limit, offset int) ([]*domain.TransactionEntry, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[int64][]*domain.TransactionEntry),
	}
}

func (m *MockEntryRepository) AppendBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.TransactionEntry) error {
	if m.AppendBatchFunc != nil {
		return m.AppendBatchFunc(ctx, tx, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.nextID++
		e.ID = m.nextID
		m.entries[e.UserID] = append(m.entries[e.UserID], e)
	}
	return nil
}

func (m *MockEntryRepository) LatestByUser(ctx context.Context, userID int64) (*domain.TransactionEntry, error) {
	if m.LatestByUserFunc != nil {
		return m.LatestByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	chain := m.entries[userID]
	if len(chain) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return chain[len(chain)-1], nil
}

func (m *MockEntryRepository) LatestByUserTx(ctx context.Context, tx usecase.Transaction, userID int64) (*domain.TransactionEntry, error) {
	if m.LatestByUserTxFunc != nil {
		return m.LatestByUserTxFunc(ctx, tx, userID)
	}
	return m.LatestByUser(ctx, userID)
}

func (m *MockEntryRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.TransactionEntry, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	chain := m.entries[userID]

	// Newest first.
	var result []*domain.TransactionEntry
	for i := len(chain) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, chain[i])
	}
	return result, nil
}

// AllEntries returns every entry for a user in chain order, for assertions.
func (m *MockEntryRepository) AllEntries(userID int64) []*domain.TransactionEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	chain := m.entries[userID]
	out := make([]*domain.TransactionEntry, len(chain))
	copy(out, chain)
	return out
}

// MockTransactionManager serializes transactions with a mutex, standing in
// for the store's per-account locking discipline: a Begin blocks until the
// previous transaction commits or rolls back.
type MockTransactionManager struct {
	mu sync.Mutex

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	return &MockTransaction{release: m.mu.Unlock}, nil
}

// MockTransaction is a transaction handle returned by MockTransactionManager.
type MockTransaction struct {
	once    sync.Once
	release func()

	CommitFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	var err error
	if t.CommitFunc != nil {
		err = t.CommitFunc(ctx)
	}
	t.done()
	return err
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.done()
	return nil
}

func (t *MockTransaction) done() {
	t.once.Do(func() {
		if t.release != nil {
			t.release()
		}
	})
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("receipt-%d", m.counter)
}

// MockRetrier runs the operation once with no retries.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
