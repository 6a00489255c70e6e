package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// ProvisionUseCase registers new users and seeds their balance chain.
type ProvisionUseCase struct {
	txManager TransactionManager
	userRepo  UserRepository
	entryRepo EntryRepository
	metrics   *metrics.Metrics
}

// NewProvisionUseCase creates a new ProvisionUseCase.
func NewProvisionUseCase(
	txManager TransactionManager,
	userRepo UserRepository,
	entryRepo EntryRepository,
	m *metrics.Metrics,
) *ProvisionUseCase {
	return &ProvisionUseCase{
		txManager: txManager,
		userRepo:  userRepo,
		entryRepo: entryRepo,
		metrics:   m,
	}
}

// ProvisionInput represents input for provisioning a user.
type ProvisionInput struct {
	Name           string
	Email          string
	InitialBalance decimal.Decimal
}

// Provision creates a user and their opening deposit entry as one atomic
// unit. If either write fails the whole operation fails and no partial state
// remains.
func (uc *ProvisionUseCase) Provision(ctx context.Context, input ProvisionInput) (*domain.User, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if err := domain.ValidateInitialBalance(input.InitialBalance); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.userRepo.Create(ctx, tx, user); err != nil {
		return nil, err
	}

	seed := domain.NewDepositEntry(user.ID, input.InitialBalance, now)
	if err := uc.entryRepo.AppendBatch(ctx, tx, []*domain.TransactionEntry{seed}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.UsersProvisioned.Inc()
	}

	return user, nil
}
