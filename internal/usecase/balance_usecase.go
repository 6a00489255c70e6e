package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// BalanceUseCase answers "what is this user's balance right now". It is a
// read-only view over the transaction log; the balance is never stored
// separately.
type BalanceUseCase struct {
	entryRepo EntryRepository
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(entryRepo EntryRepository) *BalanceUseCase {
	return &BalanceUseCase{entryRepo: entryRepo}
}

// BalanceOf returns the NewBalance of the user's latest log entry.
// Provisioning always writes a seed entry, so a user without a chain is
// indistinguishable from a missing user.
func (uc *BalanceUseCase) BalanceOf(ctx context.Context, userID int64) (decimal.Decimal, error) {
	latest, err := uc.entryRepo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return decimal.Zero, domain.ErrUserNotFound
		}

		return decimal.Zero, err
	}

	return latest.NewBalance, nil
}
