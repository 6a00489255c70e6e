package usecase

import (
	"context"

	"github.com/iho/gowallet/internal/domain"
)

// EntryUseCase exposes a user's transaction history.
type EntryUseCase struct {
	userRepo  UserRepository
	entryRepo EntryRepository
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(userRepo UserRepository, entryRepo EntryRepository) *EntryUseCase {
	return &EntryUseCase{
		userRepo:  userRepo,
		entryRepo: entryRepo,
	}
}

// ListEntriesInput represents input for listing a user's entries.
type ListEntriesInput struct {
	UserID int64
	Limit  int
	Offset int
}

// ListByUser lists a user's log entries, newest first.
func (uc *EntryUseCase) ListByUser(ctx context.Context, input ListEntriesInput) ([]*domain.TransactionEntry, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}

	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}

	if input.Offset < 0 {
		input.Offset = 0
	}

	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	return uc.entryRepo.ListByUser(ctx, input.UserID, input.Limit, input.Offset)
}
