package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// TransferUseCase moves money between two users as one atomic,
// consistency-preserving operation. It performs no in-process locking: the
// store's row locks on the user rows and the single enclosing transaction are
// the only serialization discipline.
type TransferUseCase struct {
	txManager TransactionManager
	userRepo  UserRepository
	entryRepo EntryRepository
	retrier   Retrier
	idGen     IDGenerator
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	userRepo UserRepository,
	entryRepo EntryRepository,
	retrier Retrier,
	idGen IDGenerator,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		txManager: txManager,
		userRepo:  userRepo,
		entryRepo: entryRepo,
		retrier:   retrier,
		idGen:     idGen,
		metrics:   m,
		logger:    logger,
	}
}

// TransferInput represents input for a transfer.
type TransferInput struct {
	SenderID    int64
	RecipientID int64
	Amount      decimal.Decimal
}

// Transfer debits the sender and credits the recipient, writing both legs in
// one transaction. Validation failures (unknown party, insufficient funds,
// bad amount) are returned as errors with no state changed. A storage failure
// after validation is reported as a soft receipt with status "failed": no
// money moved, nothing to raise.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.TransferReceipt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if input.SenderID == input.RecipientID {
		return nil, domain.ErrSameUser
	}

	receipt := &domain.TransferReceipt{
		ID:        uc.idGen.Generate(),
		Timestamp: time.Now().UTC(),
	}

	start := time.Now()

	err := uc.retrier.Retry(ctx, func() error {
		return uc.execute(ctx, input, receipt)
	})
	if err != nil {
		if isValidationError(err) {
			return nil, err
		}

		// Storage-level failure: the enclosing transaction rolled back, so
		// neither leg persisted. Report a soft failure receipt.
		uc.logger.Error().
			Err(err).
			Str("receipt_id", receipt.ID).
			Int64("sender_id", input.SenderID).
			Int64("recipient_id", input.RecipientID).
			Msg("transfer could not commit")

		receipt.Status = domain.TransferFailed

		if uc.metrics != nil {
			uc.metrics.TransfersFailed.Inc()
		}

		return receipt, nil
	}

	receipt.Status = domain.TransferDone

	if uc.metrics != nil {
		uc.metrics.TransfersDone.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return receipt, nil
}

// execute runs one transfer attempt inside a single store transaction. The
// timestamp on the receipt is shared by both legs.
func (uc *TransferUseCase) execute(ctx context.Context, input TransferInput, receipt *domain.TransferReceipt) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock both user rows in ascending ID order (deadlock prevention).
	ids := []int64{input.SenderID, input.RecipientID}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	users, err := uc.userRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return err
	}

	// Report not-found uniformly, whichever side is missing.
	if len(users) != 2 {
		return domain.ErrUserNotFound
	}

	senderBalance, err := uc.balanceInTx(ctx, tx, input.SenderID)
	if err != nil {
		return err
	}

	if input.Amount.GreaterThan(senderBalance) {
		return domain.ErrInsufficientFunds
	}

	recipientBalance, err := uc.balanceInTx(ctx, tx, input.RecipientID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	receipt.Timestamp = now

	legs := []*domain.TransactionEntry{
		domain.NewTransferOutEntry(input.SenderID, input.Amount, senderBalance, now),
		domain.NewTransferInEntry(input.RecipientID, input.Amount, recipientBalance, now),
	}

	if err := uc.entryRepo.AppendBatch(ctx, tx, legs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// balanceInTx reads a user's balance chain head under the locks taken by the
// enclosing transaction.
func (uc *TransferUseCase) balanceInTx(ctx context.Context, tx Transaction, userID int64) (decimal.Decimal, error) {
	latest, err := uc.entryRepo.LatestByUserTx(ctx, tx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return latest.NewBalance, nil
}

// isValidationError reports whether err is a hard failure the caller must
// see, as opposed to a storage failure converted into a soft receipt.
func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrSameUser) ||
		errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrTooManyDecimalPlaces)
}
