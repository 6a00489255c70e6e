package domain

import "time"

// TransferStatus is the outcome reported on a transfer receipt.
type TransferStatus string

const (
	// TransferDone means both legs committed.
	TransferDone TransferStatus = "done"

	// TransferFailed means the store could not commit the batch; no money
	// moved. Storage failure is a reportable outcome, not an error.
	TransferFailed TransferStatus = "failed"
)

// TransferReceipt is the result of a transfer attempt. The ID is a ULID used
// for log correlation only; it is never persisted. Timestamp is the instant
// shared by both legs of the transfer.
type TransferReceipt struct {
	ID        string
	Status    TransferStatus
	Timestamp time.Time
}

// MoneyMoved reports whether the receipt represents a committed transfer.
func (r *TransferReceipt) MoneyMoved() bool {
	return r.Status == TransferDone
}
