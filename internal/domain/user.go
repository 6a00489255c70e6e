package domain

import "time"

// User represents a wallet account holder. Users are created once and never
// mutated or deleted; their balance lives entirely in the transaction log.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
