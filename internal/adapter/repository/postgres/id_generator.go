
package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID-based correlation IDs for transfer receipts.
// Row IDs are assigned by the database; ULIDs never reach storage.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new lexicographically sortable ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
