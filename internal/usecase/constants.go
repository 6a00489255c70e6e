package usecase

const (
	// DefaultPageSize is the page size used when a caller supplies none.
	DefaultPageSize = 20

	// MaxPageSize caps entry listing pages.
	MaxPageSize = 100
)
