package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/gowallet/internal/adapter/http"
	"github.com/iho/gowallet/internal/adapter/http/handler"
	"github.com/iho/gowallet/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/gowallet/internal/adapter/repository/redis"
	infraredis "github.com/iho/gowallet/internal/infrastructure/redis"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database.
func newTestRouter(t *testing.T, ctx context.Context, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	pool := testDB.Pool
	userRepo := postgres.NewUserRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	txManager := postgres.NewTxManager(pool)
	retrier := postgres.NewRetrier(zerolog.Nop())
	idGen := postgres.NewULIDGenerator()

	provisionUC := usecase.NewProvisionUseCase(txManager, userRepo, entryRepo, nil)
	balanceUC := usecase.NewBalanceUseCase(entryRepo)
	transferUC := usecase.NewTransferUseCase(txManager, userRepo, entryRepo, retrier, idGen, nil, zerolog.Nop())
	entryUC := usecase.NewEntryUseCase(userRepo, entryRepo)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		UserHandler:      handler.NewUserHandler(provisionUC, balanceUC, transferUC),
		EntryHandler:     handler.NewEntryHandler(entryUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		Logger:           zerolog.Nop(),
		IdempotencyStore: idempotencyStore,
	})
}
