//go:build integration

package entries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newTestQueries(t *testing.T) *Queries {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("postal"),
		tcpostgres.WithUsername("postal"),
		tcpostgres.WithPassword("postal"),
		tcpostgres.WithInitScripts("../../db/migrations/1_create_tables.up.sql"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return New(pool)
}

func entryParams(key, endpoint string, createdAt time.Time, ttl time.Duration) CreateEntryParams {
	return CreateEntryParams{
		ID:             pgtype.UUID{Bytes: uuid.New(), Valid: true},
		IdempotencyKey: key,
		RequestHash:    "hash-" + key,
		Endpoint:       endpoint,
		HttpMethod:     "POST",
		Operation:      "create_delivery",
		CreatedAt:      pgtype.Timestamptz{Time: createdAt, Valid: true},
		ExpiresAt:      pgtype.Timestamptz{Time: createdAt.Add(ttl), Valid: true},
	}
}

func TestEntriesQueries(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	const endpoint = "/v1/deliveries"

	_, err := q.GetLatestEntryByEndpoint(ctx, endpoint)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = q.CreateEntry(ctx, entryParams("key-a", endpoint, now, time.Hour))
	require.NoError(t, err)
	second, err := q.CreateEntry(ctx, entryParams("key-b", endpoint, now, time.Hour))
	require.NoError(t, err)
	_, err = q.CreateEntry(ctx, entryParams("key-c", "/v1/deliveries/BC1/status", now, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "key-b", second.IdempotencyKey)

	t.Run("one_slot_per_endpoint", func(t *testing.T) {
		latest, err := q.GetLatestEntryByEndpoint(ctx, endpoint)
		require.NoError(t, err)
		assert.Equal(t, "key-b", latest.IdempotencyKey)
		assert.Equal(t, second.ID, latest.ID)
		assert.Nil(t, latest.ResponseData)
		assert.Equal(t, int32(0), latest.StatusCode)

		count, err := q.CountEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("response_attached_once", func(t *testing.T) {
		params := UpdateEntryResponseParams{
			IdempotencyKey: "key-b",
			Endpoint:       endpoint,
			ResponseData:   []byte(`{"success":true}`),
			StatusCode:     200,
		}

		updated, err := q.UpdateEntryResponse(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated)

		params.ResponseData = []byte(`{"success":false}`)
		updated, err = q.UpdateEntryResponse(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(0), updated)

		params.IdempotencyKey = "key-a"
		updated, err = q.UpdateEntryResponse(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(0), updated)

		latest, err := q.GetLatestEntryByEndpoint(ctx, endpoint)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true}`, string(latest.ResponseData))
		assert.Equal(t, int32(200), latest.StatusCode)
	})

	t.Run("delete_expired", func(t *testing.T) {
		_, err := q.CreateEntry(ctx, entryParams("key-old", "/v1/deliveries/BC2/status", now.Add(-3*time.Hour), time.Hour))
		require.NoError(t, err)

		deleted, err := q.DeleteExpiredEntries(ctx, pgtype.Timestamptz{Time: now, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		count, err := q.CountEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestEntriesSweptSlotStaysEmpty(t *testing.T) {
	q := newTestQueries(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	const endpoint = "/v1/deliveries"

	long := entryParams("key-a", endpoint, now, 24*time.Hour)
	long.ResponseData = []byte(`{"success":true}`)
	long.StatusCode = 200
	_, err := q.CreateEntry(ctx, long)
	require.NoError(t, err)

	// the expiration window was lowered before the next attempt
	_, err = q.CreateEntry(ctx, entryParams("key-b", endpoint, now, time.Hour))
	require.NoError(t, err)

	deleted, err := q.DeleteExpiredEntries(ctx, pgtype.Timestamptz{Time: now.Add(2 * time.Hour), Valid: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = q.GetLatestEntryByEndpoint(ctx, endpoint)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
