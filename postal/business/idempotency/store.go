package idempotency

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"encore.app/postal/model"
	"encore.app/postal/repository/entries"
)

// Create stores entry in its endpoint's slot, replacing the previous attempt,
// and reports whether the write succeeded
func (b *business) Create(ctx context.Context, entry *model.IdempotencyEntry) bool {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	_, err := b.entryRepo.CreateEntry(ctx, entries.CreateEntryParams{
		ID:              pgtype.UUID{Bytes: entry.ID, Valid: true},
		IdempotencyKey:  entry.IdempotencyKey,
		RequestHash:     entry.RequestHash,
		Endpoint:        entry.Endpoint,
		HttpMethod:      entry.HTTPMethod,
		Operation:       entry.Operation,
		StatusCode:      int32(entry.StatusCode),
		ResponseData:    entry.ResponseData,
		CreatedAt:       pgtype.Timestamptz{Time: entry.CreatedAt, Valid: true},
		ExpiresAt:       pgtype.Timestamptz{Time: entry.ExpiresAt, Valid: true},
		RelatedEntityID: optionalText(entry.RelatedEntityID),
		CorrelationID:   optionalText(entry.CorrelationID),
	})
	if err != nil {
		rlog.Error("failed to save idempotency entry", "error", err, "key", entry.IdempotencyKey, "endpoint", entry.Endpoint)
		return false
	}

	rlog.Info("saved idempotency entry", "key", entry.IdempotencyKey, "endpoint", entry.Endpoint, "operation", entry.Operation)
	return true
}

// LatestByEndpoint returns the entry in endpoint's slot, or nil when the slot
// is empty or was swept.
func (b *business) LatestByEndpoint(ctx context.Context, endpoint string) (*model.IdempotencyEntry, error) {
	dbEntry, err := b.entryRepo.GetLatestEntryByEndpoint(ctx, endpoint)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return convertDBEntryToModel(dbEntry), nil
}

// CacheResponse attaches the serialised response to the pending entry for
// (key, endpoint). Nothing is written while protection is disabled.
func (b *business) CacheResponse(ctx context.Context, key, endpoint string, response any, statusCode int) {
	if key == "" || !b.gate.IsProtectionEnabled(ctx) {
		return
	}

	responseData, err := json.Marshal(response)
	if err != nil {
		rlog.Error("failed to marshal response for caching", "error", err, "key", key)
		return
	}

	updated, err := b.entryRepo.UpdateEntryResponse(ctx, entries.UpdateEntryResponseParams{
		IdempotencyKey: key,
		Endpoint:       endpoint,
		ResponseData:   responseData,
		StatusCode:     int32(statusCode),
	})
	if err != nil {
		rlog.Error("failed to cache response", "error", err, "key", key, "endpoint", endpoint)
		return
	}
	if updated == 0 {
		rlog.Warn("no pending idempotency entry to attach response to", "key", key, "endpoint", endpoint)
		return
	}

	rlog.Debug("response cached", "key", key, "endpoint", endpoint)
}

// DeleteExpired removes every entry whose validity window has passed
func (b *business) DeleteExpired(ctx context.Context) (int64, error) {
	deleted, err := b.entryRepo.DeleteExpiredEntries(ctx, pgtype.Timestamptz{Time: b.now(), Valid: true})
	if err != nil {
		rlog.Error("failed to delete expired idempotency entries", "error", err)
		return 0, err
	}

	rlog.Info("cleaned up expired idempotency entries", "deleted", deleted)
	return deleted, nil
}

func convertDBEntryToModel(dbEntry entries.IdempotencyEntry) *model.IdempotencyEntry {
	entry := &model.IdempotencyEntry{
		ID:             uuid.UUID(dbEntry.ID.Bytes),
		IdempotencyKey: dbEntry.IdempotencyKey,
		RequestHash:    dbEntry.RequestHash,
		Endpoint:       dbEntry.Endpoint,
		HTTPMethod:     dbEntry.HttpMethod,
		Operation:      dbEntry.Operation,
		StatusCode:     int(dbEntry.StatusCode),
		CreatedAt:      dbEntry.CreatedAt.Time,
		ExpiresAt:      dbEntry.ExpiresAt.Time,
	}

	if len(dbEntry.ResponseData) > 0 {
		entry.ResponseData = dbEntry.ResponseData
	}

	if dbEntry.RelatedEntityID.Valid {
		entry.RelatedEntityID = &dbEntry.RelatedEntityID.String
	}

	if dbEntry.CorrelationID.Valid {
		entry.CorrelationID = &dbEntry.CorrelationID.String
	}

	return entry
}

func optionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
