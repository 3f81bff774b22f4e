package repository

import (
	"context"
	"encoding/json"

	"campus-reassign/internal/infra"
	"campus-reassign/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry commands.HistoryEntry) error {
	var breakdownJSON []byte
	if entry.Breakdown != nil {
		var err error
		breakdownJSON, err = json.Marshal(entry.Breakdown)
		if err != nil {
			return infra.WrapRepoErr("failed to encode score breakdown", err)
		}
	}

	alternatives := entry.Alternatives
	if alternatives == nil {
		alternatives = []uuid.UUID{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO reassignment_history (
			request_id, program_id, requester_id, original_resource_id,
			original_resource_name, new_resource_id, new_resource_name, reason,
			score, breakdown, alternatives, accepted, auto_approved, feedback,
			notified_at, responded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		entry.RequestID,
		entry.ProgramID,
		entry.RequesterID,
		nilIfZeroUUID(entry.OriginalResourceID),
		nilIfEmpty(entry.OriginalResourceName),
		entry.NewResourceID,
		entry.NewResourceName,
		string(entry.Reason),
		entry.Score,
		breakdownJSON,
		alternatives,
		entry.Accepted,
		entry.AutoApproved,
		entry.Feedback,
		entry.NotifiedAt,
		entry.RespondedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append history entry", err)
	}
	return nil
}

func nilIfZeroUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
