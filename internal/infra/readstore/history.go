package readstore

import (
	"context"
	"fmt"
	"strings"

	"campus-reassign/internal/infra"
	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryReadStore struct {
	db *pgxpool.Pool
}

func NewHistoryReadStore(db *pgxpool.Pool) *HistoryReadStore {
	return &HistoryReadStore{db: db}
}

// historyFilterSQL builds the WHERE clause for the shared filter set.
// Placeholders are numbered after the args slice so callers can append
// their own trailing parameters.
func historyFilterSQL(f queries.HistoryFilters) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.ProgramID != nil {
		add("program_id = $%d", *f.ProgramID)
	}
	if f.UserID != nil {
		add("requester_id = $%d", *f.UserID)
	}
	if f.ResourceID != nil {
		add("(original_resource_id = $%d OR new_resource_id = $%[1]d)", *f.ResourceID)
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at < $%d", *f.To)
	}
	if f.Accepted != nil {
		add("accepted = $%d", *f.Accepted)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *HistoryReadStore) CountByOutcome(ctx context.Context, filters queries.HistoryFilters) (int64, int64, error) {
	where, args := historyFilterSQL(filters)
	var total, accepted int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE responded_at IS NOT NULL),
		       COUNT(*) FILTER (WHERE accepted)
		FROM reassignment_history `+where, args...,
	).Scan(&total, &accepted)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count history outcomes", err)
	}
	return total, accepted, nil
}

func (r *HistoryReadStore) GroupByNewResource(ctx context.Context, filters queries.HistoryFilters, limit int32) ([]*queries.AlternativeUsage, error) {
	where, args := historyFilterSQL(filters)
	if where == "" {
		where = "WHERE new_resource_id IS NOT NULL AND accepted"
	} else {
		where += " AND new_resource_id IS NOT NULL AND accepted"
	}
	args = append(args, limit)

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT new_resource_id, COALESCE(new_resource_name, ''), COUNT(*), COALESCE(AVG(score), 0)
		FROM reassignment_history %s
		GROUP BY new_resource_id, new_resource_name
		ORDER BY COUNT(*) DESC
		LIMIT $%d`, where, len(args)), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate alternative usage", err)
	}
	defer rows.Close()

	var result []*queries.AlternativeUsage
	for rows.Next() {
		var usage queries.AlternativeUsage
		if err := rows.Scan(&usage.ResourceID, &usage.ResourceName, &usage.TimesUsed, &usage.AverageScore); err != nil {
			return nil, infra.WrapRepoErr("failed to scan alternative usage", err)
		}
		result = append(result, &usage)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading alternative usage", err)
	}
	return result, nil
}

func (r *HistoryReadStore) EffectivenessInputs(ctx context.Context, programID uuid.UUID) (*queries.EffectivenessInputs, error) {
	var in queries.EffectivenessInputs
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE responded_at IS NOT NULL),
		       COUNT(*) FILTER (WHERE accepted),
		       COUNT(*) FILTER (WHERE auto_approved),
		       (SELECT COUNT(*) FROM reassignment_penalties p WHERE p.program_id = $1),
		       COALESCE(AVG(EXTRACT(EPOCH FROM responded_at - notified_at) / 3600.0)
		                FILTER (WHERE responded_at IS NOT NULL AND notified_at IS NOT NULL), 0)
		FROM reassignment_history
		WHERE program_id = $1`, programID,
	).Scan(&in.Total, &in.Accepted, &in.AutoApproved, &in.Penalized, &in.AvgResponseHours)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate effectiveness inputs", err)
	}
	return &in, nil
}

func (r *HistoryReadStore) Find(ctx context.Context, filters queries.HistoryFilters, limit int32) ([]*queries.HistoryRecordView, error) {
	where, args := historyFilterSQL(filters)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT id, request_id, program_id, requester_id,
		       COALESCE(original_resource_id, '00000000-0000-0000-0000-000000000000'),
		       COALESCE(original_resource_name, ''),
		       new_resource_id, new_resource_name, reason, score, accepted,
		       feedback, notified_at, responded_at, created_at
		FROM reassignment_history %s
		ORDER BY created_at DESC
		LIMIT $%d`, where, len(args)), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query history", err)
	}
	defer rows.Close()

	var result []*queries.HistoryRecordView
	for rows.Next() {
		var rec queries.HistoryRecordView
		if err := rows.Scan(
			&rec.ID, &rec.RequestID, &rec.ProgramID, &rec.RequesterID,
			&rec.OriginalResourceID, &rec.OriginalResourceName,
			&rec.NewResourceID, &rec.NewResourceName, &rec.Reason, &rec.Score,
			&rec.Accepted, &rec.Feedback, &rec.NotifiedAt, &rec.RespondedAt, &rec.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history record", err)
		}
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading history", err)
	}
	return result, nil
}
