package readstore

import (
	"context"
	"encoding/json"

	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"
	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReassignmentReadStore struct {
	db *pgxpool.Pool
}

func NewReassignmentReadStore(db *pgxpool.Pool) *ReassignmentReadStore {
	return &ReassignmentReadStore{db: db}
}

func (r *ReassignmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReassignmentView, error) {
	var (
		view             queries.ReassignmentView
		suggestionJSON   []byte
		escalationAction *string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, original_reservation_id, requested_by, program_id, reason,
		       status, user_response, priority, is_urgent, suggestion,
		       response_deadline, rejection_count, previous_request_id,
		       escalation_action, notes, created_at, updated_at
		FROM reassignment_requests
		WHERE id = $1`, id,
	).Scan(
		&view.ID, &view.OriginalReservationID, &view.RequestedBy, &view.ProgramID,
		&view.Reason, &view.Status, &view.UserResponse, &view.Priority,
		&view.IsUrgent, &suggestionJSON, &view.ResponseDeadline,
		&view.RejectionCount, &view.PreviousRequestID, &escalationAction,
		&view.Notes, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reassignment request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reassignment request", err)
	}

	view.EscalationAction = escalationAction
	if len(suggestionJSON) > 0 {
		sv, err := suggestionViewFromJSON(suggestionJSON)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode stored suggestion", err)
		}
		view.Suggestion = sv
	}
	return &view, nil
}

func (r *ReassignmentReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*queries.ReassignmentListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, reason, status, is_urgent, response_deadline, rejection_count, created_at
		FROM reassignment_requests
		WHERE requested_by = $1
		ORDER BY created_at DESC
		LIMIT $2`, requesterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reassignment requests", err)
	}
	defer rows.Close()

	var result []*queries.ReassignmentListItem
	for rows.Next() {
		var item queries.ReassignmentListItem
		if err := rows.Scan(&item.ID, &item.Reason, &item.Status, &item.IsUrgent,
			&item.ResponseDeadline, &item.RejectionCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reassignment list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading reassignment list", err)
	}
	return result, nil
}

func suggestionViewFromJSON(data []byte) (*queries.SuggestionView, error) {
	var s reassignment.Suggestion
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &queries.SuggestionView{
		ResourceID:   s.Result.CandidateID,
		ResourceName: s.ResourceName,
		Score:        s.Result.Score,
		Capacity:     s.Result.Breakdown.Capacity,
		Features:     s.Result.Breakdown.Features,
		Location:     s.Result.Breakdown.Location,
		Availability: s.Result.Breakdown.Availability,
		MatchType:    string(s.Result.MatchType),
		Pros:         s.Result.Pros,
		Cons:         s.Result.Cons,
	}, nil
}
