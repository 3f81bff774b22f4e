package repository

import (
	"context"
	"encoding/json"
	"time"

	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/domain/resource"
	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

const insertRequestSQL = `
INSERT INTO reassignment_requests (
    id, original_reservation_id, requested_by, program_id, reason, status,
    user_response, priority, is_urgent, response_deadline, rejection_count,
    capacity_tolerance, required_features, preferred_features, notes,
    previous_request_id, escalation_action, suggestion, audit_trail, lock_no,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
    $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
)`

func (r *RequestRepository) Create(ctx context.Context, req *reassignment.Request) error {
	suggestionJSON, auditJSON, err := marshalRequestDocs(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode request", err)
	}

	_, err = r.db.Exec(ctx, insertRequestSQL,
		req.ID(),
		req.OriginalReservationID(),
		req.RequestedBy(),
		req.ProgramID(),
		string(req.Reason()),
		string(req.Status()),
		userResponseToText(req.UserResponse()),
		req.Priority(),
		req.IsUrgent(),
		req.ResponseDeadline(),
		req.RejectionCount(),
		req.CapacityTolerance(),
		req.RequiredFeatures().Slice(),
		req.PreferredFeatures().Slice(),
		req.Notes(),
		req.PreviousRequestID(),
		escalationToText(req.EscalationAction()),
		suggestionJSON,
		auditJSON,
		req.LockNo(),
		req.CreatedAt(),
		req.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("referenced reservation or program missing", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create reassignment request", err)
	}
	return nil
}

const selectRequestSQL = `
SELECT id, original_reservation_id, requested_by, program_id, reason, status,
       user_response, priority, is_urgent, response_deadline, rejection_count,
       capacity_tolerance, required_features, preferred_features, notes,
       previous_request_id, escalation_action, suggestion, audit_trail,
       lock_no, created_at, updated_at
FROM reassignment_requests
`

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*reassignment.Request, error) {
	row := r.db.QueryRow(ctx, selectRequestSQL+"WHERE id = $1", id)
	req, err := scanRequest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reassignment request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reassignment request", err)
	}
	return req, nil
}

func (r *RequestRepository) FindPendingByReservation(ctx context.Context, reservationID uuid.UUID) (*reassignment.Request, error) {
	row := r.db.QueryRow(ctx,
		selectRequestSQL+"WHERE original_reservation_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT 1",
		reservationID, string(reassignment.StatusPending))
	req, err := scanRequest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending request for reservation", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending request", err)
	}
	return req, nil
}

const updateRequestSQL = `
UPDATE reassignment_requests SET
    status = $1, user_response = $2, rejection_count = $3, notes = $4,
    escalation_action = $5, suggestion = $6, audit_trail = $7,
    lock_no = lock_no + 1, updated_at = $8
WHERE id = $9 AND lock_no = $10`

// Update persists the aggregate under optimistic concurrency: the row is
// only written when lock_no still matches what the caller read.
func (r *RequestRepository) Update(ctx context.Context, req *reassignment.Request, expectedLockNo int32) error {
	suggestionJSON, auditJSON, err := marshalRequestDocs(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode request", err)
	}

	tag, err := r.db.Exec(ctx, updateRequestSQL,
		string(req.Status()),
		userResponseToText(req.UserResponse()),
		req.RejectionCount(),
		req.Notes(),
		escalationToText(req.EscalationAction()),
		suggestionJSON,
		auditJSON,
		req.UpdatedAt(),
		req.ID(),
		expectedLockNo,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reassignment request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reassignment request was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

type requestRow interface {
	Scan(dest ...any) error
}

func scanRequest(row requestRow) (*reassignment.Request, error) {
	var (
		id, reservationID, requestedBy, programID uuid.UUID
		reason, status                            string
		userResponse                              *string
		priority                                  int
		isUrgent                                  bool
		deadline                                  time.Time
		rejectionCount                            int
		capacityTolerance                         float64
		requiredFeatures, preferredFeatures       []string
		notes                                     *string
		previousRequestID                         *uuid.UUID
		escalationAction                          *string
		suggestionJSON, auditJSON                 []byte
		lockNo                                    int32
		createdAt, updatedAt                      time.Time
	)

	if err := row.Scan(
		&id, &reservationID, &requestedBy, &programID, &reason, &status,
		&userResponse, &priority, &isUrgent, &deadline, &rejectionCount,
		&capacityTolerance, &requiredFeatures, &preferredFeatures, &notes,
		&previousRequestID, &escalationAction, &suggestionJSON, &auditJSON,
		&lockNo, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var suggestion *reassignment.Suggestion
	if len(suggestionJSON) > 0 {
		suggestion = &reassignment.Suggestion{}
		if err := json.Unmarshal(suggestionJSON, suggestion); err != nil {
			return nil, err
		}
	}

	var auditTrail []reassignment.AuditEntry
	if len(auditJSON) > 0 {
		if err := json.Unmarshal(auditJSON, &auditTrail); err != nil {
			return nil, err
		}
	}

	return reassignment.ReconstructRequest(
		id, reservationID, requestedBy, programID,
		reassignment.Reason(reason),
		reassignment.Status(status),
		userResponseFromText(userResponse),
		priority,
		isUrgent,
		suggestion,
		deadline,
		rejectionCount,
		capacityTolerance,
		resource.NewFeatureSet(requiredFeatures...),
		resource.NewFeatureSet(preferredFeatures...),
		notes,
		previousRequestID,
		escalationFromText(escalationAction),
		auditTrail,
		lockNo,
		createdAt,
		updatedAt,
	), nil
}

func marshalRequestDocs(req *reassignment.Request) (suggestion, audit []byte, err error) {
	if s := req.Suggestion(); s != nil {
		suggestion, err = json.Marshal(s)
		if err != nil {
			return nil, nil, err
		}
	}
	audit, err = json.Marshal(req.AuditTrail())
	if err != nil {
		return nil, nil, err
	}
	return suggestion, audit, nil
}

func userResponseToText(r *reassignment.UserResponse) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

func userResponseFromText(s *string) *reassignment.UserResponse {
	if s == nil {
		return nil
	}
	r := reassignment.UserResponse(*s)
	return &r
}

func escalationToText(a *reassignment.EscalationAction) *string {
	if a == nil {
		return nil
	}
	s := string(*a)
	return &s
}

func escalationFromText(s *string) *reassignment.EscalationAction {
	if s == nil {
		return nil
	}
	a := reassignment.EscalationAction(*s)
	return &a
}
