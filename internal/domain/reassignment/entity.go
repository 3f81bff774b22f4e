package reassignment

import (
	"time"

	"campus-reassign/internal/domain/resource"
	"campus-reassign/internal/domain/similarity"
	"campus-reassign/internal/pkg/errs"

	"github.com/google/uuid"
)

// Suggestion embeds the scored alternative attached to a request, together
// with the candidate's display name for notifications.
type Suggestion struct {
	Result       similarity.Result `json:"result"`
	ResourceName string            `json:"resourceName"`
}

// AuditEntry is one line of the request's append-only audit trail.
type AuditEntry struct {
	At     time.Time `json:"at"`
	Event  string    `json:"event"`
	Detail string    `json:"detail,omitempty"`
}

// Request is the central mutable entity of the reassignment workflow. All
// transitions are validated against the current status before any field is
// touched; an invalid transition returns a StateError and mutates nothing.
type Request struct {
	id                    uuid.UUID
	originalReservationID uuid.UUID
	requestedBy           uuid.UUID
	programID             uuid.UUID
	reason                Reason
	status                Status
	userResponse          *UserResponse
	priority              int
	isUrgent              bool
	suggestion            *Suggestion
	responseDeadline      time.Time
	rejectionCount        int
	capacityTolerance     float64
	requiredFeatures      resource.FeatureSet
	preferredFeatures     resource.FeatureSet
	notes                 *string
	previousRequestID     *uuid.UUID
	escalationAction      *EscalationAction
	auditTrail            []AuditEntry
	lockNo                int32
	createdAt             time.Time
	updatedAt             time.Time
}

// NewRequestParams collects the construction inputs. ResponseDeadline is
// derived once from policy and urgency by the caller and never silently
// extended afterwards. InheritedRejectionCount carries the chain's running
// rejection total into a sibling request, so the escalation ladder keeps
// climbing across siblings instead of restarting at zero.
type NewRequestParams struct {
	OriginalReservationID   uuid.UUID
	RequestedBy             uuid.UUID
	ProgramID               uuid.UUID
	Reason                  Reason
	Priority                int
	IsUrgent                bool
	ResponseDeadline        time.Time
	CapacityTolerance       float64
	RequiredFeatures        resource.FeatureSet
	PreferredFeatures       resource.FeatureSet
	PreviousRequestID       *uuid.UUID
	InheritedRejectionCount int
}

func NewRequest(p NewRequestParams, now time.Time) (*Request, error) {
	var violations []errs.FieldViolation
	if p.OriginalReservationID == uuid.Nil {
		violations = append(violations, errs.FieldViolation{Field: "originalReservationId", Message: "must be set"})
	}
	if p.RequestedBy == uuid.Nil {
		violations = append(violations, errs.FieldViolation{Field: "requestedBy", Message: "must be set"})
	}
	if !p.Reason.Valid() {
		violations = append(violations, errs.FieldViolation{Field: "reason", Message: "unknown reason"})
	}
	if p.Priority < 0 || p.Priority > 100 {
		violations = append(violations, errs.FieldViolation{Field: "priority", Message: "must be between 0 and 100"})
	}
	if p.CapacityTolerance < 0 || p.CapacityTolerance > 100 {
		violations = append(violations, errs.FieldViolation{Field: "capacityTolerancePercent", Message: "must be between 0 and 100"})
	}
	if !p.ResponseDeadline.After(now) {
		violations = append(violations, errs.FieldViolation{Field: "responseDeadline", Message: "must be in the future"})
	}
	if p.InheritedRejectionCount < 0 {
		violations = append(violations, errs.FieldViolation{Field: "inheritedRejectionCount", Message: "must not be negative"})
	}
	if p.InheritedRejectionCount > 0 && p.PreviousRequestID == nil {
		violations = append(violations, errs.FieldViolation{Field: "inheritedRejectionCount", Message: "requires a previous request"})
	}
	if len(violations) > 0 {
		return nil, &errs.ValidationError{Violations: violations}
	}

	r := &Request{
		id:                    uuid.New(),
		originalReservationID: p.OriginalReservationID,
		requestedBy:           p.RequestedBy,
		programID:             p.ProgramID,
		reason:                p.Reason,
		status:                StatusPending,
		priority:              p.Priority,
		isUrgent:              p.IsUrgent,
		responseDeadline:      p.ResponseDeadline,
		rejectionCount:        p.InheritedRejectionCount,
		capacityTolerance:     p.CapacityTolerance,
		requiredFeatures:      p.RequiredFeatures,
		preferredFeatures:     p.PreferredFeatures,
		previousRequestID:     p.PreviousRequestID,
		lockNo:                1,
		createdAt:             now,
		updatedAt:             now,
	}
	r.appendAudit(now, "created", string(p.Reason))
	return r, nil
}

func ReconstructRequest(
	id, originalReservationID, requestedBy, programID uuid.UUID,
	reason Reason,
	status Status,
	userResponse *UserResponse,
	priority int,
	isUrgent bool,
	suggestion *Suggestion,
	responseDeadline time.Time,
	rejectionCount int,
	capacityTolerance float64,
	requiredFeatures, preferredFeatures resource.FeatureSet,
	notes *string,
	previousRequestID *uuid.UUID,
	escalationAction *EscalationAction,
	auditTrail []AuditEntry,
	lockNo int32,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                    id,
		originalReservationID: originalReservationID,
		requestedBy:           requestedBy,
		programID:             programID,
		reason:                reason,
		status:                status,
		userResponse:          userResponse,
		priority:              priority,
		isUrgent:              isUrgent,
		suggestion:            suggestion,
		responseDeadline:      responseDeadline,
		rejectionCount:        rejectionCount,
		capacityTolerance:     capacityTolerance,
		requiredFeatures:      requiredFeatures,
		preferredFeatures:     preferredFeatures,
		notes:                 notes,
		previousRequestID:     previousRequestID,
		escalationAction:      escalationAction,
		auditTrail:            auditTrail,
		lockNo:                lockNo,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (r *Request) ID() uuid.UUID                        { return r.id }
func (r *Request) OriginalReservationID() uuid.UUID     { return r.originalReservationID }
func (r *Request) RequestedBy() uuid.UUID               { return r.requestedBy }
func (r *Request) ProgramID() uuid.UUID                 { return r.programID }
func (r *Request) Reason() Reason                       { return r.reason }
func (r *Request) Status() Status                       { return r.status }
func (r *Request) UserResponse() *UserResponse          { return r.userResponse }
func (r *Request) Priority() int                        { return r.priority }
func (r *Request) IsUrgent() bool                       { return r.isUrgent }
func (r *Request) Suggestion() *Suggestion              { return r.suggestion }
func (r *Request) ResponseDeadline() time.Time          { return r.responseDeadline }
func (r *Request) RejectionCount() int                  { return r.rejectionCount }
func (r *Request) CapacityTolerance() float64           { return r.capacityTolerance }
func (r *Request) RequiredFeatures() resource.FeatureSet  { return r.requiredFeatures }
func (r *Request) PreferredFeatures() resource.FeatureSet { return r.preferredFeatures }
func (r *Request) Notes() *string                       { return r.notes }
func (r *Request) PreviousRequestID() *uuid.UUID        { return r.previousRequestID }
func (r *Request) EscalationAction() *EscalationAction  { return r.escalationAction }
func (r *Request) AuditTrail() []AuditEntry             { return r.auditTrail }
func (r *Request) LockNo() int32                        { return r.lockNo }
func (r *Request) CreatedAt() time.Time                 { return r.createdAt }
func (r *Request) UpdatedAt() time.Time                 { return r.updatedAt }

func (r *Request) IsPending() bool { return r.status == StatusPending }

// DeadlinePassed reports whether the response window has elapsed.
func (r *Request) DeadlinePassed(now time.Time) bool {
	return now.After(r.responseDeadline)
}

// AttachSuggestion sets the top-scored alternative on a pending request.
func (r *Request) AttachSuggestion(s Suggestion, now time.Time) error {
	if r.status != StatusPending {
		return &errs.StateError{Op: "attach suggestion", Current: r.status.String()}
	}
	r.suggestion = &s
	r.touch(now)
	r.appendAudit(now, "suggestion_attached", s.ResourceName)
	return nil
}

// Accept records the user's acceptance. When selected is non-nil it
// overrides the suggested resource (the user picked a different alternative
// from the list).
func (r *Request) Accept(selected *Suggestion, notes *string, now time.Time) error {
	if r.status != StatusPending {
		return &errs.StateError{Op: "accept", Current: r.status.String()}
	}
	if selected != nil {
		r.suggestion = selected
	}
	resp := ResponseAccept
	r.userResponse = &resp
	r.status = StatusAccepted
	r.notes = notes
	r.touch(now)
	r.appendAudit(now, "accepted", "")
	return nil
}

// AutoApprove accepts the standing suggestion without user interaction,
// driven by policy. No user response is recorded.
func (r *Request) AutoApprove(now time.Time) error {
	if r.status != StatusPending {
		return &errs.StateError{Op: "auto-approve", Current: r.status.String()}
	}
	if r.suggestion == nil {
		return errs.New("cannot auto-approve without a suggestion")
	}
	r.status = StatusAccepted
	r.touch(now)
	r.appendAudit(now, "auto_approved", r.suggestion.ResourceName)
	return nil
}

// Reject records a rejection. rejectionCount only ever increases.
func (r *Request) Reject(notes *string, now time.Time) error {
	if r.status != StatusPending {
		return &errs.StateError{Op: "reject", Current: r.status.String()}
	}
	resp := ResponseReject
	r.userResponse = &resp
	r.status = StatusRejected
	r.rejectionCount++
	r.notes = notes
	r.touch(now)
	r.appendAudit(now, "rejected", "")
	return nil
}

// Expire transitions a pending request whose deadline has passed and pins
// the escalation action that was decided, so repeated sweeps observe the
// same outcome without re-deciding.
func (r *Request) Expire(action EscalationAction, now time.Time) error {
	if r.status != StatusPending {
		return &errs.StateError{Op: "expire", Current: r.status.String()}
	}
	if !r.DeadlinePassed(now) {
		return errs.ErrRequestNotExpired
	}
	r.status = StatusExpired
	r.escalationAction = &action
	r.touch(now)
	r.appendAudit(now, "expired", string(action))
	return nil
}

// Complete finalizes an accepted (or auto-assigned expired) request after
// the reservation has been moved.
func (r *Request) Complete(now time.Time) error {
	if r.status != StatusAccepted && r.status != StatusExpired {
		return &errs.StateError{Op: "complete", Current: r.status.String()}
	}
	r.status = StatusCompleted
	r.touch(now)
	r.appendAudit(now, "completed", "")
	return nil
}

// Escalate hands the request to a supervisor, terminally.
func (r *Request) Escalate(now time.Time) error {
	if r.status != StatusRejected && r.status != StatusExpired {
		return &errs.StateError{Op: "escalate", Current: r.status.String()}
	}
	r.status = StatusEscalated
	r.touch(now)
	r.appendAudit(now, "escalated", "")
	return nil
}

// Cancel aborts any non-terminal request.
func (r *Request) Cancel(reason string, now time.Time) error {
	if r.status.IsTerminal() {
		return &errs.StateError{Op: "cancel", Current: r.status.String()}
	}
	r.status = StatusCancelled
	r.touch(now)
	r.appendAudit(now, "cancelled", reason)
	return nil
}

func (r *Request) touch(now time.Time) {
	r.updatedAt = now
}

func (r *Request) appendAudit(now time.Time, event, detail string) {
	r.auditTrail = append(r.auditTrail, AuditEntry{At: now, Event: event, Detail: detail})
}
