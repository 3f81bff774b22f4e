package request

import (
	"strings"

	"campus-reassign/internal/domain/reassignment"

	"github.com/google/uuid"
)

type CreateReassignmentRequest struct {
	ReservationID     uuid.UUID `json:"reservation_id" binding:"required"`
	Reason            string    `json:"reason" binding:"required"`
	ProgramID         uuid.UUID `json:"program_id" binding:"required"`
	Priority          int       `json:"priority"`
	IsUrgent          bool      `json:"is_urgent"`
	RequiredFeatures  []string  `json:"required_features,omitempty"`
	PreferredFeatures []string  `json:"preferred_features,omitempty"`
}

func (r CreateReassignmentRequest) GetReason() (reassignment.Reason, bool) {
	reason := reassignment.Reason(strings.ToUpper(strings.TrimSpace(r.Reason)))
	return reason, reason.Valid()
}

type RespondReassignmentRequest struct {
	Response           string     `json:"response" binding:"required"`
	SelectedResourceID *uuid.UUID `json:"selected_resource_id,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
}

func (r RespondReassignmentRequest) GetResponse() (reassignment.UserResponse, bool) {
	resp := reassignment.UserResponse(strings.ToUpper(strings.TrimSpace(r.Response)))
	return resp, resp.Valid()
}

type AutoReassignmentRequest struct {
	HoursUntilEvent float64 `json:"hours_until_event" binding:"required"`
}

type CancelReassignmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ApplyPenaltyRequest struct {
	UserID         uuid.UUID `json:"user_id" binding:"required"`
	ProgramID      uuid.UUID `json:"program_id" binding:"required"`
	RejectionCount int       `json:"rejection_count" binding:"required,min=1"`
}
