package response

import (
	"time"

	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/domain/similarity"
	"campus-reassign/internal/usecase/commands"
	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SuggestionResponse struct {
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	Score        float64   `json:"score"`
	Capacity     float64   `json:"capacityScore"`
	Features     float64   `json:"featuresScore"`
	Location     float64   `json:"locationScore"`
	Availability float64   `json:"availabilityScore"`
	MatchType    string    `json:"matchType"`
	Pros         []string  `json:"pros,omitempty"`
	Cons         []string  `json:"cons,omitempty"`
}

type ReassignmentResponse struct {
	ID                    uuid.UUID           `json:"id"`
	OriginalReservationID uuid.UUID           `json:"originalReservationId"`
	RequestedBy           uuid.UUID           `json:"requestedBy"`
	ProgramID             uuid.UUID           `json:"programId"`
	Reason                string              `json:"reason"`
	Status                string              `json:"status"`
	UserResponse          *string             `json:"userResponse,omitempty"`
	Priority              int                 `json:"priority"`
	IsUrgent              bool                `json:"isUrgent"`
	Suggestion            *SuggestionResponse `json:"suggestion,omitempty"`
	ResponseDeadline      time.Time           `json:"responseDeadline"`
	RejectionCount        int                 `json:"rejectionCount"`
	PreviousRequestID     *uuid.UUID          `json:"previousRequestId,omitempty"`
	EscalationAction      *string             `json:"escalationAction,omitempty"`
	Notes                 *string             `json:"notes,omitempty"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

type ReassignmentListResponse struct {
	ID               uuid.UUID `json:"id"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	IsUrgent         bool      `json:"isUrgent"`
	ResponseDeadline time.Time `json:"responseDeadline"`
	RejectionCount   int       `json:"rejectionCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateReassignmentResponse struct {
	Request     *ReassignmentResponse `json:"request"`
	Suggestions []SuggestionResponse  `json:"suggestions"`
	Warnings    []string              `json:"warnings,omitempty"`
}

type RespondReassignmentResponse struct {
	Request          *ReassignmentResponse `json:"request"`
	NextAction       string                `json:"nextAction"`
	SiblingRequestID *uuid.UUID            `json:"siblingRequestId,omitempty"`
}

type ExpirationResponse struct {
	Request          *ReassignmentResponse `json:"request"`
	EscalationAction string                `json:"escalationAction"`
	AlreadyHandled   bool                  `json:"alreadyHandled"`
}

type AutoReassignmentResponse struct {
	Request  *ReassignmentResponse `json:"request"`
	Approved bool                  `json:"approved"`
}

type PenaltyResponse struct {
	Applied         bool       `json:"applied"`
	UpdatedPriority int        `json:"updatedPriority"`
	RestrictedUntil *time.Time `json:"restrictedUntil,omitempty"`
}

func FromReassignmentView(rm *queries.ReassignmentView) *ReassignmentResponse {
	resp := &ReassignmentResponse{}
	_ = copier.Copy(resp, rm)
	if rm.Suggestion != nil {
		s := &SuggestionResponse{}
		_ = copier.Copy(s, rm.Suggestion)
		resp.Suggestion = s
	}
	return resp
}

func FromReassignmentListItem(rm *queries.ReassignmentListItem) *ReassignmentListResponse {
	resp := &ReassignmentListResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

// FromRequestEntity flattens the aggregate for command responses; queries go
// through the read store instead.
func FromRequestEntity(req *reassignment.Request) *ReassignmentResponse {
	resp := &ReassignmentResponse{
		ID:                    req.ID(),
		OriginalReservationID: req.OriginalReservationID(),
		RequestedBy:           req.RequestedBy(),
		ProgramID:             req.ProgramID(),
		Reason:                string(req.Reason()),
		Status:                string(req.Status()),
		Priority:              req.Priority(),
		IsUrgent:              req.IsUrgent(),
		ResponseDeadline:      req.ResponseDeadline(),
		RejectionCount:        req.RejectionCount(),
		PreviousRequestID:     req.PreviousRequestID(),
		Notes:                 req.Notes(),
		CreatedAt:             req.CreatedAt(),
		UpdatedAt:             req.UpdatedAt(),
	}
	if ur := req.UserResponse(); ur != nil {
		s := string(*ur)
		resp.UserResponse = &s
	}
	if ea := req.EscalationAction(); ea != nil {
		s := string(*ea)
		resp.EscalationAction = &s
	}
	if sug := req.Suggestion(); sug != nil {
		resp.Suggestion = fromSuggestion(sug.Result, sug.ResourceName)
	}
	return resp
}

func fromSuggestion(r similarity.Result, name string) *SuggestionResponse {
	return &SuggestionResponse{
		ResourceID:   r.CandidateID,
		ResourceName: name,
		Score:        r.Score,
		Capacity:     r.Breakdown.Capacity,
		Features:     r.Breakdown.Features,
		Location:     r.Breakdown.Location,
		Availability: r.Breakdown.Availability,
		MatchType:    string(r.MatchType),
		Pros:         r.Pros,
		Cons:         r.Cons,
	}
}

func FromCreateResult(res *commands.CreateReassignmentResult) *CreateReassignmentResponse {
	out := &CreateReassignmentResponse{
		Request:     FromRequestEntity(res.Request),
		Suggestions: make([]SuggestionResponse, 0, len(res.Suggestions)),
		Warnings:    res.Warnings,
	}
	for _, s := range res.Suggestions {
		out.Suggestions = append(out.Suggestions, *fromSuggestion(s.Result, s.ResourceName))
	}
	return out
}

func FromUserResponseResult(res *commands.UserResponseResult) *RespondReassignmentResponse {
	return &RespondReassignmentResponse{
		Request:          FromRequestEntity(res.Request),
		NextAction:       string(res.NextAction),
		SiblingRequestID: res.SiblingRequestID,
	}
}

func FromExpirationResult(res *commands.ExpirationResult) *ExpirationResponse {
	return &ExpirationResponse{
		Request:          FromRequestEntity(res.Request),
		EscalationAction: string(res.EscalationAction),
		AlreadyHandled:   res.AlreadyHandled,
	}
}

func FromAutoReassignmentResult(res *commands.AutoReassignmentResult) *AutoReassignmentResponse {
	return &AutoReassignmentResponse{
		Request:  FromRequestEntity(res.Request),
		Approved: res.Approved,
	}
}

func FromPenaltyResult(res *commands.PenaltyResult) *PenaltyResponse {
	return &PenaltyResponse{
		Applied:         res.Applied,
		UpdatedPriority: res.UpdatedPriority,
		RestrictedUntil: res.RestrictedUntil,
	}
}
