//go:build unit || e2e

package builder

import (
	"time"

	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/domain/resource"
	"campus-reassign/internal/domain/similarity"
	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	OriginalReservationID uuid.UUID
	RequestedBy           uuid.UUID
	ProgramID             uuid.UUID
	Reason                reassignment.Reason
	Priority              int
	IsUrgent              bool
	ResponseDeadline      time.Time
	CapacityTolerance     float64
	RequiredFeatures      resource.FeatureSet
	PreferredFeatures     resource.FeatureSet
	PreviousRequestID     *uuid.UUID
	InheritedRejections   int
	Now                   time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Now()
	return &RequestBuilder{
		OriginalReservationID: uuid.New(),
		RequestedBy:           uuid.New(),
		ProgramID:             uuid.New(),
		Reason:                reassignment.ReasonMaintenance,
		Priority:              50,
		IsUrgent:              false,
		ResponseDeadline:      now.Add(24 * time.Hour),
		CapacityTolerance:     20,
		RequiredFeatures:      resource.NewFeatureSet("projector"),
		PreferredFeatures:     resource.NewFeatureSet("whiteboard"),
		Now:                   now,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) BuildDomain() (*reassignment.Request, error) {
	return reassignment.NewRequest(reassignment.NewRequestParams{
		OriginalReservationID:   b.OriginalReservationID,
		RequestedBy:             b.RequestedBy,
		ProgramID:               b.ProgramID,
		Reason:                  b.Reason,
		Priority:                b.Priority,
		IsUrgent:                b.IsUrgent,
		ResponseDeadline:        b.ResponseDeadline,
		CapacityTolerance:       b.CapacityTolerance,
		RequiredFeatures:        b.RequiredFeatures,
		PreferredFeatures:       b.PreferredFeatures,
		PreviousRequestID:       b.PreviousRequestID,
		InheritedRejectionCount: b.InheritedRejections,
	}, b.Now)
}

// BuildPending constructs a valid pending request or panics; for tests that
// exercise transitions, not construction.
func (b *RequestBuilder) BuildPending() *reassignment.Request {
	req, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *RequestBuilder) BuildSuggestion() reassignment.Suggestion {
	return reassignment.Suggestion{
		Result: similarity.Result{
			CandidateID: uuid.New(),
			Score:       87.5,
			Breakdown: similarity.Breakdown{
				Capacity:     100,
				Features:     85,
				Location:     60,
				Availability: 100,
			},
			MatchType: similarity.ExactMatch,
			Pros:      []string{"Same building"},
		},
		ResourceName: "Room B-201",
	}
}

func (b *RequestBuilder) BuildView() *queries.ReassignmentView {
	return &queries.ReassignmentView{
		ID:                    uuid.New(),
		OriginalReservationID: b.OriginalReservationID,
		RequestedBy:           b.RequestedBy,
		ProgramID:             b.ProgramID,
		Reason:                string(b.Reason),
		Status:                string(reassignment.StatusPending),
		Priority:              b.Priority,
		IsUrgent:              b.IsUrgent,
		ResponseDeadline:      b.ResponseDeadline,
		CreatedAt:             b.Now,
		UpdatedAt:             b.Now,
	}
}

func (b *RequestBuilder) BuildListItem() *queries.ReassignmentListItem {
	return &queries.ReassignmentListItem{
		ID:               uuid.New(),
		Reason:           string(b.Reason),
		Status:           string(reassignment.StatusPending),
		IsUrgent:         b.IsUrgent,
		ResponseDeadline: b.ResponseDeadline,
		CreatedAt:        b.Now,
	}
}

func (b *RequestBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"reservation_id":     b.OriginalReservationID.String(),
		"reason":             string(b.Reason),
		"program_id":         b.ProgramID.String(),
		"priority":           b.Priority,
		"is_urgent":          b.IsUrgent,
		"required_features":  b.RequiredFeatures.Slice(),
		"preferred_features": b.PreferredFeatures.Slice(),
	}
}
