package response

import (
	"time"

	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AcceptanceRateResponse struct {
	Total    int64   `json:"total"`
	Accepted int64   `json:"accepted"`
	Rate     float64 `json:"rate"`
}

type AlternativeUsageResponse struct {
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	TimesUsed    int64     `json:"timesUsed"`
	AverageScore float64   `json:"averageScore"`
}

type PolicyEffectivenessResponse struct {
	ProgramID        uuid.UUID `json:"programId"`
	Score            float64   `json:"score"`
	AcceptanceRate   float64   `json:"acceptanceRate"`
	AutoApprovalRate float64   `json:"autoApprovalRate"`
	PenaltyRate      float64   `json:"penaltyRate"`
	AvgResponseHours float64   `json:"avgResponseHours"`
}

type HistoryRecordResponse struct {
	ID                   uuid.UUID  `json:"id"`
	RequestID            uuid.UUID  `json:"requestId"`
	ProgramID            uuid.UUID  `json:"programId"`
	RequesterID          uuid.UUID  `json:"requesterId"`
	OriginalResourceID   uuid.UUID  `json:"originalResourceId"`
	OriginalResourceName string     `json:"originalResourceName"`
	NewResourceID        *uuid.UUID `json:"newResourceId,omitempty"`
	NewResourceName      *string    `json:"newResourceName,omitempty"`
	Reason               string     `json:"reason"`
	Score                *float64   `json:"score,omitempty"`
	Accepted             *bool      `json:"accepted,omitempty"`
	Feedback             *string    `json:"feedback,omitempty"`
	NotifiedAt           *time.Time `json:"notifiedAt,omitempty"`
	RespondedAt          *time.Time `json:"respondedAt,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

func FromAcceptanceRate(rm *queries.AcceptanceRateStats) *AcceptanceRateResponse {
	resp := &AcceptanceRateResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromAlternativeUsage(rm *queries.AlternativeUsage) *AlternativeUsageResponse {
	resp := &AlternativeUsageResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromPolicyEffectiveness(rm *queries.PolicyEffectiveness) *PolicyEffectivenessResponse {
	resp := &PolicyEffectivenessResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromHistoryRecord(rm *queries.HistoryRecordView) *HistoryRecordResponse {
	resp := &HistoryRecordResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
