package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SuggestionView struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Score        float64   `json:"score"`
	Capacity     float64   `json:"capacity_score"`
	Features     float64   `json:"features_score"`
	Location     float64   `json:"location_score"`
	Availability float64   `json:"availability_score"`
	MatchType    string    `json:"match_type"`
	Pros         []string  `json:"pros,omitempty"`
	Cons         []string  `json:"cons,omitempty"`
}

type ReassignmentView struct {
	ID                    uuid.UUID       `json:"id"`
	OriginalReservationID uuid.UUID       `json:"original_reservation_id"`
	RequestedBy           uuid.UUID       `json:"requested_by"`
	ProgramID             uuid.UUID       `json:"program_id"`
	Reason                string          `json:"reason"`
	Status                string          `json:"status"`
	UserResponse          *string         `json:"user_response,omitempty"`
	Priority              int             `json:"priority"`
	IsUrgent              bool            `json:"is_urgent"`
	Suggestion            *SuggestionView `json:"suggestion,omitempty"`
	ResponseDeadline      time.Time       `json:"response_deadline"`
	RejectionCount        int             `json:"rejection_count"`
	PreviousRequestID     *uuid.UUID      `json:"previous_request_id,omitempty"`
	EscalationAction      *string         `json:"escalation_action,omitempty"`
	Notes                 *string         `json:"notes,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

type ReassignmentListItem struct {
	ID               uuid.UUID `json:"id"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	IsUrgent         bool      `json:"is_urgent"`
	ResponseDeadline time.Time `json:"response_deadline"`
	RejectionCount   int       `json:"rejection_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type PolicyView struct {
	ID                            uuid.UUID `json:"id"`
	ProgramID                     uuid.UUID `json:"program_id"`
	Name                          string    `json:"name"`
	CapacityTolerancePercent      float64   `json:"capacity_tolerance_percent"`
	MaxSuggestions                int       `json:"max_suggestions"`
	MinimumScore                  float64   `json:"minimum_score"`
	DefaultResponseTimeHours      float64   `json:"default_response_time_hours"`
	UrgentResponseTimeHours       float64   `json:"urgent_response_time_hours"`
	AutoApprovalEnabled           bool      `json:"auto_approval_enabled"`
	AutoApprovalThresholdHours    float64   `json:"auto_approval_threshold_hours"`
	AutoApprovalOnlyForEquivalent bool      `json:"auto_approval_only_for_equivalent"`
	EscalateToSupervisor          bool      `json:"escalate_to_supervisor"`
	RejectionPenaltyPoints        int       `json:"rejection_penalty_points"`
	MaxRejectionsBeforePenalty    int       `json:"max_rejections_before_penalty"`
	WeightCapacity                float64   `json:"weight_capacity"`
	WeightFeatures                float64   `json:"weight_features"`
	WeightLocation                float64   `json:"weight_location"`
	WeightAvailability            float64   `json:"weight_availability"`
	ExactMatchThreshold           float64   `json:"exact_match_threshold"`
	TypeMatchThreshold            float64   `json:"type_match_threshold"`
	Active                        bool      `json:"active"`
	CreatedAt                     time.Time `json:"created_at"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

type HistoryRecordView struct {
	ID                   uuid.UUID  `json:"id"`
	RequestID            uuid.UUID  `json:"request_id"`
	ProgramID            uuid.UUID  `json:"program_id"`
	RequesterID          uuid.UUID  `json:"requester_id"`
	OriginalResourceID   uuid.UUID  `json:"original_resource_id"`
	OriginalResourceName string     `json:"original_resource_name"`
	NewResourceID        *uuid.UUID `json:"new_resource_id,omitempty"`
	NewResourceName      *string    `json:"new_resource_name,omitempty"`
	Reason               string     `json:"reason"`
	Score                *float64   `json:"score,omitempty"`
	Accepted             *bool      `json:"accepted,omitempty"`
	Feedback             *string    `json:"feedback,omitempty"`
	NotifiedAt           *time.Time `json:"notified_at,omitempty"`
	RespondedAt          *time.Time `json:"responded_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// HistoryFilters narrows analytics queries. Nil fields match everything.
type HistoryFilters struct {
	ProgramID  *uuid.UUID
	UserID     *uuid.UUID
	ResourceID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Accepted   *bool
}

type AcceptanceRateStats struct {
	Total    int64   `json:"total"`
	Accepted int64   `json:"accepted"`
	Rate     float64 `json:"rate"`
}

type AlternativeUsage struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	TimesUsed    int64     `json:"times_used"`
	AverageScore float64   `json:"average_score"`
}

type PolicyEffectiveness struct {
	ProgramID        uuid.UUID `json:"program_id"`
	Score            float64   `json:"score"`
	AcceptanceRate   float64   `json:"acceptance_rate"`
	AutoApprovalRate float64   `json:"auto_approval_rate"`
	PenaltyRate      float64   `json:"penalty_rate"`
	AvgResponseHours float64   `json:"avg_response_hours"`
}

type ReassignmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReassignmentView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*ReassignmentListItem, error)
}

type PolicyQueries interface {
	GetActiveByProgram(ctx context.Context, programID uuid.UUID) (*PolicyView, error)
}

type HistoryQueries interface {
	AcceptanceRate(ctx context.Context, filters HistoryFilters) (*AcceptanceRateStats, error)
	TopAlternatives(ctx context.Context, filters HistoryFilters, limit int32) ([]*AlternativeUsage, error)
	PolicyEffectiveness(ctx context.Context, programID uuid.UUID) (*PolicyEffectiveness, error)
	List(ctx context.Context, filters HistoryFilters, limit int32) ([]*HistoryRecordView, error)
}

// Read-side store ports implemented by infra.

type ReassignmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReassignmentView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*ReassignmentListItem, error)
}

type PolicyReadStore interface {
	FindActiveByProgram(ctx context.Context, programID uuid.UUID) (*PolicyView, error)
}

type HistoryReadStore interface {
	CountByOutcome(ctx context.Context, filters HistoryFilters) (total, accepted int64, err error)
	GroupByNewResource(ctx context.Context, filters HistoryFilters, limit int32) ([]*AlternativeUsage, error)
	EffectivenessInputs(ctx context.Context, programID uuid.UUID) (*EffectivenessInputs, error)
	Find(ctx context.Context, filters HistoryFilters, limit int32) ([]*HistoryRecordView, error)
}

// EffectivenessInputs are the raw aggregates the effectiveness score is
// computed from.
type EffectivenessInputs struct {
	Total            int64
	Accepted         int64
	AutoApproved     int64
	Penalized        int64
	AvgResponseHours float64
}
