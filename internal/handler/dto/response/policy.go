package response

import (
	"time"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PolicyResponse struct {
	ID                            uuid.UUID `json:"id"`
	ProgramID                     uuid.UUID `json:"programId"`
	Name                          string    `json:"name"`
	CapacityTolerancePercent      float64   `json:"capacityTolerancePercent"`
	MaxSuggestions                int       `json:"maxSuggestions"`
	MinimumScore                  float64   `json:"minimumScore"`
	DefaultResponseTimeHours      float64   `json:"defaultResponseTimeHours"`
	UrgentResponseTimeHours       float64   `json:"urgentResponseTimeHours"`
	AutoApprovalEnabled           bool      `json:"autoApprovalEnabled"`
	AutoApprovalThresholdHours    float64   `json:"autoApprovalThresholdHours"`
	AutoApprovalOnlyForEquivalent bool      `json:"autoApprovalOnlyForEquivalent"`
	EscalateToSupervisor          bool      `json:"escalateToSupervisor"`
	RejectionPenaltyPoints        int       `json:"rejectionPenaltyPoints"`
	MaxRejectionsBeforePenalty    int       `json:"maxRejectionsBeforePenalty"`
	WeightCapacity                float64   `json:"weightCapacity"`
	WeightFeatures                float64   `json:"weightFeatures"`
	WeightLocation                float64   `json:"weightLocation"`
	WeightAvailability            float64   `json:"weightAvailability"`
	ExactMatchThreshold           float64   `json:"exactMatchThreshold"`
	TypeMatchThreshold            float64   `json:"typeMatchThreshold"`
	Active                        bool      `json:"active"`
	CreatedAt                     time.Time `json:"createdAt"`
	UpdatedAt                     time.Time `json:"updatedAt"`
}

func FromPolicyView(rm *queries.PolicyView) *PolicyResponse {
	resp := &PolicyResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

// FromPolicyEntity flattens the aggregate for command responses.
func FromPolicyEntity(cfg *policy.Configuration) *PolicyResponse {
	s := cfg.Settings()
	return &PolicyResponse{
		ID:                            cfg.ID(),
		ProgramID:                     cfg.ProgramID(),
		Name:                          cfg.Name(),
		CapacityTolerancePercent:      s.CapacityTolerancePercent,
		MaxSuggestions:                s.MaxSuggestions,
		MinimumScore:                  s.MinimumScore,
		DefaultResponseTimeHours:      s.DefaultResponseTimeHours,
		UrgentResponseTimeHours:       s.UrgentResponseTimeHours,
		AutoApprovalEnabled:           s.AutoApprovalEnabled,
		AutoApprovalThresholdHours:    s.AutoApprovalThresholdHours,
		AutoApprovalOnlyForEquivalent: s.AutoApprovalOnlyForEquivalent,
		EscalateToSupervisor:          s.EscalateToSupervisor,
		RejectionPenaltyPoints:        s.RejectionPenaltyPoints,
		MaxRejectionsBeforePenalty:    s.MaxRejectionsBeforePenalty,
		WeightCapacity:                s.Weights.Capacity,
		WeightFeatures:                s.Weights.Features,
		WeightLocation:                s.Weights.Location,
		WeightAvailability:            s.Weights.Availability,
		ExactMatchThreshold:           s.MatchThresholds.ExactMatch,
		TypeMatchThreshold:            s.MatchThresholds.TypeMatch,
		Active:                        cfg.Active(),
		CreatedAt:                     cfg.CreatedAt(),
		UpdatedAt:                     cfg.UpdatedAt(),
	}
}
