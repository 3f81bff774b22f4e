package request

import (
	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/domain/similarity"

	"github.com/google/uuid"
)

type PolicySettingsPayload struct {
	CapacityTolerancePercent      float64  `json:"capacity_tolerance_percent"`
	MaxSuggestions                int      `json:"max_suggestions"`
	MinimumScore                  float64  `json:"minimum_score"`
	DefaultResponseTimeHours      float64  `json:"default_response_time_hours"`
	UrgentResponseTimeHours       float64  `json:"urgent_response_time_hours"`
	AutoApprovalEnabled           bool     `json:"auto_approval_enabled"`
	AutoApprovalThresholdHours    float64  `json:"auto_approval_threshold_hours"`
	AutoApprovalOnlyForEquivalent bool     `json:"auto_approval_only_for_equivalent"`
	EscalateToSupervisor          bool     `json:"escalate_to_supervisor"`
	RejectionPenaltyPoints        int      `json:"rejection_penalty_points"`
	MaxRejectionsBeforePenalty    int      `json:"max_rejections_before_penalty"`
	WeightCapacity                *float64 `json:"weight_capacity,omitempty"`
	WeightFeatures                *float64 `json:"weight_features,omitempty"`
	WeightLocation                *float64 `json:"weight_location,omitempty"`
	WeightAvailability            *float64 `json:"weight_availability,omitempty"`
	ExactMatchThreshold           *float64 `json:"exact_match_threshold,omitempty"`
	TypeMatchThreshold            *float64 `json:"type_match_threshold,omitempty"`
}

func (p PolicySettingsPayload) ToSettings() policy.Settings {
	s := policy.Settings{
		CapacityTolerancePercent:      p.CapacityTolerancePercent,
		MaxSuggestions:                p.MaxSuggestions,
		MinimumScore:                  p.MinimumScore,
		DefaultResponseTimeHours:      p.DefaultResponseTimeHours,
		UrgentResponseTimeHours:       p.UrgentResponseTimeHours,
		AutoApprovalEnabled:           p.AutoApprovalEnabled,
		AutoApprovalThresholdHours:    p.AutoApprovalThresholdHours,
		AutoApprovalOnlyForEquivalent: p.AutoApprovalOnlyForEquivalent,
		EscalateToSupervisor:          p.EscalateToSupervisor,
		RejectionPenaltyPoints:        p.RejectionPenaltyPoints,
		MaxRejectionsBeforePenalty:    p.MaxRejectionsBeforePenalty,
		Weights:                       similarity.DefaultWeights(),
		MatchThresholds:               similarity.DefaultThresholds(),
	}
	if p.WeightCapacity != nil {
		s.Weights.Capacity = *p.WeightCapacity
	}
	if p.WeightFeatures != nil {
		s.Weights.Features = *p.WeightFeatures
	}
	if p.WeightLocation != nil {
		s.Weights.Location = *p.WeightLocation
	}
	if p.WeightAvailability != nil {
		s.Weights.Availability = *p.WeightAvailability
	}
	if p.ExactMatchThreshold != nil {
		s.MatchThresholds.ExactMatch = *p.ExactMatchThreshold
	}
	if p.TypeMatchThreshold != nil {
		s.MatchThresholds.TypeMatch = *p.TypeMatchThreshold
	}
	return s
}

type CreatePolicyRequest struct {
	ProgramID uuid.UUID              `json:"program_id" binding:"required"`
	Name      string                 `json:"name" binding:"required"`
	Preset    string                 `json:"preset,omitempty"`
	Settings  *PolicySettingsPayload `json:"settings,omitempty"`
}

type UpdatePolicyRequest struct {
	Name                          *string  `json:"name,omitempty"`
	CapacityTolerancePercent      *float64 `json:"capacity_tolerance_percent,omitempty"`
	MaxSuggestions                *int     `json:"max_suggestions,omitempty"`
	MinimumScore                  *float64 `json:"minimum_score,omitempty"`
	DefaultResponseTimeHours      *float64 `json:"default_response_time_hours,omitempty"`
	UrgentResponseTimeHours       *float64 `json:"urgent_response_time_hours,omitempty"`
	AutoApprovalEnabled           *bool    `json:"auto_approval_enabled,omitempty"`
	AutoApprovalThresholdHours    *float64 `json:"auto_approval_threshold_hours,omitempty"`
	AutoApprovalOnlyForEquivalent *bool    `json:"auto_approval_only_for_equivalent,omitempty"`
	EscalateToSupervisor          *bool    `json:"escalate_to_supervisor,omitempty"`
	RejectionPenaltyPoints        *int     `json:"rejection_penalty_points,omitempty"`
	MaxRejectionsBeforePenalty    *int     `json:"max_rejections_before_penalty,omitempty"`
}

func (r UpdatePolicyRequest) ToUpdateParams() policy.UpdateParams {
	return policy.UpdateParams{
		Name:                          r.Name,
		CapacityTolerancePercent:      r.CapacityTolerancePercent,
		MaxSuggestions:                r.MaxSuggestions,
		MinimumScore:                  r.MinimumScore,
		DefaultResponseTimeHours:      r.DefaultResponseTimeHours,
		UrgentResponseTimeHours:       r.UrgentResponseTimeHours,
		AutoApprovalEnabled:           r.AutoApprovalEnabled,
		AutoApprovalThresholdHours:    r.AutoApprovalThresholdHours,
		AutoApprovalOnlyForEquivalent: r.AutoApprovalOnlyForEquivalent,
		EscalateToSupervisor:          r.EscalateToSupervisor,
		RejectionPenaltyPoints:        r.RejectionPenaltyPoints,
		MaxRejectionsBeforePenalty:    r.MaxRejectionsBeforePenalty,
	}
}
