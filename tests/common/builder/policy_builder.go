//go:build unit || e2e

package builder

import (
	"time"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
)

type PolicyBuilder struct {
	ProgramID uuid.UUID
	Name      string
	Settings  policy.Settings
	Now       time.Time
}

func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{
		ProgramID: uuid.New(),
		Name:      "CS Department Policy",
		Settings:  policy.DefaultSettings(),
		Now:       time.Now(),
	}
}

func (b *PolicyBuilder) With(mutate func(*PolicyBuilder)) *PolicyBuilder {
	mutate(b)
	return b
}

func (b *PolicyBuilder) BuildDomain() (*policy.Configuration, error) {
	return policy.NewConfiguration(b.ProgramID, b.Name, b.Settings, b.Now)
}

func (b *PolicyBuilder) BuildActive() *policy.Configuration {
	cfg, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (b *PolicyBuilder) BuildView() *queries.PolicyView {
	s := b.Settings
	return &queries.PolicyView{
		ID:                            uuid.New(),
		ProgramID:                     b.ProgramID,
		Name:                          b.Name,
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
		Active:                        true,
		CreatedAt:                     b.Now,
		UpdatedAt:                     b.Now,
	}
}

func (b *PolicyBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"program_id": b.ProgramID.String(),
		"name":       b.Name,
		"preset":     policy.PresetDefault,
	}
}
