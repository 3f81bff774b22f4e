package policy

import (
	"fmt"
	"math"
	"time"

	"campus-reassign/internal/domain/similarity"
	"campus-reassign/internal/pkg/errs"
	"campus-reassign/internal/pkg/patch"

	"github.com/google/uuid"
)

// Settings are the per-program tunables that gate the reassignment workflow.
// Every numeric field has a closed range, enforced at construction and on
// every update.
type Settings struct {
	CapacityTolerancePercent      float64               `json:"capacityTolerancePercent"`
	MaxSuggestions                int                   `json:"maxSuggestions"`
	MinimumScore                  float64               `json:"minimumScore"`
	DefaultResponseTimeHours      float64               `json:"defaultResponseTimeHours"`
	UrgentResponseTimeHours       float64               `json:"urgentResponseTimeHours"`
	AutoApprovalEnabled           bool                  `json:"autoApprovalEnabled"`
	AutoApprovalThresholdHours    float64               `json:"autoApprovalThresholdHours"`
	AutoApprovalOnlyForEquivalent bool                  `json:"autoApprovalOnlyForEquivalent"`
	EscalateToSupervisor          bool                  `json:"escalateToSupervisor"`
	RejectionPenaltyPoints        int                   `json:"rejectionPenaltyPoints"`
	MaxRejectionsBeforePenalty    int                   `json:"maxRejectionsBeforePenalty"`
	Weights                       similarity.Weights    `json:"weights"`
	MatchThresholds               similarity.Thresholds `json:"matchThresholds"`
}

// Validate checks every field against its range independently and collects
// all violations so callers can report every problem at once.
func (s Settings) Validate() []errs.FieldViolation {
	var v []errs.FieldViolation
	check := func(ok bool, field, msg string) {
		if !ok {
			v = append(v, errs.FieldViolation{Field: field, Message: msg})
		}
	}

	check(s.CapacityTolerancePercent >= 0 && s.CapacityTolerancePercent <= 100,
		"capacityTolerancePercent", "must be between 0 and 100")
	check(s.MaxSuggestions >= 1 && s.MaxSuggestions <= 20,
		"maxSuggestions", "must be between 1 and 20")
	check(s.MinimumScore >= 0 && s.MinimumScore <= 100,
		"minimumScore", "must be between 0 and 100")
	check(s.DefaultResponseTimeHours >= 1 && s.DefaultResponseTimeHours <= 168,
		"defaultResponseTimeHours", "must be between 1 and 168")
	check(s.UrgentResponseTimeHours >= 0.5 && s.UrgentResponseTimeHours <= 48,
		"urgentResponseTimeHours", "must be between 0.5 and 48")
	check(s.UrgentResponseTimeHours <= s.DefaultResponseTimeHours,
		"urgentResponseTimeHours", "must not exceed defaultResponseTimeHours")
	check(s.AutoApprovalThresholdHours >= 1 && s.AutoApprovalThresholdHours <= 72,
		"autoApprovalThresholdHours", "must be between 1 and 72")
	check(s.RejectionPenaltyPoints >= 0 && s.RejectionPenaltyPoints <= 50,
		"rejectionPenaltyPoints", "must be between 0 and 50")
	check(s.MaxRejectionsBeforePenalty >= 1 && s.MaxRejectionsBeforePenalty <= 10,
		"maxRejectionsBeforePenalty", "must be between 1 and 10")
	check(math.Abs(s.Weights.Sum()-1.0) < 1e-9,
		"weights", fmt.Sprintf("must sum to 1.0, got %.4f", s.Weights.Sum()))
	check(s.MatchThresholds.ExactMatch >= 0 && s.MatchThresholds.ExactMatch <= 100,
		"matchThresholds.exactMatch", "must be between 0 and 100")
	check(s.MatchThresholds.TypeMatch >= 0 && s.MatchThresholds.TypeMatch <= s.MatchThresholds.ExactMatch,
		"matchThresholds.typeMatch", "must be between 0 and exactMatch")

	return v
}

// Configuration is the active policy row for a program. At most one active
// configuration exists per program; deactivation replaces deletion while
// pending requests still reference it.
type Configuration struct {
	id        uuid.UUID
	programID uuid.UUID
	name      string
	settings  Settings
	active    bool
	lockNo    int32
	createdAt time.Time
	updatedAt time.Time
}

func NewConfiguration(programID uuid.UUID, name string, settings Settings, now time.Time) (*Configuration, error) {
	if violations := settings.Validate(); len(violations) > 0 {
		return nil, &errs.ValidationError{Violations: violations}
	}
	return &Configuration{
		id:        uuid.New(),
		programID: programID,
		name:      name,
		settings:  settings,
		active:    true,
		lockNo:    1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructConfiguration(
	id, programID uuid.UUID,
	name string,
	settings Settings,
	active bool,
	lockNo int32,
	createdAt, updatedAt time.Time,
) *Configuration {
	return &Configuration{
		id:        id,
		programID: programID,
		name:      name,
		settings:  settings,
		active:    active,
		lockNo:    lockNo,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Configuration) ID() uuid.UUID        { return c.id }
func (c *Configuration) ProgramID() uuid.UUID { return c.programID }
func (c *Configuration) Name() string         { return c.name }
func (c *Configuration) Settings() Settings   { return c.settings }
func (c *Configuration) Active() bool         { return c.active }
func (c *Configuration) LockNo() int32        { return c.lockNo }
func (c *Configuration) CreatedAt() time.Time { return c.createdAt }
func (c *Configuration) UpdatedAt() time.Time { return c.updatedAt }

// UpdateParams carries a partial update; nil fields keep the current value.
type UpdateParams struct {
	Name                          *string
	CapacityTolerancePercent      *float64
	MaxSuggestions                *int
	MinimumScore                  *float64
	DefaultResponseTimeHours      *float64
	UrgentResponseTimeHours       *float64
	AutoApprovalEnabled           *bool
	AutoApprovalThresholdHours    *float64
	AutoApprovalOnlyForEquivalent *bool
	EscalateToSupervisor          *bool
	RejectionPenaltyPoints        *int
	MaxRejectionsBeforePenalty    *int
	Weights                       *similarity.Weights
	MatchThresholds               *similarity.Thresholds
}

// ApplyUpdate merges params onto the current settings, validates the merged
// result as a whole, and only then commits. Cross-field constraints (urgent
// versus default response time) are re-checked on the resulting values, not
// just the delta, so a partial update can never leave an invalid row behind.
func (c *Configuration) ApplyUpdate(params UpdateParams, now time.Time) error {
	if !c.active {
		return errs.ErrPolicyDeactivated
	}

	merged := c.settings
	merged.CapacityTolerancePercent = patch.Coalesce(params.CapacityTolerancePercent, merged.CapacityTolerancePercent)
	merged.MaxSuggestions = patch.Coalesce(params.MaxSuggestions, merged.MaxSuggestions)
	merged.MinimumScore = patch.Coalesce(params.MinimumScore, merged.MinimumScore)
	merged.DefaultResponseTimeHours = patch.Coalesce(params.DefaultResponseTimeHours, merged.DefaultResponseTimeHours)
	merged.UrgentResponseTimeHours = patch.Coalesce(params.UrgentResponseTimeHours, merged.UrgentResponseTimeHours)
	merged.AutoApprovalEnabled = patch.Coalesce(params.AutoApprovalEnabled, merged.AutoApprovalEnabled)
	merged.AutoApprovalThresholdHours = patch.Coalesce(params.AutoApprovalThresholdHours, merged.AutoApprovalThresholdHours)
	merged.AutoApprovalOnlyForEquivalent = patch.Coalesce(params.AutoApprovalOnlyForEquivalent, merged.AutoApprovalOnlyForEquivalent)
	merged.EscalateToSupervisor = patch.Coalesce(params.EscalateToSupervisor, merged.EscalateToSupervisor)
	merged.RejectionPenaltyPoints = patch.Coalesce(params.RejectionPenaltyPoints, merged.RejectionPenaltyPoints)
	merged.MaxRejectionsBeforePenalty = patch.Coalesce(params.MaxRejectionsBeforePenalty, merged.MaxRejectionsBeforePenalty)
	merged.Weights = patch.Coalesce(params.Weights, merged.Weights)
	merged.MatchThresholds = patch.Coalesce(params.MatchThresholds, merged.MatchThresholds)

	if violations := merged.Validate(); len(violations) > 0 {
		return &errs.ValidationError{Violations: violations}
	}

	c.name = patch.Coalesce(params.Name, c.name)
	c.settings = merged
	c.updatedAt = now
	return nil
}

// Deactivate soft-deletes the configuration. Pending requests keep their
// snapshot of the deadlines already derived from it.
func (c *Configuration) Deactivate(now time.Time) {
	c.active = false
	c.updatedAt = now
}

// ResponseWindow returns how long the affected user has to respond.
func (c *Configuration) ResponseWindow(isUrgent bool) time.Duration {
	hours := c.settings.DefaultResponseTimeHours
	if isUrgent {
		hours = c.settings.UrgentResponseTimeHours
	}
	return time.Duration(hours * float64(time.Hour))
}

// ShouldAutoApprove reports whether a pending suggestion may be accepted
// without user interaction: auto-approval must be enabled, the event must be
// inside the approval window, and when the policy demands equivalence the
// candidate must be an EXACT or TYPE match.
func (c *Configuration) ShouldAutoApprove(hoursUntilEvent float64, isEquivalentResource bool) bool {
	if !c.settings.AutoApprovalEnabled {
		return false
	}
	if hoursUntilEvent < 0 || hoursUntilEvent > c.settings.AutoApprovalThresholdHours {
		return false
	}
	if c.settings.AutoApprovalOnlyForEquivalent && !isEquivalentResource {
		return false
	}
	return true
}

// ShouldApplyPenaltyForRejection becomes true exactly when the rejection
// count reaches the configured maximum, and never before.
func (c *Configuration) ShouldApplyPenaltyForRejection(rejectionCount int) bool {
	return c.settings.RejectionPenaltyPoints > 0 &&
		rejectionCount >= c.settings.MaxRejectionsBeforePenalty
}
