package policy

import "campus-reassign/internal/domain/similarity"

// Preset names accepted by the policy creation endpoint.
const (
	PresetDefault = "default"
	PresetLenient = "lenient"
	PresetStrict  = "strict"
)

// DefaultSettings is the documented starting point for a new program.
func DefaultSettings() Settings {
	return Settings{
		CapacityTolerancePercent:      20,
		MaxSuggestions:                5,
		MinimumScore:                  60,
		DefaultResponseTimeHours:      24,
		UrgentResponseTimeHours:       4,
		AutoApprovalEnabled:           true,
		AutoApprovalThresholdHours:    12,
		AutoApprovalOnlyForEquivalent: true,
		EscalateToSupervisor:          true,
		RejectionPenaltyPoints:        5,
		MaxRejectionsBeforePenalty:    3,
		Weights:                       similarity.DefaultWeights(),
		MatchThresholds:               similarity.DefaultThresholds(),
	}
}

// LenientSettings tolerates weaker matches and gives users longer to answer,
// with no rejection penalties.
func LenientSettings() Settings {
	s := DefaultSettings()
	s.CapacityTolerancePercent = 40
	s.MaxSuggestions = 10
	s.MinimumScore = 40
	s.DefaultResponseTimeHours = 72
	s.UrgentResponseTimeHours = 12
	s.AutoApprovalOnlyForEquivalent = false
	s.RejectionPenaltyPoints = 0
	s.MaxRejectionsBeforePenalty = 10
	return s
}

// StrictSettings demands closer matches, shorter deadlines and punishes
// repeated rejections sooner and harder.
func StrictSettings() Settings {
	s := DefaultSettings()
	s.CapacityTolerancePercent = 10
	s.MaxSuggestions = 3
	s.MinimumScore = 75
	s.DefaultResponseTimeHours = 12
	s.UrgentResponseTimeHours = 2
	s.AutoApprovalThresholdHours = 24
	s.RejectionPenaltyPoints = 10
	s.MaxRejectionsBeforePenalty = 2
	return s
}

// SettingsForPreset maps a preset name to its settings.
func SettingsForPreset(preset string) (Settings, bool) {
	switch preset {
	case PresetDefault, "":
		return DefaultSettings(), true
	case PresetLenient:
		return LenientSettings(), true
	case PresetStrict:
		return StrictSettings(), true
	default:
		return Settings{}, false
	}
}
