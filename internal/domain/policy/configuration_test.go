//go:build unit

package policy_test

import (
	"testing"
	"time"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/domain/similarity"
	"campus-reassign/internal/pkg/errs"
	"campus-reassign/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PolicyBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPolicyBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			cfg, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}
		})
	}
}

func TestConfiguration(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPolicyBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.Active())
		assert.Equal(t, int32(1), actual.LockNo())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		if diff := cmp.Diff(policy.DefaultSettings(), actual.Settings()); diff != "" {
			t.Errorf("Settings mismatch (-expected +actual):\n%s", diff)
		}
	})

	t.Run("range validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "capacity tolerance above range",
				mutate: func(b *builder.PolicyBuilder) { b.Settings.CapacityTolerancePercent = 101 },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "zero max suggestions",
				mutate: func(b *builder.PolicyBuilder) { b.Settings.MaxSuggestions = 0 },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "max suggestions upper bound",
				mutate: func(b *builder.PolicyBuilder) { b.Settings.MaxSuggestions = 20 },
			},
			{
				name:   "minimum score above range",
				mutate: func(b *builder.PolicyBuilder) { b.Settings.MinimumScore = 100.5 },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "default response time below one hour",
				mutate: func(b *builder.PolicyBuilder) { b.Settings.DefaultResponseTimeHours = 0.5 },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name: "urgent response time exceeds default",
				mutate: func(b *builder.PolicyBuilder) {
					b.Settings.DefaultResponseTimeHours = 4
					b.Settings.UrgentResponseTimeHours = 8
				},
				errIs: errs.ErrDomainValidation,
			},
			{
				name:   "penalty points above range",
				mutate: func(b *builder.PolicyBuilder) { b.Settings.RejectionPenaltyPoints = 51 },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "weights not summing to one",
				mutate: func(b *builder.PolicyBuilder) { b.Settings.Weights = similarity.Weights{Capacity: 0.5, Features: 0.6} },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name: "type match threshold above exact match threshold",
				mutate: func(b *builder.PolicyBuilder) {
					b.Settings.MatchThresholds = similarity.Thresholds{ExactMatch: 60, TypeMatch: 70}
				},
				errIs: errs.ErrDomainValidation,
			},
		})
	})

	t.Run("validation collects every violation", func(t *testing.T) {
		b := builder.NewPolicyBuilder()
		b.Settings.CapacityTolerancePercent = -1
		b.Settings.MaxSuggestions = 0
		b.Settings.RejectionPenaltyPoints = 99

		_, err := b.BuildDomain()
		require.Error(t, err)

		ve, ok := errs.AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, ve.Violations, 3)
	})
}

func TestApplyUpdate(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Minute)

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		cfg := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) { b.Now = now }).BuildActive()

		newScore := 70.0
		err := cfg.ApplyUpdate(policy.UpdateParams{MinimumScore: &newScore}, later)
		require.NoError(t, err)

		assert.Equal(t, 70.0, cfg.Settings().MinimumScore)
		assert.Equal(t, policy.DefaultSettings().MaxSuggestions, cfg.Settings().MaxSuggestions)
		assert.Equal(t, later, cfg.UpdatedAt())
	})

	t.Run("invalid merged result leaves configuration untouched", func(t *testing.T) {
		cfg := builder.NewPolicyBuilder().BuildActive()
		before := cfg.Settings()

		badScore := 150.0
		err := cfg.ApplyUpdate(policy.UpdateParams{MinimumScore: &badScore}, later)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
		if diff := cmp.Diff(before, cfg.Settings()); diff != "" {
			t.Errorf("Settings mutated by failed update (-before +after):\n%s", diff)
		}
	})

	t.Run("cross-field constraint re-checked on merged values", func(t *testing.T) {
		cfg := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
			b.Settings.DefaultResponseTimeHours = 24
			b.Settings.UrgentResponseTimeHours = 4
		}).BuildActive()

		// Valid on its own, invalid against the standing urgent window of 4h
		newDefault := 2.0
		err := cfg.ApplyUpdate(policy.UpdateParams{DefaultResponseTimeHours: &newDefault}, later)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("deactivated configuration rejects updates", func(t *testing.T) {
		cfg := builder.NewPolicyBuilder().BuildActive()
		cfg.Deactivate(now)

		name := "renamed"
		err := cfg.ApplyUpdate(policy.UpdateParams{Name: &name}, later)
		assert.ErrorIs(t, err, errs.ErrPolicyDeactivated)
	})
}

func TestResponseWindow(t *testing.T) {
	cfg := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
		b.Settings.DefaultResponseTimeHours = 24
		b.Settings.UrgentResponseTimeHours = 1.5
	}).BuildActive()

	assert.Equal(t, 24*time.Hour, cfg.ResponseWindow(false))
	assert.Equal(t, 90*time.Minute, cfg.ResponseWindow(true))
}

func TestShouldAutoApprove(t *testing.T) {
	cases := []struct {
		name            string
		mutate          func(*builder.PolicyBuilder)
		hoursUntilEvent float64
		isEquivalent    bool
		expected        bool
	}{
		{
			name:            "inside window with equivalent resource",
			hoursUntilEvent: 6,
			isEquivalent:    true,
			expected:        true,
		},
		{
			name:            "event too far away",
			hoursUntilEvent: 13,
			isEquivalent:    true,
			expected:        false,
		},
		{
			name:            "event already started",
			hoursUntilEvent: -1,
			isEquivalent:    true,
			expected:        false,
		},
		{
			name:            "non-equivalent resource blocked by default",
			hoursUntilEvent: 6,
			isEquivalent:    false,
			expected:        false,
		},
		{
			name: "non-equivalent resource allowed when policy relaxed",
			mutate: func(b *builder.PolicyBuilder) {
				b.Settings.AutoApprovalOnlyForEquivalent = false
			},
			hoursUntilEvent: 6,
			isEquivalent:    false,
			expected:        true,
		},
		{
			name: "auto approval disabled",
			mutate: func(b *builder.PolicyBuilder) {
				b.Settings.AutoApprovalEnabled = false
			},
			hoursUntilEvent: 6,
			isEquivalent:    true,
			expected:        false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPolicyBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			cfg := b.BuildActive()
			assert.Equal(t, tc.expected, cfg.ShouldAutoApprove(tc.hoursUntilEvent, tc.isEquivalent))
		})
	}
}

func TestShouldApplyPenaltyForRejection(t *testing.T) {
	cfg := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
		b.Settings.RejectionPenaltyPoints = 5
		b.Settings.MaxRejectionsBeforePenalty = 3
	}).BuildActive()

	assert.False(t, cfg.ShouldApplyPenaltyForRejection(2))
	assert.True(t, cfg.ShouldApplyPenaltyForRejection(3))
	assert.True(t, cfg.ShouldApplyPenaltyForRejection(4))

	noPenalty := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
		b.Settings.RejectionPenaltyPoints = 0
	}).BuildActive()
	assert.False(t, noPenalty.ShouldApplyPenaltyForRejection(10))
}

func TestPresets(t *testing.T) {
	t.Run("every preset validates", func(t *testing.T) {
		for _, name := range []string{policy.PresetDefault, policy.PresetLenient, policy.PresetStrict} {
			settings, ok := policy.SettingsForPreset(name)
			require.True(t, ok, name)
			assert.Empty(t, settings.Validate(), name)
		}
	})

	t.Run("empty preset falls back to default", func(t *testing.T) {
		settings, ok := policy.SettingsForPreset("")
		require.True(t, ok)
		assert.Equal(t, policy.DefaultSettings(), settings)
	})

	t.Run("unknown preset rejected", func(t *testing.T) {
		_, ok := policy.SettingsForPreset("draconian")
		assert.False(t, ok)
	})

	t.Run("lenient disables penalties", func(t *testing.T) {
		assert.Equal(t, 0, policy.LenientSettings().RejectionPenaltyPoints)
	})

	t.Run("strict penalizes sooner than default", func(t *testing.T) {
		assert.Less(t, policy.StrictSettings().MaxRejectionsBeforePenalty, policy.DefaultSettings().MaxRejectionsBeforePenalty)
	})
}
