//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/pkg/clock"
	"campus-reassign/internal/pkg/errs"
	"campus-reassign/internal/usecase/commands"
	"campus-reassign/tests/common/builder"
	commandsmock "campus-reassign/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPolicyFixture(t *testing.T, now time.Time) (*commandsmock.MockPolicyStore, commands.PolicyCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockPolicyStore(ctrl)
	return store, commands.NewPolicyCommands(store, clock.NewMockClock(now))
}

func TestCreatePolicy(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	programID := uuid.New()

	t.Run("defaults when no preset given", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		cfg, err := uc.CreatePolicy(ctx, commands.CreatePolicyParams{
			ProgramID: programID,
			Name:      "CS Department Policy",
		})
		require.NoError(t, err)
		assert.Equal(t, policy.DefaultSettings(), cfg.Settings())
		assert.True(t, cfg.Active())
		assert.Equal(t, now, cfg.CreatedAt())
	})

	t.Run("named preset", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		cfg, err := uc.CreatePolicy(ctx, commands.CreatePolicyParams{
			ProgramID: programID,
			Name:      "Library Policy",
			Preset:    policy.PresetLenient,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Settings().RejectionPenaltyPoints)
	})

	t.Run("explicit settings override the preset", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		custom := policy.DefaultSettings()
		custom.MaxSuggestions = 10

		cfg, err := uc.CreatePolicy(ctx, commands.CreatePolicyParams{
			ProgramID: programID,
			Name:      "Lab Policy",
			Preset:    policy.PresetStrict,
			Settings:  &custom,
		})
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Settings().MaxSuggestions)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, uc := newPolicyFixture(t, now)

		_, err := uc.CreatePolicy(ctx, commands.CreatePolicyParams{
			ProgramID: programID,
			Name:      "Bad Policy",
			Preset:    "draconian",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)

		ve, ok := errs.AsValidationError(err)
		require.True(t, ok)
		require.Len(t, ve.Violations, 1)
		assert.Equal(t, "preset", ve.Violations[0].Field)
	})

	t.Run("second active policy for the same program", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateErr())

		_, err := uc.CreatePolicy(ctx, commands.CreatePolicyParams{
			ProgramID: programID,
			Name:      "CS Department Policy",
		})
		assert.ErrorIs(t, err, errs.ErrDuplicatePolicy)
	})
}

func TestUpdatePolicy(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("partial update persists with the loaded lock number", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now.Add(time.Hour))
		cfg := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
			b.Now = now
		}).BuildActive()
		id := cfg.ID()

		minScore := 70.0
		store.EXPECT().FindByID(gomock.Any(), id).Return(cfg, nil)
		store.EXPECT().Update(gomock.Any(), cfg, int32(1)).Return(nil)

		updated, err := uc.UpdatePolicy(ctx, id, policy.UpdateParams{MinimumScore: &minScore})
		require.NoError(t, err)
		assert.Equal(t, 70.0, updated.Settings().MinimumScore)
		assert.Equal(t, now.Add(time.Hour), updated.UpdatedAt())
	})

	t.Run("invalid update never reaches the store", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		cfg := builder.NewPolicyBuilder().BuildActive()

		minScore := 150.0
		store.EXPECT().FindByID(gomock.Any(), cfg.ID()).Return(cfg, nil)

		_, err := uc.UpdatePolicy(ctx, cfg.ID(), policy.UpdateParams{MinimumScore: &minScore})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("lost update race", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		cfg := builder.NewPolicyBuilder().BuildActive()

		maxSuggestions := 3
		store.EXPECT().FindByID(gomock.Any(), cfg.ID()).Return(cfg, nil)
		store.EXPECT().Update(gomock.Any(), cfg, gomock.Any()).Return(conflictErr())

		_, err := uc.UpdatePolicy(ctx, cfg.ID(), policy.UpdateParams{MaxSuggestions: &maxSuggestions})
		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	})

	t.Run("unknown policy", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := uc.UpdatePolicy(ctx, id, policy.UpdateParams{})
		assert.ErrorIs(t, err, errs.ErrPolicyNotFound)
	})
}

func TestDeactivatePolicy(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("deactivates and persists", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		cfg := builder.NewPolicyBuilder().BuildActive()

		store.EXPECT().FindByID(gomock.Any(), cfg.ID()).Return(cfg, nil)
		store.EXPECT().Update(gomock.Any(), cfg, int32(1)).Return(nil)

		require.NoError(t, uc.DeactivatePolicy(ctx, cfg.ID()))
		assert.False(t, cfg.Active())
	})

	t.Run("unknown policy", func(t *testing.T) {
		store, uc := newPolicyFixture(t, now)
		id := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		err := uc.DeactivatePolicy(ctx, id)
		assert.ErrorIs(t, err, errs.ErrPolicyNotFound)
	})
}
