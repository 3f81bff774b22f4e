package commands

import (
	"context"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/clock"
	"campus-reassign/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreatePolicyParams struct {
	ProgramID uuid.UUID
	Name      string
	// Preset selects a predefined settings bundle; Settings overrides it
	// entirely when non-nil.
	Preset   string
	Settings *policy.Settings
}

type PolicyCommands interface {
	CreatePolicy(ctx context.Context, params CreatePolicyParams) (*policy.Configuration, error)
	UpdatePolicy(ctx context.Context, configID uuid.UUID, params policy.UpdateParams) (*policy.Configuration, error)
	DeactivatePolicy(ctx context.Context, configID uuid.UUID) error
}

type policyUseCaseImpl struct {
	policies PolicyStore
	clock    clock.Clock
}

func NewPolicyCommands(policies PolicyStore, clk clock.Clock) PolicyCommands {
	return &policyUseCaseImpl{policies: policies, clock: clk}
}

func (u *policyUseCaseImpl) CreatePolicy(ctx context.Context, params CreatePolicyParams) (*policy.Configuration, error) {
	settings := policy.DefaultSettings()
	if params.Preset != "" {
		preset, ok := policy.SettingsForPreset(params.Preset)
		if !ok {
			return nil, &errs.ValidationError{Violations: []errs.FieldViolation{
				{Field: "preset", Message: "unknown preset: " + params.Preset},
			}}
		}
		settings = preset
	}
	if params.Settings != nil {
		settings = *params.Settings
	}

	cfg, err := policy.NewConfiguration(params.ProgramID, params.Name, settings, u.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := u.policies.Create(ctx, cfg); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicatePolicy)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return cfg, nil
}

func (u *policyUseCaseImpl) UpdatePolicy(ctx context.Context, configID uuid.UUID, params policy.UpdateParams) (*policy.Configuration, error) {
	cfg, err := u.loadPolicy(ctx, configID)
	if err != nil {
		return nil, err
	}

	lockNo := cfg.LockNo()
	if err := cfg.ApplyUpdate(params, u.clock.Now()); err != nil {
		return nil, err
	}

	if err := u.policies.Update(ctx, cfg, lockNo); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrConcurrentUpdate)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return cfg, nil
}

func (u *policyUseCaseImpl) DeactivatePolicy(ctx context.Context, configID uuid.UUID) error {
	cfg, err := u.loadPolicy(ctx, configID)
	if err != nil {
		return err
	}

	lockNo := cfg.LockNo()
	cfg.Deactivate(u.clock.Now())

	if err := u.policies.Update(ctx, cfg, lockNo); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, errs.ErrConcurrentUpdate)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *policyUseCaseImpl) loadPolicy(ctx context.Context, configID uuid.UUID) (*policy.Configuration, error) {
	cfg, err := u.policies.FindByID(ctx, configID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPolicyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return cfg, nil
}
