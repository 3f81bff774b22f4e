package readstore

import (
	"context"
	"encoding/json"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"
	"campus-reassign/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PolicyReadStore struct {
	db *pgxpool.Pool
}

func NewPolicyReadStore(db *pgxpool.Pool) *PolicyReadStore {
	return &PolicyReadStore{db: db}
}

func (r *PolicyReadStore) FindActiveByProgram(ctx context.Context, programID uuid.UUID) (*queries.PolicyView, error) {
	var (
		view         queries.PolicyView
		settingsJSON []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, program_id, name, settings, active, created_at, updated_at
		FROM reassignment_policies
		WHERE program_id = $1 AND active`, programID,
	).Scan(&view.ID, &view.ProgramID, &view.Name, &settingsJSON, &view.Active, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active policy for program", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active policy", err)
	}

	var settings policy.Settings
	if err := json.Unmarshal(settingsJSON, &settings); err != nil {
		return nil, infra.WrapRepoErr("failed to decode policy settings", err)
	}
	flattenSettings(&view, settings)
	return &view, nil
}

func flattenSettings(view *queries.PolicyView, s policy.Settings) {
	view.CapacityTolerancePercent = s.CapacityTolerancePercent
	view.MaxSuggestions = s.MaxSuggestions
	view.MinimumScore = s.MinimumScore
	view.DefaultResponseTimeHours = s.DefaultResponseTimeHours
	view.UrgentResponseTimeHours = s.UrgentResponseTimeHours
	view.AutoApprovalEnabled = s.AutoApprovalEnabled
	view.AutoApprovalThresholdHours = s.AutoApprovalThresholdHours
	view.AutoApprovalOnlyForEquivalent = s.AutoApprovalOnlyForEquivalent
	view.EscalateToSupervisor = s.EscalateToSupervisor
	view.RejectionPenaltyPoints = s.RejectionPenaltyPoints
	view.MaxRejectionsBeforePenalty = s.MaxRejectionsBeforePenalty
	view.WeightCapacity = s.Weights.Capacity
	view.WeightFeatures = s.Weights.Features
	view.WeightLocation = s.Weights.Location
	view.WeightAvailability = s.Weights.Availability
	view.ExactMatchThreshold = s.MatchThresholds.ExactMatch
	view.TypeMatchThreshold = s.MatchThresholds.TypeMatch
}
