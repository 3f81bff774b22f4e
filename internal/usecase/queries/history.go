package queries

import (
	"context"
	"math"

	"campus-reassign/internal/pkg/errs"

	"github.com/google/uuid"
)

// Effectiveness weighting: acceptance dominates, then how much work
// auto-approval removed, then how rarely penalties were needed, then
// responsiveness. Administrators consume the single 0-100 figure when
// tuning a program's policy.
const (
	effWeightAcceptance     = 0.40
	effWeightAutoApproval   = 0.25
	effWeightPenaltyAbsence = 0.20
	effWeightResponsiveness = 0.15
)

type historyQueriesImpl struct {
	store HistoryReadStore
}

func NewHistoryQueries(store HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{store: store}
}

func (q *historyQueriesImpl) AcceptanceRate(ctx context.Context, filters HistoryFilters) (*AcceptanceRateStats, error) {
	total, accepted, err := q.store.CountByOutcome(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	stats := &AcceptanceRateStats{Total: total, Accepted: accepted}
	if total > 0 {
		stats.Rate = round2(float64(accepted) / float64(total))
	}
	return stats, nil
}

func (q *historyQueriesImpl) TopAlternatives(ctx context.Context, filters HistoryFilters, limit int32) ([]*AlternativeUsage, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	usage, err := q.store.GroupByNewResource(ctx, filters, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return usage, nil
}

func (q *historyQueriesImpl) PolicyEffectiveness(ctx context.Context, programID uuid.UUID) (*PolicyEffectiveness, error) {
	inputs, err := q.store.EffectivenessInputs(ctx, programID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ComputeEffectiveness(programID, inputs), nil
}

func (q *historyQueriesImpl) List(ctx context.Context, filters HistoryFilters, limit int32) ([]*HistoryRecordView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	records, err := q.store.Find(ctx, filters, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return records, nil
}

// ComputeEffectiveness folds raw aggregates into the 0-100 administrator
// figure. Responsiveness decays with average response time: answering within
// an hour is near 1.0, a full day roughly halves it.
func ComputeEffectiveness(programID uuid.UUID, in *EffectivenessInputs) *PolicyEffectiveness {
	eff := &PolicyEffectiveness{ProgramID: programID, AvgResponseHours: round2(in.AvgResponseHours)}
	if in.Total == 0 {
		return eff
	}

	eff.AcceptanceRate = float64(in.Accepted) / float64(in.Total)
	eff.AutoApprovalRate = float64(in.AutoApproved) / float64(in.Total)
	eff.PenaltyRate = float64(in.Penalized) / float64(in.Total)

	responsiveness := 1.0 / (1.0 + in.AvgResponseHours/24.0)

	score := effWeightAcceptance*eff.AcceptanceRate +
		effWeightAutoApproval*eff.AutoApprovalRate +
		effWeightPenaltyAbsence*(1.0-eff.PenaltyRate) +
		effWeightResponsiveness*responsiveness

	eff.Score = round2(score * 100)
	eff.AcceptanceRate = round2(eff.AcceptanceRate)
	eff.AutoApprovalRate = round2(eff.AutoApprovalRate)
	eff.PenaltyRate = round2(eff.PenaltyRate)
	return eff
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
