package repository

import (
	"context"
	"time"

	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"
	"campus-reassign/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PenaltyRepository struct {
	db *pgxpool.Pool
}

func NewPenaltyRepository(db *pgxpool.Pool) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

// LastPenalizedCount returns the highest rejection count already charged for
// this user and program, zero when no penalty exists yet.
func (r *PenaltyRepository) LastPenalizedCount(ctx context.Context, userID, programID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(rejection_count), 0)
		FROM reassignment_penalties
		WHERE user_id = $1 AND program_id = $2`,
		userID, programID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read penalty ledger", err)
	}
	return count, nil
}

func (r *PenaltyRepository) Record(ctx context.Context, rec commands.PenaltyRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reassignment_penalties (user_id, program_id, rejection_count, points_deducted, restricted_until)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.UserID, rec.ProgramID, rec.RejectionCount, rec.PointsDeducted, rec.RestrictedUntil)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("penalty already recorded for this rejection count", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to record penalty", err)
	}
	return nil
}

// RestrictedUntil returns the latest restriction window end recorded for
// the user in this program, nil when the ledger has no entry.
func (r *PenaltyRepository) RestrictedUntil(ctx context.Context, userID, programID uuid.UUID) (*time.Time, error) {
	var until pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		SELECT MAX(restricted_until)
		FROM reassignment_penalties
		WHERE user_id = $1 AND program_id = $2`,
		userID, programID).Scan(&until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read restriction window", err)
	}
	if !until.Valid {
		return nil, nil
	}
	t := until.Time
	return &t, nil
}

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetPriority reads the user's booking priority within a program. A user
// without a profile row gets the default priority.
func (r *ProfileRepository) GetPriority(ctx context.Context, userID, programID uuid.UUID) (int, error) {
	var priority int
	err := r.db.QueryRow(ctx, `
		SELECT priority FROM user_program_profiles
		WHERE user_id = $1 AND program_id = $2`,
		userID, programID).Scan(&priority)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return defaultProfilePriority, nil
		}
		return 0, infra.WrapRepoErr("failed to read user profile", err)
	}
	return priority, nil
}

const defaultProfilePriority = 50

func (r *ProfileRepository) UpdatePriority(ctx context.Context, userID, programID uuid.UUID, priority int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_program_profiles (user_id, program_id, priority, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, program_id)
		DO UPDATE SET priority = EXCLUDED.priority, updated_at = now()`,
		userID, programID, priority)
	if err != nil {
		return infra.WrapRepoErr("failed to update user priority", err)
	}
	return nil
}
