package repository

import (
	"context"
	"encoding/json"
	"time"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PolicyRepository struct {
	db *pgxpool.Pool
}

func NewPolicyRepository(db *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{db: db}
}

func (r *PolicyRepository) Create(ctx context.Context, cfg *policy.Configuration) error {
	settingsJSON, err := json.Marshal(cfg.Settings())
	if err != nil {
		return infra.WrapRepoErr("failed to encode policy settings", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO reassignment_policies (id, program_id, name, settings, active, lock_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cfg.ID(), cfg.ProgramID(), cfg.Name(), settingsJSON, cfg.Active(), cfg.LockNo(), cfg.CreatedAt(), cfg.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("program already has an active policy", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("referenced program missing", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create policy", err)
	}
	return nil
}

const selectPolicySQL = `
SELECT id, program_id, name, settings, active, lock_no, created_at, updated_at
FROM reassignment_policies
`

func (r *PolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*policy.Configuration, error) {
	cfg, err := r.scanPolicy(r.db.QueryRow(ctx, selectPolicySQL+"WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("policy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find policy", err)
	}
	return cfg, nil
}

func (r *PolicyRepository) FindActiveByProgram(ctx context.Context, programID uuid.UUID) (*policy.Configuration, error) {
	cfg, err := r.scanPolicy(r.db.QueryRow(ctx,
		selectPolicySQL+"WHERE program_id = $1 AND active", programID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active policy for program", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active policy", err)
	}
	return cfg, nil
}

func (r *PolicyRepository) Update(ctx context.Context, cfg *policy.Configuration, expectedLockNo int32) error {
	settingsJSON, err := json.Marshal(cfg.Settings())
	if err != nil {
		return infra.WrapRepoErr("failed to encode policy settings", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE reassignment_policies
		SET name = $1, settings = $2, active = $3, lock_no = lock_no + 1, updated_at = $4
		WHERE id = $5 AND lock_no = $6`,
		cfg.Name(), settingsJSON, cfg.Active(), cfg.UpdatedAt(), cfg.ID(), expectedLockNo,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update policy", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("policy was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *PolicyRepository) scanPolicy(row requestRow) (*policy.Configuration, error) {
	var (
		id, programID        uuid.UUID
		name                 string
		settingsJSON         []byte
		active               bool
		lockNo               int32
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &programID, &name, &settingsJSON, &active, &lockNo, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var settings policy.Settings
	if err := json.Unmarshal(settingsJSON, &settings); err != nil {
		return nil, err
	}

	return policy.ReconstructConfiguration(id, programID, name, settings, active, lockNo, createdAt, updatedAt), nil
}
