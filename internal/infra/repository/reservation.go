package repository

import (
	"context"

	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"
	"campus-reassign/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) GetReservation(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	var snap commands.ReservationSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, resource_id, user_id, program_id, start_time, end_time
		FROM reservations
		WHERE id = $1 AND status <> 'CANCELLED'`, id,
	).Scan(&snap.ID, &snap.ResourceID, &snap.UserID, &snap.ProgramID, &snap.Start, &snap.End)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &snap, nil
}

func (r *ReservationRepository) UpdateReservationResource(ctx context.Context, reservationID, newResourceID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET resource_id = $1, updated_at = now()
		WHERE id = $2 AND status <> 'CANCELLED'`,
		newResourceID, reservationID)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("target resource missing", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to move reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) CancelReservation(ctx context.Context, reservationID uuid.UUID, reason string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET status = 'CANCELLED', cancel_reason = $2, updated_at = now()
		WHERE id = $1 AND status <> 'CANCELLED'`,
		reservationID, reason)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
