package repository

import (
	"context"

	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository implements the notifier port with an outbox table.
// Delivery itself happens out of band; enqueueing keeps the workflow
// transition and the notification in the same database.
type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Notify(ctx context.Context, userID uuid.UUID, message string, channels []string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (recipient_id, message, channels)
		VALUES ($1, $2, $3)`,
		userID, message, channels)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification", err)
	}
	return nil
}

// NotifyProgramSupervisor resolves the program's supervisor and enqueues for
// them. Supervisors always get the email channel.
func (r *NotificationRepository) NotifyProgramSupervisor(ctx context.Context, programID uuid.UUID, message string) error {
	var supervisorID uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT supervisor_id FROM programs WHERE id = $1`, programID,
	).Scan(&supervisorID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("program not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to resolve program supervisor", err)
	}

	return r.Notify(ctx, supervisorID, message, []string{"email"})
}
