package commands

import (
	"context"
	"time"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/domain/resource"
	"campus-reassign/internal/domain/similarity"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

// ReservationSnapshot is what the reservation store hands us about the
// booking being moved.
type ReservationSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	UserID     uuid.UUID
	ProgramID  uuid.UUID
	Start      time.Time
	End        time.Time
}

// HistoryEntry is one append to the reassignment history sink. Immutable
// once written.
type HistoryEntry struct {
	RequestID            uuid.UUID
	ProgramID            uuid.UUID
	RequesterID          uuid.UUID
	OriginalResourceID   uuid.UUID
	OriginalResourceName string
	NewResourceID        *uuid.UUID
	NewResourceName      *string
	Reason               reassignment.Reason
	Breakdown            *similarity.Breakdown
	Score                *float64
	Alternatives         []uuid.UUID
	Accepted             *bool
	AutoApproved         bool
	Feedback             *string
	NotifiedAt           *time.Time
	RespondedAt          *time.Time
}

// PenaltyRecord is one row of the rejection-penalty ledger. The ledger is
// keyed on (user, program, rejection count) so re-applying the same
// threshold crossing is a no-op.
type PenaltyRecord struct {
	UserID          uuid.UUID
	ProgramID       uuid.UUID
	RejectionCount  int
	PointsDeducted  int
	RestrictedUntil time.Time
}

// Collaborator contracts implemented by the surrounding application.

type ResourceDirectory interface {
	GetResource(ctx context.Context, id uuid.UUID) (*resource.Descriptor, error)
	GetCandidates(ctx context.Context, typ resource.Type, excludeID uuid.UUID, limit int32) ([]resource.Descriptor, error)
	CheckAvailability(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (bool, error)
}

type ReservationStore interface {
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	UpdateReservationResource(ctx context.Context, id, newResourceID uuid.UUID) error
	CancelReservation(ctx context.Context, id uuid.UUID, reason string) error
}

// RequestStore persists reassignment requests. Update takes the lock number
// the caller loaded; a mismatch means another transition won the race and
// surfaces as a conflict kind.
type RequestStore interface {
	Create(ctx context.Context, req *reassignment.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*reassignment.Request, error)
	FindPendingByReservation(ctx context.Context, reservationID uuid.UUID) (*reassignment.Request, error)
	Update(ctx context.Context, req *reassignment.Request, expectedLockNo int32) error
}

type PolicyStore interface {
	Create(ctx context.Context, cfg *policy.Configuration) error
	FindByID(ctx context.Context, id uuid.UUID) (*policy.Configuration, error)
	FindActiveByProgram(ctx context.Context, programID uuid.UUID) (*policy.Configuration, error)
	Update(ctx context.Context, cfg *policy.Configuration, expectedLockNo int32) error
}

type HistorySink interface {
	Append(ctx context.Context, entry HistoryEntry) error
}

type PenaltyLedger interface {
	// LastPenalizedCount returns the highest rejection count already
	// penalized for this user and program, 0 when none.
	LastPenalizedCount(ctx context.Context, userID, programID uuid.UUID) (int, error)
	Record(ctx context.Context, rec PenaltyRecord) error
	// RestrictedUntil returns the end of the user's active restriction
	// window within the program, nil when never penalized.
	RestrictedUntil(ctx context.Context, userID, programID uuid.UUID) (*time.Time, error)
}

// ProfileStore exposes the requester priority owned by the surrounding
// application's user profile.
type ProfileStore interface {
	GetPriority(ctx context.Context, userID, programID uuid.UUID) (int, error)
	UpdatePriority(ctx context.Context, userID, programID uuid.UUID, priority int) error
}

// Notifier is fire-and-forget; failures are logged by the caller and never
// roll back a state transition.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message string, channels []string) error
	NotifyProgramSupervisor(ctx context.Context, programID uuid.UUID, message string) error
}
