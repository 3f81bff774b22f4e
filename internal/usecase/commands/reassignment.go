package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"campus-reassign/internal/domain/policy"
	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/domain/resource"
	"campus-reassign/internal/domain/similarity"
	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/clock"
	"campus-reassign/internal/pkg/config"
	"campus-reassign/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// Auto-suggestion suppression window applied together with a rejection
	// penalty.
	penaltyRestrictionWindow = 72 * time.Hour

	notifyChannelEmail = "email"
	notifyChannelPush  = "push"
)

type CreateReassignmentParams struct {
	ReservationID     uuid.UUID
	RequestedBy       uuid.UUID
	Reason            reassignment.Reason
	ProgramID         uuid.UUID
	Priority          int
	IsUrgent          bool
	RequiredFeatures  []string
	PreferredFeatures []string
}

type CreateReassignmentResult struct {
	Request     *reassignment.Request
	Suggestions []reassignment.Suggestion
	Warnings    []string
}

type UserResponseParams struct {
	RequestID          uuid.UUID
	Response           reassignment.UserResponse
	SelectedResourceID *uuid.UUID
	Notes              *string
}

type UserResponseResult struct {
	Request          *reassignment.Request
	NextAction       reassignment.NextAction
	SiblingRequestID *uuid.UUID
}

type ExpirationResult struct {
	Request          *reassignment.Request
	EscalationAction reassignment.EscalationAction
	AlreadyHandled   bool
}

type AutoReassignmentResult struct {
	Request  *reassignment.Request
	Approved bool
}

type PenaltyParams struct {
	UserID         uuid.UUID
	ProgramID      uuid.UUID
	RejectionCount int
}

type PenaltyResult struct {
	Applied         bool
	UpdatedPriority int
	RestrictedUntil *time.Time
}

type ReassignmentCommands interface {
	CreateReassignmentRequest(ctx context.Context, params CreateReassignmentParams) (*CreateReassignmentResult, error)
	ProcessUserResponse(ctx context.Context, params UserResponseParams) (*UserResponseResult, error)
	HandleRequestExpiration(ctx context.Context, requestID uuid.UUID) (*ExpirationResult, error)
	ProcessAutomaticReassignment(ctx context.Context, requestID uuid.UUID, hoursUntilEvent float64) (*AutoReassignmentResult, error)
	ApplyRejectionPenalty(ctx context.Context, params PenaltyParams) (*PenaltyResult, error)
	CancelRequest(ctx context.Context, requestID uuid.UUID, reason string) (*reassignment.Request, error)
}

type reassignmentUseCaseImpl struct {
	requests     RequestStore
	policies     PolicyStore
	directory    ResourceDirectory
	reservations ReservationStore
	history      HistorySink
	penalties    PenaltyLedger
	profiles     ProfileStore
	notifier     Notifier
	clock        clock.Clock
	matching     config.MatchingConfig
}

func NewReassignmentCommands(
	requests RequestStore,
	policies PolicyStore,
	directory ResourceDirectory,
	reservations ReservationStore,
	history HistorySink,
	penalties PenaltyLedger,
	profiles ProfileStore,
	notifier Notifier,
	clk clock.Clock,
	cfg config.Config,
) ReassignmentCommands {
	return &reassignmentUseCaseImpl{
		requests:     requests,
		policies:     policies,
		directory:    directory,
		reservations: reservations,
		history:      history,
		penalties:    penalties,
		profiles:     profiles,
		notifier:     notifier,
		clock:        clk,
		matching:     cfg.Matching,
	}
}

func (u *reassignmentUseCaseImpl) CreateReassignmentRequest(ctx context.Context, params CreateReassignmentParams) (*CreateReassignmentResult, error) {
	return u.createRequest(ctx, params, nil, 0)
}

// createRequest is shared between the external entry point and the sibling
// request generated after a first rejection. inheritedRejections carries
// the chain's rejection total into the sibling; external creations start
// at zero.
func (u *reassignmentUseCaseImpl) createRequest(
	ctx context.Context,
	params CreateReassignmentParams,
	previousRequestID *uuid.UUID,
	inheritedRejections int,
) (*CreateReassignmentResult, error) {
	now := u.clock.Now()

	reservation, err := u.reservations.GetReservation(ctx, params.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	cfg, err := u.policies.FindActiveByProgram(ctx, params.ProgramID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPolicyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	original, err := u.directory.GetResource(ctx, reservation.ResourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	req, err := reassignment.NewRequest(reassignment.NewRequestParams{
		OriginalReservationID:   params.ReservationID,
		RequestedBy:             params.RequestedBy,
		ProgramID:               params.ProgramID,
		Reason:                  params.Reason,
		Priority:                params.Priority,
		IsUrgent:                params.IsUrgent,
		ResponseDeadline:        now.Add(cfg.ResponseWindow(params.IsUrgent)),
		CapacityTolerance:       cfg.Settings().CapacityTolerancePercent,
		RequiredFeatures:        resource.NewFeatureSet(params.RequiredFeatures...),
		PreferredFeatures:       resource.NewFeatureSet(params.PreferredFeatures...),
		PreviousRequestID:       previousRequestID,
		InheritedRejectionCount: inheritedRejections,
	}, now)
	if err != nil {
		return nil, err
	}

	scored, names := u.generateSuggestions(ctx, cfg.Settings(), *original, reservation, req.RequiredFeatures())
	suggestions := make([]reassignment.Suggestion, 0, len(scored))
	for _, s := range scored {
		suggestions = append(suggestions, reassignment.Suggestion{
			Result:       s,
			ResourceName: names[s.CandidateID],
		})
	}
	if len(suggestions) > 0 {
		if attachErr := req.AttachSuggestion(suggestions[0], now); attachErr != nil {
			return nil, attachErr
		}
	}

	if err := u.requests.Create(ctx, req); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := u.appendSuggestionHistory(ctx, req, *original, suggestions, now); err != nil {
		return nil, err
	}

	u.notifyUser(ctx, req.RequestedBy(), creationMessage(req))

	var warnings []string
	switch len(suggestions) {
	case 0:
		warnings = append(warnings, "no viable alternative found; manual intervention may be required")
	case 1:
		warnings = append(warnings, "only one viable alternative found")
	}

	return &CreateReassignmentResult{
		Request:     req,
		Suggestions: suggestions,
		Warnings:    warnings,
	}, nil
}

// generateSuggestions runs the candidate search, drops candidates outside
// the policy's capacity tolerance, fans availability checks out per
// candidate, scores, filters by the policy's minimum score and caps at
// maxSuggestions. A failed availability check degrades that candidate to
// "unavailable" instead of aborting the whole flow.
func (u *reassignmentUseCaseImpl) generateSuggestions(
	ctx context.Context,
	settings policy.Settings,
	original resource.Descriptor,
	reservation *ReservationSnapshot,
	required resource.FeatureSet,
) ([]similarity.Result, map[uuid.UUID]string) {
	candidates, err := u.directory.GetCandidates(ctx, original.Type, original.ID, int32(u.matching.CandidateLimit))
	if err != nil {
		slog.Warn("candidate lookup failed, continuing without suggestions",
			"resource_id", original.ID, "error", err.Error())
		return nil, nil
	}

	// Hard requirements are a filter, not a score input: a candidate
	// missing a required feature is never suggested no matter how well the
	// rest matches.
	if !required.IsEmpty() {
		filtered := candidates[:0]
		for _, c := range candidates {
			if c.Features.ContainsAll(required) {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	// A room more undersized than the policy tolerates is never suggested.
	candidates = similarity.FilterByCapacityTolerance(candidates, original, settings.CapacityTolerancePercent)

	availability := u.checkAvailability(ctx, candidates, reservation.Start, reservation.End)

	engine := similarity.NewEngine(settings.MatchThresholds)
	results := engine.Score(original, candidates, settings.Weights, availability)
	results = similarity.FilterByMinimumScore(results, settings.MinimumScore)
	results = similarity.TopN(results, settings.MaxSuggestions)

	names := make(map[uuid.UUID]string, len(candidates))
	for _, c := range candidates {
		names[c.ID] = c.Name
	}
	return results, names
}

// checkAvailability queries each candidate concurrently; candidates are
// independent so the fan-out is safe. Errors count as unavailable.
func (u *reassignmentUseCaseImpl) checkAvailability(
	ctx context.Context,
	candidates []resource.Descriptor,
	start, end time.Time,
) map[uuid.UUID]bool {
	ctx, cancel := context.WithTimeout(ctx, u.matching.AvailabilityTimeout)
	defer cancel()

	availability := make(map[uuid.UUID]bool, len(candidates))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, cand := range candidates {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			available, err := u.directory.CheckAvailability(ctx, id, start, end)
			if err != nil {
				slog.Warn("availability check failed, assuming unavailable",
					"resource_id", id, "error", err.Error())
				available = false
			}
			mu.Lock()
			availability[id] = available
			mu.Unlock()
		}(cand.ID)
	}
	wg.Wait()
	return availability
}

func (u *reassignmentUseCaseImpl) ProcessUserResponse(ctx context.Context, params UserResponseParams) (*UserResponseResult, error) {
	now := u.clock.Now()

	req, err := u.loadRequest(ctx, params.RequestID)
	if err != nil {
		return nil, err
	}

	switch params.Response {
	case reassignment.ResponseAccept:
		return u.acceptRequest(ctx, req, params, now)
	case reassignment.ResponseReject:
		return u.rejectRequest(ctx, req, params, now)
	default:
		return nil, &errs.ValidationError{Violations: []errs.FieldViolation{
			{Field: "response", Message: "must be ACCEPT or REJECT"},
		}}
	}
}

func (u *reassignmentUseCaseImpl) acceptRequest(
	ctx context.Context,
	req *reassignment.Request,
	params UserResponseParams,
	now time.Time,
) (*UserResponseResult, error) {
	override, err := u.resolveOverride(ctx, req, params.SelectedResourceID)
	if err != nil {
		return nil, err
	}

	lockNo := req.LockNo()
	if err := req.Accept(override, params.Notes, now); err != nil {
		return nil, err
	}
	if err := u.persist(ctx, req, lockNo); err != nil {
		return nil, err
	}

	// Move the reservation onto the accepted alternative and finalize.
	if s := req.Suggestion(); s != nil {
		if err := u.reservations.UpdateReservationResource(ctx, req.OriginalReservationID(), s.Result.CandidateID); err != nil {
			return nil, errs.Mark(err, errs.ErrDependencyFailed)
		}
		lockNo = req.LockNo()
		if err := req.Complete(now); err != nil {
			return nil, err
		}
		if err := u.persist(ctx, req, lockNo); err != nil {
			return nil, err
		}
	}

	if err := u.appendResponseHistory(ctx, req, true, false, params.Notes, now); err != nil {
		return nil, err
	}
	u.notifyUser(ctx, req.RequestedBy(), "Your reassignment has been confirmed.")

	return &UserResponseResult{Request: req, NextAction: reassignment.ActionComplete}, nil
}

// resolveOverride turns an explicitly selected resource into a suggestion
// override, looking up the descriptor for its name. A manual pick bypasses
// scoring and is bucketed as MANUAL_OVERRIDE.
func (u *reassignmentUseCaseImpl) resolveOverride(
	ctx context.Context,
	req *reassignment.Request,
	selectedResourceID *uuid.UUID,
) (*reassignment.Suggestion, error) {
	if selectedResourceID == nil {
		return nil, nil
	}
	if s := req.Suggestion(); s != nil && s.Result.CandidateID == *selectedResourceID {
		return nil, nil
	}

	desc, err := u.directory.GetResource(ctx, *selectedResourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	return &reassignment.Suggestion{
		Result: similarity.Result{
			CandidateID: desc.ID,
			MatchType:   similarity.ManualOverride,
		},
		ResourceName: desc.Name,
	}, nil
}

func (u *reassignmentUseCaseImpl) rejectRequest(
	ctx context.Context,
	req *reassignment.Request,
	params UserResponseParams,
	now time.Time,
) (*UserResponseResult, error) {
	lockNo := req.LockNo()
	if err := req.Reject(params.Notes, now); err != nil {
		return nil, err
	}
	if err := u.persist(ctx, req, lockNo); err != nil {
		return nil, err
	}

	cfg, err := u.policies.FindActiveByProgram(ctx, req.ProgramID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPolicyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	action := reassignment.DecideRejectionOutcome(
		req.RejectionCount(),
		cfg.ShouldApplyPenaltyForRejection(req.RejectionCount()),
	)

	result := &UserResponseResult{Request: req, NextAction: action}

	switch action {
	case reassignment.ActionFindAlternatives:
		sibling, siblingErr := u.createRequest(ctx, CreateReassignmentParams{
			ReservationID:     req.OriginalReservationID(),
			RequestedBy:       req.RequestedBy(),
			Reason:            req.Reason(),
			ProgramID:         req.ProgramID(),
			Priority:          req.Priority(),
			IsUrgent:          req.IsUrgent(),
			RequiredFeatures:  req.RequiredFeatures().Slice(),
			PreferredFeatures: req.PreferredFeatures().Slice(),
		}, ptrOf(req.ID()), req.RejectionCount())
		if siblingErr != nil {
			return nil, siblingErr
		}
		id := sibling.Request.ID()
		result.SiblingRequestID = &id

	case reassignment.ActionEscalate:
		lockNo = req.LockNo()
		if err := req.Escalate(now); err != nil {
			return nil, err
		}
		if err := u.persist(ctx, req, lockNo); err != nil {
			return nil, err
		}
		u.notifySupervisor(ctx, req.ProgramID(),
			fmt.Sprintf("Reassignment request %s was rejected %d times and needs attention.",
				req.ID(), req.RejectionCount()))

	case reassignment.ActionApplyPenalty:
		// The penalty itself is applied by a separate, idempotent call so
		// retries of this response never double-penalize.
	}

	if err := u.appendResponseHistory(ctx, req, false, false, params.Notes, now); err != nil {
		return nil, err
	}

	return result, nil
}

func (u *reassignmentUseCaseImpl) HandleRequestExpiration(ctx context.Context, requestID uuid.UUID) (*ExpirationResult, error) {
	now := u.clock.Now()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// Repeat sweeps on an already-handled request are no-ops that report
	// the action pinned on first expiration.
	if !req.IsPending() {
		if action := req.EscalationAction(); action != nil {
			return &ExpirationResult{Request: req, EscalationAction: *action, AlreadyHandled: true}, nil
		}
		return nil, &errs.StateError{Op: "expire", Current: req.Status().String()}
	}

	if !req.DeadlinePassed(now) {
		return nil, errs.ErrRequestNotExpired
	}

	cfg, err := u.policies.FindActiveByProgram(ctx, req.ProgramID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPolicyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	settings := cfg.Settings()
	action := reassignment.DecideEscalation(
		settings.EscalateToSupervisor,
		settings.AutoApprovalEnabled,
		req.Suggestion() != nil,
		req.IsUrgent(),
	)

	lockNo := req.LockNo()
	if err := req.Expire(action, now); err != nil {
		return nil, err
	}
	if err := u.persist(ctx, req, lockNo); err != nil {
		return nil, err
	}

	if err := u.executeEscalation(ctx, req, action, now); err != nil {
		return nil, err
	}

	if err := u.appendExpirationHistory(ctx, req, action, now); err != nil {
		return nil, err
	}

	return &ExpirationResult{Request: req, EscalationAction: action}, nil
}

func (u *reassignmentUseCaseImpl) executeEscalation(
	ctx context.Context,
	req *reassignment.Request,
	action reassignment.EscalationAction,
	now time.Time,
) error {
	switch action {
	case reassignment.EscalationNotifySupervisor:
		u.notifySupervisor(ctx, req.ProgramID(),
			fmt.Sprintf("Reassignment request %s expired without a response.", req.ID()))
		lockNo := req.LockNo()
		if err := req.Escalate(now); err != nil {
			return err
		}
		return u.persist(ctx, req, lockNo)

	case reassignment.EscalationAutoAssign:
		s := req.Suggestion()
		if err := u.reservations.UpdateReservationResource(ctx, req.OriginalReservationID(), s.Result.CandidateID); err != nil {
			return errs.Mark(err, errs.ErrDependencyFailed)
		}
		lockNo := req.LockNo()
		if err := req.Complete(now); err != nil {
			return err
		}
		if err := u.persist(ctx, req, lockNo); err != nil {
			return err
		}
		u.notifyUser(ctx, req.RequestedBy(),
			fmt.Sprintf("Your reservation was automatically moved to %s.", s.ResourceName))
		return nil

	case reassignment.EscalationCancelReservation:
		if err := u.reservations.CancelReservation(ctx, req.OriginalReservationID(), "reassignment expired"); err != nil {
			return errs.Mark(err, errs.ErrDependencyFailed)
		}
		lockNo := req.LockNo()
		if err := req.Cancel("reservation cancelled after expiration", now); err != nil {
			return err
		}
		if err := u.persist(ctx, req, lockNo); err != nil {
			return err
		}
		u.notifyUser(ctx, req.RequestedBy(),
			"Your reservation was cancelled because the reassignment deadline passed.")
		return nil

	default:
		return nil
	}
}

func (u *reassignmentUseCaseImpl) ProcessAutomaticReassignment(ctx context.Context, requestID uuid.UUID, hoursUntilEvent float64) (*AutoReassignmentResult, error) {
	now := u.clock.Now()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, &errs.StateError{Op: "auto-approve", Current: req.Status().String()}
	}

	s := req.Suggestion()
	if s == nil {
		return &AutoReassignmentResult{Request: req, Approved: false}, nil
	}

	cfg, err := u.policies.FindActiveByProgram(ctx, req.ProgramID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPolicyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	isEquivalent := s.Result.MatchType == similarity.ExactMatch || s.Result.MatchType == similarity.TypeMatch
	if !cfg.ShouldAutoApprove(hoursUntilEvent, isEquivalent) {
		return &AutoReassignmentResult{Request: req, Approved: false}, nil
	}

	// Users inside a penalty restriction window lose the automatic path
	// and must respond themselves.
	restrictedUntil, err := u.penalties.RestrictedUntil(ctx, req.RequestedBy(), req.ProgramID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if restrictedUntil != nil && restrictedUntil.After(now) {
		return &AutoReassignmentResult{Request: req, Approved: false}, nil
	}

	lockNo := req.LockNo()
	if err := req.AutoApprove(now); err != nil {
		return nil, err
	}
	if err := u.persist(ctx, req, lockNo); err != nil {
		return nil, err
	}

	if err := u.reservations.UpdateReservationResource(ctx, req.OriginalReservationID(), s.Result.CandidateID); err != nil {
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	lockNo = req.LockNo()
	if err := req.Complete(now); err != nil {
		return nil, err
	}
	if err := u.persist(ctx, req, lockNo); err != nil {
		return nil, err
	}

	if err := u.appendResponseHistory(ctx, req, true, true, nil, now); err != nil {
		return nil, err
	}
	u.notifyUser(ctx, req.RequestedBy(),
		fmt.Sprintf("Your reservation was automatically moved to %s.", s.ResourceName))

	return &AutoReassignmentResult{Request: req, Approved: true}, nil
}

func (u *reassignmentUseCaseImpl) ApplyRejectionPenalty(ctx context.Context, params PenaltyParams) (*PenaltyResult, error) {
	now := u.clock.Now()

	cfg, err := u.policies.FindActiveByProgram(ctx, params.ProgramID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPolicyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	currentPriority, err := u.profiles.GetPriority(ctx, params.UserID, params.ProgramID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	if !cfg.ShouldApplyPenaltyForRejection(params.RejectionCount) {
		return &PenaltyResult{Applied: false, UpdatedPriority: currentPriority}, nil
	}

	// Idempotence per threshold crossing: a count we already penalized is
	// never charged twice.
	lastPenalized, err := u.penalties.LastPenalizedCount(ctx, params.UserID, params.ProgramID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}
	if lastPenalized >= params.RejectionCount {
		return &PenaltyResult{Applied: false, UpdatedPriority: currentPriority}, nil
	}

	points := cfg.Settings().RejectionPenaltyPoints
	updated := currentPriority - points
	if updated < 0 {
		updated = 0
	}
	restrictedUntil := now.Add(penaltyRestrictionWindow)

	if err := u.penalties.Record(ctx, PenaltyRecord{
		UserID:          params.UserID,
		ProgramID:       params.ProgramID,
		RejectionCount:  params.RejectionCount,
		PointsDeducted:  points,
		RestrictedUntil: restrictedUntil,
	}); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := u.profiles.UpdatePriority(ctx, params.UserID, params.ProgramID, updated); err != nil {
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}

	u.notifyUser(ctx, params.UserID,
		fmt.Sprintf("A rejection penalty of %d points has been applied to your booking priority.", points))

	return &PenaltyResult{
		Applied:         true,
		UpdatedPriority: updated,
		RestrictedUntil: &restrictedUntil,
	}, nil
}

func (u *reassignmentUseCaseImpl) CancelRequest(ctx context.Context, requestID uuid.UUID, reason string) (*reassignment.Request, error) {
	now := u.clock.Now()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	lockNo := req.LockNo()
	if err := req.Cancel(reason, now); err != nil {
		return nil, err
	}
	if err := u.persist(ctx, req, lockNo); err != nil {
		return nil, err
	}
	return req, nil
}

// ---------------------------------------------------------------------------
// helpers

func (u *reassignmentUseCaseImpl) loadRequest(ctx context.Context, id uuid.UUID) (*reassignment.Request, error) {
	req, err := u.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return req, nil
}

// persist writes the request back under optimistic concurrency. A lock
// conflict means another transition won the race; the caller observes the
// lost race as a state error, never a silent overwrite.
func (u *reassignmentUseCaseImpl) persist(ctx context.Context, req *reassignment.Request, expectedLockNo int32) error {
	if err := u.requests.Update(ctx, req, expectedLockNo); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, errs.ErrConcurrentUpdate)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *reassignmentUseCaseImpl) appendSuggestionHistory(
	ctx context.Context,
	req *reassignment.Request,
	original resource.Descriptor,
	suggestions []reassignment.Suggestion,
	now time.Time,
) error {
	entry := HistoryEntry{
		RequestID:            req.ID(),
		ProgramID:            req.ProgramID(),
		RequesterID:          req.RequestedBy(),
		OriginalResourceID:   original.ID,
		OriginalResourceName: original.Name,
		Reason:               req.Reason(),
		NotifiedAt:           &now,
	}
	for _, s := range suggestions {
		entry.Alternatives = append(entry.Alternatives, s.Result.CandidateID)
	}
	if s := req.Suggestion(); s != nil {
		id := s.Result.CandidateID
		name := s.ResourceName
		score := s.Result.Score
		breakdown := s.Result.Breakdown
		entry.NewResourceID = &id
		entry.NewResourceName = &name
		entry.Score = &score
		entry.Breakdown = &breakdown
	}

	if err := u.history.Append(ctx, entry); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *reassignmentUseCaseImpl) appendResponseHistory(
	ctx context.Context,
	req *reassignment.Request,
	accepted, autoApproved bool,
	feedback *string,
	now time.Time,
) error {
	entry := HistoryEntry{
		RequestID:    req.ID(),
		ProgramID:    req.ProgramID(),
		RequesterID:  req.RequestedBy(),
		Reason:       req.Reason(),
		Accepted:     &accepted,
		AutoApproved: autoApproved,
		Feedback:     feedback,
		RespondedAt:  &now,
	}
	if s := req.Suggestion(); s != nil {
		id := s.Result.CandidateID
		name := s.ResourceName
		score := s.Result.Score
		breakdown := s.Result.Breakdown
		entry.NewResourceID = &id
		entry.NewResourceName = &name
		entry.Score = &score
		entry.Breakdown = &breakdown
	}

	if err := u.history.Append(ctx, entry); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *reassignmentUseCaseImpl) appendExpirationHistory(
	ctx context.Context,
	req *reassignment.Request,
	action reassignment.EscalationAction,
	now time.Time,
) error {
	feedback := "expired: " + string(action)
	entry := HistoryEntry{
		RequestID:   req.ID(),
		ProgramID:   req.ProgramID(),
		RequesterID: req.RequestedBy(),
		Reason:      req.Reason(),
		Feedback:    &feedback,
		RespondedAt: &now,
	}
	if action == reassignment.EscalationAutoAssign {
		accepted := true
		entry.Accepted = &accepted
		entry.AutoApproved = true
	}
	if s := req.Suggestion(); s != nil {
		id := s.Result.CandidateID
		name := s.ResourceName
		entry.NewResourceID = &id
		entry.NewResourceName = &name
	}

	if err := u.history.Append(ctx, entry); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Notification delivery is best-effort: failures are logged, never
// propagated, so a flaky channel cannot roll back a committed transition.
func (u *reassignmentUseCaseImpl) notifyUser(ctx context.Context, userID uuid.UUID, message string) {
	if err := u.notifier.Notify(ctx, userID, message, []string{notifyChannelEmail, notifyChannelPush}); err != nil {
		slog.Warn("failed to notify user", "user_id", userID, "error", err.Error())
	}
}

func (u *reassignmentUseCaseImpl) notifySupervisor(ctx context.Context, programID uuid.UUID, message string) {
	if err := u.notifier.NotifyProgramSupervisor(ctx, programID, message); err != nil {
		slog.Warn("failed to notify supervisor", "program_id", programID, "error", err.Error())
	}
}

func creationMessage(req *reassignment.Request) string {
	if s := req.Suggestion(); s != nil {
		return fmt.Sprintf("Your reservation needs to be moved. Suggested alternative: %s (score %.2f). Please respond by %s.",
			s.ResourceName, s.Result.Score, req.ResponseDeadline().Format(time.RFC3339))
	}
	return fmt.Sprintf("Your reservation needs to be moved, but no alternative could be found yet. Staff will follow up before %s.",
		req.ResponseDeadline().Format(time.RFC3339))
}

func ptrOf[T any](v T) *T {
	return &v
}
