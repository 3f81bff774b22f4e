//go:build unit

package reassignment_test

import (
	"testing"
	"time"

	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/pkg/errs"
	"campus-reassign/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RequestBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRequestBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			req, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				require.NoError(t, err)
				require.NotNil(t, req)
			}
		})
	}
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewRequestBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reassignment.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.Nil(t, actual.UserResponse())
		assert.Nil(t, actual.Suggestion())
		assert.Zero(t, actual.RejectionCount())
		assert.Equal(t, int32(1), actual.LockNo())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())

		require.Len(t, actual.AuditTrail(), 1)
		assert.Equal(t, "created", actual.AuditTrail()[0].Event)
	})

	t.Run("construction validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing reservation",
				mutate: func(b *builder.RequestBuilder) { b.OriginalReservationID = uuid.Nil },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "missing requester",
				mutate: func(b *builder.RequestBuilder) { b.RequestedBy = uuid.Nil },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "unknown reason",
				mutate: func(b *builder.RequestBuilder) { b.Reason = "ROOM_ON_FIRE" },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "priority lower bound",
				mutate: func(b *builder.RequestBuilder) { b.Priority = 0 },
			},
			{
				name:   "priority upper bound",
				mutate: func(b *builder.RequestBuilder) { b.Priority = 100 },
			},
			{
				name:   "priority above range",
				mutate: func(b *builder.RequestBuilder) { b.Priority = 101 },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "negative capacity tolerance",
				mutate: func(b *builder.RequestBuilder) { b.CapacityTolerance = -0.1 },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "deadline in the past",
				mutate: func(b *builder.RequestBuilder) { b.ResponseDeadline = b.Now.Add(-time.Minute) },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name:   "deadline equal to now",
				mutate: func(b *builder.RequestBuilder) { b.ResponseDeadline = b.Now },
				errIs:  errs.ErrDomainValidation,
			},
			{
				name: "inherited rejections without a previous request",
				mutate: func(b *builder.RequestBuilder) {
					b.InheritedRejections = 1
				},
				errIs: errs.ErrDomainValidation,
			},
			{
				name: "negative inherited rejections",
				mutate: func(b *builder.RequestBuilder) {
					prev := uuid.New()
					b.PreviousRequestID = &prev
					b.InheritedRejections = -1
				},
				errIs: errs.ErrDomainValidation,
			},
		})
	})

	t.Run("replacement inherits the chain's rejection count", func(t *testing.T) {
		prev := uuid.New()
		req := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) {
			b.PreviousRequestID = &prev
			b.InheritedRejections = 2
		}).BuildPending()

		assert.Equal(t, 2, req.RejectionCount())
		require.NotNil(t, req.PreviousRequestID())
		assert.Equal(t, prev, *req.PreviousRequestID())
	})
}

func TestAcceptFlow(t *testing.T) {
	now := time.Now()

	t.Run("accept with standing suggestion", func(t *testing.T) {
		b := builder.NewRequestBuilder()
		req := b.BuildPending()
		require.NoError(t, req.AttachSuggestion(b.BuildSuggestion(), now))

		notes := "works for me"
		require.NoError(t, req.Accept(nil, &notes, now.Add(time.Minute)))

		assert.Equal(t, reassignment.StatusAccepted, req.Status())
		require.NotNil(t, req.UserResponse())
		assert.Equal(t, reassignment.ResponseAccept, *req.UserResponse())
		assert.Equal(t, &notes, req.Notes())
	})

	t.Run("accept with selected override replaces suggestion", func(t *testing.T) {
		b := builder.NewRequestBuilder()
		req := b.BuildPending()
		require.NoError(t, req.AttachSuggestion(b.BuildSuggestion(), now))

		override := b.BuildSuggestion()
		override.ResourceName = "Lab C-303"
		require.NoError(t, req.Accept(&override, nil, now))

		require.NotNil(t, req.Suggestion())
		assert.Equal(t, "Lab C-303", req.Suggestion().ResourceName)
	})

	t.Run("accept twice fails", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		require.NoError(t, req.Accept(nil, nil, now))

		err := req.Accept(nil, nil, now)
		assert.ErrorIs(t, err, errs.ErrRequestNotPending)
	})

	t.Run("complete after accept", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		require.NoError(t, req.Accept(nil, nil, now))
		require.NoError(t, req.Complete(now))

		assert.Equal(t, reassignment.StatusCompleted, req.Status())
	})

	t.Run("complete from pending fails", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		assert.ErrorIs(t, req.Complete(now), errs.ErrRequestNotPending)
	})
}

func TestRejectFlow(t *testing.T) {
	now := time.Now()

	t.Run("reject records response and increments count", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()

		feedback := "too far from the main building"
		require.NoError(t, req.Reject(&feedback, now))

		assert.Equal(t, reassignment.StatusRejected, req.Status())
		require.NotNil(t, req.UserResponse())
		assert.Equal(t, reassignment.ResponseReject, *req.UserResponse())
		assert.Equal(t, 1, req.RejectionCount())
	})

	t.Run("reject twice fails", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		require.NoError(t, req.Reject(nil, now))

		assert.ErrorIs(t, req.Reject(nil, now), errs.ErrRequestNotPending)
		assert.Equal(t, 1, req.RejectionCount())
	})

	t.Run("escalate after rejection", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		require.NoError(t, req.Reject(nil, now))
		require.NoError(t, req.Escalate(now))

		assert.Equal(t, reassignment.StatusEscalated, req.Status())
	})

	t.Run("escalate from pending fails", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		assert.ErrorIs(t, req.Escalate(now), errs.ErrRequestNotPending)
	})
}

func TestAutoApprove(t *testing.T) {
	now := time.Now()

	t.Run("requires a suggestion", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		assert.Error(t, req.AutoApprove(now))
	})

	t.Run("accepts without recording a user response", func(t *testing.T) {
		b := builder.NewRequestBuilder()
		req := b.BuildPending()
		require.NoError(t, req.AttachSuggestion(b.BuildSuggestion(), now))

		require.NoError(t, req.AutoApprove(now))
		assert.Equal(t, reassignment.StatusAccepted, req.Status())
		assert.Nil(t, req.UserResponse())
	})
}

func TestExpiration(t *testing.T) {
	deadline := time.Now().Add(time.Hour)

	newPending := func() *reassignment.Request {
		return builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) {
			b.ResponseDeadline = deadline
		}).BuildPending()
	}

	t.Run("expire before deadline fails", func(t *testing.T) {
		req := newPending()
		err := req.Expire(reassignment.EscalationNone, deadline.Add(-time.Minute))
		assert.ErrorIs(t, err, errs.ErrRequestNotExpired)
		assert.Equal(t, reassignment.StatusPending, req.Status())
	})

	t.Run("expire pins the escalation action", func(t *testing.T) {
		req := newPending()
		after := deadline.Add(time.Minute)

		require.NoError(t, req.Expire(reassignment.EscalationNotifySupervisor, after))
		assert.Equal(t, reassignment.StatusExpired, req.Status())
		require.NotNil(t, req.EscalationAction())
		assert.Equal(t, reassignment.EscalationNotifySupervisor, *req.EscalationAction())
	})

	t.Run("expire twice fails", func(t *testing.T) {
		req := newPending()
		after := deadline.Add(time.Minute)
		require.NoError(t, req.Expire(reassignment.EscalationNone, after))

		assert.ErrorIs(t, req.Expire(reassignment.EscalationNone, after), errs.ErrRequestNotPending)
	})

	t.Run("expired request can complete after auto-assignment", func(t *testing.T) {
		req := newPending()
		after := deadline.Add(time.Minute)
		require.NoError(t, req.Expire(reassignment.EscalationAutoAssign, after))

		require.NoError(t, req.Complete(after))
		assert.Equal(t, reassignment.StatusCompleted, req.Status())
	})

	t.Run("deadline boundary", func(t *testing.T) {
		req := newPending()
		assert.False(t, req.DeadlinePassed(deadline), "deadline itself has not passed")
		assert.True(t, req.DeadlinePassed(deadline.Add(time.Nanosecond)))
	})
}

func TestCancel(t *testing.T) {
	now := time.Now()

	t.Run("pending request can be cancelled", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		require.NoError(t, req.Cancel("reservation withdrawn", now))
		assert.Equal(t, reassignment.StatusCancelled, req.Status())
	})

	t.Run("rejected request can be cancelled", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		require.NoError(t, req.Reject(nil, now))
		require.NoError(t, req.Cancel("handled offline", now))
		assert.Equal(t, reassignment.StatusCancelled, req.Status())
	})

	t.Run("terminal request cannot be cancelled", func(t *testing.T) {
		req := builder.NewRequestBuilder().BuildPending()
		require.NoError(t, req.Accept(nil, nil, now))
		require.NoError(t, req.Complete(now))

		assert.ErrorIs(t, req.Cancel("too late", now), errs.ErrRequestNotPending)
	})
}

func TestAuditTrail(t *testing.T) {
	now := time.Now()
	b := builder.NewRequestBuilder()
	req := b.BuildPending()

	require.NoError(t, req.AttachSuggestion(b.BuildSuggestion(), now))
	require.NoError(t, req.Accept(nil, nil, now))
	require.NoError(t, req.Complete(now))

	events := make([]string, 0, len(req.AuditTrail()))
	for _, entry := range req.AuditTrail() {
		events = append(events, entry.Event)
	}
	assert.Equal(t, []string{"created", "suggestion_attached", "accepted", "completed"}, events)
}

func TestDecideRejectionOutcome(t *testing.T) {
	cases := []struct {
		name           string
		rejectionCount int
		shouldPenalize bool
		expected       reassignment.NextAction
	}{
		{name: "penalty takes priority", rejectionCount: 1, shouldPenalize: true, expected: reassignment.ActionApplyPenalty},
		{name: "first rejection finds alternatives", rejectionCount: 1, expected: reassignment.ActionFindAlternatives},
		{name: "second rejection escalates", rejectionCount: 2, expected: reassignment.ActionEscalate},
		{name: "later rejection escalates", rejectionCount: 5, expected: reassignment.ActionEscalate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reassignment.DecideRejectionOutcome(tc.rejectionCount, tc.shouldPenalize))
		})
	}
}

func TestDecideEscalation(t *testing.T) {
	cases := []struct {
		name                 string
		escalateToSupervisor bool
		autoApprovalEnabled  bool
		hasSuggestion        bool
		isUrgent             bool
		expected             reassignment.EscalationAction
	}{
		{name: "supervisor notification wins", escalateToSupervisor: true, autoApprovalEnabled: true, hasSuggestion: true, isUrgent: true, expected: reassignment.EscalationNotifySupervisor},
		{name: "auto assign with suggestion", autoApprovalEnabled: true, hasSuggestion: true, expected: reassignment.EscalationAutoAssign},
		{name: "auto approval without suggestion falls through", autoApprovalEnabled: true, isUrgent: true, expected: reassignment.EscalationCancelReservation},
		{name: "urgent without auto approval cancels", isUrgent: true, expected: reassignment.EscalationCancelReservation},
		{name: "nothing applies", expected: reassignment.EscalationNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := reassignment.DecideEscalation(tc.escalateToSupervisor, tc.autoApprovalEnabled, tc.hasSuggestion, tc.isUrgent)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
