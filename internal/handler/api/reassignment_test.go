//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campus-reassign/internal/domain/actor"
	"campus-reassign/internal/domain/reassignment"
	"campus-reassign/internal/handler/api"
	"campus-reassign/internal/pkg/errs"
	"campus-reassign/internal/usecase/commands"
	"campus-reassign/internal/usecase/queries"
	"campus-reassign/tests/common/builder"
	"campus-reassign/tests/common/httptest"
	"campus-reassign/tests/common/testutil"
	commandsmock "campus-reassign/tests/mock/commands"
	queriesmock "campus-reassign/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReassignmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReassignmentCommands
	mockQueries  *queriesmock.MockReassignmentQueries
	handler      *api.ReassignmentHandler
	userID       uuid.UUID
}

func (s *ReassignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReassignmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReassignmentQueries(s.mockCtrl)
	s.handler = api.NewReassignmentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", actor.RoleStudent)
		c.Next()
	}

	// Setup routes
	s.router.POST("/reassignments", authMiddleware, s.handler.CreateReassignment)
	s.router.GET("/reassignments", authMiddleware, s.handler.ListMyReassignments)
	s.router.GET("/reassignments/:id", authMiddleware, s.handler.GetReassignment)
	s.router.POST("/reassignments/:id/response", authMiddleware, s.handler.RespondToReassignment)
	s.router.POST("/reassignments/:id/cancel", authMiddleware, s.handler.CancelReassignment)
	s.router.POST("/reassignments/:id/expire", authMiddleware, s.handler.ExpireReassignment)
	s.router.POST("/reassignments/:id/auto", authMiddleware, s.handler.AutoReassign)
	s.router.POST("/penalties", authMiddleware, s.handler.ApplyPenalty)
}

func (s *ReassignmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReassignmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReassignmentHandlerTestSuite))
}

type testCaseReassignment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReassignment
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestCreateReassignment() {
	url := "/reassignments"

	b := builder.NewRequestBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildPending()

	s.Run("success: returns 201 Created with suggestions", func() {
		suggestion := b.BuildSuggestion()
		result := &commands.CreateReassignmentResult{
			Request:     created,
			Suggestions: []reassignment.Suggestion{suggestion},
		}
		s.mockCommands.EXPECT().CreateReassignmentRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateReassignmentParams) (*commands.CreateReassignmentResult, error) {
				s.Equal(s.userID, params.RequestedBy)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Request struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"request"`
			Suggestions []struct {
				ResourceName string  `json:"resourceName"`
				Score        float64 `json:"score"`
			} `json:"suggestions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.Request.ID)
		s.Equal("PENDING", body.Request.Status)
		s.Require().Len(body.Suggestions, 1)
		s.Equal("Room B-201", body.Suggestions[0].ResourceName)
		s.InDelta(87.5, body.Suggestions[0].Score, 0.001)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseReassignment{
			{name: "missing field: reservation_id", mutate: testutil.Field("reservation_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: reason", mutate: testutil.Field("reason", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: program_id", mutate: testutil.Field("program_id", nil), expectCode: http.StatusBadRequest},
			{name: "invalid reason value", mutate: testutil.Field("reason", "SOLAR_FLARE"), expectCode: http.StatusBadRequest},
			{name: "malformed reservation_id", mutate: testutil.Field("reservation_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateReassignmentRequest(gomock.Any(), gomock.Any()).
			Return(nil, &errs.ValidationError{Violations: []errs.FieldViolation{
				{Field: "priority", Message: "priority must be between 0 and 100"},
			}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 404 when reservation does not exist", func() {
		s.mockCommands.EXPECT().CreateReassignmentRequest(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestGetReassignment
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestGetReassignment() {
	view := builder.NewRequestBuilder().BuildView()
	url := "/reassignments/" + view.ID.String()

	s.Run("success: returns 200 OK with the request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Reason string `json:"reason"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(view.Status, body.Status)
		s.Equal(view.Reason, body.Reason)
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reassignment request not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reassignments/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestListMyReassignments
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestListMyReassignments() {
	url := "/reassignments"

	s.Run("success: returns the caller's requests", func() {
		item := builder.NewRequestBuilder().BuildListItem()

		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.userID, int32(0)).
			Return([]*queries.ReassignmentListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(item.ID.String(), body[0].ID)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.userID, int32(0)).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestRespondToReassignment
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestRespondToReassignment() {
	b := builder.NewRequestBuilder()
	req := b.BuildPending()
	url := "/reassignments/" + req.ID().String() + "/response"

	s.Run("success: accept returns the next action", func() {
		accepted := b.BuildPending()
		_ = accepted.AttachSuggestion(b.BuildSuggestion(), b.Now)
		s.Require().NoError(accepted.Accept(nil, nil, b.Now))

		s.mockCommands.EXPECT().ProcessUserResponse(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.UserResponseParams) (*commands.UserResponseResult, error) {
				s.Equal(reassignment.ResponseAccept, params.Response)
				return &commands.UserResponseResult{
					Request:    accepted,
					NextAction: reassignment.ActionComplete,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "ACCEPT"}, "bearer-token")

		var body struct {
			NextAction string `json:"nextAction"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETE", body.NextAction)
	})

	s.Run("success: rejection may spawn a sibling request", func() {
		siblingID := uuid.New()
		s.mockCommands.EXPECT().ProcessUserResponse(gomock.Any(), gomock.Any()).
			Return(&commands.UserResponseResult{
				Request:          req,
				NextAction:       reassignment.ActionFindAlternatives,
				SiblingRequestID: &siblingID,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "REJECT", "notes": "too small"}, "bearer-token")

		var body struct {
			NextAction       string  `json:"nextAction"`
			SiblingRequestID *string `json:"siblingRequestId"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("FIND_ALTERNATIVES", body.NextAction)
		s.Require().NotNil(body.SiblingRequestID)
		s.Equal(siblingID.String(), *body.SiblingRequestID)
	})

	s.Run("error: 400 for an unknown response value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "MAYBE"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Response must be ACCEPT or REJECT")
	})

	s.Run("error: 409 when the request is already settled", func() {
		s.mockCommands.EXPECT().ProcessUserResponse(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRequestNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "ACCEPT"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a state")
	})

	s.Run("error: 409 on concurrent update", func() {
		s.mockCommands.EXPECT().ProcessUserResponse(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrConcurrentUpdate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "ACCEPT"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "modified concurrently")
	})
}

// ================================================================================
// TestExpireReassignment
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestExpireReassignment() {
	b := builder.NewRequestBuilder()
	req := b.BuildPending()
	url := "/reassignments/" + req.ID().String() + "/expire"

	s.Run("success: reports the escalation action", func() {
		s.mockCommands.EXPECT().HandleRequestExpiration(gomock.Any(), req.ID()).
			Return(&commands.ExpirationResult{
				Request:          req,
				EscalationAction: reassignment.EscalationNotifySupervisor,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body struct {
			EscalationAction string `json:"escalationAction"`
			AlreadyHandled   bool   `json:"alreadyHandled"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("NOTIFY_SUPERVISOR", body.EscalationAction)
		s.False(body.AlreadyHandled)
	})

	s.Run("error: 409 when the deadline has not passed", func() {
		s.mockCommands.EXPECT().HandleRequestExpiration(gomock.Any(), req.ID()).
			Return(nil, errs.ErrRequestNotExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "deadline has not passed")
	})
}

// ================================================================================
// TestAutoReassign
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestAutoReassign() {
	b := builder.NewRequestBuilder()
	req := b.BuildPending()
	url := "/reassignments/" + req.ID().String() + "/auto"

	s.Run("success: approved", func() {
		s.mockCommands.EXPECT().ProcessAutomaticReassignment(gomock.Any(), req.ID(), 6.0).
			Return(&commands.AutoReassignmentResult{Request: req, Approved: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"hours_until_event": 6.0}, "bearer-token")

		var body struct {
			Approved bool `json:"approved"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Approved)
	})

	s.Run("error: 400 without hours_until_event", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestCancelReassignment
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestCancelReassignment() {
	b := builder.NewRequestBuilder()
	req := b.BuildPending()
	url := "/reassignments/" + req.ID().String() + "/cancel"

	s.Run("success: returns the cancelled request", func() {
		cancelled := b.BuildPending()
		s.Require().NoError(cancelled.Cancel("course withdrawn", b.Now))

		s.mockCommands.EXPECT().CancelRequest(gomock.Any(), req.ID(), "course withdrawn").
			Return(cancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "course withdrawn"}, "bearer-token")

		var body struct {
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
	})

	s.Run("error: 400 without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestApplyPenalty
// ================================================================================

func (s *ReassignmentHandlerTestSuite) TestApplyPenalty() {
	url := "/penalties"

	reqBody := map[string]any{
		"user_id":         uuid.New().String(),
		"program_id":      uuid.New().String(),
		"rejection_count": 3,
	}

	s.Run("success: penalty applied", func() {
		s.mockCommands.EXPECT().ApplyRejectionPenalty(gomock.Any(), gomock.Any()).
			Return(&commands.PenaltyResult{Applied: true, UpdatedPriority: 45}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Applied         bool `json:"applied"`
			UpdatedPriority int  `json:"updatedPriority"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Applied)
		s.Equal(45, body.UpdatedPriority)
	})

	s.Run("error: 400 validation cases", func() {
		cases := []testCaseReassignment{
			{name: "missing user_id", mutate: testutil.Field("user_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing program_id", mutate: testutil.Field("program_id", nil), expectCode: http.StatusBadRequest},
			{name: "rejection_count below minimum", mutate: testutil.Field("rejection_count", 0), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}
