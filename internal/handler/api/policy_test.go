//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campus-reassign/internal/domain/actor"
	"campus-reassign/internal/handler/api"
	"campus-reassign/internal/pkg/errs"
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

type PolicyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPolicyCommands
	mockQueries  *queriesmock.MockPolicyQueries
	handler      *api.PolicyHandler
}

func (s *PolicyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPolicyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPolicyQueries(s.mockCtrl)
	s.handler = api.NewPolicyHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", actor.RoleAdmin)
		c.Next()
	}

	// Setup routes
	s.router.POST("/policies", authMiddleware, s.handler.CreatePolicy)
	s.router.PATCH("/policies/:id", authMiddleware, s.handler.UpdatePolicy)
	s.router.DELETE("/policies/:id", authMiddleware, s.handler.DeactivatePolicy)
	s.router.GET("/programs/:programId/policy", authMiddleware, s.handler.GetActivePolicy)
}

func (s *PolicyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPolicyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PolicyHandlerTestSuite))
}

// ================================================================================
// TestCreatePolicy
// ================================================================================

func (s *PolicyHandlerTestSuite) TestCreatePolicy() {
	url := "/policies"

	b := builder.NewPolicyBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildActive()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreatePolicy(gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			ID        string `json:"id"`
			ProgramID string `json:"programId"`
			Active    bool   `json:"active"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.ID)
		s.Equal(b.ProgramID.String(), body.ProgramID)
		s.True(body.Active)
	})

	s.Run("error: 400 validation cases", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing program_id", mutate: testutil.Field("program_id", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "malformed program_id", mutate: testutil.Field("program_id", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 422 for an unknown preset", func() {
		s.mockCommands.EXPECT().CreatePolicy(gomock.Any(), gomock.Any()).
			Return(nil, &errs.ValidationError{Violations: []errs.FieldViolation{
				{Field: "preset", Message: "unknown preset: draconian"},
			}}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("preset", "draconian"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 409 when the program already has a policy", func() {
		s.mockCommands.EXPECT().CreatePolicy(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDuplicatePolicy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has an active policy")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestGetActivePolicy
// ================================================================================

func (s *PolicyHandlerTestSuite) TestGetActivePolicy() {
	view := builder.NewPolicyBuilder().BuildView()
	url := "/programs/" + view.ProgramID.String() + "/policy"

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetActiveByProgram(gomock.Any(), view.ProgramID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Name           string  `json:"name"`
			MinimumScore   float64 `json:"minimumScore"`
			MaxSuggestions int     `json:"maxSuggestions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
		s.InDelta(view.MinimumScore, body.MinimumScore, 0.001)
		s.Equal(view.MaxSuggestions, body.MaxSuggestions)
	})

	s.Run("error: 404 when the program has no active policy", func() {
		s.mockQueries.EXPECT().GetActiveByProgram(gomock.Any(), view.ProgramID).
			Return(nil, errs.ErrPolicyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Policy not found")
	})

	s.Run("error: 400 for malformed program id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/programs/nope/policy", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestUpdatePolicy
// ================================================================================

func (s *PolicyHandlerTestSuite) TestUpdatePolicy() {
	updated := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
		b.Settings.MinimumScore = 70
	}).BuildActive()
	url := "/policies/" + updated.ID().String()

	s.Run("success: returns the updated policy", func() {
		s.mockCommands.EXPECT().UpdatePolicy(gomock.Any(), updated.ID(), gomock.Any()).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"minimum_score": 70}, "bearer-token")

		var body struct {
			MinimumScore float64 `json:"minimumScore"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.InDelta(70.0, body.MinimumScore, 0.001)
	})

	s.Run("error: 422 on invalid merged settings", func() {
		s.mockCommands.EXPECT().UpdatePolicy(gomock.Any(), updated.ID(), gomock.Any()).
			Return(nil, &errs.ValidationError{Violations: []errs.FieldViolation{
				{Field: "minimum_score", Message: "minimum score must be between 0 and 100"},
			}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"minimum_score": 150}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 409 on a deactivated policy", func() {
		s.mockCommands.EXPECT().UpdatePolicy(gomock.Any(), updated.ID(), gomock.Any()).
			Return(nil, errs.ErrPolicyDeactivated).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"minimum_score": 70}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "deactivated")
	})

	s.Run("error: 404 for unknown policy", func() {
		s.mockCommands.EXPECT().UpdatePolicy(gomock.Any(), updated.ID(), gomock.Any()).
			Return(nil, errs.ErrPolicyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"minimum_score": 70}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Policy not found")
	})
}

// ================================================================================
// TestDeactivatePolicy
// ================================================================================

func (s *PolicyHandlerTestSuite) TestDeactivatePolicy() {
	id := uuid.New()
	url := "/policies/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivatePolicy(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for unknown policy", func() {
		s.mockCommands.EXPECT().DeactivatePolicy(gomock.Any(), id).
			Return(errs.ErrPolicyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Policy not found")
	})
}
