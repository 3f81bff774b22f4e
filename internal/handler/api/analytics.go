package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "campus-reassign/internal/handler/dto/response"
	"campus-reassign/internal/handler/httperr"
	"campus-reassign/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	history queries.HistoryQueries
}

func NewAnalyticsHandler(history queries.HistoryQueries) *AnalyticsHandler {
	return &AnalyticsHandler{history: history}
}

// @Summary Acceptance rate
// @Description Share of responded reassignments that were accepted, over the filtered slice
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param program_id query string false "Program ID"
// @Param user_id query string false "User ID"
// @Param resource_id query string false "Resource ID"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Success 200 {object} resdto.AcceptanceRateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /analytics/acceptance-rate [get]
func (h *AnalyticsHandler) AcceptanceRate(c *gin.Context) {
	filters, ok := h.parseFilters(c)
	if !ok {
		return
	}

	stats, err := h.history.AcceptanceRate(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcceptanceRate(stats))
}

// @Summary Top alternatives
// @Description Most frequently accepted alternative resources
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param program_id query string false "Program ID"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.AlternativeUsageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /analytics/top-alternatives [get]
func (h *AnalyticsHandler) TopAlternatives(c *gin.Context) {
	filters, ok := h.parseFilters(c)
	if !ok {
		return
	}
	limit := h.parseLimit(c)

	usage, err := h.history.TopAlternatives(c.Request.Context(), filters, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.AlternativeUsageResponse, len(usage))
	for i, u := range usage {
		response[i] = resdto.FromAlternativeUsage(u)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Policy effectiveness
// @Description Composite 0-100 score of how well a program's policy performs
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {object} resdto.PolicyEffectivenessResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /analytics/programs/{programId}/effectiveness [get]
func (h *AnalyticsHandler) PolicyEffectiveness(c *gin.Context) {
	programID, err := uuid.Parse(c.Param("programId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid program ID format",
		})
		return
	}

	eff, err := h.history.PolicyEffectiveness(c.Request.Context(), programID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPolicyEffectiveness(eff))
}

// @Summary History records
// @Description Raw reassignment history, newest first
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param program_id query string false "Program ID"
// @Param user_id query string false "User ID"
// @Param accepted query bool false "Outcome filter"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.HistoryRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /analytics/history [get]
func (h *AnalyticsHandler) History(c *gin.Context) {
	filters, ok := h.parseFilters(c)
	if !ok {
		return
	}
	limit := h.parseLimit(c)

	records, err := h.history.List(c.Request.Context(), filters, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.HistoryRecordResponse, len(records))
	for i, r := range records {
		response[i] = resdto.FromHistoryRecord(r)
	}
	c.JSON(http.StatusOK, response)
}

func (h *AnalyticsHandler) parseFilters(c *gin.Context) (queries.HistoryFilters, bool) {
	var filters queries.HistoryFilters

	for param, target := range map[string]**uuid.UUID{
		"program_id":  &filters.ProgramID,
		"user_id":     &filters.UserID,
		"resource_id": &filters.ResourceID,
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid " + param + " format",
				})
				return filters, false
			}
			*target = &id
		}
	}

	for param, target := range map[string]**time.Time{
		"from": &filters.From,
		"to":   &filters.To,
	} {
		if raw := c.Query(param); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid " + param + " timestamp, use RFC3339",
				})
				return filters, false
			}
			*target = &t
		}
	}

	if raw := c.Query("accepted"); raw != "" {
		accepted, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid accepted flag",
			})
			return filters, false
		}
		filters.Accepted = &accepted
	}

	return filters, true
}

func (h *AnalyticsHandler) parseLimit(c *gin.Context) int32 {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int32(limit)
}
