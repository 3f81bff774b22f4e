package api

import (
	"errors"
	"net/http"

	reqdto "campus-reassign/internal/handler/dto/request"
	resdto "campus-reassign/internal/handler/dto/response"
	"campus-reassign/internal/handler/httperr"
	"campus-reassign/internal/handler/middleware"
	"campus-reassign/internal/pkg/errs"
	"campus-reassign/internal/usecase/commands"
	"campus-reassign/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReassignmentHandler struct {
	commands commands.ReassignmentCommands
	queries  queries.ReassignmentQueries
}

func NewReassignmentHandler(cmds commands.ReassignmentCommands, qs queries.ReassignmentQueries) *ReassignmentHandler {
	return &ReassignmentHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create reassignment request
// @Description Start the reassignment workflow for a disrupted reservation
// @Tags reassignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReassignmentRequest true "Reassignment request"
// @Success 201 {object} resdto.CreateReassignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reassignments [post]
func (h *ReassignmentHandler) CreateReassignment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReassignmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reason, ok := req.GetReason()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reason",
		})
		return
	}

	result, err := h.commands.CreateReassignmentRequest(c.Request.Context(), commands.CreateReassignmentParams{
		ReservationID:     req.ReservationID,
		RequestedBy:       userID,
		Reason:            reason,
		ProgramID:         req.ProgramID,
		Priority:          req.Priority,
		IsUrgent:          req.IsUrgent,
		RequiredFeatures:  req.RequiredFeatures,
		PreferredFeatures: req.PreferredFeatures,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Get reassignment request
// @Description Get a reassignment request by ID
// @Tags reassignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ReassignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reassignments/{id} [get]
func (h *ReassignmentHandler) GetReassignment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReassignmentView(view))
}

// @Summary List own reassignment requests
// @Description List reassignment requests made by the current user
// @Tags reassignments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReassignmentListResponse
// @Failure 401 {object} map[string]string
// @Router /reassignments [get]
func (h *ReassignmentHandler) ListMyReassignments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListByRequester(c.Request.Context(), userID, 0)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response := make([]*resdto.ReassignmentListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReassignmentListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Respond to reassignment
// @Description Accept or reject the suggested alternative
// @Tags reassignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.RespondReassignmentRequest true "Response"
// @Success 200 {object} resdto.RespondReassignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reassignments/{id}/response [post]
func (h *ReassignmentHandler) RespondToReassignment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.RespondReassignmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userResponse, ok := req.GetResponse()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Response must be ACCEPT or REJECT",
		})
		return
	}

	result, err := h.commands.ProcessUserResponse(c.Request.Context(), commands.UserResponseParams{
		RequestID:          id,
		Response:           userResponse,
		SelectedResourceID: req.SelectedResourceID,
		Notes:              req.Notes,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserResponseResult(result))
}

// @Summary Expire reassignment
// @Description Run the escalation path for a request whose deadline passed
// @Tags reassignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ExpirationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reassignments/{id}/expire [post]
func (h *ReassignmentHandler) ExpireReassignment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.commands.HandleRequestExpiration(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpirationResult(result))
}

// @Summary Auto-approve reassignment
// @Description Apply the suggested alternative without user interaction when policy allows
// @Tags reassignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.AutoReassignmentRequest true "Event proximity"
// @Success 200 {object} resdto.AutoReassignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reassignments/{id}/auto [post]
func (h *ReassignmentHandler) AutoReassign(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.AutoReassignmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.ProcessAutomaticReassignment(c.Request.Context(), id, req.HoursUntilEvent)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAutoReassignmentResult(result))
}

// @Summary Cancel reassignment
// @Description Cancel a reassignment request that is not yet terminal
// @Tags reassignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CancelReassignmentRequest true "Cancellation reason"
// @Success 200 {object} resdto.ReassignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reassignments/{id}/cancel [post]
func (h *ReassignmentHandler) CancelReassignment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.CancelReassignmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	request, err := h.commands.CancelRequest(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestEntity(request))
}

// @Summary Apply rejection penalty
// @Description Deduct priority points after repeated rejections; idempotent per rejection count
// @Tags penalties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyPenaltyRequest true "Penalty request"
// @Success 200 {object} resdto.PenaltyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /penalties [post]
func (h *ReassignmentHandler) ApplyPenalty(c *gin.Context) {
	var req reqdto.ApplyPenaltyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.ApplyRejectionPenalty(c.Request.Context(), commands.PenaltyParams{
		UserID:         req.UserID,
		ProgramID:      req.ProgramID,
		RejectionCount: req.RejectionCount,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPenaltyResult(result))
}

func (h *ReassignmentHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReassignmentHandler) writeError(c *gin.Context, err error) {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", validationErr.Violations)
		return
	}

	switch {
	case errors.Is(err, errs.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reassignment request not found", nil)
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, errs.ErrPolicyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No active policy for program", nil)
	case errors.Is(err, errs.ErrRequestNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request is not in a state that allows this operation", nil)
	case errors.Is(err, errs.ErrRequestNotExpired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Response deadline has not passed yet", nil)
	case errors.Is(err, errs.ErrConcurrentUpdate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request was modified concurrently, retry", nil)
	case errors.Is(err, errs.ErrDependencyFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream dependency failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
