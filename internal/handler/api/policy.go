package api

import (
	"errors"
	"net/http"

	reqdto "campus-reassign/internal/handler/dto/request"
	resdto "campus-reassign/internal/handler/dto/response"
	"campus-reassign/internal/handler/httperr"
	"campus-reassign/internal/pkg/errs"
	"campus-reassign/internal/usecase/commands"
	"campus-reassign/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PolicyHandler struct {
	commands commands.PolicyCommands
	queries  queries.PolicyQueries
}

func NewPolicyHandler(cmds commands.PolicyCommands, qs queries.PolicyQueries) *PolicyHandler {
	return &PolicyHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create policy
// @Description Create the reassignment policy for a program, from a preset or explicit settings
// @Tags policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePolicyRequest true "Policy"
// @Success 201 {object} resdto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var req reqdto.CreatePolicyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreatePolicyParams{
		ProgramID: req.ProgramID,
		Name:      req.Name,
		Preset:    req.Preset,
	}
	if req.Settings != nil {
		settings := req.Settings.ToSettings()
		params.Settings = &settings
	}

	cfg, err := h.commands.CreatePolicy(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPolicyEntity(cfg))
}

// @Summary Get active policy
// @Description Get the active reassignment policy for a program
// @Tags policies
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /programs/{programId}/policy [get]
func (h *PolicyHandler) GetActivePolicy(c *gin.Context) {
	programID, err := uuid.Parse(c.Param("programId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid program ID format",
		})
		return
	}

	view, err := h.queries.GetActiveByProgram(c.Request.Context(), programID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicyView(view))
}

// @Summary Update policy
// @Description Partially update a policy; omitted fields keep their current values
// @Tags policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Policy ID"
// @Param request body reqdto.UpdatePolicyRequest true "Changed fields"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /policies/{id} [patch]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid policy ID format",
		})
		return
	}

	var req reqdto.UpdatePolicyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cfg, err := h.commands.UpdatePolicy(c.Request.Context(), id, req.ToUpdateParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicyEntity(cfg))
}

// @Summary Deactivate policy
// @Description Soft-deactivate a policy; pending requests keep their deadlines
// @Tags policies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Policy ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /policies/{id} [delete]
func (h *PolicyHandler) DeactivatePolicy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid policy ID format",
		})
		return
	}

	if err := h.commands.DeactivatePolicy(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PolicyHandler) writeError(c *gin.Context, err error) {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", validationErr.Violations)
		return
	}

	switch {
	case errors.Is(err, errs.ErrPolicyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Policy not found", nil)
	case errors.Is(err, errs.ErrDuplicatePolicy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Program already has an active policy", nil)
	case errors.Is(err, errs.ErrPolicyDeactivated):
		httperr.AbortWithError(c, http.StatusConflict, err, "Policy is deactivated", nil)
	case errors.Is(err, errs.ErrConcurrentUpdate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Policy was modified concurrently, retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
