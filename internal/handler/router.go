package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-reassign/internal/domain/actor"
	"campus-reassign/internal/handler/api"
	"campus-reassign/internal/handler/middleware"
	"campus-reassign/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reassignmentHandler *api.ReassignmentHandler,
	policyHandler *api.PolicyHandler,
	analyticsHandler *api.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reassignmentHandler, policyHandler, analyticsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reassignmentHandler *api.ReassignmentHandler,
	policyHandler *api.PolicyHandler,
	analyticsHandler *api.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		reassignments := apiGroup.Group("/reassignments")
		{
			addRoutes(reassignments, []route{
				{Method: http.MethodPost, Path: "", Handler: reassignmentHandler.CreateReassignment},
				{Method: http.MethodGet, Path: "", Handler: reassignmentHandler.ListMyReassignments},
				{Method: http.MethodGet, Path: "/:id", Handler: reassignmentHandler.GetReassignment},
				{Method: http.MethodPost, Path: "/:id/response", Handler: reassignmentHandler.RespondToReassignment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reassignmentHandler.CancelReassignment},
			})

			supervisorOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleSupervisor)}
			addRoutes(reassignments, []route{
				{Method: http.MethodPost, Path: "/:id/expire", Handler: reassignmentHandler.ExpireReassignment, Mw: supervisorOnly},
				{Method: http.MethodPost, Path: "/:id/auto", Handler: reassignmentHandler.AutoReassign, Mw: supervisorOnly},
			})
		}

		penalties := apiGroup.Group("/penalties")
		penalties.Use(authMiddleware.RequireRoleAtLeast(actor.RoleSupervisor))
		{
			addRoutes(penalties, []route{
				{Method: http.MethodPost, Path: "", Handler: reassignmentHandler.ApplyPenalty},
			})
		}

		policies := apiGroup.Group("/policies")
		policies.Use(authMiddleware.RequireRoleAtLeast(actor.RoleAdmin))
		{
			addRoutes(policies, []route{
				{Method: http.MethodPost, Path: "", Handler: policyHandler.CreatePolicy},
				{Method: http.MethodPatch, Path: "/:id", Handler: policyHandler.UpdatePolicy},
				{Method: http.MethodDelete, Path: "/:id", Handler: policyHandler.DeactivatePolicy},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/programs/:programId/policy", Handler: policyHandler.GetActivePolicy},
		})

		analytics := apiGroup.Group("/analytics")
		analytics.Use(authMiddleware.RequireRoleAtLeast(actor.RoleSupervisor))
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "/acceptance-rate", Handler: analyticsHandler.AcceptanceRate},
				{Method: http.MethodGet, Path: "/top-alternatives", Handler: analyticsHandler.TopAlternatives},
				{Method: http.MethodGet, Path: "/programs/:programId/effectiveness", Handler: analyticsHandler.PolicyEffectiveness},
				{Method: http.MethodGet, Path: "/history", Handler: analyticsHandler.History},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
