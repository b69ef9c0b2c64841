package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shutterbook/internal/domain/user"
	"shutterbook/internal/handler/api"
	"shutterbook/internal/handler/middleware"
	"shutterbook/internal/pkg/config"
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
	jobHandler *api.JobHandler,
	paymentHandler *api.PaymentHandler,
	notificationHandler *api.NotificationHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, jobHandler, paymentHandler, notificationHandler, availabilityHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	jobHandler *api.JobHandler,
	paymentHandler *api.PaymentHandler,
	notificationHandler *api.NotificationHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		jobs := apiGroup.Group("/jobs")
		jobs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(jobs, []route{
				{Method: http.MethodPost, Path: "", Handler: jobHandler.CreateJob, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodGet, Path: "", Handler: jobHandler.ListJobs},
				{Method: http.MethodGet, Path: "/:id", Handler: jobHandler.GetJob},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: jobHandler.UpdateStatus},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.InitiateCharge},
				{Method: http.MethodGet, Path: "", Handler: paymentHandler.ListPayments},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.ListNotifications},
				{Method: http.MethodPost, Path: "/read", Handler: notificationHandler.MarkAllRead},
			})
		}

		photographers := apiGroup.Group("/photographers")
		{
			addRoutes(photographers, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.ListSlots},
			})

			authRequired := photographers.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPut, Path: "/:id/availability", Handler: availabilityHandler.ReplaceSlots, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePhotographer)}},
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
