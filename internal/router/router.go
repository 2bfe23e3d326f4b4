package router

import (
	"github.com/gin-gonic/gin"

	"legalease/internal/domain"
	"legalease/internal/handler"
	"legalease/internal/middleware"
	"legalease/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	documentH *handler.DocumentHandler,
	jobH *handler.JobHandler,
	resultH *handler.ResultHandler,
	aiH *handler.AIHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Document upload and processing jobs
	protected.POST("/documents/upload", documentH.Upload)

	jobs := protected.Group("/jobs")
	jobs.GET("", jobH.List)
	jobs.GET("/:id", jobH.GetByID)
	jobs.DELETE("/:id", jobH.Cancel)

	// Processed results
	results := protected.Group("/results")
	results.GET("", resultH.List)
	results.GET("/export", middleware.RequireRole(domain.RoleAdmin), resultH.Export)
	results.GET("/:id", resultH.GetByID)
	results.GET("/:id/download", resultH.Download)
	results.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), resultH.Delete)

	// Direct AI features
	ai := protected.Group("/ai")
	ai.POST("/simplify", aiH.Simplify)
	ai.POST("/question", aiH.Question)
	ai.POST("/security", aiH.Security)

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	return r
}
