package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/config"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/handler"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	dashboardH *handler.DashboardHandler,
	drawingH *handler.DrawingHandler,
	commentH *handler.CommentHandler,
	notificationH *handler.NotificationHandler,
	directoryH *handler.DirectoryHandler,
	accountH *handler.AccountHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Health checks and metrics
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	// Public routes
	v1.POST("/accounts/register", accountH.Register)

	// Protected routes - require a bearer token from the backend
	protected := v1.Group("")
	protected.Use(middleware.Viewer())

	protected.GET("/dashboard", dashboardH.Get)
	protected.GET("/accounts/me", accountH.Profile)

	// Project-scoped routes
	projects := protected.Group("/projects")
	projects.GET("/:id/drawings", drawingH.ListByProject)
	projects.GET("/:id/progress", drawingH.Progress)
	projects.GET("/:id/register.xlsx", exportH.Register)

	// Drawing routes
	drawings := protected.Group("/drawings")
	drawings.GET("/:id", drawingH.Get)
	drawings.POST("/:id/upload", drawingH.Upload)
	drawings.POST("/:id/approve", drawingH.Approve)
	drawings.POST("/:id/issue", drawingH.Issue)
	drawings.POST("/:id/not-applicable", drawingH.MarkNotApplicable)
	drawings.POST("/:id/request-revision", drawingH.RequestRevision)
	drawings.GET("/:id/comments", commentH.List)
	drawings.POST("/:id/comments", commentH.Add)

	// Notification routes
	notifications := protected.Group("/notifications")
	notifications.GET("", notificationH.List)
	notifications.GET("/count", notificationH.Count)
	notifications.POST("/:id/read", notificationH.MarkRead)

	// Directory routes
	directory := protected.Group("/directory")
	directory.GET("/vendors", directoryH.ListVendors)
	directory.POST("/vendors", directoryH.CreateVendor)
	directory.GET("/resources", directoryH.ListResources)
	directory.POST("/resources", directoryH.CreateResource)
	directory.GET("/clients", directoryH.ListClients)
	directory.POST("/clients", directoryH.CreateClient)

	return r
}
