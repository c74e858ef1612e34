package http

import (
	"github.com/gin-gonic/gin"

	"github.com/joblens/joblens-backend/internal/delivery/http/handler"
	"github.com/joblens/joblens-backend/internal/delivery/http/middleware"
)

type Router struct {
	feedHandler    *handler.FeedHandler
	importHandler  *handler.ImportHandler
	authMiddleware *middleware.AuthMiddleware
	adminKey       *middleware.AdminKeyMiddleware
}

func NewRouter(
	feedHandler *handler.FeedHandler,
	importHandler *handler.ImportHandler,
	authMiddleware *middleware.AuthMiddleware,
	adminKey *middleware.AdminKeyMiddleware,
) *Router {
	return &Router{
		feedHandler:    feedHandler,
		importHandler:  importHandler,
		authMiddleware: authMiddleware,
		adminKey:       adminKey,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Matched feed (authenticated users)
		jobs := v1.Group("/jobs")
		jobs.Use(r.authMiddleware.RequireAuth())
		{
			jobs.GET("/feed", r.feedHandler.GetFeed)
		}

		// Back-office routes (importer/cron collaborators)
		admin := v1.Group("/admin")
		admin.Use(r.adminKey.RequireAdminKey())
		{
			admin.POST("/jobs/import", r.importHandler.ImportJobs)
			admin.POST("/jobs/expire", r.importHandler.ExpireJobs)
		}
	}

	return router
}
