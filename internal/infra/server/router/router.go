// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	categoryController *controller.CategoryController
	goalController     *controller.GoalController
	checkController    *controller.CheckController
	statsController    *controller.StatsController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	goalController *controller.GoalController,
	checkController *controller.CheckController,
	statsController *controller.StatsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		categoryController: categoryController,
		goalController:     goalController,
		checkController:    checkController,
		statsController:    statsController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.Metrics())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}

			// Current user routes (require authentication)
			if r.userController != nil && r.authMiddleware != nil {
				auth.GET("/user", r.authMiddleware.Authenticate(), r.userController.GetCurrent)
				auth.PATCH("/user", r.authMiddleware.Authenticate(), r.userController.UpdatePreferences)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.GET("/:id", r.categoryController.Get)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/reorder", r.goalController.Reorder)
				goals.GET("/:id", r.goalController.Get)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Check routes (require authentication)
		if r.checkController != nil && r.authMiddleware != nil {
			checks := v1.Group("/checks")
			checks.Use(r.authMiddleware.Authenticate())
			{
				checks.GET("/week", r.checkController.Week)
				checks.GET("/date/:date", r.checkController.Date)
				checks.POST("/:goalId/:date", r.checkController.Toggle)
				checks.DELETE("/:id", r.checkController.Delete)
			}
		}

		// Stats routes (require authentication)
		if r.statsController != nil && r.authMiddleware != nil {
			stats := v1.Group("/stats")
			stats.Use(r.authMiddleware.Authenticate())
			{
				stats.GET("/dashboard", r.statsController.Dashboard)
				stats.GET("/streaks", r.statsController.Streaks)
				stats.GET("/scores", r.statsController.Scores)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
