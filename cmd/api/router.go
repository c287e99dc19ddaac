package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	commentHandler "catalog-review-backend/internal/domains/comment/handler"
	reviewHandler "catalog-review-backend/internal/domains/review/handler"
	taxonomyHandler "catalog-review-backend/internal/domains/taxonomy/handler"
	titleHandler "catalog-review-backend/internal/domains/title/handler"
	userHandler "catalog-review-backend/internal/domains/user/handler"
	"catalog-review-backend/internal/infrastructure/metrics"
	"catalog-review-backend/internal/shared/middleware"
	"catalog-review-backend/internal/shared/policy"
	"catalog-review-backend/internal/shared/resource"
	"catalog-review-backend/internal/shared/response"
	"catalog-review-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthCheckHandler(c))

	api := mountAPI(v1, c.AuthHandler,
		middleware.NewRateLimiter(c.Config.RateLimit.AuthRPS, c.Config.RateLimit.AuthBurst),
		middleware.AuthMiddleware(c.JWTManager, c.UserService),
	)

	setupUserRoutes(api, c)
	setupTaxonomyRoutes(api, c)
	setupTitleRoutes(api, c)

	return router
}

// mountAPI registers the auth endpoints on v1 and returns the group every
// other route hangs off. Only that group resolves the actor, so a stale
// Authorization header never blocks signup or token exchange.
func mountAPI(v1 *gin.RouterGroup, auth *userHandler.AuthHandler, limiter *middleware.RateLimiter, resolveActor gin.HandlerFunc) *gin.RouterGroup {
	setupAuthRoutes(v1, auth, limiter)
	return v1.Group("", resolveActor)
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, h *userHandler.AuthHandler, limiter *middleware.RateLimiter) {
	auth := v1.Group("/auth", limiter.Handler())
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/token", h.Token)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	me := api.Group("/users/me", middleware.Authorize(policy.SelfProfile))
	{
		me.GET("", c.UserHandler.GetMe)
		me.PATCH("", c.UserHandler.UpdateMe)
	}

	users := api.Group("/users", middleware.Authorize(policy.UserAdmin))
	resource.Mount(users, userHandler.UserParam, resource.CRUD, c.UserHandler.Routes())
}

// ========================================
// CATEGORY & GENRE ROUTES
// ========================================
func setupTaxonomyRoutes(api *gin.RouterGroup, c *container.Container) {
	catalog := middleware.Authorize(policy.Catalog)

	resource.Mount(api.Group("/categories", catalog), taxonomyHandler.SlugParam,
		taxonomyHandler.Capabilities, c.CategoryHandler.Routes())
	resource.Mount(api.Group("/genres", catalog), taxonomyHandler.SlugParam,
		taxonomyHandler.Capabilities, c.GenreHandler.Routes())
}

// ========================================
// TITLE, REVIEW & COMMENT ROUTES
// ========================================
func setupTitleRoutes(api *gin.RouterGroup, c *container.Container) {
	titles := api.Group("/titles", middleware.Authorize(policy.Catalog))
	resource.Mount(titles, titleHandler.TitleParam, resource.CRUD, c.TitleHandler.Routes())

	authored := middleware.Authorize(policy.Authored)

	reviews := api.Group("/titles/:"+titleHandler.TitleParam+"/reviews", authored)
	resource.Mount(reviews, reviewHandler.ReviewParam, resource.CRUD, c.ReviewHandler.Routes())

	comments := api.Group("/titles/:"+titleHandler.TitleParam+"/reviews/:"+reviewHandler.ReviewParam+"/comments", authored)
	resource.Mount(comments, commentHandler.CommentParam, resource.CRUD, c.CommentHandler.Routes())
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		status := gin.H{"database": "up", "redis": "up"}
		code := http.StatusOK

		if err := c.DB.Ping(checkCtx); err != nil {
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if err := c.Redis.Ping(checkCtx); err != nil {
			status["redis"] = "down"
		}
		if stats, err := c.DB.Stats(); err == nil {
			status["pool"] = stats
		}

		if code != http.StatusOK {
			response.ErrorWithDetails(ctx, code, "UNAVAILABLE", "Service unavailable", status)
			return
		}
		response.Success(ctx, code, status)
	}
}
