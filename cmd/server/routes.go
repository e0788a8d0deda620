package main

import (
	"net/http"

	"bookworm.backend/internal/interfaces/http/handlers"
	"bookworm.backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	authMiddleware gin.HandlerFunc
}

// registerRoutes wires the API surface. Trailing slashes are part of the
// contract the mobile and web clients already depend on.
func registerRoutes(r *gin.Engine, d routeDeps) {
	r.POST("/register/", d.authHandler.Register)
	r.POST("/verify-otp/", d.authHandler.VerifyOTP)
	r.POST("/login/", d.authHandler.Login)

	protected := r.Group("/", d.authMiddleware)
	{
		protected.POST("/logout/", d.authHandler.Logout)
		protected.GET("/authenticated/", d.authHandler.CurrentUser)
		protected.GET("/me/", d.authHandler.CurrentUser)
	}

	r.GET("/metrics", middleware.MetricsHandler())
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "bookworm-backend",
			"version": "1.0.0",
		})
	})
}
