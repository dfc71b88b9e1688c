package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), h.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.GET("/me", middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByUser(2, 5), h.Me)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.05, 3), h.ForgotPassword)
		auth.POST("/reset-password", middleware.RateLimitByIP(0.1, 3), h.ResetPassword)
	}
}
