package client

import (
	"github.com/gin-gonic/gin"

	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string, rbacService middleware.RBACService) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware(jwtSecret))
	{
		clients.POST("", middleware.RBACAuthorize(rbacService, "client", "create"), h.Create)
		clients.GET("", middleware.RBACAuthorize(rbacService, "client", "read"), h.GetAll)
		clients.GET("/:id", middleware.RBACAuthorize(rbacService, "client", "read"), h.GetByID)
		clients.PATCH("/:id", middleware.RBACAuthorize(rbacService, "client", "update"), h.Update)
		clients.DELETE("/:id", middleware.RBACAuthorize(rbacService, "client", "delete"), h.Delete)
	}
}
