package supplier

import (
	"github.com/gin-gonic/gin"

	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string, rbacService middleware.RBACService) {
	suppliers := r.Group("/suppliers")
	suppliers.Use(middleware.AuthMiddleware(jwtSecret))
	{
		suppliers.POST("", middleware.RBACAuthorize(rbacService, "supplier", "create"), h.Create)
		suppliers.GET("", middleware.RBACAuthorize(rbacService, "supplier", "read"), h.GetAll)
		suppliers.GET("/:id", middleware.RBACAuthorize(rbacService, "supplier", "read"), h.GetByID)
		suppliers.PATCH("/:id", middleware.RBACAuthorize(rbacService, "supplier", "update"), h.Update)
		suppliers.DELETE("/:id", middleware.RBACAuthorize(rbacService, "supplier", "delete"), h.Delete)
	}
}
