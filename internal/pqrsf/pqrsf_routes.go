package pqrsf

import (
	"github.com/gin-gonic/gin"

	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string, rbacService middleware.RBACService) {
	group := r.Group("/pqrsf")
	{
		// Anyone can file a request, authenticated or not.
		group.POST("", middleware.RateLimitByIP(0.2, 5), h.Create)

		authed := group.Group("")
		authed.Use(middleware.AuthMiddleware(jwtSecret))
		{
			authed.GET("", middleware.RBACAuthorize(rbacService, "pqrsf", "read"), h.GetAll)
			authed.GET("/:id", middleware.RBACAuthorize(rbacService, "pqrsf", "read"), h.GetByID)
			authed.PATCH("/:id", middleware.RBACAuthorize(rbacService, "pqrsf", "update"), h.Update)
			authed.POST("/:id/process", middleware.RBACAuthorize(rbacService, "pqrsf", "update"), h.Process)
			authed.DELETE("/:id", middleware.RBACAuthorize(rbacService, "pqrsf", "delete"), h.Delete)
		}
	}
}
