package invoice

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string, rbacService middleware.RBACService, rdb *redis.Client) {
	invoices := r.Group("/invoices")
	invoices.Use(middleware.AuthMiddleware(jwtSecret))
	{
		invoices.POST("",
			middleware.RBACAuthorize(rbacService, "invoice", "create"),
			middleware.Idempotency(rdb),
			h.Create)
		invoices.GET("", middleware.RBACAuthorize(rbacService, "invoice", "read"), h.GetAll)
		invoices.GET("/:id", middleware.RBACAuthorize(rbacService, "invoice", "read"), h.GetByID)
		invoices.GET("/cliente/:client_id", middleware.RBACAuthorize(rbacService, "invoice", "read"), h.ListByClient)
		invoices.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "invoice", "update"), h.UpdateStatus)
		invoices.DELETE("/:id", middleware.RBACAuthorize(rbacService, "invoice", "delete"), h.Delete)
	}
}
