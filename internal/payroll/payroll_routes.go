package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string, rbacService middleware.RBACService, rdb *redis.Client) {
	nominas := r.Group("/nominas")
	nominas.Use(middleware.AuthMiddleware(jwtSecret))
	{
		nominas.POST("",
			middleware.RBACAuthorize(rbacService, "nomina", "create"),
			middleware.Idempotency(rdb),
			h.Create)
		nominas.GET("", middleware.RBACAuthorize(rbacService, "nomina", "read"), h.List)
		nominas.GET("/:id", middleware.RBACAuthorize(rbacService, "nomina", "read"), h.GetByID)
		nominas.PATCH("/:id", middleware.RBACAuthorize(rbacService, "nomina", "update"), h.Update)
		nominas.DELETE("/:id", middleware.RBACAuthorize(rbacService, "nomina", "delete"), h.Delete)
		nominas.POST("/:id/pagar", middleware.RBACAuthorize(rbacService, "nomina", "pay"), h.MarkAsPaid)
		nominas.POST("/:id/pdf", middleware.RBACAuthorize(rbacService, "nomina", "generate"), h.GeneratePDF)
		nominas.GET("/empleado/:employee_id", middleware.RBACAuthorize(rbacService, "nomina", "read"), h.ListByEmployee)
	}
}
