package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Diana-hub4/Demo-dian-back/internal/auth"
	"github.com/Diana-hub4/Demo-dian-back/internal/client"
	"github.com/Diana-hub4/Demo-dian-back/internal/config"
	"github.com/Diana-hub4/Demo-dian-back/internal/invoice"
	"github.com/Diana-hub4/Demo-dian-back/internal/invoice/dian"
	"github.com/Diana-hub4/Demo-dian-back/internal/messaging/kafka"
	"github.com/Diana-hub4/Demo-dian-back/internal/middleware"
	"github.com/Diana-hub4/Demo-dian-back/internal/payroll"
	"github.com/Diana-hub4/Demo-dian-back/internal/pqrsf"
	"github.com/Diana-hub4/Demo-dian-back/internal/rbac"
	"github.com/Diana-hub4/Demo-dian-back/internal/shared/counter"
	"github.com/Diana-hub4/Demo-dian-back/internal/supplier"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	supplierRepo := supplier.NewRepository(gormDB)
	pqrsfRepo := pqrsf.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	invoiceRepo := invoice.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewServiceWithOutbox(db, authRepo, cfg.JWT, outboxRepo)
	clientService := client.NewService(db, clientRepo)
	supplierService := supplier.NewService(db, supplierRepo)
	pqrsfService := pqrsf.NewService(db, pqrsfRepo)

	payslipRenderer := payroll.NewPDFRenderer(cfg.Payslip.StorageDir, cfg.Payslip.PublicBaseURL)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, payslipRenderer, outboxRepo)

	company := dian.Company{
		NIT:          cfg.DIAN.CompanyNIT,
		Name:         cfg.DIAN.CompanyName,
		TechnicalKey: cfg.DIAN.TechnicalKey,
	}
	invoiceService := invoice.NewService(db, invoiceRepo, counterRepo, company)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	clientHandler := client.NewHandler(clientService)
	supplierHandler := supplier.NewHandler(supplierService)
	pqrsfHandler := pqrsf.NewHandler(pqrsfService)
	payrollHandler := payroll.NewHandler(payrollService)
	invoiceHandler := invoice.NewHandler(invoiceService)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// Generated payslips are served back under their public locator.
	router.Static(cfg.Payslip.PublicBaseURL, cfg.Payslip.StorageDir)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWT.Secret)
		client.RegisterRoutes(api, clientHandler, cfg.JWT.Secret, rbacService)
		supplier.RegisterRoutes(api, supplierHandler, cfg.JWT.Secret, rbacService)
		pqrsf.RegisterRoutes(api, pqrsfHandler, cfg.JWT.Secret, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, cfg.JWT.Secret, rbacService, rdb)
		invoice.RegisterRoutes(api, invoiceHandler, cfg.JWT.Secret, rbacService, rdb)
	}

	return nil
}
