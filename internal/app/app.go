package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diana-hub4/Demo-dian-back/internal/config"
	"github.com/Diana-hub4/Demo-dian-back/internal/shared/connection"
)

func BuildApp(router *gin.Engine, cfg *config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}

	zap.L().Info("infrastructure ready", zap.String("env", cfg.AppEnv))

	return registerModules(router, sqlDB, gormDB, redisClient, cfg)
}
