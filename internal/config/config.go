package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port    string
	AppEnv  string
	DB      DatabaseConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	JWT     JWTConfig
	SMTP    SMTPConfig
	DIAN    DIANConfig
	Payslip PayslipConfig

	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Broker string
}

type JWTConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// DIANConfig identifies the issuing company towards the tax authority.
type DIANConfig struct {
	CompanyNIT   string
	CompanyName  string
	TechnicalKey string
}

type PayslipConfig struct {
	StorageDir    string
	PublicBaseURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),
		DB: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "conta_dian"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Broker: getEnv("KAFKA_BROKER", "localhost:9092"),
		},
		JWT: JWTConfig{
			Secret:          os.Getenv("JWT_SECRET"),
			AccessTokenTTL:  time.Duration(getEnvInt("JWT_ACCESS_TTL_MINUTES", 15)) * time.Minute,
			RefreshTokenTTL: time.Duration(getEnvInt("JWT_REFRESH_TTL_HOURS", 24*7)) * time.Hour,
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", "no-reply@conta-dian.local"),
		},
		DIAN: DIANConfig{
			CompanyNIT:   getEnv("DIAN_COMPANY_NIT", "123456789-1"),
			CompanyName:  getEnv("DIAN_COMPANY_NAME", "Conta DIAN"),
			TechnicalKey: os.Getenv("DIAN_TECHNICAL_KEY"),
		},
		Payslip: PayslipConfig{
			StorageDir:    getEnv("PAYSLIP_STORAGE_DIR", "storage/nominas"),
			PublicBaseURL: getEnv("PAYSLIP_PUBLIC_BASE_URL", "/files/nominas"),
		},
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if cfg.DB.Host == "" {
		return nil, errors.New("DB_HOST is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
