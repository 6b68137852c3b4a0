package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPHost string
	HTTPPort string
	APIBase  string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret          string
	JWTAccessTokenTTL  time.Duration
	JWTRefreshSecret   string
	JWTRefreshTokenTTL time.Duration
	JWTResetSecret     string
	JWTResetTokenTTL   time.Duration

	WebAppURL          string
	ConfirmAccountPath string
	ResetPasswordPath  string

	Mail MailConfig

	LogLevel string
}

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignores error if not found)
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	jwtRefreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if jwtRefreshSecret == "" {
		return nil, errors.New("JWT_REFRESH_SECRET environment variable is required")
	}

	jwtResetSecret := os.Getenv("JWT_EMAIL_SECRET")
	if jwtResetSecret == "" {
		return nil, errors.New("JWT_EMAIL_SECRET environment variable is required")
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}

	return &Config{
		HTTPHost:           getEnv("HTTP_HOST", ""),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		APIBase:            getEnv("API_BASE", "/api/v1/"),
		MySQLDSN:           mysqlDSN,
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getIntEnv("REDIS_DB", 0),
		JWTSecret:          jwtSecret,
		JWTAccessTokenTTL:  getDurationEnv("JWT_ACCESS_TOKEN_TTL", 2*time.Hour),
		JWTRefreshSecret:   jwtRefreshSecret,
		JWTRefreshTokenTTL: getDurationEnv("JWT_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		JWTResetSecret:     jwtResetSecret,
		JWTResetTokenTTL:   getDurationEnv("JWT_EMAIL_TOKEN_TTL", 15*time.Minute),
		WebAppURL:          getEnv("WEB_APP_URL", "http://localhost:3000"),
		ConfirmAccountPath: getEnv("CONFIRM_ACCOUNT_PATH", "confirm-account"),
		ResetPasswordPath:  getEnv("RESET_PASSWORD_PATH", "reset-password"),
		Mail: MailConfig{
			Host:     getEnv("MAIL_HOST", "localhost"),
			Port:     getEnv("MAIL_PORT", "587"),
			Username: getEnv("MAIL_USERNAME", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			Sender:   getEnv("MAIL_SENDER", "Task Starter"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

func (c *Config) DSN() string {
	return c.MySQLDSN
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
