package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Storage  StorageConfig
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

type ServerConfig struct {
	Port          string        `env:"PORT" env-default:"8080"`
	GinMode       string        `env:"GIN_MODE" env-default:"release"`
	AllowedOrigin string        `env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE" env-default:"10s"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	DBName   string `env:"DB_NAME" env-default:"postgres"`
	SSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`
	MaxConns int32  `env:"DB_MAX_CONNS" env-default:"25"`
	MinConns int32  `env:"DB_MIN_CONNS" env-default:"5"`
	// 0 表示使用 pgxpool 預設值
	ConnLifetime   time.Duration `env:"DB_CONN_LIFETIME" env-default:"1h"`
	ConnIdleTime   time.Duration `env:"DB_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"5s"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" env-default:"localhost"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	// 投票開關快取的存活時間
	SettingsTTL time.Duration `env:"REDIS_SETTINGS_TTL" env-default:"30s"`
}

type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET" env-required:"true"`
	AdminTokenTTL time.Duration `env:"JWT_EXPIRES_IN" env-default:"168h"`
}

type StorageConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey string `env:"MINIO_SECRET_KEY" env-default:"minioadmin"`
	Bucket    string `env:"MINIO_BUCKET" env-default:"uploads"`
	UseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`
	// 對外可存取的 URL（Docker 內外 host 不同時使用）
	PublicURL string `env:"MINIO_PUBLIC_URL" env-default:""`
}

// LoadConfig 讀取 .env（若存在）後從環境變數載入設定
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	return &cfg, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5433"), // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 25,
		MinConns: 1,
	}

	testRedisConfig := RedisConfig{
		Host:        getEnv("TEST_REDIS_HOST", "localhost"),
		Port:        getEnv("TEST_REDIS_PORT", "6380"), // 測試 Redis 用 6380 port
		Password:    "",
		DB:          1,
		SettingsTTL: 30 * time.Second,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", GinMode: "test", ShutdownGrace: time.Second},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth: AuthConfig{
			JWTSecret:     "test-secret",
			AdminTokenTTL: 24 * time.Hour,
		},
		LogLevel: "debug",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
