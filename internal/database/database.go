package database

import (
	"context"
	"event-voting/config"
	"event-voting/pkg/logger"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const defaultConnectTimeout = 5 * time.Second

// InitDatabase 建立連接池並確認資料庫可連線
func InitDatabase(cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString(cfg))
	if err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	if cfg.ConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.ConnLifetime
	}
	if cfg.ConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = cfg.ConnIdleTime
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	poolConfig.ConnConfig.ConnectTimeout = timeout

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database %s/%s: %w", net.JoinHostPort(cfg.Host, cfg.Port), cfg.DBName, err)
	}

	logger.WithComponent("database").Info("Connected to PostgreSQL",
		zap.String("host", cfg.Host),
		zap.String("db", cfg.DBName),
		zap.Int32("max_conns", cfg.MaxConns),
	)
	return pool, nil
}

func connString(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Path:   cfg.DBName,
	}
	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	q.Set("timezone", "UTC")
	u.RawQuery = q.Encode()
	return u.String()
}
