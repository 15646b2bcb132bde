package database

import (
	"context"
	"event-voting/config"
	"event-voting/pkg/logger"
	"fmt"
	"net"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis 建立 Redis client，只用於投票開關快取
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: defaultConnectTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to reach redis %s: %w", addr, err)
	}

	logger.WithComponent("redis").Info("Connected to Redis", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return rdb, nil
}
