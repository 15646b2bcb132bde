package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	settingsKey        = "settings:default"
	votingEnabledField = "voting_enabled"
	// 每次失效遞增，讀取端回填前比對，避免舊值蓋回快取
	generationKey = "settings:default:generation"
)

type VotingFlagCache interface {
	// 讀取：found 為 false 表示快取未命中
	GetVotingEnabled(ctx context.Context) (enabled bool, found bool, err error)
	// 回填前先取得的世代編號
	Generation(ctx context.Context) (int64, error)
	// 只有世代未變時才寫入，stored 為 false 表示期間有人失效過快取
	SetVotingEnabled(ctx context.Context, enabled bool, generation int64) (stored bool, err error)
	// 刪除快取並遞增世代
	Invalidate(ctx context.Context) error
}

type RedisVotingFlagCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisVotingFlagCache(client *redis.Client, ttl time.Duration) VotingFlagCache {
	return &RedisVotingFlagCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisVotingFlagCacheImpl) GetVotingEnabled(ctx context.Context) (bool, bool, error) {
	enabled, err := c.client.HGet(ctx, settingsKey, votingEnabledField).Bool()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return enabled, true, nil
}

func (c *RedisVotingFlagCacheImpl) Generation(ctx context.Context) (int64, error) {
	return readGeneration(ctx, c.client)
}

func (c *RedisVotingFlagCacheImpl) SetVotingEnabled(ctx context.Context, enabled bool, generation int64) (bool, error) {
	stored := false
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}

		// HSET 與 EXPIRE 在同一個 MULTI 內執行，避免留下沒有 TTL 的 key
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, settingsKey, votingEnabledField, enabled)
			pipe.Expire(ctx, settingsKey, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, generationKey)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored, nil
}

func (c *RedisVotingFlagCacheImpl) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, settingsKey)
		return nil
	})
	return err
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, cmd getter) (int64, error) {
	generation, err := cmd.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}
