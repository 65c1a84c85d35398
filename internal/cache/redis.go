package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"macrofit/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisClient caches day-summary projections. Summaries are always
// recomputable from the food logs, so the cache is purely a read
// optimization and every entry carries a TTL.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func summaryKey(userID uint, date string) string {
	return fmt.Sprintf("summary:%d:%s", userID, date)
}

// StoreDaySummary caches one user-day projection with expiration.
func (r *RedisClient) StoreDaySummary(userID uint, date string, summary *models.DaySummaryResponse, duration time.Duration) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	err = r.client.Set(r.ctx, summaryKey(userID, date), jsonData, duration).Err()
	if err != nil {
		return fmt.Errorf("failed to store summary in Redis: %w", err)
	}

	return nil
}

// GetDaySummary returns the cached projection, reporting a miss as
// found == false rather than an error.
func (r *RedisClient) GetDaySummary(userID uint, date string) (*models.DaySummaryResponse, bool, error) {
	data, err := r.client.Get(r.ctx, summaryKey(userID, date)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get summary from Redis: %w", err)
	}

	var summary models.DaySummaryResponse
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, true, nil
}

// InvalidateUserSummaries drops every cached day summary for a user.
// A goal edit changes the goal report embedded in each cached day, so
// all of the user's dates go stale at once.
func (r *RedisClient) InvalidateUserSummaries(userID uint) error {
	pattern := fmt.Sprintf("summary:%d:*", userID)
	iter := r.client.Scan(r.ctx, 0, pattern, 0).Iterator()
	for iter.Next(r.ctx) {
		if err := r.client.Del(r.ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached summary %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached summaries: %w", err)
	}
	return nil
}

// GetStatus reports connection pool health for the debug endpoint.
func (r *RedisClient) GetStatus() (map[string]interface{}, error) {
	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
