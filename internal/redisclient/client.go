package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps the Redis connection used as the chat session cache.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client and verifies connectivity.
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetSession stores a chat session id for a user identity with a TTL.
func (c *Client) SetSession(ctx context.Context, userID, sessionID string, ttl time.Duration) error {
	return c.rdb.Set(ctx, sessionKey(userID), sessionID, ttl).Err()
}

// GetSession retrieves the cached session id for a user identity.
// A cache miss returns an empty string and no error.
func (c *Client) GetSession(ctx context.Context, userID string) (string, error) {
	val, err := c.rdb.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteSession removes a cached session.
func (c *Client) DeleteSession(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, sessionKey(userID)).Err()
}

func sessionKey(userID string) string {
	return fmt.Sprintf("chat:session:%s", userID)
}
