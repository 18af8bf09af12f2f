// Package chatbridge brokers sessions for the third-party conversational
// widget. Only the request/response contract is implemented here; the widget
// itself is an external collaborator.
package chatbridge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"catalog-service/internal/redisclient"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the bootstrap result handed to the embedding client.
type Session struct {
	SessionID string `json:"sessionId"`
	EmbedURL  string `json:"embedUrl"`
	ExpiresIn string `json:"expiresIn"`
}

// SessionCache stores engagement ids per stable user identity.
type SessionCache interface {
	SetSession(ctx context.Context, userID, sessionID string, ttl time.Duration) error
	GetSession(ctx context.Context, userID string) (string, error)
}

// Broker mints engagement ids and builds embeddable endpoint URLs. Sessions
// are cached per identity so repeat bootstraps within the TTL return the same
// engagement id.
type Broker struct {
	cache        SessionCache
	embedBaseURL string
	ttl          time.Duration
	logger       *zap.Logger
}

// NewBroker creates a broker backed by the given cache. Pass a nil *Client to
// fall back to an in-process cache (used when Redis is unreachable).
func NewBroker(cache *redisclient.Client, embedBaseURL string, ttl time.Duration, logger *zap.Logger) *Broker {
	var c SessionCache
	if cache != nil {
		c = cache
	} else {
		logger.Warn("Chat session cache falling back to in-process memory")
		c = newMemoryCache()
	}
	return &Broker{
		cache:        c,
		embedBaseURL: embedBaseURL,
		ttl:          ttl,
		logger:       logger,
	}
}

// Bootstrap returns the session for the given identity, minting a new
// engagement id when none is cached.
func (b *Broker) Bootstrap(ctx context.Context, userID string) (Session, error) {
	sessionID, err := b.cache.GetSession(ctx, userID)
	if err != nil {
		return Session{}, fmt.Errorf("session cache lookup failed: %w", err)
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
		if err := b.cache.SetSession(ctx, userID, sessionID, b.ttl); err != nil {
			return Session{}, fmt.Errorf("session cache store failed: %w", err)
		}
		b.logger.Info("Chat session created",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID))
	}

	return Session{
		SessionID: sessionID,
		EmbedURL:  fmt.Sprintf("%s/%s", b.embedBaseURL, sessionID),
		ExpiresIn: b.ttl.String(),
	}, nil
}

// memoryCache is the in-process fallback used when Redis is unavailable.
// Expiry is checked lazily on read.
type memoryCache struct {
	mu sync.Mutex
	m  map[string]memoryEntry
}

type memoryEntry struct {
	sessionID string
	expiresAt time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{m: make(map[string]memoryEntry)}
}

func (c *memoryCache) SetSession(_ context.Context, userID, sessionID string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[userID] = memoryEntry{sessionID: sessionID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *memoryCache) GetSession(_ context.Context, userID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[userID]
	if !ok || time.Now().After(e.expiresAt) {
		delete(c.m, userID)
		return "", nil
	}
	return e.sessionID, nil
}
