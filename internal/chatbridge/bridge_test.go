package chatbridge

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBootstrapStablePerUser(t *testing.T) {
	b := NewBroker(nil, "https://chat.example.com/embed", time.Hour, zap.NewNop())
	ctx := context.Background()

	first, err := b.Bootstrap(ctx, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, first.SessionID)
	assert.True(t, strings.HasPrefix(first.EmbedURL, "https://chat.example.com/embed/"))

	second, err := b.Bootstrap(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
}

func TestBootstrapDistinctUsers(t *testing.T) {
	b := NewBroker(nil, "https://chat.example.com/embed", time.Hour, zap.NewNop())
	ctx := context.Background()

	a, err := b.Bootstrap(ctx, "alice")
	require.NoError(t, err)
	c, err := b.Bootstrap(ctx, "bob")
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID, c.SessionID)
}

func TestBootstrapSessionExpiry(t *testing.T) {
	b := NewBroker(nil, "https://chat.example.com/embed", 10*time.Millisecond, zap.NewNop())
	ctx := context.Background()

	first, err := b.Bootstrap(ctx, "admin")
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	second, err := b.Bootstrap(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}
