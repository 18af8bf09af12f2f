package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catalog-service/internal/chatbridge"
	"catalog-service/internal/chartclient"
	"catalog-service/internal/models"
	"catalog-service/internal/query"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// ChatService glues the conversational widget to the catalog: session
// bootstrap, natural-language query answering and chart rendering.
type ChatService struct {
	catalog *CatalogService
	bridge  *chatbridge.Broker
	charts  *chartclient.Client
	logger  *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(catalog *CatalogService, bridge *chatbridge.Broker, charts *chartclient.Client) *ChatService {
	return &ChatService{
		catalog: catalog,
		bridge:  bridge,
		charts:  charts,
		logger:  util.GetLogger(),
	}
}

// BootstrapSession returns the chat session for a stable user identity.
func (s *ChatService) BootstrapSession(ctx context.Context, userID string) (chatbridge.Session, error) {
	ctx, span := util.StartSpan(ctx, "ChatService.BootstrapSession")
	defer span.End()

	session, err := s.bridge.Bootstrap(ctx, userID)
	if err != nil {
		return chatbridge.Session{}, err
	}

	util.ChatSessionsTotal.Inc()
	return session, nil
}

// Answer translates a free-text message into catalog criteria and returns a
// chat-formatted reply plus the matching items. When the extractor finds no
// criteria at all, the message falls through to the catalog-wide search.
func (s *ChatService) Answer(ctx context.Context, message string) (string, []models.Item) {
	ctx, span := util.StartSpan(ctx, "ChatService.Answer")
	defer span.End()

	util.ChatQueriesTotal.Inc()

	criteria := query.Extract(message)

	var results []models.Item
	if criteria.IsZero() {
		results = s.catalog.Search(ctx, strings.TrimSpace(message))
	} else {
		results = s.catalog.Filter(ctx, criteria)
	}

	s.logger.Info("Chat query answered",
		zap.String("message", message),
		zap.Int("matches", len(results)))

	return query.FormatResults(results), results
}

// RenderCategoryChart renders average price per category as a bar chart via
// the external renderer and returns the raw image bytes.
func (s *ChatService) RenderCategoryChart(ctx context.Context) ([]byte, error) {
	ctx, span := util.StartSpan(ctx, "ChatService.RenderCategoryChart")
	defer span.End()

	labels, values := s.catalog.CategoryPriceAverages(ctx)

	start := time.Now()
	img, err := s.charts.RenderBarChart(ctx, "Average price by category", labels, values)
	util.ChartRenderLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		util.ChartRendersFailed.Inc()
		s.logger.Error("Chart render failed", zap.Error(err))
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return img, nil
}
