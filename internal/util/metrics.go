package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItemsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_items_created_total",
		Help: "Total number of catalog items created",
	})

	ItemsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_items_updated_total",
		Help: "Total number of catalog items updated",
	})

	ItemsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_items_deleted_total",
		Help: "Total number of catalog items deleted",
	})

	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_searches_total",
		Help: "Total number of catalog search and filter operations",
	}, []string{"kind"})

	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"result"})

	ChatSessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_sessions_total",
		Help: "Total number of chat sessions bootstrapped",
	})

	ChatQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_queries_total",
		Help: "Total number of natural-language chat queries answered",
	})

	ChartRenderLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chart_render_latency_seconds",
		Help:    "Latency of chart rendering via the external renderer",
		Buckets: prometheus.DefBuckets,
	})

	ChartRendersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chart_renders_failed_total",
		Help: "Total number of failed chart render calls",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
