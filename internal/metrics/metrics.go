// Package metrics содержит Prometheus метрики сервиса.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// once защищает от повторной регистрации: registry паникует на дубликатах
	once sync.Once

	// HTTPRequestsTotal число обработанных HTTP запросов по шаблону маршрута
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortlinks_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDurationSeconds распределение длительности HTTP запросов
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shortlinks_http_request_duration_seconds",
			Help:    "HTTP request latency distributions.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// LinkOperations операции жизненного цикла ссылок и их исход
	LinkOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortlinks_operations_total",
			Help: "Short link lifecycle operations by result.",
		},
		[]string{"operation", "result"},
	)

	// CacheOperations обращения к кэшу ссылок
	CacheOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortlinks_cache_operations_total",
			Help: "Link cache lookups by result.",
		},
		[]string{"result"},
	)

	// ClicksDropped переходы, не учтённые из-за переполнения очереди
	ClicksDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shortlinks_clicks_dropped_total",
			Help: "Clicks dropped because the click queue was full.",
		},
	)

	// EventsPublished публикации событий жизненного цикла
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortlinks_events_published_total",
			Help: "Lifecycle events handed to the publisher by result.",
		},
		[]string{"event", "result"},
	)
)

// Init регистрирует метрики в реестре по умолчанию
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			LinkOperations,
			CacheOperations,
			ClicksDropped,
			EventsPublished,
		)
	})
}
