package app

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.Decompress(logger))
	r.Use(chimiddleware.Compress(5, "application/json", "text/html"))

	// Routes
	r.Get("/ping", h.Ping)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/url", func(r chi.Router) {
		r.Get("/", h.Index)
		r.Post("/shorten", h.CreateLink)
		r.Get("/all", h.ListLinks)
		r.Get("/{code}", h.ResolveLink)
		r.Put("/{code}/update", h.UpdateLink)
		r.Put("/{code}/deactivate", h.DeactivateLink)
		r.Delete("/{code}", h.DeleteLink)
	})

	r.Get("/{code}", h.Redirect)

	return otelhttp.NewHandler(r, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
			return req.Method + " " + req.URL.Path
		}),
	)
}
