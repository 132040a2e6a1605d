package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/metrics"
	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// Router wraps a chi router with handler configuration
type Router struct {
	chi     chi.Router
	handler *Handler
	logger  *slog.Logger
}

// NewRouter creates a new Router with the given dependencies
func NewRouter(cfg *config.Config, resolver *pathutil.Resolver, m *metrics.Metrics, logger *slog.Logger) *Router {
	if m == nil {
		m = metrics.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	handler := NewHandler(cfg, resolver, m, logger)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Recoverer)

	// Register routes
	route := func(name string, h http.HandlerFunc) http.Handler {
		return m.InstrumentHandler(name, h)
	}
	r.Method(http.MethodGet, "/health", route("health", handler.Health))
	r.Method(http.MethodGet, "/config", route("config", handler.Config))
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Method(http.MethodPost, "/absolute", route(OpAbsolute, handler.Absolute))
	r.Method(http.MethodPost, "/relative", route(OpRelative, handler.Relative))
	r.Method(http.MethodPost, "/normalize", route(OpNormalize, handler.Normalize))
	r.Method(http.MethodPost, "/style", route(OpStyle, handler.Style))
	r.Method(http.MethodPost, "/classify", route(OpClassify, handler.Classify))

	return &Router{
		chi:     r,
		handler: handler,
		logger:  logger,
	}
}

// Handler returns the handler behind the routes, used to swap the
// configuration on reload.
func (r *Router) Handler() *Handler {
	return r.handler
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.chi.ServeHTTP(w, req)
}

// requestLogger logs one debug record per request once it has been served.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Debug("request served",
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
