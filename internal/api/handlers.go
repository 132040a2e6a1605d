package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/metrics"
	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// Operation names used as metric labels.
const (
	OpAbsolute  = "absolute"
	OpRelative  = "relative"
	OpNormalize = "normalize"
	OpStyle     = "style"
	OpClassify  = "classify"
)

// state is the configuration a request is served with. It is replaced as a
// whole on reload so a request never sees a resolver built from a different
// config than the one /config reports.
type state struct {
	config   *config.Config
	resolver *pathutil.Resolver
}

// Handler handles HTTP requests for the pathkit API
type Handler struct {
	state     atomic.Pointer[state]
	metrics   *metrics.Metrics
	logger    *slog.Logger
	startTime time.Time
}

// NewHandler creates a new Handler instance
func NewHandler(cfg *config.Config, resolver *pathutil.Resolver, m *metrics.Metrics, logger *slog.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{
		metrics:   m,
		logger:    logger,
		startTime: time.Now(),
	}
	h.Update(cfg, resolver)
	return h
}

// Update swaps the configuration and resolver used by subsequent requests.
func (h *Handler) Update(cfg *config.Config, resolver *pathutil.Resolver) {
	h.state.Store(&state{config: cfg, resolver: resolver})
}

// Resolver returns the resolver currently serving requests.
func (h *Handler) Resolver() *pathutil.Resolver {
	return h.state.Load().resolver
}

// =============================================================================
// Handlers
// =============================================================================

// Health handles GET /health requests
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	writeJSON(w, http.StatusOK, response)
}

// Config handles GET /config requests
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	s := h.state.Load()
	writeJSON(w, http.StatusOK, ConfigResponse{
		Config:    s.config,
		Separator: s.resolver.Separator(),
	})
}

// Absolute handles POST /absolute requests
func (h *Handler) Absolute(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if !decode(w, r, &req) {
		return
	}
	sep := h.separator(req.Separator)

	start := time.Now()
	result, err := h.Resolver().Absolute(req.Path, sep)
	h.metrics.ObserveOperation(OpAbsolute, start, err)
	if err != nil {
		h.logger.Warn("absolute resolution failed", "path", req.Path, "error", err)
		WriteResolverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResultResponse{Result: result})
}

// Relative handles POST /relative requests
func (h *Handler) Relative(w http.ResponseWriter, r *http.Request) {
	var req RelativeRequest
	if !decode(w, r, &req) {
		return
	}
	sep := h.separator(req.Separator)

	resolver := h.Resolver()
	if req.Mode != "" {
		mode, err := pathutil.ParseDiffMode(req.Mode)
		if err != nil {
			WriteBadRequest(w, ErrInvalidMode.WithDetails(err.Error()))
			return
		}
		resolver = resolver.With(pathutil.WithDiffMode(mode))
	}

	start := time.Now()
	result, err := resolver.Relative(req.From, req.To, sep)
	h.metrics.ObserveOperation(OpRelative, start, err)
	if err != nil {
		h.logger.Warn("relative resolution failed", "from", req.From, "to", req.To, "error", err)
		WriteResolverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResultResponse{Result: result})
}

// Normalize handles POST /normalize requests
func (h *Handler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if !decode(w, r, &req) {
		return
	}
	sep := h.separator(req.Separator)

	start := time.Now()
	result := h.Resolver().Normalize(req.Path, sep)
	h.metrics.ObserveOperation(OpNormalize, start, nil)

	writeJSON(w, http.StatusOK, ResultResponse{Result: result})
}

// Style handles POST /style requests
func (h *Handler) Style(w http.ResponseWriter, r *http.Request) {
	var req StyleRequest
	if !decode(w, r, &req) {
		return
	}
	style, err := pathutil.ParseStyle(req.Style)
	if err != nil {
		WriteBadRequest(w, ErrInvalidStyle.WithDetails(err.Error()))
		return
	}

	start := time.Now()
	result := h.Resolver().ToStyle(req.Path, style)
	h.metrics.ObserveOperation(OpStyle, start, nil)

	writeJSON(w, http.StatusOK, ResultResponse{Result: result})
}

// Classify handles POST /classify requests
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !decode(w, r, &req) {
		return
	}

	resolver := h.Resolver()
	if req.Component {
		resolver = resolver.With(pathutil.WithAncestryMode(pathutil.AncestryComponent))
	}

	start := time.Now()
	response := ClassifyResponse{
		Path:     req.Path,
		Absolute: resolver.IsAbsolute(req.Path),
		Relative: resolver.IsRelative(req.Path),
	}

	if req.Against != "" {
		descendant, err := resolver.IsDescendant(req.Path, req.Against)
		if err == nil {
			var ancestor bool
			ancestor, err = resolver.IsAncestor(req.Path, req.Against)
			response.Ancestor = &ancestor
		}
		h.metrics.ObserveOperation(OpClassify, start, err)
		if err != nil {
			h.logger.Warn("classification failed", "path", req.Path, "against", req.Against, "error", err)
			WriteResolverError(w, err)
			return
		}
		response.Descendant = &descendant
	} else {
		h.metrics.ObserveOperation(OpClassify, start, nil)
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// decode reads the JSON request body into v, answering 400 when it cannot.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteBadRequest(w, ErrInvalidJSON.WithDetails(err.Error()))
		return false
	}
	return true
}

// separator maps a requested separator name to a separator. Unknown names
// select the resolver default, like an omitted field.
func (h *Handler) separator(s string) string {
	sep, err := pathutil.ParseSeparator(s)
	if err != nil {
		h.logger.Warn("unknown separator, using default", "separator", s)
		return ""
	}
	return sep
}
