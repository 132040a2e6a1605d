package api

import (
	"time"

	"github.com/pommel-dev/pathkit/internal/config"
)

// =============================================================================
// Request Types
// =============================================================================

// PathRequest is the body of POST /absolute and POST /normalize.
type PathRequest struct {
	Path      string `json:"path"`
	Separator string `json:"separator,omitempty"`
}

// RelativeRequest is the body of POST /relative. Mode overrides the
// configured relative mode for this request only.
type RelativeRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Separator string `json:"separator,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

// StyleRequest is the body of POST /style.
type StyleRequest struct {
	Path  string `json:"path"`
	Style string `json:"style"`
}

// ClassifyRequest is the body of POST /classify. When Against is set the
// response also reports whether Path is a descendant or an ancestor of it.
type ClassifyRequest struct {
	Path      string `json:"path"`
	Against   string `json:"against,omitempty"`
	Component bool   `json:"component,omitempty"`
}

// =============================================================================
// Response Types
// =============================================================================

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// ResultResponse carries the string produced by a path operation.
type ResultResponse struct {
	Result string `json:"result"`
}

// ClassifyResponse reports the classification of a path.
type ClassifyResponse struct {
	Path       string `json:"path"`
	Absolute   bool   `json:"absolute"`
	Relative   bool   `json:"relative"`
	Descendant *bool  `json:"descendant,omitempty"`
	Ancestor   *bool  `json:"ancestor,omitempty"`
}

// ConfigResponse represents the config endpoint response
type ConfigResponse struct {
	Config    *config.Config `json:"config"`
	Separator string         `json:"separator"`
}
