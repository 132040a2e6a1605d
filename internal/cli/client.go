package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pommel-dev/pathkit/internal/api"
	"github.com/pommel-dev/pathkit/internal/daemon"
)

// Client provides methods to communicate with the pathkitd daemon
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the daemon listening on addr.
func NewClient(addr string) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://%s", addr),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// NewClientFromProjectRoot creates a client for the daemon serving
// projectRoot, using the address the daemon recorded when it started.
func NewClientFromProjectRoot(projectRoot string) (*Client, *daemon.DaemonState, error) {
	state, err := daemon.NewStateManager(projectRoot).LoadState()
	if err != nil {
		return nil, nil, err
	}
	if state == nil {
		return nil, nil, ErrDaemonNotRunning()
	}
	return NewClient(state.Address), state, nil
}

// Health checks if the daemon is healthy
func (c *Client) Health() (*api.HealthResponse, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return nil, fmt.Errorf("daemon not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}

	var health api.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}
