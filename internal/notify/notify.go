package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/atelier-dev/cli/internal/utils"
	"github.com/go-errors/errors"
)

// Event is the progress payload POSTed to the desktop app after an MCP
// install attempt.
type Event struct {
	ProjectID    string `json:"projectId"`
	McpInstalled bool   `json:"mcpInstalled"`
	Message      string `json:"message"`
}

const (
	sendTimeout = 2 * time.Second
	maxInflight = 4
)

// Reporter delivers progress events to the desktop app UI process. Delivery is
// fire-and-forget: sends run on a background queue, are never retried, and
// failures are only ever debug-logged.
type Reporter struct {
	endpoint string
	client   *http.Client
	queue    *utils.JobQueue
}

type ReporterOption func(*Reporter)

func WithHTTPClient(client *http.Client) ReporterOption {
	return func(r *Reporter) {
		r.client = client
	}
}

// NewReporter targets the given endpoint. An empty endpoint disables event
// delivery entirely.
func NewReporter(endpoint string, options ...ReporterOption) *Reporter {
	reporter := &Reporter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: sendTimeout},
		queue:    utils.NewJobQueue(maxInflight),
	}
	for _, apply := range options {
		apply(reporter)
	}
	return reporter
}

// Notify queues one event for delivery and returns immediately. The send
// outlives ctx cancellation but is still bounded by the client timeout.
func (r *Reporter) Notify(ctx context.Context, event Event) {
	if len(r.endpoint) == 0 {
		utils.Debug("Progress event dropped: %s", event.Message)
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		utils.Debug("Failed to marshal progress event: %v", err)
		return
	}
	detached := context.WithoutCancel(ctx)
	if err := r.queue.Put(func() error {
		return r.send(detached, body)
	}); err != nil {
		utils.Debug("Failed to send progress event: %v", err)
	}
}

// Flush waits for queued sends to finish. Call once before process exit.
func (r *Reporter) Flush() {
	if err := r.queue.Collect(); err != nil {
		utils.Debug("Failed to send progress event: %v", err)
	}
}

func (r *Reporter) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Errorf("failed to initialise http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Errorf("failed to execute http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("error status %d: %s", resp.StatusCode, resp.Status)
	}
	return nil
}
