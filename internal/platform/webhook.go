// Package platform implements the adapters the dispatch engine fans out to:
// webhook adapters that POST manifests to real endpoints, and simulated
// adapters for local runs without any network.
package platform

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
)

// #endregion

// #region webhook

// WebhookAdapter submits manifests to a platform's ingest endpoint as JSON
// over HTTP. The endpoint answers with the published URL and the engagement
// counts it attributes to the post.
type WebhookAdapter struct {
	name     string
	endpoint string
	client   *http.Client // optional; defaults to http.DefaultClient
}

// NewWebhookAdapter creates an adapter for one platform endpoint.
func NewWebhookAdapter(name, endpoint string, client *http.Client) *WebhookAdapter {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookAdapter{name: name, endpoint: endpoint, client: client}
}

// Name returns the platform identifier this adapter serves.
func (a *WebhookAdapter) Name() string { return a.name }

// Submit POSTs the manifest and decodes the platform's reply.
func (a *WebhookAdapter) Submit(ctx context.Context, m *dispatch.Manifest) (dispatch.Outcome, error) {
	payload := webhookPayload{
		RouteID:   m.RouteID,
		Schema:    m.Schema,
		Content:   m.Content,
		Cluster:   m.Cluster,
		Tone:      m.Tone.Dominant,
		Glyphs:    m.Tone.Pattern,
		Priority:  m.Priority,
		Timestamp: m.Timestamp,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return dispatch.Outcome{}, fmt.Errorf("marshal manifest: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return dispatch.Outcome{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return dispatch.Outcome{}, fmt.Errorf("%s request failed: %w", a.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return dispatch.Outcome{}, fmt.Errorf("%s returned status %d: %s", a.name, resp.StatusCode, string(snippet))
	}

	var reply webhookReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return dispatch.Outcome{}, fmt.Errorf("decode %s reply: %w", a.name, err)
	}

	return dispatch.Outcome{
		Success:    true,
		Platform:   a.name,
		URL:        reply.URL,
		Engagement: reply.Engagement,
	}, nil
}

// #endregion webhook

// #region wire types

type webhookPayload struct {
	RouteID   string    `json:"route_id"`
	Schema    string    `json:"schema"`
	Content   string    `json:"content"`
	Cluster   string    `json:"cluster"`
	Tone      int       `json:"tone"`
	Glyphs    string    `json:"glyphs"`
	Priority  float64   `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
}

type webhookReply struct {
	URL        string              `json:"url"`
	Engagement dispatch.Engagement `json:"engagement"`
}

// #endregion wire types
