// Package gewe is a typed client for the gewe WeChat gateway HTTP API.
//
// Every operation builds a JSON params object, POSTs it to a fixed route
// and hands the decoded response back to the caller unchanged. The gateway
// reports business-level outcomes inside the response body (the "ret"
// field); this layer does not interpret them.
package gewe

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL targets the hosted gateway. Self-hosted deployments
	// expose the same routes under http://<host>:2531/v2/api.
	DefaultBaseURL = "http://api.geweapi.com/gewe/v2/api"

	tokenHeader    = "X-GEWE-TOKEN"
	defaultTimeout = 15 * time.Second
)

// Params is an ad hoc JSON request body built per call site.
type Params map[string]any

// Config carries the settings needed to talk to one gateway account.
type Config struct {
	// BaseURL is the gateway endpoint prefix. Defaults to DefaultBaseURL.
	BaseURL string
	// Token authenticates every request via the X-GEWE-TOKEN header.
	Token string
	// AppID identifies the logged-in device; embedded in most payloads.
	AppID string
	// Timeout bounds each round trip end to end.
	Timeout time.Duration
}

// Client issues requests against the gateway. It is safe for concurrent
// use; each call is independent and carries no state across calls.
type Client struct {
	http    *resty.Client
	baseURL string
	token   string
	appID   string
}

// NewClient builds a Client from cfg, applying defaults for the base URL
// and timeout.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New()
	httpClient.SetTimeout(timeout)

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		token:   strings.TrimSpace(cfg.Token),
		appID:   strings.TrimSpace(cfg.AppID),
	}
}

// AppID returns the device identifier the client embeds in payloads.
func (c *Client) AppID() string { return c.appID }

// Post performs exactly one round trip: params (when non-nil) become the
// JSON body, the token header is attached, and the response body is
// decoded as a JSON object and returned verbatim.
//
// Failures are classified, never retried: a *TransportError wraps
// connection, timeout and TLS problems; a *DecodeError wraps bodies that
// are not a JSON object. A parseable response is returned regardless of
// HTTP status or embedded "ret" code.
func (c *Client) Post(ctx context.Context, route string, params any) (map[string]any, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if c.token != "" {
		req.SetHeader(tokenHeader, c.token)
	}
	if params != nil {
		req.SetBody(params)
	}

	resp, err := req.Post(c.baseURL + route)
	if err != nil {
		return nil, &TransportError{Route: route, Err: err}
	}

	var out map[string]any
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &DecodeError{Route: route, Snippet: bodySnippet(resp.Body()), Err: err}
	}
	return out, nil
}

// RetCode reads the gateway's embedded status code from a response. The
// second return is false when the field is absent or not numeric. Post
// never consults this; interpretation belongs to the caller.
func RetCode(resp map[string]any) (int64, bool) {
	v, ok := resp["ret"]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func bodySnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
