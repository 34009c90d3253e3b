package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/mediagrab/mediagrab/constant"
	"github.com/mediagrab/mediagrab/log"
	"github.com/mediagrab/mediagrab/util"
	"github.com/sirupsen/logrus"
)

// ErrNoEndpoint is returned by Fetch when no extraction endpoint is configured.
var ErrNoEndpoint = errors.New("extraction endpoint not set, see \"mediagrab config info -k provider.endpoint\"")

// HTTPError reports a non-success status that did not carry a provider error payload.
type HTTPError struct {
	Code int
	Body string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("extraction service responded %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("extraction service responded %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}

// Client requests provider responses from the extraction service.
type Client struct {
	http     *http.Client
	endpoint string
	token    string
}

// NewClient creates a client for endpoint. An empty token sends no Authorization header.
func NewClient(httpClient *http.Client, endpoint, token string) *Client {
	return &Client{
		http:     httpClient,
		endpoint: endpoint,
		token:    token,
	}
}

type fetchRequest struct {
	URL string `json:"url"`
}

const maxErrorBody = 512

// Fetch posts sourceURL to the extraction service and decodes the answer.
// Services that answer a non-2xx status with an error payload yield that
// payload so its message reaches the user.
func (c *Client) Fetch(ctx context.Context, sourceURL string) (*Response, error) {
	if c.endpoint == "" {
		return nil, ErrNoEndpoint
	}

	payload, err := json.Marshal(fetchRequest{URL: sourceURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	requestID := newRequestID()
	req.Header.Set("X-Request-ID", requestID)

	logger := log.WithFields(logrus.Fields{"endpoint": c.endpoint, "url": sourceURL, "request_id": requestID})
	logger.Debug("requesting provider response")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	logger.WithField("status", resp.StatusCode).Debug("provider responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decoded, err := Decode(bytes.NewReader(body)); err == nil && decoded.Failed() {
			return decoded, nil
		}

		text := string(bytes.TrimSpace(body))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return nil, &HTTPError{Code: resp.StatusCode, Body: text}
	}

	return Decode(bytes.NewReader(body))
}

// newRequestID returns a time ordered id so service logs line up with ours.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
