package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/RaginiSharma01/GoPay-Lite/internal/common"
	"github.com/google/uuid"
)

// requestOptions parameterizes a single call through the transport.
type requestOptions struct {
	// method defaults to GET.
	method string
	// body, when non-nil, is serialized as JSON.
	body any
	// headers may override the defaults but never remove Content-Type.
	headers map[string]string
	// auth makes the call carry the stored bearer credential. When no
	// credential is stored the call fails with common.ErrUnauthorized
	// before touching the network.
	auth bool
}

// request issues one HTTP call against the configured base origin and
// returns the raw decoded JSON body, or nil for a 204 response.
//
// Failure taxonomy: common.ErrRequestTimeout when the deadline fires,
// *APIError for a non-2xx response, and transport or JSON parse errors
// propagated unchanged.
func (c *HTTPClient) request(ctx context.Context, path string, opts requestOptions) (json.RawMessage, error) {
	method := opts.method
	if method == "" {
		method = http.MethodGet
	}

	var token string
	if opts.auth {
		t, err := c.sessions.Token(ctx)
		if err != nil {
			return nil, err
		}
		if t == "" {
			return nil, common.ErrUnauthorized
		}
		token = t
	}

	var body io.Reader
	if opts.body != nil {
		data, err := json.Marshal(opts.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.log.Warn(ctx, "request deadline exceeded", "method", method, "path", path)
			return nil, common.ErrRequestTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, common.ErrRequestTimeout
		}
		return nil, err
	}

	// The body is decoded before the status is inspected, so an
	// undecodable error body surfaces as the parse error itself.
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := decoded.(map[string]any)
		apiErr := NewAPIError(resp.StatusCode, payload)
		c.log.Debug(ctx, "request failed",
			"method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	return json.RawMessage(data), nil
}

// unmarshal decodes a raw response into T. A nil raw body (204) yields
// a zero value.
func unmarshal[T any](raw json.RawMessage) (*T, error) {
	var out T
	if raw == nil {
		return &out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
