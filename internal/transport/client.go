// Package transport talks to the upstream console service and normalizes
// its uniform response envelope. Every non-binary response arrives as
// {code, message, data, timestamp}; successful calls return the unwrapped
// data member, failures surface as *Error with a stable taxonomy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Success codes accepted by the envelope. The upstream service emits both.
const (
	codeSuccessZero = 0
	codeSuccessOK   = 200
)

// Client sends JSON requests to the upstream service. It holds no per-call
// state; one instance is shared by the whole gateway.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// New creates a client for the given service root. timeout applies to every
// call unless overridden via DoTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
}

// Do sends one request and returns the unwrapped response body. body is
// JSON-encoded when non-nil. The returned bytes are the envelope's data
// member for conforming responses, or the raw body for non-conforming ones.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, method, path, body, c.timeout)
}

// DoTimeout is Do with a per-call timeout, used for plugin operation
// invocations whose deadline is caller-supplied.
func (c *Client) DoTimeout(ctx context.Context, method, path string, body any, timeout time.Duration) (json.RawMessage, error) {
	return c.do(ctx, method, path, body, timeout)
}

// DoBinary fetches a binary/streaming response. No envelope unwrapping is
// attempted; the raw bytes and content type are returned as-is.
func (c *Client) DoBinary(ctx context.Context, method, path string, body any) ([]byte, string, error) {
	resp, raw, err := c.roundTrip(ctx, method, path, body, c.timeout)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode >= 400 {
		return nil, "", httpError(resp.StatusCode, raw)
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, timeout time.Duration) (json.RawMessage, error) {
	resp, raw, err := c.roundTrip(ctx, method, path, body, timeout)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, httpError(resp.StatusCode, raw)
	}

	// Binary payloads pass through untouched.
	if strings.Contains(resp.Header.Get("Content-Type"), "octet-stream") {
		return raw, nil
	}

	return unwrap(resp.StatusCode, raw)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, timeout time.Duration) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, &Error{Kind: KindTransport, Message: "encode request: " + err.Error()}
		}
		reader = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, &Error{Kind: KindTransport, Message: "build request: " + err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("upstream unreachable")
		return nil, nil, &Error{Kind: KindConnectivity, Message: msgNetworkUnavailable}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: KindConnectivity, Message: msgNetworkUnavailable}
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("upstream request")

	return resp, raw, nil
}

// unwrap applies the envelope rule: an object body carrying both code and
// data unwraps on success and raises a business failure otherwise. Anything
// else returns unmodified (compatibility path for non-conforming endpoints).
func unwrap(status int, raw []byte) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw, nil
	}
	codeRaw, hasCode := fields["code"]
	data, hasData := fields["data"]
	if !hasCode || !hasData {
		return raw, nil
	}

	var code int
	if err := json.Unmarshal(codeRaw, &code); err != nil {
		return raw, nil
	}
	if code == codeSuccessZero || code == codeSuccessOK {
		return data, nil
	}

	msg := envelopeMessage(fields)
	if msg == "" {
		msg = msgBusinessFailure
	}
	return nil, &Error{Kind: KindBusiness, Code: code, Message: msg, Status: status, Body: raw}
}

// httpError maps an HTTP-level error response, preferring the backend's own
// code and message over the bare status.
func httpError(status int, raw []byte) *Error {
	e := &Error{Kind: KindTransport, Code: status, Status: status, Body: raw}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		if codeRaw, ok := fields["code"]; ok {
			var code int
			if err := json.Unmarshal(codeRaw, &code); err == nil {
				e.Code = code
			}
		}
		e.Message = envelopeMessage(fields)
	}
	if e.Message == "" {
		e.Message = "HTTP " + strconv.Itoa(status)
	}
	return e
}

func envelopeMessage(fields map[string]json.RawMessage) string {
	raw, ok := fields["message"]
	if !ok {
		return ""
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ""
	}
	return msg
}
