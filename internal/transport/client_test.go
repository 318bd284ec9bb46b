package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agentdeck/agentdeck/console-gateway/internal/transport"
)

// newTestClient spins up a stub backend and a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *transport.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return transport.New(srv.URL, 5*time.Second)
}

func TestDo_UnwrapsEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"code zero", `{"code":0,"message":"success","data":{"id":"agent-1"},"timestamp":1}`},
		{"code two hundred", `{"code":200,"message":"success","data":{"id":"agent-1"},"timestamp":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})

			raw, err := c.Do(context.Background(), http.MethodGet, "/v1/agents/agent-1", nil)
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			var got struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatalf("unmarshal data: %v", err)
			}
			if got.ID != "agent-1" {
				t.Errorf("Do() data.id = %q, want %q", got.ID, "agent-1")
			}
		})
	}
}

func TestDo_BusinessFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":404,"message":"代理不存在","data":null,"timestamp":1}`))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/v1/agents/missing", nil)
	te := asTransportError(t, err)
	if te.Kind != transport.KindBusiness {
		t.Errorf("Kind = %q, want %q", te.Kind, transport.KindBusiness)
	}
	if te.Code != 404 {
		t.Errorf("Code = %d, want 404", te.Code)
	}
	if te.Message != "代理不存在" {
		t.Errorf("Message = %q, want backend message", te.Message)
	}
}

func TestDo_BusinessFailureWithoutMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":1,"data":null}`))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/v1/agents", nil)
	te := asTransportError(t, err)
	if te.Kind != transport.KindBusiness || te.Message != "business error" {
		t.Errorf("got {Kind:%q Message:%q}, want generic business error", te.Kind, te.Message)
	}
}

func TestDo_NonEnvelopeBodyPassesThrough(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"plain object", `{"id":"agent-1","name":"smart home"}`},
		{"bare array", `[{"id":"plugin-1"}]`},
		{"missing data member", `{"code":0,"message":"ok"}`},
		{"non-numeric code", `{"code":"OK","data":{}}`},
		{"not json", `hello world`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			raw, err := c.Do(context.Background(), http.MethodGet, "/v1/whatever", nil)
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if string(raw) != tt.body {
				t.Errorf("Do() = %q, want untouched body %q", raw, tt.body)
			}
		})
	}
}

func TestDo_OctetStreamPassesThrough(t *testing.T) {
	// A body that looks exactly like a failure envelope must not be
	// interpreted when the response is declared binary.
	body := `{"code":500,"message":"not an envelope","data":null}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte(body))
	})

	raw, err := c.Do(context.Background(), http.MethodGet, "/v1/export", nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if string(raw) != body {
		t.Errorf("Do() = %q, want raw bytes", raw)
	}
}

func TestDo_HTTPErrorWithEnvelopeBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":400,"message":"invalid parameter","data":null}`))
	})

	_, err := c.Do(context.Background(), http.MethodPost, "/v1/agents", map[string]string{"name": ""})
	te := asTransportError(t, err)
	if te.Kind != transport.KindTransport {
		t.Errorf("Kind = %q, want %q", te.Kind, transport.KindTransport)
	}
	if te.Code != 400 {
		t.Errorf("Code = %d, want body code 400 over status 500", te.Code)
	}
	if te.Message != "invalid parameter" {
		t.Errorf("Message = %q, want body message", te.Message)
	}
	if te.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", te.Status)
	}
}

func TestDo_HTTPErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/v1/agents", nil)
	te := asTransportError(t, err)
	if te.Kind != transport.KindTransport {
		t.Errorf("Kind = %q, want %q", te.Kind, transport.KindTransport)
	}
	if te.Code != http.StatusServiceUnavailable {
		t.Errorf("Code = %d, want 503", te.Code)
	}
	if te.Message != "HTTP 503" {
		t.Errorf("Message = %q, want %q", te.Message, "HTTP 503")
	}
}

func TestDo_ConnectivityFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens here anymore
	c := transport.New(srv.URL, time.Second)

	_, err := c.Do(context.Background(), http.MethodGet, "/v1/agents", nil)
	te := asTransportError(t, err)
	if te.Kind != transport.KindConnectivity {
		t.Errorf("Kind = %q, want %q", te.Kind, transport.KindConnectivity)
	}
	if te.Message != "network unavailable or no response from server" {
		t.Errorf("Message = %q, want the fixed connectivity message", te.Message)
	}
}

func TestDo_TimeoutIsConnectivity(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer close(release)

	_, err := c.DoTimeout(context.Background(), http.MethodGet, "/v1/slow", nil, 50*time.Millisecond)
	te := asTransportError(t, err)
	if te.Kind != transport.KindConnectivity {
		t.Errorf("Kind = %q, want %q", te.Kind, transport.KindConnectivity)
	}
}

func TestDoBinary(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(payload)
	})

	raw, contentType, err := c.DoBinary(context.Background(), http.MethodGet, "/v1/export", nil)
	if err != nil {
		t.Fatalf("DoBinary() error = %v", err)
	}
	if string(raw) != string(payload) {
		t.Errorf("DoBinary() = %v, want %v", raw, payload)
	}
	if contentType != "application/octet-stream" {
		t.Errorf("DoBinary() content type = %q", contentType)
	}
}

func TestDo_SendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"code":0,"data":{}}`))
	})

	_, err := c.Do(context.Background(), http.MethodPost, "/v1/agents", map[string]any{"name": "n1"})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody["name"] != "n1" {
		t.Errorf("request body = %v, want encoded payload", gotBody)
	}
}

func asTransportError(t *testing.T, err error) *transport.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	te, ok := err.(*transport.Error)
	if !ok {
		t.Fatalf("error type = %T, want *transport.Error", err)
	}
	return te
}
