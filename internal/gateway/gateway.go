// Package gateway is the single data-access entry point for the console.
// Each domain area (agents, plugins, LLM catalog, chat) calls one facade
// method; the facade routes to either the in-process simulated store or the
// network backend, decided once at construction. Errors from either backend
// are forwarded to the caller untouched — no retries, no caching.
package gateway

import (
	"encoding/json"

	"github.com/agentdeck/agentdeck/console-gateway/internal/simstore"
	"github.com/agentdeck/agentdeck/console-gateway/internal/transport"
)

// Config carries the routing decision. It is explicit constructor input,
// never ambient global state, so tests can run both backends in the same
// process.
type Config struct {
	// Simulate routes every call to the simulated store.
	Simulate bool
}

// Gateway fronts the two interchangeable backends. The store is shared by
// reference: all facades constructed over the same store observe the same
// dataset.
type Gateway struct {
	simulate bool
	store    *simstore.Store
	client   *transport.Client
}

// New builds a facade. client may be nil when cfg.Simulate is set; store
// may be nil when it is not.
func New(cfg Config, store *simstore.Store, client *transport.Client) *Gateway {
	return &Gateway{simulate: cfg.Simulate, store: store, client: client}
}

// Simulated reports which backend this facade routes to.
func (g *Gateway) Simulated() bool { return g.simulate }

// decodeInto unmarshals an unwrapped response body. Empty bodies (e.g.
// DELETE responses with data: null) are treated as no payload.
func decodeInto(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
