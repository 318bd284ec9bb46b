package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// DefaultInvokeTimeout applies when the caller supplies no timeout for a
// plugin operation invocation.
const DefaultInvokeTimeout = 30 * time.Second

// ListPlugins returns all plugins. Network responses go through field
// reconciliation because the upstream list endpoint uses snake_case names
// and may wrap the result in a pagination envelope.
func (g *Gateway) ListPlugins(ctx context.Context) ([]models.Plugin, error) {
	if g.simulate {
		return g.store.ListPlugins(ctx)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/plugins", nil)
	if err != nil {
		return nil, err
	}
	return reconcilePlugins(raw)
}

func (g *Gateway) GetPlugin(ctx context.Context, id string) (*models.Plugin, error) {
	if g.simulate {
		return g.store.GetPlugin(ctx, id)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/plugins/"+id, nil)
	if err != nil {
		return nil, err
	}
	var plugin models.Plugin
	if err := decodeInto(raw, &plugin); err != nil {
		return nil, err
	}
	return &plugin, nil
}

// CreatePlugin inserts a plugin. When the attached OpenAPI document
// declares at least one path, creation is routed through the import
// endpoint so the upstream service derives the plugin's operations.
func (g *Gateway) CreatePlugin(ctx context.Context, plugin models.Plugin) (*models.Plugin, error) {
	if g.simulate {
		return g.store.CreatePlugin(ctx, plugin)
	}
	if HasInvokableOperations(plugin.OpenAPISpec) {
		return g.ImportPluginFromOpenAPI(ctx, plugin)
	}
	raw, err := g.client.Do(ctx, http.MethodPost, "/v1/plugins", plugin)
	if err != nil {
		return nil, err
	}
	var created models.Plugin
	if err := decodeInto(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ImportPluginFromOpenAPI creates a plugin via the OpenAPI import endpoint.
// Against the simulated store this is a plain insert; the store never
// parses documents.
func (g *Gateway) ImportPluginFromOpenAPI(ctx context.Context, plugin models.Plugin) (*models.Plugin, error) {
	if g.simulate {
		return g.store.CreatePlugin(ctx, plugin)
	}
	raw, err := g.client.Do(ctx, http.MethodPost, "/v1/plugins/import-openapi", NewImportRequest(plugin))
	if err != nil {
		return nil, err
	}
	var created models.Plugin
	if err := decodeInto(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePlugin applies a partial update. The patch stays raw JSON so an
// update that never mentions isEnabled cannot silently disable the plugin.
func (g *Gateway) UpdatePlugin(ctx context.Context, id string, patch json.RawMessage) (*models.Plugin, error) {
	if g.simulate {
		return g.store.UpdatePlugin(ctx, id, patch)
	}
	raw, err := g.client.Do(ctx, http.MethodPut, "/v1/plugins/"+id, patch)
	if err != nil {
		return nil, err
	}
	var updated models.Plugin
	if err := decodeInto(raw, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *Gateway) DeletePlugin(ctx context.Context, id string) error {
	if g.simulate {
		return g.store.DeletePlugin(ctx, id)
	}
	_, err := g.client.Do(ctx, http.MethodDelete, "/v1/plugins/"+id, nil)
	return err
}

// TogglePluginStatus enables or disables a plugin, keeping the status
// string and the enabled flag consistent.
func (g *Gateway) TogglePluginStatus(ctx context.Context, id string, enabled bool) (*models.Plugin, error) {
	if g.simulate {
		return g.store.TogglePluginStatus(ctx, id, enabled)
	}
	raw, err := g.client.Do(ctx, http.MethodPatch, "/v1/plugins/"+id+"/status", map[string]bool{"isEnabled": enabled})
	if err != nil {
		return nil, err
	}
	var plugin models.Plugin
	if err := decodeInto(raw, &plugin); err != nil {
		return nil, err
	}
	return &plugin, nil
}

// ListPluginOperations returns the operations the upstream service derived
// from the plugin's OpenAPI document.
func (g *Gateway) ListPluginOperations(ctx context.Context, pluginID string) ([]models.PluginOperation, error) {
	if g.simulate {
		return g.store.ListPluginOperations(ctx, pluginID)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/plugins/"+pluginID, nil)
	if err != nil {
		return nil, err
	}
	var detail struct {
		Operations []models.PluginOperation `json:"operations"`
	}
	if err := decodeInto(raw, &detail); err != nil {
		return nil, err
	}
	if detail.Operations == nil {
		return []models.PluginOperation{}, nil
	}
	return detail.Operations, nil
}

// InvokeOperation executes one externally described plugin operation. A
// zero timeout means DefaultInvokeTimeout. The timeout travels with the
// payload so the upstream invoker enforces it too.
func (g *Gateway) InvokeOperation(ctx context.Context, pluginID, operationID string, params map[string]any, timeout time.Duration) (*models.InvokeResult, error) {
	if timeout <= 0 {
		timeout = DefaultInvokeTimeout
	}
	if g.simulate {
		return g.store.InvokeOperation(ctx, pluginID, operationID, params)
	}
	payload := map[string]any{
		"params":  params,
		"timeout": timeout.Milliseconds(),
	}
	path := "/v1/plugins/" + pluginID + "/operations/" + operationID + "/invoke"
	raw, err := g.client.DoTimeout(ctx, http.MethodPost, path, payload, timeout)
	if err != nil {
		return nil, err
	}
	var result models.InvokeResult
	if err := decodeInto(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
