package gateway

import "github.com/agentdeck/agentdeck/console-gateway/pkg/models"

// ImportRequest is the normalized payload for the OpenAPI import endpoint.
// The upstream service parses the document's paths into plugin operations.
type ImportRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	BaseURL     string         `json:"baseUrl"`
	OpenAPISpec map[string]any `json:"openapiSpec"`
	AuthType    string         `json:"authType"`
	AuthConfig  map[string]any `json:"authConfig"`
}

// HasInvokableOperations decides whether a plugin creation request is an
// OpenAPI-driven import: the attached document must be a structured object
// whose paths member has at least one key. Anything else — no document, no
// paths member, empty paths — is a plain creation. Document validation
// stays best-effort; malformed documents are not rejected here.
func HasInvokableOperations(spec map[string]any) bool {
	if spec == nil {
		return false
	}
	paths, ok := spec["paths"].(map[string]any)
	return ok && len(paths) > 0
}

// NewImportRequest builds the import payload from a plugin record. The base
// URL comes from the first entry of the document's servers list when
// present; the description falls back to the document's own description.
// This performs no network I/O — the facade issues the actual call.
func NewImportRequest(plugin models.Plugin) ImportRequest {
	spec := plugin.OpenAPISpec

	baseURL := ""
	if servers, ok := spec["servers"].([]any); ok && len(servers) > 0 {
		if first, ok := servers[0].(map[string]any); ok {
			baseURL, _ = first["url"].(string)
		}
	}

	description := plugin.Description
	if description == "" {
		if info, ok := spec["info"].(map[string]any); ok {
			description, _ = info["description"].(string)
		}
	}

	authType := plugin.AuthType
	if authType == "" {
		authType = models.AuthTypeNone
	}
	authConfig := plugin.AuthConfig
	if authConfig == nil {
		authConfig = map[string]any{}
	}

	return ImportRequest{
		Name:        plugin.Name,
		Description: description,
		Type:        "openapi",
		BaseURL:     baseURL,
		OpenAPISpec: spec,
		AuthType:    authType,
		AuthConfig:  authConfig,
	}
}
