// Package httpapi serves the console's own HTTP surface: the same /api/v1
// endpoints the frontend consumes, backed by the gateway facade and wrapped
// in the uniform response envelope.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/agentdeck/agentdeck/console-gateway/internal/gateway"
	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handlers holds the handler dependencies.
type Handlers struct {
	Gateway *gateway.Gateway
}

// NewHandlers creates a Handlers instance over the given facade.
func NewHandlers(gw *gateway.Gateway) *Handlers {
	return &Handlers{Gateway: gw}
}

// readPatch reads a partial-update body and verifies it is a JSON object.
// The raw bytes are forwarded untouched so fields absent from the patch
// stay distinguishable from zero values.
func readPatch(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return body, true
}

// ── Agents ───────────────────────────────────────────────────

func (h *Handlers) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Gateway.ListAgents(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	if agents == nil {
		agents = []models.Agent{}
	}
	respondData(w, agents)
}

func (h *Handlers) GetAgent(w http.ResponseWriter, r *http.Request) {
	agent, err := h.Gateway.GetAgent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, agent)
}

func (h *Handlers) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req models.Agent
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	agent, err := h.Gateway.CreateAgent(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	log.Info().Str("agent", agent.Name).Str("id", agent.ID).Msg("agent created")
	respondData(w, agent)
}

func (h *Handlers) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	patch, ok := readPatch(w, r)
	if !ok {
		return
	}
	agent, err := h.Gateway.UpdateAgent(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, agent)
}

func (h *Handlers) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	if err := h.Gateway.DeleteAgent(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, nil)
}

// ── Plugins ──────────────────────────────────────────────────

func (h *Handlers) ListPlugins(w http.ResponseWriter, r *http.Request) {
	plugins, err := h.Gateway.ListPlugins(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	if plugins == nil {
		plugins = []models.Plugin{}
	}
	respondData(w, plugins)
}

func (h *Handlers) GetPlugin(w http.ResponseWriter, r *http.Request) {
	plugin, err := h.Gateway.GetPlugin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, plugin)
}

func (h *Handlers) CreatePlugin(w http.ResponseWriter, r *http.Request) {
	var req models.Plugin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	plugin, err := h.Gateway.CreatePlugin(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	log.Info().
		Str("plugin", plugin.Name).
		Str("id", plugin.ID).
		Bool("openapi_import", gateway.HasInvokableOperations(req.OpenAPISpec)).
		Msg("plugin created")
	respondData(w, plugin)
}

func (h *Handlers) ImportPlugin(w http.ResponseWriter, r *http.Request) {
	var req models.Plugin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	plugin, err := h.Gateway.ImportPluginFromOpenAPI(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, plugin)
}

func (h *Handlers) UpdatePlugin(w http.ResponseWriter, r *http.Request) {
	patch, ok := readPatch(w, r)
	if !ok {
		return
	}
	plugin, err := h.Gateway.UpdatePlugin(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, plugin)
}

func (h *Handlers) DeletePlugin(w http.ResponseWriter, r *http.Request) {
	if err := h.Gateway.DeletePlugin(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, nil)
}

func (h *Handlers) TogglePluginStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsEnabled bool `json:"isEnabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	plugin, err := h.Gateway.TogglePluginStatus(r.Context(), chi.URLParam(r, "id"), req.IsEnabled)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, plugin)
}

func (h *Handlers) InvokePluginOperation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Params  map[string]any `json:"params"`
		Timeout int64          `json:"timeout"` // milliseconds
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pluginID := chi.URLParam(r, "id")
	operationID := chi.URLParam(r, "opId")
	result, err := h.Gateway.InvokeOperation(r.Context(), pluginID, operationID, req.Params,
		time.Duration(req.Timeout)*time.Millisecond)
	if err != nil {
		respondErr(w, err)
		return
	}
	log.Info().
		Str("plugin", pluginID).
		Str("operation", operationID).
		Str("status", result.Status).
		Int64("duration_ms", result.Duration).
		Msg("plugin operation invoked")
	respondData(w, result)
}

// ── LLM catalog ──────────────────────────────────────────────

func (h *Handlers) ListLlmModels(w http.ResponseWriter, r *http.Request) {
	list, err := h.Gateway.ListLlmModels(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	if list == nil {
		list = []models.LlmModel{}
	}
	respondData(w, list)
}

func (h *Handlers) GetLlmModel(w http.ResponseWriter, r *http.Request) {
	model, err := h.Gateway.GetLlmModel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, model)
}

func (h *Handlers) CreateLlmModel(w http.ResponseWriter, r *http.Request) {
	var req models.LlmModel
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	model, err := h.Gateway.CreateLlmModel(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, model)
}

func (h *Handlers) UpdateLlmModel(w http.ResponseWriter, r *http.Request) {
	patch, ok := readPatch(w, r)
	if !ok {
		return
	}
	model, err := h.Gateway.UpdateLlmModel(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, model)
}

func (h *Handlers) DeleteLlmModel(w http.ResponseWriter, r *http.Request) {
	if err := h.Gateway.DeleteLlmModel(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, nil)
}

func (h *Handlers) ListLlmProviders(w http.ResponseWriter, r *http.Request) {
	list, err := h.Gateway.ListLlmProviders(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	if list == nil {
		list = []models.LlmProvider{}
	}
	respondData(w, list)
}

// ── Chat ─────────────────────────────────────────────────────

func (h *Handlers) CreateChatSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Gateway.CreateSession(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, session)
}

func (h *Handlers) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	turns, err := h.Gateway.History(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		respondErr(w, err)
		return
	}
	if turns == nil {
		turns = []models.ConversationTurn{}
	}
	respondData(w, turns)
}

func (h *Handlers) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ConversationTurn
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	turn, err := h.Gateway.SendMessage(r.Context(), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondData(w, turn)
}
