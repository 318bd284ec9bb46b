// Package models defines the domain entities shared by the console gateway:
// agents, plugins, LLM catalogs, and chat sessions. Field names follow the
// console's canonical camelCase wire format; timestamps are kept as strings
// because the two backends emit different formats (RFC 3339 from the
// simulated store, zone-less LocalDateTime from the upstream service).
package models

// ── Status constants ─────────────────────────────────────────

const (
	AgentStatusDraft     = "draft"
	AgentStatusPublished = "published"
)

const (
	PluginStatusEnabled  = "enabled"
	PluginStatusDisabled = "disabled"
)

const (
	AuthTypeNone   = "none"
	AuthTypeAPIKey = "api_key"
	AuthTypeOAuth  = "oauth"
)

const (
	TurnTypeChat  = "chat"
	TurnTypeDebug = "debug"
)

// ── Agent ────────────────────────────────────────────────────

// Agent is a configurable assistant: a prompt, a model configuration, and
// references to the knowledge bases and plugins it may use.
type Agent struct {
	ID             string         `json:"id,omitempty"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Prompt         string         `json:"prompt,omitempty"`
	PromptTemplate string         `json:"promptTemplate,omitempty"`
	ModelConfig    map[string]any `json:"modelConfig,omitempty"`
	Status         string         `json:"status,omitempty"` // draft | published
	UserID         string         `json:"userId,omitempty"`
	WorkflowID     string         `json:"workflowId,omitempty"`
	KbIDs          []string       `json:"kbIds,omitempty"`
	ToolsConfig    []string       `json:"toolsConfig,omitempty"` // plugin IDs
	CreateTime     string         `json:"createTime,omitempty"`
	UpdateTime     string         `json:"updateTime,omitempty"`
}

// ── Plugin ───────────────────────────────────────────────────

// Plugin is an externally described tool. OpenAPISpec holds the raw OpenAPI
// document supplied by the user; when it declares paths, creation goes
// through the import flow instead of a plain insert.
//
// Invariant: IsEnabled must equal (Status == "enabled") after every
// status-changing operation.
type Plugin struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Identifier  string         `json:"identifier"`
	Description string         `json:"description,omitempty"`
	OpenAPISpec map[string]any `json:"openapiSpec,omitempty"`
	Status      string         `json:"status,omitempty"` // enabled | disabled
	IsEnabled   bool           `json:"isEnabled"`
	AuthType    string         `json:"authType,omitempty"` // none | api_key | oauth
	AuthConfig  map[string]any `json:"authConfig,omitempty"`
	UserID      string         `json:"userId,omitempty"`
	CreateTime  string         `json:"createTime,omitempty"`
	UpdateTime  string         `json:"updateTime,omitempty"`
}

// PluginOperation is one invokable action derived from an OpenAPI path
// entry, as persisted by the upstream service.
type PluginOperation struct {
	ID           string         `json:"id,omitempty"`
	PluginID     string         `json:"pluginId,omitempty"`
	OperationID  string         `json:"operationId"`
	Name         string         `json:"name,omitempty"`
	Method       string         `json:"method,omitempty"`
	Path         string         `json:"path,omitempty"`
	Description  string         `json:"description,omitempty"`
	InputSchema  map[string]any `json:"inputSchema,omitempty"`
	OutputSchema map[string]any `json:"outputSchema,omitempty"`
	CreateTime   string         `json:"createTime,omitempty"`
	UpdateTime   string         `json:"updateTime,omitempty"`
}

// ── LLM catalog ──────────────────────────────────────────────

type LlmModel struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name"`
	DisplayName        string  `json:"displayName,omitempty"`
	Provider           string  `json:"provider,omitempty"` // LlmProvider.Code
	ModelType          string  `json:"modelType,omitempty"`
	APIBase            string  `json:"apiBase,omitempty"`
	APIKey             string  `json:"apiKey,omitempty"`
	APIVersion         string  `json:"apiVersion,omitempty"`
	MaxTokens          int     `json:"maxTokens,omitempty"`
	Temperature        float64 `json:"temperature,omitempty"`
	TopP               float64 `json:"topP,omitempty"`
	EnableDeepThinking bool    `json:"enableDeepThinking"`
	FrequencyPenalty   float64 `json:"frequencyPenalty,omitempty"`
	PresencePenalty    float64 `json:"presencePenalty,omitempty"`
	Config             string  `json:"config,omitempty"`
	Description        string  `json:"description,omitempty"`
	IsActive           bool    `json:"isActive"`
	IsDefault          bool    `json:"isDefault"`
	IsSystem           bool    `json:"isSystem"`
	SortOrder          int     `json:"sortOrder,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt,omitempty"`
}

type LlmProvider struct {
	ID             string `json:"id,omitempty"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	ApplyURL       string `json:"applyUrl,omitempty"`
	DocURL         string `json:"docUrl,omitempty"`
	DefaultAPIBase string `json:"defaultApiBase,omitempty"`
	HasFreeQuota   bool   `json:"hasFreeQuota"`
	Icon           string `json:"icon,omitempty"`
	TagType        string `json:"tagType,omitempty"`
	Country        string `json:"country,omitempty"`
	SortOrder      int    `json:"sortOrder,omitempty"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// ── Chat ─────────────────────────────────────────────────────

// ChatSession is created empty and bound to an agent by the first message.
type ChatSession struct {
	ID        string `json:"sessionId"`
	AgentID   string `json:"agentId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CreateSessionResponse matches the upstream session-creation payload.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// ConversationMetadata carries model attribution and token accounting for
// one turn.
type ConversationMetadata struct {
	LlmModelID       string   `json:"llmModelId,omitempty"`
	PromptTokens     int      `json:"promptTokens,omitempty"`
	CompletionTokens int      `json:"completionTokens,omitempty"`
	TotalTokens      int      `json:"totalTokens,omitempty"`
	References       []string `json:"references,omitempty"`
	Remarks          string   `json:"remarks,omitempty"`
}

// PluginCall records a plugin invocation attached to a turn.
type PluginCall struct {
	PluginID    string         `json:"pluginId"`
	OperationID string         `json:"operationId"`
	Params      map[string]any `json:"params,omitempty"`
}

// ConversationTurn is one query/answer exchange within a session. Turns are
// append-only and ordered by creation time.
type ConversationTurn struct {
	ID               string                `json:"id,omitempty"`
	SessionID        string                `json:"sessionId"`
	AgentID          string                `json:"agentId"`
	UserID           string                `json:"userId,omitempty"`
	Query            string                `json:"query"`
	Answer           string                `json:"answer,omitempty"`
	Metadata         *ConversationMetadata `json:"metadata,omitempty"`
	ConversationType string                `json:"conversationType,omitempty"` // chat | debug
	CreateTime       string                `json:"createTime,omitempty"`
	PluginCall       *PluginCall           `json:"pluginCall,omitempty"`
}

// ── Operation invocation ─────────────────────────────────────

// Invocation statuses, as reported by the upstream invoker.
const (
	InvokeStatusSuccess = "success"
	InvokeStatusError   = "error"
	InvokeStatusTimeout = "timeout"
)

// InvokeResult is the outcome of a plugin operation call. It is returned
// synchronously and never persisted.
type InvokeResult struct {
	Status         string `json:"status"` // success | error | timeout
	HTTPStatusCode int    `json:"httpStatusCode,omitempty"`
	RawBody        string `json:"rawBody,omitempty"`
	ParsedData     any    `json:"parsedData,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	Duration       int64  `json:"duration"` // milliseconds
	RequestURL     string `json:"requestUrl,omitempty"`
	RequestMethod  string `json:"requestMethod,omitempty"`
}

// IsSuccess reports whether the invocation completed successfully.
func (r *InvokeResult) IsSuccess() bool { return r.Status == InvokeStatusSuccess }

// IsTimeout reports whether the invocation exceeded its timeout.
func (r *InvokeResult) IsTimeout() bool { return r.Status == InvokeStatusTimeout }
