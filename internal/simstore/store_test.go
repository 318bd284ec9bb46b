package simstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/agentdeck/agentdeck/console-gateway/internal/simstore"
	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// newTestStore creates a seeded store with latency disabled.
func newTestStore(t *testing.T, opts ...simstore.Option) *simstore.Store {
	t.Helper()
	return simstore.New(append([]simstore.Option{simstore.WithoutLatency()}, opts...)...)
}

// tickingClock returns a clock that advances one millisecond per call, so
// timestamp ordering is deterministic.
func tickingClock() func() time.Time {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var n int64
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Millisecond)
	}
}

// ─── Agent CRUD ──────────────────────────────────────────────

func TestCreateAgent_AssignsIdentityAndTimestamps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateAgent(ctx, models.Agent{
		ID:         "caller-supplied",
		Name:       "test-agent",
		Status:     models.AgentStatusDraft,
		CreateTime: "1999-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateAgent() error = %v", err)
	}
	if created.ID == "caller-supplied" || !strings.HasPrefix(created.ID, "agent-") {
		t.Errorf("CreateAgent() ID = %q, want store-assigned agent-<ms>", created.ID)
	}
	if created.CreateTime == "1999-01-01T00:00:00Z" || created.CreateTime == "" {
		t.Errorf("CreateAgent() CreateTime = %q, want store-stamped", created.CreateTime)
	}
	if created.UpdateTime != created.CreateTime {
		t.Errorf("CreateAgent() UpdateTime = %q, want %q", created.UpdateTime, created.CreateTime)
	}

	got, err := s.GetAgent(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAgent() error = %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Errorf("GetAgent() = %+v, want %+v", got, created)
	}
}

func TestCreateAgent_MonotonicIdentities(t *testing.T) {
	// A frozen clock forces every create into the same millisecond; the
	// store must still hand out distinct identities.
	frozen := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newTestStore(t, simstore.WithClock(func() time.Time { return frozen }))
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		created, err := s.CreateAgent(ctx, models.Agent{Name: "dup"})
		if err != nil {
			t.Fatalf("CreateAgent() error = %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("CreateAgent() reused identity %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestUpdateAgent_PreservesIdentityAndCreateTime(t *testing.T) {
	s := newTestStore(t, simstore.WithClock(tickingClock()))
	ctx := context.Background()

	created, err := s.CreateAgent(ctx, models.Agent{Name: "before", Status: models.AgentStatusDraft})
	if err != nil {
		t.Fatalf("CreateAgent() error = %v", err)
	}

	updated, err := s.UpdateAgent(ctx, created.ID,
		json.RawMessage(`{"id":"evil-id","name":"after","status":"published"}`))
	if err != nil {
		t.Fatalf("UpdateAgent() error = %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("UpdateAgent() ID = %q, want %q", updated.ID, created.ID)
	}
	if updated.Name != "after" || updated.Status != models.AgentStatusPublished {
		t.Errorf("UpdateAgent() = %+v, patch not applied", updated)
	}
	if updated.CreateTime != created.CreateTime {
		t.Errorf("UpdateAgent() CreateTime = %q, want unchanged %q", updated.CreateTime, created.CreateTime)
	}
	before, err := time.Parse(time.RFC3339Nano, created.UpdateTime)
	if err != nil {
		t.Fatalf("parse created UpdateTime %q: %v", created.UpdateTime, err)
	}
	after, err := time.Parse(time.RFC3339Nano, updated.UpdateTime)
	if err != nil {
		t.Fatalf("parse updated UpdateTime %q: %v", updated.UpdateTime, err)
	}
	if !after.After(before) {
		t.Errorf("UpdateAgent() UpdateTime = %q, want later than %q", updated.UpdateTime, created.UpdateTime)
	}
}

func TestUpdateAgent_MergesPartialRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateAgent(ctx, models.Agent{
		Name:        "keep-me",
		Description: "original description",
		ToolsConfig: []string{"plugin-001-led"},
	})
	if err != nil {
		t.Fatalf("CreateAgent() error = %v", err)
	}

	updated, err := s.UpdateAgent(ctx, created.ID, json.RawMessage(`{"name":"renamed"}`))
	if err != nil {
		t.Fatalf("UpdateAgent() error = %v", err)
	}
	if updated.Description != "original description" {
		t.Errorf("UpdateAgent() dropped Description = %q", updated.Description)
	}
	if len(updated.ToolsConfig) != 1 {
		t.Errorf("UpdateAgent() dropped ToolsConfig = %v", updated.ToolsConfig)
	}
}

func TestUpdateAgent_RejectsNonObjectPatch(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.UpdateAgent(context.Background(), "agent-001-smarthome", json.RawMessage(`"renamed"`)); err == nil {
		t.Error("UpdateAgent() error = nil, want rejection of non-object patch")
	}
}

func TestUpdatePlugin_PartialPatchPreservesFlags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// plugin-001-led seeds enabled. A patch that never mentions the
	// enabled flag must not flip it, and the flag must stay consistent
	// with the status string.
	updated, err := s.UpdatePlugin(ctx, "plugin-001-led", json.RawMessage(`{"description":"tweaked"}`))
	if err != nil {
		t.Fatalf("UpdatePlugin() error = %v", err)
	}
	if updated.Description != "tweaked" {
		t.Errorf("UpdatePlugin() Description = %q, patch not applied", updated.Description)
	}
	if updated.Name != "智能灯光控制" || updated.Identifier != "led_controller" {
		t.Errorf("UpdatePlugin() wiped identity fields: name=%q identifier=%q", updated.Name, updated.Identifier)
	}
	if !updated.IsEnabled || updated.Status != models.PluginStatusEnabled {
		t.Errorf("UpdatePlugin() = {IsEnabled:%v Status:%q}, want enabled and consistent",
			updated.IsEnabled, updated.Status)
	}
}

func TestDeleteAgent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateAgent(ctx, models.Agent{Name: "doomed"})
	if err != nil {
		t.Fatalf("CreateAgent() error = %v", err)
	}
	if err := s.DeleteAgent(ctx, created.ID); err != nil {
		t.Fatalf("DeleteAgent() error = %v", err)
	}

	if _, err := s.GetAgent(ctx, created.ID); !isNotFound(err) {
		t.Errorf("GetAgent() after delete error = %v, want ErrNotFound", err)
	}
	// Deleting again must not silently succeed.
	if err := s.DeleteAgent(ctx, created.ID); !isNotFound(err) {
		t.Errorf("DeleteAgent() twice error = %v, want ErrNotFound", err)
	}
}

func TestAgentOperations_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetAgent(ctx, "agent-missing"); !isNotFound(err) {
		t.Errorf("GetAgent() error = %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateAgent(ctx, "agent-missing", json.RawMessage(`{"name":"x"}`)); !isNotFound(err) {
		t.Errorf("UpdateAgent() error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteAgent(ctx, "agent-missing"); !isNotFound(err) {
		t.Errorf("DeleteAgent() error = %v, want ErrNotFound", err)
	}
}

func TestListAgents_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.ListAgents(ctx)
	if err != nil {
		t.Fatalf("ListAgents() error = %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("ListAgents() returned %d seeded agents, want 2", len(first))
	}

	first[0].Name = "mutated"
	second, _ := s.ListAgents(ctx)
	if second[0].Name == "mutated" {
		t.Error("ListAgents() result aliases store data")
	}
}

// ─── Plugin status toggle ────────────────────────────────────

func TestTogglePluginStatus_ConsistencyAcrossSequences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// plugin-003-calendar seeds as disabled.
	for _, enabled := range []bool{true, true, false, true, false, false} {
		plugin, err := s.TogglePluginStatus(ctx, "plugin-003-calendar", enabled)
		if err != nil {
			t.Fatalf("TogglePluginStatus(%v) error = %v", enabled, err)
		}
		wantStatus := models.PluginStatusDisabled
		if enabled {
			wantStatus = models.PluginStatusEnabled
		}
		if plugin.IsEnabled != enabled || plugin.Status != wantStatus {
			t.Fatalf("TogglePluginStatus(%v) = {IsEnabled:%v Status:%q}, want {%v %q}",
				enabled, plugin.IsEnabled, plugin.Status, enabled, wantStatus)
		}

		got, err := s.GetPlugin(ctx, "plugin-003-calendar")
		if err != nil {
			t.Fatalf("GetPlugin() error = %v", err)
		}
		if got.IsEnabled != plugin.IsEnabled || got.Status != plugin.Status {
			t.Fatalf("GetPlugin() = {%v %q}, toggle not persisted", got.IsEnabled, got.Status)
		}
	}
}

func TestTogglePluginStatus_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.TogglePluginStatus(context.Background(), "plugin-missing", true); !isNotFound(err) {
		t.Errorf("TogglePluginStatus() error = %v, want ErrNotFound", err)
	}
}

// ─── LLM models ──────────────────────────────────────────────

func TestLlmModelCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateLlmModel(ctx, models.LlmModel{Name: "test-model", Provider: "qwen", IsActive: true})
	if err != nil {
		t.Fatalf("CreateLlmModel() error = %v", err)
	}
	if !strings.HasPrefix(created.ID, "model-") {
		t.Errorf("CreateLlmModel() ID = %q, want model-<ms>", created.ID)
	}

	updated, err := s.UpdateLlmModel(ctx, created.ID, json.RawMessage(`{"displayName":"Test Model"}`))
	if err != nil {
		t.Fatalf("UpdateLlmModel() error = %v", err)
	}
	if updated.Name != "test-model" || updated.DisplayName != "Test Model" {
		t.Errorf("UpdateLlmModel() = %+v, want merged record", updated)
	}
	if !updated.IsActive {
		t.Error("UpdateLlmModel() flipped IsActive on a patch that omitted it")
	}

	if err := s.DeleteLlmModel(ctx, created.ID); err != nil {
		t.Fatalf("DeleteLlmModel() error = %v", err)
	}
	if _, err := s.GetLlmModel(ctx, created.ID); !isNotFound(err) {
		t.Errorf("GetLlmModel() after delete error = %v, want ErrNotFound", err)
	}
}

func TestListLlmProviders_Seeded(t *testing.T) {
	s := newTestStore(t)
	providers, err := s.ListLlmProviders(context.Background())
	if err != nil {
		t.Fatalf("ListLlmProviders() error = %v", err)
	}
	if len(providers) != 3 {
		t.Fatalf("ListLlmProviders() returned %d providers, want 3", len(providers))
	}
	if providers[0].Code != "qwen" {
		t.Errorf("ListLlmProviders()[0].Code = %q, want %q", providers[0].Code, "qwen")
	}
}

// ─── Invocation ──────────────────────────────────────────────

func TestInvokeOperation_FabricatesSuccess(t *testing.T) {
	s := newTestStore(t)
	result, err := s.InvokeOperation(context.Background(), "plugin-002-temp", "getCurrentTemp", nil)
	if err != nil {
		t.Fatalf("InvokeOperation() error = %v", err)
	}
	if !result.IsSuccess() || result.HTTPStatusCode != 200 {
		t.Errorf("InvokeOperation() = {Status:%q HTTPStatusCode:%d}, want fabricated success",
			result.Status, result.HTTPStatusCode)
	}
	if result.RawBody == "" || result.ParsedData == nil {
		t.Errorf("InvokeOperation() missing body: rawBody=%q parsedData=%v", result.RawBody, result.ParsedData)
	}
}

func isNotFound(err error) bool {
	var nf *simstore.ErrNotFound
	return errors.As(err, &nf)
}
