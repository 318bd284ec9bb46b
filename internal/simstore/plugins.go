package simstore

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// Fixed example payload returned by simulated operation invocations. It
// mirrors the demo temperature plugin so the invocation UI has something
// realistic to render.
const invokeExampleBody = `{"code":200,"data":{"value":25.5,"unit":"°C"}}`

func (s *Store) ListPlugins(ctx context.Context) ([]models.Plugin, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.plugins), nil
}

func (s *Store) GetPlugin(ctx context.Context, id string) (*models.Plugin, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plugins {
		if s.plugins[i].ID == id {
			plugin := s.plugins[i]
			return &plugin, nil
		}
	}
	return nil, &ErrNotFound{Entity: "plugin", Key: id}
}

func (s *Store) CreatePlugin(ctx context.Context, plugin models.Plugin) (*models.Plugin, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	plugin.ID = s.nextID("plugin")
	ts := s.timestamp()
	plugin.CreateTime = ts
	plugin.UpdateTime = ts
	s.plugins = append(s.plugins, plugin)
	return &plugin, nil
}

func (s *Store) UpdatePlugin(ctx context.Context, id string, patch json.RawMessage) (*models.Plugin, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plugins {
		if s.plugins[i].ID != id {
			continue
		}
		merged := s.plugins[i]
		if err := mergeRecord(&merged, patch); err != nil {
			return nil, err
		}
		merged.ID = id
		merged.CreateTime = s.plugins[i].CreateTime
		merged.UpdateTime = s.timestamp()
		s.plugins[i] = merged
		return &merged, nil
	}
	return nil, &ErrNotFound{Entity: "plugin", Key: id}
}

func (s *Store) DeletePlugin(ctx context.Context, id string) error {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plugins {
		if s.plugins[i].ID == id {
			s.plugins = slices.Delete(s.plugins, i, i+1)
			return nil
		}
	}
	return &ErrNotFound{Entity: "plugin", Key: id}
}

// TogglePluginStatus flips the enabled flag and keeps the redundant status
// string consistent with it.
func (s *Store) TogglePluginStatus(ctx context.Context, id string, enabled bool) (*models.Plugin, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plugins {
		if s.plugins[i].ID != id {
			continue
		}
		s.plugins[i].IsEnabled = enabled
		if enabled {
			s.plugins[i].Status = models.PluginStatusEnabled
		} else {
			s.plugins[i].Status = models.PluginStatusDisabled
		}
		plugin := s.plugins[i]
		return &plugin, nil
	}
	return nil, &ErrNotFound{Entity: "plugin", Key: id}
}

// ListPluginOperations returns the operations parsed from a plugin's
// OpenAPI document. The simulated backend never parses documents, so the
// list is always empty.
func (s *Store) ListPluginOperations(ctx context.Context, pluginID string) ([]models.PluginOperation, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	return []models.PluginOperation{}, nil
}

// InvokeOperation fabricates a successful invocation after the wider
// operation-call delay. This exists purely so the console UI can be
// exercised without a live plugin backend; it carries no real invocation
// semantics.
func (s *Store) InvokeOperation(ctx context.Context, pluginID, operationID string, params map[string]any) (*models.InvokeResult, error) {
	if err := s.sleep(ctx, s.invokeDelay); err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal([]byte(invokeExampleBody), &parsed); err != nil {
		return nil, err
	}
	return &models.InvokeResult{
		Status:         models.InvokeStatusSuccess,
		HTTPStatusCode: 200,
		RawBody:        invokeExampleBody,
		ParsedData:     parsed,
		Duration:       150,
	}, nil
}
