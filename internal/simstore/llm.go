package simstore

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

func (s *Store) ListLlmModels(ctx context.Context) ([]models.LlmModel, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.llmModels), nil
}

func (s *Store) GetLlmModel(ctx context.Context, id string) (*models.LlmModel, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.llmModels {
		if s.llmModels[i].ID == id {
			model := s.llmModels[i]
			return &model, nil
		}
	}
	return nil, &ErrNotFound{Entity: "llm model", Key: id}
}

func (s *Store) CreateLlmModel(ctx context.Context, model models.LlmModel) (*models.LlmModel, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	model.ID = s.nextID("model")
	ts := s.timestamp()
	model.CreatedAt = ts
	model.UpdatedAt = ts
	s.llmModels = append(s.llmModels, model)
	return &model, nil
}

func (s *Store) UpdateLlmModel(ctx context.Context, id string, patch json.RawMessage) (*models.LlmModel, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.llmModels {
		if s.llmModels[i].ID != id {
			continue
		}
		merged := s.llmModels[i]
		if err := mergeRecord(&merged, patch); err != nil {
			return nil, err
		}
		merged.ID = id
		merged.CreatedAt = s.llmModels[i].CreatedAt
		merged.UpdatedAt = s.timestamp()
		s.llmModels[i] = merged
		return &merged, nil
	}
	return nil, &ErrNotFound{Entity: "llm model", Key: id}
}

func (s *Store) DeleteLlmModel(ctx context.Context, id string) error {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.llmModels {
		if s.llmModels[i].ID == id {
			s.llmModels = slices.Delete(s.llmModels, i, i+1)
			return nil
		}
	}
	return &ErrNotFound{Entity: "llm model", Key: id}
}

// ListLlmProviders returns the provider catalog. Providers are read-only in
// the console; no mutating operations exist for them.
func (s *Store) ListLlmProviders(ctx context.Context) ([]models.LlmProvider, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.llmProviders), nil
}
