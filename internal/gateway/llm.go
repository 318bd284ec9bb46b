package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

func (g *Gateway) ListLlmModels(ctx context.Context) ([]models.LlmModel, error) {
	if g.simulate {
		return g.store.ListLlmModels(ctx)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/llm/models", nil)
	if err != nil {
		return nil, err
	}
	var list []models.LlmModel
	if err := decodeInto(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (g *Gateway) GetLlmModel(ctx context.Context, id string) (*models.LlmModel, error) {
	if g.simulate {
		return g.store.GetLlmModel(ctx, id)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/llm/models/"+id, nil)
	if err != nil {
		return nil, err
	}
	var model models.LlmModel
	if err := decodeInto(raw, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

func (g *Gateway) CreateLlmModel(ctx context.Context, model models.LlmModel) (*models.LlmModel, error) {
	if g.simulate {
		return g.store.CreateLlmModel(ctx, model)
	}
	raw, err := g.client.Do(ctx, http.MethodPost, "/v1/llm/models", model)
	if err != nil {
		return nil, err
	}
	var created models.LlmModel
	if err := decodeInto(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *Gateway) UpdateLlmModel(ctx context.Context, id string, patch json.RawMessage) (*models.LlmModel, error) {
	if g.simulate {
		return g.store.UpdateLlmModel(ctx, id, patch)
	}
	raw, err := g.client.Do(ctx, http.MethodPut, "/v1/llm/models/"+id, patch)
	if err != nil {
		return nil, err
	}
	var updated models.LlmModel
	if err := decodeInto(raw, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *Gateway) DeleteLlmModel(ctx context.Context, id string) error {
	if g.simulate {
		return g.store.DeleteLlmModel(ctx, id)
	}
	_, err := g.client.Do(ctx, http.MethodDelete, "/v1/llm/models/"+id, nil)
	return err
}

func (g *Gateway) ListLlmProviders(ctx context.Context) ([]models.LlmProvider, error) {
	if g.simulate {
		return g.store.ListLlmProviders(ctx)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/llm/providers", nil)
	if err != nil {
		return nil, err
	}
	var list []models.LlmProvider
	if err := decodeInto(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}
