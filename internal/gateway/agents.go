package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

func (g *Gateway) ListAgents(ctx context.Context) ([]models.Agent, error) {
	if g.simulate {
		return g.store.ListAgents(ctx)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/agents", nil)
	if err != nil {
		return nil, err
	}
	var agents []models.Agent
	if err := decodeInto(raw, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (g *Gateway) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	if g.simulate {
		return g.store.GetAgent(ctx, id)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/agents/"+id, nil)
	if err != nil {
		return nil, err
	}
	var agent models.Agent
	if err := decodeInto(raw, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (g *Gateway) CreateAgent(ctx context.Context, agent models.Agent) (*models.Agent, error) {
	if g.simulate {
		return g.store.CreateAgent(ctx, agent)
	}
	raw, err := g.client.Do(ctx, http.MethodPost, "/v1/agents", agent)
	if err != nil {
		return nil, err
	}
	var created models.Agent
	if err := decodeInto(raw, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAgent applies a partial update. The patch is forwarded as raw JSON
// on both paths so fields absent from it keep their stored value.
func (g *Gateway) UpdateAgent(ctx context.Context, id string, patch json.RawMessage) (*models.Agent, error) {
	if g.simulate {
		return g.store.UpdateAgent(ctx, id, patch)
	}
	raw, err := g.client.Do(ctx, http.MethodPut, "/v1/agents/"+id, patch)
	if err != nil {
		return nil, err
	}
	var updated models.Agent
	if err := decodeInto(raw, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *Gateway) DeleteAgent(ctx context.Context, id string) error {
	if g.simulate {
		return g.store.DeleteAgent(ctx, id)
	}
	_, err := g.client.Do(ctx, http.MethodDelete, "/v1/agents/"+id, nil)
	return err
}
