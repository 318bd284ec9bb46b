package gateway

import (
	"context"
	"net/http"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// CreateSession opens a new test chat session. The session has no bound
// agent until the first message arrives.
func (g *Gateway) CreateSession(ctx context.Context) (*models.CreateSessionResponse, error) {
	if g.simulate {
		return g.store.CreateSession(ctx)
	}
	raw, err := g.client.Do(ctx, http.MethodPost, "/v1/chat/session", nil)
	if err != nil {
		return nil, err
	}
	var resp models.CreateSessionResponse
	if err := decodeInto(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History returns the session's turns in append order.
func (g *Gateway) History(ctx context.Context, sessionID string) ([]models.ConversationTurn, error) {
	if g.simulate {
		return g.store.History(ctx, sessionID)
	}
	raw, err := g.client.Do(ctx, http.MethodGet, "/v1/chat/history/"+sessionID, nil)
	if err != nil {
		return nil, err
	}
	var turns []models.ConversationTurn
	if err := decodeInto(raw, &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// SendMessage submits one query and returns the completed turn.
func (g *Gateway) SendMessage(ctx context.Context, turn models.ConversationTurn) (*models.ConversationTurn, error) {
	if g.simulate {
		return g.store.SendMessage(ctx, turn)
	}
	raw, err := g.client.Do(ctx, http.MethodPost, "/v1/chat/message", turn)
	if err != nil {
		return nil, err
	}
	var completed models.ConversationTurn
	if err := decodeInto(raw, &completed); err != nil {
		return nil, err
	}
	return &completed, nil
}
