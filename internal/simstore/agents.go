package simstore

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// ListAgents returns a copy of the full agent collection. The simulated
// path has no pagination or filtering.
func (s *Store) ListAgents(ctx context.Context) ([]models.Agent, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.agents), nil
}

func (s *Store) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.agents {
		if s.agents[i].ID == id {
			agent := s.agents[i]
			return &agent, nil
		}
	}
	return nil, &ErrNotFound{Entity: "agent", Key: id}
}

// CreateAgent assigns a fresh identity, stamps both timestamps, and appends
// the record. Identity and timestamps supplied by the caller are ignored.
func (s *Store) CreateAgent(ctx context.Context, agent models.Agent) (*models.Agent, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	agent.ID = s.nextID("agent")
	ts := s.timestamp()
	agent.CreateTime = ts
	agent.UpdateTime = ts
	s.agents = append(s.agents, agent)
	return &agent, nil
}

// UpdateAgent merges the raw partial record over the stored one. The
// identity and creation timestamp are preserved regardless of what the
// patch contains; only the update timestamp is re-stamped.
func (s *Store) UpdateAgent(ctx context.Context, id string, patch json.RawMessage) (*models.Agent, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.agents {
		if s.agents[i].ID != id {
			continue
		}
		merged := s.agents[i]
		if err := mergeRecord(&merged, patch); err != nil {
			return nil, err
		}
		merged.ID = id
		merged.CreateTime = s.agents[i].CreateTime
		merged.UpdateTime = s.timestamp()
		s.agents[i] = merged
		return &merged, nil
	}
	return nil, &ErrNotFound{Entity: "agent", Key: id}
}

func (s *Store) DeleteAgent(ctx context.Context, id string) error {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.agents {
		if s.agents[i].ID == id {
			s.agents = slices.Delete(s.agents, i, i+1)
			return nil
		}
	}
	return &ErrNotFound{Entity: "agent", Key: id}
}
