// Package simstore is the in-process simulated backend. It stands in for
// the real console service with observably equivalent CRUD semantics and
// randomized latency, so the surrounding console can be exercised without
// any network dependency.
//
// Concurrent read-modify-write races on the same record are last-write-wins;
// the mutex protects collection integrity, not serializability. This path
// exists for development and testing, not production correctness.
package simstore

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// ErrNotFound is returned when a requested entity does not exist.
type ErrNotFound struct {
	Entity string
	Key    string
}

func (e *ErrNotFound) Error() string {
	return e.Entity + " not found: " + e.Key
}

// delayRange draws a uniformly distributed artificial delay from
// [base, base+jitter).
type delayRange struct {
	base   time.Duration
	jitter time.Duration
}

// Store holds the simulated dataset. A single instance is shared by
// reference with every gateway facade that runs in simulation mode; it is
// never duplicated, so two facades observe the same data.
type Store struct {
	mu sync.Mutex

	agents       []models.Agent
	plugins      []models.Plugin
	llmModels    []models.LlmModel
	llmProviders []models.LlmProvider
	sessions     map[string]*models.ChatSession
	turns        map[string][]models.ConversationTurn

	now    func() time.Time
	rand   *rand.Rand
	lastID int64

	crudDelay   delayRange
	invokeDelay delayRange
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand replaces the randomness source used for latency jitter, session
// identifiers, and synthesized token counts.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rand = r }
}

// WithCRUDLatency sets the artificial delay range for CRUD operations.
func WithCRUDLatency(base, jitter time.Duration) Option {
	return func(s *Store) { s.crudDelay = delayRange{base, jitter} }
}

// WithInvokeLatency sets the artificial delay range for plugin operation
// invocations, which are expected to be slower than CRUD calls.
func WithInvokeLatency(base, jitter time.Duration) Option {
	return func(s *Store) { s.invokeDelay = delayRange{base, jitter} }
}

// WithoutLatency disables all artificial delays.
func WithoutLatency() Option {
	return func(s *Store) {
		s.crudDelay = delayRange{}
		s.invokeDelay = delayRange{}
	}
}

// WithoutSeed starts the store empty instead of with the demo dataset.
func WithoutSeed() Option {
	return func(s *Store) {
		s.agents = nil
		s.plugins = nil
		s.llmModels = nil
		s.llmProviders = nil
		s.turns = make(map[string][]models.ConversationTurn)
	}
}

// New creates a simulated store preloaded with the demo dataset.
func New(opts ...Option) *Store {
	s := &Store{
		sessions:    make(map[string]*models.ChatSession),
		now:         time.Now,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		crudDelay:   delayRange{200 * time.Millisecond, 300 * time.Millisecond},
		invokeDelay: delayRange{500 * time.Millisecond, 500 * time.Millisecond},
	}
	s.seed()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sleep waits out the artificial latency for one operation, honoring
// context cancellation.
func (s *Store) sleep(ctx context.Context, r delayRange) error {
	d := r.base
	if r.jitter > 0 {
		s.mu.Lock()
		d += time.Duration(s.rand.Int63n(int64(r.jitter)))
		s.mu.Unlock()
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextID returns a fresh epoch-millisecond identity. Identities are forced
// strictly monotonic so back-to-back creates within the same millisecond
// never collide.
func (s *Store) nextID(prefix string) string {
	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// mergeRecord overlays a raw JSON patch onto dst, matching the spread-style
// partial update of the real backend: fields absent from the patch keep
// their stored value. The patch stays raw all the way from the request body
// so absent fields remain distinguishable from zero values.
func mergeRecord(dst any, patch json.RawMessage) error {
	base, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	var baseMap, patchMap map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseMap); err != nil {
		return err
	}
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return fmt.Errorf("patch must be a JSON object: %w", err)
	}
	for k, v := range patchMap {
		baseMap[k] = v
	}
	merged, err := json.Marshal(baseMap)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, dst)
}
