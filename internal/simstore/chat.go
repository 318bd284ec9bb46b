package simstore

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/agentdeck/agentdeck/console-gateway/pkg/models"
)

// cannedReply maps a query keyword to a fixed answer. The table is an
// ordered slice, not a map: the first keyword contained in the query wins,
// so match precedence depends on iteration order.
type cannedReply struct {
	keyword string
	answer  string
}

var cannedReplies = []cannedReply{
	{"你好", "你好！我是一个AI助手，很高兴为你服务！"},
	{"你是谁", "我是一个AI助手，可以帮助你解答问题和完成任务。"},
	{"天气", "我可以通过温度查询插件为你查询室内温度信息。"},
	{"灯", "我可以帮你控制智能灯光。你想开启、关闭还是调整颜色？"},
	{"温度", "当前室内温度是26.5°C，湿度55%。"},
}

const (
	defaultUserID     = "user-003-tester"
	defaultLlmModelID = "model-001-qwen-turbo"
)

// replyFor derives the canned answer for a query.
func replyFor(query string) string {
	for _, r := range cannedReplies {
		if strings.Contains(query, r.keyword) {
			return r.answer
		}
	}
	return fmt.Sprintf(`关于"%s"，我已经理解了你的需求。`, query)
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randSuffix returns a 9-character base36 token. Caller holds s.mu.
func (s *Store) randSuffix() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = suffixAlphabet[s.rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// Session returns the session record for diagnostics and tests. Unlike the
// public operations it applies no artificial latency.
func (s *Store) Session(id string) (*models.ChatSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	cp := *sess
	return &cp, true
}

// CreateSession opens an empty session with no bound agent. The agent is
// bound by the first message.
func (s *Store) CreateSession(ctx context.Context) (*models.CreateSessionResponse, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("mock-%d-%s", s.now().UnixMilli(), s.randSuffix())
	s.sessions[id] = &models.ChatSession{ID: id, CreatedAt: s.timestamp()}
	return &models.CreateSessionResponse{SessionID: id}, nil
}

// History returns the session's turn list in append order. Unknown sessions
// yield an empty list, matching the real backend.
func (s *Store) History(ctx context.Context, sessionID string) ([]models.ConversationTurn, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	turns, ok := s.turns[sessionID]
	if !ok {
		return []models.ConversationTurn{}, nil
	}
	return slices.Clone(turns), nil
}

// SendMessage appends a turn to the session, derives the answer from the
// canned reply table, synthesizes token counts, and binds the session to
// the message's agent while preserving the session's creation time.
func (s *Store) SendMessage(ctx context.Context, turn models.ConversationTurn) (*models.ConversationTurn, error) {
	if err := s.sleep(ctx, s.crudDelay); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	turn.ID = fmt.Sprintf("mock-%d-%s", s.now().UnixMilli(), s.randSuffix())
	turn.Answer = replyFor(turn.Query)
	turn.ConversationType = models.TurnTypeChat
	turn.CreateTime = s.timestamp()
	if turn.UserID == "" {
		turn.UserID = defaultUserID
	}

	modelID := defaultLlmModelID
	if turn.Metadata != nil && turn.Metadata.LlmModelID != "" {
		modelID = turn.Metadata.LlmModelID
	}
	turn.Metadata = &models.ConversationMetadata{
		LlmModelID:       modelID,
		PromptTokens:     s.rand.Intn(100) + 50,
		CompletionTokens: s.rand.Intn(100) + 30,
		TotalTokens:      s.rand.Intn(200) + 80,
	}

	s.turns[turn.SessionID] = append(s.turns[turn.SessionID], turn)

	if sess, ok := s.sessions[turn.SessionID]; ok {
		// Re-binds the agent on every message; createdAt is untouched.
		sess.AgentID = turn.AgentID
	}

	return &turn, nil
}
