package agixt

import (
	"context"
)

// ConversationsService manages server-persisted conversations and their
// messages.
type ConversationsService struct {
	client *Client
}

// ConversationMessage is a single message in a conversation's history.
type ConversationMessage struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// List returns the names of all conversations.
func (s *ConversationsService) List(ctx context.Context) ([]string, error) {
	var resp struct {
		Conversations []string `json:"conversations"`
	}
	if err := s.client.get(ctx, "/api/conversations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// ListWithIDs returns conversation names keyed by their server-side IDs.
func (s *ConversationsService) ListWithIDs(ctx context.Context) (map[string]string, error) {
	var resp struct {
		ConversationsWithIDs map[string]string `json:"conversations_with_ids"`
	}
	if err := s.client.get(ctx, "/api/conversations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ConversationsWithIDs, nil
}

// Get returns a page of a conversation's history. limit defaults to 100 and
// page to 1 when zero.
func (s *ConversationsService) Get(ctx context.Context, agentName, conversationName string, limit, page int) ([]ConversationMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	if page <= 0 {
		page = 1
	}
	body := map[string]any{
		"conversation_name": conversationName,
		"agent_name":        agentName,
		"limit":             limit,
		"page":              page,
	}
	var resp struct {
		ConversationHistory []ConversationMessage `json:"conversation_history"`
	}
	if err := s.client.get(ctx, "/api/conversation", body, &resp); err != nil {
		return nil, err
	}
	return resp.ConversationHistory, nil
}

// Create starts a new conversation, optionally seeded with initial
// messages, and returns its history.
func (s *ConversationsService) Create(ctx context.Context, agentName, conversationName string, initial []ConversationMessage) ([]ConversationMessage, error) {
	if initial == nil {
		initial = []ConversationMessage{}
	}
	body := map[string]any{
		"conversation_name":    conversationName,
		"agent_name":           agentName,
		"conversation_content": initial,
	}
	var resp struct {
		ConversationHistory []ConversationMessage `json:"conversation_history"`
	}
	if err := s.client.post(ctx, "/api/conversation", body, &resp); err != nil {
		return nil, err
	}
	return resp.ConversationHistory, nil
}

// Rename renames a conversation and returns the new name as confirmed by
// the server.
func (s *ConversationsService) Rename(ctx context.Context, agentName, conversationName, newName string) (string, error) {
	body := map[string]any{
		"conversation_name":     conversationName,
		"new_conversation_name": newName,
		"agent_name":            agentName,
	}
	var resp struct {
		ConversationName string `json:"conversation_name"`
	}
	if err := s.client.put(ctx, "/api/conversation", body, &resp); err != nil {
		return "", err
	}
	return resp.ConversationName, nil
}

// Delete removes a conversation and its history.
func (s *ConversationsService) Delete(ctx context.Context, agentName, conversationName string) (string, error) {
	body := map[string]any{
		"conversation_name": conversationName,
		"agent_name":        agentName,
	}
	return s.client.message(ctx, "DELETE", "/api/conversation", body)
}

// NewMessage appends a message to a conversation without prompting an
// agent.
func (s *ConversationsService) NewMessage(ctx context.Context, role, message, conversationName string) (string, error) {
	body := map[string]any{
		"role":              role,
		"message":           message,
		"conversation_name": conversationName,
	}
	return s.client.message(ctx, "POST", "/api/conversation/message", body)
}

// UpdateMessage rewrites an existing message in place.
func (s *ConversationsService) UpdateMessage(ctx context.Context, agentName, conversationName, message, newMessage string) (string, error) {
	body := map[string]any{
		"conversation_name": conversationName,
		"message":           message,
		"new_message":       newMessage,
		"agent_name":        agentName,
	}
	return s.client.message(ctx, "PUT", "/api/conversation/message", body)
}

// DeleteMessage removes a single message from a conversation.
func (s *ConversationsService) DeleteMessage(ctx context.Context, agentName, conversationName, message string) (string, error) {
	body := map[string]any{
		"conversation_name": conversationName,
		"message":           message,
		"agent_name":        agentName,
	}
	return s.client.message(ctx, "DELETE", "/api/conversation/message", body)
}
