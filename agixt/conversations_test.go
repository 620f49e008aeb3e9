package agixt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationsList(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/conversations", r.URL.Path)
		w.Write([]byte(`{"conversations":["standup","research"],"conversations_with_ids":{"id-1":"standup","id-2":"research"}}`))
	}))

	names, err := c.Conversations.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"standup", "research"}, names)

	withIDs, err := c.Conversations.ListWithIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "standup", withIDs["id-1"])
}

func TestConversationsGetDefaults(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/conversation", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "standup", body["conversation_name"])
		assert.Equal(t, "researcher", body["agent_name"])
		assert.Equal(t, float64(100), body["limit"])
		assert.Equal(t, float64(1), body["page"])

		w.Write([]byte(`{"conversation_history":[{"role":"user","message":"hi","timestamp":"2026-08-29T10:00:00"},{"role":"researcher","message":"hello"}]}`))
	}))

	history, err := c.Conversations.Get(context.Background(), "researcher", "standup", 0, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "hello", history[1].Message)
}

func TestConversationsCreate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body := decodeBody(t, r)
		assert.Equal(t, "fresh", body["conversation_name"])
		// nil initial content is sent as an empty array, not null
		content, ok := body["conversation_content"].([]any)
		require.True(t, ok)
		assert.Empty(t, content)
		w.Write([]byte(`{"conversation_history":[]}`))
	}))

	history, err := c.Conversations.Create(context.Background(), "researcher", "fresh", nil)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConversationsRename(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		body := decodeBody(t, r)
		assert.Equal(t, "old", body["conversation_name"])
		assert.Equal(t, "new", body["new_conversation_name"])
		w.Write([]byte(`{"conversation_name":"new"}`))
	}))

	name, err := c.Conversations.Rename(context.Background(), "researcher", "old", "new")
	require.NoError(t, err)
	assert.Equal(t, "new", name)
}

func TestConversationsDelete(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		body := decodeBody(t, r)
		assert.Equal(t, "standup", body["conversation_name"])
		w.Write([]byte(`{"message":"Conversation deleted"}`))
	}))

	msg, err := c.Conversations.Delete(context.Background(), "researcher", "standup")
	require.NoError(t, err)
	assert.Equal(t, "Conversation deleted", msg)
}

func TestConversationMessages(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/conversation/message", r.URL.Path)
		body := decodeBody(t, r)
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "user", body["role"])
			assert.Equal(t, "note to self", body["message"])
		case http.MethodPut:
			assert.Equal(t, "typo", body["message"])
			assert.Equal(t, "fixed", body["new_message"])
		case http.MethodDelete:
			assert.Equal(t, "spam", body["message"])
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))

	ctx := context.Background()
	_, err := c.Conversations.NewMessage(ctx, "user", "note to self", "standup")
	require.NoError(t, err)
	_, err = c.Conversations.UpdateMessage(ctx, "researcher", "standup", "typo", "fixed")
	require.NoError(t, err)
	_, err = c.Conversations.DeleteMessage(ctx, "researcher", "standup", "spam")
	require.NoError(t, err)
}
