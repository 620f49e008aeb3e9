package agixt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainsList(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chain", r.URL.Path)
		w.Write([]byte(`["Smart Instruct","Smart Chat","Task Agent"]`))
	}))

	chains, err := c.Chains.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Smart Instruct", "Smart Chat", "Task Agent"}, chains)
}

func TestChainsGet(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chain/Task%20Agent", r.URL.EscapedPath())
		w.Write([]byte(`{"chain":{"chain_name":"Task Agent","steps":[{"step":1,"agent_name":"researcher","prompt_type":"Prompt","prompt":{"prompt_name":"Think"}}]}}`))
	}))

	chain, err := c.Chains.Get(context.Background(), "Task Agent")
	require.NoError(t, err)
	assert.Equal(t, "Task Agent", chain.ChainName)
	require.Len(t, chain.Steps, 1)
	assert.Equal(t, 1, chain.Steps[0].Step)
	assert.Equal(t, "Prompt", chain.Steps[0].PromptType)
}

func TestChainsArgsAndResponses(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/chain/mychain/args":
			w.Write([]byte(`{"chain_args":["user_input","topic"]}`))
		case "/api/chain/mychain/responses":
			w.Write([]byte(`{"chain":{"1":"first response"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	args, err := c.Chains.Args(context.Background(), "mychain")
	require.NoError(t, err)
	assert.Equal(t, []string{"user_input", "topic"}, args)

	responses, err := c.Chains.Responses(context.Background(), "mychain")
	require.NoError(t, err)
	assert.Equal(t, "first response", responses["1"])
}

func TestChainsRunDefaults(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chain/mychain/run", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "do the thing", body["prompt"])
		assert.Equal(t, float64(1), body["from_step"])
		assert.Equal(t, false, body["all_responses"])
		// chain_args defaults to an empty object
		args, ok := body["chain_args"].(map[string]any)
		require.True(t, ok)
		assert.Empty(t, args)
		w.Write([]byte(`"final answer"`))
	}))

	out, err := c.Chains.Run(context.Background(), "mychain", "do the thing", nil)
	require.NoError(t, err)
	assert.Equal(t, "final answer", out)
}

func TestChainsRunAllResponses(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, true, body["all_responses"])
		assert.Equal(t, float64(2), body["from_step"])
		w.Write([]byte(`{"1":"a","2":"b"}`))
	}))

	out, err := c.Chains.Run(context.Background(), "mychain", "input", &ChainRunOptions{
		AllResponses: true,
		FromStep:     2,
	})
	require.NoError(t, err)
	// object responses come back re-encoded as JSON text
	assert.JSONEq(t, `{"1":"a","2":"b"}`, out)
}

func TestChainsRunStep(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chain/mychain/run/step/3", r.URL.Path)
		w.Write([]byte(`"step output"`))
	}))

	out, err := c.Chains.RunStep(context.Background(), "mychain", 3, "input", nil)
	require.NoError(t, err)
	assert.Equal(t, "step output", out)
}

func TestChainsCreateImportRenameDelete(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/chain":
			body := decodeBody(t, r)
			assert.Equal(t, "mychain", body["chain_name"])
		case r.Method == http.MethodPost && r.URL.Path == "/api/chain/import":
			body := decodeBody(t, r)
			steps := body["steps"].([]any)
			assert.Len(t, steps, 1)
		case r.Method == http.MethodPut && r.URL.Path == "/api/chain/mychain":
			body := decodeBody(t, r)
			assert.Equal(t, "renamed", body["new_name"])
		case r.Method == http.MethodDelete && r.URL.Path == "/api/chain/renamed":
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))

	ctx := context.Background()
	_, err := c.Chains.Create(ctx, "mychain")
	require.NoError(t, err)
	_, err = c.Chains.Import(ctx, "imported", []ChainStep{{Step: 1, AgentName: "a", PromptType: "Prompt", Prompt: map[string]any{"prompt_name": "Think"}}})
	require.NoError(t, err)
	_, err = c.Chains.Rename(ctx, "mychain", "renamed")
	require.NoError(t, err)
	_, err = c.Chains.Delete(ctx, "renamed")
	require.NoError(t, err)
}

func TestChainsSteps(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/chain/mychain/step":
			body := decodeBody(t, r)
			assert.Equal(t, float64(2), body["step_number"])
			assert.Equal(t, "Command", body["prompt_type"])
		case r.Method == http.MethodPut && r.URL.Path == "/api/chain/mychain/step/2":
		case r.Method == http.MethodPatch && r.URL.Path == "/api/chain/mychain/step/move":
			body := decodeBody(t, r)
			assert.Equal(t, float64(2), body["old_step_number"])
			assert.Equal(t, float64(1), body["new_step_number"])
		case r.Method == http.MethodDelete && r.URL.Path == "/api/chain/mychain/step/1":
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))

	ctx := context.Background()
	_, err := c.Chains.AddStep(ctx, "mychain", 2, "researcher", "Command", map[string]any{"command_name": "Get Datetime"})
	require.NoError(t, err)
	_, err = c.Chains.UpdateStep(ctx, "mychain", 2, "researcher", "Prompt", map[string]any{"prompt_name": "Think"})
	require.NoError(t, err)
	_, err = c.Chains.MoveStep(ctx, "mychain", 2, 1)
	require.NoError(t, err)
	_, err = c.Chains.DeleteStep(ctx, "mychain", 1)
	require.NoError(t, err)
}
