package agixt

import (
	"context"
	"fmt"
	"strconv"
)

// ChainsService manages chains: named ordered sequences of prompt and
// command steps executed server-side.
type ChainsService struct {
	client *Client
}

// Chain is a chain definition with its ordered steps.
type Chain struct {
	ChainName string      `json:"chain_name"`
	Steps     []ChainStep `json:"steps"`
}

// ChainStep is one step of a chain. Prompt holds the step's arguments; its
// keys depend on PromptType ("Prompt", "Command", or "Chain").
type ChainStep struct {
	Step       int            `json:"step"`
	AgentName  string         `json:"agent_name"`
	PromptType string         `json:"prompt_type"`
	Prompt     map[string]any `json:"prompt"`
}

// ChainRunOptions tunes Run and RunStep. The zero value runs the chain with
// its own agents from the first step and returns only the final response.
type ChainRunOptions struct {
	AgentOverride string
	AllResponses  bool
	FromStep      int
	ChainArgs     map[string]any
}

// List returns the names of all chains.
func (s *ChainsService) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.client.get(ctx, "/api/chain", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Get returns a chain definition.
func (s *ChainsService) Get(ctx context.Context, name string) (Chain, error) {
	var resp struct {
		Chain Chain `json:"chain"`
	}
	if err := s.client.get(ctx, "/api/chain/"+pathEscape(name), nil, &resp); err != nil {
		return Chain{}, err
	}
	return resp.Chain, nil
}

// Responses returns the per-step responses recorded during the chain's last
// run.
func (s *ChainsService) Responses(ctx context.Context, name string) (map[string]any, error) {
	var resp struct {
		Chain map[string]any `json:"chain"`
	}
	if err := s.client.get(ctx, "/api/chain/"+pathEscape(name)+"/responses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Chain, nil
}

// Args returns the argument names a chain expects.
func (s *ChainsService) Args(ctx context.Context, name string) ([]string, error) {
	var resp struct {
		ChainArgs []string `json:"chain_args"`
	}
	if err := s.client.get(ctx, "/api/chain/"+pathEscape(name)+"/args", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ChainArgs, nil
}

// Run executes a chain and returns its output. With opts.AllResponses the
// server returns every step's response as a JSON document instead of just
// the final one.
func (s *ChainsService) Run(ctx context.Context, name, input string, opts *ChainRunOptions) (string, error) {
	return s.run(ctx, "/api/chain/"+pathEscape(name)+"/run", input, opts)
}

// RunStep executes a single step of a chain.
func (s *ChainsService) RunStep(ctx context.Context, name string, step int, input string, opts *ChainRunOptions) (string, error) {
	endpoint := "/api/chain/" + pathEscape(name) + "/run/step/" + strconv.Itoa(step)
	return s.run(ctx, endpoint, input, opts)
}

func (s *ChainsService) run(ctx context.Context, endpoint, input string, opts *ChainRunOptions) (string, error) {
	if opts == nil {
		opts = &ChainRunOptions{}
	}
	fromStep := opts.FromStep
	if fromStep <= 0 {
		fromStep = 1
	}
	chainArgs := opts.ChainArgs
	if chainArgs == nil {
		chainArgs = map[string]any{}
	}
	body := map[string]any{
		"prompt":         input,
		"agent_override": opts.AgentOverride,
		"all_responses":  opts.AllResponses,
		"from_step":      fromStep,
		"chain_args":     chainArgs,
	}

	// The run endpoints respond with a bare JSON string for a single
	// response and a JSON object when all responses are requested.
	var out any
	if err := s.client.post(ctx, endpoint, body, &out); err != nil {
		return "", err
	}
	switch v := out.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encoding chain output: %w", err)
		}
		return string(data), nil
	}
}

// Create creates an empty chain.
func (s *ChainsService) Create(ctx context.Context, name string) (string, error) {
	body := map[string]string{"chain_name": name}
	return s.client.message(ctx, "POST", "/api/chain", body)
}

// Import creates a chain from exported steps.
func (s *ChainsService) Import(ctx context.Context, name string, steps []ChainStep) (string, error) {
	body := map[string]any{
		"chain_name": name,
		"steps":      steps,
	}
	return s.client.message(ctx, "POST", "/api/chain/import", body)
}

// Rename changes a chain's name.
func (s *ChainsService) Rename(ctx context.Context, name, newName string) (string, error) {
	body := map[string]string{"new_name": newName}
	return s.client.message(ctx, "PUT", "/api/chain/"+pathEscape(name), body)
}

// Delete removes a chain.
func (s *ChainsService) Delete(ctx context.Context, name string) (string, error) {
	return s.client.message(ctx, "DELETE", "/api/chain/"+pathEscape(name), nil)
}

// AddStep appends a step to a chain at the given position.
func (s *ChainsService) AddStep(ctx context.Context, name string, step int, agentName, promptType string, prompt map[string]any) (string, error) {
	body := map[string]any{
		"step_number": step,
		"agent_name":  agentName,
		"prompt_type": promptType,
		"prompt":      prompt,
	}
	return s.client.message(ctx, "POST", "/api/chain/"+pathEscape(name)+"/step", body)
}

// UpdateStep replaces a step's agent, type, and arguments.
func (s *ChainsService) UpdateStep(ctx context.Context, name string, step int, agentName, promptType string, prompt map[string]any) (string, error) {
	body := map[string]any{
		"step_number": step,
		"agent_name":  agentName,
		"prompt_type": promptType,
		"prompt":      prompt,
	}
	endpoint := "/api/chain/" + pathEscape(name) + "/step/" + strconv.Itoa(step)
	return s.client.message(ctx, "PUT", endpoint, body)
}

// MoveStep reorders a step within a chain.
func (s *ChainsService) MoveStep(ctx context.Context, name string, oldStep, newStep int) (string, error) {
	body := map[string]any{
		"old_step_number": oldStep,
		"new_step_number": newStep,
	}
	return s.client.message(ctx, "PATCH", "/api/chain/"+pathEscape(name)+"/step/move", body)
}

// DeleteStep removes a step from a chain.
func (s *ChainsService) DeleteStep(ctx context.Context, name string, step int) (string, error) {
	endpoint := "/api/chain/" + pathEscape(name) + "/step/" + strconv.Itoa(step)
	return s.client.message(ctx, "DELETE", endpoint, nil)
}
