package agixt

import (
	"context"
)

// AgentsService manages agents and runs prompts against them.
type AgentsService struct {
	client *Client
}

// Agent is a named remote agent configuration.
type Agent struct {
	Name   string `json:"name"`
	ID     string `json:"id,omitempty"`
	Status bool   `json:"status,omitempty"`
}

// AgentConfig is an agent's full configuration: provider settings plus the
// enabled/disabled state of every command.
type AgentConfig struct {
	Settings map[string]any  `json:"settings"`
	Commands map[string]bool `json:"commands"`
}

// List returns all agents visible to the authenticated user.
func (s *AgentsService) List(ctx context.Context) ([]Agent, error) {
	var resp struct {
		Agents []Agent `json:"agents"`
	}
	if err := s.client.get(ctx, "/api/agent", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// Get returns the configuration of a single agent.
func (s *AgentsService) Get(ctx context.Context, name string) (AgentConfig, error) {
	var resp struct {
		Agent AgentConfig `json:"agent"`
	}
	if err := s.client.get(ctx, "/api/agent/"+pathEscape(name), nil, &resp); err != nil {
		return AgentConfig{}, err
	}
	return resp.Agent, nil
}

// Create creates an agent with the given provider settings, command toggles,
// and optional training URLs the server ingests on creation.
func (s *AgentsService) Create(ctx context.Context, name string, settings map[string]any, commands map[string]bool, trainingURLs []string) (string, error) {
	body := map[string]any{
		"agent_name": name,
		"settings":   settings,
		"commands":   commands,
	}
	if len(trainingURLs) > 0 {
		body["training_urls"] = trainingURLs
	}
	return s.client.message(ctx, "POST", "/api/agent", body)
}

// Import creates an agent from an exported configuration.
func (s *AgentsService) Import(ctx context.Context, name string, settings map[string]any, commands map[string]bool) (string, error) {
	body := map[string]any{
		"agent_name": name,
		"settings":   settings,
		"commands":   commands,
	}
	return s.client.message(ctx, "POST", "/api/agent/import", body)
}

// Rename changes an agent's name.
func (s *AgentsService) Rename(ctx context.Context, name, newName string) (string, error) {
	body := map[string]string{"new_name": newName}
	return s.client.message(ctx, "PATCH", "/api/agent/"+pathEscape(name), body)
}

// UpdateSettings replaces an agent's provider settings.
func (s *AgentsService) UpdateSettings(ctx context.Context, name string, settings map[string]any) (string, error) {
	body := map[string]any{
		"new_agent_settings": settings,
		"agent_name":         name,
	}
	return s.client.message(ctx, "PUT", "/api/agent/"+pathEscape(name), body)
}

// UpdateCommands replaces an agent's command toggles.
func (s *AgentsService) UpdateCommands(ctx context.Context, name string, commands map[string]bool) (string, error) {
	body := map[string]any{
		"commands":   commands,
		"agent_name": name,
	}
	return s.client.message(ctx, "PUT", "/api/agent/"+pathEscape(name)+"/commands", body)
}

// Delete removes an agent.
func (s *AgentsService) Delete(ctx context.Context, name string) (string, error) {
	return s.client.message(ctx, "DELETE", "/api/agent/"+pathEscape(name), nil)
}

// Prompt runs a named prompt template against an agent and returns the
// agent's response.
func (s *AgentsService) Prompt(ctx context.Context, name, promptName string, promptArgs map[string]any) (string, error) {
	body := map[string]any{
		"prompt_name": promptName,
		"prompt_args": promptArgs,
	}
	var resp struct {
		Response string `json:"response"`
	}
	if err := s.client.post(ctx, "/api/agent/"+pathEscape(name)+"/prompt", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Instruct runs the instruct prompt against an agent without touching
// conversation memory.
func (s *AgentsService) Instruct(ctx context.Context, name, input string) (string, error) {
	return s.Prompt(ctx, name, "instruct", map[string]any{
		"user_input":     input,
		"disable_memory": true,
	})
}

// Chat sends a chat turn in the named conversation. contextResults controls
// how many retrieved memories the server injects; 0 uses the server default.
func (s *AgentsService) Chat(ctx context.Context, name, input, conversationName string, contextResults int) (string, error) {
	if contextResults <= 0 {
		contextResults = 4
	}
	return s.Prompt(ctx, name, "Chat", map[string]any{
		"user_input":        input,
		"context_results":   contextResults,
		"conversation_name": conversationName,
		"disable_memory":    true,
	})
}

// SmartInstruct runs the built-in Smart Instruct chain, which plans,
// researches, and self-critiques before answering.
func (s *AgentsService) SmartInstruct(ctx context.Context, name, input string) (string, error) {
	return s.client.Chains.Run(ctx, "Smart Instruct", input, &ChainRunOptions{AgentOverride: name})
}

// SmartChat runs the built-in Smart Chat chain.
func (s *AgentsService) SmartChat(ctx context.Context, name, input string) (string, error) {
	return s.client.Chains.Run(ctx, "Smart Chat", input, &ChainRunOptions{AgentOverride: name})
}

// PlanTaskOptions tunes PlanTask. The zero value matches the server
// defaults.
type PlanTaskOptions struct {
	Websearch        bool
	WebsearchDepth   int
	ConversationName string
	LogUserInput     bool
	LogOutput        bool
	EnableNewCommand bool
}

// PlanTask asks an agent to break a task into executable steps.
func (s *AgentsService) PlanTask(ctx context.Context, name, input string, opts *PlanTaskOptions) (string, error) {
	if opts == nil {
		opts = &PlanTaskOptions{WebsearchDepth: 3, LogUserInput: true, LogOutput: true, EnableNewCommand: true}
	}
	body := map[string]any{
		"user_input":         input,
		"websearch":          opts.Websearch,
		"websearch_depth":    opts.WebsearchDepth,
		"conversation_name":  opts.ConversationName,
		"log_user_input":     opts.LogUserInput,
		"log_output":         opts.LogOutput,
		"enable_new_command": opts.EnableNewCommand,
	}
	var resp struct {
		Response string `json:"response"`
	}
	if err := s.client.post(ctx, "/api/agent/"+pathEscape(name)+"/plan/task", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Commands returns the enabled/disabled state of every command available to
// an agent.
func (s *AgentsService) Commands(ctx context.Context, name string) (map[string]bool, error) {
	var resp struct {
		Commands map[string]bool `json:"commands"`
	}
	if err := s.client.get(ctx, "/api/agent/"+pathEscape(name)+"/command", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Commands, nil
}

// ToggleCommand enables or disables one command, or all of them when
// command is "*".
func (s *AgentsService) ToggleCommand(ctx context.Context, name, command string, enable bool) (string, error) {
	body := map[string]any{
		"command_name": command,
		"enable":       enable,
	}
	return s.client.message(ctx, "PATCH", "/api/agent/"+pathEscape(name)+"/command", body)
}

// ExecuteCommand runs a single extension command through an agent and
// returns its output.
func (s *AgentsService) ExecuteCommand(ctx context.Context, name, command string, args map[string]any, conversationName string) (string, error) {
	body := map[string]any{
		"command_name":      command,
		"command_args":      args,
		"conversation_name": conversationName,
	}
	var resp struct {
		Response string `json:"response"`
	}
	if err := s.client.post(ctx, "/api/agent/"+pathEscape(name)+"/command", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Extensions returns the extensions available to an agent, including
// per-extension command state.
func (s *AgentsService) Extensions(ctx context.Context, name string) ([]Extension, error) {
	var resp struct {
		Extensions []Extension `json:"extensions"`
	}
	if err := s.client.get(ctx, "/api/agent/"+pathEscape(name)+"/extensions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Extensions, nil
}
