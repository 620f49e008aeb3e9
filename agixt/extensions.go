package agixt

import (
	"context"
)

// ExtensionsService exposes the server's installed extensions and their
// commands.
type ExtensionsService struct {
	client *Client
}

// Extension describes an installed extension and the commands it provides.
type Extension struct {
	ExtensionName string             `json:"extension_name"`
	Description   string             `json:"description,omitempty"`
	Settings      []string           `json:"settings,omitempty"`
	Commands      []ExtensionCommand `json:"commands,omitempty"`
}

// ExtensionCommand is a single command offered by an extension.
type ExtensionCommand struct {
	FriendlyName string         `json:"friendly_name"`
	Description  string         `json:"description,omitempty"`
	CommandArgs  map[string]any `json:"command_args,omitempty"`
	Enabled      bool           `json:"enabled,omitempty"`
}

// List returns all installed extensions.
func (s *ExtensionsService) List(ctx context.Context) ([]Extension, error) {
	var resp struct {
		Extensions []Extension `json:"extensions"`
	}
	if err := s.client.get(ctx, "/api/extensions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Extensions, nil
}

// Settings returns every extension's setting names, keyed by extension.
func (s *ExtensionsService) Settings(ctx context.Context) (map[string]any, error) {
	var resp struct {
		ExtensionSettings map[string]any `json:"extension_settings"`
	}
	if err := s.client.get(ctx, "/api/extensions/settings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ExtensionSettings, nil
}

// CommandArgs returns the argument names and defaults for one command.
func (s *ExtensionsService) CommandArgs(ctx context.Context, commandName string) (map[string]any, error) {
	var resp struct {
		CommandArgs map[string]any `json:"command_args"`
	}
	if err := s.client.get(ctx, "/api/extensions/"+pathEscape(commandName)+"/args", nil, &resp); err != nil {
		return nil, err
	}
	return resp.CommandArgs, nil
}
