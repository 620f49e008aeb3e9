package agixt

import (
	"context"
)

// PromptsService manages prompt templates, scoped by category. An empty
// category means "Default".
type PromptsService struct {
	client *Client
}

// DefaultPromptCategory is used when a category argument is empty.
const DefaultPromptCategory = "Default"

// Create adds a prompt template to a category.
func (s *PromptsService) Create(ctx context.Context, category, name, content string) (string, error) {
	category = orDefault(category, DefaultPromptCategory)
	body := map[string]string{
		"prompt_name": name,
		"prompt":      content,
	}
	return s.client.message(ctx, "POST", "/api/prompt/"+pathEscape(category), body)
}

// Get returns a prompt template's content.
func (s *PromptsService) Get(ctx context.Context, category, name string) (string, error) {
	category = orDefault(category, DefaultPromptCategory)
	var resp struct {
		Prompt string `json:"prompt"`
	}
	endpoint := "/api/prompt/" + pathEscape(category) + "/" + pathEscape(name)
	if err := s.client.get(ctx, endpoint, nil, &resp); err != nil {
		return "", err
	}
	return resp.Prompt, nil
}

// List returns the prompt names in a category.
func (s *PromptsService) List(ctx context.Context, category string) ([]string, error) {
	category = orDefault(category, DefaultPromptCategory)
	var resp struct {
		Prompts []string `json:"prompts"`
	}
	if err := s.client.get(ctx, "/api/prompt/"+pathEscape(category), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Prompts, nil
}

// Categories returns all prompt categories.
func (s *PromptsService) Categories(ctx context.Context) ([]string, error) {
	var resp struct {
		PromptCategories []string `json:"prompt_categories"`
	}
	if err := s.client.get(ctx, "/api/prompt/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.PromptCategories, nil
}

// Args returns the argument names a prompt template references.
func (s *PromptsService) Args(ctx context.Context, category, name string) ([]string, error) {
	category = orDefault(category, DefaultPromptCategory)
	var resp struct {
		PromptArgs []string `json:"prompt_args"`
	}
	endpoint := "/api/prompt/" + pathEscape(category) + "/" + pathEscape(name) + "/args"
	if err := s.client.get(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.PromptArgs, nil
}

// Update replaces a prompt template's content.
func (s *PromptsService) Update(ctx context.Context, category, name, content string) (string, error) {
	category = orDefault(category, DefaultPromptCategory)
	body := map[string]string{
		"prompt":          content,
		"prompt_name":     name,
		"prompt_category": category,
	}
	endpoint := "/api/prompt/" + pathEscape(category) + "/" + pathEscape(name)
	return s.client.message(ctx, "PUT", endpoint, body)
}

// Rename changes a prompt template's name within its category.
func (s *PromptsService) Rename(ctx context.Context, category, name, newName string) (string, error) {
	category = orDefault(category, DefaultPromptCategory)
	body := map[string]string{"prompt_name": newName}
	endpoint := "/api/prompt/" + pathEscape(category) + "/" + pathEscape(name)
	return s.client.message(ctx, "PATCH", endpoint, body)
}

// Delete removes a prompt template.
func (s *PromptsService) Delete(ctx context.Context, category, name string) (string, error) {
	category = orDefault(category, DefaultPromptCategory)
	endpoint := "/api/prompt/" + pathEscape(category) + "/" + pathEscape(name)
	return s.client.message(ctx, "DELETE", endpoint, nil)
}
