package agixt

import (
	"context"
	"encoding/base64"
)

// MemoryService ingests content into an agent's memory collections and
// queries them. A collection is a numbered partition scoped to an agent;
// collection 0 is the agent's default memory.
type MemoryService struct {
	client *Client
}

// Memory is one retrieved memory chunk with its relevance to the query.
type Memory struct {
	ID                 string  `json:"id"`
	Text               string  `json:"text"`
	ExternalSourceName string  `json:"external_source_name,omitempty"`
	Description        string  `json:"description,omitempty"`
	AdditionalMetadata string  `json:"additional_metadata,omitempty"`
	Timestamp          string  `json:"timestamp,omitempty"`
	RelevanceScore     float64 `json:"relevance_score,omitempty"`
}

// LearnText stores a text snippet in a collection, keyed by the input it
// should be recalled for.
func (s *MemoryService) LearnText(ctx context.Context, agentName, userInput, text string, collectionNumber int) (string, error) {
	body := map[string]any{
		"user_input":        userInput,
		"text":              text,
		"collection_number": collection(collectionNumber),
	}
	return s.client.message(ctx, "POST", "/api/agent/"+pathEscape(agentName)+"/learn/text", body)
}

// LearnURL scrapes a URL into a collection.
func (s *MemoryService) LearnURL(ctx context.Context, agentName, url string, collectionNumber int) (string, error) {
	body := map[string]any{
		"url":               url,
		"collection_number": collection(collectionNumber),
	}
	return s.client.message(ctx, "POST", "/api/agent/"+pathEscape(agentName)+"/learn/url", body)
}

// LearnFile uploads file content into a collection. The raw bytes are
// base64-encoded on the wire.
func (s *MemoryService) LearnFile(ctx context.Context, agentName, fileName string, content []byte, collectionNumber int) (string, error) {
	body := map[string]any{
		"file_name":         fileName,
		"file_content":      base64.StdEncoding.EncodeToString(content),
		"collection_number": collection(collectionNumber),
	}
	return s.client.message(ctx, "POST", "/api/agent/"+pathEscape(agentName)+"/learn/file", body)
}

// GitHubRepoOptions identifies a repository to ingest. Token is only needed
// for private repositories; Branch defaults to "main" server-side.
type GitHubRepoOptions struct {
	Repo             string
	User             string
	Token            string
	Branch           string
	UseAgentSettings bool
}

// LearnGitHubRepo ingests a GitHub repository's files into a collection.
func (s *MemoryService) LearnGitHubRepo(ctx context.Context, agentName string, repo GitHubRepoOptions, collectionNumber int) (string, error) {
	body := map[string]any{
		"github_repo":        repo.Repo,
		"github_user":        repo.User,
		"github_token":       repo.Token,
		"github_branch":      orDefault(repo.Branch, "main"),
		"use_agent_settings": repo.UseAgentSettings,
		"collection_number":  collection(collectionNumber),
	}
	return s.client.message(ctx, "POST", "/api/agent/"+pathEscape(agentName)+"/learn/github", body)
}

// LearnArxiv ingests arXiv papers matched by query or listed by ID.
func (s *MemoryService) LearnArxiv(ctx context.Context, agentName, query, arxivIDs string, maxResults, collectionNumber int) (string, error) {
	if maxResults <= 0 {
		maxResults = 5
	}
	body := map[string]any{
		"query":             query,
		"arxiv_ids":         arxivIDs,
		"max_results":       maxResults,
		"collection_number": collection(collectionNumber),
	}
	return s.client.message(ctx, "POST", "/api/agent/"+pathEscape(agentName)+"/learn/arxiv", body)
}

// Query retrieves the memories most relevant to an input. minRelevance
// filters results below the given score (0 to 1).
func (s *MemoryService) Query(ctx context.Context, agentName, userInput string, limit int, minRelevance float64, collectionNumber int) ([]Memory, error) {
	if limit <= 0 {
		limit = 10
	}
	body := map[string]any{
		"user_input":          userInput,
		"limit":               limit,
		"min_relevance_score": minRelevance,
	}
	endpoint := "/api/agent/" + pathEscape(agentName) + "/memory/" + collection(collectionNumber) + "/query"
	var resp struct {
		Memories []Memory `json:"memories"`
	}
	if err := s.client.post(ctx, endpoint, body, &resp); err != nil {
		return nil, err
	}
	return resp.Memories, nil
}

// Export dumps all of an agent's memories across collections.
func (s *MemoryService) Export(ctx context.Context, agentName string) (map[string]any, error) {
	var resp struct {
		Memories map[string]any `json:"memories"`
	}
	if err := s.client.get(ctx, "/api/agent/"+pathEscape(agentName)+"/memory/export", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Memories, nil
}

// Import loads previously exported memories into an agent.
func (s *MemoryService) Import(ctx context.Context, agentName string, memories map[string]any) (string, error) {
	body := map[string]any{"memories": memories}
	return s.client.message(ctx, "POST", "/api/agent/"+pathEscape(agentName)+"/memory/import", body)
}

// Wipe deletes all of an agent's memories in every collection.
func (s *MemoryService) Wipe(ctx context.Context, agentName string) (string, error) {
	return s.client.message(ctx, "DELETE", "/api/agent/"+pathEscape(agentName)+"/memory", nil)
}

// WipeCollection deletes all memories in one collection.
func (s *MemoryService) WipeCollection(ctx context.Context, agentName string, collectionNumber int) (string, error) {
	endpoint := "/api/agent/" + pathEscape(agentName) + "/memory/" + collection(collectionNumber)
	return s.client.message(ctx, "DELETE", endpoint, nil)
}

// DeleteMemory removes a single memory by ID.
func (s *MemoryService) DeleteMemory(ctx context.Context, agentName, memoryID string, collectionNumber int) (string, error) {
	endpoint := "/api/agent/" + pathEscape(agentName) + "/memory/" + collection(collectionNumber) + "/" + pathEscape(memoryID)
	return s.client.message(ctx, "DELETE", endpoint, nil)
}

// CreateDataset builds a training dataset from an agent's memories.
func (s *MemoryService) CreateDataset(ctx context.Context, agentName, datasetName string, batchSize int) (string, error) {
	if batchSize <= 0 {
		batchSize = 4
	}
	body := map[string]any{
		"dataset_name": datasetName,
		"batch_size":   batchSize,
	}
	return s.client.message(ctx, "POST", "/api/agent/"+pathEscape(agentName)+"/memory/dataset", body)
}

// TrainOptions configures a fine-tuning run over a dataset.
type TrainOptions struct {
	Model                 string
	MaxSeqLength          int
	HuggingFaceOutputPath string
	PrivateRepo           bool
}

// Train fine-tunes a model on a dataset built with CreateDataset.
func (s *MemoryService) Train(ctx context.Context, agentName, datasetName string, opts TrainOptions) (string, error) {
	if opts.Model == "" {
		opts.Model = "unsloth/mistral-7b-v0.2"
	}
	if opts.MaxSeqLength <= 0 {
		opts.MaxSeqLength = 16384
	}
	body := map[string]any{
		"model":                   opts.Model,
		"max_seq_length":          opts.MaxSeqLength,
		"huggingface_output_path": opts.HuggingFaceOutputPath,
		"private_repo":            opts.PrivateRepo,
	}
	endpoint := "/api/agent/" + pathEscape(agentName) + "/memory/dataset/" + pathEscape(datasetName) + "/finetune"
	return s.client.message(ctx, "POST", endpoint, body)
}

// BrowsedLinks returns the URLs already ingested for an agent.
func (s *MemoryService) BrowsedLinks(ctx context.Context, agentName string) ([]string, error) {
	var resp struct {
		Links []string `json:"links"`
	}
	if err := s.client.get(ctx, "/api/agent/"+pathEscape(agentName)+"/browsed_links", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Links, nil
}

// DeleteBrowsedLink forgets an ingested URL and its memories.
func (s *MemoryService) DeleteBrowsedLink(ctx context.Context, agentName, link string, collectionNumber int) (string, error) {
	body := map[string]any{
		"link":              link,
		"collection_number": collection(collectionNumber),
	}
	return s.client.message(ctx, "DELETE", "/api/agent/"+pathEscape(agentName)+"/browsed_links", body)
}

// ExternalSources lists the external source names present in a collection.
func (s *MemoryService) ExternalSources(ctx context.Context, agentName string, collectionNumber int) ([]string, error) {
	endpoint := "/api/agent/" + pathEscape(agentName) + "/memory/external_sources/" + collection(collectionNumber)
	var resp struct {
		ExternalSources []string `json:"external_sources"`
	}
	if err := s.client.get(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ExternalSources, nil
}

// DeleteExternalSource removes every memory that came from one external
// source.
func (s *MemoryService) DeleteExternalSource(ctx context.Context, agentName, source string, collectionNumber int) (string, error) {
	body := map[string]any{
		"external_source":   source,
		"collection_number": collection(collectionNumber),
	}
	return s.client.message(ctx, "DELETE", "/api/agent/"+pathEscape(agentName)+"/memory/external_source", body)
}
