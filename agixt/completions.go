package agixt

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

// CompletionsService covers the server's OpenAI-style surface: chat
// completions, image generation, speech synthesis, and audio
// transcription/translation.
type CompletionsService struct {
	client *Client
}

// ChatMessage is one turn in a chat completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ChatCompletionsRequest mirrors the OpenAI chat completions request. Model
// carries the agent name and User the conversation name.
type ChatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	User        string        `json:"user,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
	N           int           `json:"n,omitempty"`
}

// ChatCompletionsResponse mirrors the OpenAI chat completions response.
type ChatCompletionsResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int    `json:"index"`
		FinishReason string `json:"finish_reason"`
		Message      struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletions runs a chat completion against the agent named in
// req.Model, inside the conversation named in req.User.
func (s *CompletionsService) ChatCompletions(ctx context.Context, req ChatCompletionsRequest) (ChatCompletionsResponse, error) {
	var resp ChatCompletionsResponse
	if err := s.client.post(ctx, "/v1/chat/completions", req, &resp); err != nil {
		return ChatCompletionsResponse{}, err
	}
	return resp, nil
}

// GenerateImage asks the server to render images for a prompt and returns
// their URLs. n defaults to 1 and size to 1024x1024 when zero-valued.
func (s *CompletionsService) GenerateImage(ctx context.Context, prompt, model string, n int, size string) ([]string, error) {
	if n <= 0 {
		n = 1
	}
	body := map[string]any{
		"prompt":          prompt,
		"model":           model,
		"n":               n,
		"size":            orDefault(size, "1024x1024"),
		"response_format": "url",
	}
	var resp struct {
		Created int64 `json:"created"`
		Data    []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := s.client.post(ctx, "/v1/images/generations", body, &resp); err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		urls = append(urls, d.URL)
	}
	return urls, nil
}

// TextToSpeech synthesizes speech for text with an agent's TTS provider and
// returns the audio URL.
func (s *CompletionsService) TextToSpeech(ctx context.Context, agentName, text string) (string, error) {
	body := map[string]string{"text": text}
	var resp struct {
		URL string `json:"url"`
	}
	if err := s.client.post(ctx, "/api/agent/"+pathEscape(agentName)+"/text_to_speech", body, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// TranscribeAudio uploads audio and returns its transcription in the
// spoken language.
func (s *CompletionsService) TranscribeAudio(ctx context.Context, fileName string, audio []byte, model string) (string, error) {
	return s.audioUpload(ctx, "/v1/audio/transcriptions", fileName, audio, model)
}

// TranslateAudio uploads audio and returns an English translation of its
// contents.
func (s *CompletionsService) TranslateAudio(ctx context.Context, fileName string, audio []byte, model string) (string, error) {
	return s.audioUpload(ctx, "/v1/audio/translations", fileName, audio, model)
}

func (s *CompletionsService) audioUpload(ctx context.Context, endpoint, fileName string, audio []byte, model string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("writing form file: %w", err)
	}
	if err := w.WriteField("model", model); err != nil {
		return "", fmt.Errorf("writing model field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("closing multipart writer: %w", err)
	}

	u := s.client.BaseURL() + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.client.userAgent)
	if token := s.client.Token(); token != "" {
		req.Header.Set("Authorization", token)
	}

	var resp struct {
		Text string `json:"text"`
	}
	if err := s.client.doRequest(req, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}
