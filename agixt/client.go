// Package agixt is a Go client for the AGiXT agent-orchestration REST API.
//
// A Client exposes the full endpoint surface through service fields:
//
//	client, _ := agixt.New("http://localhost:7437", agixt.WithAPIKey(key))
//	agents, err := client.Agents.List(ctx)
//
// Every remote call takes a context.Context and returns a typed value plus
// an error. Server-side failures (HTTP status >= 400) are returned as
// *APIError carrying the status code and the server's detail message.
package agixt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultBaseURL is used when New is called with an empty base URL. 7437 is
// the port an AGiXT server listens on out of the box.
const DefaultBaseURL = "http://localhost:7437"

// DefaultTimeout bounds requests made with the built-in http.Client. Agent
// prompts and chain runs routinely take minutes on the server side.
const DefaultTimeout = 5 * time.Minute

// Client talks to a single AGiXT server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	log        zerolog.Logger

	mu    sync.RWMutex
	token string

	// Services mirroring the server's endpoint groups.
	Auth          *AuthService
	Agents        *AgentsService
	Conversations *ConversationsService
	Chains        *ChainsService
	Prompts       *PromptsService
	Memory        *MemoryService
	Extensions    *ExtensionsService
	Providers     *ProvidersService
	Completions   *CompletionsService
}

// ClientOpt customizes a Client at construction time.
type ClientOpt func(*clientOptions)

type clientOptions struct {
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	retryMax   int
	userAgent  string
	log        zerolog.Logger
}

// WithAPIKey sets the token sent in the Authorization header. Login and
// Register replace it with the token the server issues.
func WithAPIKey(key string) ClientOpt {
	return func(o *clientOptions) { o.apiKey = strings.TrimSpace(key) }
}

// WithHTTPClient supplies a custom http.Client. Overrides WithTimeout and
// WithRetries.
func WithHTTPClient(hc *http.Client) ClientOpt {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the built-in http.Client.
func WithTimeout(d time.Duration) ClientOpt {
	return func(o *clientOptions) { o.timeout = d }
}

// WithRetries enables retrying of transient failures (connection errors and
// 5xx responses) up to max attempts with exponential backoff. Requests are
// not retried by default.
func WithRetries(max int) ClientOpt {
	return func(o *clientOptions) { o.retryMax = max }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOpt {
	return func(o *clientOptions) { o.userAgent = ua }
}

// WithLogger attaches a zerolog logger; the client logs one debug event per
// request with method, path, status, and duration.
func WithLogger(log zerolog.Logger) ClientOpt {
	return func(o *clientOptions) { o.log = log }
}

// New creates a Client for the server at baseURL. An empty baseURL falls
// back to DefaultBaseURL.
func New(baseURL string, opts ...ClientOpt) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", parsed.Scheme)
	}

	options := clientOptions{
		timeout:   DefaultTimeout,
		userAgent: "agixt-go-sdk",
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	hc := options.httpClient
	if hc == nil {
		if options.retryMax > 0 {
			rc := retryablehttp.NewClient()
			rc.RetryMax = options.retryMax
			rc.HTTPClient.Timeout = options.timeout
			rc.Logger = nil
			hc = rc.StandardClient()
		} else {
			hc = &http.Client{Timeout: options.timeout}
		}
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: hc,
		userAgent:  options.userAgent,
		log:        options.log,
		token:      options.apiKey,
	}
	c.Auth = &AuthService{client: c}
	c.Agents = &AgentsService{client: c}
	c.Conversations = &ConversationsService{client: c}
	c.Chains = &ChainsService{client: c}
	c.Prompts = &PromptsService{client: c}
	c.Memory = &MemoryService{client: c}
	c.Extensions = &ExtensionsService{client: c}
	c.Providers = &ProvidersService{client: c}
	c.Completions = &CompletionsService{client: c}
	return c, nil
}

// BaseURL returns the server base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Token returns the token currently sent in the Authorization header.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the stored token. Login calls this with the token the
// server issues, so calls made after a successful login are authenticated
// as that user.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("agixt: server returned %d: %s", e.StatusCode, e.Detail)
}

// request plumbing

func (c *Client) get(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, body, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out)
}

func (c *Client) patch(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, body, out)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	// Endpoints arrive pre-escaped and may carry a query string, so join
	// textually and reparse rather than rebuilding the path.
	u, err := url.Parse(c.baseURL.String() + endpoint)
	if err != nil {
		return nil, fmt.Errorf("building request url: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token := c.Token(); token != "" {
		// The server expects the raw token, not a Bearer scheme.
		req.Header.Set("Authorization", token)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	req, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	return c.doRequest(req, out)
}

func (c *Client) doRequest(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// message performs a request whose response carries only a "message" field
// and returns that field. Most mutation endpoints respond this way.
func (c *Client) message(ctx context.Context, method, endpoint string, body any) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, method, endpoint, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading error response: %w", err)
	}
	var shape struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &shape); err == nil && shape.Detail != "" {
		apiErr.Detail = shape.Detail
	} else {
		apiErr.Detail = strings.TrimSpace(string(data))
	}
	return apiErr
}
