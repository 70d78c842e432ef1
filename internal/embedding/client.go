// Package embedding wraps the Gemini embedding API behind a provider-agnostic
// client with retry-with-backoff for rate-limited calls.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultModel is the embedding model. Identical input text yields identical
// vectors under a fixed model, which the catalog embedder relies on.
const DefaultModel = "text-embedding-004"

const (
	// maxAttempts bounds total calls per logical request: the initial
	// attempt plus four retries on rate-limit responses.
	maxAttempts    = 5
	initialBackoff = 500 * time.Millisecond
	maxBackoff     = 8 * time.Second
)

// Client is an abstraction over embedding providers.
type Client interface {
	// GenerateEmbedding returns the embedding vector for a single text.
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	// GenerateBatchEmbeddings returns one vector per input text, in input order.
	// The batch is atomic: either every text embeds or the call fails.
	GenerateBatchEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the client.
	Close() error
}

// transport is the raw provider call surface, separated from the retry loop
// so tests can script failures and count attempts.
type transport interface {
	embed(ctx context.Context, text string) ([]float32, error)
	embedBatch(ctx context.Context, texts []string) ([][]float32, error)
	close() error
}

// GeminiClient implements Client against the Gemini embedding API.
type GeminiClient struct {
	transport transport
	sleep     func(time.Duration)
}

// Option configures a GeminiClient.
type Option func(*GeminiClient)

// WithSleep overrides the backoff sleep function for deterministic tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *GeminiClient) {
		c.sleep = sleep
	}
}

// NewGeminiClient creates a new Gemini embedding client.
func NewGeminiClient(ctx context.Context, apiKey string, opts ...Option) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &GeminiClient{
		transport: &geminiTransport{client: client, model: DefaultModel},
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenerateEmbedding returns the embedding vector for a single text.
func (c *GeminiClient) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	var vec []float32
	err := c.withRetry(func() error {
		var callErr error
		vec, callErr = c.transport.embed(ctx, text)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return vec, nil
}

// GenerateBatchEmbeddings returns one vector per input text, in input order.
func (c *GeminiClient) GenerateBatchEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, ErrInvalidInput
		}
	}

	var vecs [][]float32
	err := c.withRetry(func() error {
		var callErr error
		vecs, callErr = c.transport.embedBatch(ctx, texts)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return vecs, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	return c.transport.close()
}

// withRetry runs call, retrying rate-limited attempts with a bounded,
// non-decreasing backoff. Any other failure surfaces immediately.
func (c *GeminiClient) withRetry(call func() error) error {
	backoff := initialBackoff
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = call()
		if err == nil {
			return nil
		}
		if !isRateLimited(err) {
			return &APIError{Err: err}
		}
		if attempt == maxAttempts {
			break
		}
		c.sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
	return &RateLimitError{Attempts: maxAttempts, Err: err}
}

// isRateLimited reports whether err is the rate-limit signal: HTTP 429,
// gRPC ResourceExhausted, or a RESOURCE_EXHAUSTED status body.
func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
		return true
	}
	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return true
	}
	return strings.Contains(err.Error(), "RESOURCE_EXHAUSTED")
}

// geminiTransport issues the actual API calls through the genai SDK.
type geminiTransport struct {
	client *genai.Client
	model  string
}

func (t *geminiTransport) embed(ctx context.Context, text string) ([]float32, error) {
	em := t.client.EmbeddingModel(t.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("no embedding values in response")
	}
	return res.Embedding.Values, nil
}

func (t *geminiTransport) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	em := t.client.EmbeddingModel(t.model)
	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings in response, got %d", len(texts), len(res.Embeddings))
	}

	vecs := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, fmt.Errorf("no embedding values in response at index %d", i)
		}
		vecs[i] = e.Values
	}
	return vecs, nil
}

func (t *geminiTransport) close() error {
	return t.client.Close()
}
