package embeddings

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultEmbeddingModel is the Gemini embedding model used when none is configured.
const defaultEmbeddingModel = "text-embedding-004"

// maxEmbedChars truncates very long documents before embedding; the model's
// useful context is far shorter than a multi-page resume dump.
const maxEmbedChars = 8000

// GeminiProvider embeds text with the Gemini embedding API.
// The underlying client is safe for concurrent use.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider backed by the Gemini embedding API.
// Pass an empty model to use the default.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// ModelID returns the embedding model name.
func (p *GeminiProvider) ModelID() string {
	return p.model
}

// Embed returns the embedding vector for the given text.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	em := p.client.EmbeddingModel(p.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &EmbedError{Model: p.model, Cause: err}
	}
	if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, &EmbedError{Model: p.model, Cause: fmt.Errorf("empty embedding response")}
	}

	return res.Embedding.Values, nil
}

// Close releases the underlying API client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
