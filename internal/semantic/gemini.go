package semantic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/harishsure007/Jobflowai/internal/logger"
)

const defaultEmbedModel = "gemini-embedding-001"

// embedder is the seam between the scorer and the Gemini API, so tests
// can substitute a stub.
type embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// GeminiScorer embeds both texts with the Gemini embedding API and
// reports their cosine similarity.
type GeminiScorer struct {
	embedder  embedder
	modelName string
	logger    *zap.Logger
	maxLogLen int
}

const defaultMaxLogLength = 200

// NewGemini creates a scorer backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiScorer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbedModel
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &GeminiScorer{
		embedder:  &geminiEmbedder{client: client, modelName: model},
		modelName: model,
		logger:    logger,
		maxLogLen: defaultMaxLogLength,
	}, nil
}

// Similarity implements Scorer. The returned value is the cosine of the
// two embeddings clamped into [0,1].
func (s *GeminiScorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	if s == nil || s.embedder == nil {
		return 0, ErrUnavailable
	}

	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0, fmt.Errorf("%w: empty text", ErrUnavailable)
	}

	s.logger.Debug("embedding request",
		zap.String("model", s.modelName),
		zap.String("text_a_preview", logger.TruncateForLog(a, s.maxLogLen)),
		zap.String("text_b_preview", logger.TruncateForLog(b, s.maxLogLen)),
	)

	vectors, err := s.embedder.Embed(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("%w: expected 2 embeddings, got %d", ErrUnavailable, len(vectors))
	}

	similarity := cosine(vectors[0], vectors[1])
	if similarity < 0 {
		similarity = 0
	}
	if similarity > 1 {
		similarity = 1
	}
	return similarity, nil
}

// Model returns the embedding model name.
func (s *GeminiScorer) Model() string {
	if s == nil {
		return ""
	}
	return s.modelName
}

type geminiEmbedder struct {
	client    *genai.Client
	modelName string
}

func (g *geminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, &genai.Content{
			Role: genai.RoleUser,
			Parts: []*genai.Part{{
				Text: text,
			}},
		})
	}

	resp, err := g.client.Models.EmbedContent(ctx, g.modelName, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, errors.New("gemini api returned an unexpected embedding count")
	}

	vectors := make([][]float32, 0, len(resp.Embeddings))
	for _, embedding := range resp.Embeddings {
		if embedding == nil || len(embedding.Values) == 0 {
			return nil, errors.New("gemini api returned an empty embedding")
		}
		vectors = append(vectors, embedding.Values)
	}
	return vectors, nil
}
