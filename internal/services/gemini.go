package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/interview-coach/internal/logger"
)

const defaultGeminiModel = "gemini-2.5-flash"

// LanguageModel turns one rendered prompt into one raw completion.
type LanguageModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiOptions struct {
	APIKey      string
	Model       string
	Temperature float32
	// BaseURL overrides the Gemini API endpoint; empty uses the SDK default.
	BaseURL string
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	log         *zap.Logger
}

func NewGeminiService(ctx context.Context, opts GeminiOptions, log *zap.Logger) (LanguageModel, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultGeminiModel
	}

	return &geminiService{
		client:      client,
		modelName:   model,
		temperature: opts.Temperature,
		log:         log,
	}, nil
}

// GenerateText implements LanguageModel. It makes exactly one call and
// returns the concatenated text of the response, which may be empty.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	g.log.Debug("gemini request",
		zap.String("model", g.modelName),
		zap.Int("prompt_chars", len(prompt)),
	)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		g.log.Error("gemini api error", zap.Error(err))
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		g.log.Warn("gemini returned no text content", zap.Int("candidates", len(resp.Candidates)))
	}

	g.log.Debug("gemini response received",
		zap.Int("response_chars", len(text)),
		zap.String("preview", logger.Truncate(text, 120)),
	)

	return text, nil
}
