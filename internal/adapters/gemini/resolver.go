// Package gemini resolves company sectors with Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"enrichio/internal/adapters/ratelimit"
	"enrichio/internal/adapters/sectorprompt"
	"enrichio/internal/ports"
)

const (
	// DefaultModel is used when no model is configured
	DefaultModel = "gemini-2.0-flash"

	// DefaultInterval keeps calls under the free tier quota of 15 per minute
	DefaultInterval = 4 * time.Second
)

// ErrMissingAPIKey is returned when no API key is configured
var ErrMissingAPIKey = errors.New("gemini API key is required")

// generateFunc sends a prompt and returns the answer text
type generateFunc func(ctx context.Context, model, prompt string) (string, error)

// Resolver implements ports.SectorResolver on top of the genai client
type Resolver struct {
	model    string
	limiter  *rate.Limiter
	generate generateFunc
}

// Ensure Resolver implements SectorResolver
var _ ports.SectorResolver = (*Resolver)(nil)

// Option configures the Resolver
type Option func(*Resolver)

// WithModel sets the Gemini model
func WithModel(model string) Option {
	return func(r *Resolver) {
		if model != "" {
			r.model = model
		}
	}
}

// WithInterval sets the minimum delay between two calls
func WithInterval(d time.Duration) Option {
	return func(r *Resolver) {
		r.limiter = ratelimit.Every(d)
	}
}

// NewResolver creates a resolver authenticated with apiKey
func NewResolver(ctx context.Context, apiKey string, opts ...Option) (*Resolver, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newResolver(clientGenerator(client), opts...), nil
}

func newResolver(generate generateFunc, opts ...Option) *Resolver {
	r := &Resolver{
		model:    DefaultModel,
		limiter:  ratelimit.Every(DefaultInterval),
		generate: generate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func clientGenerator(client *genai.Client) generateFunc {
	return func(ctx context.Context, model, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0),
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
}

// ResolveSector asks Gemini which of sectors fits companyName
func (r *Resolver) ResolveSector(ctx context.Context, companyName string, sectors []string) (*ports.SectorSuggestion, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	text, err := r.generate(ctx, r.model, sectorprompt.Build(companyName, sectors))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	suggestion, err := sectorprompt.Parse(text, sectors)
	if err != nil || suggestion == nil {
		return nil, err
	}
	suggestion.Model = r.model
	return suggestion, nil
}

// IsAvailable reports whether a client was configured
func (r *Resolver) IsAvailable() bool {
	return r != nil && r.generate != nil
}
