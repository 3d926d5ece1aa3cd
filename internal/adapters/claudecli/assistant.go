package claudecli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	"enrichio/internal/adapters/sectorprompt"
	"enrichio/internal/ports"
)

// Resolver implements ports.SectorResolver using the Claude Code CLI
type Resolver struct {
	model  string
	binary string
}

// Ensure Resolver implements SectorResolver
var _ ports.SectorResolver = (*Resolver)(nil)

// Option configures the Resolver
type Option func(*Resolver)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(r *Resolver) {
		if model != "" {
			r.model = model
		}
	}
}

// WithBinary overrides the CLI executable
func WithBinary(path string) Option {
	return func(r *Resolver) {
		if path != "" {
			r.binary = path
		}
	}
}

// NewResolver creates a new Claude CLI resolver
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		model:  "haiku", // Default to haiku for speed
		binary: "claude",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	DurationMS   int     `json:"duration_ms"`
	IsError      bool    `json:"is_error"`
	NumTurns     int     `json:"num_turns"`
	Result       string  `json:"result"`
	SessionID    string  `json:"session_id"`
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// ResolveSector asks Claude which of sectors fits companyName
func (r *Resolver) ResolveSector(ctx context.Context, companyName string, sectors []string) (*ports.SectorSuggestion, error) {
	prompt := sectorprompt.Build(companyName, sectors)

	args := []string{
		"-p", prompt,
		"--output-format", "json",
		"--model", r.model,
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("claude CLI error: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("claude CLI error: %w", err)
	}

	result, err := parseResponse(output)
	if err != nil {
		return nil, err
	}

	suggestion, err := sectorprompt.Parse(result, sectors)
	if err != nil || suggestion == nil {
		return nil, err
	}
	suggestion.Model = "claude-" + r.model
	return suggestion, nil
}

// parseResponse unwraps the answer text from the CLI JSON envelope
func parseResponse(output []byte) (string, error) {
	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return "", fmt.Errorf("failed to parse claude response: %w", err)
	}
	if response.IsError {
		return "", fmt.Errorf("claude returned an error: %s", response.Result)
	}
	return response.Result, nil
}

// IsAvailable checks if the claude CLI is installed and accessible
func (r *Resolver) IsAvailable() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}
