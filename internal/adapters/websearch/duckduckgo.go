// Package websearch finds companies on the open web through the DuckDuckGo
// Instant Answer API.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"enrichio/internal/adapters/ratelimit"
	"enrichio/internal/ports"
)

// DefaultBaseURL is the public Instant Answer endpoint
const DefaultBaseURL = "https://api.duckduckgo.com"

// instantAnswer is the subset of the API response in use
type instantAnswer struct {
	Heading       string  `json:"Heading"`
	AbstractText  string  `json:"AbstractText"`
	AbstractURL   string  `json:"AbstractURL"`
	RelatedTopics []topic `json:"RelatedTopics"`
}

// topic is either a hit (Text, FirstURL) or a named group of hits
type topic struct {
	Text     string  `json:"Text"`
	FirstURL string  `json:"FirstURL"`
	Topics   []topic `json:"Topics"`
}

// Client implements ports.WebSearcher
type Client struct {
	baseURL string
	region  string
	http    *http.Client
	limiter *rate.Limiter
}

// Ensure Client implements WebSearcher
var _ ports.WebSearcher = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithRateInterval sets the minimum delay between two searches
func WithRateInterval(d time.Duration) Option {
	return func(c *Client) {
		c.limiter = ratelimit.Every(d)
	}
}

// NewClient creates a search client for baseURL (DefaultBaseURL when empty)
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		region:  "fr-fr",
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: ratelimit.Every(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchWeb returns the abstract of query, or its first related topic
func (c *Client) SearchWeb(ctx context.Context, query string) (*ports.WebResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"q":             {query},
		"format":        {"json"},
		"no_html":       {"1"},
		"skip_disambig": {"1"},
		"kl":            {c.region},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("web search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var answer instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("failed to decode web search: %w", err)
	}
	return answer.best(), nil
}

func (a instantAnswer) best() *ports.WebResult {
	if text := strings.TrimSpace(a.AbstractText); text != "" {
		return &ports.WebResult{Title: a.Heading, URL: a.AbstractURL, Snippet: text}
	}
	if t := firstTopic(a.RelatedTopics); t != nil {
		title := a.Heading
		if title == "" {
			title, _, _ = strings.Cut(t.Text, " - ")
		}
		return &ports.WebResult{Title: strings.TrimSpace(title), URL: t.FirstURL, Snippet: t.Text}
	}
	return nil
}

// firstTopic walks groups depth first
func firstTopic(topics []topic) *topic {
	for i := range topics {
		if strings.TrimSpace(topics[i].Text) != "" {
			return &topics[i]
		}
		if t := firstTopic(topics[i].Topics); t != nil {
			return t
		}
	}
	return nil
}
