// Package gouv classifies French companies with the public company directory
// (recherche-entreprises.api.gouv.fr), a static table of well-known groups,
// NAF codes and keyword scoring.
package gouv

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
)

const (
	// DefaultBaseURL is the public company search API
	DefaultBaseURL = "https://recherche-entreprises.api.gouv.fr"

	directoryURL = "https://annuaire-entreprises.data.gouv.fr"
	perPage      = "5"
)

// TransportError is returned when the directory answers with a non-2xx status
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("directory search returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("directory search returned status %d: %s", e.StatusCode, e.Body)
}

// Company is one search result
type Company struct {
	Siren         string       `json:"siren"`
	Name          string       `json:"nom_complet"`
	NAF           string       `json:"activite_principale"`
	HeadcountBand string       `json:"tranche_effectif_salarie"`
	Headquarters  Headquarters `json:"siege"`
}

// Headquarters is the registered head office of a company
type Headquarters struct {
	Address    string `json:"adresse"`
	Region     string `json:"libelle_region"`
	PostalCode string `json:"code_postal"`
}

type searchResponse struct {
	Results []Company `json:"results"`
}

// Client calls the search API, spacing requests by a minimum interval
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithRateInterval sets the minimum delay between two requests
func WithRateInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.limiter = ratelimit.Every(d)
	}
}

// NewClient creates a search client for baseURL (DefaultBaseURL when empty)
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: ratelimit.Every(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns the best match for name, or nil when the directory has none.
// Works councils ("COMITE", "CSE ") are skipped unless nothing else matched.
func (c *Client) Search(ctx context.Context, name string) (*Company, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{"q": {name}, "per_page": {perPage}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return pickResult(result.Results), nil
}

func pickResult(results []Company) *Company {
	if len(results) == 0 {
		return nil
	}
	for i := range results {
		name := strings.ToUpper(results[i].Name)
		if !strings.Contains(name, "COMITE") && !strings.Contains(name, "CSE ") {
			return &results[i]
		}
	}
	return &results[0]
}

// EntrepriseURL links to the directory page of a SIREN
func EntrepriseURL(siren string) string {
	return directoryURL + "/entreprise/" + siren
}

// SearchURL links to the directory search page for name
func SearchURL(name string) string {
	return directoryURL + "/rechercher?q=" + url.QueryEscape(name)
}
