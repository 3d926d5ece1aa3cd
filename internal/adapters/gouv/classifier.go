package gouv

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

const (
	sourceAPI      = "Officiel (API)"
	sourceInternal = "Base Interne"
	sourceKeywords = "Mots-clés"
	sourceAI       = "IA"
	sourceWeb      = "Web"
	sourceFilter   = "Filtre"

	detailManual = "Correction manuelle"

	// webKeywordWeight scales keyword hits found in a web snippet
	webKeywordWeight = 5
	webTitleMaxLen   = 60
)

// Classifier implements ports.Classifier on top of the directory search
type Classifier struct {
	client    *Client
	overrides ports.OverrideLookup
	resolver  ports.SectorResolver
	web       ports.WebSearcher
	sectors   func() []string
	workers   int
	logger    *zap.Logger
}

// Ensure Classifier implements ports.Classifier
var _ ports.Classifier = (*Classifier)(nil)

// Option configures the Classifier
type Option func(*Classifier)

// WithOverrides makes saved manual corrections win over every other signal
func WithOverrides(lookup ports.OverrideLookup) Option {
	return func(c *Classifier) {
		c.overrides = lookup
	}
}

// WithResolver asks resolver to pick among sectors() when nothing else matched
func WithResolver(resolver ports.SectorResolver, sectors func() []string) Option {
	return func(c *Classifier) {
		c.resolver = resolver
		c.sectors = sectors
	}
}

// WithWebSearch scores a web search snippet for names the directory does not know
func WithWebSearch(searcher ports.WebSearcher) Option {
	return func(c *Classifier) {
		c.web = searcher
	}
}

// WithWorkers bounds the number of concurrent lookups in ClassifyBatch
func WithWorkers(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// NewClassifier creates a Classifier using client for directory searches
func NewClassifier(client *Client, opts ...Option) *Classifier {
	c := &Classifier{
		client:  client,
		sectors: domain.BuiltinLabels,
		workers: 4,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassifyOne runs the lookup pipeline for one raw input
func (c *Classifier) ClassifyOne(ctx context.Context, rawName string) (*domain.Record, error) {
	raw := strings.TrimSpace(rawName)
	name, ignored := ExtractCompany(raw)
	if ignored {
		r := ignoredRecord(raw)
		return &r, nil
	}

	known, isKnown := LookupKnown(name)

	company, err := c.client.Search(ctx, name)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("failed to search %q: %w", name, err)
		}
		if !isKnown {
			sector, ok := c.manualSector(ctx, raw)
			if !ok {
				return nil, fmt.Errorf("failed to search %q: %w", name, err)
			}
			c.logger.Warn("directory search failed, using manual correction",
				zap.String("input", raw), zap.Error(err))
			r := manualRecord(raw, name, sector)
			r.Normalize()
			return &r, nil
		}
		c.logger.Warn("directory search failed, using known company",
			zap.String("input", raw), zap.Error(err))
	}

	var r domain.Record
	switch {
	case company != nil:
		r = c.fromDirectory(ctx, raw, company, known, isKnown)
	case isKnown:
		r = fromKnown(raw, known)
	default:
		r = c.fromName(ctx, raw, name)
	}

	if sector, ok := c.manualSector(ctx, raw); ok {
		r.Sector = sector
		r.Detail = detailManual
	}

	r.Normalize()
	return &r, nil
}

// ClassifyBatch classifies every name with a bounded number of workers.
// A failed name becomes an error record; only cancellation fails the batch.
func (c *Classifier) ClassifyBatch(ctx context.Context, rawNames []string) ([]domain.Record, error) {
	records := make([]domain.Record, len(rawNames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, name := range rawNames {
		g.Go(func() error {
			r, err := c.ClassifyOne(gctx, name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				c.logger.Warn("lookup failed", zap.String("input", name), zap.Error(err))
				records[i] = domain.NewErrorRecord(name, err)
				return nil
			}
			records[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	return records, nil
}

func (c *Classifier) fromDirectory(ctx context.Context, raw string, company *Company, known KnownCompany, isKnown bool) domain.Record {
	r := domain.Record{
		Input:        raw,
		OfficialName: company.Name,
		Address:      company.Headquarters.Address,
		Region:       company.Headquarters.Region,
		Headcount:    HeadcountLabel(company.HeadcountBand),
		Source:       sourceAPI,
		Score:        "100%",
		Detail:       "Code NAF: " + company.NAF,
	}
	if r.Region == "" && company.Headquarters.PostalCode != "" {
		r.Region = RegionFromPostalCode(company.Headquarters.PostalCode)
	}
	if company.Siren != "" {
		r.Link = EntrepriseURL(company.Siren)
	}

	if isKnown {
		r.Sector = known.Sector
		r.Detail = "Override + API"
		if r.Headcount == domain.NotProvided && known.Headcount != "" {
			r.Headcount = known.Headcount
		}
		return r
	}

	if r.Sector = domain.SectorFromNAF(company.NAF); r.Sector != "" {
		return r
	}
	if sector, score := domain.SectorFromKeywords(company.Name); score > 0 {
		r.Sector = sector
		r.Detail = fmt.Sprintf("Code NAF: %s, mots-clés (%d)", company.NAF, score)
		return r
	}
	if s := c.resolve(ctx, company.Name); s != nil {
		r.Sector = s.Sector
		r.Detail = aiDetail(s)
	}
	return r
}

func fromKnown(raw string, known KnownCompany) domain.Record {
	return domain.Record{
		Input:        raw,
		OfficialName: known.Name,
		Sector:       known.Sector,
		Address:      known.Address,
		Region:       known.Region,
		Headcount:    known.Headcount,
		Link:         known.Link(),
		Detail:       "Override (API Echoit)",
		Source:       sourceInternal,
		Score:        "100%",
	}
}

// fromName classifies a company the directory does not know
func (c *Classifier) fromName(ctx context.Context, raw, name string) domain.Record {
	if sector, score := domain.SectorFromKeywords(name); score > 0 {
		return domain.Record{
			Input:        raw,
			OfficialName: name,
			Sector:       sector,
			Link:         SearchURL(name),
			Detail:       "Analyse du nom",
			Source:       sourceKeywords,
			Score:        strconv.Itoa(score),
		}
	}
	if r, ok := c.fromWeb(ctx, raw, name); ok {
		return r
	}
	if s := c.resolve(ctx, name); s != nil {
		return domain.Record{
			Input:        raw,
			OfficialName: name,
			Sector:       s.Sector,
			Link:         SearchURL(name),
			Detail:       aiDetail(s),
			Source:       sourceAI,
			Score:        s.Confidence,
		}
	}
	return domain.NewNotFoundRecord(raw, name)
}

// fromWeb scores the top web hit for name with the sector keywords
func (c *Classifier) fromWeb(ctx context.Context, raw, name string) (domain.Record, bool) {
	if c.web == nil {
		return domain.Record{}, false
	}
	hit, err := c.web.SearchWeb(ctx, name)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.Warn("web search failed", zap.String("company", name), zap.Error(err))
		}
		return domain.Record{}, false
	}
	if hit == nil {
		return domain.Record{}, false
	}
	sector, hits := domain.SectorFromKeywords(hit.Title + " " + hit.Snippet)
	if hits == 0 {
		c.logger.Debug("no sector keyword in web snippet", zap.String("company", name), zap.String("url", hit.URL))
		return domain.Record{}, false
	}

	official := name
	if title := strings.TrimSpace(hit.Title); title != "" && len([]rune(title)) < webTitleMaxLen {
		official = title
	}
	return domain.Record{
		Input:        raw,
		OfficialName: official,
		Sector:       sector,
		Address:      "International / Web",
		Region:       "Monde",
		Link:         SearchURL(name),
		Detail:       fmt.Sprintf("Analyse web (%s)", hit.URL),
		Source:       sourceWeb,
		Score:        strconv.Itoa(hits * webKeywordWeight),
	}, true
}

// manualRecord builds the row for a saved correction the directory could not confirm
func manualRecord(raw, name, sector string) domain.Record {
	return domain.Record{
		Input:        raw,
		OfficialName: name,
		Sector:       sector,
		Link:         SearchURL(name),
		Detail:       detailManual,
		Source:       sourceInternal,
		Score:        "100%",
	}
}

func (c *Classifier) manualSector(ctx context.Context, raw string) (string, bool) {
	if c.overrides == nil {
		return "", false
	}
	sector, ok, err := c.overrides.LookupOverride(ctx, raw)
	if err != nil {
		c.logger.Warn("override lookup failed", zap.String("input", raw), zap.Error(err))
		return "", false
	}
	return sector, ok && sector != ""
}

// resolve asks the AI resolver and only keeps a listed sector
func (c *Classifier) resolve(ctx context.Context, name string) *ports.SectorSuggestion {
	if c.resolver == nil || !c.resolver.IsAvailable() {
		return nil
	}
	sectors := c.sectors()
	s, err := c.resolver.ResolveSector(ctx, name, sectors)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.Warn("sector resolver failed", zap.String("company", name), zap.Error(err))
		}
		return nil
	}
	if s == nil || !slices.Contains(sectors, s.Sector) {
		return nil
	}
	return s
}

func aiDetail(s *ports.SectorSuggestion) string {
	detail := "IA"
	if s.Model != "" {
		detail += " (" + s.Model + ")"
	}
	if s.Reasoning != "" {
		detail += ": " + s.Reasoning
	}
	return detail
}

func ignoredRecord(raw string) domain.Record {
	return domain.Record{
		Input:        raw,
		OfficialName: domain.SectorIgnored,
		Sector:       domain.SectorIgnored,
		Address:      domain.NoValue,
		Region:       domain.NoValue,
		Link:         domain.NoValue,
		Detail:       "Email Ignoré",
		Source:       sourceFilter,
		Score:        "0",
	}
}
