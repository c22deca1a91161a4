// Package sec implements the SEC EDGAR filings source.
// The result is always the EDGAR browse page for the company's CIK; when the
// submissions index is reachable the title names the most recent filing.
//
// No API key required. Must include a User-Agent header per SEC policy.
// Docs: https://www.sec.gov/edgar/sec-api-documentation
// Rate limit: 10 requests/second per user-agent.
package sec

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
)

const (
	sourceName = "sec"

	defaultBrowseURL = "https://www.sec.gov"
	defaultDataURL   = "https://data.sec.gov"

	// SEC requires a User-Agent with a contact for EDGAR requests.
	DefaultUserAgent = "newsboard/1.0 (github.com/seenimoa/newsboard)"

	// PublishedCurrent is shown instead of a date when the index could not be read.
	PublishedCurrent = "Current filings"
)

// Options configures the SEC source.
type Options struct {
	BrowseURL string // www.sec.gov base for the browse link
	DataURL   string // data.sec.gov base for the submissions index
	UserAgent string
	Logger    *slog.Logger
}

// Provider implements provider.Source for SEC EDGAR.
type Provider struct {
	provider.BaseSource
	browseURL string
	dataURL   string
	userAgent string
	logger    *slog.Logger
}

// New creates a new SEC source.
func New(opts Options) *Provider {
	p := &Provider{
		BaseSource: provider.NewBaseSource(
			sourceName,
			"SEC EDGAR",
			"SEC EDGAR - latest regulatory filings for US-registered companies",
			"https://www.sec.gov/edgar",
			[]provider.Field{provider.FieldCIK},
			nil, // No credentials required
		),
		browseURL: strings.TrimRight(opts.BrowseURL, "/"),
		dataURL:   strings.TrimRight(opts.DataURL, "/"),
		userAgent: opts.UserAgent,
		logger:    opts.Logger,
	}
	if p.browseURL == "" {
		p.browseURL = defaultBrowseURL
	}
	if p.dataURL == "" {
		p.dataURL = defaultDataURL
	}
	if p.userAgent == "" {
		p.userAgent = DefaultUserAgent
	}
	if p.logger == nil {
		p.logger = infra.Discard()
	}
	return p
}

// BrowseURL returns the EDGAR company browse page for a CIK.
func (p *Provider) BrowseURL(cik string) string {
	return fmt.Sprintf("%s/cgi-bin/browse-edgar?action=getcompany&CIK=%s&type=&dateb=&owner=exclude&count=10",
		p.browseURL, url.QueryEscape(cik))
}

// Lookup returns a link to the company's filings. The link does not depend on
// live content, so an unreachable index only costs the filing details.
func (p *Provider) Lookup(ctx context.Context, c models.Company) (*models.NewsItem, error) {
	if err := p.Check(c); err != nil {
		return nil, err
	}
	cik := strings.TrimSpace(c.CIK)

	item := p.Item("Latest SEC filings", p.BrowseURL(cik), "")
	item.Kind = models.KindFiling
	item.Impact = models.ImpactNeutral

	latest, err := p.latestFiling(ctx, cik)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p.logger.Warn("sec submissions index unavailable", "company", c.Name, "cik", cik, "error", err)
		item.PublishedAt = PublishedCurrent
		return item, nil
	}
	if latest == nil {
		item.PublishedAt = PublishedCurrent
		return item, nil
	}

	item.Title = "Latest SEC filing: " + latest.Form
	if latest.Description != "" && !strings.EqualFold(latest.Description, latest.Form) {
		item.Title += " - " + latest.Description
	}
	if t, err := time.Parse("2006-01-02", latest.FilingDate); err == nil {
		item.Published = t
	}
	return item, nil
}

// latestFiling reads the first entry of the recent filings table.
func (p *Provider) latestFiling(ctx context.Context, cik string) (*filing, error) {
	u := fmt.Sprintf("%s/submissions/CIK%s.json", p.dataURL, padCIK(cik))
	var resp submissionsResponse
	if err := infra.GetJSON(ctx, u, p.headers(), &resp); err != nil {
		return nil, fmt.Errorf("sec submissions %s: %w", cik, err)
	}
	return resp.Filings.Recent.first(), nil
}

func (p *Provider) headers() map[string]string {
	return map[string]string{
		"User-Agent": p.userAgent,
		"Accept":     "application/json",
	}
}

// padCIK pads a CIK number to 10 digits with leading zeros.
func padCIK(cik string) string {
	for len(cik) < 10 {
		cik = "0" + cik
	}
	return cik
}
