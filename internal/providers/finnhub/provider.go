// Package finnhub implements the Finnhub company-news source.
// Finnhub offers headline search by ticker and date range behind an API key.
//
// Free tier: 60 requests/minute.
// Docs: https://finnhub.io/docs/api/company-news
package finnhub

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/seenimoa/newsboard/internal/analysis/impact"
	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
	"github.com/seenimoa/newsboard/pkg/utils"
)

const (
	sourceName     = "finnhub"
	defaultBaseURL = "https://finnhub.io/api/v1"
	credAPIKey     = "api_key"
)

// Options configures the Finnhub source.
type Options struct {
	BaseURL    string
	WindowDays int              // look-back window, default 7
	Now        func() time.Time // clock override for tests
}

// Provider implements provider.Source for Finnhub.
type Provider struct {
	provider.BaseSource
	baseURL    string
	windowDays int
	now        func() time.Time
}

// New creates a new Finnhub source. Call Init with an api_key credential.
func New(opts Options) *Provider {
	p := &Provider{
		BaseSource: provider.NewBaseSource(
			sourceName,
			"Finnhub",
			"Finnhub company news - headlines by ticker for the last week",
			"https://finnhub.io",
			[]provider.Field{provider.FieldTicker},
			[]provider.SourceCredential{
				{
					Name:        credAPIKey,
					Description: "Finnhub API key from finnhub.io/register",
					EnvVar:      "NEWSBOARD_SOURCES_FINNHUB_API_KEY",
				},
			},
		),
		baseURL:    opts.BaseURL,
		windowDays: opts.WindowDays,
		now:        opts.Now,
	}
	if p.baseURL == "" {
		p.baseURL = defaultBaseURL
	}
	if p.windowDays <= 0 {
		p.windowDays = 7
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// Lookup returns the first article Finnhub reports for the company's ticker
// within the look-back window.
func (p *Provider) Lookup(ctx context.Context, c models.Company) (*models.NewsItem, error) {
	if err := p.Check(c); err != nil {
		return nil, err
	}
	apiKey := p.Credential(credAPIKey)
	if apiKey == "" {
		return nil, &provider.ErrInvalidCredentials{Source: sourceName, Detail: "api key not configured"}
	}

	from, to := utils.DateRange(p.now(), p.windowDays)
	q := url.Values{}
	q.Set("symbol", utils.NormalizeTicker(c.Ticker))
	q.Set("from", from)
	q.Set("to", to)
	q.Set("token", apiKey)

	var articles []companyNewsArticle
	if err := infra.GetJSON(ctx, p.baseURL+"/company-news?"+q.Encode(), jsonHeaders(), &articles); err != nil {
		return nil, fmt.Errorf("finnhub news %s: %w", c.Ticker, err)
	}

	for _, a := range articles {
		if a.Headline == "" || models.ValidateURL(a.URL) != nil {
			continue
		}
		item := p.Item(a.Headline, a.URL, a.Source)
		item.Published = utils.FromUnix(a.Datetime)
		item.Impact = impact.Classify(a.Headline, a.Summary)
		return item, nil
	}
	return nil, nil
}

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}
