// Package yfinance implements the Yahoo Finance news source.
// It uses the public v1 search endpoint, which returns a handful of recent
// headlines for a symbol alongside the quote match.
//
// Yahoo Finance is a free, no-API-key source; exchange suffixes are applied
// for non-US listings (e.g. LSE → .L).
package yfinance

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seenimoa/newsboard/internal/analysis/impact"
	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
	"github.com/seenimoa/newsboard/pkg/utils"
)

const (
	sourceName     = "yfinance"
	defaultBaseURL = "https://query2.finance.yahoo.com"
)

// Options configures the Yahoo Finance source.
type Options struct {
	BaseURL string
}

// Provider implements provider.Source for Yahoo Finance.
type Provider struct {
	provider.BaseSource
	baseURL string
}

// New creates a new Yahoo Finance source.
func New(opts Options) *Provider {
	p := &Provider{
		BaseSource: provider.NewBaseSource(
			sourceName,
			"Yahoo Finance",
			"Yahoo Finance search - recent headlines for a symbol",
			"https://finance.yahoo.com",
			[]provider.Field{provider.FieldTicker},
			nil, // no credentials required
		),
		baseURL: opts.BaseURL,
	}
	if p.baseURL == "" {
		p.baseURL = defaultBaseURL
	}
	return p
}

// Lookup returns the first headline Yahoo lists for the company's symbol.
func (p *Provider) Lookup(ctx context.Context, c models.Company) (*models.NewsItem, error) {
	if err := p.Check(c); err != nil {
		return nil, err
	}

	symbol := utils.ToYFinanceTicker(c.Ticker, c.Exchange)
	q := url.Values{}
	q.Set("q", symbol)
	q.Set("quotesCount", "1")
	q.Set("newsCount", "3")
	q.Set("enableFuzzyQuery", "false")

	var resp searchResponse
	if err := infra.GetJSON(ctx, p.baseURL+"/v1/finance/search?"+q.Encode(), jsonHeaders(), &resp); err != nil {
		return nil, fmt.Errorf("yfinance news %s: %w", symbol, err)
	}

	for _, n := range resp.News {
		if n.Title == "" || models.ValidateURL(n.Link) != nil {
			continue
		}
		item := p.Item(n.Title, n.Link, n.Publisher)
		item.Published = utils.FromUnix(n.ProviderPublishTime)
		item.Impact = impact.Classify(n.Title, n.Summary)
		return item, nil
	}
	return nil, nil
}

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}
