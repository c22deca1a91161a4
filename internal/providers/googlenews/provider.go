// Package googlenews implements a generic RSS search source backed by the
// Google News search feed. It needs only the company name, so it also covers
// companies without a US listing.
package googlenews

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/newsboard/internal/analysis/impact"
	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
	"github.com/seenimoa/newsboard/pkg/utils"
)

const (
	sourceName     = "googlenews"
	defaultBaseURL = "https://news.google.com"
)

// Options configures the Google News source.
type Options struct {
	BaseURL  string
	Language string // hl parameter, default en-US
	Region   string // gl parameter, default US
}

// Provider implements provider.Source over the Google News RSS search feed.
type Provider struct {
	provider.BaseSource
	baseURL  string
	language string
	region   string
	parser   *gofeed.Parser
}

// New creates a new Google News source.
func New(opts Options) *Provider {
	p := &Provider{
		BaseSource: provider.NewBaseSource(
			sourceName,
			"Google News",
			"Google News RSS search by company name and ticker",
			"https://news.google.com",
			[]provider.Field{provider.FieldName},
			nil,
		),
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		language: opts.Language,
		region:   opts.Region,
		parser:   gofeed.NewParser(),
	}
	if p.baseURL == "" {
		p.baseURL = defaultBaseURL
	}
	if p.language == "" {
		p.language = "en-US"
	}
	if p.region == "" {
		p.region = "US"
	}
	return p
}

// SearchURL returns the feed URL queried for a company.
func (p *Provider) SearchURL(c models.Company) string {
	query := `"` + c.Name + `"`
	if c.HasTicker() {
		query += " " + utils.BaseTicker(c.Ticker)
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("hl", p.language)
	q.Set("gl", p.region)
	q.Set("ceid", p.region+":"+strings.SplitN(p.language, "-", 2)[0])
	return p.baseURL + "/rss/search?" + q.Encode()
}

// Lookup returns the first feed entry for the company.
func (p *Provider) Lookup(ctx context.Context, c models.Company) (*models.NewsItem, error) {
	if err := p.Check(c); err != nil {
		return nil, err
	}

	body, _, err := infra.DoGet(ctx, p.SearchURL(c), map[string]string{
		"Accept": "application/rss+xml, application/xml, text/xml",
	})
	if err != nil {
		return nil, fmt.Errorf("google news %s: %w", c.Name, err)
	}
	defer body.Close()

	feed, err := p.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse RSS for %s: %w", c.Name, err)
	}

	for _, entry := range feed.Items {
		title, publisher := splitPublisher(entry.Title)
		if title == "" || models.ValidateURL(entry.Link) != nil {
			continue
		}
		item := p.Item(title, entry.Link, publisher)
		if entry.PublishedParsed != nil {
			item.Published = *entry.PublishedParsed
		}
		item.Impact = impact.Classify(title, cleanHTML(entry.Description))
		return item, nil
	}
	return nil, nil
}

// splitPublisher separates the " - Publisher" suffix Google appends to titles.
func splitPublisher(title string) (string, string) {
	title = strings.TrimSpace(title)
	i := strings.LastIndex(title, " - ")
	if i <= 0 {
		return title, ""
	}
	return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+3:])
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
