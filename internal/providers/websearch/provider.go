// Package websearch implements a generic web search source that scrapes the
// DuckDuckGo HTML results page. It is the last resort before the fallback
// link and needs only the company name.
package websearch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/seenimoa/newsboard/internal/analysis/impact"
	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
	"github.com/seenimoa/newsboard/pkg/utils"
)

const (
	sourceName     = "websearch"
	defaultBaseURL = "https://html.duckduckgo.com"
)

// Options configures the web search source.
type Options struct {
	BaseURL string
}

// Provider implements provider.Source over a web search results page.
type Provider struct {
	provider.BaseSource
	baseURL string
}

// New creates a new web search source.
func New(opts Options) *Provider {
	p := &Provider{
		BaseSource: provider.NewBaseSource(
			sourceName,
			"Web search",
			"DuckDuckGo HTML results for company news",
			"https://duckduckgo.com",
			[]provider.Field{provider.FieldName},
			nil,
		),
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
	}
	if p.baseURL == "" {
		p.baseURL = defaultBaseURL
	}
	return p
}

// SearchURL returns the results page URL queried for a company.
func (p *Provider) SearchURL(c models.Company) string {
	terms := []string{c.Name}
	if c.HasTicker() {
		terms = append(terms, utils.BaseTicker(c.Ticker))
	}
	terms = append(terms, "news")
	return p.baseURL + "/html/?q=" + url.QueryEscape(strings.Join(terms, " "))
}

// Lookup returns the first organic result on the results page.
func (p *Provider) Lookup(ctx context.Context, c models.Company) (*models.NewsItem, error) {
	if err := p.Check(c); err != nil {
		return nil, err
	}

	body, _, err := infra.DoGet(ctx, p.SearchURL(c), map[string]string{"Accept": "text/html"})
	if err != nil {
		return nil, fmt.Errorf("web search %s: %w", c.Name, err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	var item *models.NewsItem
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("result--ad") {
			return true
		}
		a := sel.Find("a.result__a").First()
		title := strings.TrimSpace(a.Text())
		href, _ := a.Attr("href")
		link := resolveLink(href)
		if title == "" || models.ValidateURL(link) != nil {
			return true
		}
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())

		item = p.Item(title, link, hostLabel(link))
		item.Impact = impact.Classify(title, snippet)
		return false
	})
	return item, nil
}

// resolveLink unwraps DuckDuckGo's redirect links (//duckduckgo.com/l/?uddg=...).
func resolveLink(href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" && strings.HasSuffix(u.Host, "duckduckgo.com") {
		return target
	}
	return href
}

// hostLabel turns a result URL into a short source label ("reuters.com").
func hostLabel(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
