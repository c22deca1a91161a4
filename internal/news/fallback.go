package news

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/seenimoa/newsboard/pkg/models"
)

// Fallback produces the item shown when no source had anything.
// It may return nil, which renders as the "no news" placeholder.
type Fallback func(c models.Company) *models.NewsItem

// Source labels used on fallback items.
const (
	SourceIR     = "Company IR"
	SourceSearch = "News search"
)

// FallbackNone never produces an item.
func FallbackNone(models.Company) *models.NewsItem { return nil }

// FallbackIR links to the company's investor relations page, if it has one.
func FallbackIR(c models.Company) *models.NewsItem {
	if models.ValidateURL(c.IRURL) != nil {
		return nil
	}
	return &models.NewsItem{
		Title:       "Go to the investor relations page",
		URL:         c.IRURL,
		Source:      SourceIR,
		PublishedAt: "Visit the IR page",
		Impact:      models.ImpactNone,
		Kind:        models.KindFallback,
	}
}

// FallbackSearch links to a public news search for the company.
// The URL depends only on the company's name and ticker.
func FallbackSearch(c models.Company) *models.NewsItem {
	if strings.TrimSpace(c.Name) == "" {
		return nil
	}
	return &models.NewsItem{
		Title:       fmt.Sprintf("Search recent news for %s", c.Name),
		URL:         SearchURL(c),
		Source:      SourceSearch,
		PublishedAt: "Search results",
		Impact:      models.ImpactNone,
		Kind:        models.KindFallback,
	}
}

// FallbackIROrSearch prefers the IR page and falls back to a news search.
func FallbackIROrSearch(c models.Company) *models.NewsItem {
	if item := FallbackIR(c); item != nil {
		return item
	}
	return FallbackSearch(c)
}

// SearchURL returns the news search URL used by FallbackSearch.
func SearchURL(c models.Company) string {
	terms := c.Name
	if c.HasTicker() {
		terms += " " + c.Ticker
	}
	terms += " news"
	return "https://www.google.com/search?tbm=nws&q=" + url.QueryEscape(terms)
}

// ParseFallback maps a configuration value to a Fallback.
func ParseFallback(name string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ir_or_search":
		return FallbackIROrSearch, nil
	case "ir":
		return FallbackIR, nil
	case "search":
		return FallbackSearch, nil
	case "none":
		return FallbackNone, nil
	default:
		return nil, fmt.Errorf("unknown fallback %q", name)
	}
}
