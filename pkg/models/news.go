package models

import (
	"fmt"
	"time"
)

// Impact is the coarse materiality label derived from a headline.
type Impact string

const (
	ImpactCritical Impact = "critical"
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNone     Impact = "none"
)

// AllImpacts returns all impact labels in precedence order.
func AllImpacts() []Impact {
	return []Impact{ImpactCritical, ImpactPositive, ImpactNeutral, ImpactNone}
}

// Valid reports whether i is one of the closed set of labels.
func (i Impact) Valid() bool {
	switch i {
	case ImpactCritical, ImpactPositive, ImpactNeutral, ImpactNone:
		return true
	}
	return false
}

// ParseImpact converts a string into an Impact, rejecting unknown labels.
func ParseImpact(s string) (Impact, error) {
	i := Impact(s)
	if !i.Valid() {
		return "", fmt.Errorf("unknown impact label %q", s)
	}
	return i, nil
}

// ItemKind tells where a NewsItem came from.
type ItemKind string

const (
	KindArticle  ItemKind = "article"  // headline from a news source
	KindFiling   ItemKind = "filing"   // regulatory filings browse link
	KindFallback ItemKind = "fallback" // IR page or search link placeholder
)

// NewsItem is the single representative news entry shown for a company.
// Built fresh for every lookup; never persisted.
type NewsItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt string    `json:"published_at"`       // display-formatted
	Published   time.Time `json:"published,omitzero"` // zero when unknown
	Impact      Impact    `json:"impact"`
	Kind        ItemKind  `json:"kind"`
}

// Validate checks label closure and link well-formedness.
func (n *NewsItem) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("news item has no title")
	}
	if !n.Impact.Valid() {
		return fmt.Errorf("news item %q: unknown impact %q", n.Title, n.Impact)
	}
	return ValidateURL(n.URL)
}

// Entry pairs a company with the news found for it (nil when none).
type Entry struct {
	Company Company   `json:"company"`
	News    *NewsItem `json:"news"`
}

// Dashboard is the result of one lookup pass, in company-list order.
type Dashboard struct {
	Entries  []Entry   `json:"entries"`
	LoadedAt time.Time `json:"loaded_at"`
}

// NewsCount returns the number of entries backed by a real article or filing.
func (d Dashboard) NewsCount() int {
	n := 0
	for _, e := range d.Entries {
		if e.News != nil && e.News.Kind != KindFallback {
			n++
		}
	}
	return n
}
