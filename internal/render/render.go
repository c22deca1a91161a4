// Package render turns a loaded dashboard into output: an HTML page with one
// card per company, terminal cards, or a JSON document for the API.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/seenimoa/newsboard/pkg/models"
)

// Options controls presentation.
type Options struct {
	Language   string // "en" (default) or "de"
	Title      string
	TimeLayout string // layout for the load timestamp
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = "en"
	}
	if o.Title == "" {
		o.Title = "Investor News Dashboard"
	}
	if o.TimeLayout == "" {
		o.TimeLayout = "2.1.2006 15:04"
	}
	return o
}

var pageTemplate = template.Must(template.New("dashboard").Parse(DashboardTemplate))

// ════════════════════════════════════════════════════════════════════
// Page data, flattened for the templates and the terminal renderer
// ════════════════════════════════════════════════════════════════════

type pageData struct {
	Lang    string
	Title   string
	Summary string
	Cards   []cardData
}

type cardData struct {
	Heading string
	HasNews bool
	Title   string
	URL     template.URL
	Meta    string
	Impact  models.Impact
	Badge   string
	Kind    models.ItemKind
	NoNews  string
}

func buildPage(d models.Dashboard, opts Options) pageData {
	l := labelsFor(opts.Language)
	page := pageData{
		Lang:    opts.Language,
		Title:   opts.Title,
		Summary: fmt.Sprintf(l.summary, d.NewsCount(), len(d.Entries), loadedAt(d.LoadedAt, opts.TimeLayout)),
		Cards:   make([]cardData, 0, len(d.Entries)),
	}
	for _, e := range d.Entries {
		page.Cards = append(page.Cards, buildCard(e, opts.Language))
	}
	return page
}

func buildCard(e models.Entry, lang string) cardData {
	c := cardData{
		Heading: e.Company.DisplayName(),
		NoNews:  labelsFor(lang).noNews,
	}
	n := e.News
	if n == nil || models.ValidateURL(n.URL) != nil {
		return c
	}
	imp := n.Impact
	if !imp.Valid() {
		imp = models.ImpactNone
	}
	c.HasNews = true
	c.Title = n.Title
	// Only absolute http(s) URLs reach this point.
	c.URL = template.URL(n.URL)
	c.Meta = meta(n)
	c.Impact = imp
	c.Badge = Badge(lang, imp)
	c.Kind = n.Kind
	return c
}

// meta formats the "source • date" line.
func meta(n *models.NewsItem) string {
	if n.PublishedAt == "" {
		return n.Source
	}
	if n.Source == "" {
		return n.PublishedAt
	}
	return n.Source + " • " + n.PublishedAt
}

func loadedAt(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(layout)
}

// ════════════════════════════════════════════════════════════════════
// Renderers
// ════════════════════════════════════════════════════════════════════

// HTML writes the dashboard as a standalone HTML page.
func HTML(w io.Writer, d models.Dashboard, opts Options) error {
	opts = opts.withDefaults()
	if err := pageTemplate.Execute(w, buildPage(d, opts)); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

// Document is the JSON form of a dashboard.
type Document struct {
	LoadedAt  time.Time      `json:"loaded_at"`
	NewsCount int            `json:"news_count"`
	Entries   []DocumentItem `json:"entries"`
}

// DocumentItem is one company card in JSON form.
type DocumentItem struct {
	Company models.Company   `json:"company"`
	Display string           `json:"display"`
	News    *models.NewsItem `json:"news"`
	Badge   string           `json:"badge,omitempty"`
}

// NewDocument converts a dashboard to its JSON form.
func NewDocument(d models.Dashboard, lang string) Document {
	// Items without an http(s) link are dropped, as on the HTML cards.
	shown := models.Dashboard{LoadedAt: d.LoadedAt, Entries: make([]models.Entry, len(d.Entries))}
	for i, e := range d.Entries {
		if e.News != nil && models.ValidateURL(e.News.URL) != nil {
			e.News = nil
		}
		shown.Entries[i] = e
	}

	doc := Document{
		LoadedAt:  shown.LoadedAt,
		NewsCount: shown.NewsCount(),
		Entries:   make([]DocumentItem, 0, len(shown.Entries)),
	}
	for _, e := range shown.Entries {
		item := DocumentItem{Company: e.Company, Display: e.Company.DisplayName(), News: e.News}
		if e.News != nil {
			item.Badge = Badge(lang, e.News.Impact)
		}
		doc.Entries = append(doc.Entries, item)
	}
	return doc
}

// JSON writes the dashboard as indented JSON.
func JSON(w io.Writer, d models.Dashboard, opts Options) error {
	opts = opts.withDefaults()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(d, opts.Language))
}
