package googlenews

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"Kaspi.kz" KSPI - Google News</title>
<link>https://news.google.com/</link>
<item>
<title>Kaspi.kz beats quarterly estimates - Reuters</title>
<link>https://news.google.com/rss/articles/abc</link>
<pubDate>Thu, 15 Oct 2026 08:30:00 GMT</pubDate>
<description>&lt;a href="https://example.com"&gt;Kaspi.kz beats quarterly estimates&lt;/a&gt;&amp;nbsp;&lt;font color="#6f6f6f"&gt;Reuters&lt;/font&gt;</description>
</item>
<item>
<title>Second story - Bloomberg</title>
<link>https://news.google.com/rss/articles/def</link>
</item>
</channel>
</rss>`

func TestProviderInfo(t *testing.T) {
	p := New(Options{})
	info := p.Info()
	if info.Name != "googlenews" {
		t.Errorf("expected name googlenews, got %s", info.Name)
	}
	if len(info.Requires) != 1 || info.Requires[0] != provider.FieldName {
		t.Errorf("expected name requirement, got %v", info.Requires)
	}
}

func TestSearchURL(t *testing.T) {
	p := New(Options{})
	got := p.SearchURL(models.Company{Name: "Litigation Capital Management", Ticker: "LIT.L"})
	want := "https://news.google.com/rss/search?ceid=US%3Aen&gl=US&hl=en-US&q=%22Litigation+Capital+Management%22+LIT"
	if got != want {
		t.Errorf("SearchURL:\n got %s\nwant %s", got, want)
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rss/search" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != `"Kaspi.kz" KSPI` {
			t.Errorf("q: got %q", q)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	p := New(Options{BaseURL: srv.URL})
	item, err := p.Lookup(context.Background(), models.Company{Name: "Kaspi.kz", Ticker: "KSPI"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if item == nil {
		t.Fatal("expected an item")
	}
	if item.Title != "Kaspi.kz beats quarterly estimates" {
		t.Errorf("Title: got %q", item.Title)
	}
	if item.Source != "Reuters" {
		t.Errorf("Source: got %q", item.Source)
	}
	if item.URL != "https://news.google.com/rss/articles/abc" {
		t.Errorf("URL: got %q", item.URL)
	}
	if item.Impact != models.ImpactPositive {
		t.Errorf("Impact: got %q, want positive", item.Impact)
	}
	want := time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)
	if !item.Published.Equal(want) {
		t.Errorf("Published: got %v, want %v", item.Published, want)
	}
}

func TestLookupEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>none</title></channel></rss>`))
	}))
	defer srv.Close()

	p := New(Options{BaseURL: srv.URL})
	item, err := p.Lookup(context.Background(), models.Company{Name: "Panthera Resources"})
	if err != nil {
		t.Fatalf("empty feed should not be an error: %v", err)
	}
	if item != nil {
		t.Errorf("expected no result, got %+v", item)
	}
}

func TestLookupMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not a feed`))
	}))
	defer srv.Close()

	p := New(Options{BaseURL: srv.URL})
	if _, err := p.Lookup(context.Background(), models.Company{Name: "ANGI"}); err == nil {
		t.Error("expected parse error")
	}
}

func TestLookupWithoutName(t *testing.T) {
	p := New(Options{})
	_, err := p.Lookup(context.Background(), models.Company{Ticker: "X"})
	var mf *provider.ErrMissingField
	if !errors.As(err, &mf) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestSplitPublisher(t *testing.T) {
	tests := []struct {
		in, title, publisher string
	}{
		{"Headline - Reuters", "Headline", "Reuters"},
		{"Q3 - strong quarter - MarketWatch", "Q3 - strong quarter", "MarketWatch"},
		{"No publisher", "No publisher", ""},
		{" - Leading dash", "- Leading dash", ""},
	}
	for _, tt := range tests {
		title, pub := splitPublisher(tt.in)
		if title != tt.title || pub != tt.publisher {
			t.Errorf("splitPublisher(%q) = (%q, %q), want (%q, %q)", tt.in, title, pub, tt.title, tt.publisher)
		}
	}
}

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"<b>bold</b> text", "bold text"},
		{`<a href="x">link</a>`, "link"},
	}
	for _, tt := range tests {
		if got := cleanHTML(tt.input); got != tt.want {
			t.Errorf("cleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
