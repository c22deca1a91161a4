package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seenimoa/newsboard/pkg/models"
)

const samplePage = `<!DOCTYPE html>
<html><body>
<div class="results">
  <div class="result results_links result--ad">
    <a class="result__a" href="https://ads.example.com/x">Sponsored</a>
  </div>
  <div class="result results_links">
    <a class="result__a" href="/relative">Broken</a>
  </div>
  <div class="result results_links">
    <h2 class="result__title">
      <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.mining.com%2Fnorthern-dynasty-appeal%2F&amp;rut=abc">Northern Dynasty files appeal over Pebble project</a>
    </h2>
    <a class="result__snippet" href="#">The company announced a lawsuit against the EPA decision.</a>
  </div>
  <div class="result results_links">
    <a class="result__a" href="https://example.com/second">Second</a>
  </div>
</div>
</body></html>`

func TestProviderInfo(t *testing.T) {
	p := New(Options{})
	if p.Info().Name != "websearch" {
		t.Errorf("expected name websearch, got %s", p.Info().Name)
	}
}

func TestSearchURL(t *testing.T) {
	p := New(Options{})
	got := p.SearchURL(models.Company{Name: "Northern Dynasty Minerals", Ticker: "NAK"})
	want := "https://html.duckduckgo.com/html/?q=Northern+Dynasty+Minerals+NAK+news"
	if got != want {
		t.Errorf("SearchURL:\n got %s\nwant %s", got, want)
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/html/" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	p := New(Options{BaseURL: srv.URL})
	item, err := p.Lookup(context.Background(), models.Company{Name: "Northern Dynasty Minerals", Ticker: "NAK"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if item == nil {
		t.Fatal("expected an item")
	}
	if item.Title != "Northern Dynasty files appeal over Pebble project" {
		t.Errorf("Title: got %q", item.Title)
	}
	if item.URL != "https://www.mining.com/northern-dynasty-appeal/" {
		t.Errorf("URL: got %q", item.URL)
	}
	if item.Source != "mining.com" {
		t.Errorf("Source: got %q", item.Source)
	}
	if item.Impact != models.ImpactCritical {
		t.Errorf("Impact: got %q, want critical from snippet", item.Impact)
	}
}

func TestLookupNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="no-results">No results.</div></body></html>`))
	}))
	defer srv.Close()

	p := New(Options{BaseURL: srv.URL})
	item, err := p.Lookup(context.Background(), models.Company{Name: "Nothing Here"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if item != nil {
		t.Errorf("expected no result, got %+v", item)
	}
}

func TestLookupHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := New(Options{BaseURL: srv.URL})
	if _, err := p.Lookup(context.Background(), models.Company{Name: "IAC Inc."}); err == nil {
		t.Error("expected error for non-2xx")
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://example.com/a", "https://example.com/a"},
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fb", "https://example.com/b"},
		{"https://other.com/l/?uddg=https%3A%2F%2Fexample.com%2Fb", "https://other.com/l/?uddg=https%3A%2F%2Fexample.com%2Fb"},
	}
	for _, tt := range tests {
		if got := resolveLink(tt.in); got != tt.want {
			t.Errorf("resolveLink(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
