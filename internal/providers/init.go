// Package providers initializes and registers all concrete news sources
// with a source registry.
package providers

import (
	"log/slog"

	"github.com/seenimoa/newsboard/internal/config"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/internal/providers/finnhub"
	"github.com/seenimoa/newsboard/internal/providers/googlenews"
	"github.com/seenimoa/newsboard/internal/providers/sec"
	"github.com/seenimoa/newsboard/internal/providers/websearch"
	"github.com/seenimoa/newsboard/internal/providers/yfinance"
)

// RegisterAllTo creates every known source from cfg and registers it.
// Finnhub is registered even without an API key; it then reports
// invalid credentials on each lookup and the chain moves on.
func RegisterAllTo(reg *provider.Registry, cfg *config.Config, logger *slog.Logger) error {
	src := cfg.Sources

	// --- Finnhub (API key) ---
	fh := finnhub.New(finnhub.Options{
		BaseURL:    src.Finnhub.BaseURL,
		WindowDays: cfg.Lookup.WindowDays,
	})
	if err := fh.Init(map[string]string{"api_key": src.Finnhub.APIKey}); err != nil {
		return err
	}

	// --- Keyless sources ---
	all := []provider.Source{
		fh,
		yfinance.New(yfinance.Options{BaseURL: src.YFinance.BaseURL}),
		sec.New(sec.Options{
			BrowseURL: src.SEC.BaseURL,
			DataURL:   src.SEC.DataURL,
			UserAgent: src.SEC.UserAgent,
			Logger:    logger,
		}),
		googlenews.New(googlenews.Options{
			BaseURL:  src.GoogleNews.BaseURL,
			Language: src.GoogleNews.Language,
			Region:   src.GoogleNews.Region,
		}),
		websearch.New(websearch.Options{BaseURL: src.WebSearch.BaseURL}),
	}

	for _, s := range all[1:] {
		if err := s.Init(nil); err != nil {
			return err
		}
	}
	for _, s := range all {
		if err := reg.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// Build registers every source and returns them in the configured order.
func Build(cfg *config.Config, logger *slog.Logger) (*provider.Registry, []provider.Source, error) {
	reg := provider.NewRegistry()
	if err := RegisterAllTo(reg, cfg, logger); err != nil {
		return nil, nil, err
	}
	order := cfg.Sources.Order
	if len(order) == 0 {
		order = config.DefaultSourceOrder
	}
	ordered, err := reg.Ordered(order)
	if err != nil {
		return nil, nil, err
	}
	return reg, ordered, nil
}
