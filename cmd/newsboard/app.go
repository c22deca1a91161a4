package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/newsboard/internal/company"
	"github.com/seenimoa/newsboard/internal/config"
	"github.com/seenimoa/newsboard/internal/news"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/internal/providers"
	"github.com/seenimoa/newsboard/internal/render"
	"github.com/seenimoa/newsboard/pkg/models"
)

// app bundles what a dashboard command needs.
type app struct {
	companies  []models.Company
	sources    []provider.Source
	registry   *provider.Registry
	loader     *news.Loader
	renderOpts render.Options
}

func newApp(cmd *cobra.Command) (*app, error) {
	companies, err := loadCompanies(cmd)
	if err != nil {
		return nil, err
	}
	reg, sources, err := buildSources()
	if err != nil {
		return nil, err
	}
	loader, err := newLoader(cfg, sources, logger)
	if err != nil {
		return nil, err
	}

	opts := render.Options{Language: cfg.Render.Language, Title: cfg.Render.Title}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		lang = strings.ToLower(lang)
		if lang != "en" && lang != "de" {
			return nil, fmt.Errorf("unsupported language %q (want en or de)", lang)
		}
		opts.Language = lang
	}

	return &app{
		companies:  companies,
		sources:    sources,
		registry:   reg,
		loader:     loader,
		renderOpts: opts,
	}, nil
}

// dashboard runs one full lookup pass.
func (a *app) dashboard(parent context.Context) models.Dashboard {
	ctx, cancel := commandContext(parent)
	defer cancel()
	return a.loader.Load(ctx, a.companies)
}

func loadCompanies(cmd *cobra.Command) ([]models.Company, error) {
	file := cfg.Companies.File
	if f, _ := cmd.Flags().GetString("companies"); f != "" {
		file = f
	}
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	companies, err := company.Load(ctx, file, cfg.Companies.URL)
	if err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}
	return companies, nil
}

func buildSources() (*provider.Registry, []provider.Source, error) {
	reg, sources, err := providers.Build(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build sources: %w", err)
	}
	return reg, sources, nil
}

// newLoader translates the lookup section of the config into a Loader.
func newLoader(cfg *config.Config, sources []provider.Source, logger *slog.Logger) (*news.Loader, error) {
	fallback, err := news.ParseFallback(cfg.Lookup.Fallback)
	if err != nil {
		return nil, err
	}

	pause := time.Duration(cfg.Lookup.PauseMS) * time.Millisecond
	if cfg.Lookup.PauseMS == 0 {
		pause = -1
	}

	mode := news.Mode(strings.ToLower(cfg.Lookup.Mode))
	switch mode {
	case "":
		mode = news.ModeSequential
	case news.ModeSequential, news.ModeRace:
	default:
		return nil, fmt.Errorf("unknown lookup mode %q", cfg.Lookup.Mode)
	}

	return &news.Loader{
		Chain: &news.Chain{
			Sources:    sources,
			Fallback:   fallback,
			Logger:     logger,
			DateLayout: cfg.Lookup.DateLayout,
		},
		Mode:        mode,
		Pause:       pause,
		Concurrency: cfg.Lookup.Concurrency,
		Logger:      logger,
	}, nil
}
