package news

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/pkg/models"
)

// DefaultPause separates consecutive company lookups in sequential mode.
const DefaultPause = 100 * time.Millisecond

// Mode selects how a single company's sources are queried.
type Mode string

const (
	ModeSequential Mode = "sequential" // priority order, first non-empty wins
	ModeRace       Mode = "race"       // all at once, first to answer wins
)

// Loader builds a dashboard for a list of companies.
type Loader struct {
	Chain *Chain
	Mode  Mode

	// Pause between companies when Concurrency is 1. Negative disables it;
	// zero means DefaultPause.
	Pause time.Duration

	// Concurrency > 1 looks up that many companies at once.
	Concurrency int

	Logger *slog.Logger
	Now    func() time.Time
}

// Load looks up news for every company and returns the entries in list order.
// A failing company never affects the others. If ctx ends early the
// remaining companies are kept with nil news.
func (l *Loader) Load(ctx context.Context, companies []models.Company) models.Dashboard {
	log := l.Logger
	if log == nil {
		log = infra.Discard()
	}
	start := time.Now()

	entries := make([]models.Entry, len(companies))
	for i, c := range companies {
		entries[i].Company = c
	}

	if l.Concurrency > 1 {
		l.loadConcurrent(ctx, entries)
	} else {
		l.loadSequential(ctx, entries)
	}

	d := models.Dashboard{Entries: entries, LoadedAt: l.now()}
	log.Info("dashboard loaded",
		"companies", len(entries),
		"news", d.NewsCount(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	if ctx.Err() != nil {
		log.Warn("dashboard load interrupted", "error", ctx.Err())
	}
	return d
}

func (l *Loader) loadSequential(ctx context.Context, entries []models.Entry) {
	pacer := infra.NewPacer(l.pause())
	for i := range entries {
		if err := pacer.Wait(ctx); err != nil {
			return
		}
		entries[i].News = l.lookup(ctx, entries[i].Company)
	}
}

func (l *Loader) loadConcurrent(ctx context.Context, entries []models.Entry) {
	var g errgroup.Group
	g.SetLimit(l.Concurrency)
	for i := range entries {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			// Each goroutine writes only its own slot.
			entries[i].News = l.lookup(ctx, entries[i].Company)
			return nil
		})
	}
	_ = g.Wait()
}

func (l *Loader) lookup(ctx context.Context, c models.Company) *models.NewsItem {
	if l.Chain == nil {
		return nil
	}
	if l.Mode == ModeRace {
		return l.Chain.Race(ctx, c)
	}
	return l.Chain.Lookup(ctx, c)
}

func (l *Loader) pause() time.Duration {
	switch {
	case l.Pause < 0:
		return 0
	case l.Pause == 0:
		return DefaultPause
	default:
		return l.Pause
	}
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
