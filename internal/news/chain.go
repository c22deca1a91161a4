// Package news turns a list of companies into a dashboard: each company is
// looked up across an ordered list of sources, the first non-empty result
// wins, and a fallback link fills the gap when every source comes up empty.
package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/newsboard/internal/analysis/impact"
	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
	"github.com/seenimoa/newsboard/pkg/utils"
)

// Chain queries sources in priority order for a single company.
type Chain struct {
	Sources    []provider.Source
	Fallback   Fallback     // nil means FallbackNone
	Logger     *slog.Logger // nil discards
	DateLayout string       // display layout for PublishedAt, default utils.DateLayoutDE
}

func (ch *Chain) logger() *slog.Logger {
	if ch.Logger == nil {
		return infra.Discard()
	}
	return ch.Logger
}

// Lookup tries each source in order and returns the first item found.
// Source errors are logged and treated as "no result". When every source is
// empty the fallback decides; the result may be nil. Lookup never fails.
func (ch *Chain) Lookup(ctx context.Context, c models.Company) *models.NewsItem {
	log := ch.logger()
	for _, s := range ch.Sources {
		if ctx.Err() != nil {
			return nil
		}
		item, err := ch.try(ctx, s, c)
		if err != nil {
			logSourceError(log, s, c, err)
			continue
		}
		if item != nil {
			return item
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	return ch.fallback(c)
}

// Race queries all sources concurrently and returns the first successful
// result to arrive. Priority order is ignored. Losing lookups are cancelled
// through ctx instead of being left to finish in the background; whatever
// they return after that is discarded.
func (ch *Chain) Race(ctx context.Context, c models.Company) *models.NewsItem {
	if len(ch.Sources) == 0 {
		return ch.fallback(c)
	}
	log := ch.logger()

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once   sync.Once
		winner *models.NewsItem
	)
	g, gctx := errgroup.WithContext(raceCtx)
	for _, s := range ch.Sources {
		g.Go(func() error {
			item, err := ch.try(gctx, s, c)
			switch {
			case err != nil:
				if raceCtx.Err() == nil {
					logSourceError(log, s, c, err)
				}
			case item != nil:
				once.Do(func() {
					winner = item
					cancel()
				})
			}
			// Losing or empty sources never fail the group.
			return nil
		})
	}
	_ = g.Wait()

	if winner != nil {
		return winner
	}
	if ctx.Err() != nil {
		return nil
	}
	return ch.fallback(c)
}

// try runs one source, recovering from panics and normalising the item.
func (ch *Chain) try(ctx context.Context, s provider.Source, c models.Company) (item *models.NewsItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			item, err = nil, fmt.Errorf("source %s panicked: %v", s.Info().Name, r)
		}
	}()

	item, err = s.Lookup(ctx, c)
	if err != nil || item == nil {
		return nil, err
	}
	if item.Impact == "" {
		item.Impact = impact.Classify(item.Title, "")
	}
	if verr := item.Validate(); verr != nil {
		return nil, verr
	}
	if item.PublishedAt == "" {
		item.PublishedAt = utils.FormatDisplayDate(item.Published, ch.layout())
	}
	if item.Kind == "" {
		item.Kind = models.KindArticle
	}
	return item, nil
}

func (ch *Chain) fallback(c models.Company) *models.NewsItem {
	if ch.Fallback == nil {
		return nil
	}
	return ch.Fallback(c)
}

func (ch *Chain) layout() string {
	if ch.DateLayout == "" {
		return utils.DateLayoutDE
	}
	return ch.DateLayout
}

func logSourceError(log *slog.Logger, s provider.Source, c models.Company, err error) {
	var (
		mf *provider.ErrMissingField
		ic *provider.ErrInvalidCredentials
	)
	switch {
	case errors.As(err, &mf):
		log.Debug("source skipped", "source", s.Info().Name, "company", c.Name, "missing", mf.Field)
		return
	case errors.As(err, &ic):
		log.Debug("source skipped", "source", s.Info().Name, "company", c.Name, "reason", ic.Detail)
		return
	}
	log.Warn("source lookup failed", "source", s.Info().Name, "company", c.Name, "error", err)
}
