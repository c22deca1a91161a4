package news

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/seenimoa/newsboard/internal/provider"
	"github.com/seenimoa/newsboard/pkg/models"
)

// fakeSource returns a canned item or error, optionally after a delay.
type fakeSource struct {
	name  string
	item  *models.NewsItem
	err   error
	delay time.Duration
	panic bool
	calls atomic.Int32
}

func (f *fakeSource) Info() provider.SourceInfo {
	return provider.SourceInfo{Name: f.name, Label: f.name}
}

func (f *fakeSource) Init(map[string]string) error { return nil }

func (f *fakeSource) Lookup(ctx context.Context, _ models.Company) (*models.NewsItem, error) {
	f.calls.Add(1)
	if f.panic {
		panic("boom")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.item == nil {
		return nil, f.err
	}
	cp := *f.item
	return &cp, f.err
}

func article(title string) *models.NewsItem {
	return &models.NewsItem{
		Title:  title,
		URL:    "https://example.com/" + title,
		Source: "Test",
		Kind:   models.KindArticle,
	}
}

var errUnreachable = errors.New("dial tcp: connection refused")

var diageo = models.Company{
	Name:     "Diageo PLC",
	Ticker:   "DEO",
	Exchange: "NYSE",
	CIK:      "0000914208",
	IRURL:    "https://www.diageo.com/en/news-and-media/",
}
