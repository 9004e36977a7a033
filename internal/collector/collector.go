package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"TrendScope/internal/model"
)

// Cached spans may fall short of the requested edges by this much and
// still count as covering them (weekends, holidays).
const edgeSlack = 5 * 24 * time.Hour

// Collector obtains the bar series for one symbol, consulting the cache
// before the provider.
type Collector struct {
	Fetcher Fetcher
	Cache   BarCache
	Symbol  string
}

// NewCollector creates a new Collector. cache may be nil.
func NewCollector(fetcher Fetcher, cache BarCache, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Cache: cache, Symbol: symbol}
}

// Collect returns ordered, deduplicated daily bars covering [start, end].
// A provider failure or an empty result is an error; the caller treats
// it as fatal. Cache problems only degrade to a fresh fetch.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) (model.BarSeries, error) {
	if bars, ok := c.cachedRange(start, end); ok {
		log.Infof("using %d cached bars for %s", len(bars), c.Symbol)
		return model.BarSeries{Symbol: c.Symbol, Bars: bars, FetchedAt: time.Now()}, nil
	}

	bars, err := c.Fetcher.FetchDailyBars(ctx, c.Symbol, start, end)
	if err != nil {
		return model.BarSeries{}, fmt.Errorf("fetch daily bars for %s via %s: %w", c.Symbol, c.Fetcher.Name(), err)
	}
	bars = normalize(bars)
	if len(bars) == 0 {
		return model.BarSeries{}, fmt.Errorf("%s %s..%s via %s: %w",
			c.Symbol, start.Format("2006-01-02"), end.Format("2006-01-02"), c.Fetcher.Name(), ErrNoData)
	}

	if c.Cache != nil {
		if err := c.Cache.SaveBars(c.Symbol, bars); err != nil {
			log.Warnf("bar cache write failed: %v", err)
		}
	}
	return model.BarSeries{Symbol: c.Symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

func (c *Collector) cachedRange(start, end time.Time) ([]model.DailyBar, bool) {
	if c.Cache == nil {
		return nil, false
	}
	bars, err := c.Cache.LoadBars(c.Symbol, start, end)
	if err != nil {
		log.Warnf("bar cache read failed: %v", err)
		return nil, false
	}
	if len(bars) == 0 {
		return nil, false
	}
	if bars[0].Date.After(start.Add(edgeSlack)) || bars[len(bars)-1].Date.Before(end.Add(-edgeSlack)) {
		return nil, false
	}
	return normalize(bars), true
}

// normalize sorts bars ascending and drops later duplicates of the same
// calendar day.
func normalize(bars []model.DailyBar) []model.DailyBar {
	sorted := make([]model.DailyBar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	out := sorted[:0]
	lastDay := ""
	for _, b := range sorted {
		day := b.Date.Format("2006-01-02")
		if day == lastDay {
			continue
		}
		out = append(out, b)
		lastDay = day
	}
	return out
}
