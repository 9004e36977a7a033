package collector

import (
	"context"
	"errors"
	"time"

	"TrendScope/internal/model"
)

// ErrNoData marks a provider response that contained zero bars for the
// requested range.
var ErrNoData = errors.New("no data for requested range")

// Fetcher defines the interface for fetching market data. Bars cover
// trading days inside [start, end], ordered ascending.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]model.DailyBar, error)
	Name() string
}

// BarCache persists fetched bars between runs so repeated analyses of
// the same range can skip the network.
type BarCache interface {
	LoadBars(symbol string, start, end time.Time) ([]model.DailyBar, error)
	SaveBars(symbol string, bars []model.DailyBar) error
}
