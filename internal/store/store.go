package store

import (
	"time"

	"TrendScope/internal/model"
)

// Store caches fetched input bars between runs. Analysis results are
// never written here.
type Store interface {
	LoadBars(symbol string, start, end time.Time) ([]model.DailyBar, error)
	SaveBars(symbol string, bars []model.DailyBar) error
	Close() error
}

// NoopStore is a no-op implementation used when no cache path is
// configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) LoadBars(string, time.Time, time.Time) ([]model.DailyBar, error) {
	return nil, nil
}
func (n *NoopStore) SaveBars(string, []model.DailyBar) error { return nil }
func (n *NoopStore) Close() error                            { return nil }
