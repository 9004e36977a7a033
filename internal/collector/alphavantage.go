package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"TrendScope/internal/model"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

// AlphaVantageFetcher implements Fetcher using the Alpha Vantage
// TIME_SERIES_DAILY endpoint.
type AlphaVantageFetcher struct {
	apiKey string
	client *resty.Client
}

// NewAlphaVantageFetcher creates a new Alpha Vantage fetcher.
func NewAlphaVantageFetcher(apiKey string) *AlphaVantageFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetBaseURL(alphaVantageBaseURL)
	return &AlphaVantageFetcher{apiKey: apiKey, client: client}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// alphaVantageDaily is the TIME_SERIES_DAILY response envelope. The Note
// field carries the rate-limit message on throttled keys.
type alphaVantageDaily struct {
	ErrorMessage string                       `json:"Error Message"`
	Note         string                       `json:"Note"`
	TimeSeries   map[string]map[string]string `json:"Time Series (Daily)"`
}

func (f *AlphaVantageFetcher) FetchDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]model.DailyBar, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     symbol,
			"outputsize": "full",
			"datatype":   "json",
			"apikey":     f.apiKey,
		}).
		Get("/query")
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	var payload alphaVantageDaily
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage api error: %s", payload.ErrorMessage)
	}
	if payload.Note != "" {
		return nil, fmt.Errorf("alphavantage rate limited: %s", payload.Note)
	}
	if len(payload.TimeSeries) == 0 {
		return nil, fmt.Errorf("alphavantage: %w", ErrNoData)
	}

	bars := make([]model.DailyBar, 0, len(payload.TimeSeries))
	for dateStr, fields := range payload.TimeSeries {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("alphavantage: bad date %q: %w", dateStr, err)
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		bars = append(bars, model.DailyBar{
			Date:   date,
			Close:  parseFloatOrNaN(fields["4. close"]),
			Volume: parseFloatOrZero(fields["5. volume"]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func parseFloatOrNaN(s string) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return math.NaN()
}

func parseFloatOrZero(s string) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return 0
}
