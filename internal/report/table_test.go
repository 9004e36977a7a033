package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/guregu/null/v6"

	"TrendScope/internal/model"
)

func sampleSummary() model.Summary {
	return model.Summary{
		Symbol:           "AAPL",
		Start:            time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		End:              time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC),
		Rows:             250,
		MeanReturn:       0.00123,
		Volatility:       0.01852,
		CumulativeReturn: -0.04,
		BuyCount:         3,
		SellCount:        2,
		MeanRSI:          null.FloatFrom(54.32),
		MeanMACD:         null.FloatFrom(0.375),
	}
}

func TestWriteSummaryTable_FixedRowOrder(t *testing.T) {
	var buf strings.Builder
	WriteSummaryTable(&buf, sampleSummary())
	out := buf.String()

	labels := []string{
		"Mean Daily Return",
		"Volatility",
		"Cumulative Return",
		"Buy Signals",
		"Sell Signals",
		"Mean RSI",
		"Mean MACD",
	}
	last := -1
	for _, label := range labels {
		idx := strings.Index(out, label)
		if idx < 0 {
			t.Fatalf("row %q missing from table output:\n%s", label, out)
		}
		if idx < last {
			t.Errorf("row %q out of order in table output:\n%s", label, out)
		}
		last = idx
	}
}

func TestWriteSummaryTable_Values(t *testing.T) {
	var buf strings.Builder
	WriteSummaryTable(&buf, sampleSummary())
	out := buf.String()

	for _, want := range []string{"0.00123", "0.01852", "-0.04000", "54.32", "0.37500"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing value %q:\n%s", want, out)
		}
	}
}

func TestWriteSummaryTable_UndefinedMeans(t *testing.T) {
	sum := sampleSummary()
	sum.Volatility = math.NaN()
	sum.MeanRSI = null.NewFloat(0, false)
	sum.MeanMACD = null.NewFloat(0, false)

	var buf strings.Builder
	WriteSummaryTable(&buf, sum)
	out := buf.String()

	if got := strings.Count(out, undefinedCell); got != 3 {
		t.Errorf("expected 3 undefined cells, found %d:\n%s", got, out)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("NaN leaked into table output:\n%s", out)
	}
}
