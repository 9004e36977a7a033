package stats

import (
	"math"
	"testing"
	"time"

	"github.com/guregu/null/v6"

	"TrendScope/internal/model"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestSummarize_KnownSeries(t *testing.T) {
	invalid := null.NewFloat(0, false)
	records := []model.DailyRecord{
		{Date: day(0), Return: invalid, RSI: invalid, MACD: invalid, CumReturn: 1.0},
		{Date: day(1), Return: null.FloatFrom(0.1), RSI: invalid, MACD: null.FloatFrom(0.5), CumReturn: 1.1, BuyFirst: true},
		{Date: day(2), Return: null.FloatFrom(-0.1), RSI: null.FloatFrom(70), MACD: null.FloatFrom(0.25), CumReturn: 0.99, SellFirst: true},
		{Date: day(3), Return: null.FloatFrom(0), RSI: null.FloatFrom(80), MACD: invalid, CumReturn: 0.99, SellFirst: true},
	}

	sum := Summarize("TEST", records)

	if sum.Rows != 4 {
		t.Errorf("expected 4 rows, got %d", sum.Rows)
	}
	if !sum.Start.Equal(day(0)) || !sum.End.Equal(day(3)) {
		t.Errorf("unexpected date range: %v .. %v", sum.Start, sum.End)
	}
	// Zero-filled returns: 0, 0.1, -0.1, 0 → mean 0.
	if sum.MeanReturn != 0 {
		t.Errorf("mean return: expected 0, got %v", sum.MeanReturn)
	}
	// Sample stddev of the same series: sqrt(0.02/3) ≈ 0.0816497 → 0.08165.
	if sum.Volatility != 0.08165 {
		t.Errorf("volatility: expected 0.08165, got %v", sum.Volatility)
	}
	if sum.CumulativeReturn != -0.01 {
		t.Errorf("cumulative return: expected -0.01, got %v", sum.CumulativeReturn)
	}
	if sum.BuyCount != 1 || sum.SellCount != 2 {
		t.Errorf("expected 1 buy / 2 sell flags, got %d/%d", sum.BuyCount, sum.SellCount)
	}
	if !sum.MeanRSI.Valid || sum.MeanRSI.Float64 != 75.0 {
		t.Errorf("mean RSI: expected 75.00, got %+v", sum.MeanRSI)
	}
	if !sum.MeanMACD.Valid || sum.MeanMACD.Float64 != 0.375 {
		t.Errorf("mean MACD: expected 0.375, got %+v", sum.MeanMACD)
	}
}

func TestSummarize_AllIndicatorsUndefined(t *testing.T) {
	invalid := null.NewFloat(0, false)
	records := []model.DailyRecord{
		{Date: day(0), Return: invalid, RSI: invalid, MACD: invalid, CumReturn: 1},
		{Date: day(1), Return: null.FloatFrom(0.01), RSI: invalid, MACD: invalid, CumReturn: 1.01},
	}
	sum := Summarize("TEST", records)
	if sum.MeanRSI.Valid {
		t.Error("mean RSI over an all-undefined column should be undefined")
	}
	if sum.MeanMACD.Valid {
		t.Error("mean MACD over an all-undefined column should be undefined")
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize("TEST", nil)
	if sum.Rows != 0 || sum.BuyCount != 0 || sum.SellCount != 0 {
		t.Errorf("empty table should produce a zero summary, got %+v", sum)
	}
}

func TestRound_Places(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   float64
	}{
		{0.123456789, 5, 0.12346},
		{-0.123454999, 5, -0.12345},
		{1.0, 5, 1.0},
		{66.666666, 2, 66.67},
		{-0.00001, 5, -0.00001},
		{0.000004, 5, 0.0},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d): expected %v, got %v", tt.v, tt.places, tt.want, got)
		}
	}
}

func TestRound_Idempotent(t *testing.T) {
	values := []float64{0.123456789, -0.987654321, 66.666666, 0.5, -0.000005, 123.4}
	for _, v := range values {
		once := Round(v, 5)
		if twice := Round(once, 5); twice != once {
			t.Errorf("re-rounding %v changed %v to %v", v, once, twice)
		}
	}
}

func TestRound_NonFinitePassThrough(t *testing.T) {
	if !math.IsNaN(Round(math.NaN(), 5)) {
		t.Error("NaN should pass through Round unchanged")
	}
	if !math.IsInf(Round(math.Inf(1), 5), 1) {
		t.Error("+Inf should pass through Round unchanged")
	}
}
