package stats

import (
	"math"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"TrendScope/internal/model"
)

// Decimal places reported in the summary.
const (
	ReturnPlaces = 5
	RSIPlaces    = 2
)

// Round rounds half away from zero to the given number of decimal
// places. Rounding an already-rounded value is a no-op. Non-finite
// values pass through untouched.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func roundNull(v null.Float, places int32) null.Float {
	if !v.Valid {
		return v
	}
	return null.FloatFrom(Round(v.Float64, places))
}

// Summarize aggregates a derived table into the run summary: mean and
// sample standard deviation of the zero-filled daily returns, the total
// compounded return, first-signal counts, and the indicator means over
// defined rows only.
func Summarize(symbol string, records []model.DailyRecord) model.Summary {
	sum := model.Summary{Symbol: symbol, Rows: len(records)}
	if len(records) == 0 {
		return sum
	}
	sum.Start = records[0].Date
	sum.End = records[len(records)-1].Date

	// Undefined returns count as zero here, matching the running
	// product in the table.
	zeroFilled := make([]float64, len(records))
	var rsis, macds []float64
	for i, r := range records {
		if r.Return.Valid {
			zeroFilled[i] = r.Return.Float64
		}
		if r.RSI.Valid {
			rsis = append(rsis, r.RSI.Float64)
		}
		if r.MACD.Valid {
			macds = append(macds, r.MACD.Float64)
		}
		if r.BuyFirst {
			sum.BuyCount++
		}
		if r.SellFirst {
			sum.SellCount++
		}
	}

	sum.MeanReturn = Round(stat.Mean(zeroFilled, nil), ReturnPlaces)
	sum.Volatility = Round(stat.StdDev(zeroFilled, nil), ReturnPlaces)
	sum.CumulativeReturn = Round(records[len(records)-1].CumReturn-1, ReturnPlaces)
	sum.MeanRSI = roundNull(meanOf(rsis), RSIPlaces)
	sum.MeanMACD = roundNull(meanOf(macds), ReturnPlaces)
	return sum
}

func meanOf(xs []float64) null.Float {
	if len(xs) == 0 {
		return null.NewFloat(0, false)
	}
	return null.FloatFrom(stat.Mean(xs, nil))
}
