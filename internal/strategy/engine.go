package strategy

import (
	"TrendScope/internal/calculator"
	"TrendScope/internal/model"
)

// Evaluate derives the full analysis table from the raw bars: per-row
// returns, moving averages, MACD, RSI, the Buy/Sell/None signal with its
// first-of-run flags, and the running growth factor.
//
// Returns and moving averages are computed over the raw closes; MACD and
// RSI over the forward-filled closes, so a provider gap leaves the MA
// columns undefined on rows the oscillators still cover.
func Evaluate(series model.BarSeries) []model.DailyRecord {
	closes := series.Closes()

	returns := calculator.DailyReturns(closes)
	maShort := calculator.SMA(closes, calculator.MAShortWindow)
	maLong := calculator.SMA(closes, calculator.MALongWindow)

	filled := calculator.ForwardFill(closes)
	macd, signalLine := calculator.MACD(filled)
	rsi := calculator.RSI(filled, calculator.RSIWindow)

	signals := make([]model.Signal, len(closes))
	for i := range closes {
		signals[i] = Classify(maShort[i], maLong[i])
	}
	buyFirst, sellFirst := MarkFirst(signals)

	records := make([]model.DailyRecord, len(series.Bars))
	growth := 1.0
	for i, bar := range series.Bars {
		// Undefined returns count as zero in the running product.
		if r := returns[i]; !calculator.IsUndefined(r) {
			growth *= 1 + r
		}
		records[i] = model.DailyRecord{
			Date:       bar.Date,
			Close:      model.NullFloat(bar.Close),
			Volume:     bar.Volume,
			Return:     model.NullFloat(returns[i]),
			MA5:        model.NullFloat(maShort[i]),
			MA20:       model.NullFloat(maLong[i]),
			MACD:       model.NullFloat(macd[i]),
			SignalLine: model.NullFloat(signalLine[i]),
			RSI:        model.NullFloat(rsi[i]),
			Signal:     signals[i],
			BuyFirst:   buyFirst[i],
			SellFirst:  sellFirst[i],
			CumReturn:  growth,
		}
	}
	return records
}
