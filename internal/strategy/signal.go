package strategy

import (
	"TrendScope/internal/calculator"
	"TrendScope/internal/model"
)

// Classify derives the day's signal from the moving-average ordering:
// Buy when the short average is above the long one, Sell when below,
// None on equality or while either average is still undefined.
func Classify(maShort, maLong float64) model.Signal {
	if calculator.IsUndefined(maShort) || calculator.IsUndefined(maLong) {
		return model.SignalNone
	}
	switch {
	case maShort > maLong:
		return model.SignalBuy
	case maShort < maLong:
		return model.SignalSell
	default:
		return model.SignalNone
	}
}

// MarkFirst flags the first row of every maximal Buy run and every
// maximal Sell run. The row before the series counts as "not Buy" and
// "not Sell", so the earliest Buy (Sell) day is always flagged. No row
// carries both flags.
func MarkFirst(signals []model.Signal) (buyFirst, sellFirst []bool) {
	buyFirst = make([]bool, len(signals))
	sellFirst = make([]bool, len(signals))
	prev := model.SignalNone
	for i, s := range signals {
		switch s {
		case model.SignalBuy:
			buyFirst[i] = prev != model.SignalBuy
		case model.SignalSell:
			sellFirst[i] = prev != model.SignalSell
		}
		prev = s
	}
	return buyFirst, sellFirst
}
