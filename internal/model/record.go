package model

import (
	"math"
	"time"

	"github.com/guregu/null/v6"
)

// NullFloat converts a computed cell to its nullable form, mapping NaN
// to the invalid (undefined) value.
func NullFloat(v float64) null.Float {
	return null.NewFloat(v, !math.IsNaN(v))
}

// DailyRecord is one fully derived row of the analysis table. Derived
// columns are nullable: an invalid value means the column is undefined
// for that row (warm-up window not yet full, missing close, zero
// denominator). Rows are immutable once computed.
type DailyRecord struct {
	Date   time.Time
	Close  null.Float
	Volume float64

	Return null.Float
	MA5    null.Float
	MA20   null.Float

	MACD       null.Float
	SignalLine null.Float
	RSI        null.Float

	Signal    Signal
	BuyFirst  bool
	SellFirst bool

	CumReturn float64
}
