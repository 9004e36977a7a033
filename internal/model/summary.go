package model

import (
	"time"

	"github.com/guregu/null/v6"
)

// Summary aggregates one analysis run. Mean indicator values are
// nullable because a short series can leave every RSI or MACD cell
// undefined.
type Summary struct {
	Symbol string
	Start  time.Time
	End    time.Time
	Rows   int

	MeanReturn       float64
	Volatility       float64
	CumulativeReturn float64
	BuyCount         int
	SellCount        int
	MeanRSI          null.Float
	MeanMACD         null.Float
}
