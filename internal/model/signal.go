package model

// Signal classifies one trading day by the ordering of the short and
// long moving averages.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalNone Signal = "NONE"
)
