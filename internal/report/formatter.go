package report

import (
	"fmt"
	"strings"

	"TrendScope/internal/model"
	"TrendScope/internal/stats"
)

// FormatSummary formats the run summary into a Telegram message. The
// metric lines follow the same order as the printed table.
func FormatSummary(sum model.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s Trend Summary</b> | %s → %s\n\n",
		sum.Symbol, sum.Start.Format("2006-01-02"), sum.End.Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Mean Daily Return: %s\n", formatFixed(sum.MeanReturn, stats.ReturnPlaces)))
	b.WriteString(fmt.Sprintf("Volatility: %s\n", formatFixed(sum.Volatility, stats.ReturnPlaces)))
	b.WriteString(fmt.Sprintf("Cumulative Return: %s\n", formatFixed(sum.CumulativeReturn, stats.ReturnPlaces)))
	b.WriteString(fmt.Sprintf("Buy Signals: %d | Sell Signals: %d\n", sum.BuyCount, sum.SellCount))
	b.WriteString(fmt.Sprintf("Mean RSI: %s | Mean MACD: %s\n",
		formatNullFixed(sum.MeanRSI, stats.RSIPlaces), formatNullFixed(sum.MeanMACD, stats.ReturnPlaces)))

	b.WriteString(fmt.Sprintf("\nRows analyzed: %d", sum.Rows))
	return b.String()
}
