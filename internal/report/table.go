package report

import (
	"io"
	"math"
	"strconv"

	"github.com/guregu/null/v6"
	"github.com/jedib0t/go-pretty/v6/table"

	"TrendScope/internal/model"
	"TrendScope/internal/stats"
)

// undefinedCell is printed where an aggregate has no defined value.
const undefinedCell = "n/a"

func newSummaryTableStyle() table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
	}
	return style
}

// WriteSummaryTable prints the two-column summary in its fixed row
// order: mean return, volatility, cumulative return, buy count, sell
// count, mean RSI, mean MACD.
func WriteSummaryTable(w io.Writer, sum model.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(newSummaryTableStyle())
	t.AppendHeader(table.Row{"Indicator", "Value"})
	t.AppendRows([]table.Row{
		{"Mean Daily Return", formatFixed(sum.MeanReturn, stats.ReturnPlaces)},
		{"Volatility", formatFixed(sum.Volatility, stats.ReturnPlaces)},
		{"Cumulative Return", formatFixed(sum.CumulativeReturn, stats.ReturnPlaces)},
		{"Buy Signals", strconv.Itoa(sum.BuyCount)},
		{"Sell Signals", strconv.Itoa(sum.SellCount)},
		{"Mean RSI", formatNullFixed(sum.MeanRSI, stats.RSIPlaces)},
		{"Mean MACD", formatNullFixed(sum.MeanMACD, stats.ReturnPlaces)},
	})
	t.Render()
}

func formatFixed(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return undefinedCell
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}

func formatNullFixed(v null.Float, places int) string {
	if !v.Valid {
		return undefinedCell
	}
	return formatFixed(v.Float64, places)
}
