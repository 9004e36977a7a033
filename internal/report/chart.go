package report

import (
	"fmt"
	"os"
	"time"

	"github.com/guregu/null/v6"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"TrendScope/internal/model"
)

const (
	chartWidth  = 1280
	chartHeight = 720

	// Triangle half-width in pixels.
	markerSize = 5
)

// signalMarkers draws a triangle at each flagged row, pointing up for
// first buys and down for first sells.
type signalMarkers struct {
	name    string
	up      bool
	color   drawing.Color
	xvalues []time.Time
	yvalues []float64
}

var _ chart.Series = (*signalMarkers)(nil)

func (s *signalMarkers) GetName() string { return s.name }

func (s *signalMarkers) GetStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 1.0,
		StrokeColor: s.color,
		FillColor:   s.color,
	}
}

func (s *signalMarkers) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s *signalMarkers) Validate() error {
	if len(s.xvalues) != len(s.yvalues) {
		return fmt.Errorf("signal markers %s: %d x values for %d y values", s.name, len(s.xvalues), len(s.yvalues))
	}
	return nil
}

func (s *signalMarkers) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	r.SetStrokeColor(s.color)
	r.SetFillColor(s.color)
	r.SetStrokeWidth(1.0)
	for i := range s.xvalues {
		// Times translate on the same scale chart.TimeSeries plots with.
		x := canvasBox.Left + xrange.Translate(float64(s.xvalues[i].UnixNano()))
		y := canvasBox.Bottom - yrange.Translate(s.yvalues[i])
		if s.up {
			r.MoveTo(x, y-markerSize)
			r.LineTo(x-markerSize, y+markerSize)
			r.LineTo(x+markerSize, y+markerSize)
		} else {
			r.MoveTo(x, y+markerSize)
			r.LineTo(x+markerSize, y-markerSize)
			r.LineTo(x-markerSize, y-markerSize)
		}
		r.Close()
		r.FillStroke()
	}
}

// BuildChart assembles the annotated price chart: the close line, both
// moving averages dashed, and a marker at every first buy and first
// sell. Rows without a defined value are left out of their series.
func BuildChart(symbol string, records []model.DailyRecord) (*chart.Chart, error) {
	closeXs, closeYs := linePoints(records, func(r model.DailyRecord) null.Float { return r.Close })
	if len(closeXs) == 0 {
		return nil, fmt.Errorf("chart %s: no defined closes to plot", symbol)
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Close",
			XValues: closeXs,
			YValues: closeYs,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				StrokeWidth: 1.5,
			},
		},
	}

	maShortXs, maShortYs := linePoints(records, func(r model.DailyRecord) null.Float { return r.MA5 })
	if len(maShortXs) > 0 {
		series = append(series, chart.TimeSeries{
			Name:    "MA5",
			XValues: maShortXs,
			YValues: maShortYs,
			Style: chart.Style{
				StrokeColor:     chart.ColorOrange,
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}

	maLongXs, maLongYs := linePoints(records, func(r model.DailyRecord) null.Float { return r.MA20 })
	if len(maLongXs) > 0 {
		series = append(series, chart.TimeSeries{
			Name:    "MA20",
			XValues: maLongXs,
			YValues: maLongYs,
			Style: chart.Style{
				StrokeColor:     chart.ColorCyan,
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}

	buyXs, buyYs := markerPoints(records, func(r model.DailyRecord) bool { return r.BuyFirst })
	if len(buyXs) > 0 {
		series = append(series, &signalMarkers{
			name:    "Buy",
			up:      true,
			color:   chart.ColorGreen,
			xvalues: buyXs,
			yvalues: buyYs,
		})
	}

	sellXs, sellYs := markerPoints(records, func(r model.DailyRecord) bool { return r.SellFirst })
	if len(sellXs) > 0 {
		series = append(series, &signalMarkers{
			name:    "Sell",
			up:      false,
			color:   chart.ColorRed,
			xvalues: sellXs,
			yvalues: sellYs,
		})
	}

	c := &chart.Chart{
		Title:  fmt.Sprintf("%s Trend Analysis", symbol),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Price",
		},
		Series: series,
	}
	c.Elements = []chart.Renderable{
		chart.LegendLeft(c),
	}
	return c, nil
}

// WriteChart renders the annotated price chart as a PNG at path.
func WriteChart(symbol string, records []model.DailyRecord, path string) error {
	c, err := BuildChart(symbol, records)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := c.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func linePoints(records []model.DailyRecord, value func(model.DailyRecord) null.Float) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for _, rec := range records {
		v := value(rec)
		if !v.Valid {
			continue
		}
		xs = append(xs, rec.Date)
		ys = append(ys, v.Float64)
	}
	return xs, ys
}

func markerPoints(records []model.DailyRecord, flagged func(model.DailyRecord) bool) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for _, rec := range records {
		if !flagged(rec) || !rec.Close.Valid {
			continue
		}
		xs = append(xs, rec.Date)
		ys = append(ys, rec.Close.Float64)
	}
	return xs, ys
}
