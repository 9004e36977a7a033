package strategy

import (
	"math"
	"testing"
	"time"

	"TrendScope/internal/calculator"
	"TrendScope/internal/model"
)

func barsFromCloses(closes []float64) model.BarSeries {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.DailyBar, len(closes))
	for i, c := range closes {
		bars[i] = model.DailyBar{
			Date:   start.AddDate(0, 0, i),
			Close:  c,
			Volume: 1000,
		}
	}
	return model.BarSeries{Symbol: "TEST", Bars: bars, FetchedAt: start}
}

func TestClassify(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		maShort, maLong float64
		want            model.Signal
	}{
		{101, 100, model.SignalBuy},
		{100, 101, model.SignalSell},
		{100, 100, model.SignalNone},
		{nan, 100, model.SignalNone},
		{100, nan, model.SignalNone},
		{nan, nan, model.SignalNone},
	}
	for _, tt := range tests {
		if got := Classify(tt.maShort, tt.maLong); got != tt.want {
			t.Errorf("Classify(%v, %v): expected %s, got %s", tt.maShort, tt.maLong, tt.want, got)
		}
	}
}

func TestMarkFirst_RisingEdges(t *testing.T) {
	b, s, n := model.SignalBuy, model.SignalSell, model.SignalNone
	signals := []model.Signal{n, b, b, s, s, b, n, n, s, b}
	wantBuy := []bool{false, true, false, false, false, true, false, false, false, true}
	wantSell := []bool{false, false, false, true, false, false, false, false, true, false}

	buyFirst, sellFirst := MarkFirst(signals)
	for i := range signals {
		if buyFirst[i] != wantBuy[i] {
			t.Errorf("buyFirst[%d]: expected %v, got %v", i, wantBuy[i], buyFirst[i])
		}
		if sellFirst[i] != wantSell[i] {
			t.Errorf("sellFirst[%d]: expected %v, got %v", i, wantSell[i], sellFirst[i])
		}
	}
}

func TestMarkFirst_LeadingRunFlagged(t *testing.T) {
	buyFirst, _ := MarkFirst([]model.Signal{model.SignalBuy, model.SignalBuy})
	if !buyFirst[0] {
		t.Error("a Buy on the very first row should be flagged")
	}
	if buyFirst[1] {
		t.Error("only the first row of a run should be flagged")
	}
}

func TestEvaluate_WarmupUndefined(t *testing.T) {
	closes := []float64{
		100, 102, 101, 105, 110, 108, 107, 103, 101, 99,
		98, 97, 99, 100, 102, 104, 106, 108, 110, 112,
		114, 116, 118, 120, 119, 118, 117, 119, 121, 123,
	}
	records := Evaluate(barsFromCloses(closes))

	if records[0].Return.Valid {
		t.Error("first row's return should be undefined")
	}
	for i := 0; i < calculator.MAShortWindow-1; i++ {
		if records[i].MA5.Valid {
			t.Errorf("MA5 should be undefined at row %d", i)
		}
	}
	for i := 0; i < calculator.MALongWindow-1; i++ {
		if records[i].MA20.Valid {
			t.Errorf("MA20 should be undefined at row %d", i)
		}
		if records[i].Signal != model.SignalNone {
			t.Errorf("signal should be None while MA20 is undefined, got %s at row %d", records[i].Signal, i)
		}
	}
	for i := 0; i < calculator.RSIWindow; i++ {
		if records[i].RSI.Valid {
			t.Errorf("RSI should be undefined at row %d", i)
		}
	}
	for i := 0; i < calculator.MACDSlow-1; i++ {
		if records[i].MACD.Valid {
			t.Errorf("MACD should be undefined at row %d", i)
		}
	}
}

func TestEvaluate_FirstBuyAtEarliestCross(t *testing.T) {
	// Falls through the long window, then rallies so MA5 crosses above MA20.
	closes := make([]float64, 0, 40)
	for i := 0; i < 22; i++ {
		closes = append(closes, 120-float64(i))
	}
	for i := 0; i < 18; i++ {
		closes = append(closes, 99+3*float64(i))
	}
	records := Evaluate(barsFromCloses(closes))

	firstCross := -1
	for i, r := range records {
		if r.MA5.Valid && r.MA20.Valid && r.MA5.Float64 > r.MA20.Float64 {
			firstCross = i
			break
		}
	}
	if firstCross < 0 {
		t.Fatal("expected MA5 to cross above MA20 somewhere in the rally")
	}
	if !records[firstCross].BuyFirst {
		t.Errorf("expected the first Buy flag at row %d", firstCross)
	}
	for i := 0; i < firstCross; i++ {
		if records[i].BuyFirst {
			t.Errorf("unexpected Buy flag at row %d before the first cross", i)
		}
	}
}

func TestEvaluate_FlatSeries(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100
	}
	records := Evaluate(barsFromCloses(closes))

	for i, r := range records {
		if i > 0 && (!r.Return.Valid || r.Return.Float64 != 0) {
			t.Errorf("flat series return at row %d should be zero, got %+v", i, r.Return)
		}
		if r.CumReturn != 1.0 {
			t.Errorf("flat series growth factor should stay 1, got %v at row %d", r.CumReturn, i)
		}
		if r.Signal != model.SignalNone {
			t.Errorf("flat series should never signal, got %s at row %d", r.Signal, i)
		}
		if r.BuyFirst || r.SellFirst {
			t.Errorf("flat series should carry no flags, row %d", i)
		}
		if r.RSI.Valid {
			t.Errorf("flat series RSI should be undefined, got %v at row %d", r.RSI.Float64, i)
		}
	}
}

func TestEvaluate_CumRecurrence(t *testing.T) {
	closes := []float64{100, 102, 101, math.NaN(), 105, 110, 108}
	records := Evaluate(barsFromCloses(closes))

	prev := 1.0
	for i, r := range records {
		zf := 0.0
		if r.Return.Valid {
			zf = r.Return.Float64
		}
		want := prev * (1 + zf)
		if math.Abs(r.CumReturn-want) > 1e-12 {
			t.Errorf("cum[%d]: expected %.12f, got %.12f", i, want, r.CumReturn)
		}
		prev = r.CumReturn
	}
}

func TestEvaluate_GapDivergence(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	closes[40] = math.NaN()
	records := Evaluate(barsFromCloses(closes))

	r := records[40]
	if r.Close.Valid {
		t.Error("gap row should keep an undefined close")
	}
	if r.MA5.Valid || r.Return.Valid {
		t.Error("raw-close columns should be undefined on the gap row")
	}
	if !r.RSI.Valid || !r.MACD.Valid {
		t.Error("forward-filled oscillators should stay defined across the gap")
	}
	if !records[45].MA5.Valid {
		t.Error("MA5 should recover once the gap leaves the window")
	}
}

func TestEvaluate_FlagsNeverBothTrue(t *testing.T) {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/5)
	}
	records := Evaluate(barsFromCloses(closes))

	for i, r := range records {
		if r.BuyFirst && r.SellFirst {
			t.Fatalf("row %d carries both first flags", i)
		}
	}

	// Exactly the first row of each maximal run is flagged.
	for i, r := range records {
		inRun := i > 0 && records[i-1].Signal == r.Signal
		switch r.Signal {
		case model.SignalBuy:
			if r.BuyFirst == inRun {
				t.Errorf("buyFirst[%d] inconsistent with run structure", i)
			}
		case model.SignalSell:
			if r.SellFirst == inRun {
				t.Errorf("sellFirst[%d] inconsistent with run structure", i)
			}
		}
	}
}
