package scheduler

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"TrendScope/internal/collector"
	"TrendScope/internal/config"
	"TrendScope/internal/report"
	"TrendScope/internal/stats"
	"TrendScope/internal/strategy"
)

// Scheduler runs the analysis pipeline, once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *report.TelegramNotifier
	Config    *config.Config
	Ctx       context.Context
	Out       io.Writer
}

// NewScheduler creates a new Scheduler. The notifier may be nil when
// Telegram is not configured.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *report.TelegramNotifier, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Config:    cfg,
		Ctx:       ctx,
		Out:       os.Stdout,
	}
}

// Register schedules the recurring analysis task.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info("scheduler stopped")
}

// RunNow executes one analysis pass immediately.
func (s *Scheduler) RunNow() error {
	return s.runAnalysis()
}

func (s *Scheduler) analysisTask() {
	log.Info("running scheduled analysis")
	if err := s.runAnalysis(); err != nil {
		log.WithError(err).Error("scheduled analysis failed")
		s.trySend(fmt.Sprintf("❌ %s analysis failed: %v", s.Config.Analysis.Symbol, err))
	}
}

func (s *Scheduler) runAnalysis() error {
	start, end, err := s.Config.Range(time.Now())
	if err != nil {
		return err
	}

	series, err := s.Collector.Collect(s.Ctx, start, end)
	if err != nil {
		return err
	}
	records := strategy.Evaluate(series)
	summary := stats.Summarize(series.Symbol, records)

	report.WriteSummaryTable(s.Out, summary)

	if err := report.WriteChart(series.Symbol, records, s.Config.Report.ChartPath); err != nil {
		return err
	}
	log.Infof("chart written to %s", s.Config.Report.ChartPath)

	s.trySend(report.FormatSummary(summary))
	return nil
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.WithError(err).Error("send notification")
	}
}
