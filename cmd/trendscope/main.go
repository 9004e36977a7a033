package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"TrendScope/internal/collector"
	"TrendScope/internal/config"
	"TrendScope/internal/report"
	"TrendScope/internal/scheduler"
	"TrendScope/internal/store"
)

func main() {
	log.Info("TrendScope starting...")

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config validation")
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		log.WithError(err).Fatal("init fetcher")
	}
	log.Infof("data source: %s, symbol: %s", fetcher.Name(), cfg.Analysis.Symbol)

	var cache store.Store = store.NewNoopStore()
	if cfg.Database.SQLitePath != "" {
		st, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("init sqlite bar cache failed, using noop")
		} else {
			cache = st
		}
	}
	defer cache.Close()

	col := collector.NewCollector(fetcher, cache, cfg.Analysis.Symbol)

	var tn *report.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = report.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, tn, cfg)

	// Without a cron schedule the analysis runs once and exits.
	if cfg.Schedule.Cron == "" {
		if err := sched.RunNow(); err != nil {
			log.WithError(err).Fatal("analysis failed")
		}
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.WithError(err).Fatal("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, running analysis now")
		go func() {
			if err := sched.RunNow(); err != nil {
				log.WithError(err).Error("startup analysis")
			}
		}()
	}

	log.Infof("TrendScope is running on schedule %q. Press Ctrl+C to stop.", cfg.Schedule.Cron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
	log.Info("TrendScope stopped")
}

func newFetcher(cfg *config.Config) (collector.Fetcher, error) {
	switch cfg.DataSource.Provider {
	case config.ProviderYahoo:
		return collector.NewYahooFetcher(cfg.Proxy), nil
	case config.ProviderAlphaVantage:
		return collector.NewAlphaVantageFetcher(cfg.DataSource.AlphaVantageKey), nil
	case config.ProviderAlpaca:
		return collector.NewAlpacaFetcher(cfg.DataSource.AlpacaKey, cfg.DataSource.AlpacaSecret), nil
	case config.ProviderMock:
		return &collector.MockFetcher{}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.DataSource.Provider)
	}
}
