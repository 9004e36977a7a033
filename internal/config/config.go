package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported data source providers.
const (
	ProviderYahoo        = "yahoo"
	ProviderAlphaVantage = "alphavantage"
	ProviderAlpaca       = "alpaca"
	ProviderMock         = "mock"
)

const dateLayout = "2006-01-02"

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		Symbol       string `yaml:"symbol"`
		Start        string `yaml:"start"`
		End          string `yaml:"end"`
		TrailingDays int    `yaml:"trailing_days"`
	} `yaml:"analysis"`
	DataSource struct {
		Provider        string `yaml:"provider"`
		AlphaVantageKey string `yaml:"alpha_vantage_key"`
		AlpacaKey       string `yaml:"alpaca_key"`
		AlpacaSecret    string `yaml:"alpaca_secret"`
	} `yaml:"data_source"`
	Report struct {
		ChartPath string `yaml:"chart_path"`
	} `yaml:"report"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TRENDSCOPE_SYMBOL"); v != "" {
		cfg.Analysis.Symbol = v
	}
	if v := os.Getenv("TRENDSCOPE_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("TRENDSCOPE_TRAILING_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.TrailingDays = days
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.DataSource.AlphaVantageKey = v
	}
	if v := os.Getenv("APCA_API_KEY_ID"); v != "" {
		cfg.DataSource.AlpacaKey = v
	}
	if v := os.Getenv("APCA_API_SECRET_KEY"); v != "" {
		cfg.DataSource.AlpacaSecret = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		cfg.Report.ChartPath = v
	}

	// Defaults
	if cfg.Analysis.Symbol == "" {
		cfg.Analysis.Symbol = "AAPL"
	}
	if cfg.Analysis.TrailingDays == 0 {
		cfg.Analysis.TrailingDays = 365
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = ProviderYahoo
	}
	if cfg.Report.ChartPath == "" {
		cfg.Report.ChartPath = "trendscope.png"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Analysis.Symbol == "" {
		return fmt.Errorf("analysis.symbol is required")
	}
	if c.Analysis.TrailingDays <= 0 {
		return fmt.Errorf("analysis.trailing_days must be positive")
	}
	switch c.DataSource.Provider {
	case ProviderYahoo, ProviderMock:
	case ProviderAlphaVantage:
		if c.DataSource.AlphaVantageKey == "" {
			return fmt.Errorf("data_source.alpha_vantage_key is required for provider %q", c.DataSource.Provider)
		}
	case ProviderAlpaca:
		if c.DataSource.AlpacaKey == "" || c.DataSource.AlpacaSecret == "" {
			return fmt.Errorf("data_source.alpaca_key and alpaca_secret are required for provider %q", c.DataSource.Provider)
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if _, _, err := c.Range(time.Now()); err != nil {
		return err
	}
	return nil
}

// Range resolves the analysis window. Explicit start and end dates win;
// otherwise the window trails back from now by the configured number of
// days.
func (c *Config) Range(now time.Time) (time.Time, time.Time, error) {
	start, end := now.AddDate(0, 0, -c.Analysis.TrailingDays), now
	if c.Analysis.Start != "" {
		t, err := time.Parse(dateLayout, c.Analysis.Start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse analysis.start: %w", err)
		}
		start = t
	}
	if c.Analysis.End != "" {
		t, err := time.Parse(dateLayout, c.Analysis.End)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse analysis.end: %w", err)
		}
		end = t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("analysis window ends %s before it starts %s",
			end.Format(dateLayout), start.Format(dateLayout))
	}
	return start, end, nil
}
