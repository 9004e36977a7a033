package store

import (
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"TrendScope/internal/model"
)

const dateLayout = "2006-01-02"

// SQLiteStore caches bars in a SQLite database keyed by (symbol, date).
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Infof("sqlite bar cache opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bars (
			symbol TEXT NOT NULL,
			date   TEXT NOT NULL,
			close  REAL,
			volume REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (symbol, date)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

// SaveBars upserts the bars for one symbol. A NaN close is stored as
// NULL so the gap survives the round trip.
func (s *SQLiteStore) SaveBars(symbol string, bars []model.DailyBar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO bars (symbol, date, close, volume) VALUES (?,?,?,?)
		ON CONFLICT(symbol, date) DO UPDATE SET close=excluded.close, volume=excluded.volume`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bars {
		var closeVal interface{}
		if !math.IsNaN(b.Close) {
			closeVal = b.Close
		}
		if _, err := stmt.Exec(symbol, b.Date.Format(dateLayout), closeVal, b.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert bar %s: %w", b.Date.Format(dateLayout), err)
		}
	}
	return tx.Commit()
}

// LoadBars returns the cached bars for the symbol inside [start, end],
// ordered by date. A NULL close comes back as NaN.
func (s *SQLiteStore) LoadBars(symbol string, start, end time.Time) ([]model.DailyBar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT date, close, volume FROM bars WHERE symbol = ? AND date >= ? AND date <= ? ORDER BY date`,
		symbol, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var bars []model.DailyBar
	for rows.Next() {
		var dateStr string
		var closeVal sql.NullFloat64
		var volume float64
		if err := rows.Scan(&dateStr, &closeVal, &volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse cached date %q: %w", dateStr, err)
		}
		c := math.NaN()
		if closeVal.Valid {
			c = closeVal.Float64
		}
		bars = append(bars, model.DailyBar{Date: date, Close: c, Volume: volume})
	}
	return bars, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Info("closing sqlite bar cache")
	return s.db.Close()
}
