package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/invincible-jha/aumai-jaldrishti/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS alerts (
			alert_id TEXT PRIMARY KEY,
			panchayat_id TEXT NOT NULL,
			level TEXT NOT NULL,
			category TEXT NOT NULL,
			message TEXT NOT NULL,
			source_id TEXT,
			date TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_alerts_panchayat ON alerts(panchayat_id);
		CREATE INDEX IF NOT EXISTS idx_alerts_category ON alerts(category);
		CREATE INDEX IF NOT EXISTS idx_alerts_level ON alerts(level);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Add(ctx context.Context, a *models.WaterAlert) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO alerts
			(alert_id, panchayat_id, level, category, message, source_id, date, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.AlertID, a.PanchayatID, string(a.Level), a.Category, a.Message,
		a.SourceID, a.Date, a.IsActive, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("error inserting alert: %w", err)
	}
	return nil
}

func (s *SQLiteDB) GetByID(ctx context.Context, id string) (*models.WaterAlert, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT alert_id, panchayat_id, level, category, message, source_id, date, is_active
		FROM alerts WHERE alert_id = ?`, id)

	a, err := scanAlert(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching alert: %w", err)
	}
	return a, nil
}

func (s *SQLiteDB) ListAlerts(ctx context.Context, opts Filter) ([]models.WaterAlert, error) {
	query := `
		SELECT alert_id, panchayat_id, level, category, message, source_id, date, is_active
		FROM alerts`
	var conds []string
	var args []any

	if opts.Level != nil {
		conds = append(conds, "level = ?")
		args = append(args, string(*opts.Level))
	}
	if opts.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, opts.Category)
	}
	if opts.PanchayatID != "" {
		conds = append(conds, "panchayat_id = ?")
		args = append(args, opts.PanchayatID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, alert_id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.WaterAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning alert: %w", err)
		}
		alerts = append(alerts, *a)
	}
	return alerts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAlert(row scanner) (*models.WaterAlert, error) {
	var a models.WaterAlert
	var level string
	if err := row.Scan(&a.AlertID, &a.PanchayatID, &level, &a.Category,
		&a.Message, &a.SourceID, &a.Date, &a.IsActive); err != nil {
		return nil, err
	}
	a.Level = models.AlertLevel(level)
	return &a, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
