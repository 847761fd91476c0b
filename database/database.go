package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"waste-impact-service/config"
	"waste-impact-service/models"

	_ "github.com/go-sql-driver/mysql"
)

// Database handles all database operations
type Database struct {
	db *sql.DB
}

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Printf("Database connected successfully to %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)

	return &Database{db: db}, nil
}

// NewDatabaseWithDB wraps an existing connection. Used by tests.
func NewDatabaseWithDB(db *sql.DB) *Database {
	return &Database{db: db}
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// EnsureWasteReportsTable creates the waste_reports table if it doesn't exist.
// Coordinates are DECIMAL so grid bucketing sees exactly what was stored.
func (d *Database) EnsureWasteReportsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS waste_reports (
			id BIGINT NOT NULL AUTO_INCREMENT,
			reporter_name VARCHAR(255) NOT NULL,
			waste_type VARCHAR(64),
			description TEXT,
			address VARCHAR(512) NOT NULL DEFAULT '',
			latitude DECIMAL(10, 7),
			longitude DECIMAL(10, 7),
			reported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			completed_at TIMESTAMP NULL,
			status ENUM('pending', 'in_progress', 'completed') NOT NULL DEFAULT 'pending',
			user_id BIGINT NULL,
			PRIMARY KEY (id),
			INDEX idx_reported_at (reported_at),
			INDEX idx_status (status)
		)
	`

	_, err := d.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create waste_reports table: %w", err)
	}

	log.Println("Waste reports table ensured")
	return nil
}

const reportColumns = `id, reporter_name, waste_type, description, address,
		latitude, longitude, reported_at, completed_at, status, user_id`

// GetReportsByDateRange returns every report whose reported_at falls inside
// the inclusive date range, oldest first.
func (d *Database) GetReportsByDateRange(ctx context.Context, start, end time.Time) ([]models.ReportRecord, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM waste_reports
		WHERE reported_at >= ? AND reported_at < ?
		ORDER BY reported_at ASC, id ASC
	`

	rows, err := d.db.QueryContext(ctx, query, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// GetRecentReports returns at most limit reports from the inclusive date
// range, most recent first.
func (d *Database) GetRecentReports(ctx context.Context, start, end time.Time, limit int) ([]models.ReportRecord, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM waste_reports
		WHERE reported_at >= ? AND reported_at < ?
		ORDER BY reported_at DESC, id DESC
		LIMIT ?
	`

	rows, err := d.db.QueryContext(ctx, query, start, end.AddDate(0, 0, 1), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// CountReportsByDateRange counts reports inside the inclusive date range.
func (d *Database) CountReportsByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM waste_reports WHERE reported_at >= ? AND reported_at < ?",
		start, end.AddDate(0, 0, 1)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// CountCompletedByDateRange counts completed reports inside the inclusive
// date range.
func (d *Database) CountCompletedByDateRange(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM waste_reports WHERE reported_at >= ? AND reported_at < ? AND status = ?",
		start, end.AddDate(0, 0, 1), models.StatusCompleted).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed reports: %w", err)
	}
	return count, nil
}

func scanReports(rows *sql.Rows) ([]models.ReportRecord, error) {
	var reports []models.ReportRecord
	for rows.Next() {
		var (
			r           models.ReportRecord
			wasteType   sql.NullString
			description sql.NullString
			latitude    decimal.NullDecimal
			longitude   decimal.NullDecimal
			completedAt sql.NullTime
			userID      sql.NullInt64
		)
		if err := rows.Scan(
			&r.ID,
			&r.ReporterName,
			&wasteType,
			&description,
			&r.Address,
			&latitude,
			&longitude,
			&r.ReportedAt,
			&completedAt,
			&r.Status,
			&userID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		if wasteType.Valid {
			r.WasteType = &wasteType.String
		}
		if description.Valid {
			r.Description = &description.String
		}
		if latitude.Valid && longitude.Valid {
			lat, _ := latitude.Decimal.Float64()
			lon, _ := longitude.Decimal.Float64()
			r.Latitude = &lat
			r.Longitude = &lon
		}
		if completedAt.Valid {
			t := completedAt.Time
			r.CompletedAt = &t
		}
		if userID.Valid {
			id := userID.Int64
			r.UserID = &id
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return reports, nil
}
