package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcity/trafficmap/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS incident_reports (
		id          SERIAL PRIMARY KEY,
		type        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		severity    TEXT NOT NULL DEFAULT 'medium',
		status      TEXT NOT NULL DEFAULT 'active',
		reported_by TEXT NOT NULL DEFAULT 'Anonymous',
		lat         DOUBLE PRECISION NOT NULL DEFAULT 0,
		lng         DOUBLE PRECISION NOT NULL DEFAULT 0,
		timestamp   TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PostgresRepository implements domain.ReportRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the incident_reports table if it is missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// SaveReport persists a report to PostgreSQL and assigns its ID
func (r *PostgresRepository) SaveReport(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO incident_reports (
			type, description, location, severity, status, reported_by, lat, lng, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		report.Type, report.Description, report.Location, report.Severity, report.Status,
		report.ReportedBy, report.Lat, report.Lng, report.Timestamp,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("postgres: failed to save report: %w", err)
	}

	return nil
}

// ListReports retrieves all reports from PostgreSQL, oldest first
func (r *PostgresRepository) ListReports(ctx context.Context) ([]domain.Report, error) {
	query := `
		SELECT id, type, description, location, severity, status, reported_by, lat, lng, timestamp
		FROM incident_reports
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query reports: %w", err)
	}
	defer rows.Close()

	results := []domain.Report{}
	for rows.Next() {
		var rep domain.Report
		err := rows.Scan(
			&rep.ID, &rep.Type, &rep.Description, &rep.Location, &rep.Severity, &rep.Status,
			&rep.ReportedBy, &rep.Lat, &rep.Lng, &rep.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan report row: %w", err)
		}
		results = append(results, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read report rows: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
