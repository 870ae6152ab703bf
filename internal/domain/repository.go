package domain

import "context"

// ReportRepository defines the interface for incident report persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type ReportRepository interface {
	// SaveReport persists a report and assigns its ID
	SaveReport(ctx context.Context, report *Report) error

	// ListReports returns all reports, oldest first
	ListReports(ctx context.Context) ([]Report, error)

	// Health checks storage availability
	Health(ctx context.Context) error
}
