package memory

import (
	"context"
	"sync"

	"github.com/smartcity/trafficmap/internal/domain"
)

// MemoryRepository implements domain.ReportRepository for tests and demo mode.
// Reports are lost on restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	reports []domain.Report
}

// NewMemoryRepository creates a repository seeded with the given reports
func NewMemoryRepository(seed ...domain.Report) *MemoryRepository {
	return &MemoryRepository{reports: append([]domain.Report(nil), seed...)}
}

// SaveReport appends a report, numbering it after the existing ones
func (r *MemoryRepository) SaveReport(ctx context.Context, report *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	report.ID = len(r.reports) + 1
	r.reports = append(r.reports, *report)
	return nil
}

// ListReports returns a copy of all reports, oldest first
func (r *MemoryRepository) ListReports(ctx context.Context) ([]domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Report{}, r.reports...), nil
}

// Health always returns nil in memory mode
func (r *MemoryRepository) Health(ctx context.Context) error {
	return nil
}
