package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/smartcity/trafficmap/internal/domain"
)

// Repository stores reports as a single JSON array on disk.
// Every save reads and rewrites the whole file.
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository creates a file-backed repository at path.
// The file and its directory are created on first save.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) load() ([]domain.Report, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Report{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: failed to read %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return []domain.Report{}, nil
	}

	var reports []domain.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("jsonfile: failed to decode %s: %w", r.path, err)
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	return reports, nil
}

// SaveReport appends report to the file with id = number of stored reports + 1
func (r *Repository) SaveReport(ctx context.Context, report *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	reports, err := r.load()
	if err != nil {
		return err
	}
	report.ID = len(reports) + 1
	reports = append(reports, *report)

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: failed to encode reports: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("jsonfile: failed to create directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("jsonfile: failed to write reports: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("jsonfile: failed to replace %s: %w", r.path, err)
	}
	return nil
}

// ListReports returns all stored reports, oldest first
func (r *Repository) ListReports(ctx context.Context) ([]domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Health reports whether the reports file is readable
func (r *Repository) Health(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.load()
	return err
}
