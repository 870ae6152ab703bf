package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/geo"
)

// Report intake defaults
const (
	DefaultSeverity = "medium"
	DefaultReporter = "Anonymous"
)

// ValidationError wraps a rejected report form
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid report: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ReportService handles incident intake and listing
type ReportService struct {
	repo     ReportRepository
	index    *geo.Index
	validate *validator.Validate
	now      func() time.Time
}

// NewReportService creates a report service backed by repo.
// Blank report locations resolve to the nearest of the monitored areas.
func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{
		repo:     repo,
		index:    geo.NewIndex(geo.Areas),
		validate: validator.New(),
		now:      time.Now,
	}
}

// Validate checks a submitted form without persisting it
func (s *ReportService) Validate(form domain.ReportForm) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("report: failed to validate form: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Fields: fields, Err: err}
}

// Submit validates form, fills in defaults and persists the resulting report
func (s *ReportService) Submit(ctx context.Context, form domain.ReportForm) (domain.Report, error) {
	if err := s.Validate(form); err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		Type:        form.IncidentType,
		Description: strings.TrimSpace(form.Description),
		Location:    strings.TrimSpace(form.Location),
		Severity:    form.Severity,
		Status:      domain.ReportActive,
		ReportedBy:  strings.TrimSpace(form.ReportedBy),
		Lat:         form.Lat,
		Lng:         form.Lng,
		Timestamp:   s.now(),
	}
	if report.Severity == "" {
		report.Severity = DefaultSeverity
	}
	if report.ReportedBy == "" {
		report.ReportedBy = DefaultReporter
	}
	if report.Location == "" {
		pos := domain.Coordinate{Lat: form.Lat, Lng: form.Lng}
		if lm, ok := s.index.Nearest(pos); ok && !pos.IsZero() {
			report.Location = lm.Name
		}
	}

	if err := s.repo.SaveReport(ctx, &report); err != nil {
		return domain.Report{}, fmt.Errorf("report: failed to save: %w", err)
	}
	log.Printf("Report #%d stored: %s at %s (%s)", report.ID, report.Type, report.Location, report.Severity)
	return report, nil
}

// List returns all reports, oldest first. An empty store yields an empty, non-nil slice.
func (s *ReportService) List(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.repo.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: failed to list: %w", err)
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	return reports, nil
}
