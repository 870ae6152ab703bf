package service

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smartcity/trafficmap/internal/domain"
)

const (
	// PeakCongestionTime is the busiest window observed in the simulation data
	PeakCongestionTime = "8:00 AM - 9:00 AM"
	// DashboardRecent is how many reports the dashboard lists
	DashboardRecent = 20
)

// DashboardService aggregates reports and congestion figures
type DashboardService struct {
	trafficSvc *TrafficService
	reportSvc  *ReportService
	now        func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(trafficSvc *TrafficService, reportSvc *ReportService) *DashboardService {
	return &DashboardService{
		trafficSvc: trafficSvc,
		reportSvc:  reportSvc,
		now:        time.Now,
	}
}

// Analytics builds the dashboard view, loading reports and hourly
// patterns concurrently. A report storage failure is logged and the
// remaining figures are still returned.
func (s *DashboardService) Analytics(ctx context.Context) (domain.Analytics, error) {
	var (
		reports  []domain.Report
		patterns []domain.HourlyLevel
		area     string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.reportSvc.List(gctx)
		if err != nil {
			log.Printf("Dashboard report fetch error: %v", err)
			r = []domain.Report{}
		}
		reports = r
		return nil
	})
	g.Go(func() error {
		patterns = s.trafficSvc.Patterns()
		area = s.trafficSvc.MostCongestedArea()
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Analytics{}, err
	}

	active := 0
	for _, r := range reports {
		if r.Status == "" || r.Status == domain.ReportActive {
			active++
		}
	}

	return domain.Analytics{
		TotalReports:       len(reports),
		ActiveIncidents:    active,
		PeakCongestionTime: PeakCongestionTime,
		MostCongestedArea:  area,
		Patterns:           patterns,
		RecentReports:      domain.Recent(reports, DashboardRecent),
		Timestamp:          s.now(),
	}, nil
}

// Traffic returns the current congestion snapshot
func (s *DashboardService) Traffic(ctx context.Context) (domain.TrafficSnapshot, error) {
	return s.trafficSvc.Snapshot(ctx)
}
