// Package session holds the state of one map viewer: the selected mode, the
// drawn traffic markers and the in-flight route request.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/routing"
	"github.com/smartcity/trafficmap/internal/traffic"
)

const (
	// DefaultSchedule refreshes traffic markers every 30 seconds
	DefaultSchedule = "@every 30s"

	// RecentReports is how many reports the panel lists
	RecentReports = 10

	refreshTimeout = 10 * time.Second
)

var (
	// ErrStaleRoute means a newer route request superseded this one
	ErrStaleRoute = errors.New("session: route superseded by a newer request")

	// ErrIncompleteReport means the report form is missing its incident type
	ErrIncompleteReport = errors.New("session: incident type is required")
)

// Backend is the traffic backend as seen by the viewer
type Backend interface {
	Traffic(ctx context.Context) (domain.TrafficSnapshot, error)
	Reports(ctx context.Context) ([]domain.Report, error)
	SubmitReport(ctx context.Context, form domain.ReportForm) error
}

// Session is one viewer's state
type Session struct {
	backend Backend
	routes  *routing.Service
	view    Presenter

	mu         sync.Mutex
	mode       domain.Mode
	markers    []traffic.Marker
	generation uint64

	refreshMu sync.Mutex

	schedule  string
	scheduler *cron.Cron
}

// Option configures a Session
type Option func(*Session)

// WithSchedule sets the cron spec for marker refresh
func WithSchedule(spec string) Option {
	return func(s *Session) {
		if spec != "" {
			s.schedule = spec
		}
	}
}

// New creates a session in normal mode
func New(backend Backend, routes *routing.Service, view Presenter, opts ...Option) *Session {
	s := &Session{
		backend:   backend,
		routes:    routes,
		view:      view,
		mode:      domain.ModeNormal,
		schedule:  DefaultSchedule,
		scheduler: cron.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the active mode
func (s *Session) Mode() domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the active mode
func (s *Session) SetMode(m domain.Mode) domain.Mode {
	if !m.Valid() {
		m = domain.ModeNormal
	}

	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()

	policy := s.routes.Policy(m)
	s.view.Notify(Notification{Kind: KindInfo, Message: fmt.Sprintf("%s mode: %s", m, policy.Note)})
	return m
}

// ToggleMode activates m, or returns to normal if m is already active
func (s *Session) ToggleMode(m domain.Mode) domain.Mode {
	if s.Mode() == m {
		m = domain.ModeNormal
	}
	return s.SetMode(m)
}

// Markers returns the markers currently drawn
func (s *Session) Markers() []traffic.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]traffic.Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// RequestRoute computes and draws a route under the active mode. A request
// that completes after a newer one was issued is dropped with ErrStaleRoute.
func (s *Session) RequestRoute(ctx context.Context, origin, destination *domain.Coordinate) (*routing.Computed, error) {
	if origin == nil || destination == nil || origin.IsZero() || destination.IsZero() {
		s.view.Notify(Notification{Kind: KindWarning, Message: "Please select both start and end points"})
		return nil, routing.ErrMissingEndpoint
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	mode := s.mode
	s.view.ClearRoute()
	s.mu.Unlock()

	computed, err := s.routes.ComputeRoute(ctx, *origin, *destination, mode)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		log.Printf("session: dropping route request %d, %d is newer", gen, s.generation)
		return nil, ErrStaleRoute
	}

	if err != nil {
		log.Printf("session: route request %d failed: %v", gen, err)
		msg := "Could not calculate route"
		var rerr *routing.RouteError
		if errors.As(err, &rerr) {
			msg = fmt.Sprintf("Could not calculate route: %s", rerr.Status)
		}
		s.view.Notify(Notification{Kind: KindError, Message: msg})
		return nil, err
	}

	s.view.DrawRoute(computed)
	s.view.Notify(Notification{
		Kind:    KindSuccess,
		Message: fmt.Sprintf("%s route: %s, %s", mode, computed.Summary.Duration, computed.Summary.Distance),
	})
	return computed, nil
}

// RefreshMarkers replaces the drawn markers with the latest traffic snapshot.
// Old markers are cleared before fetching and stay cleared if the fetch fails.
func (s *Session) RefreshMarkers(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.mu.Lock()
	s.markers = nil
	s.view.ClearMarkers()
	s.mu.Unlock()

	snap, err := s.backend.Traffic(ctx)
	if err != nil {
		log.Printf("session: traffic refresh failed: %v", err)
		s.view.Notify(Notification{Kind: KindError, Message: "Failed to load traffic data"})
		return err
	}

	markers := traffic.Markers(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range markers {
		s.view.DrawMarker(m)
	}
	s.markers = markers
	return nil
}

// LoadReports shows the most recent incident reports
func (s *Session) LoadReports(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.backend.Reports(ctx)
	if err != nil {
		log.Printf("session: loading reports failed: %v", err)
		s.view.Notify(Notification{Kind: KindError, Message: "Failed to load incident reports"})
		return nil, err
	}

	recent := domain.Recent(reports, RecentReports)
	s.view.ShowReports(recent)
	return recent, nil
}

// SubmitReport sends an incident report and reloads the report list on success
func (s *Session) SubmitReport(ctx context.Context, form domain.ReportForm) error {
	if form.IncidentType == "" {
		s.view.Notify(Notification{Kind: KindWarning, Message: "Please choose an incident type"})
		return ErrIncompleteReport
	}

	if err := s.backend.SubmitReport(ctx, form); err != nil {
		log.Printf("session: report submission failed: %v", err)
		s.view.Notify(Notification{Kind: KindError, Message: "Error reporting incident. Please try again."})
		return err
	}

	s.view.Notify(Notification{Kind: KindSuccess, Message: "Incident reported successfully!"})
	_, _ = s.LoadReports(ctx)
	return nil
}

// Start loads markers and reports, then schedules periodic marker refresh
func (s *Session) Start(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		loadCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()
		return s.RefreshMarkers(loadCtx)
	})
	g.Go(func() error {
		loadCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()
		_, err := s.LoadReports(loadCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		// already surfaced to the user; the viewer stays usable
		log.Printf("session: initial load incomplete: %v", err)
	}

	_, err := s.scheduler.AddFunc(s.schedule, func() {
		tickCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()
		_ = s.RefreshMarkers(tickCtx)
	})
	if err != nil {
		return fmt.Errorf("session: failed to schedule marker refresh: %w", err)
	}

	s.scheduler.Start()
	log.Printf("session: marker refresh scheduled (%s)", s.schedule)
	return nil
}

// Stop halts the refresh schedule and waits for a running refresh to finish
func (s *Session) Stop() {
	<-s.scheduler.Stop().Done()
}
