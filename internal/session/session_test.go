package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/routing"
	"github.com/smartcity/trafficmap/internal/traffic"
)

type recorder struct {
	mu            sync.Mutex
	markers       []traffic.Marker
	markerClears  int
	routes        []*routing.Computed
	routeClears   int
	reports       []domain.Report
	notifications []Notification
}

func (r *recorder) ClearMarkers() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers = nil
	r.markerClears++
}

func (r *recorder) DrawMarker(m traffic.Marker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers = append(r.markers, m)
}

func (r *recorder) ClearRoute() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routeClears++
}

func (r *recorder) DrawRoute(c *routing.Computed) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, c)
}

func (r *recorder) ShowReports(reports []domain.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = reports
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorder) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}
	}
	return r.notifications[len(r.notifications)-1]
}

type fakeBackend struct {
	mu         sync.Mutex
	snapshot   domain.TrafficSnapshot
	trafficErr error
	reports    []domain.Report
	submitErr  error
	submitted  []domain.ReportForm
	fetches    int
}

func (f *fakeBackend) Traffic(context.Context) (domain.TrafficSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	return f.snapshot, f.trafficErr
}

func (f *fakeBackend) Reports(context.Context) ([]domain.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reports, nil
}

func (f *fakeBackend) SubmitReport(_ context.Context, form domain.ReportForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, form)
	f.reports = append(f.reports, domain.Report{ID: len(f.reports) + 1, Type: form.IncidentType})
	return nil
}

func okRoutes() *routing.Service {
	return routing.NewService(routing.RouterFunc(func(context.Context, routing.RouteRequest) (routing.Result, error) {
		return routing.Result{Status: routing.StatusOK, Routes: []routing.Route{{
			Legs: []routing.Leg{{Duration: routing.Text{Text: "5 mins"}, Distance: routing.Text{Text: "1.2 km"}}},
		}}}, nil
	}))
}

var (
	origin      = &domain.Coordinate{Lat: 10.8810, Lng: 76.0900}
	destination = &domain.Coordinate{Lat: 10.8805, Lng: 76.0910}
)

func TestModeSelection(t *testing.T) {
	view := &recorder{}
	s := New(&fakeBackend{}, okRoutes(), view)

	assert.Equal(t, domain.ModeNormal, s.Mode())
	assert.Equal(t, domain.ModeFestival, s.ToggleMode(domain.ModeFestival))
	assert.Equal(t, domain.ModeFestival, s.Mode())
	assert.Equal(t, domain.ModeNormal, s.ToggleMode(domain.ModeFestival))
	assert.Equal(t, domain.ModeRickshaw, s.SetMode(domain.ModeRickshaw))
	assert.Equal(t, domain.ModeNormal, s.SetMode(domain.Mode(77)))

	assert.Equal(t, KindInfo, view.last().Kind)
}

func TestRequestRouteUsesActiveMode(t *testing.T) {
	view := &recorder{}
	var sent routing.RouteRequest
	routes := routing.NewService(routing.RouterFunc(func(_ context.Context, req routing.RouteRequest) (routing.Result, error) {
		sent = req
		return routing.Result{Status: routing.StatusOK, Routes: []routing.Route{{
			Legs: []routing.Leg{{Duration: routing.Text{Text: "9 mins"}, Distance: routing.Text{Text: "2.0 km"}}},
		}}}, nil
	}))
	s := New(&fakeBackend{}, routes, view)
	s.SetMode(domain.ModeFestival)

	got, err := s.RequestRoute(context.Background(), origin, destination)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeFestival, sent.Mode)
	require.Len(t, sent.Waypoints, 1)
	assert.Equal(t, domain.Coordinate{Lat: 10.8790, Lng: 76.0885}, sent.Waypoints[0].Location)

	assert.Equal(t, "#6f42c1", got.Summary.Color)
	assert.Equal(t, 1, view.routeClears)
	require.Len(t, view.routes, 1)
	assert.Same(t, got, view.routes[0])
	assert.Equal(t, KindSuccess, view.last().Kind)
	assert.Contains(t, view.last().Message, "9 mins")
}

func TestRequestRouteMissingEndpoint(t *testing.T) {
	view := &recorder{}
	s := New(&fakeBackend{}, okRoutes(), view)

	_, err := s.RequestRoute(context.Background(), origin, nil)
	assert.ErrorIs(t, err, routing.ErrMissingEndpoint)

	_, err = s.RequestRoute(context.Background(), &domain.Coordinate{}, destination)
	assert.ErrorIs(t, err, routing.ErrMissingEndpoint)

	assert.Equal(t, KindWarning, view.last().Kind)
	assert.Zero(t, view.routeClears)
}

func TestRequestRouteFailureDrawsNothing(t *testing.T) {
	view := &recorder{}
	routes := routing.NewService(routing.RouterFunc(func(context.Context, routing.RouteRequest) (routing.Result, error) {
		return routing.Result{Status: "NOT_FOUND"}, nil
	}))
	s := New(&fakeBackend{}, routes, view)

	_, err := s.RequestRoute(context.Background(), origin, destination)
	var rerr *routing.RouteError
	require.ErrorAs(t, err, &rerr)

	assert.Empty(t, view.routes)
	assert.Equal(t, KindError, view.last().Kind)
	assert.Contains(t, view.last().Message, "NOT_FOUND")
}

func TestRequestRouteDropsStaleCompletion(t *testing.T) {
	view := &recorder{}
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var callsMu sync.Mutex

	routes := routing.NewService(routing.RouterFunc(func(ctx context.Context, _ routing.RouteRequest) (routing.Result, error) {
		callsMu.Lock()
		calls++
		first := calls == 1
		callsMu.Unlock()

		if first {
			close(entered)
			<-release
		}
		return routing.Result{Status: routing.StatusOK, Routes: []routing.Route{{
			Legs: []routing.Leg{{Duration: routing.Text{Text: "4 mins"}, Distance: routing.Text{Text: "1 km"}}},
		}}}, nil
	}))
	s := New(&fakeBackend{}, routes, view)

	firstErr := make(chan error, 1)
	go func() {
		_, err := s.RequestRoute(context.Background(), origin, destination)
		firstErr <- err
	}()
	<-entered

	second, err := s.RequestRoute(context.Background(), origin, destination)
	require.NoError(t, err)

	close(release)
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, ErrStaleRoute)
	case <-time.After(2 * time.Second):
		t.Fatal("first request never completed")
	}

	view.mu.Lock()
	defer view.mu.Unlock()
	require.Len(t, view.routes, 1)
	assert.Same(t, second, view.routes[0])
	assert.Equal(t, 2, view.routeClears)
}

func TestRefreshMarkers(t *testing.T) {
	view := &recorder{}
	backend := &fakeBackend{snapshot: domain.TrafficSnapshot{
		"market_zone": {Location: domain.TrafficLocation{Name: "Market Zone", Lat: 10.882, Lng: 76.0895}, Level: 0.55},
		"changuvetty": {Location: domain.TrafficLocation{Name: "Changuvetty", Lat: 10.8808, Lng: 76.0905}, Level: 0.2},
	}}
	s := New(backend, okRoutes(), view)

	require.NoError(t, s.RefreshMarkers(context.Background()))
	require.Len(t, view.markers, 2)
	assert.Equal(t, "changuvetty", view.markers[0].Key)
	assert.Equal(t, "yellow", view.markers[1].Color)
	assert.Len(t, s.Markers(), 2)

	// the next snapshot fully replaces the previous one
	backend.snapshot = domain.TrafficSnapshot{
		"temple_road": {Location: domain.TrafficLocation{Name: "Temple Road"}, Level: 0.9},
	}
	require.NoError(t, s.RefreshMarkers(context.Background()))
	require.Len(t, view.markers, 1)
	assert.Equal(t, "red", view.markers[0].Color)
	assert.Equal(t, 2, view.markerClears)
}

func TestRefreshMarkersFailureLeavesMapCleared(t *testing.T) {
	view := &recorder{}
	backend := &fakeBackend{snapshot: domain.TrafficSnapshot{
		"changuvetty": {Location: domain.TrafficLocation{Name: "Changuvetty"}, Level: 0.2},
	}}
	s := New(backend, okRoutes(), view)
	require.NoError(t, s.RefreshMarkers(context.Background()))

	backend.trafficErr = errors.New("backend down")
	assert.Error(t, s.RefreshMarkers(context.Background()))

	assert.Empty(t, view.markers)
	assert.Empty(t, s.Markers())
	assert.Equal(t, KindError, view.last().Kind)
}

func TestLoadReportsShowsMostRecent(t *testing.T) {
	view := &recorder{}
	backend := &fakeBackend{}
	for i := 1; i <= 14; i++ {
		backend.reports = append(backend.reports, domain.Report{ID: i})
	}
	s := New(backend, okRoutes(), view)

	got, err := s.LoadReports(context.Background())
	require.NoError(t, err)
	require.Len(t, got, RecentReports)
	assert.Equal(t, 5, view.reports[0].ID)
	assert.Equal(t, 14, view.reports[9].ID)
}

func TestSubmitReport(t *testing.T) {
	view := &recorder{}
	backend := &fakeBackend{}
	s := New(backend, okRoutes(), view)

	assert.ErrorIs(t, s.SubmitReport(context.Background(), domain.ReportForm{}), ErrIncompleteReport)
	assert.Equal(t, KindWarning, view.last().Kind)
	assert.Empty(t, backend.submitted)

	require.NoError(t, s.SubmitReport(context.Background(), domain.ReportForm{IncidentType: "accident"}))
	require.Len(t, backend.submitted, 1)
	require.Len(t, view.reports, 1)
	assert.Equal(t, "accident", view.reports[0].Type)

	backend.submitErr = errors.New("503")
	assert.Error(t, s.SubmitReport(context.Background(), domain.ReportForm{IncidentType: "accident"}))
	assert.Equal(t, KindError, view.last().Kind)
}

func TestStartLoadsAndSchedules(t *testing.T) {
	view := &recorder{}
	backend := &fakeBackend{
		snapshot: domain.TrafficSnapshot{"changuvetty": {Location: domain.TrafficLocation{Name: "Changuvetty"}, Level: 0.2}},
		reports:  []domain.Report{{ID: 1}},
	}
	s := New(backend, okRoutes(), view, WithSchedule("@every 1s"))

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Len(t, s.Markers(), 1)
	assert.Len(t, view.reports, 1)

	assert.Eventually(t, func() bool {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		return backend.fetches >= 2
	}, 3*time.Second, 50*time.Millisecond)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := New(&fakeBackend{}, okRoutes(), &recorder{}, WithSchedule("every now and then"))
	assert.Error(t, s.Start(context.Background()))
}
