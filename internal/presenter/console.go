// Package presenter renders session output as text lines.
package presenter

import (
	"io"
	"log"
	"strings"
	"sync"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/routing"
	"github.com/smartcity/trafficmap/internal/session"
	"github.com/smartcity/trafficmap/internal/traffic"
)

// Console writes map updates and notifications to a text stream
type Console struct {
	mu     sync.Mutex
	logger *log.Logger
}

// NewConsole creates a console presenter writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{logger: log.New(w, "", log.Ltime)}
}

func (c *Console) ClearMarkers() {
	c.printf("map: markers cleared")
}

func (c *Console) DrawMarker(m traffic.Marker) {
	c.printf("marker %-18s %s r=%d %s | %s",
		m.Key, m.Color, m.Radius, m.Position, strings.ReplaceAll(m.Popup, "\n", " | "))
}

func (c *Console) ClearRoute() {
	c.printf("map: route cleared")
}

func (c *Console) DrawRoute(r *routing.Computed) {
	s := r.Summary
	c.printf("route [%s %s] %s, %s, traffic %s via %d waypoint(s)",
		s.Mode, s.Color, s.Duration, s.Distance, s.TrafficLevel, len(r.Request.Waypoints))
	c.printf("  %s", s.Note)
	for _, wp := range r.Request.Waypoints {
		c.printf("  via %s", wp.Location)
	}
}

func (c *Console) ShowReports(reports []domain.Report) {
	if len(reports) == 0 {
		c.printf("reports: none")
		return
	}
	c.printf("reports: %d most recent", len(reports))
	for _, r := range reports {
		c.printf("  #%d %-10s %-6s %s - %s (%s)", r.ID, r.Type, r.Severity, r.Location, r.Description, r.ReportedBy)
	}
}

// Notify is the single user-notification path
func (c *Console) Notify(n session.Notification) {
	c.printf("[%s] %s", strings.ToUpper(n.Kind.String()), n.Message)
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Printf(format, args...)
}
