package routing

import (
	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/geo"
)

// Distance cutoffs in meters. A point exactly on a cutoff does not qualify.
const (
	HospitalRadius  = 1000.0
	LocalRoadRadius = 500.0
	TempleRadius    = 800.0
)

// Waypoint is a point the route should pass through without stopping
type Waypoint struct {
	Location domain.Coordinate `json:"location"`
	Stopover bool              `json:"stopover"`
}

// WaypointGenerator decides which extra points to route through
type WaypointGenerator interface {
	Waypoints(origin, destination domain.Coordinate) []Waypoint
}

func through(c domain.Coordinate) Waypoint {
	return Waypoint{Location: c, Stopover: false}
}

// NoWaypoints never adds a waypoint
type NoWaypoints struct{}

func (NoWaypoints) Waypoints(_, _ domain.Coordinate) []Waypoint {
	return nil
}

// EmergencyGenerator routes through the hospital when the destination is near it
type EmergencyGenerator struct {
	Hospital domain.Coordinate
	Distance geo.DistanceFunc
}

func (g EmergencyGenerator) Waypoints(_, destination domain.Coordinate) []Waypoint {
	if g.Distance(destination, g.Hospital) < HospitalRadius {
		return []Waypoint{through(g.Hospital)}
	}
	return nil
}

// RickshawGenerator adds each local road that lies close to both ends of the trip
type RickshawGenerator struct {
	LocalRoads []domain.Coordinate
	Distance   geo.DistanceFunc
}

func (g RickshawGenerator) Waypoints(origin, destination domain.Coordinate) []Waypoint {
	var out []Waypoint
	for _, road := range g.LocalRoads {
		if g.Distance(origin, road) < LocalRoadRadius && g.Distance(destination, road) < LocalRoadRadius {
			out = append(out, through(road))
		}
	}
	return out
}

// FestivalGenerator detours around the temple when the trip's midpoint is near it
type FestivalGenerator struct {
	Temple   domain.Coordinate
	Bypass   domain.Coordinate
	Distance geo.DistanceFunc
}

func (g FestivalGenerator) Waypoints(origin, destination domain.Coordinate) []Waypoint {
	mid := geo.Midpoint(origin, destination)
	if g.Distance(mid, g.Temple) < TempleRadius {
		return []Waypoint{through(g.Bypass)}
	}
	return nil
}
