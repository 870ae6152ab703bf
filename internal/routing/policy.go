package routing

import (
	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/geo"
)

// TrafficLevel is the nominal congestion a mode expects along its route
type TrafficLevel string

const (
	LevelLow    TrafficLevel = "low"
	LevelMedium TrafficLevel = "medium"
	LevelHigh   TrafficLevel = "high"
)

// DefaultRegion biases the directions provider towards India
const DefaultRegion = "IN"

// Constraints are the travel restrictions sent with a route request
type Constraints struct {
	AvoidHighways bool `json:"avoid_highways"`
	AvoidTolls    bool `json:"avoid_tolls"`
	AvoidFerries  bool `json:"avoid_ferries"`
}

// Policy is everything a mode decides about a route
type Policy struct {
	Mode        domain.Mode
	Constraints Constraints
	Waypoints   WaypointGenerator
	Color       string
	Note        string
	Level       TrafficLevel
}

// PolicyTable maps every mode to its policy
type PolicyTable struct {
	policies [domain.ModeCount]Policy
}

// NewPolicyTable builds the mode table over the given landmarks and distance function
func NewPolicyTable(lm geo.RouteLandmarks, dist geo.DistanceFunc) *PolicyTable {
	if dist == nil {
		dist = geo.DistanceMeters
	}
	constraints := func(avoidHighways bool) Constraints {
		return Constraints{AvoidHighways: avoidHighways, AvoidTolls: false, AvoidFerries: true}
	}

	return &PolicyTable{policies: [domain.ModeCount]Policy{
		domain.ModeNormal: {
			Mode:        domain.ModeNormal,
			Constraints: constraints(false),
			Waypoints:   NoWaypoints{},
			Color:       "#0d6efd",
			Note:        "Standard route based on current traffic conditions",
			Level:       LevelMedium,
		},
		domain.ModeEmergency: {
			Mode:        domain.ModeEmergency,
			Constraints: constraints(false),
			Waypoints:   EmergencyGenerator{Hospital: lm.Hospital.Coordinate, Distance: dist},
			Color:       "#dc3545",
			Note:        "Emergency route - prioritizing hospital access and wide roads",
			Level:       LevelLow,
		},
		domain.ModeRickshaw: {
			Mode:        domain.ModeRickshaw,
			Constraints: constraints(true),
			Waypoints: RickshawGenerator{
				LocalRoads: []domain.Coordinate{lm.LocalRoads[0].Coordinate, lm.LocalRoads[1].Coordinate},
				Distance:   dist,
			},
			Color: "#ffc107",
			Note:  "Rickshaw route - using local roads and shortcuts accessible to auto-rickshaws",
			Level: LevelMedium,
		},
		domain.ModeFestival: {
			Mode:        domain.ModeFestival,
			Constraints: constraints(true),
			Waypoints: FestivalGenerator{
				Temple: lm.Temple.Coordinate,
				Bypass: lm.SouthBypass.Coordinate,
				// TODO: choose between SouthBypass and NorthBypass by which side of
				// the temple the midpoint falls on once the north bypass is confirmed drivable.
				Distance: dist,
			},
			Color: "#6f42c1",
			Note:  "Festival bypass route - avoiding temple areas and crowded zones",
			Level: LevelHigh,
		},
	}}
}

// For returns the policy of m; undefined modes get the normal policy
func (t *PolicyTable) For(m domain.Mode) Policy {
	if !m.Valid() {
		m = domain.ModeNormal
	}
	return t.policies[m]
}

var defaultTable = NewPolicyTable(geo.Kottakkal(), geo.DistanceMeters)

// PolicyFor looks up a mode in the Kottakkal policy table
func PolicyFor(m domain.Mode) Policy {
	return defaultTable.For(m)
}
