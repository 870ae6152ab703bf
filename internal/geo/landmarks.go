package geo

import "github.com/smartcity/trafficmap/internal/domain"

// Kottakkal town centre
var Center = domain.Coordinate{Lat: 10.8810, Lng: 76.0900}

// Areas are the monitored locations reported by the traffic feed
var Areas = []domain.Landmark{
	{Key: "changuvetty", Name: "Changuvetty", Coordinate: domain.Coordinate{Lat: 10.8808, Lng: 76.0905}},
	{Key: "avs_junction", Name: "AVS Junction", Coordinate: domain.Coordinate{Lat: 10.8812, Lng: 76.0908}},
	{Key: "almas_hospital", Name: "Almas Hospital", Coordinate: domain.Coordinate{Lat: 10.8815, Lng: 76.0902}},
	{Key: "temple_road", Name: "Temple Road", Coordinate: domain.Coordinate{Lat: 10.8805, Lng: 76.0910}},
	{Key: "market_zone", Name: "Market Zone", Coordinate: domain.Coordinate{Lat: 10.8820, Lng: 76.0895}},
	{Key: "kottakkal_center", Name: "Kottakkal Center", Coordinate: domain.Coordinate{Lat: 10.8810, Lng: 76.0900}},
}

// RouteLandmarks are the fixed points mode-specific routing biases towards
type RouteLandmarks struct {
	Hospital    domain.Landmark
	Temple      domain.Landmark
	LocalRoads  [2]domain.Landmark
	SouthBypass domain.Landmark
	NorthBypass domain.Landmark
}

// Kottakkal returns the route landmarks for Kottakkal
func Kottakkal() RouteLandmarks {
	return RouteLandmarks{
		Hospital: domain.Landmark{Key: "almas_hospital", Name: "Almas Hospital",
			Coordinate: domain.Coordinate{Lat: 10.8815, Lng: 76.0902}},
		Temple: domain.Landmark{Key: "temple_road", Name: "Temple Road",
			Coordinate: domain.Coordinate{Lat: 10.8805, Lng: 76.0910}},
		LocalRoads: [2]domain.Landmark{
			{Key: "changuvetty_shortcut", Name: "Changuvetty Shortcut",
				Coordinate: domain.Coordinate{Lat: 10.8808, Lng: 76.0905}},
			{Key: "market_lane", Name: "Market Lane",
				Coordinate: domain.Coordinate{Lat: 10.8820, Lng: 76.0895}},
		},
		SouthBypass: domain.Landmark{Key: "south_bypass", Name: "Southern Bypass",
			Coordinate: domain.Coordinate{Lat: 10.8790, Lng: 76.0885}},
		NorthBypass: domain.Landmark{Key: "north_bypass", Name: "Northern Bypass",
			Coordinate: domain.Coordinate{Lat: 10.8830, Lng: 76.0920}},
	}
}

// AreaByKey looks up a monitored area by its key
func AreaByKey(key string) (domain.Landmark, bool) {
	for _, a := range Areas {
		if a.Key == key {
			return a, true
		}
	}
	return domain.Landmark{}, false
}
