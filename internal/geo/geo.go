// Package geo holds the distance primitives and the fixed landmark set used
// by route planning and report intake.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/smartcity/trafficmap/internal/domain"
)

// DistanceFunc returns the distance between two coordinates in meters
type DistanceFunc func(a, b domain.Coordinate) float64

// DistanceMeters is the great-circle (haversine) distance between a and b
func DistanceMeters(a, b domain.Coordinate) float64 {
	return orbgeo.DistanceHaversine(Point(a), Point(b))
}

// Point converts a coordinate to an orb point (lng, lat order)
func Point(c domain.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Midpoint is the arithmetic mean of two coordinates. It is not geodesic;
// across the few kilometres of a town the difference is negligible.
func Midpoint(a, b domain.Coordinate) domain.Coordinate {
	return domain.Coordinate{
		Lat: (a.Lat + b.Lat) / 2,
		Lng: (a.Lng + b.Lng) / 2,
	}
}

// PathMeters sums the leg distances along an ordered list of coordinates
func PathMeters(points []domain.Coordinate, dist DistanceFunc) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += dist(points[i-1], points[i])
	}
	return total
}
