package routing

import (
	"context"

	"github.com/smartcity/trafficmap/internal/domain"
)

// StatusOK is the status a Router reports for a usable result
const StatusOK = "OK"

// RouteRequest is what gets submitted to the directions provider
type RouteRequest struct {
	Origin      domain.Coordinate `json:"origin"`
	Destination domain.Coordinate `json:"destination"`
	Mode        domain.Mode       `json:"mode"`
	Waypoints   []Waypoint        `json:"waypoints"`
	Constraints Constraints       `json:"constraints"`
	Region      string            `json:"region"`
}

// Text is a human-readable quantity with its raw value
type Text struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// Leg is one stretch of a route between consecutive stops
type Leg struct {
	Duration Text `json:"duration"`
	Distance Text `json:"distance"`
}

// Route is one alternative returned by the provider
type Route struct {
	Summary string              `json:"summary,omitempty"`
	Legs    []Leg               `json:"legs"`
	Path    []domain.Coordinate `json:"path,omitempty"`
}

// Result is the provider's answer to a RouteRequest
type Result struct {
	Status       string
	ErrorMessage string
	Routes       []Route
}

// Router is the external directions capability
type Router interface {
	Route(ctx context.Context, req RouteRequest) (Result, error)
}

// RouterFunc adapts a function to the Router interface
type RouterFunc func(ctx context.Context, req RouteRequest) (Result, error)

func (f RouterFunc) Route(ctx context.Context, req RouteRequest) (Result, error) {
	return f(ctx, req)
}
