package routing

import (
	"context"
	"time"

	"github.com/smartcity/trafficmap/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Summary is the display digest of a computed route
type Summary struct {
	Mode         domain.Mode  `json:"mode"`
	Duration     string       `json:"duration"`
	Distance     string       `json:"distance"`
	TrafficLevel TrafficLevel `json:"traffic_level"`
	Note         string       `json:"notes"`
	Color        string       `json:"color"`
}

// Computed bundles a successful route with the request that produced it
type Computed struct {
	Request RouteRequest `json:"request"`
	Summary Summary      `json:"info"`
	Route   Route        `json:"route"`
}

// Service turns a trip and a mode into a directions request and its summary
type Service struct {
	router   Router
	policies *PolicyTable
	region   string
	timeout  time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithTimeout bounds each directions request
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRegion overrides the region hint
func WithRegion(region string) Option {
	return func(s *Service) {
		if region != "" {
			s.region = region
		}
	}
}

// WithPolicies swaps the mode policy table
func WithPolicies(t *PolicyTable) Option {
	return func(s *Service) {
		if t != nil {
			s.policies = t
		}
	}
}

// NewService creates a new route service
func NewService(router Router, opts ...Option) *Service {
	s := &Service{
		router:   router,
		policies: defaultTable,
		region:   DefaultRegion,
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the policy the service applies for m
func (s *Service) Policy(m domain.Mode) Policy {
	return s.policies.For(m)
}

// Plan builds the request for a trip without submitting it
func (s *Service) Plan(origin, destination domain.Coordinate, mode domain.Mode) RouteRequest {
	policy := s.policies.For(mode)
	return RouteRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        policy.Mode,
		Waypoints:   policy.Waypoints.Waypoints(origin, destination),
		Constraints: policy.Constraints,
		Region:      s.region,
	}
}

// ComputeRoute plans the trip, submits it once and summarises the first route.
// Failures come back as *RouteError; nothing is retried.
func (s *Service) ComputeRoute(ctx context.Context, origin, destination domain.Coordinate, mode domain.Mode) (*Computed, error) {
	if origin.IsZero() || destination.IsZero() {
		return nil, ErrMissingEndpoint
	}

	req := s.Plan(origin, destination, mode)
	policy := s.policies.For(mode)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.router.Route(ctx, req)
	if err != nil {
		return nil, &RouteError{Status: "REQUEST_FAILED", Err: err}
	}
	if res.Status != StatusOK {
		return nil, &RouteError{Status: res.Status, Message: res.ErrorMessage}
	}
	if len(res.Routes) == 0 || len(res.Routes[0].Legs) == 0 {
		return nil, &RouteError{Status: "ZERO_RESULTS", Message: "no route returned"}
	}

	route := res.Routes[0]
	leg := route.Legs[0]

	return &Computed{
		Request: req,
		Route:   route,
		Summary: Summary{
			Mode:         policy.Mode,
			Duration:     leg.Duration.Text,
			Distance:     leg.Distance.Text,
			TrafficLevel: policy.Level,
			Note:         policy.Note,
			Color:        policy.Color,
		},
	}, nil
}
