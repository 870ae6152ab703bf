package directions

import (
	"context"
	"fmt"
	"math"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/geo"
	"github.com/smartcity/trafficmap/internal/routing"
)

// Average town speeds in km/h per mode
var averageSpeeds = [domain.ModeCount]float64{
	domain.ModeNormal:    25,
	domain.ModeEmergency: 35,
	domain.ModeRickshaw:  20,
	domain.ModeFestival:  15,
}

// Estimator answers route requests offline by chaining great-circle legs
// through the waypoints. Used when no directions API key is configured.
type Estimator struct {
	distance geo.DistanceFunc
}

// NewEstimator creates an offline router
func NewEstimator() *Estimator {
	return &Estimator{distance: geo.DistanceMeters}
}

func (e *Estimator) Route(ctx context.Context, req routing.RouteRequest) (routing.Result, error) {
	if err := ctx.Err(); err != nil {
		return routing.Result{}, err
	}

	path := make([]domain.Coordinate, 0, len(req.Waypoints)+2)
	path = append(path, req.Origin)
	for _, wp := range req.Waypoints {
		path = append(path, wp.Location)
	}
	path = append(path, req.Destination)

	meters := geo.PathMeters(path, e.distance)
	if meters == 0 {
		return routing.Result{Status: "ZERO_RESULTS", ErrorMessage: "origin and destination are the same"}, nil
	}

	speed := averageSpeeds[domain.ModeNormal]
	if req.Mode.Valid() {
		speed = averageSpeeds[req.Mode]
	}
	seconds := meters / (speed * 1000 / 3600)

	return routing.Result{
		Status: routing.StatusOK,
		Routes: []routing.Route{{
			Summary: "estimated",
			Legs: []routing.Leg{{
				Duration: routing.Text{Text: FormatDuration(seconds), Value: math.Round(seconds)},
				Distance: routing.Text{Text: FormatDistance(meters), Value: math.Round(meters)},
			}},
			Path: path,
		}},
	}, nil
}

// FormatDistance renders meters the way directions providers do ("850 m", "2.1 km")
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration renders seconds as "1 min", "7 mins" or "1 hour 5 mins"
func FormatDuration(seconds float64) string {
	mins := int(math.Round(seconds / 60))
	if mins < 1 {
		mins = 1
	}
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s", unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	if mins < 60 {
		return plural(mins, "min")
	}
	h, m := mins/60, mins%60
	if m == 0 {
		return plural(h, "hour")
	}
	return plural(h, "hour") + " " + plural(m, "min")
}
