package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/geo"
	"github.com/smartcity/trafficmap/internal/traffic"
	"github.com/smartcity/trafficmap/pkg/utils"
)

const (
	baseLevel     = 0.3
	peakIncrement = 0.4
	defaultFactor = 0.2
	jitterSpread  = 0.1
)

// Per-area congestion added on top of the base level
var locationFactors = map[string]float64{
	"changuvetty":      0.2,
	"avs_junction":     0.3,
	"almas_hospital":   0.1,
	"temple_road":      0.4,
	"market_zone":      0.3,
	"kottakkal_center": 0.2,
}

// TrafficService simulates congestion for the monitored Kottakkal areas
type TrafficService struct {
	areas []domain.Landmark
	now   func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTrafficService creates a traffic service over geo.Areas
func NewTrafficService() *TrafficService {
	return &TrafficService{
		areas: geo.Areas,
		now:   time.Now,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// isPeak reports whether hour falls in the morning or evening rush
func isPeak(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
}

// expectedLevel is the jitter-free level for an area at the given hour
func expectedLevel(key string, hour int) float64 {
	level := baseLevel
	if isPeak(hour) {
		level += peakIncrement
	}
	factor, ok := locationFactors[key]
	if !ok {
		factor = defaultFactor
	}
	return level + factor
}

// jitter returns a uniform offset in [-jitterSpread, jitterSpread]
func (s *TrafficService) jitter() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (s.rnd.Float64()*2 - 1) * jitterSpread
}

// LevelAt returns a simulated congestion level in [0,1] for key at hour
func (s *TrafficService) LevelAt(key string, hour int) float64 {
	return utils.Clamp(expectedLevel(key, hour)+s.jitter(), 0, 1)
}

// Snapshot returns the current reading for every monitored area
func (s *TrafficService) Snapshot(ctx context.Context) (domain.TrafficSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hour := s.now().Hour()
	snapshot := make(domain.TrafficSnapshot, len(s.areas))
	for _, area := range s.areas {
		level := s.LevelAt(area.Key, hour)
		snapshot[area.Key] = domain.TrafficPoint{
			Location: domain.TrafficLocation{Name: area.Name, Lat: area.Lat, Lng: area.Lng},
			Level:    level,
			Color:    traffic.ColorFor(level),
		}
	}
	return snapshot, nil
}

// Patterns returns the average level across all areas for each hour of the day
func (s *TrafficService) Patterns() []domain.HourlyLevel {
	patterns := make([]domain.HourlyLevel, 0, 24)
	for hour := 0; hour < 24; hour++ {
		var sum float64
		for _, area := range s.areas {
			sum += s.LevelAt(area.Key, hour)
		}
		avg := 0.0
		if len(s.areas) > 0 {
			avg = sum / float64(len(s.areas))
		}
		patterns = append(patterns, domain.HourlyLevel{Hour: hour, Level: utils.RoundTo(avg, 3)})
	}
	return patterns
}

// MostCongestedArea returns the name of the area with the highest
// jitter-free average level over the day. Ties go to the first area listed.
func (s *TrafficService) MostCongestedArea() string {
	var (
		name string
		best = -1.0
	)
	for _, area := range s.areas {
		var sum float64
		for hour := 0; hour < 24; hour++ {
			sum += utils.Clamp(expectedLevel(area.Key, hour), 0, 1)
		}
		if sum > best {
			name, best = area.Name, sum
		}
	}
	return name
}
