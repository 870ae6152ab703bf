package traffic

import (
	"fmt"
	"sort"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/pkg/utils"
)

// Marker is a traffic reading ready to be drawn on the map
type Marker struct {
	Key      string            `json:"key"`
	Name     string            `json:"name"`
	Position domain.Coordinate `json:"position"`
	Level    float64           `json:"level"`
	Tier     Tier              `json:"tier"`
	Color    string            `json:"color"`
	Radius   int               `json:"radius"`
	Popup    string            `json:"popup"`
}

// NewMarker styles one snapshot entry
func NewMarker(key string, p domain.TrafficPoint) Marker {
	tier := TierFor(p.Level)
	return Marker{
		Key:      key,
		Name:     p.Location.Name,
		Position: domain.Coordinate{Lat: p.Location.Lat, Lng: p.Location.Lng},
		Level:    p.Level,
		Tier:     tier,
		Color:    tier.Color(),
		Radius:   tier.Radius(),
		Popup:    Popup(p.Location.Name, p.Level),
	}
}

// Popup is the info text shown when a marker is opened
func Popup(name string, level float64) string {
	tier := TierFor(level)
	return fmt.Sprintf("%s\nTraffic level: %d%% (%s)\nEstimated wait: %s",
		name, utils.Percent(level), tier.Label(), tier.WaitEstimate())
}

// Markers builds one marker per snapshot entry, ordered by key
func Markers(s domain.TrafficSnapshot) []Marker {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Marker, 0, len(keys))
	for _, k := range keys {
		out = append(out, NewMarker(k, s[k]))
	}
	return out
}
