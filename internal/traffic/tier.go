package traffic

// Tier is a congestion band derived from a 0..1 level
type Tier int

const (
	TierLow Tier = iota
	TierModerate
	TierHeavy
)

// Tier lower bounds. Each band includes its lower bound and excludes the next.
const (
	ModerateFrom = 0.3
	HeavyFrom    = 0.7
)

type tierInfo struct {
	label  string
	color  string
	wait   string
	radius int
}

var tiers = [...]tierInfo{
	TierLow:      {label: "Low", color: "green", wait: "1-2 min", radius: 8},
	TierModerate: {label: "Moderate", color: "yellow", wait: "3-5 min", radius: 12},
	TierHeavy:    {label: "Heavy", color: "red", wait: "5-10 min", radius: 16},
}

// TierFor buckets a congestion level
func TierFor(level float64) Tier {
	switch {
	case level < ModerateFrom:
		return TierLow
	case level < HeavyFrom:
		return TierModerate
	default:
		return TierHeavy
	}
}

func (t Tier) info() tierInfo {
	if t < TierLow || t > TierHeavy {
		return tiers[TierHeavy]
	}
	return tiers[t]
}

// Label is the display name of the tier
func (t Tier) Label() string { return t.info().label }

// Color is the marker color of the tier
func (t Tier) Color() string { return t.info().color }

// WaitEstimate is a coarse expected delay at a location in this tier
func (t Tier) WaitEstimate() string { return t.info().wait }

// Radius is the marker radius in pixels
func (t Tier) Radius() int { return t.info().radius }

func (t Tier) String() string { return t.Label() }

// ColorFor is shorthand for TierFor(level).Color()
func ColorFor(level float64) string {
	return TierFor(level).Color()
}
