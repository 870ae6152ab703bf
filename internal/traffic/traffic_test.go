package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/trafficmap/internal/domain"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		level float64
		want  Tier
	}{
		{0, TierLow},
		{0.29, TierLow},
		{0.30, TierModerate},
		{0.5, TierModerate},
		{0.69, TierModerate},
		{0.70, TierHeavy},
		{1.0, TierHeavy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.level), "level %v", tt.level)
	}
}

func TestTierStyle(t *testing.T) {
	assert.Equal(t, "green", TierLow.Color())
	assert.Equal(t, "yellow", TierModerate.Color())
	assert.Equal(t, "red", TierHeavy.Color())

	assert.Equal(t, "1-2 min", TierLow.WaitEstimate())
	assert.Equal(t, "3-5 min", TierModerate.WaitEstimate())
	assert.Equal(t, "5-10 min", TierHeavy.WaitEstimate())

	assert.Less(t, TierLow.Radius(), TierModerate.Radius())
	assert.Less(t, TierModerate.Radius(), TierHeavy.Radius())

	assert.Equal(t, "yellow", ColorFor(0.45))
}

func TestPopup(t *testing.T) {
	assert.Equal(t, "AVS Junction\nTraffic level: 72% (Heavy)\nEstimated wait: 5-10 min", Popup("AVS Junction", 0.7249))
	assert.Equal(t, "Changuvetty\nTraffic level: 13% (Low)\nEstimated wait: 1-2 min", Popup("Changuvetty", 0.126))
}

func TestMarkers(t *testing.T) {
	snap := domain.TrafficSnapshot{
		"temple_road": {Location: domain.TrafficLocation{Name: "Temple Road", Lat: 10.8805, Lng: 76.0910}, Level: 0.82},
		"changuvetty": {Location: domain.TrafficLocation{Name: "Changuvetty", Lat: 10.8808, Lng: 76.0905}, Level: 0.1},
	}

	ms := Markers(snap)
	require.Len(t, ms, 2)

	assert.Equal(t, "changuvetty", ms[0].Key)
	assert.Equal(t, TierLow, ms[0].Tier)
	assert.Equal(t, "green", ms[0].Color)

	assert.Equal(t, "temple_road", ms[1].Key)
	assert.Equal(t, "Temple Road", ms[1].Name)
	assert.Equal(t, domain.Coordinate{Lat: 10.8805, Lng: 76.0910}, ms[1].Position)
	assert.Equal(t, "red", ms[1].Color)
	assert.Equal(t, TierHeavy.Radius(), ms[1].Radius)

	assert.Empty(t, Markers(nil))
}
