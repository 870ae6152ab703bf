package domain

import "time"

// TrafficLocation is the named position a traffic reading belongs to
type TrafficLocation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// TrafficPoint is a single congestion reading
type TrafficPoint struct {
	Location TrafficLocation `json:"location"`
	Level    float64         `json:"level"` // 0..1
	Color    string          `json:"color"`
}

// TrafficSnapshot maps a location key to its current reading.
// Each refresh replaces the whole snapshot.
type TrafficSnapshot map[string]TrafficPoint

// HourlyLevel is the average congestion across all locations for one hour
type HourlyLevel struct {
	Hour  int     `json:"hour"`
	Level float64 `json:"level"`
}

// Analytics aggregates report and congestion figures for the dashboard
type Analytics struct {
	TotalReports       int           `json:"total_reports"`
	ActiveIncidents    int           `json:"active_incidents"`
	PeakCongestionTime string        `json:"peak_congestion_time"`
	MostCongestedArea  string        `json:"most_congested_area"`
	Patterns           []HourlyLevel `json:"traffic_patterns"`
	RecentReports      []Report      `json:"recent_reports"`
	Timestamp          time.Time     `json:"timestamp"`
}
