package domain

import "time"

// Report statuses
const (
	ReportActive   = "active"
	ReportResolved = "resolved"
)

// Report is a user-submitted road incident
type Report struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	ReportedBy  string    `json:"reported_by"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReportForm carries the fields of a POST /report submission
type ReportForm struct {
	IncidentType string  `form:"incident_type" json:"incident_type" validate:"required,oneof=accident congestion roadwork flooding festival other"`
	Description  string  `form:"description" json:"description" validate:"max=500"`
	Lat          float64 `form:"lat" json:"lat" validate:"latitude"`
	Lng          float64 `form:"lng" json:"lng" validate:"longitude"`
	Location     string  `form:"location" json:"location" validate:"max=100"`
	Severity     string  `form:"severity" json:"severity" validate:"omitempty,oneof=low medium high"`
	ReportedBy   string  `form:"reported_by" json:"reported_by" validate:"max=100"`
}

// Recent returns the last n reports, oldest first
func Recent(reports []Report, n int) []Report {
	if n <= 0 || len(reports) <= n {
		return reports
	}
	return reports[len(reports)-n:]
}
