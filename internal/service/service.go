package service

import (
	"github.com/smartcity/trafficmap/internal/domain"
)

// ReportRepository is re-exported from domain for convenience
type ReportRepository = domain.ReportRepository
