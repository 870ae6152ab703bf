package session

import (
	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/routing"
	"github.com/smartcity/trafficmap/internal/traffic"
)

// Kind is the severity of a user notification
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a transient message shown to the user
type Notification struct {
	Kind    Kind
	Message string
}

// Presenter is the map and panel surface a session draws on
type Presenter interface {
	ClearMarkers()
	DrawMarker(m traffic.Marker)
	ClearRoute()
	DrawRoute(c *routing.Computed)
	ShowReports(reports []domain.Report)
	Notify(n Notification)
}
