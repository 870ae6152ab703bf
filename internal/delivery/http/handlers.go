package http

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/geo"
	"github.com/smartcity/trafficmap/internal/routing"
	"github.com/smartcity/trafficmap/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	dashboardSvc *service.DashboardService
	reportSvc    *service.ReportService
	routeSvc     *routing.Service
	repo         service.ReportRepository
	validate     *validator.Validate
}

// NewHandler creates a new handler
func NewHandler(
	dashboardSvc *service.DashboardService,
	reportSvc *service.ReportService,
	routeSvc *routing.Service,
	repo service.ReportRepository,
) *Handler {
	return &Handler{
		dashboardSvc: dashboardSvc,
		reportSvc:    reportSvc,
		routeSvc:     routeSvc,
		repo:         repo,
		validate:     validator.New(),
	}
}

// routeQuery is the query string of GET /api/route
type routeQuery struct {
	StartLat float64 `query:"start_lat" validate:"latitude"`
	StartLng float64 `query:"start_lng" validate:"longitude"`
	EndLat   float64 `query:"end_lat" validate:"latitude"`
	EndLng   float64 `query:"end_lng" validate:"longitude"`
	Mode     string  `query:"mode" validate:"max=20"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	storage := "ok"
	if err := h.repo.Health(c.UserContext()); err != nil {
		log.Printf("Storage health check failed: %v", err)
		storage = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "kottakkal-traffic",
		"version": "1.0.0",
		"storage": storage,
	})
}

// GetTraffic returns the current congestion snapshot keyed by area
func (h *Handler) GetTraffic(c *fiber.Ctx) error {
	snapshot, err := h.dashboardSvc.Traffic(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch traffic data")
	}

	return c.JSON(snapshot)
}

// GetReports returns every stored incident report, oldest first
func (h *Handler) GetReports(c *fiber.Ctx) error {
	reports, err := h.reportSvc.List(c.UserContext())
	if err != nil {
		log.Printf("Failed to list reports: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch reports")
	}

	return c.JSON(reports)
}

// SubmitReport stores a form-encoded incident report
func (h *Handler) SubmitReport(c *fiber.Ctx) error {
	var form domain.ReportForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid report form")
	}

	report, err := h.reportSvc.Submit(c.UserContext(), form)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return fiber.NewError(fiber.StatusBadRequest, verr.Error())
		}
		log.Printf("Failed to submit report: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save report")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

// GetRoute computes a mode-aware route between two points
func (h *Handler) GetRoute(c *fiber.Ctx) error {
	var q routeQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid route query")
	}
	if err := h.validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Coordinates out of range")
	}

	origin := domain.Coordinate{Lat: q.StartLat, Lng: q.StartLng}
	destination := domain.Coordinate{Lat: q.EndLat, Lng: q.EndLng}

	computed, err := h.routeSvc.ComputeRoute(c.UserContext(), origin, destination, domain.ParseMode(q.Mode))
	if err != nil {
		if errors.Is(err, routing.ErrMissingEndpoint) {
			return fiber.NewError(fiber.StatusBadRequest, "Start and end points are required")
		}
		var rerr *routing.RouteError
		if errors.As(err, &rerr) {
			log.Printf("Route request failed: %v", err)
			code := fiber.StatusBadGateway
			if errors.Is(err, context.DeadlineExceeded) {
				code = fiber.StatusGatewayTimeout
			}
			return fiber.NewError(code, "Directions request failed: "+rerr.Status)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute route")
	}

	return c.JSON(computed)
}

// GetDashboard returns report and congestion analytics
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.Analytics(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard data")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetLocations lists the monitored areas
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	locations := make(map[string]domain.TrafficLocation, len(geo.Areas))
	for _, a := range geo.Areas {
		locations[a.Key] = domain.TrafficLocation{Name: a.Name, Lat: a.Lat, Lng: a.Lng}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    locations,
	})
}

// ErrorHandler renders errors as {"error": true, "message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
