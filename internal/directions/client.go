package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartcity/trafficmap/internal/domain"
	"github.com/smartcity/trafficmap/internal/routing"
)

// DefaultURL is the Google Directions JSON endpoint
const DefaultURL = "https://maps.googleapis.com/maps/api/directions/json"

// Client handles communication with a Google-compatible directions API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new directions client
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type textValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// apiResponse is the subset of the Directions API response we read
type apiResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Summary string `json:"summary"`
		Legs    []struct {
			Duration      textValue `json:"duration"`
			Distance      textValue `json:"distance"`
			StartLocation latLng    `json:"start_location"`
			EndLocation   latLng    `json:"end_location"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route submits req to the directions API. A non-OK API status is returned in
// the Result, not as an error; errors mean the call itself failed.
func (c *Client) Route(ctx context.Context, req routing.RouteRequest) (routing.Result, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+c.query(req).Encode(), nil)
	if err != nil {
		return routing.Result{}, fmt.Errorf("directions: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return routing.Result{}, fmt.Errorf("directions: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return routing.Result{}, fmt.Errorf("directions: unexpected HTTP status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return routing.Result{}, fmt.Errorf("directions: failed to decode response: %w", err)
	}

	result := routing.Result{
		Status:       body.Status,
		ErrorMessage: body.ErrorMessage,
	}
	for _, r := range body.Routes {
		route := routing.Route{Summary: r.Summary}
		for i, l := range r.Legs {
			route.Legs = append(route.Legs, routing.Leg{
				Duration: routing.Text{Text: l.Duration.Text, Value: l.Duration.Value},
				Distance: routing.Text{Text: l.Distance.Text, Value: l.Distance.Value},
			})
			if i == 0 {
				route.Path = append(route.Path, domain.Coordinate{Lat: l.StartLocation.Lat, Lng: l.StartLocation.Lng})
			}
			route.Path = append(route.Path, domain.Coordinate{Lat: l.EndLocation.Lat, Lng: l.EndLocation.Lng})
		}
		result.Routes = append(result.Routes, route)
	}

	return result, nil
}

func (c *Client) query(req routing.RouteRequest) url.Values {
	q := url.Values{}
	q.Set("origin", latLngParam(req.Origin))
	q.Set("destination", latLngParam(req.Destination))
	q.Set("mode", "driving")
	q.Set("alternatives", "true")

	if len(req.Waypoints) > 0 {
		parts := make([]string, 0, len(req.Waypoints))
		for _, wp := range req.Waypoints {
			p := latLngParam(wp.Location)
			if !wp.Stopover {
				p = "via:" + p
			}
			parts = append(parts, p)
		}
		q.Set("waypoints", strings.Join(parts, "|"))
	}

	var avoid []string
	if req.Constraints.AvoidHighways {
		avoid = append(avoid, "highways")
	}
	if req.Constraints.AvoidTolls {
		avoid = append(avoid, "tolls")
	}
	if req.Constraints.AvoidFerries {
		avoid = append(avoid, "ferries")
	}
	if len(avoid) > 0 {
		q.Set("avoid", strings.Join(avoid, "|"))
	}

	if req.Region != "" {
		q.Set("region", strings.ToLower(req.Region))
	}
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	return q
}

func latLngParam(c domain.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}
