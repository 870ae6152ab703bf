// Package client talks to the traffic backend on behalf of the map front-end.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/smartcity/trafficmap/internal/domain"
)

// StatusError is returned when the backend answers with an unexpected status
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("client: %s returned status %d: %s", e.Op, e.Code, e.Body)
	}
	return fmt.Sprintf("client: %s returned status %d", e.Op, e.Code)
}

// Client handles communication with the traffic backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a backend client. timeout bounds every call.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Traffic fetches the current traffic snapshot
func (c *Client) Traffic(ctx context.Context) (domain.TrafficSnapshot, error) {
	var snap domain.TrafficSnapshot
	if err := c.getJSON(ctx, "/api/traffic", &snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Reports fetches all incident reports, oldest first
func (c *Client) Reports(ctx context.Context) ([]domain.Report, error) {
	var reports []domain.Report
	if err := c.getJSON(ctx, "/api/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// SubmitReport posts an incident report as a form. Any non-2xx status is a failure.
func (c *Client) SubmitReport(ctx context.Context, form domain.ReportForm) error {
	values := url.Values{}
	values.Set("incident_type", form.IncidentType)
	values.Set("description", form.Description)
	values.Set("lat", strconv.FormatFloat(form.Lat, 'f', -1, 64))
	values.Set("lng", strconv.FormatFloat(form.Lng, 'f', -1, 64))
	values.Set("location", form.Location)
	values.Set("severity", form.Severity)
	values.Set("reported_by", form.ReportedBy)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/report", strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("client: failed to create report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: failed to submit report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError("submit report", resp)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("client: failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError("GET "+path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: failed to decode %s: %w", path, err)
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Op: op, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
