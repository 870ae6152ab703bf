package routing

import (
	"errors"
	"fmt"
)

// ErrMissingEndpoint means the start or end of the trip was not selected
var ErrMissingEndpoint = errors.New("routing: start and end points are required")

// RouteError reports a failed directions request with the provider's raw status
type RouteError struct {
	Status  string
	Message string
	Err     error
}

func (e *RouteError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("routing: directions request failed: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("routing: directions request failed: %s (%s)", e.Status, e.Message)
	default:
		return fmt.Sprintf("routing: directions request failed: %s", e.Status)
	}
}

func (e *RouteError) Unwrap() error {
	return e.Err
}
