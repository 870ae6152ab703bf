package directions

import (
	"log"

	"github.com/smartcity/trafficmap/internal/routing"
)

// NewRouter returns the live directions client when an API key is set,
// otherwise the offline estimator
func NewRouter(baseURL, apiKey string) routing.Router {
	if apiKey == "" {
		log.Println("No directions API key, using offline route estimates")
		return NewEstimator()
	}
	return NewClient(baseURL, apiKey)
}
