package domain

import "fmt"

// Coordinate is a WGS-84 point in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the coordinate was never set
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.5f,%.5f)", c.Lat, c.Lng)
}

// Landmark is a named fixed coordinate
type Landmark struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Coordinate
}
