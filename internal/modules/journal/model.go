// README: Journal entries record rides confirmed through the gateway.
package journal

import (
	"errors"
	"time"
)

var ErrInvalidEntry = errors.New("invalid journal entry")

type Entry struct {
	ID          int64     `json:"id"`
	CustomerID  string    `json:"customer_id"`
	DriverID    int       `json:"driver_id"`
	DriverName  string    `json:"driver_name"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKm  float64   `json:"distance_km"`
	Duration    string    `json:"duration"`
	Value       float64   `json:"value"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

func (e Entry) validate() error {
	if e.CustomerID == "" || e.DriverID <= 0 {
		return ErrInvalidEntry
	}
	return nil
}
