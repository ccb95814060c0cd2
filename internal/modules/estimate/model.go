// README: Saved customer data and commands for the ride estimate flow.
package estimate

import (
	"context"

	"rideapp/internal/modules/ride"
	"rideapp/internal/rideapi"
)

// NoDriver is the selected driver id before any confirmation succeeds.
const NoDriver = -1

type Repository interface {
	RideEstimate(ctx context.Context, customerID, origin, destination string) (*rideapi.RideEstimate, error)
	ConfirmRide(ctx context.Context, cmd ride.ConfirmCommand) (*rideapi.ConfirmRideResponse, error)
}

// Data is what a session remembers between the pricing and confirmation steps.
type Data struct {
	CustomerID         string                `json:"customer_id"`
	OriginAddress      string                `json:"origin"`
	DestinationAddress string                `json:"destination"`
	DriverID           int                   `json:"driver_id"`
	Estimate           *rideapi.RideEstimate `json:"estimate,omitempty"`
}

func NewData() Data {
	return Data{DriverID: NoDriver}
}

// ConfirmInput describes a confirmation. DistanceMeters comes straight from the estimate.
type ConfirmInput struct {
	UserID         string
	Origin         string
	Destination    string
	DistanceMeters int
	Duration       string
	DriverID       int
	DriverName     string
	Value          float64
}
