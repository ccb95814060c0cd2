// README: Ride repository maps ride api outcomes to results or user-facing errors by status code.
package ride

import (
	"context"
	"errors"
	"net/http"

	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/rideapi"
)

type Repository struct {
	api      rideapi.API
	messages messages.Catalog
	log      logger.Logger
}

func NewRepository(api rideapi.API, catalog messages.Catalog, log logger.Logger) *Repository {
	return &Repository{api: api, messages: catalog, log: log}
}

// ConfirmCommand carries a confirmation; DistanceKm is already in kilometres.
type ConfirmCommand struct {
	CustomerID  string
	Origin      string
	Destination string
	DistanceKm  float64
	Duration    string
	Driver      rideapi.Driver
	Value       float64
}

// RideEstimate returns the driver options and route for a trip.
func (r *Repository) RideEstimate(ctx context.Context, customerID, origin, destination string) (*rideapi.RideEstimate, error) {
	resp, err := r.api.RideEstimate(ctx, rideapi.EstimateRequest{
		CustomerID:  customerID,
		Origin:      origin,
		Destination: destination,
	})
	if err != nil {
		return nil, r.transportError("ride_estimate", err)
	}
	if resp.Successful() {
		if resp.Body == nil {
			return nil, r.fail("ride_estimate", newUserError(r.messages.RideRequestFailed(), resp.StatusCode, nil))
		}
		return resp.Body, nil
	}

	var msg string
	switch resp.StatusCode {
	case http.StatusBadRequest:
		msg = r.messages.InvalidData()
	case http.StatusInternalServerError:
		msg = r.messages.Server()
	default:
		msg = r.messages.ContactSupport()
	}
	return nil, r.fail("ride_estimate", newUserError(msg, resp.StatusCode, resp.Error))
}

func (r *Repository) ConfirmRide(ctx context.Context, cmd ConfirmCommand) (*rideapi.ConfirmRideResponse, error) {
	resp, err := r.api.ConfirmRide(ctx, rideapi.ConfirmRideRequest{
		CustomerID:  cmd.CustomerID,
		Origin:      cmd.Origin,
		Destination: cmd.Destination,
		Distance:    cmd.DistanceKm,
		Duration:    cmd.Duration,
		Driver:      cmd.Driver,
		Value:       cmd.Value,
	})
	if err != nil {
		return nil, r.transportError("ride_confirm", err)
	}
	if resp.Successful() {
		if resp.Body == nil || !resp.Body.Success {
			return nil, r.fail("ride_confirm", newUserError(r.messages.RideConfirmationFailed(), resp.StatusCode, nil))
		}
		return resp.Body, nil
	}

	var msg string
	switch resp.StatusCode {
	case http.StatusBadRequest:
		msg = r.messages.InvalidProvidedData()
	case http.StatusNotFound:
		msg = r.messages.DriverSelectionFailed()
	case http.StatusNotAcceptable:
		msg = r.messages.InvalidMileage()
	default:
		msg = r.messages.Unexpected()
	}
	return nil, r.fail("ride_confirm", newUserError(msg, resp.StatusCode, resp.Error))
}

func (r *Repository) RideHistory(ctx context.Context, customerID string, driverID int) (*rideapi.RideHistoryResponse, error) {
	resp, err := r.api.RideHistory(ctx, customerID, driverID)
	if err != nil {
		return nil, r.transportError("ride_history", err)
	}
	if resp.Successful() && resp.Body != nil {
		return resp.Body, nil
	}

	var msg string
	switch resp.StatusCode {
	case http.StatusBadRequest:
		msg = r.messages.InvalidDriver()
	case http.StatusNotFound:
		msg = r.messages.NoRidesFound()
	case http.StatusInternalServerError:
		msg = r.messages.Server()
	default:
		msg = r.messages.ContactSupport()
	}
	return nil, r.fail("ride_history", newUserError(msg, resp.StatusCode, resp.Error))
}

func (r *Repository) transportError(action string, err error) error {
	if !errors.Is(err, rideapi.ErrNetwork) {
		r.log.Action(action).Error("ride api request not sent", err)
		return err
	}
	return r.fail(action, &UserError{Message: r.messages.NoInternet(), Err: err})
}

func (r *Repository) fail(action string, e *UserError) error {
	r.log.Action(action).Warn("ride api call failed",
		"status", e.Status,
		"error_code", e.Code,
		"error_description", e.Detail,
		"user_message", e.Message,
	)
	return e
}
