package ride_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/modules/ride"
	"rideapp/internal/rideapi"
	"rideapp/internal/rideapi/rideapitest"
)

var catalog = messages.Default()

func newRepository(t *testing.T) (*ride.Repository, *rideapitest.Server) {
	t.Helper()
	srv := rideapitest.NewServer(t)
	client := rideapi.NewClient(srv.URL, 5*time.Second, logger.Discard())
	return ride.NewRepository(client, catalog, logger.Discard()), srv
}

func assertUserError(t *testing.T, err error, wantMsg string, wantStatus int) *ride.UserError {
	t.Helper()
	var ue *ride.UserError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *ride.UserError, got %T (%v)", err, err)
	}
	if ue.Message != wantMsg {
		t.Errorf("message = %q, want %q", ue.Message, wantMsg)
	}
	if ue.Status != wantStatus {
		t.Errorf("status = %d, want %d", ue.Status, wantStatus)
	}
	return ue
}

func TestRideEstimate_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"empty success body", http.StatusOK, "", catalog.RideRequestFailed()},
		{"invalid data", http.StatusBadRequest, rideapitest.Fixture("ride_estimate_error_same_address.json"), catalog.InvalidData()},
		{"server error", http.StatusInternalServerError, "", catalog.Server()},
		{"other status", http.StatusServiceUnavailable, "", catalog.ContactSupport()},
		{"not found is other", http.StatusNotFound, "", catalog.ContactSupport()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, srv := newRepository(t)
			srv.Enqueue(tt.status, tt.body)

			est, err := repo.RideEstimate(context.Background(), "123", "a", "b")
			if est != nil {
				t.Fatalf("expected nil estimate, got %+v", est)
			}
			assertUserError(t, err, tt.wantMsg, tt.status)
		})
	}
}

func TestRideEstimate_SuccessAndErrorBody(t *testing.T) {
	repo, srv := newRepository(t)
	srv.Enqueue(http.StatusOK, rideapitest.Fixture("ride_estimate_success_response.json"))
	srv.Enqueue(http.StatusBadRequest, rideapitest.Fixture("ride_estimate_error_same_address.json"))

	est, err := repo.RideEstimate(context.Background(), "123", "a", "b")
	if err != nil {
		t.Fatalf("RideEstimate: %v", err)
	}
	if len(est.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(est.Options))
	}

	_, err = repo.RideEstimate(context.Background(), "123", "a", "a")
	ue := assertUserError(t, err, catalog.InvalidData(), http.StatusBadRequest)
	if ue.Code != "INVALID_DATA" || ue.Detail == "" {
		t.Errorf("expected server error body to be kept, got code=%q detail=%q", ue.Code, ue.Detail)
	}
}

func TestConfirmRide_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"invalid data", http.StatusBadRequest, rideapitest.Fixture("confirm_ride_error_driver.json"), catalog.InvalidProvidedData()},
		{"driver not found", http.StatusNotFound, rideapitest.Fixture("confirm_ride_error_driver.json"), catalog.DriverSelectionFailed()},
		{"invalid mileage", http.StatusNotAcceptable, rideapitest.Fixture("confirm_ride_error_distance.json"), catalog.InvalidMileage()},
		{"server error is unexpected", http.StatusInternalServerError, "", catalog.Unexpected()},
		{"success false", http.StatusOK, `{"success": false}`, catalog.RideConfirmationFailed()},
		{"empty success body", http.StatusOK, "", catalog.RideConfirmationFailed()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, srv := newRepository(t)
			srv.Enqueue(tt.status, tt.body)

			_, err := repo.ConfirmRide(context.Background(), ride.ConfirmCommand{CustomerID: "123"})
			assertUserError(t, err, tt.wantMsg, tt.status)
		})
	}
}

func TestConfirmRide_Success(t *testing.T) {
	repo, srv := newRepository(t)
	srv.Enqueue(http.StatusOK, rideapitest.Fixture("confirm_ride_success_response.json"))

	resp, err := repo.ConfirmRide(context.Background(), ride.ConfirmCommand{
		CustomerID: "123",
		DistanceKm: 8.001,
		Driver:     rideapi.Driver{ID: 1, Name: "Homer Simpson"},
		Value:      50,
	})
	if err != nil {
		t.Fatalf("ConfirmRide: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success")
	}
}

func TestRideHistory_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"invalid driver", http.StatusBadRequest, rideapitest.Fixture("ride_history_error_driver.json"), catalog.InvalidDriver()},
		{"no rides", http.StatusNotFound, rideapitest.Fixture("ride_history_error_no_rides.json"), catalog.NoRidesFound()},
		{"server error", http.StatusInternalServerError, "", catalog.Server()},
		{"other status", http.StatusBadGateway, "", catalog.ContactSupport()},
		{"empty success body", http.StatusOK, "", catalog.ContactSupport()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, srv := newRepository(t)
			srv.Enqueue(tt.status, tt.body)

			_, err := repo.RideHistory(context.Background(), "CT01", 1)
			assertUserError(t, err, tt.wantMsg, tt.status)
		})
	}
}

func TestRideHistory_Success(t *testing.T) {
	repo, srv := newRepository(t)
	srv.Enqueue(http.StatusOK, rideapitest.Fixture("ride_history_success_response.json"))

	h, err := repo.RideHistory(context.Background(), "CT01", 1)
	if err != nil {
		t.Fatalf("RideHistory: %v", err)
	}
	if h.CustomerID != "CT01" || len(h.Rides) != 3 {
		t.Fatalf("unexpected history %+v", h)
	}
}

func TestNetworkFailureMapsToNoInternet(t *testing.T) {
	repo, srv := newRepository(t)
	srv.Close()

	_, err := repo.RideHistory(context.Background(), "CT01", 1)
	ue := assertUserError(t, err, catalog.NoInternet(), 0)
	if !errors.Is(ue, rideapi.ErrNetwork) {
		t.Errorf("expected wrapped ErrNetwork, got %v", ue.Err)
	}

	_, err = repo.RideEstimate(context.Background(), "1", "a", "b")
	assertUserError(t, err, catalog.NoInternet(), 0)

	_, err = repo.ConfirmRide(context.Background(), ride.ConfirmCommand{})
	assertUserError(t, err, catalog.NoInternet(), 0)
}

func TestCancelledContextIsNotUserError(t *testing.T) {
	repo, srv := newRepository(t)
	release := srv.EnqueueHeld(http.StatusOK, rideapitest.Fixture("ride_history_success_response.json"))
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := repo.RideHistory(ctx, "CT01", 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var ue *ride.UserError
	if errors.As(err, &ue) {
		t.Fatalf("cancellation should not become a user error: %v", ue)
	}
}
