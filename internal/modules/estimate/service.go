// README: Estimate session drives price calculation and ride confirmation state for one user.
package estimate

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/modules/ride"
	"rideapp/internal/rideapi"
	"rideapp/internal/state"
)

type Session struct {
	repo     Repository
	messages messages.Catalog
	scope    *state.Scope
	log      logger.Logger

	priceCalculation *state.Flow[*rideapi.RideEstimate]
	rideConfirmation *state.Flow[*rideapi.ConfirmRideResponse]

	mu   sync.Mutex
	data Data
}

func NewSession(scope *state.Scope, repo Repository, catalog messages.Catalog, log logger.Logger) *Session {
	return &Session{
		repo:             repo,
		messages:         catalog,
		scope:            scope,
		log:              log,
		priceCalculation: state.NewFlow[*rideapi.RideEstimate](),
		rideConfirmation: state.NewFlow[*rideapi.ConfirmRideResponse](),
		data:             NewData(),
	}
}

func (s *Session) PriceCalculation() *state.Flow[*rideapi.RideEstimate] {
	return s.priceCalculation
}

func (s *Session) RideConfirmation() *state.Flow[*rideapi.ConfirmRideResponse] {
	return s.rideConfirmation
}

// FetchRidePrices requests an estimate. It reports false when a request is
// already in flight or the scope is closed.
func (s *Session) FetchRidePrices(userID, origin, destination string) bool {
	if !s.priceCalculation.TryStart() {
		return false
	}

	if msg := s.validateInputs(userID, origin, destination); msg != "" {
		s.priceCalculation.Set(state.Error[*rideapi.RideEstimate](msg))
		return true
	}

	s.mu.Lock()
	s.data.CustomerID = userID
	s.data.OriginAddress = origin
	s.data.DestinationAddress = destination
	s.mu.Unlock()

	launched := s.scope.Launch(func(ctx context.Context) {
		est, err := s.repo.RideEstimate(ctx, userID, origin, destination)
		if err != nil {
			s.priceCalculation.Set(state.Error[*rideapi.RideEstimate](s.messageFor(err, s.messages.RideRequestFailed())))
			return
		}
		s.SaveRideEstimate(est)
		s.log.Action("ride_estimate_received").Info("ride estimate received",
			"customer_id", userID,
			"options", len(est.Options),
			"distance_m", est.Distance,
		)
		s.priceCalculation.Set(state.Success(est))
	})
	if !launched {
		s.priceCalculation.Reset()
	}
	return launched
}

func (s *Session) ConfirmRide(in ConfirmInput) bool {
	if !s.rideConfirmation.TryStart() {
		return false
	}

	cmd := ride.ConfirmCommand{
		CustomerID:  in.UserID,
		Origin:      in.Origin,
		Destination: in.Destination,
		DistanceKm:  float64(in.DistanceMeters) / 1000.0,
		Duration:    in.Duration,
		Driver:      rideapi.Driver{ID: in.DriverID, Name: in.DriverName},
		Value:       in.Value,
	}

	launched := s.scope.Launch(func(ctx context.Context) {
		resp, err := s.repo.ConfirmRide(ctx, cmd)
		if err != nil {
			s.rideConfirmation.Set(state.Error[*rideapi.ConfirmRideResponse](s.messageFor(err, s.messages.RideConfirmationFailed())))
			return
		}
		s.mu.Lock()
		s.data.DriverID = in.DriverID
		s.mu.Unlock()
		s.log.Action("ride_confirmed").Info("ride confirmed",
			"customer_id", in.UserID,
			"driver_id", in.DriverID,
			"distance_km", cmd.DistanceKm,
		)
		s.rideConfirmation.Set(state.Success(resp))
	})
	if !launched {
		s.rideConfirmation.Reset()
	}
	return launched
}

// ConfirmOption confirms one of the saved estimate's driver options using the
// saved customer data.
func (s *Session) ConfirmOption(optionID int) bool {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	if data.Estimate == nil {
		if s.rideConfirmation.TryStart() {
			s.rideConfirmation.Set(state.Error[*rideapi.ConfirmRideResponse](s.messages.RideConfirmationFailed()))
			return true
		}
		return false
	}
	opt, ok := findOption(data.Estimate.Options, optionID)
	if !ok {
		if s.rideConfirmation.TryStart() {
			s.rideConfirmation.Set(state.Error[*rideapi.ConfirmRideResponse](s.messages.DriverSelectionFailed()))
			return true
		}
		return false
	}

	return s.ConfirmRide(ConfirmInput{
		UserID:         data.CustomerID,
		Origin:         data.OriginAddress,
		Destination:    data.DestinationAddress,
		DistanceMeters: data.Estimate.Distance,
		Duration:       strconv.Itoa(data.Estimate.Duration),
		DriverID:       opt.ID,
		DriverName:     opt.Name,
		Value:          opt.Value,
	})
}

func (s *Session) SaveRideEstimate(est *rideapi.RideEstimate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Estimate = est
}

func (s *Session) RideEstimate() *rideapi.RideEstimate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Estimate
}

// Options returns the saved estimate's driver options, cheapest first.
func (s *Session) Options() []rideapi.Option {
	est := s.RideEstimate()
	if est == nil {
		return nil
	}
	out := make([]rideapi.Option, len(est.Options))
	copy(out, est.Options)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

func (s *Session) Option(id int) (rideapi.Option, bool) {
	est := s.RideEstimate()
	if est == nil {
		return rideapi.Option{}, false
	}
	return findOption(est.Options, id)
}

func (s *Session) CustomerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CustomerID
}

func (s *Session) OriginAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.OriginAddress
}

func (s *Session) DestinationAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DestinationAddress
}

func (s *Session) DriverID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DriverID
}

func (s *Session) ResetPriceCalculationState() {
	s.priceCalculation.Reset()
}

func (s *Session) ResetRideConfirmationState() {
	s.rideConfirmation.Reset()
}

func (s *Session) Snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *Session) Restore(d Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
}

// Wait blocks until launched requests finish.
func (s *Session) Wait() {
	s.scope.Wait()
}

// validateInputs returns the message for the first invalid field, or "".
func (s *Session) validateInputs(userID, origin, destination string) string {
	switch {
	case strings.TrimSpace(origin) == "":
		return s.messages.EmptyOrigin()
	case strings.TrimSpace(destination) == "":
		return s.messages.EmptyDestination()
	case strings.TrimSpace(userID) == "":
		return s.messages.EmptyUserID()
	case origin == destination:
		return s.messages.SameAddresses()
	default:
		return ""
	}
}

func (s *Session) messageFor(err error, fallback string) string {
	var ue *ride.UserError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	s.log.Error("ride flow failed", err)
	return fallback
}

func findOption(opts []rideapi.Option, id int) (rideapi.Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return rideapi.Option{}, false
}
