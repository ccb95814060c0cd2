// README: History session fetches a customer's past rides and filters them by driver.
package history

import (
	"context"
	"errors"
	"strings"

	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/modules/ride"
	"rideapp/internal/rideapi"
	"rideapp/internal/state"
)

type Repository interface {
	RideHistory(ctx context.Context, customerID string, driverID int) (*rideapi.RideHistoryResponse, error)
}

type Session struct {
	repo     Repository
	messages messages.Catalog
	scope    *state.Scope
	log      logger.Logger

	rideHistory *state.Flow[*rideapi.RideHistoryResponse]
}

func NewSession(scope *state.Scope, repo Repository, catalog messages.Catalog, log logger.Logger) *Session {
	return &Session{
		repo:        repo,
		messages:    catalog,
		scope:       scope,
		log:         log,
		rideHistory: state.NewFlow[*rideapi.RideHistoryResponse](),
	}
}

func (s *Session) RideHistory() *state.Flow[*rideapi.RideHistoryResponse] {
	return s.rideHistory
}

// FetchRideHistory loads the rides of userID with driverID. It reports false
// when a request is already in flight or the scope is closed.
func (s *Session) FetchRideHistory(userID string, driverID int) bool {
	if !s.rideHistory.TryStart() {
		return false
	}
	if strings.TrimSpace(userID) == "" {
		s.SetError(s.messages.HistoryUserIDRequired())
		return true
	}

	launched := s.scope.Launch(func(ctx context.Context) {
		resp, err := s.repo.RideHistory(ctx, userID, driverID)
		if err != nil {
			msg := s.messages.FetchHistory()
			var ue *ride.UserError
			if errors.As(err, &ue) && ue.Message != "" {
				msg = ue.Message
			} else {
				s.log.Error("ride history failed", err, "customer_id", userID)
			}
			s.SetError(msg)
			return
		}
		s.log.Action("ride_history_received").Info("ride history received",
			"customer_id", userID,
			"driver_id", driverID,
			"rides", len(resp.Rides),
		)
		s.rideHistory.Set(state.Success(resp))
	})
	if !launched {
		s.rideHistory.Reset()
	}
	return launched
}

func (s *Session) ResetRideHistoryState() {
	s.rideHistory.Reset()
}

func (s *Session) SetError(message string) {
	s.rideHistory.Set(state.Error[*rideapi.RideHistoryResponse](message))
}

func (s *Session) Wait() {
	s.scope.Wait()
}
