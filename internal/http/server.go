// README: API gateway; wires ride flows, sessions and middleware into a gin engine.
package http

import (
	"net/http"
	"time"

	"rideapp/internal/http/handlers"
	"rideapp/internal/infra"
	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/modules/estimate"
	"rideapp/internal/modules/history"
	"rideapp/internal/modules/session"
)

// Rides is satisfied by *ride.Repository.
type Rides interface {
	estimate.Repository
	history.Repository
}

type ServerDeps struct {
	Rides           Rides
	Sessions        session.Store
	Journal         handlers.Journal
	Verifier        infra.TokenVerifier
	Messages        messages.Catalog
	Log             logger.Logger
	ConfirmDebounce time.Duration
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	if deps.Messages == nil {
		deps.Messages = messages.Default()
	}
	if deps.Log == nil {
		deps.Log = logger.Discard()
	}
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	return NewRouter(s.deps)
}
