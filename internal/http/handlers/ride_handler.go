// README: Ride handlers for session creation, price estimate and confirmation.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"rideapp/internal/display"
	"rideapp/internal/logger"
	"rideapp/internal/maps"
	"rideapp/internal/messages"
	"rideapp/internal/modules/estimate"
	"rideapp/internal/modules/journal"
	"rideapp/internal/modules/session"
	"rideapp/internal/rideapi"
	"rideapp/internal/state"
	"rideapp/internal/types"
)

const opConfirm = "confirm"

// Journal records confirmed rides. A nil Journal disables recording.
type Journal interface {
	Append(ctx context.Context, e *journal.Entry) error
}

type RideHandler struct {
	rides    estimate.Repository
	sessions session.Store
	journal  Journal
	messages messages.Catalog
	log      logger.Logger
	debounce time.Duration
}

func NewRideHandler(rides estimate.Repository, sessions session.Store, j Journal, catalog messages.Catalog, log logger.Logger, debounce time.Duration) *RideHandler {
	return &RideHandler{
		rides:    rides,
		sessions: sessions,
		journal:  j,
		messages: catalog,
		log:      log,
		debounce: debounce,
	}
}

type estimateReq struct {
	CustomerID  string `json:"customer_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type confirmReq struct {
	DriverID int `json:"driver_id"`
	// DriverName is informational; the saved option's name is sent upstream.
	DriverName string `json:"driver_name"`
}

type optionView struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Vehicle     string      `json:"vehicle"`
	Rating      int         `json:"rating"`
	Comment     string      `json:"comment"`
	Price       types.Money `json:"price"`
	PriceLabel  string      `json:"price_label"`
}

type estimateResponse struct {
	state.State[*rideapi.RideEstimate]
	Route   *maps.Summary `json:"route,omitempty"`
	Options []optionView  `json:"options,omitempty"`
}

func (h *RideHandler) CreateSession(c *gin.Context) {
	id := session.NewID()
	if err := h.sessions.Save(c.Request.Context(), id, estimate.NewData()); err != nil {
		h.log.Error("save session", err)
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"session_id": id})
}

func (h *RideHandler) Estimate(c *gin.Context) {
	id, data, ok := h.loadSession(c)
	if !ok {
		return
	}
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	scope := state.NewScope(c.Request.Context())
	defer scope.Close()
	sess := estimate.NewSession(scope, h.rides, h.messages, h.log.With("session_id", id))
	sess.Restore(data)

	sess.FetchRidePrices(req.CustomerID, req.Origin, req.Destination)
	sess.Wait()
	result := sess.PriceCalculation().Value()

	if err := h.sessions.Save(c.Request.Context(), id, sess.Snapshot()); err != nil {
		h.log.Error("save session", err, "session_id", id)
	}

	resp := estimateResponse{State: result}
	if result.Status == state.StatusSuccess {
		summary := maps.Summarize(result.Data)
		resp.Route = &summary
		for _, o := range sess.Options() {
			resp.Options = append(resp.Options, optionView{
				ID:          o.ID,
				Name:        o.Name,
				Description: o.Description,
				Vehicle:     o.Vehicle,
				Rating:      o.Review.Rating,
				Comment:     o.Review.Comment,
				Price:       types.BRL(o.Value),
				PriceLabel:  display.Money(o.Value),
			})
		}
	}
	writeJSON(c, flowHTTPStatus(result.Status), resp)
}

func (h *RideHandler) Confirm(c *gin.Context) {
	id, data, ok := h.loadSession(c)
	if !ok {
		return
	}
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	claimed, err := h.sessions.Claim(c.Request.Context(), id, opConfirm, h.debounce)
	if err != nil {
		h.log.Error("claim confirm", err, "session_id", id)
		writeSessionError(c, err)
		return
	}
	if !claimed {
		writeError(c, http.StatusTooManyRequests, "confirmation already in progress")
		return
	}

	scope := state.NewScope(c.Request.Context())
	defer scope.Close()
	log := h.log.With("session_id", id)
	sess := estimate.NewSession(scope, h.rides, h.messages, log)
	sess.Restore(data)

	sess.ConfirmOption(req.DriverID)
	sess.Wait()
	result := sess.RideConfirmation().Value()

	if result.Status == state.StatusSuccess {
		h.record(c.Request.Context(), sess, log)
	}
	if err := h.sessions.Save(c.Request.Context(), id, sess.Snapshot()); err != nil {
		log.Error("save session", err)
	}
	writeJSON(c, flowHTTPStatus(result.Status), result)
}

func (h *RideHandler) loadSession(c *gin.Context) (string, estimate.Data, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if !session.ValidID(id) {
		writeError(c, http.StatusNotFound, session.ErrNotFound.Error())
		return "", estimate.Data{}, false
	}
	data, err := h.sessions.Load(c.Request.Context(), id)
	if err != nil {
		writeSessionError(c, err)
		return "", estimate.Data{}, false
	}
	return id, data, true
}

func (h *RideHandler) record(ctx context.Context, sess *estimate.Session, log logger.Logger) {
	if h.journal == nil {
		return
	}
	opt, _ := sess.Option(sess.DriverID())
	est := sess.RideEstimate()
	e := &journal.Entry{
		CustomerID:  sess.CustomerID(),
		DriverID:    opt.ID,
		DriverName:  opt.Name,
		Origin:      sess.OriginAddress(),
		Destination: sess.DestinationAddress(),
		Value:       opt.Value,
	}
	if est != nil {
		e.DistanceKm = float64(est.Distance) / 1000.0
		e.Duration = display.Duration(est.Duration)
	}
	if err := h.journal.Append(ctx, e); err != nil {
		log.Error("journal append", err, "customer_id", e.CustomerID)
	}
}
