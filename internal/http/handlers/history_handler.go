// README: History handler returns a customer's rides filtered by driver.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/modules/history"
	"rideapp/internal/rideapi"
	"rideapp/internal/state"
)

type HistoryHandler struct {
	rides    history.Repository
	messages messages.Catalog
	log      logger.Logger
}

func NewHistoryHandler(rides history.Repository, catalog messages.Catalog, log logger.Logger) *HistoryHandler {
	return &HistoryHandler{rides: rides, messages: catalog, log: log}
}

type historyResponse struct {
	state.State[*rideapi.RideHistoryResponse]
	Drivers []string `json:"drivers,omitempty"`
}

func (h *HistoryHandler) List(c *gin.Context) {
	driverID := 0
	if raw := c.Query("driver_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "driver_id must be an integer")
			return
		}
		driverID = v
	}

	scope := state.NewScope(c.Request.Context())
	defer scope.Close()
	sess := history.NewSession(scope, h.rides, h.messages, h.log)

	sess.FetchRideHistory(c.Param("customer_id"), driverID)
	sess.Wait()
	result := sess.RideHistory().Value()

	resp := historyResponse{State: result}
	if result.Status == state.StatusSuccess && result.Data != nil {
		filtered := *result.Data
		resp.Drivers = history.Drivers(filtered.Rides)
		filtered.Rides = history.Filter(filtered.Rides, c.Query("driver_name"))
		resp.Data = &filtered
	}
	writeJSON(c, flowHTTPStatus(result.Status), resp)
}
