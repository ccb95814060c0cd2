// README: Base handler utilities (JSON helpers, flow and error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rideapp/internal/modules/session"
	"rideapp/internal/state"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// flowHTTPStatus maps a settled flow to the response code; the body carries
// the user-facing message either way.
func flowHTTPStatus(s state.Status) int {
	switch s {
	case state.StatusSuccess:
		return http.StatusOK
	case state.StatusError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusAccepted
	}
}

func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
