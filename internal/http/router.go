// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideapp/internal/http/handlers"
	"rideapp/internal/http/middleware"
)

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(deps.Log), middleware.Recovery(deps.Log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	rideHandler := handlers.NewRideHandler(deps.Rides, deps.Sessions, deps.Journal, deps.Messages, deps.Log, deps.ConfirmDebounce)
	api.POST("/sessions", rideHandler.CreateSession)
	api.POST("/sessions/:id/estimate", rideHandler.Estimate)
	api.POST("/sessions/:id/confirm", rideHandler.Confirm)

	historyHandler := handlers.NewHistoryHandler(deps.Rides, deps.Messages, deps.Log)
	api.GET("/history/:customer_id", historyHandler.List)

	return r
}
