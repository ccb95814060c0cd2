// README: Route geometry decodes the estimate's encoded polyline and summarizes the trip.
package maps

import (
	"errors"
	"fmt"
	"math"

	gmaps "googlemaps.github.io/maps"

	"rideapp/internal/rideapi"
	"rideapp/internal/types"
)

var ErrNoRoute = errors.New("estimate has no route polyline")

type Bounds struct {
	SouthWest types.Point `json:"south_west"`
	NorthEast types.Point `json:"north_east"`
}

// Summary is the trip overview shown next to the driver options.
type Summary struct {
	Origin          types.Point `json:"origin"`
	Destination     types.Point `json:"destination"`
	DistanceMeters  int         `json:"distance_meters"`
	DurationSeconds int         `json:"duration_seconds"`
	Points          int         `json:"points"`
	Bounds          Bounds      `json:"bounds"`
	// StraightLineMeters is the great-circle distance between the endpoints.
	StraightLineMeters int `json:"straight_line_meters"`
	// PathMeters is the length of the decoded polyline, 0 without one.
	PathMeters int `json:"path_meters"`
}

// DecodeRoute decodes the first route's encoded polyline.
func DecodeRoute(est *rideapi.RideEstimate) ([]types.Point, error) {
	if est == nil || len(est.RouteResponse.Routes) == 0 {
		return nil, ErrNoRoute
	}
	encoded := est.RouteResponse.Routes[0].Polyline.EncodedPolyline
	if encoded == "" {
		return nil, ErrNoRoute
	}
	decoded, err := gmaps.DecodePolyline(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	points := make([]types.Point, len(decoded))
	for i, ll := range decoded {
		points[i] = types.Point{Lat: ll.Lat, Lng: ll.Lng}
	}
	return points, nil
}

// BoundsOf returns the box enclosing points. It is zero for no points.
func BoundsOf(points []types.Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)
	}
	return b
}

// Summarize builds the trip summary. Without a usable polyline the bounds
// fall back to the origin and destination.
func Summarize(est *rideapi.RideEstimate) Summary {
	if est == nil {
		return Summary{}
	}
	s := Summary{
		Origin:          types.Point{Lat: est.Origin.Latitude, Lng: est.Origin.Longitude},
		Destination:     types.Point{Lat: est.Destination.Latitude, Lng: est.Destination.Longitude},
		DistanceMeters:  est.Distance,
		DurationSeconds: est.Duration,
	}
	points, err := DecodeRoute(est)
	s.StraightLineMeters = int(math.Round(DistanceMeters(s.Origin, s.Destination)))
	if err != nil || len(points) == 0 {
		points = []types.Point{s.Origin, s.Destination}
	} else {
		s.Points = len(points)
		s.PathMeters = int(math.Round(PathMeters(points)))
	}
	s.Bounds = BoundsOf(points)
	return s
}
