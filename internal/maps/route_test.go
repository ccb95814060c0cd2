package maps

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"rideapp/internal/rideapi"
	"rideapp/internal/rideapi/rideapitest"
	"rideapp/internal/types"
)

func loadEstimate(t *testing.T) *rideapi.RideEstimate {
	t.Helper()
	var est rideapi.RideEstimate
	if err := json.Unmarshal([]byte(rideapitest.Fixture("ride_estimate_success_response.json")), &est); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &est
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestDecodeRoute(t *testing.T) {
	points, err := DecodeRoute(loadEstimate(t))
	if err != nil {
		t.Fatalf("DecodeRoute: %v", err)
	}
	want := []types.Point{{Lat: 38.5, Lng: -120.2}, {Lat: 40.7, Lng: -120.95}, {Lat: 43.252, Lng: -126.453}}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i := range want {
		if !near(points[i].Lat, want[i].Lat) || !near(points[i].Lng, want[i].Lng) {
			t.Fatalf("point %d = %+v, want %+v", i, points[i], want[i])
		}
	}
}

func TestDecodeRouteWithoutRoutes(t *testing.T) {
	if _, err := DecodeRoute(&rideapi.RideEstimate{}); !errors.Is(err, ErrNoRoute) {
		t.Fatalf("expected ErrNoRoute, got %v", err)
	}
	if _, err := DecodeRoute(nil); !errors.Is(err, ErrNoRoute) {
		t.Fatalf("expected ErrNoRoute for nil, got %v", err)
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]types.Point{{Lat: 1, Lng: 5}, {Lat: -2, Lng: 7}, {Lat: 3, Lng: 6}})
	if b.SouthWest != (types.Point{Lat: -2, Lng: 5}) || b.NorthEast != (types.Point{Lat: 3, Lng: 7}) {
		t.Fatalf("unexpected bounds %+v", b)
	}
	if (BoundsOf(nil) != Bounds{}) {
		t.Fatal("expected zero bounds for no points")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(loadEstimate(t))
	if s.DistanceMeters != 8001 || s.DurationSeconds != 1149 || s.Points != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if !near(s.Bounds.NorthEast.Lat, 43.252) || !near(s.Bounds.SouthWest.Lng, -126.453) {
		t.Fatalf("unexpected bounds %+v", s.Bounds)
	}
}

func TestSummarizeFallsBackToEndpoints(t *testing.T) {
	est := &rideapi.RideEstimate{
		Origin:      rideapi.LatLng{Latitude: -23.52, Longitude: -46.66},
		Destination: rideapi.LatLng{Latitude: -23.56, Longitude: -46.65},
	}
	s := Summarize(est)
	if s.Points != 0 {
		t.Fatalf("points = %d, want 0", s.Points)
	}
	if s.Bounds.SouthWest.Lat != -23.56 || s.Bounds.NorthEast.Lng != -46.65 {
		t.Fatalf("unexpected bounds %+v", s.Bounds)
	}
}
