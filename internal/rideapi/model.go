// README: Wire models mirroring the remote ride service JSON shapes.
package rideapi

// EstimateRequest is the body of POST ride/estimate.
type EstimateRequest struct {
	CustomerID  string `json:"customer_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// RideEstimate carries the trip coordinates, the route and the driver options.
// Distance is in metres and Duration in seconds.
type RideEstimate struct {
	Origin        LatLng        `json:"origin"`
	Destination   LatLng        `json:"destination"`
	Distance      int           `json:"distance"`
	Duration      int           `json:"duration"`
	Options       []Option      `json:"options"`
	RouteResponse RouteResponse `json:"routeResponse"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Option is one selectable driver with its price for the trip.
type Option struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Vehicle     string  `json:"vehicle"`
	Review      Review  `json:"review"`
	Value       float64 `json:"value"`
}

type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type RouteResponse struct {
	GeocodingResults GeocodingResults `json:"geocodingResults"`
	Routes           []Route          `json:"routes"`
}

type GeocodingResults struct {
	Origin      GeocodedWaypoint `json:"origin"`
	Destination GeocodedWaypoint `json:"destination"`
}

type GeocodedWaypoint struct {
	PlaceID string   `json:"placeId"`
	Type    []string `json:"type"`
}

type Route struct {
	Description     string          `json:"description"`
	DistanceMeters  int             `json:"distanceMeters"`
	Duration        string          `json:"duration"`
	StaticDuration  string          `json:"staticDuration"`
	Legs            []Leg           `json:"legs"`
	LocalizedValues LocalizedValues `json:"localizedValues"`
	Polyline        Polyline        `json:"polyline"`
	RouteLabels     []string        `json:"routeLabels"`
	Viewport        Viewport        `json:"viewport"`
	Warnings        []string        `json:"warnings"`
}

type Leg struct {
	DistanceMeters  int             `json:"distanceMeters"`
	Duration        string          `json:"duration"`
	StaticDuration  string          `json:"staticDuration"`
	StartLocation   Location        `json:"startLocation"`
	EndLocation     Location        `json:"endLocation"`
	LocalizedValues LocalizedValues `json:"localizedValues"`
	Polyline        Polyline        `json:"polyline"`
	Steps           []Step          `json:"steps"`
}

type Step struct {
	DistanceMeters        int                   `json:"distanceMeters"`
	StaticDuration        string                `json:"staticDuration"`
	StartLocation         Location              `json:"startLocation"`
	EndLocation           Location              `json:"endLocation"`
	LocalizedValues       LocalizedValues       `json:"localizedValues"`
	NavigationInstruction NavigationInstruction `json:"navigationInstruction"`
	Polyline              Polyline              `json:"polyline"`
	TravelMode            string                `json:"travelMode"`
}

type Location struct {
	LatLng LatLng `json:"latLng"`
}

type LocalizedValues struct {
	Distance       LocalizedText `json:"distance"`
	Duration       LocalizedText `json:"duration"`
	StaticDuration LocalizedText `json:"staticDuration"`
}

type LocalizedText struct {
	Text string `json:"text"`
}

type Polyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

type NavigationInstruction struct {
	Instructions string `json:"instructions"`
	Maneuver     string `json:"maneuver"`
}

type Viewport struct {
	High LatLng `json:"high"`
	Low  LatLng `json:"low"`
}

type Driver struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ConfirmRideRequest is the body of PATCH ride/confirm. Distance is in kilometres.
type ConfirmRideRequest struct {
	CustomerID  string  `json:"customer_id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	Duration    string  `json:"duration"`
	Driver      Driver  `json:"driver"`
	Value       float64 `json:"value"`
}

type ConfirmRideResponse struct {
	Success bool `json:"success"`
}

type RideHistoryResponse struct {
	CustomerID string `json:"customer_id"`
	Rides      []Ride `json:"rides"`
}

// Ride is one completed trip. Date is formatted as 2006-01-02T15:04:05.
type Ride struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	Duration    string  `json:"duration"`
	Driver      Driver  `json:"driver"`
	Value       float64 `json:"value"`
}

// ErrorResponse is the body the service sends with non-2xx statuses.
type ErrorResponse struct {
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
}
