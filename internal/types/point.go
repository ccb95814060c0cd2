// README: Geographic point shared by route decoding and gateway responses.
package types

type Point struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}
