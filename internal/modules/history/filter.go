package history

import (
	"sort"
	"strings"
	"time"

	"rideapp/internal/rideapi"
)

// AllDrivers is the driver filter entry that keeps every ride.
const AllDrivers = "Todos os motoristas"

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// Filter keeps the rides driven by driverName, newest first.
// An empty name or AllDrivers keeps every ride.
func Filter(rides []rideapi.Ride, driverName string) []rideapi.Ride {
	name := strings.TrimSpace(driverName)
	out := make([]rideapi.Ride, 0, len(rides))
	for _, r := range rides {
		if name == "" || name == AllDrivers || strings.EqualFold(r.Driver.Name, name) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rideTime(out[i]).After(rideTime(out[j]))
	})
	return out
}

// Drivers lists the distinct driver names in rides, prefixed by AllDrivers.
func Drivers(rides []rideapi.Ride) []string {
	seen := make(map[string]struct{})
	names := []string{AllDrivers}
	for _, r := range rides {
		if _, ok := seen[r.Driver.Name]; ok || r.Driver.Name == "" {
			continue
		}
		seen[r.Driver.Name] = struct{}{}
		names = append(names, r.Driver.Name)
	}
	return names
}

func rideTime(r rideapi.Ride) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
