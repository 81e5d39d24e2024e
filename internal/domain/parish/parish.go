// Package parish holds the fixed set of Jamaican parishes used as the
// locality attribute for citizens, jobs and gigs.
package parish

import "strings"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Parish struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

const Default = "Kingston"

var all = []Parish{
	{Name: "Kingston", Coordinates: Coordinates{Lat: 17.9757, Lng: -76.8066}},
	{Name: "St. Andrew", Coordinates: Coordinates{Lat: 18.0176, Lng: -76.8114}},
	{Name: "St. Catherine", Coordinates: Coordinates{Lat: 17.9833, Lng: -76.9167}},
	{Name: "Clarendon", Coordinates: Coordinates{Lat: 18.1, Lng: -77.6667}},
	{Name: "Manchester", Coordinates: Coordinates{Lat: 18.1167, Lng: -77.3}},
	{Name: "St. Elizabeth", Coordinates: Coordinates{Lat: 18.05, Lng: -77.75}},
	{Name: "Westmoreland", Coordinates: Coordinates{Lat: 18.2, Lng: -78.3}},
	{Name: "Hanover", Coordinates: Coordinates{Lat: 18.4, Lng: -78.1333}},
	{Name: "St. James", Coordinates: Coordinates{Lat: 18.2667, Lng: -77.9}},
	{Name: "Trelawny", Coordinates: Coordinates{Lat: 18.3, Lng: -77.6}},
	{Name: "St. Ann", Coordinates: Coordinates{Lat: 18.3, Lng: -77.2}},
	{Name: "St. Mary", Coordinates: Coordinates{Lat: 18.35, Lng: -76.9}},
	{Name: "Portland", Coordinates: Coordinates{Lat: 18.4, Lng: -76.4}},
	{Name: "St. Thomas", Coordinates: Coordinates{Lat: 17.95, Lng: -76.3}},
}

var byName = func() map[string]Parish {
	m := make(map[string]Parish, len(all))
	for _, p := range all {
		m[p.Name] = p
	}
	return m
}()

// All returns the parishes in a stable order.
func All() []Parish {
	out := make([]Parish, len(all))
	copy(out, all)
	return out
}

func Names() []string {
	out := make([]string, 0, len(all))
	for _, p := range all {
		out = append(out, p.Name)
	}
	return out
}

// Valid reports whether name is one of the known parishes. Matching is exact.
func Valid(name string) bool {
	_, ok := byName[name]
	return ok
}

// Lookup returns the parish by name, falling back to Kingston when unknown.
func Lookup(name string) Parish {
	if p, ok := byName[strings.TrimSpace(name)]; ok {
		return p
	}
	return byName[Default]
}

// DensityColor buckets a job count into the map colour scale.
func DensityColor(jobCount int) string {
	switch {
	case jobCount > 500:
		return "#dc2626"
	case jobCount > 200:
		return "#f59e0b"
	case jobCount > 50:
		return "#eab308"
	default:
		return "#22c55e"
	}
}
