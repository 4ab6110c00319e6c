package services

import (
	"net/url"
	"strconv"
	"strings"

	"installation-route-service/internal/domain"
)

const (
	mapsSearchBase     = "https://www.google.com/maps/search/"
	mapsDirectionsBase = "https://www.google.com/maps/dir/"
)

// Map applications expect latitude-first pairs, the reverse of the
// routing API convention.
func latLonPair(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lon, 'f', 6, 64)
}

// BuildMapURL turns an ordered stop list into a turn-by-turn deep link.
//
// Origin is the explicit start when given, otherwise the first stop.
// Destination is the last stop; everything between becomes waypoints in
// order. Zero stops yield no link, and a single stop without an
// explicit start yields a plain location-search link instead of a
// directions link.
func BuildMapURL(stops []domain.Stop, start *domain.Coordinates) string {
	if len(stops) == 0 {
		return ""
	}

	if len(stops) == 1 && start == nil {
		q := url.Values{}
		q.Set("api", "1")
		q.Set("query", latLonPair(stops[0].Coords))
		return mapsSearchBase + "?" + q.Encode()
	}

	var origin domain.Coordinates
	waypoints := stops[:len(stops)-1]
	if start != nil {
		origin = *start
	} else {
		origin = stops[0].Coords
		waypoints = waypoints[1:]
	}
	destination := stops[len(stops)-1].Coords

	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", latLonPair(origin))
	q.Set("destination", latLonPair(destination))

	if len(waypoints) > 0 {
		pairs := make([]string, 0, len(waypoints))
		for _, s := range waypoints {
			pairs = append(pairs, latLonPair(s.Coords))
		}
		q.Set("waypoints", strings.Join(pairs, "|"))
	}

	return mapsDirectionsBase + "?" + q.Encode()
}
