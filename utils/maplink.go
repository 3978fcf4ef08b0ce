package utils

import (
	"fmt"
	"regexp"
)

var latLngPattern = regexp.MustCompile(`Lat:\s*(-?\d+(?:\.\d+)?)\s*,\s*Lng:\s*(-?\d+(?:\.\d+)?)`)

// BuildMapLink extracts a "Lat: <number>, Lng: <number>" pair from free-text
// location and returns a maps URL for it. Unmatched text yields "".
func BuildMapLink(location string) string {
	m := latLngPattern.FindStringSubmatch(location)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s", m[1], m[2])
}
