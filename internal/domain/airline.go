package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// airlineCodes maps well-known display names to IATA carrier codes.
var airlineCodes = map[string]string{
	"Turkish Airlines":   "TK",
	"Lufthansa":          "LH",
	"Norse Atlantic UK":  "N0",
	"SunExpress":         "XQ",
	"United Airlines":    "UA",
	"American Airlines":  "AA",
	"Delta Air Lines":    "DL",
	"British Airways":    "BA",
	"Air France":         "AF",
	"KLM":                "KL",
	"Emirates":           "EK",
	"Qatar Airways":      "QR",
	"Etihad Airways":     "EY",
	"Singapore Airlines": "SQ",
}

var (
	// flightNumberPrefix matches "TK", "Z2" or "3U" at the start of a flight number.
	flightNumberPrefix = regexp.MustCompile(`^([A-Z]{2}|[A-Z]\d|\d[A-Z])`)

	// leadingNameLetters matches the leading run of letters and spaces of an airline name.
	leadingNameLetters = regexp.MustCompile(`^([A-Za-z\s]+)`)
)

// Logo URL templates, tried in order.
const (
	logoURLLight = "https://www.gstatic.com/flights/airline_logos/70px/%s.png"
	logoURLDark  = "https://www.gstatic.com/flights/airline_logos/70px/dark/%s.png"
)

// InferAirlineCode resolves a short carrier code from an airline display name and a
// flight number. It tries, in order: the static name table, a two-character prefix of
// the flight number, and the first two letters of the name. It returns "" when all fail.
func InferAirlineCode(airlineName, flightNumber string) string {
	if code, ok := airlineCodes[airlineName]; ok {
		return code
	}

	if m := flightNumberPrefix.FindString(flightNumber); m != "" {
		return m
	}

	if m := leadingNameLetters.FindStringSubmatch(airlineName); m != nil {
		name := strings.TrimSpace(m[1])
		if len(name) > 2 {
			name = name[:2]
		}
		return strings.ToUpper(name)
	}

	return ""
}

// AirlineLogoURLs returns the logo fallback chain for a carrier code: the light-theme
// image first, then the dark-theme one. An empty code yields no URLs.
func AirlineLogoURLs(code string) []string {
	if code == "" {
		return []string{}
	}
	return []string{
		fmt.Sprintf(logoURLLight, code),
		fmt.Sprintf(logoURLDark, code),
	}
}
