// Package phonenum rewrites free-form phone number input into canonical
// +<calling code><subscriber> form.
package phonenum

import (
	"strings"

	"xlookup/internal/domain"
	"xlookup/pkg/errcodes"
)

const (
	minNormalizedLen = 10
	maxNormalizedLen = 15

	// Minimum digits accepted after an explicit leading "+".
	minInternationalDigits = 7
)

// countryFormat describes the domestic dialing shape of one supported country.
// LocalLen is the domestic format length including the trunk zero (0 when the
// country has no trunk-zero format). SubscriberLen is the bare subscriber
// part, MobileLeads the digits such a bare number may start with.
type countryFormat struct {
	callingCode   string
	localLen      int
	subscriberLen int
	mobileLeads   string
}

//nolint:gochecknoglobals
var countryFormats = map[string]countryFormat{
	"BD": {"880", 11, 10, "1"},
	"IN": {"91", 11, 10, "6789"},
	"US": {"1", 0, 10, "23456789"},
	"CA": {"1", 0, 10, "23456789"},
	"UK": {"44", 11, 10, "7"},
	"AE": {"971", 10, 9, "5"},
	"SA": {"966", 10, 9, "5"},
	"PK": {"92", 11, 10, "3"},
	"AU": {"61", 10, 9, "4"},
	"SG": {"65", 0, 8, "89"},
}

//nolint:gochecknoglobals
var countryNames = map[string]string{
	"BD": "Bangladesh",
	"IN": "India",
	"US": "United States",
	"CA": "Canada",
	"UK": "United Kingdom",
	"AE": "United Arab Emirates",
	"SA": "Saudi Arabia",
	"PK": "Pakistan",
	"AU": "Australia",
	"SG": "Singapore",
}

// Normalize validates raw and rewrites it into canonical international form.
// Rules are applied in order; inputs matching none of them get a bare "+"
// prepended rather than a guessed calling code.
func Normalize(raw, countryHint string) (string, error) {
	cleaned := strip(raw)
	if cleaned == "" || cleaned == "+" {
		return "", domain.NewError(errcodes.InvalidInput, "empty number")
	}

	if strings.HasPrefix(cleaned, "+") {
		if len(cleaned)-1 < minInternationalDigits {
			return "", domain.NewError(errcodes.InvalidInput, "too short")
		}
		return checkLength(cleaned)
	}

	format, known := countryFormats[strings.ToUpper(countryHint)]
	switch {
	case known && format.localLen > 0 &&
		strings.HasPrefix(cleaned, "0") && len(cleaned) == format.localLen:
		cleaned = "+" + format.callingCode + cleaned[1:]
	case known && len(cleaned) == format.subscriberLen &&
		strings.ContainsRune(format.mobileLeads, rune(cleaned[0])):
		cleaned = "+" + format.callingCode + cleaned
	default:
		cleaned = "+" + cleaned
	}

	return checkLength(cleaned)
}

// CallingCode returns the calling code for a two-letter hint.
func CallingCode(countryHint string) (string, bool) {
	format, ok := countryFormats[strings.ToUpper(countryHint)]
	if !ok {
		return "", false
	}
	return format.callingCode, true
}

// Supported reports whether the hint is in the country table.
func Supported(countryHint string) bool {
	_, ok := countryFormats[strings.ToUpper(countryHint)]
	return ok
}

// Countries returns hint -> country name for display.
func Countries() map[string]string {
	result := make(map[string]string, len(countryNames))
	for code, name := range countryNames {
		result[code] = name
	}
	return result
}

// strip drops everything except ASCII digits, preserving one leading "+".
func strip(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	if strings.HasPrefix(strings.TrimSpace(raw), "+") {
		return "+" + digits
	}
	return digits
}

func checkLength(normalized string) (string, error) {
	if len(normalized) < minNormalizedLen || len(normalized) > maxNormalizedLen {
		return "", domain.NewError(errcodes.InvalidInput, "length out of range")
	}
	return normalized, nil
}
