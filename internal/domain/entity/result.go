package entity

import "time"

// LookupResult is one flat record per searched number. Every upstream field is
// optional; a result with none of name/carrier/city/email never leaves the
// extractor as a success.
type LookupResult struct {
	SearchedNumber  string    `json:"searched_number"`
	Name            string    `json:"name,omitempty"`
	Carrier         string    `json:"carrier,omitempty"`
	NumberType      string    `json:"number_type,omitempty"`
	City            string    `json:"city,omitempty"`
	CountryCode     string    `json:"country_code,omitempty"`
	Address         string    `json:"address,omitempty"`
	Email           string    `json:"email,omitempty"`
	ConfidenceScore int       `json:"confidence_score"`
	SpamScore       int       `json:"spam_score"`
	SpamType        string    `json:"spam_type,omitempty"`
	Source          string    `json:"source,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// Informative reports whether the record carries at least one identifying
// field.
func (r LookupResult) Informative() bool {
	return r.Name != "" || r.Carrier != "" || r.City != "" || r.Email != ""
}
