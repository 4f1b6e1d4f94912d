package lookup

import (
	"bytes"
	"math"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"xlookup/internal/domain"
	"xlookup/internal/domain/entity"
	"xlookup/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	defaultCarrier    = "Unknown Carrier"
	defaultNumberType = "Unknown Type"
	defaultSpamType   = "Not Spam"
)

// The upstream response shape is not stable across service revisions: "data"
// has been observed as an array of candidates, as a single object, and as
// absent. Every field below is optional; all shape tolerance lives here.
type searchResponse struct {
	Data jsoniter.RawMessage `json:"data"`
}

type candidateRecord struct {
	Name              string            `json:"name"`
	Score             float64           `json:"score"`
	SpamScore         float64           `json:"spamScore"`
	SpamType          string            `json:"spamType"`
	Phones            []candidatePhone  `json:"phones"`
	Addresses         []candidateAddr   `json:"addresses"`
	InternetAddresses []internetAddress `json:"internetAddresses"`
}

type candidatePhone struct {
	E164Format string `json:"e164Format"`
	Carrier    string `json:"carrier"`
	Type       string `json:"type"`
}

type candidateAddr struct {
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Address     string `json:"address"`
}

type internetAddress struct {
	ID      string `json:"id"`
	Service string `json:"service"`
}

// Extract parses a raw lookup response body into one flat result tagged with
// the searched number and the extraction time. Only the first candidate is
// considered; a candidate with no identifying field at all is an error, never
// an empty success.
func Extract(body []byte, searchedNumber string, at time.Time) (*entity.LookupResult, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, domain.NewError(errcodes.EmptyResponse, "empty response from upstream")
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domain.WrapError(err, errcodes.ParseFailure, "response body is not valid JSON")
	}

	candidate, err := firstCandidate(response.Data)
	if err != nil {
		return nil, err
	}

	result := &entity.LookupResult{
		SearchedNumber:  searchedNumber,
		Name:            candidate.Name,
		ConfidenceScore: clampScore(candidate.Score),
		SpamScore:       clampScore(candidate.SpamScore),
		SpamType:        candidate.SpamType,
		Timestamp:       at,
	}

	if result.SpamType == "" {
		result.SpamType = defaultSpamType
	}

	if len(candidate.Phones) > 0 {
		phone := candidate.Phones[0]
		result.Carrier = valueOr(phone.Carrier, defaultCarrier)
		result.NumberType = valueOr(phone.Type, defaultNumberType)
	}

	if len(candidate.Addresses) > 0 {
		addr := candidate.Addresses[0]
		result.City = addr.City
		result.CountryCode = addr.CountryCode
		result.Address = addr.Address
	}

	result.Email = firstEmail(candidate.InternetAddresses)

	if !result.Informative() {
		return nil, domain.NewError(errcodes.NoIdentifiableInfo, "no identifiable information found")
	}

	return result, nil
}

// firstCandidate applies the first-match policy over the variable "data"
// shapes. Subsequent candidates are ignored.
func firstCandidate(data jsoniter.RawMessage) (*candidateRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, domain.NewError(errcodes.NoData, "no data available")
	}

	if data[0] == '[' {
		var candidates []candidateRecord
		if err := json.Unmarshal(data, &candidates); err != nil {
			return nil, domain.WrapError(err, errcodes.ParseFailure, "malformed data array")
		}
		if len(candidates) == 0 {
			return nil, domain.NewError(errcodes.NoData, "no data available")
		}
		return &candidates[0], nil
	}

	var candidate candidateRecord
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, domain.WrapError(err, errcodes.ParseFailure, "malformed data object")
	}
	return &candidate, nil
}

// firstEmail picks the first internet address that looks like an email, either
// by an "@" in the identifier or by an "email" marker in id or service.
func firstEmail(addresses []internetAddress) string {
	for _, addr := range addresses {
		if addr.ID == "" {
			continue
		}
		if strings.Contains(addr.ID, "@") ||
			strings.Contains(strings.ToLower(addr.ID), "email") ||
			strings.Contains(strings.ToLower(addr.Service), "email") {
			return addr.ID
		}
	}
	return ""
}

// Scores arrive as floats; round and clamp to 0-100 so band boundaries
// stay exact.
func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
