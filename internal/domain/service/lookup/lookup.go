// Package lookup orchestrates a single number lookup: normalization, the
// outbound search request with endpoint fallback, and response extraction.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"

	"xlookup/internal/domain"
	"xlookup/internal/domain/entity"
	"xlookup/internal/domain/service/phonenum"
	"xlookup/pkg/contextx"
	"xlookup/pkg/errcodes"
	"xlookup/pkg/logx"
)

const (
	searchType      = "4"
	searchPlacement = "SEARCHRESULTS,HISTORY,DETAILS"
	searchEncoding  = "json"

	defaultCacheTTL = 5 * time.Minute
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// SearchRequest is the outbound payload. The upstream contract is not stable;
// the transport may extend headers but not reinterpret these fields.
type SearchRequest struct {
	Query       string `json:"q"`
	CountryCode string `json:"countryCode"`
	Type        string `json:"type"`
	Placement   string `json:"placement"`
	Encoding    string `json:"encoding"`
}

// Response is a raw upstream reply: status plus undecoded body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends one search request to one endpoint. A mock transport and
// the real HTTP client are interchangeable implementations.
type Transport interface {
	Send(ctx context.Context, endpoint string, request SearchRequest) (*Response, error)
}

type Service struct {
	transport      Transport
	endpoints      []string
	defaultCountry string
	results        *cache.Cache
	now            func() time.Time
}

// NewService builds an orchestrator over transport and an ordered endpoint
// list, primary first.
func NewService(transport Transport, endpoints []string, defaultCountry string) *Service {
	return &Service{
		transport:      transport,
		endpoints:      endpoints,
		defaultCountry: defaultCountry,
		results:        cache.New(defaultCacheTTL, 2*defaultCacheTTL),
		now:            time.Now,
	}
}

func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	s.results = cache.New(ttl, 2*ttl)
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) DefaultCountry() string {
	return s.defaultCountry
}

// Lookup normalizes raw, queries the upstream and extracts one flat result.
// Normalization errors propagate unchanged. Endpoints are tried in order on
// transport failure only; the first HTTP response, whatever its status, ends
// the fallback loop. Terminal outcomes are never retried here.
func (s *Service) Lookup(ctx context.Context, raw, countryHint string) (*entity.LookupResult, error) {
	if countryHint == "" {
		countryHint = s.defaultCountry
	}

	normalized, err := phonenum.Normalize(raw, countryHint)
	if err != nil {
		return nil, err
	}

	if cached, found := s.results.Get(normalized); found {
		result := *cached.(*entity.LookupResult)
		return &result, nil
	}

	request := SearchRequest{
		Query:       normalized,
		CountryCode: countryHint,
		Type:        searchType,
		Placement:   searchPlacement,
		Encoding:    searchEncoding,
	}

	response, endpoint, err := s.send(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := mapStatus(response.StatusCode); err != nil {
		return nil, err
	}

	result, err := Extract(response.Body, normalized, s.now())
	if err != nil {
		return nil, err
	}

	result.Source = endpointHost(endpoint)
	s.results.SetDefault(normalized, result)

	resultCopy := *result
	return &resultCopy, nil
}

// CheckReachability probes the primary endpoint. Any HTTP response counts as
// reachable; only transport-level failure does not.
func (s *Service) CheckReachability(ctx context.Context) error {
	if len(s.endpoints) == 0 {
		return domain.NewError(errcodes.Unreachable, "no endpoints configured")
	}

	request := SearchRequest{
		Query:       "+1234567890",
		CountryCode: s.defaultCountry,
		Type:        searchType,
		Placement:   searchPlacement,
		Encoding:    searchEncoding,
	}

	if _, err := s.transport.Send(ctx, s.endpoints[0], request); err != nil {
		return domain.WrapError(err, errcodes.Unreachable, "upstream is not reachable")
	}

	return nil
}

func (s *Service) send(ctx context.Context, request SearchRequest) (*Response, string, error) {
	var lastErr error

	for _, endpoint := range s.endpoints {
		if ctx.Err() != nil {
			return nil, "", domain.WrapError(ctx.Err(), errcodes.Unreachable, "lookup cancelled")
		}

		response, err := s.transport.Send(ctx, endpoint, request)
		if err != nil {
			lastErr = err
			logger(ctx).Warn("endpoint failed, trying next",
				logx.Error(err),
				slog.String(logx.FieldEndpoint, endpoint),
			)
			continue
		}

		return response, endpoint, nil
	}

	if lastErr == nil {
		return nil, "", domain.NewError(errcodes.Unreachable, "no endpoints configured")
	}

	return nil, "", domain.WrapError(lastErr, errcodes.Unreachable, "all endpoints unreachable")
}

func mapStatus(statusCode int) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusNotFound:
		return domain.NewError(errcodes.NumberNotFound, "number not found")
	case statusCode == http.StatusTooManyRequests:
		return domain.NewError(errcodes.RateLimited, "rate limited by upstream")
	default:
		return domain.NewError(errcodes.UpstreamError, fmt.Sprintf("upstream returned status %d", statusCode))
	}
}

func endpointHost(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Host == "" {
		return endpoint
	}
	return parsed.Host
}
