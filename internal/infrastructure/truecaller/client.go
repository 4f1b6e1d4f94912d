// Package truecaller is the real Transport implementation over the
// caller-identification HTTP API.
package truecaller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"xlookup/internal/config"
	"xlookup/internal/domain/service/lookup"
	"xlookup/pkg/httpx"
	"xlookup/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const maxResponseBody = 1 << 20

type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient builds the HTTP client used for all endpoints. Bearer auth and
// request/response logging (with the credential and personal fields masked)
// are layered as round trippers.
func NewClient(cfg config.Truecaller) *Client {
	transport := httpx.NewLoggingRoundTripper(
		httpx.NewAuthBearerRoundTripper(
			http.DefaultTransport,
			staticAuthenticator{token: cfg.AuthToken},
		),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
	)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		userAgent: cfg.UserAgent,
	}
}

// Send posts one search request and returns the raw reply. Status
// interpretation belongs to the orchestrator, not here.
func (c *Client) Send(
	ctx context.Context,
	endpoint string,
	request lookup.SearchRequest,
) (*lookup.Response, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return &lookup.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// staticAuthenticator serves a pre-issued client credential; there is no
// refresh flow for it.
type staticAuthenticator struct {
	token string
}

func (a staticAuthenticator) Authenticate(context.Context) error {
	return nil
}

func (a staticAuthenticator) BearerToken() string {
	return a.token
}
