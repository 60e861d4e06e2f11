// Package rasp is a typed client for the Yandex Rasp transit schedule API.
//
// A Client hands out request builders. Each builder collects optional
// parameters through chained setters and performs a single GET request when
// Execute is called:
//
//	client := rasp.NewClient(apiKey)
//	result, err := client.Search("s9600213", "s2000006").
//		Date(time.Now()).
//		TransportType(enums.TransportTypeSuburban).
//		Execute(ctx)
//
// Failures are always returned as *Error, see ErrorKind for the categories.
package rasp

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL   = "https://api.rasp.yandex.net/v3.0/"
	DefaultUserAgent = "travigo-rasp/1.0"
)

// Doer sends one HTTP request. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client holds the API key and the transport shared by every request built
// from it. It is never modified after NewClient returns, so it is safe to
// copy and to use from multiple goroutines.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient Doer
}

type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	userAgent  string
	httpClient Doer
	logger     *zerolog.Logger
}

// WithHTTPClient replaces the default transport. Timeouts configured on it are
// the only timeouts applied to requests.
func WithHTTPClient(httpClient Doer) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used by the default transport. It has no effect
// together with WithHTTPClient.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = &logger
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	options := clientOptions{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.httpClient == nil {
		logger := log.Logger
		if options.logger != nil {
			logger = *options.logger
		}
		options.httpClient = &http.Client{
			Transport: NewLoggingTransport(http.DefaultTransport, logger),
		}
	}

	if !strings.HasSuffix(options.baseURL, "/") {
		options.baseURL += "/"
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    options.baseURL,
		userAgent:  options.userAgent,
		httpClient: options.httpClient,
	}
}

// Search returns a builder for a station to station search.
// API docs: https://yandex.ru/dev/rasp/doc/ru/reference/schedule-point-point
func (c *Client) Search(from string, to string) SearchRequest {
	return newSearchRequest(*c, from, to)
}

// Schedule returns a builder for the schedule of a single station.
// API docs: https://yandex.ru/dev/rasp/doc/ru/reference/schedule-on-station
func (c *Client) Schedule(station string) ScheduleRequest {
	return newScheduleRequest(*c, station)
}

// StationsList returns a builder for the list of every station known to the
// API. Use StationsList.FindStations on the result to look codes up by name.
// API docs: https://yandex.ru/dev/rasp/doc/ru/reference/stations-list
func (c *Client) StationsList() StationsListRequest {
	return newStationsListRequest(*c)
}

// get issues one GET request for path with the given query plus the API key
// and returns the status and the full body.
func (c Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return 0, nil, newTransportError(err)
	}

	values := url.Values{}
	for key, value := range query {
		values[key] = append([]string(nil), value...)
	}
	values.Set(paramAPIKey, c.apiKey)
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, nil, newTransportError(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, newTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, newTransportError(err)
	}

	return resp.StatusCode, body, nil
}

// getRaw is get for callers that want the body untouched. Non-2xx responses
// are still classified.
func (c Client) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	status, body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, decodeErrorResponse(status, body)
	}
	return body, nil
}
