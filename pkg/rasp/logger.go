package rasp

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const redacted = "REDACTED"

type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

// NewLoggingTransport wraps next so every request is logged with its status
// and latency. Client errors log at warn, server errors and failed requests
// at error, everything else at debug. The API key never reaches the log.
func NewLoggingTransport(next http.RoundTripper, logger zerolog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	resp, err := t.next.RoundTrip(req)

	requestLogger := t.logger.With().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("query", RedactQuery(req.URL.Query()).Encode()).
		Str("latency", time.Since(startTime).String()).
		Logger()

	if err != nil {
		requestLogger.Error().Err(err).Msg("Rasp API request failed")
		return resp, err
	}

	code := resp.StatusCode
	requestLogger = requestLogger.With().Int("status", code).Logger()

	switch {
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		requestLogger.Warn().Msg("Rasp API request")
	case code >= http.StatusInternalServerError:
		requestLogger.Error().Msg("Rasp API request")
	default:
		requestLogger.Debug().Msg("Rasp API request")
	}

	return resp, nil
}

// RedactQuery returns a copy of query with the API key replaced.
func RedactQuery(query url.Values) url.Values {
	redactedQuery := url.Values{}
	for key, values := range query {
		redactedQuery[key] = append([]string(nil), values...)
	}
	if redactedQuery.Has(paramAPIKey) {
		redactedQuery.Set(paramAPIKey, redacted)
	}
	return redactedQuery
}

// RedactURL replaces the API key in a URL string. Strings that do not parse
// are returned unchanged.
func RedactURL(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	if !query.Has(paramAPIKey) {
		return rawURL
	}

	parsed.RawQuery = RedactQuery(query).Encode()
	return parsed.String()
}
