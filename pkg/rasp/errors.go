package rasp

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type ErrorKind int

const (
	// KindTransport means no HTTP response was received.
	KindTransport ErrorKind = iota + 1
	// KindAPI means the API answered with a structured error.
	KindAPI
	// KindDecode means the body matched none of the recognised shapes.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

var (
	ErrTransport = errors.New("rasp: transport error")
	ErrAPI       = errors.New("rasp: api error")
	ErrDecode    = errors.New("rasp: decode error")
)

// Error is returned by every Execute call that does not produce a result.
// Exactly one Kind is set and only the fields belonging to it are populated:
//
//   - KindTransport: Err holds the transport failure.
//   - KindAPI: Status, Message, Code and Request describe the API error.
//   - KindDecode: Status, Field, Expected, Found and Body describe the mismatch,
//     Err holds the underlying decoder error when there is one.
type Error struct {
	Kind ErrorKind

	Status  int
	Message string
	Code    string
	Request string

	Field    string
	Expected string
	Found    string
	Body     string

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("rasp: transport error: %v", e.Err)
	case KindAPI:
		message := e.Message
		if message == "" {
			message = http.StatusText(e.Status)
		}
		return fmt.Sprintf("rasp: api error (HTTP %d): %s", e.Status, message)
	case KindDecode:
		var b strings.Builder
		b.WriteString("rasp: decode error")
		if e.Status != 0 {
			fmt.Fprintf(&b, " (HTTP %d)", e.Status)
		}
		if e.Field != "" {
			fmt.Fprintf(&b, " at %s", e.Field)
		}
		if e.Expected != "" || e.Found != "" {
			fmt.Fprintf(&b, ": expected %s, found %s", orUnknown(e.Expected), orUnknown(e.Found))
		} else if e.Err != nil {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
		return b.String()
	default:
		return "rasp: unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrAPI:
		return e.Kind == KindAPI
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

// AsError extracts the *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var raspErr *Error
	if errors.As(err, &raspErr) {
		return raspErr, true
	}
	return nil, false
}

func IsTransport(err error) bool { return errors.Is(err, ErrTransport) }
func IsAPI(err error) bool       { return errors.Is(err, ErrAPI) }
func IsDecode(err error) bool    { return errors.Is(err, ErrDecode) }

// newTransportError keeps the transport failure as is, apart from the request
// URL in *url.Error which would otherwise leak the API key.
func newTransportError(err error) *Error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}
	return &Error{Kind: KindTransport, Err: err}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
