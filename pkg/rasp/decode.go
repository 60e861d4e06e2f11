package rasp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/travigo/rasp/pkg/rasp/enums"
	"github.com/travigo/rasp/pkg/util"
)

const maxErrorBodyLength = 512

type errorEnvelope struct {
	Error *errorPayload `json:"error"`
}

type errorPayload struct {
	Text      string `json:"text"`
	HTTPCode  int    `json:"http_code"`
	ErrorCode string `json:"error_code"`
	Request   string `json:"request"`
}

// validatable is implemented by result types that have fields the API always
// sends. It returns the path of the first missing one.
type validatable interface {
	missingField() string
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// decodeResponse turns a status and body into a typed result or an *Error.
// A 2xx body is checked for an embedded error envelope before it is decoded
// as T, the API answers some invalid requests that way.
func decodeResponse[T any](status int, body []byte) (*T, error) {
	if !isSuccess(status) {
		return nil, decodeErrorResponse(status, body)
	}

	if apiErr := embeddedError(status, body); apiErr != nil {
		return nil, apiErr
	}

	result := new(T)
	if err := json.Unmarshal(body, result); err != nil {
		return nil, classifyDecodeError(status, body, err)
	}

	if v, ok := any(result).(validatable); ok {
		if field := v.missingField(); field != "" {
			return nil, &Error{
				Kind:     KindDecode,
				Status:   status,
				Field:    field,
				Expected: "required field",
				Found:    "nothing",
				Body:     util.TrimString(string(body), maxErrorBodyLength),
			}
		}
	}

	return result, nil
}

func decodeErrorResponse(status int, body []byte) *Error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		if err == nil {
			err = errors.New("no error object in body")
		}
		return &Error{
			Kind:   KindDecode,
			Status: status,
			Body:   util.TrimString(string(body), maxErrorBodyLength),
			Err:    fmt.Errorf("unparseable error body: %w", err),
		}
	}

	return newAPIError(status, envelope.Error)
}

func embeddedError(status int, body []byte) *Error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil
	}

	raw, ok := probe["error"]
	raw = bytes.TrimSpace(raw)
	if !ok || len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	if payload.HTTPCode != 0 {
		status = payload.HTTPCode
	}

	return newAPIError(status, &payload)
}

func newAPIError(status int, payload *errorPayload) *Error {
	return &Error{
		Kind:    KindAPI,
		Status:  status,
		Message: payload.Text,
		Code:    payload.ErrorCode,
		Request: RedactURL(payload.Request),
	}
}

func classifyDecodeError(status int, body []byte, err error) *Error {
	decodeErr := &Error{
		Kind:   KindDecode,
		Status: status,
		Body:   util.TrimString(string(body), maxErrorBodyLength),
		Err:    err,
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var variantErr *enums.UnknownVariantError

	switch {
	case len(bytes.TrimSpace(body)) == 0:
		decodeErr.Expected = "JSON document"
		decodeErr.Found = "empty body"
	case errors.As(err, &typeErr):
		decodeErr.Field = typeErr.Field
		decodeErr.Expected = typeErr.Type.String()
		decodeErr.Found = typeErr.Value
	case errors.As(err, &variantErr):
		decodeErr.Expected = variantErr.Enum
		decodeErr.Found = fmt.Sprintf("%q", variantErr.Value)
	case errors.As(err, &syntaxErr):
		decodeErr.Expected = "JSON document"
		decodeErr.Found = fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	}

	return decodeErr
}
