package rasp

import (
	"net/url"
	"time"
)

// Wire names of every query parameter the client sends.
const (
	paramAPIKey         = "apikey"
	paramFrom           = "from"
	paramTo             = "to"
	paramStation        = "station"
	paramDate           = "date"
	paramTransportTypes = "transport_types"
	paramSystem         = "system"
	paramShowSystems    = "show_systems"
	paramLanguage       = "lang"
	paramFormat         = "format"
	paramLimit          = "limit"
	paramOffset         = "offset"
	paramAddDaysMask    = "add_days_mask"
	paramTransfers      = "transfers"
	paramResultTimezone = "result_timezone"
	paramDirection      = "direction"
	paramEvent          = "event"
	paramForceDownload  = "force_download"
)

// DateLayout is the format of every date the API accepts.
const DateLayout = "2006-01-02"

// optional is a parameter that is either unset or holds one value. Builders
// copy it by value, so forked builders never share state.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](value T) optional[T] {
	return optional[T]{value: value, set: true}
}

func encode[T any](query url.Values, name string, o optional[T], format func(T) string) {
	if o.set {
		query.Set(name, format(o.value))
	}
}

func formatString[T ~string](value T) string {
	return string(value)
}

func formatDate(value time.Time) string {
	return value.Format(DateLayout)
}

func formatTimezone(value *time.Location) string {
	return value.String()
}
