// Package params turns loosely typed request parameters, as they arrive from
// CLI flags or proxy query strings, into request builders. Empty strings mean
// "not set".
package params

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/travigo/rasp/pkg/rasp"
	"github.com/travigo/rasp/pkg/rasp/enums"
)

var validate = validator.New()

type Search struct {
	From           string `query:"from" validate:"required"`
	To             string `query:"to" validate:"required"`
	Date           string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	TransportType  string `query:"transport_types"`
	System         string `query:"system"`
	ShowSystems    string `query:"show_systems"`
	Language       string `query:"lang"`
	Limit          string `query:"limit" validate:"omitempty,number"`
	Offset         string `query:"offset" validate:"omitempty,number"`
	AddDaysMask    string `query:"add_days_mask" validate:"omitempty,boolean"`
	Transfers      string `query:"transfers" validate:"omitempty,boolean"`
	ResultTimezone string `query:"result_timezone" validate:"omitempty,timezone"`
}

type Schedule struct {
	Station        string `query:"station" validate:"required"`
	Date           string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	TransportType  string `query:"transport_types"`
	Direction      string `query:"direction"`
	Event          string `query:"event"`
	System         string `query:"system"`
	ShowSystems    string `query:"show_systems"`
	Language       string `query:"lang"`
	Limit          string `query:"limit" validate:"omitempty,number"`
	Offset         string `query:"offset" validate:"omitempty,number"`
	ResultTimezone string `query:"result_timezone" validate:"omitempty,timezone"`
}

type StationsList struct {
	Language string `query:"lang"`
}

// Error reports a parameter that could not be turned into a request.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid parameters: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	return &Error{Err: err}
}

func (p Search) Request(client *rasp.Client) (rasp.SearchRequest, error) {
	request := client.Search(p.From, p.To)

	if err := validate.Struct(p); err != nil {
		return request, invalid(err)
	}

	var err error
	if p.Date != "" {
		request = request.Date(parseDate(p.Date))
	}
	if request, err = apply(request, p.TransportType, enums.ParseTransportType, rasp.SearchRequest.TransportType); err != nil {
		return request, err
	}
	if request, err = apply(request, p.System, enums.ParseSystem, rasp.SearchRequest.System); err != nil {
		return request, err
	}
	if request, err = apply(request, p.ShowSystems, enums.ParseShowSystems, rasp.SearchRequest.ShowSystems); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Language, enums.ParseLanguage, rasp.SearchRequest.Language); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Limit, strconv.Atoi, rasp.SearchRequest.Limit); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Offset, strconv.Atoi, rasp.SearchRequest.Offset); err != nil {
		return request, err
	}
	if request, err = apply(request, p.AddDaysMask, strconv.ParseBool, rasp.SearchRequest.AddDaysMask); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Transfers, strconv.ParseBool, rasp.SearchRequest.Transfers); err != nil {
		return request, err
	}
	if request, err = apply(request, p.ResultTimezone, time.LoadLocation, rasp.SearchRequest.ResultTimezone); err != nil {
		return request, err
	}

	return request, nil
}

func (p Schedule) Request(client *rasp.Client) (rasp.ScheduleRequest, error) {
	request := client.Schedule(p.Station)

	if err := validate.Struct(p); err != nil {
		return request, invalid(err)
	}

	var err error
	if p.Date != "" {
		request = request.Date(parseDate(p.Date))
	}
	if p.Direction != "" {
		request = request.Direction(p.Direction)
	}
	if request, err = apply(request, p.TransportType, enums.ParseTransportType, rasp.ScheduleRequest.TransportType); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Event, enums.ParseEvent, rasp.ScheduleRequest.Event); err != nil {
		return request, err
	}
	if request, err = apply(request, p.System, enums.ParseSystem, rasp.ScheduleRequest.System); err != nil {
		return request, err
	}
	if request, err = apply(request, p.ShowSystems, enums.ParseShowSystems, rasp.ScheduleRequest.ShowSystems); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Language, enums.ParseLanguage, rasp.ScheduleRequest.Language); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Limit, strconv.Atoi, rasp.ScheduleRequest.Limit); err != nil {
		return request, err
	}
	if request, err = apply(request, p.Offset, strconv.Atoi, rasp.ScheduleRequest.Offset); err != nil {
		return request, err
	}
	if request, err = apply(request, p.ResultTimezone, time.LoadLocation, rasp.ScheduleRequest.ResultTimezone); err != nil {
		return request, err
	}

	return request, nil
}

func (p StationsList) Request(client *rasp.Client) (rasp.StationsListRequest, error) {
	request := client.StationsList()

	return apply(request, p.Language, enums.ParseLanguage, rasp.StationsListRequest.Language)
}

// apply parses value and hands it to setter. Empty values leave the request
// untouched.
func apply[R any, T any](request R, value string, parse func(string) (T, error), setter func(R, T) R) (R, error) {
	if value == "" {
		return request, nil
	}

	parsed, err := parse(value)
	if err != nil {
		return request, invalid(err)
	}
	return setter(request, parsed), nil
}

// parseDate expects a value that already passed validation.
func parseDate(value string) time.Time {
	date, _ := time.Parse(rasp.DateLayout, value)
	return date
}
