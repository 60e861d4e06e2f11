package rasp

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/travigo/rasp/pkg/rasp/enums"
)

const schedulePath = "schedule/"

// DirectionAll is the direction code for every direction of a suburban
// station.
const DirectionAll = "all"

// ScheduleRequest builds a request for one station's schedule. Like
// SearchRequest, setters return a copy and the last value set wins.
type ScheduleRequest struct {
	client  Client
	station string

	date           optional[time.Time]
	transportType  optional[enums.TransportType]
	direction      optional[string]
	language       optional[enums.Language]
	format         optional[enums.Format]
	system         optional[enums.System]
	showSystems    optional[enums.ShowSystems]
	event          optional[enums.Event]
	resultTimezone optional[*time.Location]
	limit          optional[int]
	offset         optional[int]
}

func newScheduleRequest(client Client, station string) ScheduleRequest {
	return ScheduleRequest{client: client, station: station}
}

func (r ScheduleRequest) Date(date time.Time) ScheduleRequest {
	r.date = some(date)
	return r
}

func (r ScheduleRequest) TransportType(transportType enums.TransportType) ScheduleRequest {
	r.transportType = some(transportType)
	return r
}

// Direction filters suburban schedules by a direction code taken from
// ScheduleResult.Directions, or DirectionAll.
func (r ScheduleRequest) Direction(direction string) ScheduleRequest {
	r.direction = some(direction)
	return r
}

func (r ScheduleRequest) Language(language enums.Language) ScheduleRequest {
	r.language = some(language)
	return r
}

func (r ScheduleRequest) Format(format enums.Format) ScheduleRequest {
	r.format = some(format)
	return r
}

func (r ScheduleRequest) System(system enums.System) ScheduleRequest {
	r.system = some(system)
	return r
}

func (r ScheduleRequest) ShowSystems(showSystems enums.ShowSystems) ScheduleRequest {
	r.showSystems = some(showSystems)
	return r
}

func (r ScheduleRequest) Event(event enums.Event) ScheduleRequest {
	r.event = some(event)
	return r
}

func (r ScheduleRequest) ResultTimezone(location *time.Location) ScheduleRequest {
	r.resultTimezone = some(location)
	return r
}

func (r ScheduleRequest) Limit(limit int) ScheduleRequest {
	r.limit = some(limit)
	return r
}

func (r ScheduleRequest) Offset(offset int) ScheduleRequest {
	r.offset = some(offset)
	return r
}

// Station returns the station code the request was built for.
func (r ScheduleRequest) Station() string {
	return r.station
}

func (r ScheduleRequest) Query() url.Values {
	query := url.Values{}
	query.Set(paramStation, r.station)

	encode(query, paramDate, r.date, formatDate)
	encode(query, paramTransportTypes, r.transportType, formatString[enums.TransportType])
	encode(query, paramDirection, r.direction, formatString[string])
	encode(query, paramLanguage, r.language, formatString[enums.Language])
	encode(query, paramFormat, r.format, formatString[enums.Format])
	encode(query, paramSystem, r.system, formatString[enums.System])
	encode(query, paramShowSystems, r.showSystems, formatString[enums.ShowSystems])
	encode(query, paramEvent, r.event, formatString[enums.Event])
	encode(query, paramResultTimezone, r.resultTimezone, formatTimezone)
	encode(query, paramLimit, r.limit, strconv.Itoa)
	encode(query, paramOffset, r.offset, strconv.Itoa)

	return query
}

func (r ScheduleRequest) Execute(ctx context.Context) (*ScheduleResult, error) {
	status, body, err := r.client.get(ctx, schedulePath, r.Query())
	if err != nil {
		return nil, err
	}
	return decodeResponse[ScheduleResult](status, body)
}

func (r ScheduleRequest) ExecuteRaw(ctx context.Context) ([]byte, error) {
	return r.client.getRaw(ctx, schedulePath, r.Query())
}
