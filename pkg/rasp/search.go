package rasp

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/travigo/rasp/pkg/rasp/enums"
)

const searchPath = "search/"

// SearchRequest builds a station to station search. Setters return a modified
// copy and leave the receiver untouched. Setting the same parameter twice
// keeps the last value.
type SearchRequest struct {
	client Client
	from   string
	to     string

	date           optional[time.Time]
	transportType  optional[enums.TransportType]
	system         optional[enums.System]
	showSystems    optional[enums.ShowSystems]
	language       optional[enums.Language]
	format         optional[enums.Format]
	limit          optional[int]
	offset         optional[int]
	addDaysMask    optional[bool]
	transfers      optional[bool]
	resultTimezone optional[*time.Location]
}

func newSearchRequest(client Client, from string, to string) SearchRequest {
	return SearchRequest{client: client, from: from, to: to}
}

// Date limits the search to one day, in the date's own location.
func (r SearchRequest) Date(date time.Time) SearchRequest {
	r.date = some(date)
	return r
}

func (r SearchRequest) TransportType(transportType enums.TransportType) SearchRequest {
	r.transportType = some(transportType)
	return r
}

// System sets the coding system the from and to codes are written in.
func (r SearchRequest) System(system enums.System) SearchRequest {
	r.system = some(system)
	return r
}

func (r SearchRequest) ShowSystems(showSystems enums.ShowSystems) SearchRequest {
	r.showSystems = some(showSystems)
	return r
}

func (r SearchRequest) Language(language enums.Language) SearchRequest {
	r.language = some(language)
	return r
}

func (r SearchRequest) Format(format enums.Format) SearchRequest {
	r.format = some(format)
	return r
}

func (r SearchRequest) Limit(limit int) SearchRequest {
	r.limit = some(limit)
	return r
}

func (r SearchRequest) Offset(offset int) SearchRequest {
	r.offset = some(offset)
	return r
}

// AddDaysMask asks the API to include the days each thread runs on.
func (r SearchRequest) AddDaysMask(addDaysMask bool) SearchRequest {
	r.addDaysMask = some(addDaysMask)
	return r
}

// Transfers allows journeys with changes in the results.
func (r SearchRequest) Transfers(transfers bool) SearchRequest {
	r.transfers = some(transfers)
	return r
}

// ResultTimezone makes the API render times in the given zone instead of each
// station's local time.
func (r SearchRequest) ResultTimezone(location *time.Location) SearchRequest {
	r.resultTimezone = some(location)
	return r
}

// Query returns the parameters the request will send, without the API key.
func (r SearchRequest) Query() url.Values {
	query := url.Values{}
	query.Set(paramFrom, r.from)
	query.Set(paramTo, r.to)

	encode(query, paramDate, r.date, formatDate)
	encode(query, paramTransportTypes, r.transportType, formatString[enums.TransportType])
	encode(query, paramSystem, r.system, formatString[enums.System])
	encode(query, paramShowSystems, r.showSystems, formatString[enums.ShowSystems])
	encode(query, paramLanguage, r.language, formatString[enums.Language])
	encode(query, paramFormat, r.format, formatString[enums.Format])
	encode(query, paramLimit, r.limit, strconv.Itoa)
	encode(query, paramOffset, r.offset, strconv.Itoa)
	encode(query, paramAddDaysMask, r.addDaysMask, strconv.FormatBool)
	encode(query, paramTransfers, r.transfers, strconv.FormatBool)
	encode(query, paramResultTimezone, r.resultTimezone, formatTimezone)

	return query
}

func (r SearchRequest) Execute(ctx context.Context) (*SearchResult, error) {
	status, body, err := r.client.get(ctx, searchPath, r.Query())
	if err != nil {
		return nil, err
	}
	return decodeResponse[SearchResult](status, body)
}

// ExecuteRaw performs the request and returns the body of a successful
// response without decoding it, for use with enums.FormatXML.
func (r SearchRequest) ExecuteRaw(ctx context.Context) ([]byte, error) {
	return r.client.getRaw(ctx, searchPath, r.Query())
}
