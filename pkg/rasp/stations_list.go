package rasp

import (
	"context"
	"net/url"
	"strconv"

	"github.com/travigo/rasp/pkg/rasp/enums"
)

const stationsListPath = "stations_list/"

// StationsListRequest builds a request for the complete station tree. The
// document is large (tens of megabytes), callers usually fetch it once.
type StationsListRequest struct {
	client Client

	language      optional[enums.Language]
	format        optional[enums.Format]
	forceDownload optional[bool]
}

func newStationsListRequest(client Client) StationsListRequest {
	return StationsListRequest{client: client}
}

func (r StationsListRequest) Language(language enums.Language) StationsListRequest {
	r.language = some(language)
	return r
}

func (r StationsListRequest) Format(format enums.Format) StationsListRequest {
	r.format = some(format)
	return r
}

func (r StationsListRequest) ForceDownload(forceDownload bool) StationsListRequest {
	r.forceDownload = some(forceDownload)
	return r
}

func (r StationsListRequest) Query() url.Values {
	query := url.Values{}

	encode(query, paramLanguage, r.language, formatString[enums.Language])
	encode(query, paramFormat, r.format, formatString[enums.Format])
	encode(query, paramForceDownload, r.forceDownload, strconv.FormatBool)

	return query
}

func (r StationsListRequest) Execute(ctx context.Context) (*StationsList, error) {
	status, body, err := r.client.get(ctx, stationsListPath, r.Query())
	if err != nil {
		return nil, err
	}
	return decodeResponse[StationsList](status, body)
}

func (r StationsListRequest) ExecuteRaw(ctx context.Context) ([]byte, error) {
	return r.client.getRaw(ctx, stationsListPath, r.Query())
}
