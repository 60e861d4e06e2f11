package rasp

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travigo/rasp/pkg/rasp/enums"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func requireKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()

	require.Error(t, err)
	raspErr, ok := AsError(err)
	require.True(t, ok, "expected *rasp.Error, got %T: %v", err, err)
	require.Equal(t, kind, raspErr.Kind, "unexpected kind for %v", err)
	return raspErr
}

func TestDecodeSearch(t *testing.T) {
	result, err := decodeResponse[SearchResult](200, readFixture(t, "search.json"))
	require.NoError(t, err)

	require.Len(t, result.Segments, 3)
	assert.Equal(t, "6112x6111_0_9600213_g24_4", result.Segments[0].Thread.UID)
	assert.Equal(t, "7000_0_2000002_g24_4", result.Segments[1].Thread.UID)
	assert.Equal(t, "SU-1402_240501_c26_12", result.Segments[2].Thread.UID)

	first := result.Segments[0]
	assert.Equal(t, enums.TransportTypeSuburban, first.Thread.TransportType)
	assert.Equal(t, 153, first.Thread.Carrier.Code)
	assert.Equal(t, "s2000002", first.From.Code)
	assert.Equal(t, "s9600213", first.To.Code)
	assert.Equal(t, 1560.0, first.Duration)
	assert.Equal(t, "везде", first.Stops)
	assert.Equal(t, "2024-05-01T05:42:00+03:00", first.Departure)
	assert.Equal(t, "", first.DepartureTerminal)

	departure, err := first.DepartureTime()
	require.NoError(t, err)
	assert.Equal(t, 5, departure.Hour())
	assert.Equal(t, 42, departure.Minute())
	assert.Equal(t, "26m0s", first.DurationValue().String())

	second := result.Segments[1]
	assert.Nil(t, second.Thread.Carrier)
	assert.Equal(t, "#FF7F44", second.Thread.TransportSubtype.Color)
	cheapest, ok := second.MinPrice()
	require.True(t, ok)
	assert.Equal(t, 95, cheapest.Price.Whole)
	assert.Equal(t, "стандарт", cheapest.Name)

	third := result.Segments[2]
	assert.Equal(t, enums.TransportTypePlane, third.Thread.TransportType)
	assert.Equal(t, "SU", third.Thread.Carrier.Codes.IATA)
	assert.Equal(t, "B", third.DepartureTerminal)
	_, ok = third.MinPrice()
	assert.False(t, ok)

	assert.Equal(t, 3, result.Pagination.Total)
	assert.Equal(t, "2024-05-01", result.Search.Date)
	assert.NotNil(t, result.IntervalSegments)
	assert.Empty(t, result.IntervalSegments)
}

func TestDecodeSchedule(t *testing.T) {
	result, err := decodeResponse[ScheduleResult](200, readFixture(t, "schedule.json"))
	require.NoError(t, err)

	assert.Equal(t, "s9600213", result.Station.Code)
	assert.Equal(t, enums.EventDeparture, result.Event)
	assert.Equal(t, "all", result.ScheduleDirection.Code)
	require.Len(t, result.Directions, 2)
	assert.Equal(t, "на Москву", result.Directions[1].Code)

	require.Len(t, result.Schedule, 2)
	assert.Equal(t, "2", result.Schedule[0].Platform)
	assert.Equal(t, "", result.Schedule[1].Arrival)
	assert.True(t, result.Schedule[1].IsFuzzy)

	_, err = result.Schedule[1].ArrivalTime()
	assert.Error(t, err)
}

func TestDecodeStationsList(t *testing.T) {
	result, err := decodeResponse[StationsList](200, readFixture(t, "stations_list.json"))
	require.NoError(t, err)

	assert.Equal(t, 7, result.CountStations())

	stations := result.Stations()
	require.Len(t, stations, 7)
	assert.Equal(t, "s2000002", stations[0].Codes.YandexCode)
	assert.Equal(t, "Москва", stations[0].Settlement)
	assert.Equal(t, "Россия", stations[0].Country)

	assert.Equal(t, Coordinate{Value: 55.776, Valid: true}, stations[0].Latitude)
	assert.Equal(t, Coordinate{Value: 55.966324, Valid: true}, stations[1].Latitude)
	assert.False(t, stations[2].Latitude.Valid)
	assert.False(t, stations[2].Longitude.Valid)
	assert.False(t, stations[6].Latitude.Valid)
	assert.Equal(t, "sea", stations[6].TransportType)
}

func TestDecodeNonSuccessWithEnvelope(t *testing.T) {
	body := []byte(`{"error": {"text": "Не нашли объект по yandex коду s000", "http_code": 404, "error_code": "point_not_found", "request": "https://api.rasp.yandex.net/v3.0/search/?apikey=SECRET&from=s000&to=s2000006"}}`)

	result, err := decodeResponse[SearchResult](404, body)
	assert.Nil(t, result)

	raspErr := requireKind(t, err, KindAPI)
	assert.True(t, errors.Is(err, ErrAPI))
	assert.Equal(t, 404, raspErr.Status)
	assert.Equal(t, "Не нашли объект по yandex коду s000", raspErr.Message)
	assert.Equal(t, "point_not_found", raspErr.Code)
	assert.NotContains(t, raspErr.Request, "SECRET")
	assert.Contains(t, raspErr.Request, "from=s000")
	assert.Contains(t, raspErr.Error(), "HTTP 404")
}

func TestDecodeNonSuccessUnrecognised(t *testing.T) {
	for name, body := range map[string]string{
		"html":        "<html><body>502 Bad Gateway</body></html>",
		"other json":  `{"message": "internal"}`,
		"null error":  `{"error": null}`,
		"empty body":  "",
		"json string": `"error"`,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := decodeResponse[SearchResult](502, []byte(body))
			assert.Nil(t, result)

			raspErr := requireKind(t, err, KindDecode)
			assert.True(t, errors.Is(err, ErrDecode))
			assert.Equal(t, 502, raspErr.Status)
			assert.Contains(t, raspErr.Error(), "unparseable error body")
		})
	}
}

func TestDecodeEmbeddedErrorInSuccess(t *testing.T) {
	body := []byte(`{"error": {"text": "Invalid API key", "http_code": 401, "error_code": "invalid_key"}}`)

	result, err := decodeResponse[ScheduleResult](200, body)
	assert.Nil(t, result)

	raspErr := requireKind(t, err, KindAPI)
	assert.Equal(t, 401, raspErr.Status)
	assert.Equal(t, "Invalid API key", raspErr.Message)
}

func TestDecodeEmbeddedErrorKeepsStatusWithoutCode(t *testing.T) {
	result, err := decodeResponse[StationsList](200, []byte(`{"error": {"text": "bad lang"}}`))
	assert.Nil(t, result)

	raspErr := requireKind(t, err, KindAPI)
	assert.Equal(t, 200, raspErr.Status)
	assert.Equal(t, "bad lang", raspErr.Message)
}

func TestDecodeNullErrorIsNotAnError(t *testing.T) {
	result, err := decodeResponse[SearchResult](200, []byte(`{"error": null, "segments": []}`))
	require.NoError(t, err)
	assert.Empty(t, result.Segments)
}

func TestDecodeMissingRequiredField(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"no segments":        {`{"search": {"date": null}, "pagination": {"total": 0}}`, "segments"},
		"segment no thread":  {`{"segments": [{"from": {"code": "a"}, "to": {"code": "b"}}]}`, "segments[0].thread"},
		"segment no to code": {`{"segments": [{"thread": {"uid": "u"}, "from": {"code": "a"}, "to": {"title": "b"}}]}`, "segments[0].to.code"},
		"transfer segment": {`{"segments": [{"thread": {"uid": "u"}, "from": {"code": "a"}, "to": {"code": "b"}}, {"has_transfers": true, "departure_from": {"code": "a"}}]}`, "segments[1].arrival_to"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := decodeResponse[SearchResult](200, []byte(tc.body))
			assert.Nil(t, result)

			raspErr := requireKind(t, err, KindDecode)
			assert.Equal(t, tc.field, raspErr.Field)
		})
	}

	result, err := decodeResponse[ScheduleResult](200, []byte(`{"schedule": []}`))
	assert.Nil(t, result)
	assert.Equal(t, "station", requireKind(t, err, KindDecode).Field)

	stations, err := decodeResponse[StationsList](200, []byte(`{}`))
	assert.Nil(t, stations)
	assert.Equal(t, "countries", requireKind(t, err, KindDecode).Field)
}

func TestDecodeTypeMismatch(t *testing.T) {
	body := []byte(`{"segments": [{"thread": {"uid": "u"}, "from": {"code": "a"}, "to": {"code": "b"}, "duration": "long"}]}`)

	result, err := decodeResponse[SearchResult](200, body)
	assert.Nil(t, result)

	raspErr := requireKind(t, err, KindDecode)
	assert.Contains(t, raspErr.Field, "duration")
	assert.Equal(t, "float64", raspErr.Expected)
	assert.Equal(t, "string", raspErr.Found)
	assert.Contains(t, raspErr.Error(), "expected float64, found string")
}

func TestDecodeUnknownEnumToken(t *testing.T) {
	body := []byte(`{"segments": [{"thread": {"uid": "u", "transport_type": "rocket"}, "from": {"code": "a"}, "to": {"code": "b"}}]}`)

	_, err := decodeResponse[SearchResult](200, body)

	raspErr := requireKind(t, err, KindDecode)
	assert.Equal(t, "transport type", raspErr.Expected)
	assert.Equal(t, `"rocket"`, raspErr.Found)
	assert.True(t, errors.Is(err, enums.ErrUnknownVariant))
}

func TestDecodeMalformedSuccessBody(t *testing.T) {
	for name, body := range map[string]string{
		"truncated": `{"segments": [`,
		"empty":     "",
		"array":     `[1, 2, 3]`,

		"trailing data":           `{"segments": []} garbage`,
		"trailing error envelope": `{"segments": []} {"error": {"text": "boom", "http_code": 400}}`,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := decodeResponse[SearchResult](200, []byte(body))
			assert.Nil(t, result)
			requireKind(t, err, KindDecode)
		})
	}
}

func TestDecodeTrailingDataIsSyntaxError(t *testing.T) {
	result, err := decodeResponse[StationsList](200, []byte(`{"countries": []} garbage`))
	assert.Nil(t, result)

	raspErr := requireKind(t, err, KindDecode)
	assert.Equal(t, "JSON document", raspErr.Expected)
	assert.Contains(t, raspErr.Found, "malformed JSON")

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestDecodeEmptySuccessBody(t *testing.T) {
	for _, body := range []string{"", "  \n"} {
		_, err := decodeResponse[ScheduleResult](200, []byte(body))

		raspErr := requireKind(t, err, KindDecode)
		assert.Equal(t, "empty body", raspErr.Found)
	}
}

func TestCoordinateUnmarshal(t *testing.T) {
	cases := map[string]Coordinate{
		`55.5`:   {Value: 55.5, Valid: true},
		`"37.1"`: {Value: 37.1, Valid: true},
		`""`:     {},
		`null`:   {},
	}

	for input, expected := range cases {
		var c Coordinate
		require.NoError(t, c.UnmarshalJSON([]byte(input)), input)
		assert.Equal(t, expected, c, input)
	}

	var c Coordinate
	assert.Error(t, c.UnmarshalJSON([]byte(`"north"`)))
	assert.Error(t, c.UnmarshalJSON([]byte(`true`)))

	out, err := Coordinate{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
