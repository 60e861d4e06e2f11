package params

import (
	"errors"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travigo/rasp/pkg/rasp"
	"github.com/travigo/rasp/pkg/rasp/enums"
)

func TestSearchRequest(t *testing.T) {
	client := rasp.NewClient("key")

	request, err := Search{From: "c213", To: "c2"}.Request(client)
	require.NoError(t, err)
	assert.Equal(t, "from=c213&to=c2", request.Query().Encode())

	request, err = Search{
		From:           "c213",
		To:             "c2",
		Date:           "2024-05-01",
		TransportType:  "train",
		System:         "yandex",
		ShowSystems:    "all",
		Language:       "ru_RU",
		Limit:          "5",
		Offset:         "10",
		AddDaysMask:    "true",
		Transfers:      "1",
		ResultTimezone: "Europe/Moscow",
	}.Request(client)
	require.NoError(t, err)

	query := request.Query()
	assert.Equal(t, "2024-05-01", query.Get("date"))
	assert.Equal(t, "train", query.Get("transport_types"))
	assert.Equal(t, "all", query.Get("show_systems"))
	assert.Equal(t, "5", query.Get("limit"))
	assert.Equal(t, "10", query.Get("offset"))
	assert.Equal(t, "true", query.Get("transfers"))
	assert.Equal(t, "Europe/Moscow", query.Get("result_timezone"))
}

func TestSearchRequestInvalid(t *testing.T) {
	client := rasp.NewClient("key")

	tests := map[string]Search{
		"missing to":     {From: "c213"},
		"bad date":       {From: "a", To: "b", Date: "01.05.2024"},
		"bad limit":      {From: "a", To: "b", Limit: "-1"},
		"bad bool":       {From: "a", To: "b", Transfers: "maybe"},
		"bad timezone":   {From: "a", To: "b", ResultTimezone: "Mars/Olympus"},
		"unknown system": {From: "a", To: "b", System: "gtfs"},
	}

	for name, search := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := search.Request(client)
			var paramsErr *Error
			assert.True(t, errors.As(err, &paramsErr), "got %v", err)
		})
	}

	_, err := Search{From: "a", To: "b", TransportType: "rocket"}.Request(client)
	assert.ErrorIs(t, err, enums.ErrUnknownVariant)
}

func TestScheduleRequest(t *testing.T) {
	client := rasp.NewClient("key")

	request, err := Schedule{
		Station:   "s9600213",
		Direction: "all",
		Event:     "arrival",
		Limit:     "3",
	}.Request(client)
	require.NoError(t, err)

	query := request.Query()
	assert.Equal(t, "s9600213", query.Get("station"))
	assert.Equal(t, "all", query.Get("direction"))
	assert.Equal(t, "arrival", query.Get("event"))
	assert.Equal(t, "3", query.Get("limit"))

	_, err = Schedule{}.Request(client)
	assert.Error(t, err)

	_, err = Schedule{Station: "s1", Event: "both"}.Request(client)
	assert.ErrorIs(t, err, enums.ErrUnknownVariant)
}

func TestStationsListRequest(t *testing.T) {
	client := rasp.NewClient("key")

	request, err := StationsList{Language: "uk_UA"}.Request(client)
	require.NoError(t, err)
	assert.Equal(t, "uk_UA", request.Query().Get("lang"))

	_, err = StationsList{Language: "en"}.Request(client)
	assert.Error(t, err)
}
