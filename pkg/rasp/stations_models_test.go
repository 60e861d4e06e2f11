package rasp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStationsList(t *testing.T) *StationsList {
	t.Helper()

	var list StationsList
	require.NoError(t, json.Unmarshal(readFixture(t, "stations_list.json"), &list))
	return &list
}

func TestStationsFlattenInDocumentOrder(t *testing.T) {
	stations := loadStationsList(t).Stations()
	require.Len(t, stations, 7)

	assert.Equal(t, "s2000002", stations[0].Codes.YandexCode)
	assert.Equal(t, "Москва", stations[0].Settlement)
	assert.Equal(t, "Москва и Московская область", stations[0].Region)
	assert.Equal(t, "Россия", stations[0].Country)

	assert.Equal(t, "s9800500", stations[6].Codes.YandexCode)
	assert.Equal(t, "Беларусь", stations[6].Country)
}

func TestFindStations(t *testing.T) {
	list := loadStationsList(t)

	t.Run("exact match first", func(t *testing.T) {
		matches := list.FindStations("мытищи")
		require.Len(t, matches, 1)
		assert.Equal(t, "s9601728", matches[0].Codes.YandexCode)
	})

	t.Run("substring", func(t *testing.T) {
		matches := list.FindStations("  минск ")
		require.Len(t, matches, 2)
		assert.Equal(t, "s9600370", matches[0].Codes.YandexCode)
		assert.Equal(t, "s9800500", matches[1].Codes.YandexCode)
	})

	t.Run("exact title moves ahead of earlier partial matches", func(t *testing.T) {
		matches := list.FindStations("Минск-Северный")
		require.Len(t, matches, 1)

		matches = list.FindStations("вокзал")
		require.Len(t, matches, 2)
		assert.Equal(t, "s2000002", matches[0].Codes.YandexCode)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Nil(t, list.FindStations(" "))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, list.FindStations("Владивосток"))
	})
}

func TestFindByCode(t *testing.T) {
	list := loadStationsList(t)

	station, ok := list.FindByCode("s2000006")
	require.True(t, ok)
	assert.Equal(t, "Пулково", station.Title)

	station, ok = list.FindByCode("031812")
	require.True(t, ok)
	assert.Equal(t, "s9602494", station.Codes.YandexCode)

	_, ok = list.FindByCode("")
	assert.False(t, ok)

	_, ok = list.FindByCode("s0")
	assert.False(t, ok)
}
