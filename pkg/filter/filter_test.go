package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travigo/rasp/pkg/rasp"
	"github.com/travigo/rasp/pkg/rasp/enums"
)

func testSegments() []rasp.Segment {
	return []rasp.Segment{
		{
			Thread:    &rasp.Thread{UID: "a", Number: "6112", Title: "Москва — Фрязево", TransportType: enums.TransportTypeSuburban},
			From:      &rasp.Station{Code: "s2000002", Title: "Москва (Ярославский вокзал)"},
			To:        &rasp.Station{Code: "s9600213", Title: "Мытищи"},
			Departure: "2024-05-01T05:42:00+03:00",
			Arrival:   "2024-05-01T06:08:00+03:00",
			Duration:  1560,
			Stops:     "везде",
			TicketsInfo: &rasp.TicketsInfo{Places: []rasp.TicketPlace{
				{Currency: "RUB", Price: rasp.Price{Whole: 120, Cents: 50}},
				{Currency: "RUB", Price: rasp.Price{Whole: 95}},
			}},
		},
		{
			Thread: &rasp.Thread{
				UID:           "b",
				Number:        "SU 1402",
				TransportType: enums.TransportTypePlane,
				Carrier:       &rasp.Carrier{Title: "Аэрофлот"},
			},
			From:      &rasp.Station{Code: "s9600213", Title: "Шереметьево"},
			To:        &rasp.Station{Code: "s2000006", Title: "Пулково"},
			Departure: "09:00",
			Arrival:   "10:30",
			Duration:  5400,
		},
		{
			HasTransfers:   true,
			DepartureFrom:  &rasp.Station{Code: "c213", Title: "Москва"},
			ArrivalTo:      &rasp.Station{Code: "c2", Title: "Санкт-Петербург"},
			TransportTypes: []enums.TransportType{enums.TransportTypeTrain, enums.TransportTypeBus},
			Departure:      "not a time",
			Duration:       36000,
		},
	}
}

func TestNewSegmentEnv(t *testing.T) {
	segments := testSegments()

	env := NewSegmentEnv(segments[0])
	assert.Equal(t, "suburban", env.TransportType)
	assert.Equal(t, "05:42", env.Departure)
	assert.Equal(t, "06:08", env.Arrival)
	assert.Equal(t, 26.0, env.DurationMinutes)
	assert.Equal(t, "s2000002", env.FromCode)
	assert.True(t, env.HasPrice)
	assert.Equal(t, 95.0, env.MinPrice)

	env = NewSegmentEnv(segments[1])
	assert.Equal(t, "Аэрофлот", env.Carrier)
	assert.Equal(t, "09:00", env.Departure)
	assert.False(t, env.HasPrice)

	env = NewSegmentEnv(segments[2])
	assert.Equal(t, "train", env.TransportType)
	assert.Equal(t, "c213", env.FromCode)
	assert.Equal(t, "Санкт-Петербург", env.To)
	assert.Equal(t, "not a time", env.Departure)
}

func TestApply(t *testing.T) {
	tests := []struct {
		expression string
		numbers    []string
	}{
		{`transport_type == "plane"`, []string{"SU 1402"}},
		{`departure >= "09:00"`, []string{"SU 1402", ""}},
		{`duration_minutes < 60`, []string{"6112"}},
		{`has_price && min_price < 100`, []string{"6112"}},
		{`has_transfers`, []string{""}},
		{`carrier contains "флот" || to_code == "s9600213"`, []string{"6112", "SU 1402"}},
		{`false`, []string{}},
	}

	for _, test := range tests {
		t.Run(test.expression, func(t *testing.T) {
			f, err := Compile(test.expression)
			require.NoError(t, err)

			matched, err := f.Apply(testSegments())
			require.NoError(t, err)

			numbers := []string{}
			for _, segment := range matched {
				number := ""
				if segment.Thread != nil {
					number = segment.Thread.Number
				}
				numbers = append(numbers, number)
			}
			assert.Equal(t, test.numbers, numbers)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expression := range []string{
		`platform == "1"`,
		`duration_minutes + 1`,
		`transport_type ==`,
	} {
		_, err := Compile(expression)
		assert.Error(t, err, expression)
	}
}

func TestApplyResult(t *testing.T) {
	f, err := Compile(`transport_type == "suburban"`)
	require.NoError(t, err)
	assert.Equal(t, `transport_type == "suburban"`, f.String())

	segments := testSegments()
	result := &rasp.SearchResult{Segments: segments, IntervalSegments: segments[1:2]}
	require.NoError(t, f.ApplyResult(result))

	assert.Len(t, result.Segments, 1)
	assert.Empty(t, result.IntervalSegments)
	assert.Len(t, segments, 3, "input slice is untouched")
}
