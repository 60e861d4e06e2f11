package output

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/jinzhu/copier"

	"github.com/travigo/rasp/pkg/rasp"
)

// SegmentRow is one search segment flattened for CSV output.
type SegmentRow struct {
	Number            string  `csv:"number"`
	Title             string  `csv:"title"`
	TransportType     string  `csv:"transport_type"`
	CarrierTitle      string  `csv:"carrier"`
	FromTitle         string  `csv:"from"`
	FromCode          string  `csv:"from_code"`
	ToTitle           string  `csv:"to"`
	ToCode            string  `csv:"to_code"`
	Departure         string  `csv:"departure"`
	Arrival           string  `csv:"arrival"`
	Duration          float64 `csv:"duration"`
	DeparturePlatform string  `csv:"departure_platform"`
	ArrivalPlatform   string  `csv:"arrival_platform"`
	Stops             string  `csv:"stops"`
	Days              string  `csv:"days"`
	HasTransfers      bool    `csv:"has_transfers"`
	Price             string  `csv:"min_price"`
	Currency          string  `csv:"currency"`
}

type ScheduleRow struct {
	StationTitle  string `csv:"station"`
	StationCode   string `csv:"station_code"`
	Number        string `csv:"number"`
	Title         string `csv:"title"`
	TransportType string `csv:"transport_type"`
	Departure     string `csv:"departure"`
	Arrival       string `csv:"arrival"`
	Days          string `csv:"days"`
	ExceptDays    string `csv:"except_days"`
	Platform      string `csv:"platform"`
	Terminal      string `csv:"terminal"`
	Stops         string `csv:"stops"`
	IsFuzzy       bool   `csv:"is_fuzzy"`
}

type StationRow struct {
	YandexCode    string `csv:"yandex_code"`
	ESRCode       string `csv:"esr_code"`
	Title         string `csv:"title"`
	StationType   string `csv:"station_type"`
	TransportType string `csv:"transport_type"`
	Direction     string `csv:"direction"`
	Settlement    string `csv:"settlement"`
	Region        string `csv:"region"`
	Country       string `csv:"country"`
	Lat           string `csv:"latitude"`
	Lon           string `csv:"longitude"`
}

func SegmentRows(segments []rasp.Segment) ([]*SegmentRow, error) {
	rows := make([]*SegmentRow, 0, len(segments))

	for _, segment := range segments {
		row := &SegmentRow{}
		if err := copier.Copy(row, &segment); err != nil {
			return nil, fmt.Errorf("copy segment: %w", err)
		}

		if thread := segment.Thread; thread != nil {
			row.Number = thread.Number
			row.Title = thread.Title
			row.TransportType = string(thread.TransportType)
			if thread.Carrier != nil {
				row.CarrierTitle = thread.Carrier.Title
			}
		} else if len(segment.TransportTypes) > 0 {
			row.TransportType = string(segment.TransportTypes[0])
		}

		from, to := segment.From, segment.To
		if segment.HasTransfers {
			from, to = segment.DepartureFrom, segment.ArrivalTo
		}
		if from != nil {
			row.FromTitle, row.FromCode = from.Title, from.Code
		}
		if to != nil {
			row.ToTitle, row.ToCode = to.Title, to.Code
		}

		if place, ok := segment.MinPrice(); ok {
			row.Price = strconv.FormatFloat(place.Price.Float(), 'f', 2, 64)
			row.Currency = place.Currency
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func ScheduleRows(results []*rasp.ScheduleResult) ([]*ScheduleRow, error) {
	rows := []*ScheduleRow{}

	for _, result := range results {
		for _, entry := range result.Schedule {
			row := &ScheduleRow{}
			if err := copier.Copy(row, &entry); err != nil {
				return nil, fmt.Errorf("copy schedule entry: %w", err)
			}

			if result.Station != nil {
				row.StationTitle, row.StationCode = result.Station.Title, result.Station.Code
			}
			if thread := entry.Thread; thread != nil {
				row.Number = thread.Number
				row.Title = thread.Title
				row.TransportType = string(thread.TransportType)
			}

			rows = append(rows, row)
		}
	}

	return rows, nil
}

func StationRows(stations []rasp.FlatStation) ([]*StationRow, error) {
	rows := make([]*StationRow, 0, len(stations))

	for _, station := range stations {
		row := &StationRow{}
		if err := copier.Copy(row, &station); err != nil {
			return nil, fmt.Errorf("copy station: %w", err)
		}

		row.YandexCode = station.Codes.YandexCode
		row.ESRCode = station.Codes.ESRCode
		row.Lat = formatCoordinate(station.Latitude)
		row.Lon = formatCoordinate(station.Longitude)

		rows = append(rows, row)
	}

	return rows, nil
}

func formatCoordinate(c rasp.Coordinate) string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// writeCSV writes rows with a header line. An empty slice still produces the
// header.
func writeCSV[T any](out io.Writer, rows []*T) error {
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	_, err := out.Write(buf.Bytes())
	return err
}
