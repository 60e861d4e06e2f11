package rasp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/travigo/rasp/pkg/rasp/enums"
)

type Pagination struct {
	Total  int `json:"total" groups:"detailed"`
	Limit  int `json:"limit" groups:"detailed"`
	Offset int `json:"offset" groups:"detailed"`
}

// Station is a stop as it appears inside search and schedule documents.
type Station struct {
	Type            string            `json:"type" groups:"detailed"`
	Code            string            `json:"code" groups:"basic,detailed"`
	Title           string            `json:"title" groups:"basic,detailed"`
	ShortTitle      string            `json:"short_title" groups:"detailed"`
	PopularTitle    string            `json:"popular_title" groups:"detailed"`
	StationType     string            `json:"station_type" groups:"detailed"`
	StationTypeName string            `json:"station_type_name" groups:"detailed"`
	TransportType   string            `json:"transport_type" groups:"basic,detailed"`
	Codes           map[string]string `json:"codes,omitempty" groups:"detailed"`
}

type Thread struct {
	UID              string              `json:"uid" groups:"basic,detailed"`
	Title            string              `json:"title" groups:"basic,detailed"`
	Number           string              `json:"number" groups:"basic,detailed"`
	ShortTitle       string              `json:"short_title" groups:"detailed"`
	ThreadMethodLink string              `json:"thread_method_link" groups:"detailed"`
	Carrier          *Carrier            `json:"carrier" groups:"basic,detailed"`
	TransportType    enums.TransportType `json:"transport_type" groups:"basic,detailed"`
	Vehicle          string              `json:"vehicle" groups:"detailed"`
	TransportSubtype *TransportSubtype   `json:"transport_subtype" groups:"detailed"`
	ExpressType      string              `json:"express_type" groups:"detailed"`
	Interval         *Interval           `json:"interval,omitempty" groups:"detailed"`
}

type Carrier struct {
	Code     int          `json:"code" groups:"detailed"`
	Title    string       `json:"title" groups:"basic,detailed"`
	Codes    CarrierCodes `json:"codes" groups:"detailed"`
	Address  string       `json:"address" groups:"detailed"`
	URL      string       `json:"url" groups:"detailed"`
	Email    string       `json:"email" groups:"detailed"`
	Contacts string       `json:"contacts" groups:"detailed"`
	Phone    string       `json:"phone" groups:"detailed"`
	Logo     string       `json:"logo" groups:"detailed"`
	LogoSVG  string       `json:"logo_svg" groups:"detailed"`
}

type CarrierCodes struct {
	Sirena string `json:"sirena" groups:"detailed"`
	IATA   string `json:"iata" groups:"detailed"`
	ICAO   string `json:"icao" groups:"detailed"`
}

type TransportSubtype struct {
	Code  string `json:"code" groups:"detailed"`
	Title string `json:"title" groups:"detailed"`
	Color string `json:"color" groups:"detailed"`
}

// Interval is set on threads that run at a frequency rather than to a
// timetable.
type Interval struct {
	Density   string `json:"density" groups:"detailed"`
	BeginTime string `json:"begin_time" groups:"detailed"`
	EndTime   string `json:"end_time" groups:"detailed"`
}

type TicketsInfo struct {
	ETMarker bool          `json:"et_marker" groups:"detailed"`
	Places   []TicketPlace `json:"places" groups:"basic,detailed"`
}

type TicketPlace struct {
	Currency string `json:"currency" groups:"basic,detailed"`
	Price    Price  `json:"price" groups:"basic,detailed"`
	Name     string `json:"name" groups:"detailed"`
}

type Price struct {
	Whole int `json:"whole" groups:"basic,detailed"`
	Cents int `json:"cents" groups:"basic,detailed"`
}

func (p Price) Float() float64 {
	return float64(p.Whole) + float64(p.Cents)/100
}

// Coordinate is a latitude or longitude from the stations list. The API sends
// numbers, numeric strings or an empty string for unknown positions.
type Coordinate struct {
	Value float64
	Valid bool
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*c = Coordinate{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		if text == "" {
			*c = Coordinate{}
			return nil
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("coordinate %q is not a number", text)
		}
		*c = Coordinate{Value: value, Valid: true}
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*c = Coordinate{Value: value, Valid: true}
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// parseEventTime parses departure and arrival values. Dated requests return
// ISO 8601 timestamps, undated schedules return a bare "15:04:05" time.
func parseEventTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("no time set")
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised time %q", value)
}
