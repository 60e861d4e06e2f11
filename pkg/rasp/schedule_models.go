package rasp

import (
	"fmt"
	"time"

	"github.com/travigo/rasp/pkg/rasp/enums"
)

// ScheduleResult is the document returned by the station schedule endpoint.
type ScheduleResult struct {
	Date              string          `json:"date" groups:"basic,detailed"`
	Station           *Station        `json:"station" groups:"basic,detailed"`
	Event             enums.Event     `json:"event" groups:"basic,detailed"`
	Schedule          []ScheduleEntry `json:"schedule" groups:"basic,detailed"`
	IntervalSchedule  []ScheduleEntry `json:"interval_schedule" groups:"detailed"`
	ScheduleDirection *Direction      `json:"schedule_direction" groups:"detailed"`
	Directions        []Direction     `json:"directions" groups:"detailed"`
	Pagination        Pagination      `json:"pagination" groups:"detailed"`
}

type ScheduleEntry struct {
	Thread     *Thread `json:"thread" groups:"basic,detailed"`
	Departure  string  `json:"departure" groups:"basic,detailed"`
	Arrival    string  `json:"arrival" groups:"basic,detailed"`
	Days       string  `json:"days" groups:"basic,detailed"`
	ExceptDays string  `json:"except_days" groups:"detailed"`
	IsFuzzy    bool    `json:"is_fuzzy" groups:"detailed"`
	Stops      string  `json:"stops" groups:"detailed"`
	Platform   string  `json:"platform" groups:"basic,detailed"`
	Terminal   string  `json:"terminal" groups:"detailed"`
}

type Direction struct {
	Code  string `json:"code" groups:"basic,detailed"`
	Title string `json:"title" groups:"basic,detailed"`
}

func (e ScheduleEntry) DepartureTime() (time.Time, error) {
	return parseEventTime(e.Departure)
}

func (e ScheduleEntry) ArrivalTime() (time.Time, error) {
	return parseEventTime(e.Arrival)
}

func (r ScheduleResult) missingField() string {
	switch {
	case r.Station == nil:
		return "station"
	case r.Station.Code == "":
		return "station.code"
	case r.Schedule == nil:
		return "schedule"
	}

	for i, entry := range r.Schedule {
		if entry.Thread == nil {
			return fmt.Sprintf("schedule[%d].thread", i)
		}
	}
	for i, entry := range r.IntervalSchedule {
		if entry.Thread == nil {
			return fmt.Sprintf("interval_schedule[%d].thread", i)
		}
	}

	return ""
}
