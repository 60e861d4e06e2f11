package rasp

import (
	"fmt"
	"time"

	"github.com/travigo/rasp/pkg/rasp/enums"
)

// SearchResult is the document returned by the search endpoint.
type SearchResult struct {
	Search           SearchContext `json:"search" groups:"basic,detailed"`
	Segments         []Segment     `json:"segments" groups:"basic,detailed"`
	IntervalSegments []Segment     `json:"interval_segments" groups:"detailed"`
	Pagination       Pagination    `json:"pagination" groups:"detailed"`
}

type SearchContext struct {
	Date string   `json:"date" groups:"basic,detailed"`
	From *Station `json:"from" groups:"basic,detailed"`
	To   *Station `json:"to" groups:"basic,detailed"`
}

// Segment is one trip between the searched stations. Segments with
// HasTransfers set describe a journey with changes: they carry DepartureFrom,
// ArrivalTo and Details instead of a single Thread.
type Segment struct {
	Thread *Thread  `json:"thread,omitempty" groups:"basic,detailed"`
	From   *Station `json:"from,omitempty" groups:"basic,detailed"`
	To     *Station `json:"to,omitempty" groups:"basic,detailed"`

	Departure         string  `json:"departure" groups:"basic,detailed"`
	Arrival           string  `json:"arrival" groups:"basic,detailed"`
	DeparturePlatform string  `json:"departure_platform" groups:"detailed"`
	ArrivalPlatform   string  `json:"arrival_platform" groups:"detailed"`
	DepartureTerminal string  `json:"departure_terminal" groups:"detailed"`
	ArrivalTerminal   string  `json:"arrival_terminal" groups:"detailed"`
	Duration          float64 `json:"duration" groups:"basic,detailed"`
	Stops             string  `json:"stops" groups:"detailed"`
	StartDate         string  `json:"start_date" groups:"detailed"`
	Days              string  `json:"days,omitempty" groups:"detailed"`
	ExceptDays        string  `json:"except_days,omitempty" groups:"detailed"`

	TicketsInfo *TicketsInfo `json:"tickets_info" groups:"basic,detailed"`

	HasTransfers   bool                  `json:"has_transfers" groups:"basic,detailed"`
	DepartureFrom  *Station              `json:"departure_from,omitempty" groups:"basic,detailed"`
	ArrivalTo      *Station              `json:"arrival_to,omitempty" groups:"basic,detailed"`
	TransportTypes []enums.TransportType `json:"transport_types,omitempty" groups:"basic,detailed"`
	Transfers      []Station             `json:"transfers,omitempty" groups:"detailed"`
	Details        []SegmentDetail       `json:"details,omitempty" groups:"detailed"`
}

// SegmentDetail is either a leg (Thread set) or a change between legs
// (IsTransfer set).
type SegmentDetail struct {
	IsTransfer    bool     `json:"is_transfer" groups:"detailed"`
	TransferFrom  *Station `json:"transfer_from,omitempty" groups:"detailed"`
	TransferTo    *Station `json:"transfer_to,omitempty" groups:"detailed"`
	TransferPoint *Station `json:"transfer_point,omitempty" groups:"detailed"`

	Thread    *Thread  `json:"thread,omitempty" groups:"detailed"`
	From      *Station `json:"from,omitempty" groups:"detailed"`
	To        *Station `json:"to,omitempty" groups:"detailed"`
	Departure string   `json:"departure,omitempty" groups:"detailed"`
	Arrival   string   `json:"arrival,omitempty" groups:"detailed"`
	Duration  float64  `json:"duration" groups:"detailed"`
}

func (s Segment) DurationValue() time.Duration {
	return time.Duration(s.Duration * float64(time.Second))
}

func (s Segment) DepartureTime() (time.Time, error) {
	return parseEventTime(s.Departure)
}

func (s Segment) ArrivalTime() (time.Time, error) {
	return parseEventTime(s.Arrival)
}

// MinPrice returns the cheapest ticket place, if the API sent any prices.
func (s Segment) MinPrice() (TicketPlace, bool) {
	if s.TicketsInfo == nil || len(s.TicketsInfo.Places) == 0 {
		return TicketPlace{}, false
	}

	cheapest := s.TicketsInfo.Places[0]
	for _, place := range s.TicketsInfo.Places[1:] {
		if place.Price.Float() < cheapest.Price.Float() {
			cheapest = place
		}
	}
	return cheapest, true
}

func (r SearchResult) missingField() string {
	if r.Segments == nil {
		return "segments"
	}

	for i, segment := range r.Segments {
		if field := segment.missingField(); field != "" {
			return fmt.Sprintf("segments[%d].%s", i, field)
		}
	}
	for i, segment := range r.IntervalSegments {
		if field := segment.missingField(); field != "" {
			return fmt.Sprintf("interval_segments[%d].%s", i, field)
		}
	}

	return ""
}

func (s Segment) missingField() string {
	if s.HasTransfers {
		switch {
		case s.DepartureFrom == nil:
			return "departure_from"
		case s.ArrivalTo == nil:
			return "arrival_to"
		}
		return ""
	}

	switch {
	case s.Thread == nil:
		return "thread"
	case s.Thread.UID == "":
		return "thread.uid"
	case s.From == nil:
		return "from"
	case s.From.Code == "":
		return "from.code"
	case s.To == nil:
		return "to"
	case s.To.Code == "":
		return "to.code"
	}
	return ""
}
