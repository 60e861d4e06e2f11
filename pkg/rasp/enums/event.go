package enums

import "golang.org/x/exp/slices"

// Event picks whether a station schedule lists departures or arrivals.
type Event string

const (
	EventDeparture Event = "departure"
	EventArrival   Event = "arrival"
)

var events = []Event{EventDeparture, EventArrival}

func Events() []Event {
	return slices.Clone(events)
}

func ParseEvent(value string) (Event, error) {
	return parse("event", events, value)
}

func (e Event) String() string {
	return string(e)
}

func (e Event) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

func (e *Event) UnmarshalText(text []byte) error {
	parsed, err := ParseEvent(string(text))
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}
