// Package filter narrows search results with boolean expressions such as
//
//	transport_type == "suburban" && departure >= "08:00" && stops != ""
//
// Expressions are compiled once against SegmentEnv, so unknown fields and
// non-boolean results are reported before any request is made.
package filter

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/travigo/rasp/pkg/rasp"
)

// SegmentEnv is the set of variables an expression can refer to.
type SegmentEnv struct {
	TransportType   string  `expr:"transport_type"`
	Carrier         string  `expr:"carrier"`
	Number          string  `expr:"number"`
	Title           string  `expr:"title"`
	From            string  `expr:"from"`
	To              string  `expr:"to"`
	FromCode        string  `expr:"from_code"`
	ToCode          string  `expr:"to_code"`
	Departure       string  `expr:"departure"`
	Arrival         string  `expr:"arrival"`
	DurationMinutes float64 `expr:"duration_minutes"`
	Stops           string  `expr:"stops"`
	HasTransfers    bool    `expr:"has_transfers"`
	HasPrice        bool    `expr:"has_price"`
	MinPrice        float64 `expr:"min_price"`
}

type Filter struct {
	source  string
	program *vm.Program
}

func Compile(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(SegmentEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}

	return &Filter{source: expression, program: program}, nil
}

func (f *Filter) String() string {
	return f.source
}

func (f *Filter) Match(segment rasp.Segment) (bool, error) {
	output, err := expr.Run(f.program, NewSegmentEnv(segment))
	if err != nil {
		return false, fmt.Errorf("run filter %q: %w", f.source, err)
	}

	matched, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.source, output)
	}
	return matched, nil
}

// Apply returns the segments that match, in their original order. The input
// slice is not modified.
func (f *Filter) Apply(segments []rasp.Segment) ([]rasp.Segment, error) {
	matched := []rasp.Segment{}

	for _, segment := range segments {
		ok, err := f.Match(segment)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, segment)
		}
	}

	return matched, nil
}

// ApplyResult filters both segment lists of a search result in place.
func (f *Filter) ApplyResult(result *rasp.SearchResult) error {
	segments, err := f.Apply(result.Segments)
	if err != nil {
		return err
	}
	intervalSegments, err := f.Apply(result.IntervalSegments)
	if err != nil {
		return err
	}

	result.Segments = segments
	result.IntervalSegments = intervalSegments
	return nil
}

func NewSegmentEnv(segment rasp.Segment) SegmentEnv {
	env := SegmentEnv{
		Departure:       clockTime(segment.Departure, segment.DepartureTime),
		Arrival:         clockTime(segment.Arrival, segment.ArrivalTime),
		DurationMinutes: segment.DurationValue().Minutes(),
		Stops:           segment.Stops,
		HasTransfers:    segment.HasTransfers,
	}

	if thread := segment.Thread; thread != nil {
		env.TransportType = string(thread.TransportType)
		env.Number = thread.Number
		env.Title = thread.Title
		if thread.Carrier != nil {
			env.Carrier = thread.Carrier.Title
		}
	} else if len(segment.TransportTypes) > 0 {
		env.TransportType = string(segment.TransportTypes[0])
	}

	from, to := segment.From, segment.To
	if segment.HasTransfers {
		from, to = segment.DepartureFrom, segment.ArrivalTo
	}
	if from != nil {
		env.From = from.Title
		env.FromCode = from.Code
	}
	if to != nil {
		env.To = to.Title
		env.ToCode = to.Code
	}

	if place, ok := segment.MinPrice(); ok {
		env.HasPrice = true
		env.MinPrice = place.Price.Float()
	}

	return env
}

// clockTime renders a departure or arrival as HH:MM so expressions can
// compare times as strings. Values that do not parse are passed through.
func clockTime(raw string, parse func() (time.Time, error)) string {
	parsed, err := parse()
	if err != nil {
		return raw
	}
	return parsed.Format("15:04")
}
