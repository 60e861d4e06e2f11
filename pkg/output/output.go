// Package output renders API results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"golang.org/x/exp/slices"

	"github.com/travigo/rasp/pkg/rasp"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatPretty Format = "pretty"
	FormatText   Format = "text"
)

var formats = []Format{FormatJSON, FormatCSV, FormatPretty, FormatText}

func Formats() []Format {
	return slices.Clone(formats)
}

func ParseFormat(value string) (Format, error) {
	format := Format(value)
	if !slices.Contains(formats, format) {
		return "", fmt.Errorf("unknown output format %q, expected one of %v", value, formats)
	}
	return format, nil
}

// DefaultGroups is used when no sheriff groups are requested.
var DefaultGroups = []string{"basic"}

type Renderer struct {
	out    io.Writer
	format Format
	groups []string
}

func NewRenderer(out io.Writer, format Format, groups []string) *Renderer {
	if len(groups) == 0 {
		groups = DefaultGroups
	}
	return &Renderer{out: out, format: format, groups: groups}
}

func (r *Renderer) Search(result *rasp.SearchResult) error {
	switch r.format {
	case FormatCSV:
		rows, err := SegmentRows(result.Segments)
		if err != nil {
			return err
		}
		return writeCSV(r.out, rows)
	case FormatText:
		return writeSegmentsText(r.out, result.Segments)
	}
	return r.value(result)
}

// Schedules renders one or more station schedules. JSON and pretty output
// keep them as a list, CSV and text output flatten them into one table.
func (r *Renderer) Schedules(results []*rasp.ScheduleResult) error {
	switch r.format {
	case FormatCSV:
		rows, err := ScheduleRows(results)
		if err != nil {
			return err
		}
		return writeCSV(r.out, rows)
	case FormatText:
		return writeSchedulesText(r.out, results)
	}
	return r.value(results)
}

func (r *Renderer) Stations(stations []rasp.FlatStation) error {
	switch r.format {
	case FormatCSV:
		rows, err := StationRows(stations)
		if err != nil {
			return err
		}
		return writeCSV(r.out, rows)
	case FormatText:
		return writeStationsText(r.out, stations)
	}
	return r.value(stations)
}

func (r *Renderer) value(value any) error {
	if r.format == FormatPretty {
		_, err := pretty.Fprintf(r.out, "%# v\n", value)
		return err
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: r.groups,
	}, value)
	if err != nil {
		return fmt.Errorf("reduce output to groups %v: %w", r.groups, err)
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(reduced)
}
